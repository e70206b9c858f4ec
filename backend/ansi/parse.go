package ansi

import (
	"bytes"
	"unicode/utf8"

	termui "github.com/grindlemire/go-termui"
)

var (
	pasteStart = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// parseInput decodes raw terminal input. rest is a trailing sequence
// that was cut off mid-way; callers prepend it to the next read.
func parseInput(data []byte) (events []event, rest []byte) {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				events = append(events, keyEvent{key: termui.KeyEscape})
				i++
				continue
			}
			switch data[i+1] {
			case '[':
				if bytes.HasPrefix(data[i:], pasteStart) {
					body := data[i+len(pasteStart):]
					end := bytes.Index(body, pasteEnd)
					if end < 0 {
						return events, data[i:]
					}
					events = append(events, pasteEvent{text: string(body[:end])})
					i += len(pasteStart) + end + len(pasteEnd)
					continue
				}
				if i+2 < len(data) && data[i+2] == '<' {
					ev, n := parseMouseSGR(data[i:])
					if n < 0 {
						return events, data[i:]
					}
					if n > 0 {
						if ev != nil {
							events = append(events, ev)
						}
						i += n
						continue
					}
				}
				ev, n := parseCSISequence(data[i:])
				if n < 0 {
					return events, data[i:]
				}
				if n > 0 {
					if ev.key != termui.KeyNone {
						events = append(events, ev)
					}
					i += n
					continue
				}
			case 'O':
				if i+2 < len(data) {
					if key := parseSS3(data[i+2]); key != termui.KeyNone {
						events = append(events, keyEvent{key: key})
						i += 3
						continue
					}
				}
			default:
				if next := data[i+1]; next >= 0x20 && next < 0x7f {
					r := rune(next)
					events = append(events, keyEvent{key: termui.KeyForRune(r), mods: termui.ModAlt})
					i += 2
					continue
				}
			}
			events = append(events, keyEvent{key: termui.KeyEscape})
			i++
			continue
		}

		if b < 0x20 || b == 0x7f {
			if ev, ok := controlKey(b); ok {
				events = append(events, ev)
			}
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(data[i:]) {
				return events, data[i:]
			}
			i++
			continue
		}
		ev := keyEvent{key: termui.KeyForRune(r), ch: r}
		if r >= 'A' && r <= 'Z' {
			ev.mods = termui.ModShift
		}
		events = append(events, ev)
		i += size
	}
	return events, nil
}

// controlKey maps a C0 control byte or DEL to a key press.
func controlKey(b byte) (keyEvent, bool) {
	switch b {
	case 0x00:
		return keyEvent{key: termui.KeySpace, mods: termui.ModCtrl}, true
	case 0x08, 0x7f:
		return keyEvent{key: termui.KeyBackspace}, true
	case 0x09:
		return keyEvent{key: termui.KeyTab}, true
	case 0x0d:
		return keyEvent{key: termui.KeyEnter}, true
	}
	if b >= 0x01 && b <= 0x1a {
		return keyEvent{key: termui.KeyA + termui.Key(b-0x01), mods: termui.ModCtrl}, true
	}
	return keyEvent{}, false
}

// parseCSISequence decodes ESC [ params final. It returns n == 0 when
// the bytes are not a CSI sequence and n < 0 when the sequence is cut off.
func parseCSISequence(data []byte) (ev keyEvent, n int) {
	var params []int
	cur, has := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, cur)
			cur, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, cur)
			}
			return parseCSI(params, b), i + 1
		default:
			return keyEvent{}, 0
		}
	}
	return keyEvent{}, -1
}

// csiTilde maps the first parameter of CSI n ~ to a key.
var csiTilde = map[int]termui.Key{
	1: termui.KeyHome, 2: termui.KeyInsert, 3: termui.KeyDelete, 4: termui.KeyEnd,
	5: termui.KeyPageUp, 6: termui.KeyPageDown,
	11: termui.KeyF1, 12: termui.KeyF2, 13: termui.KeyF3, 14: termui.KeyF4,
	15: termui.KeyF5, 17: termui.KeyF6, 18: termui.KeyF7, 19: termui.KeyF8,
	20: termui.KeyF9, 21: termui.KeyF10, 23: termui.KeyF11, 24: termui.KeyF12,
}

// csiFinal maps the final byte of CSI [1;mod] X to a key.
var csiFinal = map[byte]termui.Key{
	'A': termui.KeyUp, 'B': termui.KeyDown, 'C': termui.KeyRight, 'D': termui.KeyLeft,
	'H': termui.KeyHome, 'F': termui.KeyEnd,
	'P': termui.KeyF1, 'Q': termui.KeyF2, 'R': termui.KeyF3, 'S': termui.KeyF4,
}

func parseCSI(params []int, final byte) keyEvent {
	var mods termui.Modifiers
	if len(params) >= 2 {
		mods = decodeModifier(params[1])
	}
	switch final {
	case '~':
		if len(params) == 0 {
			return keyEvent{}
		}
		return keyEvent{key: csiTilde[params[0]], mods: mods}
	case 'Z':
		return keyEvent{key: termui.KeyTab, mods: termui.ModShift}
	}
	return keyEvent{key: csiFinal[final], mods: mods}
}

func parseSS3(b byte) termui.Key {
	return csiFinal[b]
}

// decodeModifier decodes the xterm modifier parameter, 1 plus a bit set
// of shift (1), alt (2) and ctrl (4).
func decodeModifier(param int) termui.Modifiers {
	if param <= 1 {
		return termui.ModNone
	}
	flags := param - 1
	var mods termui.Modifiers
	if flags&1 != 0 {
		mods |= termui.ModShift
	}
	if flags&2 != 0 {
		mods |= termui.ModAlt
	}
	if flags&4 != 0 {
		mods |= termui.ModCtrl
	}
	return mods
}

// parseMouseSGR decodes ESC [ < b ; x ; y (M|m). The button field holds
// the button in bits 0-1, shift, alt and ctrl in bits 2-4, motion in
// bit 5 and the wheel flag in bit 6. It returns n == 0 for malformed
// input and n < 0 when the sequence is cut off. A report carrying no
// usable action yields a nil event.
func parseMouseSGR(data []byte) (ev event, n int) {
	var fields [3]int
	stage := 0
	for i := 3; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			fields[stage] = fields[stage]*10 + int(b-'0')
		case b == ';':
			stage++
			if stage > 2 {
				return nil, 0
			}
		case b == 'M' || b == 'm':
			if stage != 2 {
				return nil, 0
			}
			return decodeMouse(fields[0], fields[1]-1, fields[2]-1, b == 'm'), i + 1
		default:
			return nil, 0
		}
	}
	return nil, -1
}

func decodeMouse(code, x, y int, release bool) event {
	ev := mouseEvent{pos: termui.Pt(x, y)}
	if code&4 != 0 {
		ev.mods |= termui.ModShift
	}
	if code&8 != 0 {
		ev.mods |= termui.ModAlt
	}
	if code&16 != 0 {
		ev.mods |= termui.ModCtrl
	}

	if code&64 != 0 {
		ev.action = mouseWheel
		ev.delta = -1
		if code&1 != 0 {
			ev.delta = 1
		}
		return ev
	}

	switch code & 3 {
	case 0:
		ev.button = termui.ButtonLeft
	case 1:
		ev.button = termui.ButtonMiddle
	case 2:
		ev.button = termui.ButtonRight
	}
	switch {
	case code&32 != 0:
		ev.action = mouseMotion
	case ev.button == termui.ButtonNone:
		return nil
	case release:
		ev.action = mouseRelease
	default:
		ev.action = mousePress
	}
	return ev
}
