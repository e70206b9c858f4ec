package termui

import "sync"

// PriorityLock is a mutual exclusion lock with two acquisition modes.
// Waiters that call LockPriority are granted the lock before any waiter
// that called Lock, so the render path is never starved by painters.
// The zero value is an unlocked lock.
type PriorityLock struct {
	mu       sync.Mutex
	cond     *sync.Cond
	held     bool
	priority int // number of goroutines waiting in LockPriority
}

func (l *PriorityLock) wait() {
	if l.cond == nil {
		l.cond = sync.NewCond(&l.mu)
	}
	l.cond.Wait()
}

// Lock acquires the lock, yielding to any pending priority waiter.
func (l *PriorityLock) Lock() {
	l.mu.Lock()
	for l.held || l.priority > 0 {
		l.wait()
	}
	l.held = true
	l.mu.Unlock()
}

// LockPriority acquires the lock ahead of ordinary waiters.
func (l *PriorityLock) LockPriority() {
	l.mu.Lock()
	l.priority++
	for l.held {
		l.wait()
	}
	l.priority--
	l.held = true
	l.mu.Unlock()
}

// TryLock acquires the lock if it is free and no priority waiter is queued.
func (l *PriorityLock) TryLock() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held || l.priority > 0 {
		return false
	}
	l.held = true
	return true
}

// Unlock releases the lock. It panics if the lock is not held.
func (l *PriorityLock) Unlock() {
	l.mu.Lock()
	if !l.held {
		l.mu.Unlock()
		panic("termui: unlock of unlocked PriorityLock")
	}
	l.held = false
	if l.cond != nil {
		l.cond.Broadcast()
	}
	l.mu.Unlock()
}
