// Package layout holds the geometry value types and the pluggable layout
// strategies used by the widget tree.
//
// Layout algorithms never reach into widget internals. They work through
// the [Layoutable] accessor interface, which lets them read the contents
// size, sizing hints and children of a node and move or resize those
// children. Types are re-exported through the root termui package.
package layout
