// Package screen provides the terminal drawing surface for viewloop
// applications.
//
// The package has two halves. Buffer and Region form the frame model that
// views render into: a Buffer is a line-oriented frame sized to the terminal,
// and strings written into it may carry ANSI styling (for example output from
// lipgloss). All splicing is ANSI-aware, so styled content is measured by its
// visible width rather than its byte length.
//
// Terminal is the real surface implementation. Acquire puts the controlling
// terminal into raw mode, switches to the alternate screen and hides the
// cursor; Release restores everything and is safe to call more than once.
// Each Draw call measures the terminal, builds a fresh Buffer, runs the
// render callback and flushes the frame with row-addressed writes, so
// resizes are picked up on the next frame without any resize event plumbing.
//
// The run loop consumes Terminal through a narrow interface, which keeps the
// loop testable against an in-memory surface.
package screen
