// Package input provides the blocking event source for viewloop
// applications: a decoder that turns raw terminal bytes into key events,
// one event per read.
//
// The decoder covers the input a raw-mode terminal actually produces:
// printable UTF-8 runes, control bytes, and the common CSI sequences for
// arrow and navigation keys. It deliberately does not attempt full escape
// sequence coverage (mouse reporting, bracketed paste, keyboard protocols);
// unrecognized sequences are skipped and the next event is returned.
package input
