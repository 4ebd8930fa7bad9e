package screen

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// Escape sequences used to manage the drawing surface. Kept as raw strings
// rather than a terminfo lookup; these are universal on modern terminals.
const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J"
	eraseLine      = "\x1b[2K"
	resetStyle     = "\x1b[0m"
)

// Terminal is a drawing surface backed by the process's controlling
// terminal. It is acquired with Acquire and must be released exactly once
// when drawing is finished; Release is idempotent so deferred cleanup on
// error paths is safe.
type Terminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	state    *term.State
	released bool
}

// Acquire takes over the terminal for full-screen drawing: raw mode,
// alternate screen, hidden cursor. On failure the terminal is left in its
// original state.
func Acquire() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.state = state

	if _, err := t.out.WriteString(enterAltScreen + hideCursor + clearScreen); err != nil {
		_ = term.Restore(int(t.in.Fd()), state)
		return nil, fmt.Errorf("failed to set up terminal: %w", err)
	}
	return t, nil
}

// Size returns the current terminal dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read terminal size: %w", err)
	}
	return width, height, nil
}

// Draw builds a frame for the current terminal size, runs render against it
// and flushes the result. The size is measured on every call, so a resized
// terminal is reflected in the next frame.
func (t *Terminal) Draw(render func(Region, *Buffer)) error {
	width, height, err := t.Size()
	if err != nil {
		return err
	}

	buf := NewBuffer(width, height)
	render(buf.Region(), buf)

	w := bufio.NewWriter(t.out)
	for y := 0; y < height; y++ {
		// Absolute addressing per row; rows are 1-based in the protocol.
		fmt.Fprintf(w, "\x1b[%d;1H%s%s%s", y+1, eraseLine, buf.Line(y), resetStyle)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush frame: %w", err)
	}
	return nil
}

// Release restores the terminal to its pre-Acquire state. Calling it more
// than once is a no-op.
func (t *Terminal) Release() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return nil
	}
	t.released = true

	_, werr := t.out.WriteString(resetStyle + showCursor + exitAltScreen)
	rerr := term.Restore(int(t.in.Fd()), t.state)
	if rerr != nil {
		return fmt.Errorf("failed to restore terminal: %w", rerr)
	}
	if werr != nil {
		return fmt.Errorf("failed to restore screen: %w", werr)
	}
	return nil
}
