package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Reader decodes key events from a byte stream. It blocks until a full
// event is available and returns exactly one event per call.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader decoding from r. A nil r reads from stdin,
// which is the normal configuration for a running application.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		r = os.Stdin
	}
	return &Reader{r: bufio.NewReader(r)}
}

// ReadEvent blocks until the next event has been decoded. It returns the
// underlying read error (including io.EOF) once the stream ends.
func (r *Reader) ReadEvent() (Event, error) {
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		switch {
		case b == 0x03:
			return KeyEvent{Type: KeyCtrlC}, nil
		case b == '\r' || b == '\n':
			return KeyEvent{Type: KeyEnter}, nil
		case b == '\t':
			return KeyEvent{Type: KeyTab}, nil
		case b == 0x7f || b == 0x08:
			return KeyEvent{Type: KeyBackspace}, nil
		case b == 0x1b:
			ev, ok, err := r.readEscape()
			if err != nil {
				return nil, err
			}
			if ok {
				return ev, nil
			}
			// Unrecognized sequence, consumed; decode the next event.
		case b < 0x20:
			// Remaining C0 control bytes map to ctrl+letter.
			return KeyEvent{Type: KeyRunes, Runes: []rune{rune(b) + 'a' - 1}, Ctrl: true}, nil
		default:
			if err := r.r.UnreadByte(); err != nil {
				return nil, fmt.Errorf("failed to read input: %w", err)
			}
			ru, _, err := r.r.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("failed to read input: %w", err)
			}
			return KeyEvent{Type: KeyRunes, Runes: []rune{ru}}, nil
		}
	}
}

// readEscape decodes the remainder of a sequence that started with ESC.
// A lone ESC (no buffered follow-up) is a plain escape key press.
func (r *Reader) readEscape() (Event, bool, error) {
	if r.r.Buffered() == 0 {
		return KeyEvent{Type: KeyEsc}, true, nil
	}

	b, err := r.r.ReadByte()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read input: %w", err)
	}

	if b != '[' && b != 'O' {
		// ESC-prefixed rune: alt+key.
		if err := r.r.UnreadByte(); err != nil {
			return nil, false, fmt.Errorf("failed to read input: %w", err)
		}
		ru, _, err := r.r.ReadRune()
		if err != nil {
			return nil, false, fmt.Errorf("failed to read input: %w", err)
		}
		return KeyEvent{Type: KeyRunes, Runes: []rune{ru}, Alt: true}, true, nil
	}

	// CSI / SS3: parameter bytes then a final byte in 0x40-0x7e.
	var params []byte
	for {
		c, err := r.r.ReadByte()
		if err != nil {
			return nil, false, fmt.Errorf("failed to read input: %w", err)
		}
		if c >= 0x40 && c <= 0x7e {
			return decodeCSI(c, params)
		}
		params = append(params, c)
		if len(params) > 16 {
			// Runaway sequence; drop it.
			return nil, false, nil
		}
	}
}

func decodeCSI(final byte, params []byte) (Event, bool, error) {
	switch final {
	case 'A':
		return KeyEvent{Type: KeyUp}, true, nil
	case 'B':
		return KeyEvent{Type: KeyDown}, true, nil
	case 'C':
		return KeyEvent{Type: KeyRight}, true, nil
	case 'D':
		return KeyEvent{Type: KeyLeft}, true, nil
	case 'H':
		return KeyEvent{Type: KeyHome}, true, nil
	case 'F':
		return KeyEvent{Type: KeyEnd}, true, nil
	case '~':
		switch string(params) {
		case "1", "7":
			return KeyEvent{Type: KeyHome}, true, nil
		case "3":
			return KeyEvent{Type: KeyDelete}, true, nil
		case "4", "8":
			return KeyEvent{Type: KeyEnd}, true, nil
		}
	}
	return nil, false, nil
}
