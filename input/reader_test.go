package input

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadEvent(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		want  KeyEvent
	}{
		{name: "plain rune", data: "a", want: KeyEvent{Type: KeyRunes, Runes: []rune{'a'}}},
		{name: "utf8 rune", data: "é", want: KeyEvent{Type: KeyRunes, Runes: []rune{'é'}}},
		{name: "carriage return is enter", data: "\r", want: KeyEvent{Type: KeyEnter}},
		{name: "newline is enter", data: "\n", want: KeyEvent{Type: KeyEnter}},
		{name: "tab", data: "\t", want: KeyEvent{Type: KeyTab}},
		{name: "del is backspace", data: "\x7f", want: KeyEvent{Type: KeyBackspace}},
		{name: "ctrl+c", data: "\x03", want: KeyEvent{Type: KeyCtrlC}},
		{name: "ctrl+d", data: "\x04", want: KeyEvent{Type: KeyRunes, Runes: []rune{'d'}, Ctrl: true}},
		{name: "lone escape", data: "\x1b", want: KeyEvent{Type: KeyEsc}},
		{name: "alt+x", data: "\x1bx", want: KeyEvent{Type: KeyRunes, Runes: []rune{'x'}, Alt: true}},
		{name: "arrow up", data: "\x1b[A", want: KeyEvent{Type: KeyUp}},
		{name: "arrow down", data: "\x1b[B", want: KeyEvent{Type: KeyDown}},
		{name: "arrow right", data: "\x1b[C", want: KeyEvent{Type: KeyRight}},
		{name: "arrow left", data: "\x1b[D", want: KeyEvent{Type: KeyLeft}},
		{name: "home", data: "\x1b[H", want: KeyEvent{Type: KeyHome}},
		{name: "end", data: "\x1b[F", want: KeyEvent{Type: KeyEnd}},
		{name: "vt home", data: "\x1b[1~", want: KeyEvent{Type: KeyHome}},
		{name: "delete", data: "\x1b[3~", want: KeyEvent{Type: KeyDelete}},
		{name: "ss3 up", data: "\x1bOA", want: KeyEvent{Type: KeyUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.data))
			ev, err := r.ReadEvent()
			if err != nil {
				t.Fatalf("ReadEvent() error = %v", err)
			}
			got, ok := ev.(KeyEvent)
			if !ok {
				t.Fatalf("ReadEvent() = %T, want KeyEvent", ev)
			}
			if got.String() != tt.want.String() {
				t.Errorf("ReadEvent() = %q, want %q", got.String(), tt.want.String())
			}
			if got.Type != tt.want.Type || got.Alt != tt.want.Alt || got.Ctrl != tt.want.Ctrl {
				t.Errorf("ReadEvent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadEventSequence(t *testing.T) {
	r := NewReader(strings.NewReader("ab\r"))
	var got []string
	for i := 0; i < 3; i++ {
		ev, err := r.ReadEvent()
		if err != nil {
			t.Fatalf("ReadEvent() #%d error = %v", i, err)
		}
		got = append(got, ev.String())
	}
	want := []string{"a", "b", "enter"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadEventSkipsUnknownSequences(t *testing.T) {
	// An unrecognized CSI sequence is consumed and the next event returned.
	r := NewReader(strings.NewReader("\x1b[5Zq"))
	ev, err := r.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent() error = %v", err)
	}
	if ev.String() != "q" {
		t.Errorf("ReadEvent() = %q, want %q", ev.String(), "q")
	}
}

func TestReadEventEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.ReadEvent(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadEvent() error = %v, want io.EOF", err)
	}
}

func TestKeyEventString(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want string
	}{
		{"rune", KeyEvent{Type: KeyRunes, Runes: []rune{'a'}}, "a"},
		{"enter", KeyEvent{Type: KeyEnter}, "enter"},
		{"ctrl+c", KeyEvent{Type: KeyCtrlC}, "ctrl+c"},
		{"ctrl+rune", KeyEvent{Type: KeyRunes, Runes: []rune{'d'}, Ctrl: true}, "ctrl+d"},
		{"alt+rune", KeyEvent{Type: KeyRunes, Runes: []rune{'x'}, Alt: true}, "alt+x"},
		{"alt+special", KeyEvent{Type: KeyEnter, Alt: true}, "alt+enter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
