package demo

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/runtime"
	"github.com/muurk/viewloop/screen"
)

func key(r rune) input.KeyEvent {
	return input.KeyEvent{Type: input.KeyRunes, Runes: []rune{r}}
}

func special(t input.KeyType) input.KeyEvent {
	return input.KeyEvent{Type: t}
}

func renderToText(t *testing.T, v interface {
	Render(screen.Region, *screen.Buffer)
}) string {
	t.Helper()
	buf := screen.NewBuffer(60, 10)
	v.Render(buf.Region(), buf)
	var lines []string
	for y := 0; y < 10; y++ {
		lines = append(lines, ansi.Strip(buf.Line(y)))
	}
	return strings.Join(lines, "\n")
}

func TestMenuCursorMovement(t *testing.T) {
	rt := runtime.New()
	m := NewMenuView(rt)
	rt.Initialize(m)

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	if err := m.HandleEvent(special(input.KeyDown)); err != nil {
		t.Fatalf("HandleEvent(down) error = %v", err)
	}
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	// Clamped at the bottom
	if err := m.HandleEvent(key('j')); err != nil {
		t.Fatalf("HandleEvent(j) error = %v", err)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor after second down = %d, want %d", m.cursor, len(m.items)-1)
	}

	if err := m.HandleEvent(special(input.KeyUp)); err != nil {
		t.Fatalf("HandleEvent(up) error = %v", err)
	}
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}
}

func TestMenuQuit(t *testing.T) {
	rt := runtime.New()
	m := NewMenuView(rt)
	rt.Initialize(m)

	if err := m.HandleEvent(key('q')); err != nil {
		t.Fatalf("HandleEvent(q) error = %v", err)
	}
	if rt.IsRunning() {
		t.Error("IsRunning() = true after q")
	}
}

func TestMenuRender(t *testing.T) {
	rt := runtime.New()
	m := NewMenuView(rt)
	rt.Initialize(m)

	text := renderToText(t, m)
	for _, want := range []string{"viewloop demo", "counter", "editor"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered menu missing %q:\n%s", want, text)
		}
	}
}

func TestCounterView(t *testing.T) {
	rt := runtime.New()
	c := NewCounterView(rt)
	rt.Initialize(c)

	for _, ev := range []input.Event{key('+'), key('+'), key('-')} {
		if err := c.HandleEvent(ev); err != nil {
			t.Fatalf("HandleEvent() error = %v", err)
		}
	}
	if c.count != 1 {
		t.Errorf("count = %d, want 1", c.count)
	}

	text := renderToText(t, c)
	if !strings.Contains(text, "1") {
		t.Errorf("rendered counter missing value:\n%s", text)
	}
}

// Selecting a menu entry swaps the active view on the next loop iteration.
func TestMenuSelectionSwapsView(t *testing.T) {
	surface := &recordingSurface{}
	source := &scriptedSource{events: []input.Event{
		special(input.KeyEnter), // open counter
		key('+'),                // counter sees this
		key('q'),                // counter stops the app
	}}
	rt := runtime.New(runtime.WithSurface(surface), runtime.WithEventSource(source))
	rt.Initialize(NewMenuView(rt))

	if err := rt.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(surface.frames) != 3 {
		t.Fatalf("frames drawn = %d, want 3", len(surface.frames))
	}
	if !strings.Contains(surface.frames[0], "viewloop demo") {
		t.Errorf("frame 0 should be the menu:\n%s", surface.frames[0])
	}
	if !strings.Contains(surface.frames[1], "counter") {
		t.Errorf("frame 1 should be the counter:\n%s", surface.frames[1])
	}
	if !strings.Contains(surface.frames[2], "1") {
		t.Errorf("frame 2 should show the incremented counter:\n%s", surface.frames[2])
	}
}

type recordingSurface struct {
	frames []string
}

func (s *recordingSurface) Draw(render func(screen.Region, *screen.Buffer)) error {
	buf := screen.NewBuffer(60, 10)
	render(buf.Region(), buf)
	var lines []string
	for y := 0; y < 10; y++ {
		lines = append(lines, ansi.Strip(buf.Line(y)))
	}
	s.frames = append(s.frames, strings.Join(lines, "\n"))
	return nil
}

func (s *recordingSurface) Release() error { return nil }

type scriptedSource struct {
	events []input.Event
}

func (s *scriptedSource) ReadEvent() (input.Event, error) {
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}
