// Package teaview embeds Bubble Tea models as viewloop views.
//
// A wrapped tea.Model never runs inside a tea.Program: rendering paints the
// model's View() output into the frame buffer, and event dispatch translates
// viewloop key events into tea.KeyMsg values, feeds them to Update and
// executes the returned commands inline. tea.Quit maps to Runtime.Stop.
//
// Commands run synchronously on the dispatch path, so models that rely on
// long-running commands (tea.Tick, network I/O) will stall the loop; this
// adapter is meant for event-driven components such as bubbles/textinput
// with a static cursor.
package teaview

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/runtime"
	"github.com/muurk/viewloop/screen"
)

// maxMsgsPerEvent bounds command draining for a single dispatched event, in
// case a model's commands keep producing messages.
const maxMsgsPerEvent = 64

// View hosts a tea.Model behind the viewloop View and EventHandler
// contracts.
type View struct {
	rt    *runtime.Runtime
	model tea.Model

	sizeMu   sync.Mutex
	width    int
	height   int
	sentSize bool
}

// New wraps model as a view driven by rt. The model's Init command runs
// immediately.
func New(rt *runtime.Runtime, model tea.Model) *View {
	v := &View{rt: rt, model: model}
	if cmd := model.Init(); cmd != nil {
		v.drain(cmd())
	}
	return v
}

// Render paints the model's current view into the region. It also records
// the region size so the next dispatched event can deliver a
// tea.WindowSizeMsg.
func (v *View) Render(region screen.Region, buf *screen.Buffer) {
	v.sizeMu.Lock()
	if region.Width != v.width || region.Height != v.height {
		v.width = region.Width
		v.height = region.Height
		v.sentSize = false
	}
	v.sizeMu.Unlock()

	buf.SetLines(region, v.model.View())
}

// HandleEvent translates ev for the model and runs the update cycle.
func (v *View) HandleEvent(ev input.Event) error {
	v.sizeMu.Lock()
	if !v.sentSize && (v.width > 0 || v.height > 0) {
		v.sentSize = true
		w, h := v.width, v.height
		v.sizeMu.Unlock()
		v.drain(tea.WindowSizeMsg{Width: w, Height: h})
	} else {
		v.sizeMu.Unlock()
	}

	msg := translate(ev)
	if msg == nil {
		return nil
	}
	v.drain(msg)
	return nil
}

// drain runs the model's update cycle for msg and every message produced by
// the returned commands, up to maxMsgsPerEvent.
func (v *View) drain(first tea.Msg) {
	queue := []tea.Msg{first}
	for n := 0; len(queue) > 0 && n < maxMsgsPerEvent; n++ {
		msg := queue[0]
		queue = queue[1:]
		if msg == nil {
			continue
		}

		switch m := msg.(type) {
		case tea.QuitMsg:
			v.rt.Stop()
			continue
		case tea.BatchMsg:
			for _, cmd := range m {
				if cmd != nil {
					queue = append(queue, cmd())
				}
			}
			continue
		}

		model, cmd := v.model.Update(msg)
		v.model = model
		if cmd != nil {
			queue = append(queue, cmd())
		}
	}
}

// translate maps a viewloop key event to its Bubble Tea equivalent. Events
// with no equivalent return nil and are ignored.
func translate(ev input.Event) tea.Msg {
	k, ok := ev.(input.KeyEvent)
	if !ok {
		return nil
	}

	switch k.Type {
	case input.KeyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter, Alt: k.Alt}
	case input.KeyTab:
		return tea.KeyMsg{Type: tea.KeyTab, Alt: k.Alt}
	case input.KeyBackspace:
		return tea.KeyMsg{Type: tea.KeyBackspace, Alt: k.Alt}
	case input.KeyEsc:
		return tea.KeyMsg{Type: tea.KeyEsc, Alt: k.Alt}
	case input.KeyUp:
		return tea.KeyMsg{Type: tea.KeyUp, Alt: k.Alt}
	case input.KeyDown:
		return tea.KeyMsg{Type: tea.KeyDown, Alt: k.Alt}
	case input.KeyLeft:
		return tea.KeyMsg{Type: tea.KeyLeft, Alt: k.Alt}
	case input.KeyRight:
		return tea.KeyMsg{Type: tea.KeyRight, Alt: k.Alt}
	case input.KeyHome:
		return tea.KeyMsg{Type: tea.KeyHome, Alt: k.Alt}
	case input.KeyEnd:
		return tea.KeyMsg{Type: tea.KeyEnd, Alt: k.Alt}
	case input.KeyDelete:
		return tea.KeyMsg{Type: tea.KeyDelete, Alt: k.Alt}
	case input.KeyCtrlC:
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case input.KeyRunes:
		if k.Ctrl {
			r := k.Rune()
			if r >= 'a' && r <= 'z' {
				// Bubble Tea's ctrl key types are the C0 byte values.
				return tea.KeyMsg{Type: tea.KeyType(r - 'a' + 1), Alt: k.Alt}
			}
			return nil
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: k.Runes, Alt: k.Alt}
	}
	return nil
}
