package demo

import (
	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/runtime"
	"github.com/muurk/viewloop/screen"
	"github.com/muurk/viewloop/view"
)

type menuItem struct {
	title string
	desc  string
	build func() view.View
}

// MenuView is the demo's start screen: a cursor-driven list of the other
// views. Selecting an entry requests a deferred swap to that view.
type MenuView struct {
	rt     *runtime.Runtime
	cursor int
	items  []menuItem
}

// NewMenuView returns the menu wired to rt.
func NewMenuView(rt *runtime.Runtime) *MenuView {
	return &MenuView{
		rt: rt,
		items: []menuItem{
			{
				title: "counter",
				desc:  "increment and decrement a number",
				build: func() view.View { return NewCounterView(rt) },
			},
			{
				title: "editor",
				desc:  "a Bubble Tea text input embedded as a view",
				build: func() view.View { return NewEditorView(rt) },
			},
		},
	}
}

// Render implements view.View.
func (m *MenuView) Render(region screen.Region, buf *screen.Buffer) {
	area := region.Inset(1)
	if area.Empty() {
		return
	}

	buf.SetString(area.X, area.Y, TitleStyle.Render("viewloop demo"))

	for i, item := range m.items {
		y := area.Y + 2 + i
		prefix := "  "
		style := ItemStyle
		if i == m.cursor {
			prefix = "> "
			style = SelectedItemStyle
		}
		buf.SetString(area.X, y, style.Render(prefix+item.title))
		buf.SetString(area.X+12, y, DescStyle.Render(item.desc))
	}

	buf.SetString(area.X, area.Y+area.Height-1,
		HelpStyle.Render("up/down move · enter open · q quit"))
}

// HandleEvent implements view.EventHandler.
func (m *MenuView) HandleEvent(ev input.Event) error {
	k, ok := ev.(input.KeyEvent)
	if !ok {
		return nil
	}

	switch k.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.rt.RequestView(m.items[m.cursor].build())
	case "q", "ctrl+c":
		m.rt.Stop()
	}
	return nil
}
