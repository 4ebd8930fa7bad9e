package demo

import (
	"fmt"

	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/runtime"
	"github.com/muurk/viewloop/screen"
)

// CounterView is a minimal stateful view: a number adjusted by key presses.
// Escape navigates back to the menu via a deferred swap.
type CounterView struct {
	rt    *runtime.Runtime
	count int
}

// NewCounterView returns a counter starting at zero.
func NewCounterView(rt *runtime.Runtime) *CounterView {
	return &CounterView{rt: rt}
}

// Render implements view.View.
func (c *CounterView) Render(region screen.Region, buf *screen.Buffer) {
	area := region.Inset(1)
	if area.Empty() {
		return
	}

	buf.SetString(area.X, area.Y, TitleStyle.Render("counter"))

	style := PositiveStyle
	if c.count < 0 {
		style = NegativeStyle
	}
	buf.SetString(area.X, area.Y+2, style.Render(fmt.Sprintf("%d", c.count)))

	buf.SetString(area.X, area.Y+area.Height-1,
		HelpStyle.Render("+/- adjust · esc back · q quit"))
}

// HandleEvent implements view.EventHandler.
func (c *CounterView) HandleEvent(ev input.Event) error {
	k, ok := ev.(input.KeyEvent)
	if !ok {
		return nil
	}

	switch k.String() {
	case "+", "=", "up", "k":
		c.count++
	case "-", "_", "down", "j":
		c.count--
	case "esc":
		c.rt.RequestView(NewMenuView(c.rt))
	case "q", "ctrl+c":
		c.rt.Stop()
	}
	return nil
}
