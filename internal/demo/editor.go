package demo

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/viewloop/runtime"
	"github.com/muurk/viewloop/teaview"
	"github.com/muurk/viewloop/view"
)

// NewEditorView returns a text-entry view built from a Bubble Tea model
// hosted through teaview. It demonstrates that existing bubbles components
// run unchanged inside the viewloop runtime.
func NewEditorView(rt *runtime.Runtime) view.View {
	ti := textinput.New()
	ti.Placeholder = "type something and press enter"
	ti.Prompt = "> "
	ti.CharLimit = 80
	// Blink commands would stall the synchronous dispatch path.
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	return teaview.New(rt, editorModel{rt: rt, ti: ti})
}

type editorModel struct {
	rt   *runtime.Runtime
	ti   textinput.Model
	last string
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.rt.RequestView(NewMenuView(m.rt))
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.last = m.ti.Value()
			m.ti.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	lines := []string{
		TitleStyle.Render("editor"),
		"",
		m.ti.View(),
	}
	if m.last != "" {
		lines = append(lines, "", DescStyle.Render("last entry: ")+m.last)
	}
	lines = append(lines, "", HelpStyle.Render("enter submit · esc back · ctrl+c quit"))

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}
