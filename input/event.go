package input

import "fmt"

// Event is a single input event. The only concrete type today is KeyEvent;
// the interface leaves room for other event kinds without changing the
// handler contract.
type Event interface {
	fmt.Stringer
	isEvent()
}

// KeyType identifies a key that is not an ordinary printable rune.
type KeyType int

const (
	// KeyRunes is a printable key; the runes are carried in KeyEvent.Runes.
	KeyRunes KeyType = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyCtrlC
)

var keyNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyCtrlC:     "ctrl+c",
}

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Type  KeyType
	Runes []rune
	Alt   bool
	Ctrl  bool
}

func (KeyEvent) isEvent() {}

// String returns a readable name for the key press, e.g. "a", "enter",
// "ctrl+d", "alt+x". Handlers typically switch on this.
func (k KeyEvent) String() string {
	var prefix string
	if k.Ctrl && k.Type == KeyRunes {
		prefix = "ctrl+"
	}
	if k.Alt {
		prefix = "alt+" + prefix
	}
	if name, ok := keyNames[k.Type]; ok {
		return prefix + name
	}
	return prefix + string(k.Runes)
}

// Rune returns the first rune of a KeyRunes event, or 0 for special keys.
func (k KeyEvent) Rune() rune {
	if k.Type == KeyRunes && len(k.Runes) > 0 {
		return k.Runes[0]
	}
	return 0
}
