package input

// NamedKey identifies keys that do not produce text.
type NamedKey uint16

const (
	KeyUnidentified NamedKey = iota
	// KeyCharacter marks a Key whose meaning is carried in Key.Text.
	KeyCharacter
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var namedKeyNames = map[NamedKey]string{
	KeyUnidentified: "Unidentified",
	KeyCharacter:    "Character",
	KeyTab:          "Tab",
	KeyEnter:        "Enter",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyArrowUp:      "ArrowUp",
	KeyArrowDown:    "ArrowDown",
	KeyArrowLeft:    "ArrowLeft",
	KeyArrowRight:   "ArrowRight",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
}

func (k NamedKey) String() string {
	if name, ok := namedKeyNames[k]; ok {
		return name
	}
	return "Unidentified"
}

// Key is a logical key: either a named key or a character.
type Key struct {
	Named NamedKey
	Text  string
}

// Named returns a Key for a named key.
func Named(k NamedKey) Key {
	return Key{Named: k}
}

// Character returns a Key for the given character text.
func Character(text string) Key {
	return Key{Named: KeyCharacter, Text: text}
}

// IsCharacter reports whether k is the character text.
func (k Key) IsCharacter(text string) bool {
	return k.Named == KeyCharacter && k.Text == text
}

func (k Key) String() string {
	if k.Named == KeyCharacter {
		return "Character(" + k.Text + ")"
	}
	return k.Named.String()
}

// KeyEvent is a single key press or release.
type KeyEvent struct {
	// Logical is the key after applying the keyboard layout.
	Logical Key
	// Physical is the platform scan code.
	Physical uint32
	// Text is the text produced by the key, if any.
	Text   string
	State  ElementState
	Repeat bool
}
