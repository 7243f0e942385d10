package state

// Key is the symbolic key the selector reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyEscape
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pgup",
	KeyEscape:    "esc",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
)

// Has reports whether all of m are held.
func (mods Modifiers) Has(m Modifiers) bool { return mods&m == m }

// KeyEvent is a single key press. Rune is only meaningful for KeyChar.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

// Char builds a printable character event.
func Char(r rune) KeyEvent { return KeyEvent{Key: KeyChar, Rune: r} }

// Press builds a non-character event.
func Press(k Key) KeyEvent { return KeyEvent{Key: k} }

// cancels reports whether the event is the cancel combination.
func (ev KeyEvent) cancels() bool {
	return ev.Key == KeyChar && ev.Mods.Has(ModCtrl) && (ev.Rune == 'c' || ev.Rune == 'C')
}

// Closes reports whether the event always closes the selector: Escape or
// the cancel combination.
func (ev KeyEvent) Closes() bool {
	return ev.Key == KeyEscape || ev.cancels()
}
