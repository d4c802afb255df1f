// Package input defines the logical keys and key events the game consumes,
// and turns a raw terminal byte stream into those events.
package input

// Key is a logical key code, independent of the host that produced it.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyQuit // 'q' or Ctrl-C on a terminal
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeySpace:   "Space",
	KeyEnter:   "Enter",
	KeyEscape:  "Escape",
	KeyQuit:    "Quit",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// EventKind distinguishes key presses from releases.
type EventKind int

const (
	KeyPress EventKind = iota
	KeyRelease
)

func (k EventKind) String() string {
	if k == KeyRelease {
		return "release"
	}
	return "press"
}

// Event is a single key transition delivered by a host.
type Event struct {
	Kind EventKind
	Key  Key
}

// Press returns a key-press event for k.
func Press(k Key) Event {
	return Event{Kind: KeyPress, Key: k}
}

// Release returns a key-release event for k.
func Release(k Key) Event {
	return Event{Kind: KeyRelease, Key: k}
}

// IsExit reports whether the event asks the host to terminate.
func (e Event) IsExit() bool {
	return e.Kind == KeyPress && (e.Key == KeyEscape || e.Key == KeyQuit)
}

// KeySet is the set of currently pressed keys.
type KeySet map[Key]struct{}

// NewKeySet returns an empty key set.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Insert adds k to the set.
func (s KeySet) Insert(k Key) {
	s[k] = struct{}{}
}

// Remove deletes k from the set. Removing an absent key is a no-op.
func (s KeySet) Remove(k Key) {
	delete(s, k)
}

// Contains reports whether k is pressed.
func (s KeySet) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}
