// Package input maps key events to logical actions and tracks their state
// between frames.
package input

import "fmt"

// Action is a logical input action.
type Action int

const (
	None Action = iota
	RotateLeft
	RotateRight
	RotateUp
	RotateDown
	ToggleAutoRotate
	ToggleLighting
	ToggleFullscreen
	Exit
)

var actionNames = map[Action]string{
	None:             "none",
	RotateLeft:       "rotate-left",
	RotateRight:      "rotate-right",
	RotateUp:         "rotate-up",
	RotateDown:       "rotate-down",
	ToggleAutoRotate: "toggle-auto-rotate",
	ToggleLighting:   "toggle-lighting",
	ToggleFullscreen: "toggle-fullscreen",
	Exit:             "exit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Toggle reports whether the action flips a flag on key release rather than
// following the key while held.
func (a Action) Toggle() bool {
	switch a {
	case ToggleAutoRotate, ToggleLighting, ToggleFullscreen:
		return true
	}
	return false
}

// Bindings maps keys to actions.
type Bindings map[Key]Action

// DefaultBindings rotates with WASD and the arrow keys.
func DefaultBindings() Bindings {
	return Bindings{
		KeyA:      RotateLeft,
		KeyLeft:   RotateLeft,
		KeyD:      RotateRight,
		KeyRight:  RotateRight,
		KeyW:      RotateUp,
		KeyUp:     RotateUp,
		KeyS:      RotateDown,
		KeyDown:   RotateDown,
		KeySpace:  ToggleAutoRotate,
		KeyL:      ToggleLighting,
		KeyF:      ToggleFullscreen,
		KeyEscape: Exit,
	}
}

// State holds the current value of every action. Directional actions are true
// while any key bound to them is held. Toggles flip once per key release so a
// held key cannot retrigger them. Exit latches on key press.
type State struct {
	bindings Bindings
	flags    map[Action]bool
	held     map[Action]map[Key]bool
	exit     bool
}

// NewState starts with every flag false except the given toggles.
func NewState(bindings Bindings, enabled ...Action) *State {
	s := &State{
		bindings: bindings,
		flags:    make(map[Action]bool),
		held:     make(map[Action]map[Key]bool),
	}
	for _, a := range enabled {
		s.flags[a] = true
	}
	return s
}

// KeyDown applies a key press and returns the action it is bound to.
func (s *State) KeyDown(key Key) Action {
	a := s.bindings[key]
	switch {
	case a == None, a.Toggle():
	case a == Exit:
		s.exit = true
	default:
		if s.held[a] == nil {
			s.held[a] = make(map[Key]bool)
		}
		s.held[a][key] = true
		s.flags[a] = true
	}
	return a
}

// KeyUp applies a key release and returns the action it is bound to.
func (s *State) KeyUp(key Key) Action {
	a := s.bindings[key]
	switch {
	case a == None, a == Exit:
	case a.Toggle():
		s.flags[a] = !s.flags[a]
	default:
		delete(s.held[a], key)
		s.flags[a] = len(s.held[a]) > 0
	}
	return a
}

// Active reports the current value of a directional action or toggle.
func (s *State) Active(a Action) bool {
	return s.flags[a]
}

// Set forces a toggle, e.g. to mirror a window that left fullscreen on its
// own. Directional actions follow their keys and are not affected.
func (s *State) Set(a Action, on bool) {
	if a.Toggle() {
		s.flags[a] = on
	}
}

// ExitRequested reports whether the exit key has been pressed.
func (s *State) ExitRequested() bool {
	return s.exit
}
