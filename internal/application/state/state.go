// Package state holds the menu shell's closed state types and the fade transition.
package state

// Scene is the top-level screen being shown
type Scene int

const (
	SceneMenu Scene = iota
	SceneRoom
	SceneDream
)

// String returns the string representation of the scene
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneRoom:
		return "room"
	case SceneDream:
		return "dream"
	default:
		return "unknown"
	}
}

// CanTransitionTo reports whether the navigation graph has an edge s -> to.
// menu <-> room <-> dream; there is no direct path between menu and dream.
func (s Scene) CanTransitionTo(to Scene) bool {
	switch s {
	case SceneMenu:
		return to == SceneRoom
	case SceneRoom:
		return to == SceneMenu || to == SceneDream
	case SceneDream:
		return to == SceneRoom
	default:
		return false
	}
}

// Theme is the day/night variant of the backgrounds
type Theme int

const (
	ThemeDay Theme = iota
	ThemeNight
)

// String returns the string representation of the theme
func (t Theme) String() string {
	switch t {
	case ThemeDay:
		return "day"
	case ThemeNight:
		return "night"
	default:
		return "unknown"
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeNight {
		return ThemeDay
	}
	return ThemeNight
}

// Modal identifies the overlay panel currently open, if any.
// Keeping a single value means help and credits can never be open together.
type Modal int

const (
	ModalNone Modal = iota
	ModalHelp
	ModalCredits
)

// String returns the string representation of the modal
func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalHelp:
		return "help"
	case ModalCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// ShowHelp reports whether the help panel is open
func (m Modal) ShowHelp() bool {
	return m == ModalHelp
}

// ShowCredits reports whether the credits panel is open
func (m Modal) ShowCredits() bool {
	return m == ModalCredits
}
