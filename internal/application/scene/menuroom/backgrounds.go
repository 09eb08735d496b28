package menuroom

import (
	"github.com/younwookim/dreamroom/internal/application/state"
	"github.com/younwookim/dreamroom/internal/infrastructure/config"
)

// BackgroundPath selects the background image for a scene and theme.
// The dream scene has a single image for both themes.
func BackgroundPath(bg config.BackgroundsConfig, s state.Scene, t state.Theme) string {
	switch s {
	case state.SceneMenu:
		if t == state.ThemeNight {
			return bg.MenuNight
		}
		return bg.MenuDay
	case state.SceneRoom:
		if t == state.ThemeNight {
			return bg.RoomNight
		}
		return bg.RoomDay
	default:
		return bg.Dream
	}
}
