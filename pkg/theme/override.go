package theme

import (
	"fmt"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Apply returns a copy of t with per-state foreground overrides from
// configuration applied. Keys are state names plus "separator"; values
// are hex colors. An unknown key or malformed color is a construction
// error so typos surface at startup, not as silently ignored settings.
func Apply(t Theme, overrides map[string]string) (Theme, error) {
	for key, color := range overrides {
		if !hexColor.MatchString(color) {
			return Theme{}, fmt.Errorf("theme override %q: %q is not a hex color", key, color)
		}
		switch key {
		case "good":
			t.Good.FG = color
		case "idle":
			t.Idle.FG = color
		case "info":
			t.Info.FG = color
		case "warning":
			t.Warning.FG = color
		case "critical":
			t.Critical.FG = color
		case "separator":
			t.Separator.FG = color
		default:
			return Theme{}, fmt.Errorf("unknown theme override key %q", key)
		}
	}
	return t, nil
}
