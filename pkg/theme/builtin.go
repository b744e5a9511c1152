package theme

// builtins returns the built-in themes. "plain" is the fallback used
// when configuration names an unknown theme.
func builtins() []Theme {
	return []Theme{
		plainTheme(),
		slickTheme(),
		solarizedDarkTheme(),
	}
}

// iconsASCII is the portable icon set, safe on any font.
var iconsASCII = map[string]string{
	"thermometer": "T",
	"time":        "@",
	"load":        "L",
}

// iconsGlyph uses Font Awesome glyphs, matching common bar setups.
var iconsGlyph = map[string]string{
	"thermometer": "",
	"time":        "",
	"load":        "",
}

// IconSet returns a named icon set ("ascii", "glyph", "none").
// Unknown names fall back to "none".
func IconSet(name string) map[string]string {
	switch name {
	case "ascii":
		return iconsASCII
	case "glyph":
		return iconsGlyph
	default:
		return map[string]string{}
	}
}

func plainTheme() Theme {
	return Theme{
		Name:      "plain",
		Separator: Colors{FG: "#666666", BG: "#000000"},
		Good:      Colors{FG: "#8fa876", BG: "#000000"},
		Idle:      Colors{FG: "#d4d4d4", BG: "#000000"},
		Info:      Colors{FG: "#61afef", BG: "#000000"},
		Warning:   Colors{FG: "#e5c07b", BG: "#000000"},
		Critical:  Colors{FG: "#e06c75", BG: "#000000"},
		Icons:     iconsASCII,
	}
}

func slickTheme() Theme {
	return Theme{
		Name:      "slick",
		Separator: Colors{FG: "#333333", BG: "#111111"},
		Good:      Colors{FG: "#111111", BG: "#4ec970"},
		Idle:      Colors{FG: "#d4d4d4", BG: "#111111"},
		Info:      Colors{FG: "#111111", BG: "#61afef"},
		Warning:   Colors{FG: "#111111", BG: "#e5c07b"},
		Critical:  Colors{FG: "#ffffff", BG: "#e06c75"},
		Icons:     iconsGlyph,
	}
}

func solarizedDarkTheme() Theme {
	return Theme{
		Name:      "solarized-dark",
		Separator: Colors{FG: "#073642", BG: "#002b36"},
		Good:      Colors{FG: "#859900", BG: "#002b36"},
		Idle:      Colors{FG: "#839496", BG: "#002b36"},
		Info:      Colors{FG: "#268bd2", BG: "#002b36"},
		Warning:   Colors{FG: "#b58900", BG: "#002b36"},
		Critical:  Colors{FG: "#dc322f", BG: "#002b36"},
		Icons:     iconsGlyph,
	}
}
