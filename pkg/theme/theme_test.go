package theme

import (
	"regexp"
	"testing"

	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestGetKnownTheme(t *testing.T) {
	th := Get("slick")
	if th.Name != "slick" {
		t.Errorf("Get(slick).Name = %q", th.Name)
	}
}

func TestGetUnknownFallsBackToPlain(t *testing.T) {
	th := Get("no-such-theme")
	if th.Name != "plain" {
		t.Errorf("fallback theme = %q, want plain", th.Name)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	th := Get("Solarized-Dark")
	if th.Name != "solarized-dark" {
		t.Errorf("Get(Solarized-Dark).Name = %q", th.Name)
	}
}

func TestStateColorsCoverAllStates(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		states := []widget.State{
			widget.StateGood, widget.StateIdle, widget.StateInfo,
			widget.StateWarning, widget.StateCritical,
		}
		for _, s := range states {
			c := th.StateColors(s)
			if !hexPattern.MatchString(c.FG) {
				t.Errorf("%s: StateColors(%v).FG = %q, not a hex color", name, s, c.FG)
			}
			if !hexPattern.MatchString(c.BG) {
				t.Errorf("%s: StateColors(%v).BG = %q, not a hex color", name, s, c.BG)
			}
		}
	}
}

func TestIconSet(t *testing.T) {
	if got := IconSet("ascii")["thermometer"]; got != "T" {
		t.Errorf("ascii thermometer = %q", got)
	}
	if got := IconSet("none")["thermometer"]; got != "" {
		t.Errorf("none set should be empty, got %q", got)
	}
	if got := IconSet("bogus")["time"]; got != "" {
		t.Errorf("unknown set should be empty, got %q", got)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Fatalf("Names = %v, want at least 3 builtins", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names not sorted: %v", names)
		}
	}
}
