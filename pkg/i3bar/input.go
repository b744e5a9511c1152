package i3bar

import (
	"bufio"
	"encoding/json"
	"strings"

	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
)

// clickEvent is the wire shape of one i3bar click.
type clickEvent struct {
	Name   string `json:"name"`
	Button int    `json:"button"`
}

// decodeButton maps i3bar button numbers to input buttons.
func decodeButton(n int) input.Button {
	switch n {
	case 1:
		return input.ButtonLeft
	case 2:
		return input.ButtonMiddle
	case 3:
		return input.ButtonRight
	case 4:
		return input.ButtonWheelUp
	case 5:
		return input.ButtonWheelDown
	default:
		return input.ButtonUnknown
	}
}

// parseClick decodes one line of the click stream. The stream is an
// endless JSON array written incrementally, so lines carry array
// punctuation that has to be stripped before decoding. ok is false for
// lines that hold no event (the opening bracket, blank lines).
func parseClick(line string) (input.Event, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimPrefix(s, ",")
	s = strings.TrimSpace(s)
	if s == "" {
		return input.Event{}, false
	}
	var ev clickEvent
	if err := json.Unmarshal([]byte(s), &ev); err != nil {
		return input.Event{}, false
	}
	return input.Event{Name: ev.Name, Button: decodeButton(ev.Button)}, true
}

// ReadClicks decodes the click stream from r and forwards each event to
// ch until r closes. Malformed lines are skipped; a click stream hiccup
// must not take the bar down.
func ReadClicks(r *bufio.Scanner, ch chan<- input.Event) {
	for r.Scan() {
		if ev, ok := parseClick(r.Text()); ok {
			ch <- ev
		}
	}
}
