package format

import (
	"errors"
	"testing"
)

func TestRenderBasic(t *testing.T) {
	tpl, err := Parse("{a}-{b}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := tpl.Render(map[string]string{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != "x-y" {
		t.Errorf("Render = %q, want %q", got, "x-y")
	}
}

func TestRenderDeterministic(t *testing.T) {
	tpl, err := Parse("{average}° avg, {max}° max")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	values := map[string]string{"average": "40", "min": "18", "max": "61"}
	first, err := tpl.Render(values)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i := 0; i < 50; i++ {
		got, err := tpl.Render(values)
		if err != nil {
			t.Fatalf("Render failed on iteration %d: %v", i, err)
		}
		if got != first {
			t.Fatalf("Render not deterministic: %q vs %q", got, first)
		}
	}
	if first != "40° avg, 61° max" {
		t.Errorf("Render = %q, want %q", first, "40° avg, 61° max")
	}
}

func TestRenderLiteralOnly(t *testing.T) {
	tpl, err := Parse("plain text, no placeholders")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := tpl.Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != "plain text, no placeholders" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderUnknownPlaceholder(t *testing.T) {
	tpl, err := Parse("{present} and {missing}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, err = tpl.Render(map[string]string{"present": "ok"})
	if !errors.Is(err, ErrUnknownPlaceholder) {
		t.Fatalf("Render error = %v, want ErrUnknownPlaceholder", err)
	}
}

func TestParseUnterminated(t *testing.T) {
	_, err := Parse("{average}° avg, {max")
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("Parse error = %v, want ErrUnterminated", err)
	}
}

func TestParseBareCloseBraceIsLiteral(t *testing.T) {
	tpl, err := Parse("a}b{v}c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := tpl.Render(map[string]string{"v": "!"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != "a}b!c" {
		t.Errorf("Render = %q, want %q", got, "a}b!c")
	}
}

func TestPlaceholders(t *testing.T) {
	tpl, err := Parse("{min}/{max} ({min})")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := tpl.Placeholders()
	want := []string{"min", "max", "min"}
	if len(got) != len(want) {
		t.Fatalf("Placeholders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placeholders[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEmptyTemplate(t *testing.T) {
	tpl, err := Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := tpl.Render(nil)
	if err != nil || got != "" {
		t.Errorf("Render = (%q, %v), want empty", got, err)
	}
}
