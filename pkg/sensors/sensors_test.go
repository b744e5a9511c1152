package sensors

import (
	"encoding/json"
	"testing"
)

const sampleOutput = `{
  "coretemp-isa-0000": {
    "Adapter": "ISA adapter",
    "Package id 0": {
      "temp1_input": 42.000,
      "temp1_max": 80.000,
      "temp1_crit": 100.000
    },
    "Core 0": {
      "temp2_input": 41.000,
      "temp2_max": 80.000
    }
  },
  "acpitz-acpi-0": {
    "Adapter": "ACPI interface",
    "temp1": {
      "temp1_input": 38.500
    }
  }
}`

func TestParse(t *testing.T) {
	out, err := Parse([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("chips = %d, want 2", len(out))
	}
	core, ok := out["coretemp-isa-0000"]
	if !ok {
		t.Fatal("coretemp chip missing")
	}
	if len(core) != 3 {
		t.Errorf("coretemp inputs = %d, want 3", len(core))
	}
}

func TestParseTolleratesSurroundingWhitespace(t *testing.T) {
	if _, err := Parse([]byte("\n  " + sampleOutput + "\n")); err != nil {
		t.Fatalf("Parse failed on padded input: %v", err)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte("sensors: command not found")); err == nil {
		t.Fatal("Parse should fail on non-JSON output")
	}
}

func TestReadingsNumericMap(t *testing.T) {
	out, err := Parse([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	values, ok := Readings(out["coretemp-isa-0000"]["Package id 0"])
	if !ok {
		t.Fatal("Readings should interpret a numeric map")
	}
	if values["temp1_input"] != 42.0 {
		t.Errorf("temp1_input = %v", values["temp1_input"])
	}
}

func TestReadingsSkipsDescriptor(t *testing.T) {
	if _, ok := Readings(json.RawMessage(`"ISA adapter"`)); ok {
		t.Error("Readings should reject the Adapter descriptor")
	}
	if _, ok := Readings(json.RawMessage(`{"label": "Core 0"}`)); ok {
		t.Error("Readings should reject maps with non-numeric values")
	}
}
