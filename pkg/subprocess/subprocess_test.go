package subprocess

import "testing"

func TestSpawnEmptyCommand(t *testing.T) {
	if err := Spawn(""); err == nil {
		t.Fatal("Spawn(\"\") should fail")
	}
}

func TestSpawnReturnsBeforeExit(t *testing.T) {
	// sleep would block for longer than any reasonable test timeout if
	// Spawn waited for completion.
	if err := Spawn("sleep 0.05"); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
}

func TestSpawnTrue(t *testing.T) {
	if err := Spawn("true"); err != nil {
		t.Fatalf("Spawn(true) failed: %v", err)
	}
}
