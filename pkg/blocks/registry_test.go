package blocks

import (
	"errors"
	"testing"
	"time"
)

func TestRegistryOrderPreserved(t *testing.T) {
	r := NewRegistry()
	a := NewMockBlock(time.Second, WithID("a"))
	b := NewMockBlock(time.Second, WithID("b"))
	c := NewMockBlock(time.Second, WithID("c"))

	for _, blk := range []*MockBlock{c, a, b} {
		if err := r.Register(blk); err != nil {
			t.Fatalf("Register(%s) failed: %v", blk.ID(), err)
		}
	}

	got := r.Blocks()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("Blocks len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Errorf("Blocks[%d] = %q, want %q (registration order)", i, got[i].ID(), id)
		}
	}
}

func TestRegistryDuplicateIdentity(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewMockBlock(time.Second, WithID("dup"))); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := r.Register(NewMockBlock(time.Second, WithID("dup"))); err == nil {
		t.Fatal("second Register with same identity should fail")
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockBlock(time.Second, WithID("x")))

	if _, ok := r.Get("x"); !ok {
		t.Error("Get(x) = false")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) = true")
	}
}

func TestRegistryStatusUpdates(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockBlock(time.Second, WithID("s")))

	bErr := errors.New("cycle failed")
	r.UpdateStatus("s", func(s *Status) {
		s.RunCount++
		s.ErrorCount++
		s.LastError = bErr
		s.Healthy = false
	})

	st, ok := r.Status("s")
	if !ok {
		t.Fatal("Status(s) not found")
	}
	if st.RunCount != 1 || st.ErrorCount != 1 || !errors.Is(st.LastError, bErr) || st.Healthy {
		t.Errorf("Status = %+v", st)
	}

	// Copy semantics: mutating the returned value must not leak back.
	st.RunCount = 99
	st2, _ := r.Status("s")
	if st2.RunCount != 1 {
		t.Errorf("Status copy leaked: RunCount = %d", st2.RunCount)
	}
}

func TestRegistryAllStatusOrder(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewMockBlock(time.Second, WithID("z")))
	_ = r.Register(NewMockBlock(time.Second, WithID("a")))

	all := r.AllStatus()
	if len(all) != 2 || all[0].ID != "z" || all[1].ID != "a" {
		t.Errorf("AllStatus order = %v, want registration order", all)
	}
}

func TestMockBlockIdentitiesUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		m := NewMockBlock(time.Second)
		if seen[m.ID()] {
			t.Fatalf("identity collision: %q", m.ID())
		}
		seen[m.ID()] = true
	}
}
