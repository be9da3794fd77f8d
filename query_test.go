package framepress

import "testing"

func newTestQueryTracker() *QueryTracker[key, control] {
	return NewQueryTracker(
		Binding[key, control]{Input: keyW, Control: ctrlUp},
		Binding[key, control]{Input: keyUp, Control: ctrlUp},
		Binding[key, control]{Input: keyS, Control: ctrlDown},
	)
}

func TestQueryTrackerPressSequence(t *testing.T) {
	tr := newTestQueryTracker()

	always := func(key) bool { return true }
	never := func(key) bool { return false }

	wantTimes := []uint32{1, 2, 3}
	for i, want := range wantTimes {
		tr.Update(always)
		if got := tr.PressTime(ctrlUp); got != want {
			t.Fatalf("frame %d: PressTime(up) = %d, want %d", i+1, got, want)
		}
		if wantJust := i == 0; tr.JustPressed(ctrlUp) != wantJust {
			t.Errorf("frame %d: JustPressed(up) = %v, want %v", i+1, !wantJust, wantJust)
		}
	}

	tr.Update(never)
	if got := tr.PressTime(ctrlUp); got != 0 {
		t.Errorf("after release: PressTime(up) = %d, want 0", got)
	}
}

func TestQueryTrackerPredicatePerInput(t *testing.T) {
	tr := newTestQueryTracker()

	// The predicate runs once per configured input, even when several inputs
	// share a control.
	calls := make(map[key]int)
	tr.Update(func(k key) bool {
		calls[k]++
		return false
	})

	if len(calls) != 3 {
		t.Fatalf("predicate saw %d distinct inputs, want 3", len(calls))
	}
	for k, n := range calls {
		if n != 1 {
			t.Errorf("predicate called %d times for input %d, want 1", n, k)
		}
	}
}

func TestQueryTrackerManyToOne(t *testing.T) {
	tr := newTestQueryTracker()

	// Both inputs of one control reporting pressed advance it exactly once.
	tr.Update(func(k key) bool { return k == keyW || k == keyUp })
	if got := tr.PressTime(ctrlUp); got != 1 {
		t.Fatalf("PressTime(up) = %d, want 1", got)
	}

	// Switching which physical input is held keeps the hold continuous.
	tr.Update(func(k key) bool { return k == keyUp })
	if got := tr.PressTime(ctrlUp); got != 2 {
		t.Errorf("PressTime(up) = %d, want 2", got)
	}
}

func TestQueryTrackerClearInputs(t *testing.T) {
	tr := newTestQueryTracker()

	for i := 0; i < 3; i++ {
		tr.Update(func(key) bool { return true })
	}

	tr.ClearInputs()
	tr.Update(func(key) bool { return false })

	for _, ctrl := range []control{ctrlUp, ctrlDown} {
		if got := tr.PressTime(ctrl); got != 0 {
			t.Errorf("PressTime(%s) = %d, want 0", ctrl, got)
		}
	}
}

func TestQueryTrackerNoBindings(t *testing.T) {
	tr := NewQueryTracker[key, control]()

	called := false
	tr.Update(func(key) bool {
		called = true
		return true
	})

	if called {
		t.Error("predicate called with empty configuration")
	}
	if tr.IsDown(ctrlUp) {
		t.Error("IsDown(up) = true with empty configuration, want false")
	}
}
