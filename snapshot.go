package framepress

// SnapshotTracker is the tracker variant for engines that expose the complete
// set of currently pressed inputs each frame. It keeps no input state between
// Updates beyond the press-time table itself.
type SnapshotTracker[I, C comparable] struct {
	controls[I, C]
}

// NewSnapshotTracker creates a snapshot tracker from an ordered list of
// bindings. Earlier bindings win when the same input appears twice.
func NewSnapshotTracker[I, C comparable](bindings ...Binding[I, C]) *SnapshotTracker[I, C] {
	return &SnapshotTracker[I, C]{controls: newControls(bindings)}
}

// Update advances press times given the inputs pressed this frame. Duplicate
// and unmapped entries are tolerated; a control is active when any of its
// inputs is present. Call it exactly once per frame, first thing, before game
// logic reads any queries.
func (t *SnapshotTracker[I, C]) Update(pressed ...I) {
	down := make(map[C]struct{}, len(pressed))
	for _, input := range pressed {
		ctrl, bound := t.config[input]
		if !bound {
			t.recordUnmapped()
			continue
		}
		down[ctrl] = struct{}{}
	}

	t.advance(func(ctrl C) bool {
		_, active := down[ctrl]
		return active
	})
}

// ClearInputs zeroes every press time immediately. Do not call this at the
// top of the frame right before Update: holds already in progress would read
// as fresh presses. It is meant for mid-frame resets such as a device
// disconnect or a rebinding pass.
func (t *SnapshotTracker[I, C]) ClearInputs() {
	clear(t.times)
	t.recordClear()
}
