package framepress

import "iter"

// EventTracker is the tracker variant for engines that push discrete input
// down/up notifications. Notifications may arrive in bursts and be coalesced
// at arbitrary points within a frame; the tracker buffers them into a pending
// set and resolves press times once per Update, so counters change exactly
// once per frame regardless of notification order or multiplicity. An input
// that goes down, up, and down again between two Updates still reads as
// active that frame.
type EventTracker[I, C comparable] struct {
	controls[I, C]

	// pending holds the controls currently considered down based on the
	// notifications received so far. It persists across frames until an
	// InputUp or ClearInputs changes it.
	pending map[C]struct{}
}

// NewEventTracker creates an event tracker from an ordered list of bindings.
// Earlier bindings win when the same input appears twice.
func NewEventTracker[I, C comparable](bindings ...Binding[I, C]) *EventTracker[I, C] {
	return &EventTracker[I, C]{
		controls: newControls(bindings),
		pending:  make(map[C]struct{}),
	}
}

// InputDown records that input went down. Unmapped inputs are ignored. The
// effect on press times is deferred until the next Update.
func (t *EventTracker[I, C]) InputDown(input I) {
	ctrl, bound := t.config[input]
	if !bound {
		t.recordUnmapped()
		return
	}
	if t.metrics != nil {
		t.metrics.RecordInputEvent()
	}
	t.pending[ctrl] = struct{}{}
}

// InputUp records that input went up. Unmapped inputs are ignored.
func (t *EventTracker[I, C]) InputUp(input I) {
	ctrl, bound := t.config[input]
	if !bound {
		t.recordUnmapped()
		return
	}
	if t.metrics != nil {
		t.metrics.RecordInputEvent()
	}
	delete(t.pending, ctrl)
}

// Update resolves the pending notifications into press times. Call it exactly
// once per frame, first thing, before game logic reads any queries.
func (t *EventTracker[I, C]) Update() {
	t.advance(func(ctrl C) bool {
		_, down := t.pending[ctrl]
		return down
	})
}

// ClearInputs releases every pending control immediately, as if InputUp had
// been called for every possible input. Press times zero out on the next
// Update. Do not call this at the top of the frame right before Update: that
// Update would observe no activity and nothing would ever register as
// pressed. It is meant for mid-frame resets such as a device disconnect.
func (t *EventTracker[I, C]) ClearInputs() {
	clear(t.pending)
	t.recordClear()
}

// PressedBinding is one row of the AllPressed sequence.
type PressedBinding[I, C comparable] struct {
	Input   I
	Control C
	Frames  uint32
}

// AllPressed returns a lazy sequence with one row per configured input,
// carrying the input, its control, and the control's current press time.
// The sequence reads live state and is recomputed fresh on each call; it
// exists for bulk-unbinding scenarios, such as releasing every input of a
// gamepad that was just unplugged.
func (t *EventTracker[I, C]) AllPressed() iter.Seq[PressedBinding[I, C]] {
	return func(yield func(PressedBinding[I, C]) bool) {
		for input, ctrl := range t.config {
			row := PressedBinding[I, C]{
				Input:   input,
				Control: ctrl,
				Frames:  t.times[ctrl],
			}
			if !yield(row) {
				return
			}
		}
	}
}
