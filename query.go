package framepress

// QueryTracker is the tracker variant for engines that answer "is this input
// pressed right now?" through a polling function, typically bound to some
// engine context.
type QueryTracker[I, C comparable] struct {
	controls[I, C]
}

// NewQueryTracker creates a query tracker from an ordered list of bindings.
// Earlier bindings win when the same input appears twice.
func NewQueryTracker[I, C comparable](bindings ...Binding[I, C]) *QueryTracker[I, C] {
	return &QueryTracker[I, C]{controls: newControls(bindings)}
}

// Update invokes isDown once for every configured input, ORs the results per
// control, and advances press times. The predicate may be expensive or carry
// side effects; calls are not cached or deduplicated across inputs mapping to
// the same control. Call Update exactly once per frame, first thing, before
// game logic reads any queries.
func (t *QueryTracker[I, C]) Update(isDown func(I) bool) {
	down := make(map[C]struct{}, len(t.times))
	for input, ctrl := range t.config {
		if isDown(input) {
			down[ctrl] = struct{}{}
		}
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
func (t *QueryTracker[I, C]) ClearInputs() {
	clear(t.times)
	t.recordClear()
}
