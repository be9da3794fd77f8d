package bindings

import (
	"fmt"

	"github.com/dshills/framepress"
)

// Entry is one row of a control configuration: a named input mapped to a
// named control, optionally tagged with the device it belongs to.
type Entry struct {
	Input   string `toml:"input"`
	Control string `toml:"control"`
	Device  string `toml:"device,omitempty"`
}

// validate checks that every row has an input and a control.
func validate(entries []Entry) error {
	for i, e := range entries {
		if e.Input == "" {
			return fmt.Errorf("bind %d: empty input", i)
		}
		if e.Control == "" {
			return fmt.Errorf("bind %d (%s): empty control", i, e.Input)
		}
	}
	return nil
}

// Resolve converts rows into typed tracker bindings through caller-supplied
// parsers, preserving row order.
func Resolve[I, C comparable](entries []Entry, parseInput func(string) (I, error), parseControl func(string) (C, error)) ([]framepress.Binding[I, C], error) {
	out := make([]framepress.Binding[I, C], 0, len(entries))
	for i, e := range entries {
		input, err := parseInput(e.Input)
		if err != nil {
			return nil, fmt.Errorf("bind %d: input %q: %w", i, e.Input, err)
		}
		ctrl, err := parseControl(e.Control)
		if err != nil {
			return nil, fmt.Errorf("bind %d: control %q: %w", i, e.Control, err)
		}
		out = append(out, framepress.Binding[I, C]{Input: input, Control: ctrl})
	}
	return out, nil
}

// ResolveStrings converts rows into string-keyed tracker bindings,
// preserving row order.
func ResolveStrings(entries []Entry) []framepress.Binding[string, string] {
	out := make([]framepress.Binding[string, string], 0, len(entries))
	for _, e := range entries {
		out = append(out, framepress.Binding[string, string]{Input: e.Input, Control: e.Control})
	}
	return out
}

// ByDevice groups row inputs by their device tag. Untagged rows fall under
// the empty key. Used to decide which inputs to unbind when a device goes
// away.
func ByDevice(entries []Entry) map[string][]string {
	out := make(map[string][]string)
	for _, e := range entries {
		out[e.Device] = append(out[e.Device], e.Input)
	}
	return out
}
