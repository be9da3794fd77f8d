package bindings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTOML = `
[[bind]]
input = "KeyW"
control = "move-up"
device = "keyboard"

[[bind]]
input = "ArrowUp"
control = "move-up"

[[bind]]
input = "PadA"
control = "jump"
device = "gamepad-1"
`

func TestParse(t *testing.T) {
	entries, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Entry{
		{Input: "KeyW", Control: "move-up", Device: "keyboard"},
		{Input: "ArrowUp", Control: "move-up"},
		{Input: "PadA", Control: "jump", Device: "gamepad-1"},
	}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseOrderPreserved(t *testing.T) {
	// Row order is what makes first-wins duplicate resolution meaningful
	// downstream.
	const dup = `
[[bind]]
input = "KeyX"
control = "first"

[[bind]]
input = "KeyX"
control = "second"
`
	entries, err := Parse([]byte(dup))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if entries[0].Control != "first" || entries[1].Control != "second" {
		t.Errorf("row order not preserved: %+v", entries)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad toml", data: `[[bind]`},
		{name: "missing input", data: "[[bind]]\ncontrol = \"jump\"\n"},
		{name: "missing control", data: "[[bind]]\ninput = \"KeyW\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() error = nil for missing file, want error")
	}
}

func TestLoadReader(t *testing.T) {
	entries, err := LoadReader(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}
