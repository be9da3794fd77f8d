package device

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/framepress"
)

func TestRegistryAttachDetach(t *testing.T) {
	r := NewRegistry[string]()

	id := r.Attach("gamepad", []string{"PadA", "PadB"})
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	dev, ok := r.Get(id)
	if !ok {
		t.Fatal("Get() = false for attached device")
	}
	if dev.Name != "gamepad" {
		t.Errorf("Name = %q, want %q", dev.Name, "gamepad")
	}
	if len(dev.Inputs) != 2 {
		t.Errorf("Inputs = %v, want 2 entries", dev.Inputs)
	}

	inputs, ok := r.Detach(id)
	if !ok {
		t.Fatal("Detach() = false for attached device")
	}
	if len(inputs) != 2 {
		t.Errorf("detached inputs = %v, want 2 entries", inputs)
	}
	if r.Len() != 0 {
		t.Errorf("Len() after detach = %d, want 0", r.Len())
	}

	if _, ok := r.Detach(id); ok {
		t.Error("second Detach() = true, want false")
	}
	if _, ok := r.Detach(uuid.New()); ok {
		t.Error("Detach of unknown ID = true, want false")
	}
}

func TestRegistryDistinctInstanceIDs(t *testing.T) {
	r := NewRegistry[string]()

	a := r.Attach("gamepad", []string{"PadA"})
	b := r.Attach("gamepad", []string{"PadA"})

	if a == b {
		t.Error("two attachments of the same hardware share an instance ID")
	}
}

func TestRegistryOwnedInputsCopied(t *testing.T) {
	r := NewRegistry[string]()

	inputs := []string{"PadA"}
	id := r.Attach("gamepad", inputs)
	inputs[0] = "mutated"

	dev, _ := r.Get(id)
	if dev.Inputs[0] != "PadA" {
		t.Error("registry shares the caller's input slice")
	}
}

func TestDetachInto(t *testing.T) {
	tracker := framepress.NewEventTracker(
		framepress.Binding[string, string]{Input: "PadA", Control: "jump"},
		framepress.Binding[string, string]{Input: "KeyJ", Control: "jump"},
		framepress.Binding[string, string]{Input: "PadB", Control: "roll"},
		framepress.Binding[string, string]{Input: "KeyW", Control: "move-up"},
	)

	r := NewRegistry[string]()
	id := r.Attach("gamepad", []string{"PadA", "PadB", "PadUnbound"})

	tracker.InputDown("PadA")
	tracker.Update()

	unbound, ok := r.DetachInto(id, tracker)
	if !ok {
		t.Fatal("DetachInto() = false for attached device")
	}
	if unbound != 2 {
		t.Errorf("unbound = %d, want 2", unbound)
	}
	tracker.ClearInputs()
	tracker.Update()

	if tracker.IsDown("jump") {
		t.Error("jump still down after device detach and clear")
	}
	if _, bound := tracker.Config()["PadA"]; bound {
		t.Error("PadA still bound after detach")
	}
	if _, bound := tracker.Config()["KeyW"]; !bound {
		t.Error("KeyW unbound by detach of unrelated device")
	}
}

func TestRegistryListOrdered(t *testing.T) {
	r := NewRegistry[string]()

	r.Attach("first", nil)
	r.Attach("second", nil)

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() = %d devices, want 2", len(list))
	}
	if list[0].Name != "first" || list[1].Name != "second" {
		t.Errorf("List() order = [%s, %s], want [first, second]", list[0].Name, list[1].Name)
	}
}
