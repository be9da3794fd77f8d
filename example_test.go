package framepress_test

import (
	"fmt"

	"github.com/dshills/framepress"
)

func ExampleEventTracker() {
	// Inputs are whatever identity the host engine hands out; controls are
	// whatever the game defines.
	tracker := framepress.NewEventTracker(
		framepress.Binding[string, string]{Input: "KeyW", Control: "move-up"},
		framepress.Binding[string, string]{Input: "ArrowUp", Control: "move-up"},
		framepress.Binding[string, string]{Input: "Space", Control: "jump"},
	)

	// Frame 1: the engine reports W down, then the frame begins.
	tracker.InputDown("KeyW")
	tracker.Update()
	fmt.Println("down:", tracker.IsDown("move-up"), "just:", tracker.JustPressed("move-up"))

	// Frame 2: still held.
	tracker.Update()
	fmt.Println("frames held:", tracker.PressTime("move-up"), "just:", tracker.JustPressed("move-up"))

	// Frame 3: released.
	tracker.InputUp("KeyW")
	tracker.Update()
	fmt.Println("down:", tracker.IsDown("move-up"))

	// Output:
	// down: true just: true
	// frames held: 2 just: false
	// down: false
}

func ExampleSnapshotTracker() {
	tracker := framepress.NewSnapshotTracker(
		framepress.Binding[string, string]{Input: "KeyA", Control: "move-left"},
		framepress.Binding[string, string]{Input: "KeyD", Control: "move-right"},
	)

	// Each frame, hand over everything the engine reports as pressed.
	tracker.Update("KeyA")
	tracker.Update("KeyA", "KeyD")
	fmt.Println(tracker.PressTime("move-left"), tracker.PressTime("move-right"))

	// Output:
	// 2 1
}

func ExampleQueryTracker() {
	pressed := map[string]bool{"Space": true}

	tracker := framepress.NewQueryTracker(
		framepress.Binding[string, string]{Input: "Space", Control: "jump"},
	)

	// Each frame, the tracker polls the engine per configured input.
	tracker.Update(func(input string) bool { return pressed[input] })
	fmt.Println("jump just pressed:", tracker.JustPressed("jump"))

	// Output:
	// jump just pressed: true
}
