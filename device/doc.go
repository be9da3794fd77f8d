// Package device tracks attached input devices and the inputs they own, so a
// game can cleanly unbind everything a device contributed when it goes away.
//
// A gamepad unplugged mid-hold would otherwise leave its controls pressed
// forever on an event-driven tracker: the key-up notifications never arrive.
// Registering the pad's inputs at attach time makes the disconnect path a
// single DetachInto call followed by ClearInputs on the tracker.
package device
