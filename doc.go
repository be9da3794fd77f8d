// Package framepress tracks, per game-loop frame, how long semantic controls
// have been continuously held, given raw input state from a host engine.
//
// Physical inputs (key codes, buttons, digitalized axes) are decoupled from
// semantic controls ("move up", "jump") through a many-to-one configuration:
// several inputs may activate the same control, each input activates at most
// one control. All queries are frame-count based: how many consecutive frames
// a control has been active, whether it is down, and whether it went down on
// exactly this frame.
//
// # Trackers
//
// One state machine is provided in three ingestion variants, differing only
// in how they learn which inputs are active each frame:
//
//   - EventTracker: the engine pushes discrete down/up notifications as they
//     occur; the tracker buffers them and resolves press times once per frame.
//   - SnapshotTracker: the engine hands over the complete set of currently
//     pressed inputs once per frame.
//   - QueryTracker: the engine exposes a per-input polling function; the
//     tracker drives it over every configured input once per frame.
//
// All three share the same query surface and the same transition rule: a
// control's press time increments by exactly one each frame it stays active,
// regardless of how many of its inputs are held, and resets to zero on the
// first inactive frame.
//
// # Usage
//
//	tracker := framepress.NewEventTracker(
//		framepress.Binding[Key, Control]{Input: KeyUp, Control: MoveUp},
//		framepress.Binding[Key, Control]{Input: KeyW, Control: MoveUp},
//	)
//
//	for running {
//		for _, ev := range engine.DrainEvents() {
//			switch ev.Kind {
//			case KeyDown:
//				tracker.InputDown(ev.Key)
//			case KeyUp:
//				tracker.InputUp(ev.Key)
//			}
//		}
//
//		// First thing each frame, before game logic reads queries.
//		tracker.Update()
//
//		if tracker.JustPressed(Jump) {
//			player.Jump()
//		}
//	}
//
// Trackers are not synchronized. They are built to run on the single thread
// driving the game loop; an engine delivering notifications from a platform
// event thread must guard notify and Update calls with its own mutex.
package framepress
