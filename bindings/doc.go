// Package bindings loads control configurations from files and resolves them
// into typed tracker bindings.
//
// A configuration is an ordered list of rows, each mapping one named input to
// one named control, optionally tagged with the device it belongs to. Order
// matters: tracker constructors keep the first row when an input appears
// twice, so rows earlier in the file shadow later ones.
//
// Two file formats are supported: TOML ([[bind]] array of tables) and Lua
// (a script returning an array of {input=, control=, device=} tables, run in
// a restricted interpreter). Rows carry engine-agnostic strings; Resolve
// converts them to the host engine's input and control types through
// caller-supplied parsers.
//
// Watcher re-parses a configuration file whenever it changes on disk, so a
// running game can offer live rebinding from an external editor.
package bindings
