package bindings

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultLuaTimeout bounds execution of a bindings script. Best-effort: a
// script that never calls back into the VM loop cannot be interrupted.
const DefaultLuaTimeout = 5 * time.Second

// LoadLua runs a Lua bindings script and collects the rows it returns.
//
// The script runs in a restricted interpreter (base, table, string, and math
// libraries only; no io, os, debug, or package) and must return an array of
// tables:
//
//	return {
//		{ input = "KeyW", control = "move-up", device = "keyboard" },
//		{ input = "ArrowUp", control = "move-up" },
//	}
func LoadLua(path string) ([]Entry, error) {
	L, cancel := newLuaState()
	defer cancel()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("running bindings script %s: %w", path, err)
	}
	return collectLua(path, L)
}

// ParseLua runs Lua bindings source held in memory.
func ParseLua(src string) ([]Entry, error) {
	L, cancel := newLuaState()
	defer cancel()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("running bindings script: %w", err)
	}
	return collectLua("<script>", L)
}

// newLuaState creates a Lua state with only safe libraries opened.
func newLuaState() (*lua.LState, context.CancelFunc) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open base plus the pure-computation libraries. io, os, debug, and
	// package stay closed: a bindings script has no business touching them.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultLuaTimeout)
	L.SetContext(ctx)
	return L, cancel
}

// collectLua converts the script's return value into rows.
func collectLua(source string, L *lua.LState) ([]Entry, error) {
	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("script must return a table, got %s", ret.Type()),
		}
	}

	var entries []Entry
	var convErr error
	tbl.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		row, ok := v.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("bind %s: expected a table, got %s", k.String(), v.Type())
			return
		}
		entries = append(entries, Entry{
			Input:   lua.LVAsString(row.RawGetString("input")),
			Control: lua.LVAsString(row.RawGetString("control")),
			Device:  lua.LVAsString(row.RawGetString("device")),
		})
	})
	if convErr != nil {
		return nil, &ParseError{Path: source, Message: convErr.Error(), Err: convErr}
	}

	if err := validate(entries); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return entries, nil
}
