package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/drunkenninja/overmenu/internal/menu"
)

// registerAPI installs the global `menu` table.
func (r *Runtime) registerAPI() {
	tbl := r.L.NewTable()
	r.L.SetField(tbl, "get", r.L.NewFunction(r.luaGet))
	r.L.SetField(tbl, "key", r.L.NewFunction(r.luaKey))
	r.L.SetField(tbl, "on_change", r.L.NewFunction(r.luaOnChange))
	r.L.SetGlobal("menu", tbl)
}

// luaGet returns a control's value: booleans for keybinds and
// checkboxes, numbers for sliders, the selected string for lists.
func (r *Runtime) luaGet(L *lua.LState) int {
	name := L.CheckString(1)
	c, ok := r.menu.Get(name)
	if !ok {
		L.RaiseError("%s: %s", ErrUnknownControl, name)
		return 0
	}

	switch v := c.(type) {
	case *menu.KeyBind:
		L.Push(lua.LBool(v.Value()))
	case *menu.Bool:
		L.Push(lua.LBool(v.Value()))
	case *menu.Slider:
		L.Push(lua.LNumber(v.Value()))
	case *menu.List:
		L.Push(lua.LString(v.Selected()))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

// luaKey returns a keybind's bound virtual-key code, or nil for
// controls without one.
func (r *Runtime) luaKey(L *lua.LState) int {
	name := L.CheckString(1)
	c, ok := r.menu.Get(name)
	if !ok {
		L.RaiseError("%s: %s", ErrUnknownControl, name)
		return 0
	}
	if kb, ok := c.(*menu.KeyBind); ok {
		L.Push(lua.LNumber(kb.Key()))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// luaOnChange registers a change callback. Two forms:
//
//	menu.on_change(fn)          -- every control
//	menu.on_change(name, fn)    -- one control
func (r *Runtime) luaOnChange(L *lua.LState) int {
	var name string
	var fn *lua.LFunction

	if L.GetTop() >= 2 {
		name = L.CheckString(1)
		fn = L.CheckFunction(2)
	} else {
		fn = L.CheckFunction(1)
	}

	r.callbacks[name] = append(r.callbacks[name], callback{script: r.current, fn: fn})
	return 0
}
