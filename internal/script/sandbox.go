package script

import lua "github.com/yuin/gopher-lua"

// openSafeLibraries opens only the Lua standard libraries that cannot
// touch the host system. io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes the code-loading globals the base library installs,
// so scripts cannot pull in code past the loader.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}
