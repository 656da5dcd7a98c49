// Package script embeds a sandboxed Lua runtime that gives scripts
// read access to menu control values and synchronous change
// notifications.
//
// Scripts see a global `menu` table:
//
//	if menu.get("orbwalker.combo") then ... end
//	menu.key("orbwalker.combo")            -- bound virtual-key code
//	menu.on_change("orbwalker.combo", function(c)
//	    -- c.name, c.old_value, c.new_value, c.old_key, c.new_key
//	end)
//
// Change callbacks run synchronously on the host's input thread,
// immediately after the mutation and before the next event is
// processed. A callback that raises an error is reported through the
// runtime's error handler and never disturbs event handling.
//
// The Lua state is sandboxed: io, os, debug and package are not
// opened, and code-loading globals are removed.
package script
