package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestRuntime(t *testing.T, opts ...Option) (*Runtime, *menu.Menu) {
	t.Helper()
	m := menu.New("orbwalker", menu.WithNotifier(notify.New()))
	r := New(m, opts...)
	t.Cleanup(r.Close)
	return r, m
}

func globalNumber(t *testing.T, r *Runtime, name string) float64 {
	t.Helper()
	v := r.L.GetGlobal(name)
	n, ok := v.(lua.LNumber)
	if !ok {
		t.Fatalf("global %s = %v (%T), want number", name, v, v)
	}
	return float64(n)
}

func TestRuntime_MenuGet(t *testing.T) {
	r, m := newTestRuntime(t)
	m.KeyBind("combo", "Combo", input.KeySpace, menu.Toggle)
	m.Bool("draw", "Draw", true)
	m.Slider("opacity", "Opacity", 65, 0, 100)
	m.List("mode", "Mode", []string{"closest", "lowest"}, 1)

	path := writeScript(t, t.TempDir(), "read.lua", `
combo = menu.get("combo")
draw = menu.get("draw")
opacity = menu.get("opacity")
mode = menu.get("mode")
combo_key = menu.key("combo")
`)
	if _, err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if v := r.L.GetGlobal("combo"); v != lua.LFalse {
		t.Errorf("combo = %v, want false", v)
	}
	if v := r.L.GetGlobal("draw"); v != lua.LTrue {
		t.Errorf("draw = %v, want true", v)
	}
	if got := globalNumber(t, r, "opacity"); got != 65 {
		t.Errorf("opacity = %v, want 65", got)
	}
	if v := r.L.GetGlobal("mode"); lua.LVAsString(v) != "lowest" {
		t.Errorf("mode = %v, want lowest", v)
	}
	if got := globalNumber(t, r, "combo_key"); got != float64(input.KeySpace) {
		t.Errorf("combo_key = %v, want %d", got, input.KeySpace)
	}
}

func TestRuntime_UnknownControl(t *testing.T) {
	r, _ := newTestRuntime(t)
	path := writeScript(t, t.TempDir(), "bad.lua", `menu.get("nope")`)

	_, err := r.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "unknown menu control") {
		t.Errorf("err = %v, want unknown control", err)
	}
}

func TestRuntime_OnChange(t *testing.T) {
	r, m := newTestRuntime(t)
	m.KeyBind("combo", "Combo", input.KeySpace, menu.Toggle)
	m.KeyBind("harass", "Harass", input.KeyA, menu.Toggle)

	path := writeScript(t, t.TempDir(), "watch.lua", `
combo_fired = 0
any_fired = 0
menu.on_change("combo", function(c)
	combo_fired = combo_fired + 1
	last_old = c.old_value
	last_new = c.new_value
end)
menu.on_change(function(c)
	any_fired = any_fired + 1
end)
`)
	if _, err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	m.Dispatch(input.KeyEvent(input.KeyUp, input.KeySpace)) // combo flips
	m.Dispatch(input.KeyEvent(input.KeyUp, input.KeyA))     // harass flips

	if got := globalNumber(t, r, "combo_fired"); got != 1 {
		t.Errorf("combo_fired = %v, want 1", got)
	}
	if got := globalNumber(t, r, "any_fired"); got != 2 {
		t.Errorf("any_fired = %v, want 2", got)
	}
	if v := r.L.GetGlobal("last_old"); v != lua.LFalse {
		t.Errorf("last_old = %v, want false", v)
	}
	if v := r.L.GetGlobal("last_new"); v != lua.LTrue {
		t.Errorf("last_new = %v, want true", v)
	}
}

func TestRuntime_OnChange_Synchronous(t *testing.T) {
	r, m := newTestRuntime(t)
	m.KeyBind("combo", "Combo", input.KeySpace, menu.Toggle)

	path := writeScript(t, t.TempDir(), "sync.lua", `
fired = 0
menu.on_change("combo", function() fired = fired + 1 end)
`)
	if _, err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	m.Dispatch(input.KeyEvent(input.KeyUp, input.KeySpace))
	// The callback must have run before Dispatch returned.
	if got := globalNumber(t, r, "fired"); got != 1 {
		t.Errorf("fired = %v immediately after dispatch, want 1", got)
	}
}

func TestRuntime_CallbackErrorIsContained(t *testing.T) {
	var failedScript string
	r, m := newTestRuntime(t, WithErrorHandler(func(script string, err error) {
		failedScript = script
	}))
	kb := m.KeyBind("combo", "Combo", input.KeySpace, menu.Toggle)

	path := writeScript(t, t.TempDir(), "broken.lua", `
menu.on_change("combo", function() error("boom") end)
`)
	if _, err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	m.Dispatch(input.KeyEvent(input.KeyUp, input.KeySpace))

	if !kb.Value() {
		t.Error("callback error disturbed the mutation")
	}
	if failedScript != "broken" {
		t.Errorf("failed script = %q, want broken", failedScript)
	}

	// The runtime keeps working after a callback failure.
	m.Dispatch(input.KeyEvent(input.KeyUp, input.KeySpace))
	if kb.Value() {
		t.Error("second dispatch did not flip")
	}
}

func TestRuntime_Sandbox(t *testing.T) {
	r, _ := newTestRuntime(t)
	path := writeScript(t, t.TempDir(), "sandbox.lua", `
no_dofile = (dofile == nil)
no_loadfile = (loadfile == nil)
no_load = (load == nil)
no_require = (require == nil)
no_io = (io == nil)
no_os = (os == nil)
`)
	if _, err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	for _, name := range []string{"no_dofile", "no_loadfile", "no_load", "no_require", "no_io", "no_os"} {
		if v := r.L.GetGlobal(name); v != lua.LTrue {
			t.Errorf("%s = %v, want true", name, v)
		}
	}
}

func TestRuntime_LoadDir(t *testing.T) {
	r, _ := newTestRuntime(t)
	dir := t.TempDir()
	writeScript(t, dir, "b.lua", `order = (order or "") .. "b"`)
	writeScript(t, dir, "a.lua", `order = (order or "") .. "a"`)
	writeScript(t, dir, "notes.txt", `not a script`)

	loaded, err := r.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d scripts, want 2", len(loaded))
	}
	if v := r.L.GetGlobal("order"); lua.LVAsString(v) != "ab" {
		t.Errorf("order = %v, want ab", v)
	}

	if loaded[0].ID == "" || loaded[0].ID == loaded[1].ID {
		t.Errorf("instance IDs = %q, %q", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Name != "a" || loaded[1].Name != "b" {
		t.Errorf("instance names = %q, %q", loaded[0].Name, loaded[1].Name)
	}
}

func TestRuntime_LoadAfterClose(t *testing.T) {
	m := menu.New("orbwalker")
	r := New(m)
	r.Close()

	if _, err := r.LoadFile("anything.lua"); err != ErrClosed {
		t.Errorf("err = %v, want ErrClosed", err)
	}
}
