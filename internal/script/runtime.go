package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/drunkenninja/overmenu/internal/menu"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
)

// Instance identifies one loaded script.
type Instance struct {
	// ID is an opaque handle the runtime assigns at load time. Hosts
	// may use it as the owner identity for controls a script creates.
	ID string

	// Name is the script file's base name without extension.
	Name string

	// Path is the file the script was loaded from.
	Path string
}

// Runtime owns a single Lua state shared by all loaded scripts. It is
// single-threaded like the rest of the core: all calls, including
// change-callback delivery, happen on the host's input thread.
type Runtime struct {
	L *lua.LState

	menu    *menu.Menu
	sub     *notify.Subscription
	onError func(script string, err error)

	instances []*Instance

	// callbacks per control name; "" holds catch-all callbacks.
	callbacks map[string][]callback

	// current is the script being loaded, for error attribution of
	// callbacks it registers.
	current string

	closed bool
}

type callback struct {
	script string
	fn     *lua.LFunction
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithErrorHandler sets the callback invoked when a script raises an
// error. The default discards errors.
func WithErrorHandler(handler func(script string, err error)) Option {
	return func(r *Runtime) { r.onError = handler }
}

// New creates a runtime bound to a menu. If the menu has a notifier,
// the runtime subscribes to it for change-callback delivery.
func New(m *menu.Menu, opts ...Option) *Runtime {
	r := &Runtime{
		L:         lua.NewState(lua.Options{SkipOpenLibs: true}),
		menu:      m,
		callbacks: make(map[string][]callback),
	}
	for _, opt := range opts {
		opt(r)
	}

	openSafeLibraries(r.L)
	sandbox(r.L)
	r.registerAPI()

	if n := m.Notifier(); n != nil {
		r.sub = n.Subscribe(r.deliver)
	}
	return r
}

// LoadFile loads and executes one script file.
func (r *Runtime) LoadFile(path string) (*Instance, error) {
	if r.closed {
		return nil, ErrClosed
	}

	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}

	r.current = name
	defer func() { r.current = "" }()

	if err := r.L.DoFile(path); err != nil {
		return nil, fmt.Errorf("loading script %s: %w", path, err)
	}

	inst := &Instance{ID: uuid.NewString(), Name: name, Path: path}
	r.instances = append(r.instances, inst)
	return inst, nil
}

// LoadDir loads every .lua file in a directory, sorted by name. The
// first failing script aborts the load.
func (r *Runtime) LoadDir(dir string) ([]*Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading script directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	var loaded []*Instance
	for _, path := range paths {
		inst, err := r.LoadFile(path)
		if err != nil {
			return loaded, err
		}
		loaded = append(loaded, inst)
	}
	return loaded, nil
}

// Instances returns the loaded scripts in load order.
func (r *Runtime) Instances() []*Instance {
	return r.instances
}

// Close releases the Lua state and unsubscribes from the notifier.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.sub != nil {
		r.sub.Unsubscribe()
	}
	r.L.Close()
}

// deliver invokes the Lua callbacks registered for a change:
// catch-all callbacks first, then per-control, each in registration
// order. A failing callback is reported and does not stop delivery.
func (r *Runtime) deliver(change notify.Change) {
	if r.closed {
		return
	}

	cbs := append(append([]callback(nil), r.callbacks[""]...), r.callbacks[change.New.Name]...)
	if len(cbs) == 0 {
		return
	}

	tbl := r.changeTable(change)
	for _, cb := range cbs {
		r.L.Push(cb.fn)
		r.L.Push(tbl)
		if err := r.L.PCall(1, 0, nil); err != nil {
			r.reportError(cb.script, err)
		}
	}
}

// changeTable converts a change into the table callbacks receive.
func (r *Runtime) changeTable(change notify.Change) *lua.LTable {
	tbl := r.L.NewTable()
	r.L.SetField(tbl, "name", lua.LString(change.New.Name))
	r.L.SetField(tbl, "display", lua.LString(change.New.DisplayName))
	r.L.SetField(tbl, "old_value", lua.LBool(change.Old.Value))
	r.L.SetField(tbl, "new_value", lua.LBool(change.New.Value))
	r.L.SetField(tbl, "old_key", lua.LNumber(change.Old.Key))
	r.L.SetField(tbl, "new_key", lua.LNumber(change.New.Key))
	r.L.SetField(tbl, "old_number", lua.LNumber(change.Old.Number))
	r.L.SetField(tbl, "new_number", lua.LNumber(change.New.Number))
	return tbl
}

func (r *Runtime) reportError(script string, err error) {
	if r.onError != nil {
		r.onError(script, err)
	}
}
