// Package main is the entry point for the overmenu demo host. It
// builds a sample menu, renders it as a terminal overlay, and feeds
// terminal input through the same raw event path a game host would
// use.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/drunkenninja/overmenu/internal/config"
	"github.com/drunkenninja/overmenu/internal/input"
	"github.com/drunkenninja/overmenu/internal/menu"
	"github.com/drunkenninja/overmenu/internal/menu/notify"
	"github.com/drunkenninja/overmenu/internal/menu/store"
	"github.com/drunkenninja/overmenu/internal/render"
	"github.com/drunkenninja/overmenu/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath  string
	SettingsDir string
	ScriptDir   string
}

func run() int {
	opts := parseFlags()

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load settings: %v\n", err)
		return 1
	}
	if opts.SettingsDir != "" {
		settings.SettingsDir = opts.SettingsDir
	}
	if opts.ScriptDir != "" {
		settings.ScriptDirs = []string{opts.ScriptDir}
	}

	m := buildMenu(settings)

	overlay := render.New(m)
	if err := overlay.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer overlay.Fini()
	m.SetProvider(overlay)

	h := newHost(m, overlay)
	defer h.scripts.Close()
	h.loadScripts(settings.ScriptDirs)

	// Settings edits reach the loop as interrupt events so they are
	// applied on the loop goroutine, never concurrently with it.
	watcher, err := config.Watch(opts.ConfigPath,
		func(s config.Settings) { _ = overlay.PostEvent(tcell.NewEventInterrupt(s)) },
		config.WithErrorHandler(func(err error) { _ = overlay.PostEvent(tcell.NewEventInterrupt(err)) }),
	)
	if err != nil {
		h.errs = append(h.errs, fmt.Sprintf("watching settings: %v", err))
	} else {
		defer watcher.Close()
	}

	// Signals shut the loop down through its own event queue so the
	// screen is only ever touched from the loop goroutine.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		_ = overlay.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	h.loop()

	overlay.Fini()
	for _, msg := range h.errs {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	return 0
}

// host ties the menu, overlay and script runtime together for the
// lifetime of one session.
type host struct {
	menu    *menu.Menu
	overlay *render.Overlay
	scripts *script.Runtime

	// loaded tracks script directories already scanned so a settings
	// reload only picks up newly listed ones.
	loaded map[string]bool

	// errs collects messages printed after the terminal is restored;
	// writing to stderr mid-session would corrupt the overlay.
	errs []string
}

func newHost(m *menu.Menu, overlay *render.Overlay) *host {
	h := &host{
		menu:    m,
		overlay: overlay,
		loaded:  make(map[string]bool),
	}
	h.scripts = script.New(m, script.WithErrorHandler(func(name string, err error) {
		h.errs = append(h.errs, fmt.Sprintf("%s: %v", name, err))
	}))
	return h
}

// loadScripts loads every directory not yet scanned. Directories that
// do not exist yet are skipped and retried on the next reload.
func (h *host) loadScripts(dirs []string) {
	for _, dir := range dirs {
		if h.loaded[dir] {
			continue
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		h.loaded[dir] = true
		if _, err := h.scripts.LoadDir(dir); err != nil {
			h.errs = append(h.errs, err.Error())
		}
	}
}

// buildMenu assembles the demo menu. Controls load their persisted
// state as they are registered.
func buildMenu(settings config.Settings) *menu.Menu {
	m := menu.New("orbwalker",
		menu.WithDisplayName("Orbwalker"),
		menu.WithStorage(store.New(settings.SettingsDir)),
		menu.WithNotifier(notify.New()),
	)

	m.KeyBind("combo.key", "Combo", input.KeySpace, menu.Press)
	m.KeyBind("harass.key", "Harass", input.KeyFromName("c"), menu.Press)
	m.KeyBind("lasthit.key", "Last hit", input.KeyFromName("x"), menu.Press)
	m.KeyBind("autoattack", "Auto attack", input.KeyFromName("k"), menu.Toggle)
	m.Separator("sep.drawing", "-- Drawing --")
	m.Bool("draw.range", "Draw range", true)
	m.Slider("draw.opacity", "Opacity", 65, 0, 100)
	m.List("target.mode", "Target mode", []string{"closest", "lowest hp", "most ap"}, 0)

	return m
}

// loop runs the terminal event loop until the user quits with Ctrl+C
// or Escape. F10 toggles menu visibility the way a host hotkey would.
func (h *host) loop() {
	h.overlay.Draw()
	for {
		ev := h.overlay.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			h.overlay.Sync()
		case *tcell.EventInterrupt:
			switch data := e.Data().(type) {
			case config.Settings:
				h.loadScripts(data.ScriptDirs)
			case error:
				h.errs = append(h.errs, data.Error())
			default:
				// Posted by the signal handler; shut down through
				// the normal teardown path.
				return
			}
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyEscape {
				return
			}
			if e.Key() == tcell.KeyF10 {
				h.menu.SetVisible(!h.menu.Visible())
				break
			}
			h.dispatch(ev)
		case *tcell.EventMouse:
			h.dispatch(ev)
		}
		h.overlay.Draw()
	}
}

func (h *host) dispatch(ev tcell.Event) {
	for _, raw := range h.overlay.Translate(ev) {
		h.menu.Dispatch(raw)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to settings file")
	flag.StringVar(&opts.SettingsDir, "settings", "", "Override directory for persisted control records")
	flag.StringVar(&opts.ScriptDir, "scripts", "", "Override script directory")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "overmenu - in-process overlay menu demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: overmenu [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  click a row        activate the control\n")
		fmt.Fprintf(os.Stderr, "  click a key box    rebind, then press the new key\n")
		fmt.Fprintf(os.Stderr, "  F10                show/hide the menu\n")
		fmt.Fprintf(os.Stderr, "  Esc, Ctrl+C        quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("overmenu %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "overmenu.toml"
	}
	return base + "/overmenu/overmenu.toml"
}
