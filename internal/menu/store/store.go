// Package store persists menu control records to per-control JSON
// files. Paths are deterministic: shared records live in a global
// namespace keyed only by the control's internal name, so two
// independently built controls that agree on a name intentionally
// read and write the same file. Unshared records are additionally
// namespaced by the owning plugin's identity.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Record is the persisted shape of a control. On load only Name,
// Value, Key and Number are taken from disk; Mode is written for
// inspection but deliberately never read back, so code changes to a
// control's mode are not overridden by stale files.
type Record struct {
	Name   string
	Value  bool
	Key    int
	Mode   int
	Number int
}

// Store resolves and reads/writes control records under a base
// directory.
type Store struct {
	base string
}

// New creates a Store rooted at the given directory. The directory is
// created lazily on first save.
func New(base string) *Store {
	return &Store{base: base}
}

// Base returns the root directory of the store.
func (s *Store) Base() string {
	return s.base
}

// PathFor returns the file location for a control. Shared controls
// resolve independently of owner; unshared controls are isolated per
// owner identity.
func (s *Store) PathFor(name string, shared bool, owner string) string {
	if shared {
		return filepath.Join(s.base, "shared", sanitize(name)+".json")
	}
	return filepath.Join(s.base, sanitize(owner), sanitize(name)+".json")
}

// Load reads the record at path. The second return value is false when
// the file does not exist, cannot be parsed, or carries no internal
// name; callers keep their compiled-in defaults in all three cases.
// A malformed state file is never an error.
func (s *Store) Load(path string) (Record, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, false
	}
	if !gjson.ValidBytes(data) {
		return Record{}, false
	}

	doc := gjson.ParseBytes(data)
	name := doc.Get("name").String()
	if name == "" {
		return Record{}, false
	}

	return Record{
		Name:   name,
		Value:  doc.Get("value").Bool(),
		Key:    int(doc.Get("key").Int()),
		Number: int(doc.Get("number").Int()),
	}, true
}

// Save overwrites the file at path with the record, creating parent
// directories as needed. Field order is stable. Last complete write
// wins; there is no partial-write guarantee beyond that.
func (s *Store) Save(path string, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating record directory: %w", err)
	}

	out := "{}"
	out, _ = sjson.Set(out, "name", rec.Name)
	out, _ = sjson.Set(out, "value", rec.Value)
	out, _ = sjson.Set(out, "key", rec.Key)
	out, _ = sjson.Set(out, "mode", rec.Mode)
	if rec.Number != 0 {
		out, _ = sjson.Set(out, "number", rec.Number)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing record %s: %w", path, err)
	}
	return nil
}

// sanitize makes a name safe to use as a single path element. Bare
// dot segments would resolve to the current or parent directory, so
// they are replaced wholesale.
func sanitize(name string) string {
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
