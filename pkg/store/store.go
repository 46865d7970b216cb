// Package store persists finished profiling sessions and compares them.
//
// The on-disk format is an opaque msgpack encoding of the session snapshot,
// tied to profile.SnapshotVersion; sessions only load with the version they
// were written with.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/praateekmahajan/fsprof/pkg/profile"
)

// Ext is the file extension for saved sessions.
const Ext = ".fsprof"

// DefaultDir returns the default session storage directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".fsprof", "sessions")
	}
	return filepath.Join(home, ".fsprof", "sessions")
}

// Save writes a session to path. Data goes to a temp file first and is
// renamed into place, so readers never observe a partial session.
func Save(path string, s *profile.Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create session directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".fsprof-*")
	if err != nil {
		return fmt.Errorf("cannot create session file: %w", err)
	}
	if err := msgpack.NewEncoder(f).Encode(s.Snapshot()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("cannot encode session: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}

// Load reads a session saved by Save.
func Load(path string) (*profile.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read session %q: %w", path, err)
	}
	defer f.Close()

	var snap profile.Snapshot
	if err := msgpack.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("cannot decode session %q: %w", path, err)
	}
	return profile.FromSnapshot(snap)
}

// SaveNamed stores a session under name in dir (DefaultDir when empty).
func SaveNamed(name, dir string, s *profile.Session) error {
	if dir == "" {
		dir = DefaultDir()
	}
	return Save(filepath.Join(dir, name+Ext), s)
}

// LoadNamed reads the session stored under name in dir.
func LoadNamed(name, dir string) (*profile.Session, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	return Load(filepath.Join(dir, name+Ext))
}

// List returns the names of all saved sessions in dir.
func List(dir string) ([]string, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == Ext {
			names = append(names, strings.TrimSuffix(e.Name(), Ext))
		}
	}
	return names, nil
}
