package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gcpctx/pkg/logging"
)

// List returns the names of all saved contexts in lexicographic order.
// An empty store yields an empty slice.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("could not read store directory %s: %w", s.root, err)
	}

	names := []string{}
	for _, entry := range entries {
		// Dot-prefixed entries are internal (.current, trash dirs).
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a context directory is present in the registry.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.contextDir(name))
	return err == nil && info.IsDir()
}

// Remove deletes all on-disk state for a context. The directory is renamed
// out of the registry before deletion, so a failure mid-removal never
// leaves a partially deleted context visible.
func (s *Store) Remove(name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("context %q: %w", name, ErrNotFound)
	}

	trash, err := os.MkdirTemp(s.root, trashPrefix+name+"-")
	if err != nil {
		return fmt.Errorf("could not prepare removal of context %q: %w", name, err)
	}
	target := filepath.Join(trash, name)
	if err := os.Rename(s.contextDir(name), target); err != nil {
		os.Remove(trash)
		return fmt.Errorf("could not remove context %q: %w", name, err)
	}
	if err := os.RemoveAll(trash); err != nil {
		// The context is already out of the registry; the leftover trash
		// directory is invisible to List and harmless.
		logging.Warn("Store", "context %q removed, but cleanup left %s behind: %v", name, trash, err)
	}
	return nil
}
