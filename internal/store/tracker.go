package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Current returns the name of the active context, or "" when none is set.
// A missing marker file is the expected steady state before first use, not
// an error. The returned name may reference a context that no longer
// exists in the registry; callers decide how to surface that.
func (s *Store) Current() string {
	data, err := os.ReadFile(s.currentMarkerPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetCurrent records name as the active context.
func (s *Store) SetCurrent(name string) error {
	if err := os.WriteFile(s.currentMarkerPath(), []byte(name), 0o644); err != nil {
		return fmt.Errorf("could not update active context marker: %w", err)
	}
	return nil
}

// ClearCurrent removes the active context marker. Clearing an already
// empty marker is not an error.
func (s *Store) ClearCurrent() error {
	if err := os.Remove(s.currentMarkerPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not clear active context marker: %w", err)
	}
	return nil
}

func (s *Store) currentMarkerPath() string {
	return filepath.Join(s.root, currentMarkerFile)
}
