package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnvVar overrides the store root directory, mainly for tests.
	HomeEnvVar = "GCPCTX_HOME"

	currentMarkerFile  = ".current"
	credentialFileName = "adc.json"
	metadataFileName   = "metadata.yaml"
	trashPrefix        = ".trash-"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

// Store is the on-disk context store rooted at a single directory.
type Store struct {
	root string
}

// Open resolves the store root (GCPCTX_HOME or ~/.config/gcpctx), creates
// it if needed, and returns a Store rooted there.
func Open() (*Store, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return OpenAt(dir)
	}
	home, err := osUserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}
	return OpenAt(filepath.Join(home, ".config", "gcpctx"))
}

// OpenAt returns a Store rooted at the given directory, creating it if it
// does not exist.
func OpenAt(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create store directory %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// contextDir returns the directory holding a context's files.
func (s *Store) contextDir(name string) string {
	return filepath.Join(s.root, name)
}

func (s *Store) metadataPath(name string) string {
	return filepath.Join(s.contextDir(name), metadataFileName)
}

// CredentialsPath returns the path of a context's stored credential blob.
// The file may or may not exist; `run` hands this path to the subprocess
// environment without copying the blob.
func (s *Store) CredentialsPath(name string) string {
	return filepath.Join(s.contextDir(name), credentialFileName)
}

// ValidateName rejects context names that would escape the store root or
// collide with internal files.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("context name cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("context name cannot be '.' or '..'")
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("context name cannot start with a dot")
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf(`context name cannot contain path separators ('/' or '\')`)
	}
	for _, r := range name {
		if r < 32 || r == 127 {
			return fmt.Errorf("context name cannot contain control characters")
		}
	}
	return nil
}
