package store

import (
	"fmt"
	"os"
)

// StoreCredentials writes a context's credential blob verbatim, creating
// the context directory if needed. On platforms with POSIX permission bits
// the blob is restricted to owner read/write.
func (s *Store) StoreCredentials(name string, blob []byte) error {
	if err := os.MkdirAll(s.contextDir(name), 0o755); err != nil {
		return fmt.Errorf("could not create context directory for %q: %w", name, err)
	}
	path := s.CredentialsPath(name)
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("could not write credentials for context %q: %w", name, err)
	}
	if err := restrictToOwner(path); err != nil {
		return fmt.Errorf("could not restrict permissions on credentials for context %q: %w", name, err)
	}
	return nil
}

// Credentials returns a context's stored credential blob. A missing blob
// is ErrNotFound; the caller decides whether that means the context was
// never saved or its storage is inconsistent.
func (s *Store) Credentials(name string) ([]byte, error) {
	blob, err := os.ReadFile(s.CredentialsPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("credentials for context %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("could not read credentials for context %q: %w", name, err)
	}
	return blob, nil
}

// HasCredentials reports whether a context has a stored credential blob.
func (s *Store) HasCredentials(name string) bool {
	info, err := os.Stat(s.CredentialsPath(name))
	return err == nil && !info.IsDir()
}
