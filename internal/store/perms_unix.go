//go:build unix

package store

import "os"

// restrictToOwner sets owner-only read/write on the given file.
func restrictToOwner(path string) error {
	return os.Chmod(path, 0o600)
}
