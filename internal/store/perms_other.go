//go:build !unix

package store

// restrictToOwner is a no-op on platforms without POSIX permission bits.
// Write failures still surfaced by the caller; only the tightening of the
// mode is waived here.
func restrictToOwner(string) error {
	return nil
}
