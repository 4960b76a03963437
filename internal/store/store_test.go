package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenAt(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestOpenRespectsHomeEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnvVar, dir)

	s, err := Open()
	require.NoError(t, err)
	assert.Equal(t, dir, s.Root())
}

func TestOpenAtCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "gcpctx")
	s, err := OpenAt(root)
	require.NoError(t, err)

	info, err := os.Stat(s.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "work", false},
		{"with dash and digits", "client-2", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"leading dot", ".hidden", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"control character", "a\x01b", true},
		{"interior dot ok", "team.prod", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListEmptyStore(t *testing.T) {
	s := newTestStore(t)
	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListIsSortedAndSkipsInternalEntries(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, s.WriteMetadata(name, Metadata{GcloudConfig: name}))
	}
	require.NoError(t, s.SetCurrent("alpha"))
	// stray plain file must not show up either
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "notes.txt"), []byte("x"), 0o644))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestExists(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Exists("work"))

	require.NoError(t, s.WriteMetadata("work", Metadata{GcloudConfig: "cfg-work"}))
	assert.True(t, s.Exists("work"))
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteMetadata("work", Metadata{GcloudConfig: "cfg-work"}))
	require.NoError(t, s.StoreCredentials("work", []byte(`{"type":"authorized_user"}`)))

	require.NoError(t, s.Remove("work"))
	assert.False(t, s.Exists("work"))

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRemoveMissingContext(t *testing.T) {
	s := newTestStore(t)
	err := s.Remove("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMetadataRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := Metadata{
		GcloudConfig:   "cfg-work",
		Account:        "a@x.com",
		Project:        "proj-1",
		KubectlContext: "gke_proj-1_zone_cluster",
	}
	require.NoError(t, s.WriteMetadata("work", in))

	out, err := s.ReadMetadata("work")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMetadataOverwrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteMetadata("work", Metadata{GcloudConfig: "old"}))
	require.NoError(t, s.WriteMetadata("work", Metadata{GcloudConfig: "new", Account: "b@y.org"}))

	out, err := s.ReadMetadata("work")
	require.NoError(t, err)
	assert.Equal(t, "new", out.GcloudConfig)
	assert.Equal(t, "b@y.org", out.Account)
}

func TestReadMetadataMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ReadMetadata("never-saved")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadMetadataCorrupt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), "broken"), 0o755))
	path := filepath.Join(s.Root(), "broken", metadataFileName)
	require.NoError(t, os.WriteFile(path, []byte("{[not yaml"), 0o644))

	_, err := s.ReadMetadata("broken")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCredentialsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	blob := []byte(`{"type":"authorized_user","refresh_token":"opaque"}`)
	require.NoError(t, s.StoreCredentials("work", blob))

	got, err := s.Credentials("work")
	require.NoError(t, err)
	assert.Equal(t, blob, got)
	assert.True(t, s.HasCredentials("work"))
}

func TestCredentialsOwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not enforced on windows")
	}
	s := newTestStore(t)
	require.NoError(t, s.StoreCredentials("work", []byte("blob")))

	info, err := os.Stat(s.CredentialsPath("work"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCredentialsOverwriteNotMerge(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.StoreCredentials("work", []byte("B1")))
	require.NoError(t, s.StoreCredentials("work", []byte("B2")))

	got, err := s.Credentials("work")
	require.NoError(t, err)
	assert.Equal(t, []byte("B2"), got)
}

func TestCredentialsMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Credentials("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.HasCredentials("ghost"))
}

func TestTrackerSteadyStateIsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "", s.Current())
	// clearing an already empty marker is fine
	assert.NoError(t, s.ClearCurrent())
}

func TestTrackerSetGetClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetCurrent("work"))
	assert.Equal(t, "work", s.Current())

	require.NoError(t, s.SetCurrent("personal"))
	assert.Equal(t, "personal", s.Current())

	require.NoError(t, s.ClearCurrent())
	assert.Equal(t, "", s.Current())
}

func TestTrackerMayHoldStaleReference(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteMetadata("work", Metadata{GcloudConfig: "cfg"}))
	require.NoError(t, s.SetCurrent("work"))
	require.NoError(t, s.Remove("work"))

	// Remove does not touch the tracker; resolving staleness is the
	// engine's business.
	assert.Equal(t, "work", s.Current())
}
