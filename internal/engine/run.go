package engine

import (
	"fmt"

	"gcpctx/internal/store"
	"gcpctx/pkg/logging"
)

// Environment variables consumed by gcloud and the Google client
// libraries. Setting them scopes a subprocess to a context without
// touching the live credential file or the active tracker.
const (
	credentialsEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	configEnvVar      = "CLOUDSDK_ACTIVE_CONFIG_NAME"
)

// Run executes argv with the named context's credentials and gcloud
// configuration scoped to that one subprocess. The persistent store, the
// live credential file and the active tracker are never mutated, so Run is
// safe to use concurrently with other invocations. Returns the
// subprocess's exit code.
func (e *Engine) Run(name string, argv []string) (int, error) {
	if err := store.ValidateName(name); err != nil {
		return 0, err
	}
	if len(argv) == 0 {
		return 0, fmt.Errorf("no command specified")
	}
	if !e.store.Exists(name) {
		return 0, fmt.Errorf("context %q: %w", name, store.ErrNotFound)
	}
	if !e.store.HasCredentials(name) {
		return 0, fmt.Errorf("context %q has metadata but no credential blob, run 'gcpctx save %s' to repair: %w", name, name, store.ErrCorrupt)
	}

	configRef := name
	if md, err := e.store.ReadMetadata(name); err == nil && md.GcloudConfig != "" {
		configRef = md.GcloudConfig
	}

	env := map[string]string{
		credentialsEnvVar: e.store.CredentialsPath(name),
		configEnvVar:      configRef,
	}

	logging.Debug("Engine", "running %v with context %q", argv, name)
	return e.runner.Run(argv, env)
}
