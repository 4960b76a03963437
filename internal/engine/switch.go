package engine

import (
	"errors"
	"fmt"

	"gcpctx/internal/store"
	"gcpctx/pkg/logging"
)

// SwitchResult reports the outcome of a switch. Skipped is set when the
// requested context was already active and no external tool was invoked.
// Warnings carry best-effort secondary failures (kubectl context switch)
// that do not invalidate the switch itself.
type SwitchResult struct {
	Skipped  bool
	Metadata store.Metadata
	Warnings []string
}

// Switch makes the named context the active one: activates its gcloud
// configuration, restores its credential blob into the live location and
// records it in the tracker. The switch is all-or-nothing up to the
// credential install; the kubectl context switch afterwards is
// best-effort.
func (e *Engine) Switch(name string) (SwitchResult, error) {
	if err := store.ValidateName(name); err != nil {
		return SwitchResult{}, err
	}

	// Skip-if-current: checked before any collaborator invocation so a
	// redundant switch costs one file read.
	if e.store.Current() == name {
		md, err := e.store.ReadMetadata(name)
		if err != nil {
			// Tracker points at a context with unreadable state; still a
			// no-op switch, but show nothing rather than stale details.
			md = store.Metadata{}
		}
		logging.Debug("Engine", "context %q already active, skipping", name)
		return SwitchResult{Skipped: true, Metadata: md}, nil
	}

	// Validate everything before the destructive steps.
	md, err := e.store.ReadMetadata(name)
	if err != nil {
		return SwitchResult{}, err
	}
	blob, err := e.store.Credentials(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Metadata without a blob is inconsistent storage, not an
			// unsaved context. Re-saving repairs it.
			return SwitchResult{}, fmt.Errorf("context %q has metadata but no credential blob, run 'gcpctx save %s' to repair: %w", name, name, store.ErrCorrupt)
		}
		return SwitchResult{}, err
	}

	configRef := md.GcloudConfig
	if configRef == "" {
		configRef = name
	}
	if err := e.identity.ActivateConfig(configRef); err != nil {
		return SwitchResult{}, fmt.Errorf("could not activate gcloud configuration %q for context %q: %v: %w", configRef, name, err, ErrExternalTool)
	}

	// The one genuinely destructive step: overwrite the live credentials.
	if err := e.identity.WriteCredentials(blob); err != nil {
		return SwitchResult{}, fmt.Errorf("could not install credentials for context %q: %w", name, err)
	}

	result := SwitchResult{Metadata: md}
	if md.KubectlContext != "" {
		if err := e.cluster.SwitchContext(md.KubectlContext); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("kubectl context %q not switched: %v", md.KubectlContext, err))
		}
	}

	if err := e.store.SetCurrent(name); err != nil {
		return result, err
	}

	logging.Debug("Engine", "switched to context %q (config %q)", name, configRef)
	return result, nil
}
