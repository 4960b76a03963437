package engine

import (
	"fmt"

	"gcpctx/internal/store"
	"gcpctx/pkg/logging"
)

// DeleteResult reports what Delete removed. Warnings carry best-effort
// secondary failures (gcloud configuration deletion).
type DeleteResult struct {
	ClearedActive bool
	Warnings      []string
}

// Delete removes a saved context from the registry. When removeConfig is
// set the gcloud configuration the context references is deleted as well,
// best-effort. Deleting the active context clears the tracker.
func (e *Engine) Delete(name string, removeConfig bool) (DeleteResult, error) {
	if err := store.ValidateName(name); err != nil {
		return DeleteResult{}, err
	}

	// The config ref has to be read before the registry entry is gone.
	configRef := name
	if md, err := e.store.ReadMetadata(name); err == nil && md.GcloudConfig != "" {
		configRef = md.GcloudConfig
	}

	wasActive := e.store.Current() == name
	if err := e.store.Remove(name); err != nil {
		return DeleteResult{}, err
	}

	result := DeleteResult{}
	if wasActive {
		if err := e.store.ClearCurrent(); err != nil {
			return result, err
		}
		result.ClearedActive = true
	}

	if removeConfig {
		if err := e.identity.DeleteConfig(configRef); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("gcloud configuration %q not deleted: %v", configRef, err))
		}
	}

	logging.Debug("Engine", "deleted context %q", name)
	return result, nil
}
