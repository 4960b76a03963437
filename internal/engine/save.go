package engine

import (
	"fmt"

	"gcpctx/internal/store"
	"gcpctx/pkg/logging"
)

// SaveResult reports what Save captured.
type SaveResult struct {
	Metadata store.Metadata
}

// Save captures the current live state of the external tools under the
// given context name. Saving an existing name overwrites all of its state.
// The active tracker is not touched; saving records state, it does not
// switch to it.
func (e *Engine) Save(name string) (SaveResult, error) {
	if err := store.ValidateName(name); err != nil {
		return SaveResult{}, err
	}

	// Live identity state first: if it cannot be read there is nothing to
	// save.
	config, err := e.identity.ActiveConfig()
	if err != nil {
		return SaveResult{}, fmt.Errorf("could not determine active gcloud configuration: %v: %w", err, ErrExternalTool)
	}
	account, err := e.identity.ActiveAccount()
	if err != nil {
		return SaveResult{}, fmt.Errorf("could not determine active gcloud account: %v: %w", err, ErrExternalTool)
	}
	project, err := e.identity.ActiveProject()
	if err != nil {
		return SaveResult{}, fmt.Errorf("could not determine active gcloud project: %v: %w", err, ErrExternalTool)
	}

	// The kubectl context is optional; record absence rather than abort.
	kubeContext, err := e.cluster.CurrentContext()
	if err != nil {
		logging.Debug("Engine", "no kubectl context recorded for %q: %v", name, err)
		kubeContext = ""
	}

	blob, err := e.identity.ReadCredentials()
	if err != nil {
		return SaveResult{}, fmt.Errorf("context %q: %v: %w", name, err, ErrCredentialsUnavailable)
	}

	md := store.Metadata{
		GcloudConfig:   config,
		Account:        account,
		Project:        project,
		KubectlContext: kubeContext,
	}

	// Metadata before blob: a partial failure leaves a re-saveable record
	// instead of an orphaned credential file.
	if err := e.store.WriteMetadata(name, md); err != nil {
		return SaveResult{}, err
	}
	if err := e.store.StoreCredentials(name, blob); err != nil {
		return SaveResult{}, err
	}

	logging.Debug("Engine", "saved context %q (config %q)", name, config)
	return SaveResult{Metadata: md}, nil
}
