package engine

import (
	"fmt"

	"gcpctx/internal/store"
)

// LoginResult reports the outcome of a re-authentication flow. Warnings
// carry non-fatal setup problems; Save is the result of the final capture.
type LoginResult struct {
	Save     SaveResult
	Warnings []string
}

// Login re-authenticates a context: ensures its gcloud configuration
// exists and is active, runs the interactive browser login and the
// application-default login, then saves the resulting state under name.
// Configuration setup and the individual auth steps are tolerated to fail
// (the user may have aborted one of the browser flows); the final Save
// fails if no credentials came out of it.
func (e *Engine) Login(name string) (LoginResult, error) {
	if err := store.ValidateName(name); err != nil {
		return LoginResult{}, err
	}

	result := LoginResult{}
	if err := e.identity.EnsureConfig(name); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not activate or create gcloud configuration %q: %v", name, err))
	}
	if err := e.identity.AuthLogin(); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("gcloud auth login may not have completed: %v", err))
	}
	if err := e.identity.AuthADCLogin(); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("application-default login may not have completed: %v", err))
	}

	save, err := e.Save(name)
	if err != nil {
		return result, err
	}
	result.Save = save
	return result, nil
}
