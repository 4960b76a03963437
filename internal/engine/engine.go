// Package engine orchestrates the context state transitions: save,
// switch, run, delete, list and login. It owns the ordering rules —
// validate everything before touching live credentials, update the active
// marker last, treat kubectl switching and gcloud config deletion as
// best-effort secondary steps.
package engine

import (
	"errors"

	"gcpctx/internal/store"
)

// IdentityTool is the external identity CLI (gcloud) the engine delegates
// to. The engine never performs network authentication itself; it only
// captures and restores what the tool produced.
type IdentityTool interface {
	// ActiveConfig returns the name of the currently active configuration.
	ActiveConfig() (string, error)
	// ActiveAccount returns the active account, or "" if unset.
	ActiveAccount() (string, error)
	// ActiveProject returns the active project, or "" if unset.
	ActiveProject() (string, error)
	// ReadCredentials returns the live application-default credential
	// blob. Missing credentials (user never logged in) is an error.
	ReadCredentials() ([]byte, error)
	// WriteCredentials overwrites the live application-default credential
	// file. This is the destructive step of a switch.
	WriteCredentials(blob []byte) error
	// ActivateConfig makes the named configuration active.
	ActivateConfig(ref string) error
	// EnsureConfig activates the named configuration, creating it first
	// if it does not exist.
	EnsureConfig(ref string) error
	// AuthLogin runs the interactive browser login flow.
	AuthLogin() error
	// AuthADCLogin runs the interactive application-default login flow.
	AuthADCLogin() error
	// DeleteConfig removes the named configuration. Deleting a
	// configuration that does not exist is not an error.
	DeleteConfig(ref string) error
}

// ClusterTool is the external orchestration-tool context manager
// (kubectl's kubeconfig).
type ClusterTool interface {
	// CurrentContext returns the active kubectl context, or "" if none.
	CurrentContext() (string, error)
	// SwitchContext makes the named kubectl context active.
	SwitchContext(name string) error
}

// Runner executes a subprocess with additional environment variables and
// returns its exit code. Used by Run to scope a context to a single
// command without mutating any persistent state.
type Runner interface {
	Run(argv []string, extraEnv map[string]string) (int, error)
}

var (
	// ErrCredentialsUnavailable indicates the identity tool has no live
	// credentials to capture.
	ErrCredentialsUnavailable = errors.New("no live credentials available")

	// ErrExternalTool indicates an external collaborator invocation
	// failed on a primary step.
	ErrExternalTool = errors.New("external tool failure")
)

// Engine wires the store to the external collaborators.
type Engine struct {
	store    *store.Store
	identity IdentityTool
	cluster  ClusterTool
	runner   Runner
}

// New returns an Engine operating on the given store and collaborators.
func New(st *store.Store, identity IdentityTool, cluster ClusterTool, runner Runner) *Engine {
	return &Engine{
		store:    st,
		identity: identity,
		cluster:  cluster,
		runner:   runner,
	}
}

// Store exposes the underlying context store.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Current returns the active context name recorded in the tracker, or ""
// when none is set. The name may be stale; see List.
func (e *Engine) Current() string {
	return e.store.Current()
}

// ContextInfo describes one saved context for listing.
type ContextInfo struct {
	Name   string
	Active bool
}

// ListResult is the outcome of List. Stale is set when the tracker
// references a context that is no longer in the registry; the reference
// is reported rather than silently treated as "no active context".
type ListResult struct {
	Contexts []ContextInfo
	Active   string
	Stale    bool
}

// List enumerates saved contexts in lexicographic order, flagging the one
// matching the active tracker.
func (e *Engine) List() (ListResult, error) {
	names, err := e.store.List()
	if err != nil {
		return ListResult{}, err
	}

	active := e.store.Current()
	result := ListResult{Active: active, Stale: active != ""}
	for _, name := range names {
		if name == active {
			result.Stale = false
		}
		result.Contexts = append(result.Contexts, ContextInfo{Name: name, Active: name == active})
	}
	return result, nil
}
