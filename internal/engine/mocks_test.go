package engine

import (
	"errors"
	"fmt"
)

// fakeIdentity is an IdentityTool double that counts every invocation so
// tests can assert the skip-if-current optimization performs zero external
// calls.
type fakeIdentity struct {
	config  string
	account string
	project string
	live    []byte

	configErr   error
	readErr     error
	activateErr error
	writeErr    error
	deleteErr   error
	ensureErr   error
	authErr     error
	adcErr      error

	calls map[string]int
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		config:  "cfg-default",
		account: "user@example.com",
		project: "proj-default",
		live:    []byte("live-blob"),
		calls:   map[string]int{},
	}
}

func (f *fakeIdentity) count(op string) { f.calls[op]++ }

// totalCalls sums every external invocation of the identity tool.
func (f *fakeIdentity) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeIdentity) ActiveConfig() (string, error) {
	f.count("ActiveConfig")
	return f.config, f.configErr
}

func (f *fakeIdentity) ActiveAccount() (string, error) {
	f.count("ActiveAccount")
	return f.account, nil
}

func (f *fakeIdentity) ActiveProject() (string, error) {
	f.count("ActiveProject")
	return f.project, nil
}

func (f *fakeIdentity) ReadCredentials() ([]byte, error) {
	f.count("ReadCredentials")
	if f.readErr != nil {
		return nil, f.readErr
	}
	if f.live == nil {
		return nil, errors.New("no application default credentials")
	}
	return f.live, nil
}

func (f *fakeIdentity) WriteCredentials(blob []byte) error {
	f.count("WriteCredentials")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.live = append([]byte(nil), blob...)
	return nil
}

func (f *fakeIdentity) ActivateConfig(ref string) error {
	f.count("ActivateConfig")
	if f.activateErr != nil {
		return f.activateErr
	}
	f.config = ref
	return nil
}

func (f *fakeIdentity) EnsureConfig(ref string) error {
	f.count("EnsureConfig")
	if f.ensureErr != nil {
		return f.ensureErr
	}
	f.config = ref
	return nil
}

func (f *fakeIdentity) AuthLogin() error {
	f.count("AuthLogin")
	return f.authErr
}

func (f *fakeIdentity) AuthADCLogin() error {
	f.count("AuthADCLogin")
	if f.adcErr != nil {
		return f.adcErr
	}
	f.live = []byte("fresh-blob")
	return nil
}

func (f *fakeIdentity) DeleteConfig(ref string) error {
	f.count("DeleteConfig")
	return f.deleteErr
}

// fakeCluster is a ClusterTool double with the same counting scheme.
type fakeCluster struct {
	current    string
	currentErr error
	switchErr  error
	calls      map[string]int
}

func newFakeCluster() *fakeCluster {
	return &fakeCluster{
		current: "gke_proj_zone_cluster",
		calls:   map[string]int{},
	}
}

func (f *fakeCluster) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeCluster) CurrentContext() (string, error) {
	f.calls["CurrentContext"]++
	return f.current, f.currentErr
}

func (f *fakeCluster) SwitchContext(name string) error {
	f.calls["SwitchContext"]++
	if f.switchErr != nil {
		return f.switchErr
	}
	f.current = name
	return nil
}

// fakeRunner records the commands it was asked to run instead of executing
// anything.
type fakeRunner struct {
	exitCode int
	runErr   error

	gotArgv []string
	gotEnv  map[string]string
	calls   int
}

func (f *fakeRunner) Run(argv []string, extraEnv map[string]string) (int, error) {
	f.calls++
	f.gotArgv = argv
	f.gotEnv = extraEnv
	if f.runErr != nil {
		return 0, fmt.Errorf("runner: %w", f.runErr)
	}
	return f.exitCode, nil
}
