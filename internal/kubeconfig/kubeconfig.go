// Package kubeconfig manages the kubectl current-context through the
// kubeconfig file itself, using client-go's clientcmd instead of shelling
// out to kubectl.
package kubeconfig

import (
	"fmt"

	"k8s.io/client-go/tools/clientcmd"

	"gcpctx/pkg/logging"
)

// Tool reads and rewrites the kubeconfig current-context. It implements
// engine.ClusterTool.
type Tool struct{}

// New returns a Tool operating on the default kubeconfig chain
// (KUBECONFIG or ~/.kube/config).
func New() *Tool {
	return &Tool{}
}

// CurrentContext returns the name of the currently active kubectl
// context. A missing kubeconfig or an unset current-context is an error;
// callers treating the kubectl context as optional map it to absence.
func (t *Tool) CurrentContext() (string, error) {
	pathOptions := clientcmd.NewDefaultPathOptions()
	config, err := pathOptions.GetStartingConfig()
	if err != nil {
		return "", fmt.Errorf("could not load kubeconfig: %w", err)
	}
	if config.CurrentContext == "" {
		return "", fmt.Errorf("no current kubectl context is set")
	}
	return config.CurrentContext, nil
}

// SwitchContext makes the named kubectl context active. Only the
// current-context field is modified; the rest of the kubeconfig is
// preserved as loaded.
func (t *Tool) SwitchContext(name string) error {
	pathOptions := clientcmd.NewDefaultPathOptions()
	config, err := pathOptions.GetStartingConfig()
	if err != nil {
		return fmt.Errorf("could not load kubeconfig: %w", err)
	}
	if _, exists := config.Contexts[name]; !exists {
		return fmt.Errorf("kubectl context %q does not exist in kubeconfig", name)
	}
	config.CurrentContext = name

	path := pathOptions.GetDefaultFilename()
	if pathOptions.IsExplicitFile() {
		path = pathOptions.GetExplicitFile()
	}
	if err := clientcmd.WriteToFile(*config, path); err != nil {
		return fmt.Errorf("could not write updated kubeconfig to %s: %w", path, err)
	}

	logging.Debug("Kubeconfig", "switched kubectl context to %q", name)
	return nil
}
