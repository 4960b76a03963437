package kubeconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

func writeKubeconfig(t *testing.T, config api.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, clientcmd.WriteToFile(config, path))
	t.Setenv("KUBECONFIG", path)
	return path
}

func twoContextConfig(current string) api.Config {
	return api.Config{
		CurrentContext: current,
		Contexts: map[string]*api.Context{
			"ctx-a": {Cluster: "cluster-a"},
			"ctx-b": {Cluster: "cluster-b"},
		},
		Clusters: map[string]*api.Cluster{
			"cluster-a": {Server: "https://a.example:6443"},
			"cluster-b": {Server: "https://b.example:6443"},
		},
	}
}

func TestCurrentContext(t *testing.T) {
	writeKubeconfig(t, twoContextConfig("ctx-a"))

	got, err := New().CurrentContext()
	require.NoError(t, err)
	assert.Equal(t, "ctx-a", got)
}

func TestCurrentContextUnset(t *testing.T) {
	writeKubeconfig(t, twoContextConfig(""))

	_, err := New().CurrentContext()
	assert.Error(t, err)
}

func TestCurrentContextMissingKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := New().CurrentContext()
	assert.Error(t, err)
}

func TestSwitchContext(t *testing.T) {
	path := writeKubeconfig(t, twoContextConfig("ctx-a"))
	tool := New()

	require.NoError(t, tool.SwitchContext("ctx-b"))

	config, err := clientcmd.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ctx-b", config.CurrentContext)
	// the rest of the config survives the rewrite
	assert.Len(t, config.Contexts, 2)
	assert.Equal(t, "https://a.example:6443", config.Clusters["cluster-a"].Server)
}

func TestSwitchContextUnknown(t *testing.T) {
	path := writeKubeconfig(t, twoContextConfig("ctx-a"))

	err := New().SwitchContext("ctx-missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ctx-missing")

	config, err := clientcmd.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ctx-a", config.CurrentContext, "failed switch must leave the kubeconfig untouched")
}
