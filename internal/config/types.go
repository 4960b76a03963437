package config

// Config is the top-level configuration structure for gcpctx. Everything
// in it is optional; the zero value plus defaults is a working setup.
type Config struct {
	// StoreDir overrides where contexts are stored.
	// Default: ~/.config/gcpctx (or GCPCTX_HOME).
	StoreDir string `yaml:"storeDir,omitempty"`
	// GcloudDir overrides the gcloud configuration directory holding the
	// live ADC file. Default: ~/.config/gcloud (or GCPCTX_GCLOUD_DIR).
	GcloudDir string `yaml:"gcloudDir,omitempty"`
	// Quiet hides account/project/kubectl details from command output by
	// default; the --quiet flag still works per invocation.
	Quiet bool `yaml:"quiet,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
}
