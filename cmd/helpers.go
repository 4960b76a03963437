package cmd

import (
	"fmt"
	"os"

	"gcpctx/internal/config"
	"gcpctx/internal/engine"
	"gcpctx/internal/gcloud"
	"gcpctx/internal/kubeconfig"
	"gcpctx/internal/proc"
	"gcpctx/internal/store"
	"gcpctx/pkg/logging"
)

// newEngine builds the engine every command runs against: the context
// store, the real gcloud and kubeconfig tools and a process runner, with
// the user config file layered underneath. Environment variables win over
// the config file.
func newEngine() (*engine.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logLevel(cfg), os.Stderr)

	if cfg.Quiet {
		quiet = true
	}
	if cfg.GcloudDir != "" && os.Getenv(gcloud.GcloudDirEnvVar) == "" {
		os.Setenv(gcloud.GcloudDirEnvVar, cfg.GcloudDir)
	}

	var st *store.Store
	if cfg.StoreDir != "" && os.Getenv(store.HomeEnvVar) == "" {
		st, err = store.OpenAt(cfg.StoreDir)
	} else {
		st, err = store.Open()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open context store: %w", err)
	}

	return engine.New(st, gcloud.New(), kubeconfig.New(), proc.ExecRunner{}), nil
}

func logLevel(cfg config.Config) logging.LogLevel {
	if verbose {
		return logging.LevelDebug
	}
	switch cfg.LogLevel {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// say prints informational output unless --quiet (or quiet in the config
// file) is in effect. Errors and warnings go through other channels.
func say(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Printf(format+"\n", args...)
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
