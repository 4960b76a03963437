// Package gcloud wraps the gcloud CLI and its application-default
// credential (ADC) file. All authentication is delegated to gcloud; this
// package only invokes it and moves the opaque credential file around.
package gcloud

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gcpctx/pkg/logging"
)

// GcloudDirEnvVar overrides the gcloud configuration directory, mainly
// for tests.
const GcloudDirEnvVar = "GCPCTX_GCLOUD_DIR"

const adcFileName = "application_default_credentials.json"

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

// Tool shells out to the gcloud binary. It implements engine.IdentityTool.
type Tool struct {
	binary string
}

// New returns a Tool invoking the gcloud binary found on PATH.
func New() *Tool {
	return &Tool{binary: "gcloud"}
}

// run executes a non-interactive gcloud invocation, capturing stdout and
// stderr. Failures fold gcloud's stderr into the returned error.
func (t *Tool) run(args ...string) (string, error) {
	cmd := exec.Command(t.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("Gcloud", "running %s %s", t.binary, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("'%s %s' failed: %w", t.binary, strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("'%s %s' failed: %w: %s", t.binary, strings.Join(args, " "), err, msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// runInteractive executes a gcloud invocation with inherited stdio, for
// flows that open a browser or prompt the user.
func (t *Tool) runInteractive(args ...string) error {
	cmd := exec.Command(t.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("'%s %s' failed: %w", t.binary, strings.Join(args, " "), err)
	}
	return nil
}

// ActiveConfig returns the currently active gcloud configuration name.
// gcloud always has a configuration; an empty answer means "default".
func (t *Tool) ActiveConfig() (string, error) {
	out, err := t.run("config", "configurations", "list",
		"--filter=is_active=true", "--format=value(name)")
	if err != nil {
		return "", err
	}
	if out == "" {
		return "default", nil
	}
	return out, nil
}

// getValue reads a single gcloud config property; "(unset)" maps to "".
func (t *Tool) getValue(key string) (string, error) {
	out, err := t.run("config", "get-value", key)
	if err != nil {
		return "", err
	}
	if out == "(unset)" {
		return "", nil
	}
	return out, nil
}

// ActiveAccount returns the active account email, or "" if unset.
func (t *Tool) ActiveAccount() (string, error) {
	return t.getValue("account")
}

// ActiveProject returns the active project ID, or "" if unset.
func (t *Tool) ActiveProject() (string, error) {
	return t.getValue("project")
}

// ActivateConfig makes the named gcloud configuration active.
func (t *Tool) ActivateConfig(ref string) error {
	_, err := t.run("config", "configurations", "activate", ref)
	return err
}

// EnsureConfig activates the named configuration, creating it first when
// it does not exist yet.
func (t *Tool) EnsureConfig(ref string) error {
	if _, err := t.run("config", "configurations", "describe", ref); err == nil {
		return t.ActivateConfig(ref)
	}
	logging.Info("Gcloud", "creating gcloud configuration %q", ref)
	_, err := t.run("config", "configurations", "create", ref)
	return err
}

// DeleteConfig removes the named configuration. A configuration that does
// not exist is treated as already deleted.
func (t *Tool) DeleteConfig(ref string) error {
	_, err := t.run("config", "configurations", "delete", ref, "--quiet")
	if err != nil && strings.Contains(err.Error(), "does not exist") {
		return nil
	}
	return err
}

// AuthLogin runs the interactive browser login.
func (t *Tool) AuthLogin() error {
	return t.runInteractive("auth", "login")
}

// AuthADCLogin runs the interactive application-default login.
func (t *Tool) AuthADCLogin() error {
	return t.runInteractive("auth", "application-default", "login")
}

// Dir returns the gcloud configuration directory (~/.config/gcloud,
// override with GCPCTX_GCLOUD_DIR).
func Dir() (string, error) {
	if dir := os.Getenv(GcloudDirEnvVar); dir != "" {
		return dir, nil
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gcloud"), nil
}

// ADCPath returns the path of the live application-default credential
// file consumed by gcloud and the Google client libraries.
func ADCPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, adcFileName), nil
}

// ReadCredentials returns the live ADC blob verbatim.
func (t *Tool) ReadCredentials() ([]byte, error) {
	path, err := ADCPath()
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no credentials found at %s, run 'gcloud auth application-default login' first", path)
		}
		return nil, fmt.Errorf("could not read live credentials: %w", err)
	}
	return blob, nil
}

// WriteCredentials overwrites the live ADC file. This replaces whatever
// credentials are currently live.
func (t *Tool) WriteCredentials(blob []byte) error {
	path, err := ADCPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create gcloud directory: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("could not write live credentials: %w", err)
	}
	return nil
}
