package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata is the structured record stored alongside each context's
// credential blob.
type Metadata struct {
	// GcloudConfig is the gcloud configuration name that was active when
	// the context was saved.
	GcloudConfig string `yaml:"gcloudConfig"`
	// Account is the account email associated with this context, if known.
	Account string `yaml:"account,omitempty"`
	// Project is the project ID, if set.
	Project string `yaml:"project,omitempty"`
	// KubectlContext is the kubectl context that was active when the
	// context was saved, if any.
	KubectlContext string `yaml:"kubectlContext,omitempty"`
}

// WriteMetadata serializes a context's metadata record, creating the
// context directory if needed. Overwrites any previous record.
func (s *Store) WriteMetadata(name string, md Metadata) error {
	if err := os.MkdirAll(s.contextDir(name), 0o755); err != nil {
		return fmt.Errorf("could not create context directory for %q: %w", name, err)
	}
	data, err := yaml.Marshal(md)
	if err != nil {
		return fmt.Errorf("could not serialize metadata for context %q: %w", name, err)
	}
	if err := os.WriteFile(s.metadataPath(name), data, 0o644); err != nil {
		return fmt.Errorf("could not write metadata for context %q: %w", name, err)
	}
	return nil
}

// ReadMetadata loads a context's metadata record. Returns ErrNotFound if
// the context was never saved and ErrCorrupt if the record does not parse.
func (s *Store) ReadMetadata(name string) (Metadata, error) {
	data, err := os.ReadFile(s.metadataPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Metadata{}, fmt.Errorf("context %q: %w", name, ErrNotFound)
		}
		return Metadata{}, fmt.Errorf("could not read metadata for context %q: %w", name, err)
	}

	var md Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return Metadata{}, fmt.Errorf("metadata for context %q does not parse (%v): %w", name, err, ErrCorrupt)
	}
	return md, nil
}
