package config

// GetDefaultConfig returns the built-in defaults. Paths are left empty
// here; the store and gcloud packages resolve their own defaults so the
// config file only needs to name overrides.
func GetDefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}
