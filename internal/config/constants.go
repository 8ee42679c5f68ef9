package config

// Defaults shared by config and the CLI flags.
const (
	// DefaultBackend is the catalog store used when none is configured
	DefaultBackend = "indexed"

	// DefaultLogLevel keeps debug traces of catalog operations out of the shell
	DefaultLogLevel = "warn"

	DefaultLogFormat = "console"
)
