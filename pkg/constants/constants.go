package constants

const (
	// ConfigName is the base name of the configuration file (without extension).
	ConfigName = "config"

	// ConfigFormat is the configuration file format read by viper.
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. CREDVIA_DATABASE_HOST overrides database.host.
	EnvPrefix = "CREDVIA"

	// ServiceName is the canonical service identifier used in logs and telemetry.
	ServiceName = "credvia_backend"
)
