package config

const (
	defaultSymlinkBase         = "/tmp"
	defaultSymlinkName         = "carta-etc"
	defaultReadyTimeoutSeconds = 20
	defaultConnectTimeoutMS    = 250
	defaultRetryIntervalMS     = 100
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SymlinkBase: defaultSymlinkBase,
			SymlinkName: defaultSymlinkName,
		},
		Backend: Backend{
			ReadyTimeoutSeconds: defaultReadyTimeoutSeconds,
			ConnectTimeoutMS:    defaultConnectTimeoutMS,
			RetryIntervalMS:     defaultRetryIntervalMS,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
