package config

const (
	defaultLogDir               = "~/.local/share/encodewatch/logs"
	defaultTranscoderCommand    = "HandBrakeCLI"
	defaultCheckIntervalSeconds = 300
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultLogRetentionDays     = 30
)

// Default returns a Config populated with repository defaults. The input and
// output directories have no default and must be supplied.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Transcoder: Transcoder{
			Command: defaultTranscoderCommand,
		},
		Workflow: Workflow{
			CheckIntervalSeconds: defaultCheckIntervalSeconds,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
