package config

import "podclip/internal/status"

const (
	defaultConfigPath        = "~/.config/podclip/config.toml"
	defaultDataDir           = "~/.local/share/podclip"
	defaultManifestDirName   = "manifests"
	defaultAPIBind           = "127.0.0.1:7590"
	defaultReadTimeoutSecs   = 15
	defaultWriteTimeoutSecs  = 30
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultClipStatus        = string(status.ClipProcessed)
	defaultDatabaseFilename  = "podclip.db"
	defaultLockFilename      = "podclip.lock"
	defaultLogFilename       = "podclip.log"
	defaultDotEnvFilename    = ".env"
	defaultProjectConfigName = "podclip.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			APIBind: defaultAPIBind,
		},
		API: API{
			ReadTimeout:  defaultReadTimeoutSecs,
			WriteTimeout: defaultWriteTimeoutSecs,
		},
		Clips: Clips{
			DefaultStatus: defaultClipStatus,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
