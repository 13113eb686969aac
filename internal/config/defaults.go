package config

const (
	defaultServerAddress      = "localhost:6600"
	defaultDialTimeoutSeconds = 5
	defaultPickerBinary       = "rofi"
	defaultAlternateKey       = "Ctrl+Return"
	defaultPlayerBinary       = "mpc"
	defaultLockFile           = "~/.local/share/mpdselect/queue.lock"
	defaultQuarantinePath     = "~/music/quarantine"
	defaultNotifyBackend      = NotifyDesktop
	defaultNtfyTimeout        = 10
	defaultDesktopTimeoutMS   = 3000
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Address:     defaultServerAddress,
			DialTimeout: defaultDialTimeoutSeconds,
		},
		Picker: Picker{
			Binary:       defaultPickerBinary,
			AlternateKey: defaultAlternateKey,
		},
		Player: Player{
			Binary:   defaultPlayerBinary,
			LockFile: defaultLockFile,
		},
		Quarantine: Quarantine{
			Path: defaultQuarantinePath,
		},
		Notifications: Notifications{
			Backend:          defaultNotifyBackend,
			RequestTimeout:   defaultNtfyTimeout,
			DesktopTimeoutMS: defaultDesktopTimeoutMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
