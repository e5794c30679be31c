package logger

// Console implements a console based logger. It writes to stderr only, the
// process stdout carries the generated strings.
type Console struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`

	// Pretty switches from raw JSON lines to the human readable zerolog
	// ConsoleWriter format.
	Pretty bool `mapstructure:"pretty" toml:"pretty"`
}

// File implements a file based logger with size capped rotation.
type File struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Path    string `mapstructure:"path" toml:"path"`
	Name    string `mapstructure:"name" toml:"name"`

	MaxSize    int `mapstructure:"maxSize" toml:"maxSize"` // megabytes
	MaxBackups int `mapstructure:"maxBackups" toml:"maxBackups"`
	MaxAge     int `mapstructure:"maxAge" toml:"maxAge"` // days
}

// Log implements the logger config.
type Log struct {
	Level string `mapstructure:"level" toml:"level"` // trace, debug, info, warn, error.

	ServiceName  string `mapstructure:"serviceName" toml:"serviceName"`
	ReportCaller bool   `mapstructure:"reportCaller" toml:"reportCaller"`

	// Console used mainly for interactive runs.
	Console Console `mapstructure:"console" toml:"console"`

	// File logging for scripted environments that discard stderr.
	File File `mapstructure:"file" toml:"file"`
}
