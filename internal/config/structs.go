package config

import (
	"github.com/sadaie/rsgen/internal/logger"
)

// Output holds the generation defaults applied when no flag overrides them.
type Output struct {
	Count   int    `mapstructure:"count" toml:"count" validate:"gte=1"`
	Loop    int    `mapstructure:"loop" toml:"loop" validate:"gte=1"`
	Fast    bool   `mapstructure:"fast" toml:"fast"`
	Charset string `mapstructure:"charset" toml:"charset" validate:"oneof=alphanumeric numeric printable-ascii printable-ascii-with-space only-upper-case only-lower-case only-latin-alphabet"`
}

// Config implements the overall configuration.
type Config struct {
	Output Output     `mapstructure:"output" toml:"output"`
	Log    logger.Log `mapstructure:"log" toml:"log"`
}
