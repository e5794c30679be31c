// Package config resolves the effective rsgen configuration from built-in
// defaults, an optional TOML file, RSGEN_* environment variables and the
// command line flags, in ascending order of precedence.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// envPrefix is the prefix of every configuration environment variable,
	// e.g. RSGEN_OUTPUT_COUNT.
	envPrefix = "RSGEN"

	// DefaultCount is the built-in number of characters per string.
	DefaultCount = 8

	// DefaultLoop is the built-in number of generated strings.
	DefaultLoop = 1

	// DefaultCharset is the built-in character-set policy name.
	DefaultCharset = "alphanumeric"
)

// Load resolves the effective configuration. A config file named explicitly
// via path must exist; otherwise rsgen.toml is searched in the working
// directory and $HOME/.config/rsgen and may be absent. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	setDefaults(v)

	// override it from env
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, path); err != nil {
		return Config{}, err
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, validate(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.count", DefaultCount)
	v.SetDefault("output.loop", DefaultLoop)
	v.SetDefault("output.fast", false)
	v.SetDefault("output.charset", DefaultCharset)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.serviceName", "rsgen")
	v.SetDefault("log.reportCaller", false)
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.pretty", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "")
	v.SetDefault("log.file.name", "rsgen.log")
	v.SetDefault("log.file.maxSize", 10)
	v.SetDefault("log.file.maxBackups", 3)
	v.SetDefault("log.file.maxAge", 28)
}

// readConfigFile reads the TOML config into v. A missing file is only an
// error when it was named explicitly.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "failed to read config file")
		}

		return nil
	}

	v.SetConfigName("rsgen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/rsgen")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	return nil
}

// bindFlags gives changed command line flags the highest precedence. Flags
// that are registered but left unchanged do not shadow the environment or
// the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"output.count": "count",
		"output.loop":  "loop",
		"output.fast":  "fast",
	}

	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}

	return nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}

// validate the resolved config before it reaches the generator.
func validate(c Config) error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}
