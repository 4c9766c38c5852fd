// Package config loads bnbridge settings from a file and BNBRIDGE_*
// environment variables.
package config

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// BNBRIDGE_SELFTEST_ITERATIONS.
const EnvPrefix = "BNBRIDGE"

type Config struct {
	Log      Log      `mapstructure:"log"`
	SelfTest SelfTest `mapstructure:"selftest"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SelfTest struct {
	// Compatibility runs the word layout check before anything else.
	Compatibility bool `mapstructure:"compatibility"`
	// Iterations is the number of random vectors per arithmetic operation.
	Iterations int `mapstructure:"iterations"`
	// Curves restricts the curve checks; empty means every known curve.
	Curves []string `mapstructure:"curves"`
	// Seed makes the random vectors reproducible. Zero picks a fresh seed.
	Seed int64 `mapstructure:"seed"`
}

// GetDefaultConfig returns the settings used when nothing is configured.
func GetDefaultConfig() *Config {
	return &Config{
		Log: Log{Level: "info", Format: "text"},
		SelfTest: SelfTest{
			Compatibility: true,
			Iterations:    64,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	d := GetDefaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("selftest.compatibility", d.SelfTest.Compatibility)
	v.SetDefault("selftest.iterations", d.SelfTest.Iterations)
	v.SetDefault("selftest.seed", d.SelfTest.Seed)
	// curves has no default, so the key is only known to Unmarshal
	// through an explicit binding. The value is comma separated.
	_ = v.BindEnv("selftest.curves", EnvPrefix+"_SELFTEST_CURVES")
	return v
}

// Load reads path (YAML, JSON or TOML by extension) when it is not empty,
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}
	return decode(v)
}

// Parse reads configuration of the given type ("yaml", "json") from data.
func Parse(data []byte, format string) (*Config, error) {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks value ranges that decoding cannot.
func (c *Config) Validate() error {
	if c.SelfTest.Iterations < 0 {
		return errors.Errorf("selftest.iterations must not be negative, got %d", c.SelfTest.Iterations)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
