// Package cmdutil holds state shared by the bnbridge subcommands.
package cmdutil

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-tpm-bnbridge/internal/config"
)

const (
	ConfigFileFlag = "config"
	LogLevelFlag   = "log-level"
)

// Options is filled by the root command before any subcommand runs.
type Options struct {
	ConfigFile string
	LogLevel   string
	Config     *config.Config
}

func NewOptions() *Options {
	return &Options{Config: config.GetDefaultConfig()}
}

// Load reads the configuration and applies the logging settings.
func (o *Options) Load(cmd *cobra.Command) error {
	conf, err := config.Load(o.ConfigFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(LogLevelFlag) {
		conf.Log.Level = o.LogLevel
	}
	if err := ConfigureLogging(conf.Log); err != nil {
		return err
	}
	o.Config = conf
	return nil
}

// ConfigureLogging sets the global logrus level and formatter.
func ConfigureLogging(conf config.Log) error {
	level, err := log.ParseLevel(conf.Level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", conf.Level)
	}
	log.SetLevel(level)
	switch conf.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
