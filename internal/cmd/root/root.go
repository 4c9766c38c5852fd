package root

import (
	"github.com/spf13/cobra"

	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/calc"
	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/cmdutil"
	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/curves"
	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/selftest"
	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/version"
)

func GetRootCmd() *cobra.Command {
	opts := cmdutil.NewOptions()

	var rootCmd = &cobra.Command{
		Use:           "bnbridge",
		Short:         "Bignum bridge to foreign multi-precision and elliptic-curve libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.ConfigFile, cmdutil.ConfigFileFlag, "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, cmdutil.LogLevelFlag, "info", "Log level, overrides log.level")

	rootCmd.AddCommand(selftest.GetCommand(opts))
	rootCmd.AddCommand(curves.GetCommand())
	rootCmd.AddCommand(calc.GetCommand())
	rootCmd.AddCommand(version.GetCommand())
	return rootCmd
}
