package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

// Version is set at link time with -ldflags "-X ...version.Version=...".
var Version = "dev"

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Command to show current binary version",
		Run:   runCommand,
	}

	return cmd
}

func runCommand(c *cobra.Command, args []string) {
	fmt.Fprintf(c.OutOrStdout(), "bnbridge %s (%s/%s, %d-bit words, ecc=%t, rsa=%t)\n",
		Version, runtime.GOOS, runtime.GOARCH, bignum.RadixBits, bnmath.AlgECC, bnmath.AlgRSA)
}
