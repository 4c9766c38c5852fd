package curves

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List known curves and the engine each one binds to",
		Args:  cobra.NoArgs,
		RunE:  runCommand,
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBITS\tENGINE")
	for _, d := range curves.All() {
		engine := "unavailable"
		if c := bnmath.CurveInitialize(d.ID); c != nil {
			engine = c.Engine()
			c.Free()
		}
		fmt.Fprintf(w, "0x%04x\t%s\t%d\t%s\n", uint16(d.ID), d.Name, d.KeySizeBits, engine)
	}
	return w.Flush()
}
