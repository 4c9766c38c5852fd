package calc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

type operation struct {
	args  string
	nargs int
	run   func(cmd *cobra.Command, args []string) error
}

var operations = map[string]operation{
	"modmult": {"<a> <b> <m>", 3, modMult},
	"mult":    {"<a> <b>", 2, mult},
	"div":     {"<a> <b>", 2, div},
	"gcd":     {"<a> <b>", 2, gcd},
	"modexp":  {"<a> <e> <m>", 3, modExp},
	"modinv":  {"<a> <m>", 2, modInv},
	"eccmul":  {"<curve> <d>", 2, eccMul},
}

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> <hex>...",
		Short: "Evaluate one bridge operation on hex operands",
		Long:  "Evaluate one bridge operation on hex operands.\n\nOperations:\n" + usage(),
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCommand,
	}
}

func usage() string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-8s %s\n", name, operations[name].args)
	}
	return b.String()
}

func runCommand(cmd *cobra.Command, args []string) (err error) {
	op, ok := operations[strings.ToLower(args[0])]
	if !ok {
		return errors.Errorf("unknown operation %q", args[0])
	}
	if len(args)-1 != op.nargs {
		return errors.Errorf("%s takes %s", args[0], op.args)
	}
	defer bnmath.RecoverFatal(&err)
	return op.run(cmd, args[1:])
}

func parse(args []string) ([]*bignum.Num, int, error) {
	out := make([]*bignum.Num, len(args))
	maxBits := 0
	for i, a := range args {
		n, err := bignum.FromHex(a)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "operand %d", i+1)
		}
		out[i] = n
		if n.Allocated()*bignum.RadixBits > maxBits {
			maxBits = n.Allocated() * bignum.RadixBits
		}
	}
	return out, maxBits, nil
}

func show(cmd *cobra.Command, label string, n *bignum.Num) {
	if label != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", label, n)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
}

func modMult(cmd *cobra.Command, args []string) error {
	v, nbits, err := parse(args)
	if err != nil {
		return err
	}
	r := bignum.New(nbits)
	if err := bnmath.ModMult(r, v[0], v[1], v[2]); err != nil {
		return err
	}
	show(cmd, "", r)
	return nil
}

func mult(cmd *cobra.Command, args []string) error {
	v, nbits, err := parse(args)
	if err != nil {
		return err
	}
	r := bignum.New(2 * nbits)
	if err := bnmath.Mult(r, v[0], v[1]); err != nil {
		return err
	}
	show(cmd, "", r)
	return nil
}

func div(cmd *cobra.Command, args []string) error {
	v, nbits, err := parse(args)
	if err != nil {
		return err
	}
	q, r := bignum.New(nbits), bignum.New(nbits)
	if err := bnmath.Div(q, r, v[0], v[1]); err != nil {
		return err
	}
	show(cmd, "q", q)
	show(cmd, "r", r)
	return nil
}

func gcd(cmd *cobra.Command, args []string) error {
	v, nbits, err := parse(args)
	if err != nil {
		return err
	}
	r := bignum.New(nbits)
	if err := bnmath.Gcd(r, v[0], v[1]); err != nil {
		return err
	}
	show(cmd, "", r)
	return nil
}

func modExp(cmd *cobra.Command, args []string) error {
	v, nbits, err := parse(args)
	if err != nil {
		return err
	}
	r := bignum.New(nbits)
	if err := bnmath.ModExp(r, v[0], v[1], v[2]); err != nil {
		return err
	}
	show(cmd, "", r)
	return nil
}

func modInv(cmd *cobra.Command, args []string) error {
	v, nbits, err := parse(args)
	if err != nil {
		return err
	}
	r := bignum.New(nbits)
	if err := bnmath.ModInverse(r, v[0], v[1]); err != nil {
		return err
	}
	show(cmd, "", r)
	return nil
}

func eccMul(cmd *cobra.Command, args []string) error {
	d := curves.ByName(args[0])
	if d == nil {
		return errors.Errorf("unknown curve %q", args[0])
	}
	k, err := bignum.FromHex(args[1])
	if err != nil {
		return errors.Wrap(err, "scalar")
	}
	c := bnmath.CurveInitialize(d.ID)
	if c == nil {
		if !bnmath.AlgECC {
			return errors.Wrap(bnmath.ErrDisabled, "eccmul")
		}
		return errors.Errorf("curve %s is not available", d)
	}
	defer c.Free()

	r := c.NewPoint()
	if err := bnmath.EccModMult(r, nil, k, c); err != nil {
		return err
	}
	show(cmd, "x", r.X)
	show(cmd, "y", r.Y)
	return nil
}
