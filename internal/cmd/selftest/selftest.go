package selftest

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/cmdutil"
	"github.com/smallyu/go-tpm-bnbridge/internal/selftest"
	"github.com/smallyu/go-tpm-bnbridge/internal/telemetry"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

const (
	curvesFlag     = "curves"
	iterationsFlag = "iterations"
	seedFlag       = "seed"
	noCompatFlag   = "no-compat"
)

var errFailed = errors.New("self-test failed")

type flags struct {
	curves     []string
	iterations int
	seed       int64
	noCompat   bool
}

func GetCommand(opts *cmdutil.Options) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the compatibility check and arithmetic and curve self-tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, f)
		},
	}

	d := opts.Config.SelfTest
	cmd.Flags().StringSliceVar(&f.curves, curvesFlag, nil, "Curves to check by name or id (default all)")
	cmd.Flags().IntVar(&f.iterations, iterationsFlag, d.Iterations, "Random vectors per check")
	cmd.Flags().Int64Var(&f.seed, seedFlag, 0, "Seed for the random vectors (0 picks one)")
	cmd.Flags().BoolVar(&f.noCompat, noCompatFlag, false, "Skip the word layout compatibility check")
	return cmd
}

func runCommand(cmd *cobra.Command, opts *cmdutil.Options, f *flags) error {
	conf := opts.Config.SelfTest
	if cmd.Flags().Changed(curvesFlag) {
		conf.Curves = f.curves
	}
	if cmd.Flags().Changed(iterationsFlag) {
		conf.Iterations = f.iterations
	}
	if cmd.Flags().Changed(seedFlag) {
		conf.Seed = f.seed
	}
	if f.noCompat {
		conf.Compatibility = false
	}

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(reg)
	if err != nil {
		return err
	}
	bridge := bnmath.New(bnmath.WithMetrics(metrics), bnmath.WithLogger(log.WithField("module", "bnmath")))

	report, err := selftest.NewRunner(bridge).Run(cmd.Context(), conf)
	if report != nil {
		printReport(cmd, report)
	}
	if err != nil {
		return err
	}

	totals, err := telemetry.Totals(reg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "operations:")
	for _, t := range totals {
		fmt.Fprintf(out, "  %-26s %-6s %.0f\n", t.Op, t.Result, t.Count)
	}

	if failed := report.Failed(); len(failed) > 0 {
		return errors.Wrapf(errFailed, "%d of %d checks", len(failed), len(report.Checks))
	}
	return nil
}

func printReport(cmd *cobra.Command, report *selftest.Report) {
	out := cmd.OutOrStdout()
	for _, c := range report.Checks {
		status := "PASS"
		if !c.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%s  %-22s %4d vectors", status, c.Name, c.Vectors)
		if c.Err != nil {
			fmt.Fprintf(out, "  %v", c.Err)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "seed %d, %d checks in %s\n", report.Seed, len(report.Checks), report.Duration)
}
