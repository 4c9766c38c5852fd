// Package selftest exercises the bridge end to end: the word layout check,
// random arithmetic vectors against math/big, and group law checks on every
// configured curve.
package selftest

import (
	"context"
	"math/big"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/smallyu/go-tpm-bnbridge/internal/config"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

// Check is the outcome of one named check.
type Check struct {
	Name    string
	Vectors int
	Err     error
}

func (c Check) Passed() bool {
	return c.Err == nil
}

type Report struct {
	Seed     int64
	Checks   []Check
	Duration time.Duration
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed() {
			out = append(out, c)
		}
	}
	return out
}

func (r *Report) add(c Check) {
	r.Checks = append(r.Checks, c)
}

type Runner struct {
	bridge *bnmath.Bridge
	log    *log.Entry
}

func NewRunner(b *bnmath.Bridge) *Runner {
	if b == nil {
		b = bnmath.Default()
	}
	return &Runner{bridge: b, log: log.WithField("module", "selftest")}
}

// Run runs the self-test with the default bridge.
func Run(ctx context.Context, conf config.SelfTest) (*Report, error) {
	return NewRunner(nil).Run(ctx, conf)
}

// Run executes every enabled check. Check failures are recorded in the
// report; the returned error is only set for invalid configuration or
// cancellation, in which case the partial report is still returned.
func (r *Runner) Run(ctx context.Context, conf config.SelfTest) (*Report, error) {
	start := time.Now()
	seed := conf.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	report := &Report{Seed: seed}
	defer func() { report.Duration = time.Since(start) }()

	selected, err := selectCurves(conf.Curves)
	if err != nil {
		return report, err
	}

	if conf.Compatibility {
		report.add(r.guard("compatibility", func() (int, error) {
			return 1, r.bridge.LibraryCompatibilityCheck()
		}))
	}

	rng := rand.New(rand.NewSource(seed))
	for _, v := range arithmeticChecks {
		if v.rsa && !bnmath.AlgRSA {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		v := v
		report.add(r.guard(v.name, func() (int, error) {
			return r.vectors(ctx, rng, conf.Iterations, v.run)
		}))
	}

	if bnmath.AlgECC {
		for _, d := range selected {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			d := d
			report.add(r.guard("curve "+d.Name, func() (int, error) {
				return r.curve(ctx, rng, d, conf.Iterations)
			}))
		}
	}

	for _, c := range report.Failed() {
		r.log.WithFields(log.Fields{"check": c.Name, "error": c.Err}).Warn("self-test check failed")
	}
	r.log.WithFields(log.Fields{
		"checks": len(report.Checks),
		"failed": len(report.Failed()),
		"seed":   seed,
	}).Info("self-test finished")
	return report, ctx.Err()
}

// guard runs one check, turning a contract violation into a failure.
func (r *Runner) guard(name string, fn func() (int, error)) Check {
	c := Check{Name: name}
	c.Vectors, c.Err = protect(fn)
	return c
}

func protect(fn func() (int, error)) (n int, err error) {
	defer bnmath.RecoverFatal(&err)
	return fn()
}

func (r *Runner) vectors(ctx context.Context, rng *rand.Rand, n int, fn func(*bnmath.Bridge, *rand.Rand) error) (int, error) {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := fn(r.bridge, rng); err != nil {
			return i + 1, errors.Wrapf(err, "vector %d", i)
		}
	}
	return n, nil
}

func selectCurves(names []string) ([]*curves.Data, error) {
	if len(names) == 0 {
		return curves.All(), nil
	}
	out := make([]*curves.Data, 0, len(names))
	for _, name := range names {
		d := curves.ByName(name)
		if d == nil {
			return nil, errors.Errorf("unknown curve %q", name)
		}
		out = append(out, d)
	}
	return out, nil
}

func toBig(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
