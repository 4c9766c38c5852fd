package selftest

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-tpm-bnbridge/internal/config"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/mathlib"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

func TestRunPasses(t *testing.T) {
	report, err := Run(context.Background(), config.SelfTest{
		Compatibility: true,
		Iterations:    4,
		Seed:          1,
	})
	require.NoError(t, err)
	assert.Empty(t, report.Failed())
	assert.Equal(t, int64(1), report.Seed)

	names := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "compatibility")
	assert.Contains(t, names, "ModMult")
	if bnmath.AlgRSA {
		assert.Contains(t, names, "ModInverse")
	} else {
		assert.NotContains(t, names, "ModInverse")
	}
	if bnmath.AlgECC {
		assert.Contains(t, names, "curve P-256")
		assert.Contains(t, names, "curve BN254")
	} else {
		assert.NotContains(t, names, "curve P-256")
	}
}

func TestRunSelectedCurves(t *testing.T) {
	report, err := Run(context.Background(), config.SelfTest{
		Iterations: 2,
		Curves:     []string{"secp256k1", "0x0020"},
		Seed:       5,
	})
	require.NoError(t, err)
	assert.Empty(t, report.Failed())

	var curveChecks []string
	for _, c := range report.Checks {
		if len(c.Name) > 6 && c.Name[:6] == "curve " {
			curveChecks = append(curveChecks, c.Name)
		}
	}
	if !bnmath.AlgECC {
		assert.Empty(t, curveChecks)
		return
	}
	assert.Equal(t, []string{"curve secp256k1", "curve SM2-P256"}, curveChecks)
}

func TestRunUnknownCurve(t *testing.T) {
	_, err := Run(context.Background(), config.SelfTest{Curves: []string{"P-999"}})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := Run(ctx, config.SelfTest{Iterations: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, report)
}

type wrongMod struct {
	mathlib.Std
}

func (wrongMod) Mod(r, x, y *big.Int) error {
	r.Mod(x, y)
	r.Add(r, big.NewInt(1))
	return nil
}

func TestRunReportsMismatch(t *testing.T) {
	runner := NewRunner(bnmath.New(bnmath.WithLibrary(wrongMod{})))
	report, err := runner.Run(context.Background(), config.SelfTest{Iterations: 1, Curves: []string{"P-256"}, Seed: 3})
	require.NoError(t, err)

	failed := map[string]bool{}
	for _, c := range report.Failed() {
		failed[c.Name] = true
	}
	assert.True(t, failed["ModMult"])
	assert.False(t, failed["Mult"])
}
