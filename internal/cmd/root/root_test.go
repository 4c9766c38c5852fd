package root

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := GetRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bnbridge dev"))
	assert.Contains(t, out, fmt.Sprintf("ecc=%t", bnmath.AlgECC))
	assert.Contains(t, out, fmt.Sprintf("rsa=%t", bnmath.AlgRSA))
}

func TestCurves(t *testing.T) {
	out, err := execute(t, "curves")
	require.NoError(t, err)
	assert.Contains(t, out, "0x0003")
	assert.Contains(t, out, "P-256")
	if !bnmath.AlgECC {
		assert.Contains(t, out, "unavailable")
		assert.NotContains(t, out, "bn254")
		return
	}
	assert.Contains(t, out, "secp256k1")
	assert.Contains(t, out, "bn254")
	assert.NotContains(t, out, "unavailable")
}

func TestCalc(t *testing.T) {
	cases := []struct {
		args []string
		rsa  bool
		want string
	}{
		{[]string{"calc", "modmult", "3", "5", "7"}, false, "0x1\n"},
		{[]string{"calc", "mult", "ff", "ff"}, false, "0xfe01\n"},
		{[]string{"calc", "div", "64", "7"}, false, "q = 0xe\nr = 0x2\n"},
		{[]string{"calc", "gcd", "1ce", "42f"}, true, "0x15\n"},
		{[]string{"calc", "modexp", "4", "d", "1f1"}, true, "0x1bd\n"},
		{[]string{"calc", "modinv", "3", "b"}, true, "0x4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.args[1], func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if tc.rsa && !bnmath.AlgRSA {
				assert.ErrorIs(t, err, bnmath.ErrDisabled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCalcEccMul(t *testing.T) {
	out, err := execute(t, "calc", "eccmul", "P-256", "1")
	if !bnmath.AlgECC {
		assert.ErrorIs(t, err, bnmath.ErrDisabled)
		return
	}
	require.NoError(t, err)
	assert.Contains(t, out, "x = 0x6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
}

func TestCalcErrors(t *testing.T) {
	_, err := execute(t, "calc", "pow", "1")
	assert.Error(t, err)

	_, err = execute(t, "calc", "mult", "1")
	assert.Error(t, err)

	_, err = execute(t, "calc", "div", "5", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divide by zero")

	_, err = execute(t, "calc", "modinv", "6", "9")
	assert.Error(t, err)
}

func TestSelfTest(t *testing.T) {
	out, err := execute(t, "selftest", "--iterations", "2", "--curves", "P-256,secp256k1", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  compatibility")
	if bnmath.AlgECC {
		assert.Contains(t, out, "PASS  curve P-256")
	}
	assert.Contains(t, out, "seed 9")
	assert.Contains(t, out, "operations:")
	assert.NotContains(t, out, "FAIL")
}

func TestSelfTestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bnbridge.yaml")
	conf := "log:\n  level: warn\nselftest:\n  compatibility: false\n  iterations: 1\n  curves: [BN254]\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o600))

	out, err := execute(t, "--config", path, "selftest", "--seed", "4")
	require.NoError(t, err)
	assert.NotContains(t, out, "compatibility")
	if bnmath.AlgECC {
		assert.Contains(t, out, "PASS  curve BN254")
	}
	assert.NotContains(t, out, "curve P-256")
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.Error(t, err)
}
