package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
)

func group(engine string) *ecp.Group {
	g := ecp.GroupFromParams(params, big.NewInt(0))
	g.Bind(engine)
	return g
}

func TestBinds(t *testing.T) {
	assert.Equal(t, Name, group(Name).Engine().Name())
}

func TestMatchesGeneric(t *testing.T) {
	fast, slow := group(Name), group("generic")

	cases := []struct {
		name string
		m, n int64
	}{
		{"base only", 0x1234567, 0},
		{"both terms", 0x7f3e, 0x51},
		{"equal terms", 9, 3},
	}
	q := ecp.NewPoint()
	require.NoError(t, slow.MulAdd(q, big.NewInt(3), &slow.G, big.NewInt(0), ecp.NewPoint()))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, n := big.NewInt(tc.m), big.NewInt(tc.n)
			want := ecp.NewPoint()
			require.NoError(t, slow.MulAdd(want, m, &slow.G, n, q))
			got := ecp.NewPoint()
			require.NoError(t, fast.MulAdd(got, m, &fast.G, n, q))

			assert.Equal(t, 0, got.X.Cmp(want.X))
			assert.Equal(t, 0, got.Y.Cmp(want.Y))
			assert.True(t, fast.IsOnCurve(got))
		})
	}
}

func TestOrderTimesBase(t *testing.T) {
	g := group(Name)
	r := ecp.NewPoint()
	require.NoError(t, g.MulAdd(r, g.N, &g.G, big.NewInt(0), ecp.NewPoint()))
	assert.True(t, r.IsInfinity())
}

func TestOppositePoints(t *testing.T) {
	g := group(Name)
	neg := ecp.NewPoint().SetAffine(g.G.X, new(big.Int).Sub(g.P, g.G.Y))
	r := ecp.NewPoint()
	require.NoError(t, g.MulAdd(r, big.NewInt(5), &g.G, big.NewInt(5), neg))
	assert.True(t, r.IsInfinity())
}
