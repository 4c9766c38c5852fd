package ecp

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p256(t *testing.T) *Group {
	t.Helper()
	params := elliptic.P256().Params()
	g := GroupFromParams(params, big.NewInt(-3))
	require.Equal(t, "generic", g.Bind("generic"))
	return g
}

func affine(x, y *big.Int) *Point {
	return NewPoint().SetAffine(x, y)
}

func TestGenericOrderTimesBase(t *testing.T) {
	g := p256(t)
	r := NewPoint()
	require.NoError(t, g.MulAdd(r, g.N, &g.G, big.NewInt(0), NewPoint()))
	assert.True(t, r.IsInfinity())
	assert.Zero(t, r.X.Sign())
	assert.Zero(t, r.Y.Sign())
}

func TestGenericMatchesStdlib(t *testing.T) {
	g := p256(t)
	curve := elliptic.P256()

	k := new(big.Int).SetBytes([]byte{0x1f, 0xe2, 0x33, 0x07, 0x90, 0xab, 0xcd, 0xef})
	r := NewPoint()
	require.NoError(t, g.MulAdd(r, k, &g.G, big.NewInt(0), NewPoint()))

	x, y := curve.ScalarBaseMult(k.Bytes())
	assert.Equal(t, 0, r.X.Cmp(x))
	assert.Equal(t, 0, r.Y.Cmp(y))
	assert.Equal(t, int64(1), r.Z.Int64())
	assert.True(t, g.IsOnCurve(r))
}

func TestGenericMulAddIsSum(t *testing.T) {
	g := p256(t)
	curve := elliptic.P256()

	m, n := big.NewInt(7), big.NewInt(11)
	qx, qy := curve.ScalarBaseMult(big.NewInt(5).Bytes())
	q := affine(qx, qy)

	r := NewPoint()
	require.NoError(t, g.MulAdd(r, m, &g.G, n, q))

	// 7G + 11(5G) = 62G
	x, y := curve.ScalarBaseMult(big.NewInt(62).Bytes())
	assert.Equal(t, 0, r.X.Cmp(x))
	assert.Equal(t, 0, r.Y.Cmp(y))
}

func TestGenericAddInfinity(t *testing.T) {
	g := p256(t)
	r := NewPoint()
	require.NoError(t, g.MulAdd(r, one, &g.G, one, NewPoint()))
	assert.Equal(t, 0, r.X.Cmp(g.G.X))
	assert.Equal(t, 0, r.Y.Cmp(g.G.Y))
}

func TestGenericDoubling(t *testing.T) {
	g := p256(t)
	r := NewPoint()
	require.NoError(t, g.MulAdd(r, one, &g.G, one, &g.G))

	x, y := elliptic.P256().Double(g.G.X, g.G.Y)
	assert.Equal(t, 0, r.X.Cmp(x))
	assert.Equal(t, 0, r.Y.Cmp(y))
}

func TestGenericOppositePoints(t *testing.T) {
	g := p256(t)
	neg := affine(g.G.X, new(big.Int).Sub(g.P, g.G.Y))
	r := NewPoint()
	require.NoError(t, g.MulAdd(r, one, &g.G, one, neg))
	assert.True(t, r.IsInfinity())
}

func TestMulAddRejects(t *testing.T) {
	g := NewGroup()
	err := g.MulAdd(NewPoint(), one, &g.G, one, NewPoint())
	assert.ErrorIs(t, err, ErrUnbound)

	g = p256(t)
	err = g.MulAdd(NewPoint(), big.NewInt(-1), &g.G, one, NewPoint())
	assert.ErrorIs(t, err, ErrNegativeScalar)
}

func TestIsOnCurve(t *testing.T) {
	g := p256(t)
	assert.True(t, g.IsOnCurve(&g.G))
	assert.True(t, g.IsOnCurve(NewPoint()))
	assert.False(t, g.IsOnCurve(affine(g.G.X, new(big.Int).Add(g.G.Y, one))))
	assert.False(t, g.IsOnCurve(affine(g.P, g.G.Y)))
}

func TestBindFallsBackToGeneric(t *testing.T) {
	g := GroupFromParams(elliptic.P256().Params(), big.NewInt(-3))
	assert.Equal(t, "generic", g.Bind("no-such-engine"))
	assert.Equal(t, "generic", g.Engine().Name())
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, Engines(), "generic")
	assert.NotNil(t, Lookup("generic"))
	assert.Nil(t, Lookup("no-such-engine"))

	Register(namedEngine{Generic{}, "registry-test"})
	assert.Contains(t, Engines(), "registry-test")
	assert.Panics(t, func() { Register(namedEngine{Generic{}, "registry-test"}) })
}

type namedEngine struct {
	Generic
	name string
}

func (e namedEngine) Name() string { return e.name }

func TestFreeWipes(t *testing.T) {
	g := p256(t)
	x := g.G.X
	g.Free()
	assert.Zero(t, x.Sign())
	assert.Zero(t, g.P.Sign())
	assert.Nil(t, g.Engine())
}
