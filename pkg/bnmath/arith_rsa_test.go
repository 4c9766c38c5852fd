//go:build !bnbridge_norsa

package bnmath

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

func TestAlgRSA(t *testing.T) {
	assert.True(t, AlgRSA)
}

func TestGcd(t *testing.T) {
	a := bignum.MustHex("1b4")
	g := bignum.New(64)
	require.NoError(t, Gcd(g, a, bignum.New(64)))
	assert.True(t, bignum.Equal(a, g), "gcd(a, 0) must be a")

	require.NoError(t, Gcd(g, bignum.FromWord(462), bignum.FromWord(1071)))
	assert.True(t, g.IsWord(21))
}

func TestModExp(t *testing.T) {
	result := bignum.New(64)
	require.NoError(t, ModExp(result, bignum.FromWord(4), bignum.FromWord(13), bignum.FromWord(497)))
	assert.True(t, result.IsWord(445))

	// RSA style round trip
	// Mersenne primes 2^89-1 and 2^107-1
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1))
	q := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 107), big.NewInt(1))
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, big.NewInt(1)), new(big.Int).Sub(q, big.NewInt(1)))
	e := big.NewInt(65537)
	d := new(big.Int).ModInverse(e, phi)
	require.NotNil(t, d)

	msg := bignum.MustHex("48656c6c6f")
	c := bignum.New(n.BitLen())
	require.NoError(t, ModExp(c, msg, num(t, e), num(t, n)))
	back := bignum.New(n.BitLen())
	require.NoError(t, ModExp(back, c, num(t, d), num(t, n)))
	assert.True(t, bignum.Equal(msg, back))
}

func TestModInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	for i := 0; i < 10; i++ {
		a := randBig(rng, 255)
		if a.Sign() == 0 {
			continue
		}
		inv := bignum.New(256)
		require.NoError(t, ModInverse(inv, num(t, a), num(t, m)))

		prod := bignum.New(256)
		require.NoError(t, ModMult(prod, num(t, a), inv, num(t, m)))
		assert.True(t, prod.IsWord(1))
	}
}

func TestModInverseMissing(t *testing.T) {
	err := ModInverse(bignum.New(64), bignum.FromWord(6), bignum.FromWord(9))
	assert.ErrorIs(t, err, ErrNoInverse)
	assert.False(t, IsFatal(err))
}

func TestModExpModulusOne(t *testing.T) {
	result := bignum.FromWord(9)
	require.NoError(t, ModExp(result, bignum.FromWord(4), bignum.FromWord(13), bignum.FromWord(1)))
	assert.True(t, result.IsZero())

	assert.ErrorIs(t, ModExp(result, bignum.FromWord(4), bignum.FromWord(13), bignum.New(64)), ErrInvalidModulus)
}
