package bnmath

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

func num(t *testing.T, x *big.Int) *bignum.Num {
	t.Helper()
	n := bignum.New(x.BitLen())
	require.NoError(t, setBignum(n, x))
	return n
}

func toBig(n *bignum.Num) *big.Int {
	return new(big.Int).SetBytes(n.Bytes())
}

func randBig(rng *rand.Rand, nbits int) *big.Int {
	x := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(nbits)))
	return x
}

// fatalOf runs fn and returns the FatalError it raised, or nil.
func fatalOf(fn func()) (fe *FatalError) {
	defer func() {
		if r := recover(); r != nil {
			fe, _ = r.(*FatalError)
		}
	}()
	fn()
	return nil
}
