//go:build !bnbridge_norsa && !bnbridge_noecc

package benchmark

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

func randNum(b *testing.B, nbits int) *bignum.Num {
	b.Helper()
	x, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(nbits)))
	if err != nil {
		b.Fatal(err)
	}
	x.SetBit(x, nbits-1, 1)
	x.SetBit(x, 0, 1)
	n := bignum.New(nbits)
	if err := bnmath.ForeignToBignum(n, x); err != nil {
		b.Fatal(err)
	}
	return n
}

func BenchmarkMarshal(b *testing.B) {
	for _, nbits := range []int{256, 2048, 4096} {
		b.Run(fmt.Sprintf("%d", nbits), func(b *testing.B) {
			src := randNum(b, nbits)
			dst := bignum.New(nbits)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := bnmath.BignumToForeign(src)
				if err != nil {
					b.Fatal(err)
				}
				if err := bnmath.ForeignToBignum(dst, f); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkModMult(b *testing.B) {
	x, y, m := randNum(b, 2048), randNum(b, 2048), randNum(b, 2048)
	r := bignum.New(2048)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := bnmath.ModMult(r, x, y, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkModExp(b *testing.B) {
	for _, nbits := range []int{1024, 2048} {
		b.Run(fmt.Sprintf("%d", nbits), func(b *testing.B) {
			x, e, m := randNum(b, nbits), randNum(b, nbits), randNum(b, nbits)
			r := bignum.New(nbits)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := bnmath.ModExp(r, x, e, m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEccModMult(b *testing.B) {
	for _, d := range curves.All() {
		b.Run(d.Name, func(b *testing.B) {
			c := bnmath.CurveInitialize(d.ID)
			if c == nil {
				b.Skip("curve unavailable")
			}
			defer c.Free()
			k := randNum(b, d.KeySizeBits-1)
			r := c.NewPoint()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := bnmath.EccModMult(r, nil, k, c); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEccModMult2(b *testing.B) {
	c := bnmath.CurveInitialize(curves.NistP256)
	if c == nil {
		b.Skip("curve unavailable")
	}
	defer c.Free()
	q := c.NewPoint()
	if err := bnmath.EccModMult(q, nil, bignum.FromWord(7), c); err != nil {
		b.Fatal(err)
	}
	d, u := randNum(b, 255), randNum(b, 255)
	r := c.NewPoint()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := bnmath.EccModMult2(r, nil, d, q, u, c); err != nil {
			b.Fatal(err)
		}
	}
}
