package selftest

import (
	"math/big"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

var errMismatch = errors.New("result differs from math/big")

type arithmeticCheck struct {
	name string
	rsa  bool
	run  func(*bnmath.Bridge, *rand.Rand) error
}

var arithmeticChecks = []arithmeticCheck{
	{"ModMult", false, checkModMult},
	{"Mult", false, checkMult},
	{"Div", false, checkDiv},
	{"Gcd", true, checkGcd},
	{"ModExp", true, checkModExp},
	{"ModInverse", true, checkModInverse},
}

// operand returns a random value of up to maxBits bits, never zero.
func operand(rng *rand.Rand, maxBits int) *big.Int {
	nbits := 1 + rng.Intn(maxBits)
	x := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(nbits)))
	return x.SetBit(x, 0, 1)
}

func fromBig(x *big.Int, nbits int) *bignum.Num {
	n := bignum.New(nbits)
	if err := n.SetBytes(x.Bytes()); err != nil {
		panic(err)
	}
	return n
}

func expect(got *bignum.Num, want *big.Int) error {
	if toBig(got.Bytes()).Cmp(want) != 0 {
		return errors.Wrapf(errMismatch, "got %s, want %#x", got, want)
	}
	return nil
}

func checkModMult(b *bnmath.Bridge, rng *rand.Rand) error {
	x, y := operand(rng, 1024), operand(rng, 1024)
	m := operand(rng, 1024)
	m.SetBit(m, 1, 1)

	result := bignum.New(1024)
	if err := b.ModMult(result, fromBig(x, 1024), fromBig(y, 1024), fromBig(m, 1024)); err != nil {
		return err
	}
	want := new(big.Int).Mul(x, y)
	return expect(result, want.Mod(want, m))
}

func checkMult(b *bnmath.Bridge, rng *rand.Rand) error {
	x, y := operand(rng, 1024), operand(rng, 1024)
	result := bignum.New(2048)
	if err := b.Mult(result, fromBig(x, 1024), fromBig(y, 1024)); err != nil {
		return err
	}
	return expect(result, new(big.Int).Mul(x, y))
}

func checkDiv(b *bnmath.Bridge, rng *rand.Rand) error {
	x, y := operand(rng, 2048), operand(rng, 1024)
	q, r := bignum.New(2048), bignum.New(1024)
	if err := b.Div(q, r, fromBig(x, 2048), fromBig(y, 1024)); err != nil {
		return err
	}
	wantQ, wantR := new(big.Int).DivMod(x, y, new(big.Int))
	if err := expect(q, wantQ); err != nil {
		return errors.WithMessage(err, "quotient")
	}
	if err := expect(r, wantR); err != nil {
		return errors.WithMessage(err, "remainder")
	}

	r2 := bignum.New(1024)
	if err := b.Div(nil, r2, fromBig(x, 2048), fromBig(y, 1024)); err != nil {
		return err
	}
	if !bignum.Equal(r, r2) {
		return errors.Wrap(errMismatch, "remainder without quotient")
	}
	return nil
}

func checkGcd(b *bnmath.Bridge, rng *rand.Rand) error {
	common := operand(rng, 128)
	x := new(big.Int).Mul(operand(rng, 512), common)
	y := new(big.Int).Mul(operand(rng, 512), common)

	result := bignum.New(640)
	if err := b.Gcd(result, fromBig(x, 640), fromBig(y, 640)); err != nil {
		return err
	}
	return expect(result, new(big.Int).GCD(nil, nil, x, y))
}

func checkModExp(b *bnmath.Bridge, rng *rand.Rand) error {
	x, e := operand(rng, 1024), operand(rng, 256)
	m := operand(rng, 1024)
	m.SetBit(m, 1, 1)

	result := bignum.New(1024)
	if err := b.ModExp(result, fromBig(x, 1024), fromBig(e, 256), fromBig(m, 1024)); err != nil {
		return err
	}
	return expect(result, new(big.Int).Exp(x, e, m))
}

func checkModInverse(b *bnmath.Bridge, rng *rand.Rand) error {
	x, m := operand(rng, 1024), operand(rng, 1024)
	m.SetBit(m, 1, 1)

	result := bignum.New(1024)
	err := b.ModInverse(result, fromBig(x, 1024), fromBig(m, 1024))
	want := new(big.Int).ModInverse(x, m)
	if want == nil {
		if errors.Is(err, bnmath.ErrNoInverse) {
			return nil
		}
		return errors.Errorf("expected no inverse, got %v", err)
	}
	if err != nil {
		return err
	}
	return expect(result, want)
}
