// Package schnorr is a non-interactive proof of knowledge of a discrete
// logarithm on any curve the bnmath bridge can initialize.
package schnorr

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

var ErrNilInput = errors.New("schnorr: inputs cannot be nil")

// Proof represents a Schnorr proof of knowledge of x with X = x * G.
type Proof struct {
	R *bignum.Point // Commitment R = k * G
	S *bignum.Num   // Response s = k + e * x mod n
}

// GenerateKey returns a random secret x in [1, n) and X = x * G.
func GenerateKey(c *bnmath.Curve) (*bignum.Num, *bignum.Point, error) {
	if c == nil {
		return nil, nil, ErrNilInput
	}
	x, err := randScalar(c)
	if err != nil {
		return nil, nil, err
	}
	X := c.NewPoint()
	if err := bnmath.EccModMult(X, nil, x, c); err != nil {
		return nil, nil, err
	}
	return x, X, nil
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
func Prove(c *bnmath.Curve, x *bignum.Num, X *bignum.Point) (*Proof, error) {
	if c == nil || x == nil || X == nil {
		return nil, ErrNilInput
	}
	n := c.Order()
	nbits := n.Allocated() * bignum.RadixBits

	k, err := randScalar(c)
	if err != nil {
		return nil, err
	}

	R := c.NewPoint()
	if err := bnmath.EccModMult(R, nil, k, c); err != nil {
		return nil, errors.Wrap(err, "schnorr: commitment")
	}

	e, err := challenge(c, X, R)
	if err != nil {
		return nil, err
	}

	ex := bignum.New(nbits)
	if err := bnmath.ModMult(ex, e, x, n); err != nil {
		return nil, err
	}
	sum := bignum.New(nbits + bignum.RadixBits)
	if err := bignum.Add(sum, k, ex); err != nil {
		return nil, err
	}
	s := bignum.New(nbits)
	if err := bnmath.Div(nil, s, sum, n); err != nil {
		return nil, err
	}

	return &Proof{R: R, S: s}, nil
}

// Verify checks s*G == R + e*X for public key X.
func (p *Proof) Verify(c *bnmath.Curve, X *bignum.Point) bool {
	if p == nil || p.R == nil || p.S == nil || c == nil || X == nil {
		return false
	}
	if bignum.Cmp(p.S, c.Order()) >= 0 {
		return false
	}
	if !X.IsFinite() || !c.IsOnCurve(X) || !p.R.IsFinite() || !c.IsOnCurve(p.R) {
		return false
	}

	e, err := challenge(c, X, p.R)
	if err != nil {
		return false
	}

	lhs := c.NewPoint()
	if err := bnmath.EccModMult(lhs, nil, p.S, c); err != nil {
		return false
	}
	rhs := c.NewPoint()
	if err := bnmath.EccModMult2(rhs, p.R, bignum.FromWord(1), X, e, c); err != nil {
		return false
	}
	return bignum.PointEqual(lhs, rhs)
}

// challenge computes SHA3-256(curve id || X || R) mod n with fixed width
// coordinates.
func challenge(c *bnmath.Curve, X, R *bignum.Point) (*bignum.Num, error) {
	width := (c.Data().KeySizeBits + 7) / 8
	buf := make([]byte, width)

	h := sha3.New256()
	var id [2]byte
	binary.BigEndian.PutUint16(id[:], uint16(c.ID()))
	h.Write(id[:])
	for _, v := range []*bignum.Num{X.X, X.Y, R.X, R.Y} {
		if v.BitLen() > 8*width {
			return nil, errors.New("schnorr: coordinate out of range")
		}
		h.Write(v.FillBytes(buf))
	}

	n := c.Order()
	e := bignum.New(n.Allocated() * bignum.RadixBits)
	if err := bnmath.Div(nil, e, bignum.FromBytes(h.Sum(nil)), n); err != nil {
		return nil, err
	}
	return e, nil
}

// randScalar returns a uniform value in [1, n).
func randScalar(c *bnmath.Curve) (*bignum.Num, error) {
	n, err := bnmath.BignumToForeign(c.Order())
	if err != nil {
		return nil, err
	}
	k, err := crand.Int(crand.Reader, n.Sub(n, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	k.Add(k, big.NewInt(1))

	out := bignum.New(c.Order().Allocated() * bignum.RadixBits)
	if err := bnmath.ForeignToBignum(out, k); err != nil {
		return nil, err
	}
	return out, nil
}
