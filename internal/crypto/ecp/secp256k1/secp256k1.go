// Package secp256k1 registers an ecp engine backed by
// github.com/decred/dcrd/dcrec/secp256k1/v4.
package secp256k1

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
)

// Name is the registry key of this engine.
const Name = "secp256k1"

func init() {
	ecp.Register(Engine{})
}

var params = secp256k1.S256().Params()

// Engine runs the group operation in decred's Jacobian field arithmetic.
type Engine struct{}

func (Engine) Name() string { return Name }

func (Engine) Supports(g *ecp.Group) bool {
	return ecp.SameCurve(g, params.P, params.N) && g.A.Sign() == 0 && g.B.Cmp(params.B) == 0
}

func (e Engine) MulAdd(g *ecp.Group, r *ecp.Point, m *big.Int, p *ecp.Point, n *big.Int, q *ecp.Point) error {
	if !e.Supports(g) {
		return ecp.ErrUnsupported
	}

	var t1, t2, sum secp256k1.JacobianPoint
	term(m, p, &t1)
	term(n, q, &t2)
	secp256k1.AddNonConst(&t1, &t2, &sum)

	sum.X.Normalize()
	sum.Y.Normalize()
	sum.Z.Normalize()
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		r.SetInfinity()
		return nil
	}
	sum.ToAffine()
	r.SetAffine(fieldToBig(&sum.X), fieldToBig(&sum.Y))
	return nil
}

// term sets out = [k]p, leaving out at infinity when either is zero.
func term(k *big.Int, p *ecp.Point, out *secp256k1.JacobianPoint) {
	if k.Sign() == 0 || p.IsInfinity() {
		out.X.SetInt(0)
		out.Y.SetInt(0)
		out.Z.SetInt(0)
		return
	}
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(new(big.Int).Mod(k, params.N).Bytes())

	var point secp256k1.JacobianPoint
	point.X.SetByteSlice(new(big.Int).Mod(p.X, params.P).Bytes())
	point.Y.SetByteSlice(new(big.Int).Mod(p.Y, params.P).Bytes())
	point.Z.SetInt(1)

	secp256k1.ScalarMultNonConst(&scalar, &point, out)
}

func fieldToBig(f *secp256k1.FieldVal) *big.Int {
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}
