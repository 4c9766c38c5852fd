// Package nist registers an ecp engine backed by crypto/elliptic for the
// NIST prime curves.
package nist

import (
	"crypto/elliptic"
	"math/big"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
)

// Name is the registry key of this engine.
const Name = "nist"

func init() {
	ecp.Register(Engine{})
}

var supported = []elliptic.Curve{
	elliptic.P224(),
	elliptic.P256(),
	elliptic.P384(),
	elliptic.P521(),
}

// Engine delegates to the constant-time crypto/elliptic implementations.
type Engine struct{}

func (Engine) Name() string { return Name }

func (Engine) Supports(g *ecp.Group) bool {
	return curveFor(g) != nil
}

func curveFor(g *ecp.Group) elliptic.Curve {
	for _, c := range supported {
		params := c.Params()
		if ecp.SameCurve(g, params.P, params.N) && g.B.Cmp(params.B) == 0 {
			return c
		}
	}
	return nil
}

func (Engine) MulAdd(g *ecp.Group, r *ecp.Point, m *big.Int, p *ecp.Point, n *big.Int, q *ecp.Point) error {
	curve := curveFor(g)
	if curve == nil {
		return ecp.ErrUnsupported
	}
	// crypto/elliptic panics on points that are not on the curve.
	if !g.IsOnCurve(p) || !g.IsOnCurve(q) {
		return ecp.ErrNotOnCurve
	}

	x1, y1 := term(curve, m, p)
	x2, y2 := term(curve, n, q)
	x, y := curve.Add(x1, y1, x2, y2)

	// crypto/elliptic encodes infinity as (0, 0)
	if x.Sign() == 0 && y.Sign() == 0 {
		r.SetInfinity()
		return nil
	}
	r.SetAffine(x, y)
	return nil
}

// term returns [k]p in affine form with (0, 0) for infinity.
func term(curve elliptic.Curve, k *big.Int, p *ecp.Point) (*big.Int, *big.Int) {
	s := new(big.Int).Mod(k, curve.Params().N)
	if s.Sign() == 0 || p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	return curve.ScalarMult(p.X, p.Y, s.Bytes())
}
