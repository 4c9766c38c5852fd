// Package sm2 registers an ecp engine for the SM2 P-256 curve backed by
// github.com/tjfoc/gmsm.
package sm2

import (
	"crypto/elliptic"
	"math/big"

	"github.com/tjfoc/gmsm/sm2"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
)

// Name is the registry key of this engine.
const Name = "sm2"

func init() {
	ecp.Register(Engine{curve: sm2.P256Sm2()})
}

// Engine delegates scalar multiplication and addition to gmsm's P-256 code.
type Engine struct {
	curve elliptic.Curve
}

func (e Engine) Name() string { return Name }

func (e Engine) Supports(g *ecp.Group) bool {
	params := e.curve.Params()
	return ecp.SameCurve(g, params.P, params.N) && g.B.Cmp(params.B) == 0
}

func (e Engine) MulAdd(g *ecp.Group, r *ecp.Point, m *big.Int, p *ecp.Point, n *big.Int, q *ecp.Point) error {
	if !e.Supports(g) {
		return ecp.ErrUnsupported
	}
	if !g.IsOnCurve(p) || !g.IsOnCurve(q) {
		return ecp.ErrNotOnCurve
	}

	x1, y1, ok1 := e.term(m, p)
	x2, y2, ok2 := e.term(n, q)
	switch {
	case !ok1 && !ok2:
		r.SetInfinity()
	case !ok1:
		r.SetAffine(x2, y2)
	case !ok2:
		r.SetAffine(x1, y1)
	default:
		x, y, ok := e.add(x1, y1, x2, y2)
		if !ok {
			r.SetInfinity()
			return nil
		}
		r.SetAffine(x, y)
	}
	return nil
}

// term returns [k]p; ok is false for the point at infinity.
func (e Engine) term(k *big.Int, p *ecp.Point) (x, y *big.Int, ok bool) {
	s := new(big.Int).Mod(k, e.curve.Params().N)
	if s.Sign() == 0 || p.IsInfinity() {
		return nil, nil, false
	}
	x, y = e.curve.ScalarMult(p.X, p.Y, s.Bytes())
	return x, y, x.Sign() != 0 || y.Sign() != 0
}

// add handles the doubling and inverse cases explicitly so the library
// only sees distinct, non-opposite points.
func (e Engine) add(x1, y1, x2, y2 *big.Int) (x, y *big.Int, ok bool) {
	if x1.Cmp(x2) == 0 {
		if y1.Cmp(y2) != 0 {
			return nil, nil, false
		}
		x, y = e.curve.Double(x1, y1)
	} else {
		x, y = e.curve.Add(x1, y1, x2, y2)
	}
	return x, y, x.Sign() != 0 || y.Sign() != 0
}
