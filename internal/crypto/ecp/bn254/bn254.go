// Package bn254 registers an ecp engine for the BN254 G1 group backed by
// github.com/consensys/gnark-crypto.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
)

// Name is the registry key of this engine.
const Name = "bn254"

func init() {
	ecp.Register(Engine{})
}

var (
	modulus = fp.Modulus()
	order   = fr.Modulus()
	curveB  = big.NewInt(3)
)

// Engine runs the group operation in gnark-crypto's G1 Jacobian arithmetic.
type Engine struct{}

func (Engine) Name() string { return Name }

func (Engine) Supports(g *ecp.Group) bool {
	return ecp.SameCurve(g, modulus, order) && g.A.Sign() == 0 && g.B.Cmp(curveB) == 0
}

func (e Engine) MulAdd(g *ecp.Group, r *ecp.Point, m *big.Int, p *ecp.Point, n *big.Int, q *ecp.Point) error {
	if !e.Supports(g) {
		return ecp.ErrUnsupported
	}

	var acc, t bn254.G1Jac
	setInfinity(&acc)
	if term(m, p, &t) {
		acc.AddAssign(&t)
	}
	if term(n, q, &t) {
		acc.AddAssign(&t)
	}

	if acc.Z.IsZero() {
		r.SetInfinity()
		return nil
	}
	var aff bn254.G1Affine
	aff.FromJacobian(&acc)
	x := aff.X.ToBigIntRegular(new(big.Int))
	y := aff.Y.ToBigIntRegular(new(big.Int))
	r.SetAffine(x, y)
	return nil
}

func setInfinity(p *bn254.G1Jac) {
	p.X.SetOne()
	p.Y.SetOne()
	p.Z.SetZero()
}

// term sets out = [k]p and reports whether the result may be finite.
func term(k *big.Int, p *ecp.Point, out *bn254.G1Jac) bool {
	s := new(big.Int).Mod(k, order)
	if s.Sign() == 0 || p.IsInfinity() {
		return false
	}
	var point bn254.G1Jac
	point.X.SetBigInt(p.X)
	point.Y.SetBigInt(p.Y)
	point.Z.SetOne()
	out.ScalarMultiplication(&point, s)
	return true
}
