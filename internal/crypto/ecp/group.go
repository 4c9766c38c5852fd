// Package ecp is the elliptic-curve group library the bridge drives. A Group
// is populated field by field from curve constants; arithmetic is delegated
// to an Engine chosen when the group is bound. Points use Jacobian
// coordinates internally and every engine hands results back normalised:
// Z == 1 for a finite point, X == Y == Z == 0 for the point at infinity.
package ecp

import (
	"crypto/elliptic"
	"errors"
	"math/big"
)

var (
	ErrNegativeScalar = errors.New("ecp: negative scalar")
	ErrNotOnCurve     = errors.New("ecp: point is not on the curve")
	ErrUnsupported    = errors.New("ecp: engine does not support this group")
	ErrUnbound        = errors.New("ecp: group has no engine")
)

// Point is a foreign point in Jacobian coordinates.
type Point struct {
	X, Y, Z *big.Int
}

// NewPoint allocates the point at infinity.
func NewPoint() *Point {
	return &Point{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
}

// IsInfinity reports whether Z is zero.
func (p *Point) IsInfinity() bool {
	return p.Z.Sign() == 0
}

// SetInfinity sets p to the normalised point at infinity.
func (p *Point) SetInfinity() *Point {
	p.X.SetInt64(0)
	p.Y.SetInt64(0)
	p.Z.SetInt64(0)
	return p
}

// SetAffine sets p to the finite point (x, y).
func (p *Point) SetAffine(x, y *big.Int) *Point {
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.SetInt64(1)
	return p
}

// Set copies q into p.
func (p *Point) Set(q *Point) *Point {
	p.X.Set(q.X)
	p.Y.Set(q.Y)
	p.Z.Set(q.Z)
	return p
}

// Free wipes the coordinates.
func (p *Point) Free() {
	if p == nil {
		return
	}
	Wipe(p.X)
	Wipe(p.Y)
	Wipe(p.Z)
}

// Wipe overwrites the limbs of x and sets it to zero.
func Wipe(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
}

// Group describes a short Weierstrass curve y^2 = x^3 + Ax + B over GF(P)
// with base point G of order N and cofactor H.
type Group struct {
	P     *big.Int
	A     *big.Int
	B     *big.Int
	N     *big.Int
	G     Point
	PBits int
	NBits int
	H     int

	engine Engine
}

// NewGroup allocates an empty group descriptor.
func NewGroup() *Group {
	return &Group{
		P: new(big.Int),
		A: new(big.Int),
		B: new(big.Int),
		N: new(big.Int),
		G: *NewPoint(),
	}
}

// GroupFromParams builds a group from crypto/elliptic style parameters
// with the given A coefficient and cofactor 1.
func GroupFromParams(params *elliptic.CurveParams, a *big.Int) *Group {
	g := NewGroup()
	g.P.Set(params.P)
	g.A.Mod(a, params.P)
	g.B.Set(params.B)
	g.N.Set(params.N)
	g.G.SetAffine(params.Gx, params.Gy)
	g.PBits = params.P.BitLen()
	g.NBits = params.N.BitLen()
	g.H = 1
	return g
}

// Bind attaches the engine registered under name. When that engine is not
// linked in or rejects the group, the generic engine is used. It returns the
// name of the engine actually bound.
func (g *Group) Bind(name string) string {
	e := Lookup(name)
	if e == nil || !e.Supports(g) {
		e = Generic{}
	}
	g.engine = e
	return e.Name()
}

// Engine returns the bound engine, or nil before Bind.
func (g *Group) Engine() Engine {
	return g.engine
}

// MulAdd sets r = [m]p + [n]q. Inputs must be finite affine points (Z == 1)
// or the point at infinity.
func (g *Group) MulAdd(r *Point, m *big.Int, p *Point, n *big.Int, q *Point) error {
	if g.engine == nil {
		return ErrUnbound
	}
	if m.Sign() < 0 || n.Sign() < 0 {
		return ErrNegativeScalar
	}
	return g.engine.MulAdd(g, r, m, p, n, q)
}

// IsOnCurve reports whether the affine point p satisfies the curve equation.
// The point at infinity is considered on the curve.
func (g *Group) IsOnCurve(p *Point) bool {
	if p.IsInfinity() {
		return true
	}
	if p.X.Sign() < 0 || p.X.Cmp(g.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(g.P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, g.P)
	return g.polynomial(p.X).Cmp(y2) == 0
}

// polynomial returns x^3 + Ax + B mod P.
func (g *Group) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, g.A)
	x3.Mul(x3, x)
	x3.Add(x3, g.B)
	return x3.Mod(x3, g.P)
}

// Free releases the group's values. The descriptor must not be used again
// until it is repopulated.
func (g *Group) Free() {
	if g == nil {
		return
	}
	Wipe(g.P)
	Wipe(g.A)
	Wipe(g.B)
	Wipe(g.N)
	g.G.Free()
	g.PBits, g.NBits, g.H = 0, 0, 0
	g.engine = nil
}
