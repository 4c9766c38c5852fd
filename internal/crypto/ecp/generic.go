package ecp

// Generic works on any short Weierstrass group using math/big. For a point
// (x, y) the Jacobian coordinates are (X, Y, Z) with x = X/Z² and y = Y/Z³.

import "math/big"

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
)

// Generic is the fallback engine. It is always available.
type Generic struct{}

func (Generic) Name() string { return "generic" }

func (Generic) Supports(g *Group) bool {
	return g.P.Sign() > 0 && g.N.Sign() > 0
}

// MulAdd uses Shamir's trick: one shared doubling chain over the bits of
// both scalars with P, Q and P+Q as the addends.
func (e Generic) MulAdd(g *Group, r *Point, m *big.Int, p *Point, n *big.Int, q *Point) error {
	pq := e.add(g, p, q)

	acc := NewPoint()
	bitLen := m.BitLen()
	if n.BitLen() > bitLen {
		bitLen = n.BitLen()
	}
	for i := bitLen - 1; i >= 0; i-- {
		acc = e.double(g, acc)
		switch {
		case m.Bit(i) == 1 && n.Bit(i) == 1:
			acc = e.add(g, acc, pq)
		case m.Bit(i) == 1:
			acc = e.add(g, acc, p)
		case n.Bit(i) == 1:
			acc = e.add(g, acc, q)
		}
	}
	Normalize(g, acc)
	r.Set(acc)
	acc.Free()
	pq.Free()
	return nil
}

// add returns a + b in Jacobian coordinates.
// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-add-2007-bl
func (e Generic) add(g *Group, a, b *Point) *Point {
	if a.IsInfinity() {
		return NewPoint().Set(b)
	}
	if b.IsInfinity() {
		return NewPoint().Set(a)
	}
	mod := g.P

	z1z1 := new(big.Int).Mul(a.Z, a.Z)
	z1z1.Mod(z1z1, mod)
	z2z2 := new(big.Int).Mul(b.Z, b.Z)
	z2z2.Mod(z2z2, mod)

	u1 := new(big.Int).Mul(a.X, z2z2)
	u1.Mod(u1, mod)
	u2 := new(big.Int).Mul(b.X, z1z1)
	u2.Mod(u2, mod)

	s1 := new(big.Int).Mul(a.Y, b.Z)
	s1.Mul(s1, z2z2)
	s1.Mod(s1, mod)
	s2 := new(big.Int).Mul(b.Y, a.Z)
	s2.Mul(s2, z1z1)
	s2.Mod(s2, mod)

	h := new(big.Int).Sub(u2, u1)
	h.Mod(h, mod)
	rr := new(big.Int).Sub(s2, s1)
	rr.Mod(rr, mod)

	if h.Sign() == 0 {
		if rr.Sign() == 0 {
			return e.double(g, a)
		}
		return NewPoint()
	}

	i := new(big.Int).Lsh(h, 1)
	i.Mul(i, i)
	i.Mod(i, mod)
	j := new(big.Int).Mul(h, i)
	j.Mod(j, mod)
	rr.Lsh(rr, 1)
	v := new(big.Int).Mul(u1, i)
	v.Mod(v, mod)

	out := NewPoint()
	out.X.Mul(rr, rr)
	out.X.Sub(out.X, j)
	out.X.Sub(out.X, v)
	out.X.Sub(out.X, v)
	out.X.Mod(out.X, mod)

	out.Y.Sub(v, out.X)
	out.Y.Mul(out.Y, rr)
	s1.Mul(s1, j)
	s1.Lsh(s1, 1)
	out.Y.Sub(out.Y, s1)
	out.Y.Mod(out.Y, mod)

	out.Z.Add(a.Z, b.Z)
	out.Z.Mul(out.Z, out.Z)
	out.Z.Sub(out.Z, z1z1)
	out.Z.Sub(out.Z, z2z2)
	out.Z.Mul(out.Z, h)
	out.Z.Mod(out.Z, mod)
	return out
}

// double returns 2a in Jacobian coordinates.
// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
func (e Generic) double(g *Group, a *Point) *Point {
	if a.IsInfinity() || a.Y.Sign() == 0 {
		return NewPoint()
	}
	mod := g.P

	xx := new(big.Int).Mul(a.X, a.X)
	xx.Mod(xx, mod)
	yy := new(big.Int).Mul(a.Y, a.Y)
	yy.Mod(yy, mod)
	yyyy := new(big.Int).Mul(yy, yy)
	yyyy.Mod(yyyy, mod)
	zz := new(big.Int).Mul(a.Z, a.Z)
	zz.Mod(zz, mod)

	// S = 2*((X+YY)^2 - XX - YYYY)
	s := new(big.Int).Add(a.X, yy)
	s.Mul(s, s)
	s.Sub(s, xx)
	s.Sub(s, yyyy)
	s.Lsh(s, 1)
	s.Mod(s, mod)

	// M = 3*XX + A*ZZ^2
	m := new(big.Int).Mul(xx, three)
	if g.A.Sign() != 0 {
		azz := new(big.Int).Mul(zz, zz)
		azz.Mul(azz, g.A)
		m.Add(m, azz)
	}
	m.Mod(m, mod)

	out := NewPoint()
	out.X.Mul(m, m)
	out.X.Sub(out.X, s)
	out.X.Sub(out.X, s)
	out.X.Mod(out.X, mod)

	out.Y.Sub(s, out.X)
	out.Y.Mul(out.Y, m)
	yyyy.Lsh(yyyy, 3)
	out.Y.Sub(out.Y, yyyy)
	out.Y.Mod(out.Y, mod)

	out.Z.Add(a.Y, a.Z)
	out.Z.Mul(out.Z, out.Z)
	out.Z.Sub(out.Z, yy)
	out.Z.Sub(out.Z, zz)
	out.Z.Mod(out.Z, mod)
	return out
}
