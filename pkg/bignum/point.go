package bignum

// Point is a curve point in the projective-marker form used by the calling
// module: Z == 1 is a finite affine point, Z == 0 is the point at infinity.
type Point struct {
	X *Num
	Y *Num
	Z *Num
}

// NewPoint allocates a point whose coordinates hold nbits bits each. The
// point starts as the point at infinity.
func NewPoint(nbits int) *Point {
	return &Point{
		X: New(nbits),
		Y: New(nbits),
		Z: NewWords(1),
	}
}

// NewAffine builds a finite point from x and y. The coordinates are shared,
// not copied.
func NewAffine(x, y *Num) *Point {
	return &Point{X: x, Y: y, Z: FromWord(1)}
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.Z.IsZero()
}

// IsFinite reports whether p carries the finite marker Z == 1.
func (p *Point) IsFinite() bool {
	return p.Z.IsWord(1)
}

// SetInfinity clears p to the point at infinity.
func (p *Point) SetInfinity() *Point {
	p.X.SetZero()
	p.Y.SetZero()
	p.Z.SetZero()
	return p
}

// Copy sets p to q.
func (p *Point) Copy(q *Point) error {
	if err := p.X.Copy(q.X); err != nil {
		return err
	}
	if err := p.Y.Copy(q.Y); err != nil {
		return err
	}
	return p.Z.Copy(q.Z)
}

// PointEqual reports whether two points are the same. All infinity
// encodings compare equal.
func PointEqual(p, q *Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return Equal(p.X, q.X) && Equal(p.Y, q.Y) && Equal(p.Z, q.Z)
}
