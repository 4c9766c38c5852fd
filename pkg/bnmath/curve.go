package bnmath

import (
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// Curve is an initialized curve handle. It owns the foreign group
// descriptor until Free is called. Point operations only read the group,
// so one handle may serve concurrent callers.
type Curve struct {
	id    curves.ID
	data  *curves.Data
	group *ecp.Group
}

// CurveFree releases c. A nil c is ignored.
func CurveFree(c *Curve) {
	c.Free()
}

// Free releases the group descriptor. The handle is unusable afterwards.
func (c *Curve) Free() {
	if c == nil || c.group == nil {
		return
	}
	c.group.Free()
	c.group = nil
}

// ID returns the curve identifier, or 0 for a nil handle.
func (c *Curve) ID() curves.ID {
	if c == nil {
		return 0
	}
	return c.id
}

// Data returns the constant table entry the curve was built from.
func (c *Curve) Data() *curves.Data {
	if c == nil {
		return nil
	}
	return c.data
}

// BasePoint returns a copy of the curve's generator. The accessors below
// return nil for a nil handle, such as the result of a failed
// CurveInitialize.
func (c *Curve) BasePoint() *bignum.Point {
	if c == nil {
		return nil
	}
	return &bignum.Point{
		X: c.data.Base.X.Clone(),
		Y: c.data.Base.Y.Clone(),
		Z: c.data.Base.Z.Clone(),
	}
}

// Order returns a copy of the group order.
func (c *Curve) Order() *bignum.Num {
	if c == nil {
		return nil
	}
	return c.data.Order.Clone()
}

// Prime returns a copy of the field prime.
func (c *Curve) Prime() *bignum.Num {
	if c == nil {
		return nil
	}
	return c.data.Prime.Clone()
}

// Engine names the foreign engine bound to the group, or "" once freed.
func (c *Curve) Engine() string {
	if c == nil || c.group == nil || c.group.Engine() == nil {
		return ""
	}
	return c.group.Engine().Name()
}

// NewPoint allocates a point sized for coordinates of this curve.
func (c *Curve) NewPoint() *bignum.Point {
	if c == nil {
		return nil
	}
	return bignum.NewPoint(c.data.KeySizeBits)
}

// IsOnCurve reports whether p is the point at infinity or a finite point
// satisfying the curve equation.
func (c *Curve) IsOnCurve(p *bignum.Point) bool {
	if c == nil || c.group == nil || p == nil {
		return false
	}
	s := newScope()
	defer s.release()
	fp := s.point()
	if err := pointToForeign(fp, p); err != nil {
		return false
	}
	if !p.IsFinite() && !p.IsInfinity() {
		return false
	}
	return c.group.IsOnCurve(fp)
}

func (c *Curve) isBase(p *bignum.Point) bool {
	return p == nil || p == c.data.Base || bignum.PointEqual(p, c.data.Base)
}
