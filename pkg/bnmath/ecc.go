//go:build !bnbridge_noecc

package bnmath

import (
	"math/big"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// AlgECC reports whether the curve operations are built in.
const AlgECC = true

// CurveInitialize builds the foreign group for id. It returns nil for an
// unknown curve.
func CurveInitialize(id curves.ID) *Curve {
	return Default().CurveInitialize(id)
}

// EccModMult sets r = [d]S. A nil s selects the base point. It fails with
// ErrPointAtInfinity when the product is the point at infinity.
func EccModMult(r, s *bignum.Point, d *bignum.Num, e *Curve) error {
	return Default().EccModMult(r, s, d, e)
}

// EccModMult2 sets r = [d]S + [u]Q. A nil s, or s equal to the base point,
// selects the base point.
func EccModMult2(r, s *bignum.Point, d *bignum.Num, q *bignum.Point, u *bignum.Num, e *Curve) error {
	return Default().EccModMult2(r, s, d, q, u, e)
}

// EccAdd sets r = S + Q.
func EccAdd(r, s, q *bignum.Point, e *Curve) error {
	return Default().EccAdd(r, s, q, e)
}

func (b *Bridge) CurveInitialize(id curves.ID) *Curve {
	const op = "CurveInitialize"
	data := curves.Lookup(id)
	if data == nil {
		b.metrics.Observe(op, ErrNilOperand)
		b.log.WithFields(log.Fields{"op": op, "curve": uint16(id)}).Debug("unknown curve")
		return nil
	}
	if data.Prime == nil || data.A == nil || data.B == nil || data.Order == nil ||
		data.Base == nil || data.Base.X == nil || data.Base.Y == nil || data.Cofactor == nil {
		b.fatal(op, FatalParameter, errors.Errorf("curve %s has missing constants", data))
	}

	g := ecp.NewGroup()
	for _, c := range []struct {
		dst *big.Int
		src *bignum.Num
	}{
		{g.P, data.Prime},
		{g.A, data.A},
		{g.B, data.B},
		{g.N, data.Order},
		{g.G.X, data.Base.X},
		{g.G.Y, data.Base.Y},
	} {
		// cannot fail: operands were checked above
		_ = setForeign(c.dst, c.src)
	}
	g.G.Z.SetInt64(1)
	g.PBits = g.P.BitLen()
	g.NBits = g.N.BitLen()
	if w := data.Cofactor.Words(); len(w) > 0 {
		g.H = int(w[0])
	}

	engine := g.Bind(data.Engine)
	if g.Engine() == nil {
		g.Free()
		b.fatal(op, FatalAllocation, errors.Errorf("no engine for curve %s", data))
	}
	if engine != data.Engine {
		b.log.WithFields(log.Fields{"curve": data.Name, "wanted": data.Engine, "engine": engine}).
			Debug("engine not available, using fallback")
	}
	b.metrics.Observe(op, nil)
	return &Curve{id: id, data: data, group: g}
}

// check raises a fatal parameter error for a freed or missing curve.
func (b *Bridge) check(op string, e *Curve) {
	if e == nil || e.group == nil {
		b.fatal(op, FatalParameter, errors.New("curve is not initialized"))
	}
}

func (b *Bridge) EccModMult(r, s *bignum.Point, d *bignum.Num, e *Curve) error {
	const op = "EccModMult"
	b.check(op, e)
	return b.run(op, func(sc *scope) error {
		k, err := sc.export(d)
		if err != nil {
			return err
		}
		base, err := e.point(sc, s)
		if err != nil {
			return err
		}
		return e.mulAdd(sc, r, k, base, new(big.Int), &e.group.G)
	})
}

func (b *Bridge) EccModMult2(r, s *bignum.Point, d *bignum.Num, q *bignum.Point, u *bignum.Num, e *Curve) error {
	const op = "EccModMult2"
	b.check(op, e)
	return b.run(op, func(sc *scope) error {
		k1, err := sc.export(d)
		if err != nil {
			return err
		}
		k2, err := sc.export(u)
		if err != nil {
			return err
		}
		p1, err := e.point(sc, s)
		if err != nil {
			return err
		}
		if q == nil {
			return ErrNilOperand
		}
		p2 := sc.point()
		if err := pointToForeign(p2, q); err != nil {
			return err
		}
		return e.mulAdd(sc, r, k1, p1, k2, p2)
	})
}

func (b *Bridge) EccAdd(r, s, q *bignum.Point, e *Curve) error {
	const op = "EccAdd"
	b.check(op, e)
	return b.run(op, func(sc *scope) error {
		if s == nil || q == nil {
			return ErrNilOperand
		}
		p1 := sc.point()
		if err := pointToForeign(p1, s); err != nil {
			return err
		}
		p2 := sc.point()
		if err := pointToForeign(p2, q); err != nil {
			return err
		}
		one := big.NewInt(1)
		return e.mulAdd(sc, r, one, p1, one, p2)
	})
}

// point returns the foreign form of p, substituting the group's own base
// point when p is nil or equal to it.
func (e *Curve) point(sc *scope, p *bignum.Point) (*ecp.Point, error) {
	if e.isBase(p) {
		return &e.group.G, nil
	}
	fp := sc.point()
	if err := pointToForeign(fp, p); err != nil {
		return nil, err
	}
	return fp, nil
}

func (e *Curve) mulAdd(sc *scope, r *bignum.Point, m *big.Int, p *ecp.Point, n *big.Int, q *ecp.Point) error {
	out := sc.point()
	if err := e.group.MulAdd(out, m, p, n, q); err != nil {
		if r != nil {
			r.SetInfinity()
		}
		return foreign(err)
	}
	return pointFromForeign(r, out)
}
