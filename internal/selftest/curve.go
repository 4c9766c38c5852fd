package selftest

import (
	"context"
	"math/big"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

// curve checks the group law on d through the bridge and compares random
// double-scalar products with the generic engine.
func (r *Runner) curve(ctx context.Context, rng *rand.Rand, d *curves.Data, iterations int) (int, error) {
	c := r.bridge.CurveInitialize(d.ID)
	if c == nil {
		return 0, errors.Errorf("curve %s did not initialize", d)
	}
	defer c.Free()

	g := c.BasePoint()
	res := c.NewPoint()

	if err := r.bridge.EccModMult(res, g, c.Order(), c); !errors.Is(err, bnmath.ErrPointAtInfinity) {
		return 0, errors.Errorf("[n]G is not the point at infinity (err %v)", err)
	}
	if err := r.bridge.EccAdd(res, g, c.NewPoint(), c); err != nil {
		return 0, errors.Wrap(err, "G + infinity")
	}
	if !bignum.PointEqual(res, g) {
		return 0, errors.Wrap(errMismatch, "G + infinity is not G")
	}

	reference := referenceGroup(d)
	defer reference.Free()
	order := toBig(d.Order.Bytes())
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := r.curveVector(rng, c, reference, order); err != nil {
			return i + 1, errors.Wrapf(err, "vector %d", i)
		}
	}
	return iterations, nil
}

func (r *Runner) curveVector(rng *rand.Rand, c *bnmath.Curve, reference *ecp.Group, order *big.Int) error {
	nbits := c.Data().KeySizeBits
	m, n, k := scalar(rng, order), scalar(rng, order), scalar(rng, order)

	p, q := c.NewPoint(), c.NewPoint()
	if err := r.bridge.EccModMult(p, nil, fromBig(k, nbits), c); err != nil {
		return errors.Wrap(err, "[k]G")
	}
	if err := r.bridge.EccModMult(q, nil, fromBig(m, nbits), c); err != nil {
		return errors.Wrap(err, "[m]G")
	}

	// MulAdd(1, P, 1, Q) agrees with Add(P, Q)
	sum, combined := c.NewPoint(), c.NewPoint()
	errSum := r.bridge.EccAdd(sum, p, q, c)
	errCombined := r.bridge.EccModMult2(combined, p, bignum.FromWord(1), q, bignum.FromWord(1), c)
	if (errSum == nil) != (errCombined == nil) || !bignum.PointEqual(sum, combined) {
		return errors.Wrap(errMismatch, "MulAdd(1, P, 1, Q) and Add(P, Q)")
	}

	// [m]G + [n]P against the generic engine
	got := c.NewPoint()
	err := r.bridge.EccModMult2(got, nil, fromBig(m, nbits), p, fromBig(n, nbits), c)

	want := ecp.NewPoint()
	defer want.Free()
	fp := ecp.NewPoint().SetAffine(toBig(p.X.Bytes()), toBig(p.Y.Bytes()))
	defer fp.Free()
	if rerr := reference.MulAdd(want, m, &reference.G, n, fp); rerr != nil {
		return errors.Wrap(rerr, "generic engine")
	}
	if want.IsInfinity() {
		if !errors.Is(err, bnmath.ErrPointAtInfinity) {
			return errors.Wrap(errMismatch, "expected the point at infinity")
		}
		return nil
	}
	if err != nil {
		return err
	}
	if toBig(got.X.Bytes()).Cmp(want.X) != 0 || toBig(got.Y.Bytes()).Cmp(want.Y) != 0 {
		return errors.Wrapf(errMismatch, "engine %s and generic disagree", c.Engine())
	}
	return nil
}

// referenceGroup builds d on the generic engine directly.
func referenceGroup(d *curves.Data) *ecp.Group {
	g := ecp.NewGroup()
	g.P.Set(toBig(d.Prime.Bytes()))
	g.A.Set(toBig(d.A.Bytes()))
	g.B.Set(toBig(d.B.Bytes()))
	g.N.Set(toBig(d.Order.Bytes()))
	g.G.SetAffine(toBig(d.Base.X.Bytes()), toBig(d.Base.Y.Bytes()))
	g.PBits, g.NBits, g.H = g.P.BitLen(), g.N.BitLen(), 1
	g.Bind(curves.EngineGeneric)
	return g
}

// scalar returns a uniform value in [1, order).
func scalar(rng *rand.Rand, order *big.Int) *big.Int {
	k := new(big.Int).Rand(rng, new(big.Int).Sub(order, big.NewInt(1)))
	return k.Add(k, big.NewInt(1))
}
