//go:build bnbridge_noecc

package bnmath

import (
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

const AlgECC = false

func CurveInitialize(id curves.ID) *Curve {
	return Default().CurveInitialize(id)
}

func EccModMult(r, s *bignum.Point, d *bignum.Num, e *Curve) error {
	return Default().EccModMult(r, s, d, e)
}

func EccModMult2(r, s *bignum.Point, d *bignum.Num, q *bignum.Point, u *bignum.Num, e *Curve) error {
	return Default().EccModMult2(r, s, d, q, u, e)
}

func EccAdd(r, s, q *bignum.Point, e *Curve) error {
	return Default().EccAdd(r, s, q, e)
}

// CurveInitialize always returns nil: no curve is available.
func (b *Bridge) CurveInitialize(curves.ID) *Curve {
	b.metrics.Observe("CurveInitialize", ErrDisabled)
	return nil
}

func (b *Bridge) EccModMult(*bignum.Point, *bignum.Point, *bignum.Num, *Curve) error {
	return b.run("EccModMult", disabled)
}

func (b *Bridge) EccModMult2(*bignum.Point, *bignum.Point, *bignum.Num, *bignum.Point, *bignum.Num, *Curve) error {
	return b.run("EccModMult2", disabled)
}

func (b *Bridge) EccAdd(*bignum.Point, *bignum.Point, *bignum.Point, *Curve) error {
	return b.run("EccAdd", disabled)
}
