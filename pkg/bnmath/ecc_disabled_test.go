//go:build bnbridge_noecc

package bnmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

func TestECCPathDisabled(t *testing.T) {
	assert.False(t, AlgECC)

	for _, d := range curves.All() {
		assert.Nil(t, CurveInitialize(d.ID), d.Name)
	}

	r := bignum.NewPoint(256)
	assert.ErrorIs(t, EccModMult(r, nil, bignum.FromWord(2), nil), ErrDisabled)
	assert.ErrorIs(t, EccModMult2(r, nil, bignum.FromWord(2), nil, bignum.FromWord(3), nil), ErrDisabled)
	assert.ErrorIs(t, EccAdd(r, nil, nil, nil), ErrDisabled)
}

func TestFreeNilCurveWithoutECC(t *testing.T) {
	assert.NotPanics(t, func() { CurveFree(nil) })
}
