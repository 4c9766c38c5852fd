package bnmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

func TestNilCurveAccessors(t *testing.T) {
	var c *Curve
	assert.NotPanics(t, func() {
		assert.Zero(t, c.ID())
		assert.Nil(t, c.Data())
		assert.Nil(t, c.BasePoint())
		assert.Nil(t, c.Order())
		assert.Nil(t, c.Prime())
		assert.Nil(t, c.NewPoint())
		assert.Empty(t, c.Engine())
		assert.False(t, c.IsOnCurve(bignum.NewPoint(256)))
		c.Free()
		CurveFree(c)
	})
}
