package bnmath

import (
	"math/big"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
)

// scope owns the foreign values created during one call.
type scope struct {
	ints   []*big.Int
	points []*ecp.Point
}

func newScope() *scope {
	return &scope{}
}

// int returns a new zero value owned by the scope.
func (s *scope) int() *big.Int {
	x := new(big.Int)
	s.ints = append(s.ints, x)
	return x
}

// point returns a new point at infinity owned by the scope.
func (s *scope) point() *ecp.Point {
	p := ecp.NewPoint()
	s.points = append(s.points, p)
	return p
}

// release wipes everything the scope handed out.
func (s *scope) release() {
	for _, x := range s.ints {
		ecp.Wipe(x)
	}
	for _, p := range s.points {
		p.Free()
	}
	s.ints, s.points = nil, nil
}
