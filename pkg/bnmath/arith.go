package bnmath

import (
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// ModMult sets result = op1 * op2 mod modulus.
func ModMult(result, op1, op2, modulus *bignum.Num) error {
	return Default().ModMult(result, op1, op2, modulus)
}

// Mult sets result = multiplicand * multiplier.
func Mult(result, multiplicand, multiplier *bignum.Num) error {
	return Default().Mult(result, multiplicand, multiplier)
}

// Div sets quotient = dividend / divisor and remainder = dividend mod
// divisor. Either output may be nil to discard it. A zero divisor panics
// with a FatalError.
func Div(quotient, remainder, dividend, divisor *bignum.Num) error {
	return Default().Div(quotient, remainder, dividend, divisor)
}

func (b *Bridge) ModMult(result, op1, op2, modulus *bignum.Num) error {
	return b.run("ModMult", func(s *scope) error {
		x, err := s.export(op1)
		if err != nil {
			return err
		}
		y, err := s.export(op2)
		if err != nil {
			return err
		}
		m, err := s.export(modulus)
		if err != nil {
			return err
		}
		product := s.int()
		if err := b.lib.Mul(product, x, y); err != nil {
			return foreign(err)
		}
		r := s.int()
		if err := b.lib.Mod(r, product, m); err != nil {
			return foreign(err)
		}
		return setBignum(result, r)
	})
}

func (b *Bridge) Mult(result, multiplicand, multiplier *bignum.Num) error {
	return b.run("Mult", func(s *scope) error {
		x, err := s.export(multiplicand)
		if err != nil {
			return err
		}
		y, err := s.export(multiplier)
		if err != nil {
			return err
		}
		z := s.int()
		if err := b.lib.Mul(z, x, y); err != nil {
			return foreign(err)
		}
		return setBignum(result, z)
	})
}

func (b *Bridge) Div(quotient, remainder, dividend, divisor *bignum.Num) error {
	if divisor == nil {
		b.fatal("Div", FatalParameter, ErrNilOperand)
	}
	if divisor.IsZero() {
		b.fatal("Div", FatalDivideByZero, nil)
	}
	return b.run("Div", func(s *scope) error {
		x, err := s.export(dividend)
		if err != nil {
			return err
		}
		y, err := s.export(divisor)
		if err != nil {
			return err
		}
		r := s.int()
		if quotient == nil {
			if err := b.lib.Mod(r, x, y); err != nil {
				return foreign(err)
			}
			return setBignum(remainder, r)
		}
		q := s.int()
		if err := b.lib.DivMod(q, r, x, y); err != nil {
			return foreign(err)
		}
		if err := setBignum(quotient, q); err != nil {
			return err
		}
		return setBignum(remainder, r)
	})
}
