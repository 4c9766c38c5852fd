//go:build !bnbridge_norsa

package bnmath

import (
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// AlgRSA reports whether the RSA-only operations are built in.
const AlgRSA = true

// Gcd sets gcd = gcd(number1, number2).
func Gcd(gcd, number1, number2 *bignum.Num) error {
	return Default().Gcd(gcd, number1, number2)
}

// ModExp sets result = number^exponent mod modulus.
func ModExp(result, number, exponent, modulus *bignum.Num) error {
	return Default().ModExp(result, number, exponent, modulus)
}

// ModInverse sets result = number^-1 mod modulus. It fails with
// ErrNoInverse when number and modulus are not coprime.
func ModInverse(result, number, modulus *bignum.Num) error {
	return Default().ModInverse(result, number, modulus)
}

func (b *Bridge) Gcd(gcd, number1, number2 *bignum.Num) error {
	return b.run("Gcd", func(s *scope) error {
		x, err := s.export(number1)
		if err != nil {
			return err
		}
		y, err := s.export(number2)
		if err != nil {
			return err
		}
		z := s.int()
		if err := b.lib.GCD(z, x, y); err != nil {
			return foreign(err)
		}
		return setBignum(gcd, z)
	})
}

func (b *Bridge) ModExp(result, number, exponent, modulus *bignum.Num) error {
	return b.run("ModExp", func(s *scope) error {
		x, err := s.export(number)
		if err != nil {
			return err
		}
		e, err := s.export(exponent)
		if err != nil {
			return err
		}
		m, err := s.export(modulus)
		if err != nil {
			return err
		}
		z := s.int()
		if err := b.lib.ExpMod(z, x, e, m); err != nil {
			return foreign(err)
		}
		return setBignum(result, z)
	})
}

func (b *Bridge) ModInverse(result, number, modulus *bignum.Num) error {
	return b.run("ModInverse", func(s *scope) error {
		x, err := s.export(number)
		if err != nil {
			return err
		}
		m, err := s.export(modulus)
		if err != nil {
			return err
		}
		z := s.int()
		if err := b.lib.InvMod(z, x, m); err != nil {
			return foreign(err)
		}
		return setBignum(result, z)
	})
}
