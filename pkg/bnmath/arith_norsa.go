//go:build bnbridge_norsa

package bnmath

import (
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

const AlgRSA = false

func Gcd(gcd, number1, number2 *bignum.Num) error {
	return Default().Gcd(gcd, number1, number2)
}

func ModExp(result, number, exponent, modulus *bignum.Num) error {
	return Default().ModExp(result, number, exponent, modulus)
}

func ModInverse(result, number, modulus *bignum.Num) error {
	return Default().ModInverse(result, number, modulus)
}

func (b *Bridge) Gcd(_, _, _ *bignum.Num) error {
	return b.run("Gcd", disabled)
}

func (b *Bridge) ModExp(_, _, _, _ *bignum.Num) error {
	return b.run("ModExp", disabled)
}

func (b *Bridge) ModInverse(_, _, _ *bignum.Num) error {
	return b.run("ModInverse", disabled)
}
