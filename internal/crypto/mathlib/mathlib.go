// Package mathlib is the capability set the bridge uses for multi-precision
// arithmetic. Each supported foreign library provides one Library; the
// bridge only ever calls through this interface.
package mathlib

import (
	"errors"
	"math/big"
)

var (
	ErrDivideByZero   = errors.New("mathlib: division by zero")
	ErrInvalidModulus = errors.New("mathlib: modulus must be greater than one")
	ErrNoInverse      = errors.New("mathlib: value has no inverse")
	ErrNegative       = errors.New("mathlib: negative operand")
)

// Library is one foreign multi-precision implementation. Operands are never
// modified; results are written into the z, q or r arguments.
type Library interface {
	// Name identifies the library in logs and metrics.
	Name() string
	// Mul sets z = x * y.
	Mul(z, x, y *big.Int) error
	// DivMod sets q = x / y and r = x mod y with 0 <= r < y.
	DivMod(q, r, x, y *big.Int) error
	// Mod sets r = x mod y with 0 <= r < y.
	Mod(r, x, y *big.Int) error
	// GCD sets z = gcd(x, y). gcd(x, 0) is x.
	GCD(z, x, y *big.Int) error
	// ExpMod sets z = x^e mod m.
	ExpMod(z, x, e, m *big.Int) error
	// InvMod sets z = x^-1 mod m.
	InvMod(z, x, m *big.Int) error
}

// Default returns the library linked into this build.
func Default() Library {
	return Std{}
}
