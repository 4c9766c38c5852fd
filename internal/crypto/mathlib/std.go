package mathlib

import "math/big"

var one = big.NewInt(1)

// Std implements Library with math/big.
type Std struct{}

func (Std) Name() string { return "math/big" }

func (Std) Mul(z, x, y *big.Int) error {
	z.Mul(x, y)
	return nil
}

func (Std) DivMod(q, r, x, y *big.Int) error {
	if y.Sign() == 0 {
		return ErrDivideByZero
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return ErrNegative
	}
	q.DivMod(x, y, r)
	return nil
}

func (Std) Mod(r, x, y *big.Int) error {
	if y.Sign() == 0 {
		return ErrDivideByZero
	}
	if y.Sign() < 0 {
		return ErrNegative
	}
	r.Mod(x, y)
	return nil
}

func (Std) GCD(z, x, y *big.Int) error {
	if x.Sign() < 0 || y.Sign() < 0 {
		return ErrNegative
	}
	z.GCD(nil, nil, x, y)
	return nil
}

// ExpMod sets z = x**e mod m. A modulus of one yields zero.
func (Std) ExpMod(z, x, e, m *big.Int) error {
	if m.Sign() <= 0 {
		return ErrInvalidModulus
	}
	if e.Sign() < 0 {
		return ErrNegative
	}
	z.Exp(x, e, m)
	return nil
}

func (Std) InvMod(z, x, m *big.Int) error {
	if m.Cmp(one) <= 0 {
		return ErrInvalidModulus
	}
	if z.ModInverse(x, m) == nil {
		return ErrNoInverse
	}
	return nil
}
