package bnmath

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// BignumToForeign copies the significant words of src into a new foreign value.
func BignumToForeign(src *bignum.Num) (*big.Int, error) {
	return Default().BignumToForeign(src)
}

// ForeignToBignum copies src into dst. A nil dst discards the result.
func ForeignToBignum(dst *bignum.Num, src *big.Int) error {
	return Default().ForeignToBignum(dst, src)
}

func (b *Bridge) BignumToForeign(src *bignum.Num) (*big.Int, error) {
	x := new(big.Int)
	err := b.run("BignumToForeign", func(*scope) error {
		return setForeign(x, src)
	})
	if err != nil {
		return nil, err
	}
	return x, nil
}

func (b *Bridge) ForeignToBignum(dst *bignum.Num, src *big.Int) error {
	if src == nil {
		b.fatal("ForeignToBignum", FatalParameter, ErrNilOperand)
	}
	return b.run("ForeignToBignum", func(*scope) error {
		return setBignum(dst, src)
	})
}

// setForeign sets dst to the value of src. The limbs are copied, never shared.
func setForeign(dst *big.Int, src *bignum.Num) error {
	if src == nil {
		return ErrNilOperand
	}
	words := src.Words()
	limbs := make([]big.Word, len(words))
	copy(limbs, words)
	dst.SetBits(limbs)
	return nil
}

// export copies src into a new scratch value.
func (s *scope) export(src *bignum.Num) (*big.Int, error) {
	x := s.int()
	if err := setForeign(x, src); err != nil {
		return nil, err
	}
	return x, nil
}

// setBignum copies a non-negative foreign value into dst. Nothing is
// written when the value does not fit.
func setBignum(dst *bignum.Num, src *big.Int) error {
	if dst == nil {
		return nil
	}
	if src.Sign() < 0 {
		return ErrNegative
	}
	words := bignum.WordsForBytes((src.BitLen() + 7) / 8)
	if words > dst.Allocated() {
		return errors.Wrapf(ErrCapacity, "need %d words, have %d", words, dst.Allocated())
	}
	limbs := dst.Limbs()
	n := copy(limbs, src.Bits()[:words])
	for i := n; i < len(limbs); i++ {
		limbs[i] = 0
	}
	dst.SetTop(words)
	return nil
}

// pointToForeign copies the coordinates of src into dst. Z is only set up
// for a finite point; anything else stays the point at infinity.
func pointToForeign(dst *ecp.Point, src *bignum.Point) error {
	if src == nil || src.X == nil || src.Y == nil || src.Z == nil {
		return ErrNilOperand
	}
	dst.SetInfinity()
	if err := setForeign(dst.X, src.X); err != nil {
		return err
	}
	if err := setForeign(dst.Y, src.Y); err != nil {
		return err
	}
	if src.IsFinite() {
		dst.Z.SetInt64(1)
	}
	return nil
}

// pointFromForeign copies a finite foreign point into dst. A Z other than
// exactly 1 is reported as the point at infinity.
func pointFromForeign(dst *bignum.Point, src *ecp.Point) error {
	if src.Z.Cmp(big.NewInt(1)) != 0 {
		if dst != nil {
			dst.SetInfinity()
		}
		return ErrPointAtInfinity
	}
	if dst == nil {
		return nil
	}
	if dst.Z.Allocated() == 0 {
		return ErrCapacity
	}
	if err := setBignum(dst.X, src.X); err != nil {
		return err
	}
	if err := setBignum(dst.Y, src.Y); err != nil {
		return err
	}
	dst.Z.SetWord(1)
	return nil
}
