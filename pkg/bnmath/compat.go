package bnmath

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// compatVector is 1F 1E ... 01 00. Every byte differs, so a mismatch in
// word size or ordering changes at least one word.
func compatVector() []byte {
	v := make([]byte, 32)
	for i := range v {
		v[i] = byte(len(v) - 1 - i)
	}
	return v
}

// LibraryCompatibilityCheck verifies that a bignum and a foreign value
// built from the same bytes have identical limb arrays.
func LibraryCompatibilityCheck() error {
	return Default().LibraryCompatibilityCheck()
}

func (b *Bridge) LibraryCompatibilityCheck() error {
	return b.run("LibraryCompatibilityCheck", func(s *scope) error {
		v := compatVector()
		n := bignum.FromBytes(v)
		x := s.int().SetBytes(v)
		return sameLimbs(n.Words(), x.Bits())
	})
}

func sameLimbs(words []bignum.Word, limbs []big.Word) error {
	if len(words) != len(limbs) {
		return errors.Wrapf(ErrIncompatible, "word count %d, foreign %d", len(words), len(limbs))
	}
	for i := range words {
		if words[i] != limbs[i] {
			return errors.Wrapf(ErrIncompatible, "word %d is %#x, foreign %#x", i, words[i], limbs[i])
		}
	}
	return nil
}
