// Package bignum is the fixed-capacity multi-precision integer used by the
// calling cryptographic module. A Num is an array of native words in
// little-endian order together with the count of significant words ("top").
// Storage is owned by whoever created the Num; arithmetic back ends only write
// into it and never resize it.
package bignum

import (
	"encoding/hex"
	"errors"
	"math/big"
	"math/bits"
	"strings"
)

// Word is a single limb. It is the same type the foreign library uses so the
// limb arrays of both sides share width and ordering.
type Word = big.Word

const (
	// RadixBits is the native word width (32 or 64), fixed at build time by GOARCH.
	RadixBits = bits.UintSize
	// RadixBytes is the size of a Word in bytes.
	RadixBytes = RadixBits / 8
)

var (
	ErrCapacity = errors.New("bignum: value does not fit allocated words")
	ErrInvalid  = errors.New("bignum: invalid encoding")
)

// Num is a caller-owned unsigned integer of fixed capacity.
type Num struct {
	d    []Word
	size int
}

// WordsForBits returns the number of words needed for a value of the given bit length.
func WordsForBits(nbits int) int {
	return (nbits + RadixBits - 1) / RadixBits
}

// WordsForBytes returns the number of words needed for a value of the given byte length.
func WordsForBytes(nbytes int) int {
	return (nbytes + RadixBytes - 1) / RadixBytes
}

// New allocates a zero value able to hold nbits bits.
func New(nbits int) *Num {
	return NewWords(WordsForBits(nbits))
}

// NewWords allocates a zero value with n words of capacity.
func NewWords(n int) *Num {
	if n < 0 {
		n = 0
	}
	return &Num{d: make([]Word, n)}
}

// FromBytes allocates a value sized exactly for the big-endian bytes b.
func FromBytes(b []byte) *Num {
	n := NewWords(WordsForBytes(len(b)))
	// cannot fail: the allocation matches the input length
	_ = n.SetBytes(b)
	return n
}

// FromHex parses a big-endian hex string into a value sized to fit it.
func FromHex(s string) (*Num, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalid
	}
	return FromBytes(b), nil
}

// MustHex is FromHex for constant tables. It panics on malformed input.
func MustHex(s string) *Num {
	n, err := FromHex(s)
	if err != nil {
		panic("bignum: invalid hex constant: " + s)
	}
	return n
}

// FromWord allocates a one word value.
func FromWord(w Word) *Num {
	n := NewWords(1)
	n.SetWord(w)
	return n
}

// Allocated returns the capacity in words.
func (n *Num) Allocated() int {
	if n == nil {
		return 0
	}
	return len(n.d)
}

// Top returns the number of significant words.
func (n *Num) Top() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Limbs exposes the full allocated word array. Words at index Top() and
// above are not significant.
func (n *Num) Limbs() []Word {
	return n.d
}

// Words returns the significant words. The slice aliases the value.
func (n *Num) Words() []Word {
	return n.d[:n.size]
}

// SetTop sets the significant word count and drops leading zero words. It
// reports false if top exceeds the allocation.
func (n *Num) SetTop(top int) bool {
	if top < 0 || top > len(n.d) {
		return false
	}
	for top > 0 && n.d[top-1] == 0 {
		top--
	}
	n.size = top
	return true
}

// SetWord sets the value to a single word.
func (n *Num) SetWord(w Word) *Num {
	if len(n.d) == 0 {
		if w != 0 {
			panic("bignum: SetWord on zero capacity value")
		}
		n.size = 0
		return n
	}
	n.d[0] = w
	n.size = 1
	if w == 0 {
		n.size = 0
	}
	return n
}

// SetZero clears the value without releasing storage.
func (n *Num) SetZero() *Num {
	for i := range n.d {
		n.d[i] = 0
	}
	n.size = 0
	return n
}

// IsZero reports whether the value is zero.
func (n *Num) IsZero() bool {
	return n.Top() == 0
}

// IsWord reports whether the value equals the single word w.
func (n *Num) IsWord(w Word) bool {
	if w == 0 {
		return n.IsZero()
	}
	return n.size == 1 && n.d[0] == w
}

// BitLen returns the number of significant bits.
func (n *Num) BitLen() int {
	if n.IsZero() {
		return 0
	}
	return (n.size-1)*RadixBits + bits.Len(uint(n.d[n.size-1]))
}

// SetBytes loads big-endian bytes. Leading zero bytes are ignored.
func (n *Num) SetBytes(b []byte) error {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if WordsForBytes(len(b)) > len(n.d) {
		return ErrCapacity
	}
	for i := range n.d {
		n.d[i] = 0
	}
	for i := 0; i < len(b); i++ {
		n.d[i/RadixBytes] |= Word(b[len(b)-1-i]) << (8 * uint(i%RadixBytes))
	}
	n.SetTop(WordsForBytes(len(b)))
	return nil
}

// Bytes returns the minimal big-endian encoding. Zero encodes as an empty slice.
func (n *Num) Bytes() []byte {
	out := make([]byte, (n.BitLen()+7)/8)
	n.FillBytes(out)
	return out
}

// FillBytes writes the value big-endian into buf, zero padded on the left.
// It panics if buf is too short, like big.Int.FillBytes.
func (n *Num) FillBytes(buf []byte) []byte {
	if (n.BitLen()+7)/8 > len(buf) {
		panic("bignum: buffer too small")
	}
	for i := range buf {
		buf[i] = 0
	}
	for i := 0; i < n.size*RadixBytes && i < len(buf); i++ {
		buf[len(buf)-1-i] = byte(n.d[i/RadixBytes] >> (8 * uint(i%RadixBytes)))
	}
	return buf
}

// Text returns the value as lower case hex without leading zeros.
func (n *Num) Text() string {
	if n.IsZero() {
		return "0"
	}
	return strings.TrimLeft(hex.EncodeToString(n.Bytes()), "0")
}

func (n *Num) String() string {
	if n == nil {
		return "<nil>"
	}
	return "0x" + n.Text()
}

// Copy sets n to the value of x. It fails if x does not fit.
func (n *Num) Copy(x *Num) error {
	if n == x {
		return nil
	}
	if x.size > len(n.d) {
		return ErrCapacity
	}
	copy(n.d, x.d[:x.size])
	for i := x.size; i < len(n.d); i++ {
		n.d[i] = 0
	}
	n.size = x.size
	return nil
}

// Clone allocates a copy of n with the same capacity.
func (n *Num) Clone() *Num {
	c := NewWords(len(n.d))
	copy(c.d, n.d)
	c.size = n.size
	return c
}

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b *Num) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for i := a.size - 1; i >= 0; i-- {
		if a.d[i] != b.d[i] {
			if a.d[i] < b.d[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Num) bool {
	return Cmp(a, b) == 0
}
