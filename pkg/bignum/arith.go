package bignum

import "math/bits"

// Add sets result = a + b. The sum must fit in result.
func Add(result, a, b *Num) error {
	if a.size < b.size {
		a, b = b, a
	}
	if a.size > len(result.d) {
		return ErrCapacity
	}
	var carry Word
	for i := 0; i < a.size; i++ {
		var y Word
		if i < b.size {
			y = b.d[i]
		}
		s, c := bits.Add(uint(a.d[i]), uint(y), uint(carry))
		result.d[i] = Word(s)
		carry = Word(c)
	}
	top := a.size
	if carry != 0 {
		if top == len(result.d) {
			return ErrCapacity
		}
		result.d[top] = carry
		top++
	}
	for i := top; i < len(result.d); i++ {
		result.d[i] = 0
	}
	result.SetTop(top)
	return nil
}

// Sub sets result = a - b. It requires a >= b.
func Sub(result, a, b *Num) error {
	if Cmp(a, b) < 0 {
		return ErrInvalid
	}
	if a.size > len(result.d) {
		return ErrCapacity
	}
	var borrow Word
	for i := 0; i < a.size; i++ {
		var y Word
		if i < b.size {
			y = b.d[i]
		}
		d, c := bits.Sub(uint(a.d[i]), uint(y), uint(borrow))
		result.d[i] = Word(d)
		borrow = Word(c)
	}
	top := a.size
	for i := top; i < len(result.d); i++ {
		result.d[i] = 0
	}
	result.SetTop(top)
	return nil
}

// AddWord sets result = a + w.
func AddWord(result, a *Num, w Word) error {
	return Add(result, a, FromWord(w))
}

// SubWord sets result = a - w. It requires a >= w.
func SubWord(result, a *Num, w Word) error {
	return Sub(result, a, FromWord(w))
}
