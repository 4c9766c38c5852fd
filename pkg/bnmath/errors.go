package bnmath

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/mathlib"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// Recoverable failures. Callers treat any of them as "no usable result".
var (
	ErrCapacity        = bignum.ErrCapacity
	ErrNoInverse       = errors.New("bnmath: value has no modular inverse")
	ErrPointAtInfinity = errors.New("bnmath: result is the point at infinity")
	ErrForeign         = errors.New("bnmath: foreign library failure")
	ErrNilOperand      = errors.New("bnmath: missing operand")
	ErrNegative        = errors.New("bnmath: negative value has no unsigned form")
	ErrInvalidModulus  = errors.New("bnmath: invalid modulus")
	ErrIncompatible    = errors.New("bnmath: word layout differs from the foreign library")
	ErrDisabled        = errors.New("bnmath: algorithm not built in")
)

// FatalCode classifies a contract violation.
type FatalCode int

const (
	FatalDivideByZero FatalCode = iota + 1
	FatalParameter
	FatalAllocation
)

func (c FatalCode) String() string {
	switch c {
	case FatalDivideByZero:
		return "divide by zero"
	case FatalParameter:
		return "invalid parameter"
	case FatalAllocation:
		return "allocation failure"
	default:
		return fmt.Sprintf("fatal(%d)", int(c))
	}
}

// FatalError is the panic value of a contract violation. The operation that
// raised it produced no result and must not be retried with the same inputs.
type FatalError struct {
	Code FatalCode
	Op   string
	Err  error
}

func (f *FatalError) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("bnmath: %s: %s: %v", f.Op, f.Code, f.Err)
	}
	return fmt.Sprintf("bnmath: %s: %s", f.Op, f.Code)
}

func (f *FatalError) Unwrap() error {
	return f.Err
}

// RecoverFatal turns a FatalError panic into an error. Use it deferred:
//
//	defer bnmath.RecoverFatal(&err)
//
// Any other panic value is re-raised.
func RecoverFatal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	fe, ok := r.(*FatalError)
	if !ok {
		panic(r)
	}
	if err != nil {
		*err = fe
	}
}

// IsFatal reports whether err is or wraps a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// foreign maps an error from a capability set or engine onto the bridge's
// sentinels.
func foreign(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mathlib.ErrNoInverse):
		return errors.Wrap(ErrNoInverse, err.Error())
	case errors.Is(err, mathlib.ErrInvalidModulus), errors.Is(err, mathlib.ErrDivideByZero):
		return errors.Wrap(ErrInvalidModulus, err.Error())
	case errors.Is(err, mathlib.ErrNegative):
		return errors.Wrap(ErrNegative, err.Error())
	default:
		return errors.Wrap(ErrForeign, err.Error())
	}
}
