// Package bnmath lets code written against the fixed-capacity bignum and
// projective point types do its arithmetic in a foreign multi-precision and
// elliptic-curve library. Every call exports its inputs into scratch foreign
// values, makes one foreign call, imports the results into caller storage
// and wipes the scratch values before returning.
package bnmath

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/mathlib"
	"github.com/smallyu/go-tpm-bnbridge/internal/telemetry"
)

// Bridge binds a capability set to a logger and optional metrics.
type Bridge struct {
	lib     mathlib.Library
	log     *log.Entry
	metrics *telemetry.Metrics
}

type Option func(*Bridge)

// WithLibrary replaces the multi-precision capability set.
func WithLibrary(lib mathlib.Library) Option {
	return func(b *Bridge) {
		b.lib = lib
	}
}

// WithLogger sets the entry failures are logged to.
func WithLogger(entry *log.Entry) Option {
	return func(b *Bridge) {
		b.log = entry
	}
}

// WithMetrics counts every operation in m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

func New(opts ...Option) *Bridge {
	b := &Bridge{
		lib: mathlib.Default(),
		log: log.WithField("module", "bnmath"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Library returns the capability set in use.
func (b *Bridge) Library() mathlib.Library {
	return b.lib
}

var std atomic.Pointer[Bridge]

func init() {
	std.Store(New())
}

// Default returns the bridge used by the package-level functions.
func Default() *Bridge {
	return std.Load()
}

// SetDefault replaces the bridge used by the package-level functions.
func SetDefault(b *Bridge) {
	if b == nil {
		b = New()
	}
	std.Store(b)
}

// run executes one operation with its own scratch scope.
func (b *Bridge) run(op string, fn func(s *scope) error) error {
	s := newScope()
	defer s.release()

	err := fn(s)
	b.metrics.Observe(op, err)
	if err != nil {
		b.log.WithFields(log.Fields{"op": op, "error": err}).Debug("operation failed")
	}
	return err
}

// fatal logs and raises a contract violation.
func (b *Bridge) fatal(op string, code FatalCode, err error) {
	b.metrics.ObserveFatal(op)
	fe := &FatalError{Code: code, Op: op, Err: err}
	b.log.WithFields(log.Fields{"op": op, "code": code.String()}).Error(fe.Error())
	panic(fe)
}
