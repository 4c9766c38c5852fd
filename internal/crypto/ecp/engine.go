package ecp

import (
	"math/big"
	"sort"
	"sync"
)

// Engine is one foreign elliptic-curve implementation of the group primitive.
type Engine interface {
	// Name is the registry key of the engine.
	Name() string
	// Supports reports whether the engine can do arithmetic on g.
	Supports(g *Group) bool
	// MulAdd sets r = [m]p + [n]q and normalises r.
	MulAdd(g *Group, r *Point, m *big.Int, p *Point, n *big.Int, q *Point) error
}

var (
	mu      sync.RWMutex
	engines = map[string]Engine{}
)

// Register makes an engine available by name. Engines register themselves
// from init, so the set is decided by what the binary links.
func Register(e Engine) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := engines[e.Name()]; dup {
		panic("ecp: engine registered twice: " + e.Name())
	}
	engines[e.Name()] = e
}

// Lookup returns the engine registered under name, or nil.
func Lookup(name string) Engine {
	if name == (Generic{}).Name() {
		return Generic{}
	}
	mu.RLock()
	defer mu.RUnlock()
	return engines[name]
}

// Engines lists the registered engine names, generic included.
func Engines() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := []string{Generic{}.Name()}
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize converts a Jacobian point to affine form in place, or to the
// zero encoding of infinity.
func Normalize(g *Group, p *Point) {
	if p.Z.Sign() == 0 {
		p.SetInfinity()
		return
	}
	if p.Z.Cmp(one) == 0 {
		return
	}
	zinv := new(big.Int).ModInverse(p.Z, g.P)
	if zinv == nil {
		p.SetInfinity()
		return
	}
	zinv2 := new(big.Int).Mul(zinv, zinv)
	p.X.Mul(p.X, zinv2)
	p.X.Mod(p.X, g.P)
	zinv2.Mul(zinv2, zinv)
	p.Y.Mul(p.Y, zinv2)
	p.Y.Mod(p.Y, g.P)
	p.Z.SetInt64(1)
}

// SameCurve reports whether g has the given prime and order, the check
// engines use to recognise their curve.
func SameCurve(g *Group, p, n *big.Int) bool {
	return g.P.Cmp(p) == 0 && g.N.Cmp(n) == 0
}
