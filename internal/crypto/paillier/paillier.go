// Package paillier implements the Paillier cryptosystem on caller bignums,
// with every modular operation going through the bnmath bridge.
package paillier

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

// MinBits is the smallest modulus GenerateKey accepts.
const MinBits = 1024

var (
	ErrKeySize    = errors.New("paillier: bits must be at least 1024")
	ErrMessage    = errors.New("paillier: message m must be in range [0, n)")
	ErrCiphertext = errors.New("paillier: ciphertext out of range")
	ErrNonce      = errors.New("paillier: nonce must be a unit mod n")
)

// PublicKey represents a Paillier public key (n).
type PublicKey struct {
	N  *bignum.Num // Modulus n = p * q
	N2 *bignum.Num // n^2
}

// PrivateKey represents a Paillier private key (lambda, mu).
type PrivateKey struct {
	PublicKey
	Lambda *bignum.Num // lcm(p-1, q-1)
	Mu     *bignum.Num // lambda^-1 mod n
}

func (pk *PublicKey) bits() int {
	return pk.N.Allocated() * bignum.RadixBits
}

func fromBig(x *big.Int, nbits int) (*bignum.Num, error) {
	n := bignum.New(nbits)
	if err := bnmath.ForeignToBignum(n, x); err != nil {
		return nil, err
	}
	return n, nil
}

// GenerateKey generates a Paillier key pair with the given bit length for the modulus n.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if bits < MinBits {
		return nil, ErrKeySize
	}

	var p, q *big.Int
	var err error
	for p == nil || p.Cmp(q) == 0 {
		if p, err = rand.Prime(random, bits/2); err != nil {
			return nil, err
		}
		if q, err = rand.Prime(random, bits/2); err != nil {
			return nil, err
		}
	}
	bp, err := fromBig(p, bits/2)
	if err != nil {
		return nil, err
	}
	bq, err := fromBig(q, bits/2)
	if err != nil {
		return nil, err
	}
	return newKey(bp, bq, bits)
}

func newKey(p, q *bignum.Num, bits int) (*PrivateKey, error) {
	n := bignum.New(bits)
	if err := bnmath.Mult(n, p, q); err != nil {
		return nil, errors.Wrap(err, "paillier: n")
	}
	n2 := bignum.New(2 * bits)
	if err := bnmath.Mult(n2, n, n); err != nil {
		return nil, errors.Wrap(err, "paillier: n^2")
	}

	// lambda = (p-1)(q-1) / gcd(p-1, q-1)
	pm1, qm1 := bignum.New(bits/2), bignum.New(bits/2)
	if err := bignum.SubWord(pm1, p, 1); err != nil {
		return nil, err
	}
	if err := bignum.SubWord(qm1, q, 1); err != nil {
		return nil, err
	}
	g := bignum.New(bits / 2)
	if err := bnmath.Gcd(g, pm1, qm1); err != nil {
		return nil, errors.Wrap(err, "paillier: gcd")
	}
	phi := bignum.New(bits)
	if err := bnmath.Mult(phi, pm1, qm1); err != nil {
		return nil, errors.Wrap(err, "paillier: phi")
	}
	lambda := bignum.New(bits)
	if err := bnmath.Div(lambda, nil, phi, g); err != nil {
		return nil, errors.Wrap(err, "paillier: lambda")
	}

	mu := bignum.New(bits)
	if err := bnmath.ModInverse(mu, lambda, n); err != nil {
		return nil, errors.Wrap(err, "paillier: failed to compute modular inverse for mu")
	}

	return &PrivateKey{
		PublicKey: PublicKey{N: n, N2: n2},
		Lambda:    lambda,
		Mu:        mu,
	}, nil
}

// Encrypt encrypts m with a fresh nonce and returns the ciphertext and the nonce.
func (pk *PublicKey) Encrypt(m *bignum.Num) (*bignum.Num, *bignum.Num, error) {
	r, err := pk.nonce(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	c, err := pk.EncryptWithNonce(m, r)
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

// nonce draws r uniformly from the units of Z_n.
func (pk *PublicKey) nonce(random io.Reader) (*bignum.Num, error) {
	n, err := bnmath.BignumToForeign(pk.N)
	if err != nil {
		return nil, err
	}
	g := bignum.New(pk.bits())
	for {
		x, err := rand.Int(random, n)
		if err != nil {
			return nil, err
		}
		if x.Sign() == 0 {
			continue
		}
		r, err := fromBig(x, pk.bits())
		if err != nil {
			return nil, err
		}
		if err := bnmath.Gcd(g, r, pk.N); err != nil {
			return nil, err
		}
		if g.IsWord(1) {
			return r, nil
		}
	}
}

// EncryptWithNonce computes c = (1 + n*m) * r^n mod n^2. Proofs that need
// the nonce use this directly.
func (pk *PublicKey) EncryptWithNonce(m, r *bignum.Num) (*bignum.Num, error) {
	if bignum.Cmp(m, pk.N) >= 0 {
		return nil, ErrMessage
	}
	if r.IsZero() || bignum.Cmp(r, pk.N) >= 0 {
		return nil, ErrNonce
	}
	nbits := 2 * pk.bits()

	gm := bignum.New(nbits)
	if err := bnmath.Mult(gm, pk.N, m); err != nil {
		return nil, err
	}
	if err := bignum.AddWord(gm, gm, 1); err != nil {
		return nil, err
	}

	rn := bignum.New(nbits)
	if err := bnmath.ModExp(rn, r, pk.N, pk.N2); err != nil {
		return nil, err
	}

	c := bignum.New(nbits)
	if err := bnmath.ModMult(c, gm, rn, pk.N2); err != nil {
		return nil, err
	}
	return c, nil
}

// Decrypt computes m = L(c^lambda mod n^2) * mu mod n with L(x) = (x-1)/n.
func (priv *PrivateKey) Decrypt(c *bignum.Num) (*bignum.Num, error) {
	if err := priv.ValidateCiphertext(c); err != nil {
		return nil, err
	}
	nbits := 2 * priv.bits()

	u := bignum.New(nbits)
	if err := bnmath.ModExp(u, c, priv.Lambda, priv.N2); err != nil {
		return nil, err
	}
	if u.IsZero() {
		return nil, ErrCiphertext
	}
	if err := bignum.SubWord(u, u, 1); err != nil {
		return nil, err
	}
	l := bignum.New(nbits)
	if err := bnmath.Div(l, nil, u, priv.N); err != nil {
		return nil, err
	}

	m := bignum.New(priv.bits())
	if err := bnmath.ModMult(m, l, priv.Mu, priv.N); err != nil {
		return nil, err
	}
	return m, nil
}

// Add performs homomorphic addition: E(m1) * E(m2) mod n^2 = E(m1 + m2).
func (pk *PublicKey) Add(c1, c2 *bignum.Num) (*bignum.Num, error) {
	c := bignum.New(2 * pk.bits())
	if err := bnmath.ModMult(c, c1, c2, pk.N2); err != nil {
		return nil, err
	}
	return c, nil
}

// Mul performs homomorphic multiplication by a scalar: E(m)^k mod n^2 = E(m * k).
func (pk *PublicKey) Mul(c1, k *bignum.Num) (*bignum.Num, error) {
	c := bignum.New(2 * pk.bits())
	if err := bnmath.ModExp(c, c1, k, pk.N2); err != nil {
		return nil, err
	}
	return c, nil
}

// ValidateCiphertext checks that c is in [1, n^2) and a unit mod n.
func (pk *PublicKey) ValidateCiphertext(c *bignum.Num) error {
	if c == nil || c.IsZero() || bignum.Cmp(c, pk.N2) >= 0 {
		return ErrCiphertext
	}
	g := bignum.New(pk.bits())
	if err := bnmath.Gcd(g, c, pk.N); err != nil {
		return err
	}
	if !g.IsWord(1) {
		return errors.Wrap(ErrCiphertext, "not a unit")
	}
	return nil
}
