//go:build !bnbridge_norsa && !bnbridge_noecc

package e2e

import (
	"crypto/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/curves"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/paillier"
	"github.com/smallyu/go-tpm-bnbridge/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-tpm-bnbridge/internal/telemetry"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

func TestCryptoIntegration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(reg)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	orig := bnmath.Default()
	bnmath.SetDefault(bnmath.New(bnmath.WithMetrics(metrics)))
	defer bnmath.SetDefault(orig)

	// 1. Key Generation Phase
	key, err := paillier.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	// 2. Encrypt and decrypt
	msg := bignum.FromWord(12345)
	c, _, err := key.PublicKey.Encrypt(msg)
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}
	decrypted, err := key.Decrypt(c)
	if err != nil {
		t.Fatalf("Decryption failed: %v", err)
	}
	if !bignum.Equal(msg, decrypted) {
		t.Errorf("decrypted message mismatch: got %s, want %s", decrypted, msg)
	}

	// 3. Homomorphic Operation Phase: 12345 * 3 + 10
	c2, _, err := key.PublicKey.Encrypt(bignum.FromWord(10))
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}
	scaled, err := key.PublicKey.Mul(c, bignum.FromWord(3))
	if err != nil {
		t.Fatalf("Homomorphic mul failed: %v", err)
	}
	combined, err := key.PublicKey.Add(scaled, c2)
	if err != nil {
		t.Fatalf("Homomorphic add failed: %v", err)
	}
	result, err := key.Decrypt(combined)
	if err != nil {
		t.Fatalf("Decryption failed: %v", err)
	}
	if !result.IsWord(12345*3 + 10) {
		t.Errorf("Homomorphic result mismatch. Got %s, want %d", result, 12345*3+10)
	}

	// 4. Proof of knowledge on the same bridge
	curve := bnmath.CurveInitialize(curves.NistP256)
	if curve == nil {
		t.Fatal("P-256 unavailable")
	}
	defer curve.Free()
	x, X, err := schnorr.GenerateKey(curve)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	proof, err := schnorr.Prove(curve, x, X)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	if !proof.Verify(curve, X) {
		t.Error("Verify failed for valid proof")
	}

	// 5. Every operation went through the instrumented bridge
	totals, err := telemetry.Totals(reg)
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	seen := map[string]bool{}
	for _, total := range totals {
		if total.Result == telemetry.ResultOK {
			seen[total.Op] = true
		}
	}
	for _, op := range []string{"ModExp", "ModMult", "Mult", "Div", "Gcd", "ModInverse", "EccModMult", "EccModMult2"} {
		if !seen[op] {
			t.Errorf("operation %s was not recorded", op)
		}
	}
}
