//go:build bnbridge_norsa

package paillier

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bnmath"
)

func TestGenerateKeyWithoutRSA(t *testing.T) {
	_, err := GenerateKey(rand.Reader, MinBits)
	assert.ErrorIs(t, err, bnmath.ErrDisabled)
}
