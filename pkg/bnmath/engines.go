//go:build !bnbridge_noecc

package bnmath

import (
	_ "github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp/bn254"
	_ "github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp/nist"
	_ "github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp/secp256k1"
	_ "github.com/smallyu/go-tpm-bnbridge/internal/crypto/ecp/sm2"
)
