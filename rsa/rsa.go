// Package rsa implements the RSA engine (C4): key generation, key
// validation, PKCS#1 v1.5 signing and verification with CRT
// acceleration and blinding. Only the primitives spec.md scopes in are
// covered — no OAEP, no PSS, no encryption.
package rsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/fieldbuf"
)

// allowedBits is the closed set of modulus sizes this engine will
// generate or accept from GenerateKey; spec.md's Non-goals exclude
// every other size.
var allowedBits = map[int]bool{512: true, 1024: true, 2048: true, 4096: true, 8192: true}

// minBits is the smallest modulus bit-length PublicKey.Verify accepts;
// it coincides with the smallest size GenerateKey will produce.
const minBits = 512

// maxExpBits bounds the public exponent: e must satisfy 3 <= e < 2^maxExpBits.
// 64 bits is far beyond any exponent any real key uses (65537 is the
// default) but rules out a pathologically huge e that would make
// public-key operations needlessly expensive.
const maxExpBits = 64

// PublicKey is the RSA public key (n, e).
type PublicKey struct {
	N *bigint.BigInt
	E *bigint.BigInt
}

// PrivateKey is the RSA private key, widening PublicKey with the CRT
// parameters. Per spec.md §9's re-architected design note, this is a
// plain product type holding PublicKey by value in a named field, not
// an inheritance chain.
type PrivateKey struct {
	PublicKey PublicKey
	D         *bigint.BigInt
	P         *bigint.BigInt
	Q         *bigint.BigInt
	Dp        *bigint.BigInt
	Dq        *bigint.BigInt
	Qi        *bigint.BigInt
}

// Public returns the public projection of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: priv.PublicKey.N, E: priv.PublicKey.E}
}

// Bits returns the modulus bit-length.
func (pub *PublicKey) Bits() int { return pub.N.BitLen() }

// Size returns the modulus byte-length k = ceil(bits/8), the width
// PKCS#1 v1.5 encodes EM and signatures to.
func (pub *PublicKey) Size() int { return fieldbuf.ByteSize(pub.Bits()) }
