// Package dsa implements the DSA engine (C5): FIPS 186-4 compatible
// domain parameter generation, key generation, and signing and
// verification. The layering mirrors the "sane params"/"sane
// pubkey"/"sane privkey" checks of the native DSA implementation this
// was distilled from: Params.Verify checks only the domain parameters,
// PublicKey.Verify delegates to it and adds the y invariant,
// PrivateKey.Verify delegates to PublicKey.Verify and adds the x
// invariant.
package dsa

import "github.com/hxlabs/pkcrypto/bigint"

// Params are the DSA domain parameters (p, q, g).
type Params struct {
	P *bigint.BigInt
	Q *bigint.BigInt
	G *bigint.BigInt
}

// PublicKey widens Params with the public value y = g^x mod p.
type PublicKey struct {
	Params Params
	Y      *bigint.BigInt
}

// PrivateKey widens PublicKey with the private exponent x.
type PrivateKey struct {
	PublicKey PublicKey
	X         *bigint.BigInt
}

// Public returns the public projection of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{Params: priv.PublicKey.Params, Y: priv.PublicKey.Y}
}

// Signature is a DSA signature (r, s). Sign and Verify operate on the
// low-level integer form: z is a caller-supplied pre-hashed,
// pre-truncated message integer, not a raw message. Callers must hash
// their message and truncate the digest to q's bit length themselves
// before calling Sign or Verify — this module never hashes on their
// behalf (see spec's "DSA message handling" design note).
type Signature struct {
	R *bigint.BigInt
	S *bigint.BigInt
}

// allowedLN is the set of (bitLength(p), bitLength(q)) pairs domain
// parameters may declare, independent of how they were generated.
var allowedLN = map[[2]int]bool{
	{1024, 160}: true,
	{2048, 224}: true,
	{2048, 256}: true,
	{3072, 256}: true,
}
