package rsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/perr"
	"github.com/hxlabs/pkcrypto/primality"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// Verify checks the structural invariants of a public key: 1 < e < n,
// e odd, bitLength(n) >= minBits, n even rejected. It does not and
// cannot check gcd(e, λ(n)) = 1 — that is only verifiable with the
// private side (see PrivateKey.Verify).
func (pub *PublicKey) Verify() error {
	if pub.N == nil || pub.E == nil {
		return perr.New(perr.InvalidKey, "rsa: public key has nil field")
	}
	one := bigint.One()
	if pub.E.Cmp(one) <= 0 {
		return perr.New(perr.InvalidKey, "rsa: public exponent must be > 1")
	}
	if pub.E.Cmp(pub.N) >= 0 {
		return perr.New(perr.InvalidKey, "rsa: public exponent must be < n")
	}
	if !pub.E.IsOdd() {
		return perr.New(perr.InvalidKey, "rsa: public exponent must be odd")
	}
	if pub.E.BitLen() > maxExpBits {
		return perr.New(perr.InvalidKey, "rsa: public exponent exceeds maximum size")
	}
	if pub.N.BitLen() < minBits {
		return perr.New(perr.InvalidKey, "rsa: modulus shorter than minimum size")
	}
	if !pub.N.IsOdd() {
		return perr.New(perr.InvalidKey, "rsa: modulus must be odd")
	}
	return nil
}

// Verify checks every invariant PublicKey.Verify checks, plus the
// private-side algebraic identities: p and q are probably prime;
// n = p*q; dp = d mod (p-1); dq = d mod (q-1); qi*q == 1 mod p;
// e*d == 1 mod lcm(p-1, q-1).
func (priv *PrivateKey) Verify() error {
	if err := priv.PublicKey.Verify(); err != nil {
		return err
	}
	if priv.D == nil || priv.P == nil || priv.Q == nil || priv.Dp == nil || priv.Dq == nil || priv.Qi == nil {
		return perr.New(perr.InvalidKey, "rsa: private key has nil field")
	}

	if !primality.ProbablyPrime(priv.P, primality.KeyGenRounds, randsrc.OS()) {
		return perr.New(perr.InvalidKey, "rsa: p is not prime")
	}
	if !primality.ProbablyPrime(priv.Q, primality.KeyGenRounds, randsrc.OS()) {
		return perr.New(perr.InvalidKey, "rsa: q is not prime")
	}
	if priv.P.Equal(priv.Q) {
		return perr.New(perr.InvalidKey, "rsa: p and q must be distinct")
	}

	if !priv.P.Mul(priv.Q).Equal(priv.PublicKey.N) {
		return perr.New(perr.InvalidKey, "rsa: n != p*q")
	}

	one := bigint.One()
	pMinus1 := priv.P.Sub(one)
	qMinus1 := priv.Q.Sub(one)

	dp, err := priv.D.Mod(pMinus1)
	if err != nil || !dp.Equal(priv.Dp) {
		return perr.New(perr.InvalidKey, "rsa: dp != d mod (p-1)")
	}
	dq, err := priv.D.Mod(qMinus1)
	if err != nil || !dq.Equal(priv.Dq) {
		return perr.New(perr.InvalidKey, "rsa: dq != d mod (q-1)")
	}

	qiq, err := priv.Qi.Mul(priv.Q).Mod(priv.P)
	if err != nil || !qiq.IsOne() {
		return perr.New(perr.InvalidKey, "rsa: qi*q != 1 mod p")
	}

	lambda, err := lcm(pMinus1, qMinus1)
	if err != nil {
		return perr.New(perr.InvalidKey, "rsa: unable to compute lcm(p-1, q-1)")
	}
	ed, err := priv.PublicKey.E.Mul(priv.D).Mod(lambda)
	if err != nil || !ed.IsOne() {
		return perr.New(perr.InvalidKey, "rsa: e*d != 1 mod lcm(p-1, q-1)")
	}

	return nil
}

// lcm returns lcm(a, b) = a*b / gcd(a, b).
func lcm(a, b *bigint.BigInt) (*bigint.BigInt, error) {
	g := bigint.GCD(a, b)
	prod := a.Mul(b)
	return prod.Div(g)
}
