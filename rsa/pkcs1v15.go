package rsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/hashes"
	"github.com/hxlabs/pkcrypto/internal/fieldbuf"
	"github.com/hxlabs/pkcrypto/internal/perr"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// emsaEncode builds the PKCS#1 v1.5 encoded message EM = 0x00 || 0x01
// || PS || 0x00 || T, where T = DigestInfo(h) || h.Sum(msg) and PS is
// 0xFF repeated to pad EM out to exactly k bytes.
func emsaEncode(h hashes.Hash, msg []byte, k int) ([]byte, error) {
	prefix := hashes.OIDDER(h)
	digest := h.Sum(msg)
	t := append(append([]byte{}, prefix...), digest...)

	if len(t) > k-11 {
		return nil, perr.New(perr.MessageTooLong, "rsa: message too long for modulus size")
	}

	em := make([]byte, k)
	em[0] = 0x00
	em[1] = 0x01
	psLen := k - 3 - len(t)
	for i := 0; i < psLen; i++ {
		em[2+i] = 0xff
	}
	em[2+psLen] = 0x00
	copy(em[3+psLen:], t)
	return em, nil
}

// SignPKCS1v15 signs msg under priv using PKCS#1 v1.5 padding: the hash
// h both digests msg and supplies the DigestInfo prefix placed ahead
// of the digest inside the encoded message. The private exponentiation
// runs through a blinded CRT path: randomized so its timing does not
// depend on the unblinded message, and constant-time in the exponent
// bits of dp/dq.
func SignPKCS1v15(rand randsrc.Source, priv *PrivateKey, h hashes.Hash, msg []byte) ([]byte, error) {
	k := priv.PublicKey.Size()
	em, err := emsaEncode(h, msg, k)
	if err != nil {
		return nil, err
	}
	m := bigint.FromBytesBE(em)

	s, err := decryptBlindedCRT(rand, priv, m)
	if err != nil {
		return nil, err
	}
	return s.ToBytesBEPad(k), nil
}

// VerifyPKCS1v15 reports whether sig is a valid PKCS#1 v1.5 signature
// of msg under pub, using hash h. It never returns an error: any
// malformed length, out-of-range value, or digest mismatch is folded
// into false, and the encoded-message comparison runs in constant time
// over the fixed k-byte width (the "encode-and-compare" strategy —
// the signed payload's ASN.1 is never parsed back out).
func VerifyPKCS1v15(pub *PublicKey, h hashes.Hash, msg, sig []byte) bool {
	k := pub.Size()
	if len(sig) != k {
		return false
	}
	s := bigint.FromBytesBE(sig)
	if s.Cmp(pub.N) >= 0 {
		return false
	}

	m, err := s.ModPow(pub.E, pub.N)
	if err != nil {
		return false
	}
	emGot := m.ToBytesBEPad(k)

	emWant, err := emsaEncode(h, msg, k)
	if err != nil {
		return false
	}
	return fieldbuf.Equal(emGot, emWant)
}

// VerifyPKCS1v15Bytes is the raw-bytes entry point: it builds a
// PublicKey directly from the big-endian modulus and exponent bytes
// and delegates to VerifyPKCS1v15, so there is exactly one
// verification code path regardless of how the caller holds the key.
func VerifyPKCS1v15Bytes(n, e []byte, h hashes.Hash, msg, sig []byte) bool {
	pub := &PublicKey{N: bigint.FromBytesBE(n), E: bigint.FromBytesBE(e)}
	return VerifyPKCS1v15(pub, h, msg, sig)
}

// decryptBlindedCRT computes m^d mod n via the CRT shortcut
// (m1 = m^dp mod p, m2 = m^dq mod q, h = qi*(m1-m2) mod p,
// s = m2 + h*q), wrapped in RSA blinding: a fresh random unit r masks
// m before the private exponentiations and is divided back out
// afterward, so the private-path timing does not depend on the
// unblinded input. The p- and q-side exponentiations run through
// ModPowConstTime.
func decryptBlindedCRT(rand randsrc.Source, priv *PrivateKey, m *bigint.BigInt) (*bigint.BigInt, error) {
	n := priv.PublicKey.N
	e := priv.PublicKey.E

	r, err := randomUnit(rand, n)
	if err != nil {
		return nil, err
	}
	rE, err := r.ModPow(e, n)
	if err != nil {
		return nil, err
	}
	blinded, err := m.Mul(rE).Mod(n)
	if err != nil {
		return nil, err
	}

	p, q := priv.P, priv.Q
	m1, err := blinded.ModPowConstTime(priv.Dp, p, p.BitLen())
	if err != nil {
		return nil, err
	}
	m2, err := blinded.ModPowConstTime(priv.Dq, q, q.BitLen())
	if err != nil {
		return nil, err
	}

	hVal, err := priv.Qi.Mul(m1.Sub(m2)).Mod(p)
	if err != nil {
		return nil, err
	}
	sBlinded := m2.Add(hVal.Mul(q))

	rInv, err := r.ModInverse(n)
	if err != nil {
		return nil, err
	}
	return sBlinded.Mul(rInv).Mod(n)
}

// randomUnit draws a random r in [1, n-1] with gcd(r, n) = 1.
func randomUnit(rand randsrc.Source, n *bigint.BigInt) (*bigint.BigInt, error) {
	for {
		r, err := bigint.Random(rand, n)
		if err != nil {
			return nil, err
		}
		if bigint.GCD(r, n).IsOne() {
			return r, nil
		}
	}
}
