package dsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/der"
	"github.com/hxlabs/pkcrypto/internal/fieldbuf"
	"github.com/hxlabs/pkcrypto/internal/perr"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// maxSignRetries bounds the number of (k, r, s) draws Sign will make
// before giving up. Each individual draw fails with probability on
// the order of 1/q, so in practice one try succeeds; the bound exists
// only to turn a catastrophic entropy-source failure into an error
// instead of an infinite loop.
const maxSignRetries = 10

// Sign computes a DSA signature over the low-level integer z: the
// caller's already-hashed, already-truncated message. z is interpreted
// as a big-endian unsigned integer and is not reduced to q's bit width
// here — callers that want the standard "leftmost min(outlen, N) bits
// of the hash" truncation must do it themselves before calling Sign.
func Sign(rand randsrc.Source, priv *PrivateKey, z []byte) (*Signature, error) {
	p := priv.PublicKey.Params.P
	q := priv.PublicKey.Params.Q
	g := priv.PublicKey.Params.G
	x := priv.X

	if q.BitLen()%8 != 0 {
		return nil, perr.New(perr.InvalidParameter, "dsa: q bit length must be a multiple of 8")
	}

	zInt := bigint.FromBytesBE(z)

	for attempt := 0; attempt < maxSignRetries; attempt++ {
		k, err := bigint.Random(rand, q)
		if err != nil {
			return nil, err
		}

		gk, err := g.ModPow(k, p)
		if err != nil {
			return nil, err
		}
		r, err := gk.Mod(q)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}

		kInv, err := k.ModInverse(q)
		if err != nil {
			continue
		}
		s, err := kInv.Mul(zInt.Add(x.Mul(r))).Mod(q)
		if err != nil {
			return nil, err
		}
		if s.IsZero() {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
	return nil, perr.New(perr.SignatureFailed, "dsa: signing exhausted retry budget")
}

// Verify reports whether sig is a valid DSA signature of z under pub.
// It never returns an error: an out-of-range r or s, or a failed
// verification equation, is folded into false.
func Verify(pub *PublicKey, z []byte, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	p := pub.Params.P
	q := pub.Params.Q
	g := pub.Params.G
	y := pub.Y

	if sig.R.Sign() <= 0 || sig.R.Cmp(q) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(q) >= 0 {
		return false
	}

	w, err := sig.S.ModInverse(q)
	if err != nil {
		return false
	}
	zInt := bigint.FromBytesBE(z)
	u1, err := zInt.Mul(w).Mod(q)
	if err != nil {
		return false
	}
	u2, err := sig.R.Mul(w).Mod(q)
	if err != nil {
		return false
	}

	gu1, err := g.ModPow(u1, p)
	if err != nil {
		return false
	}
	yu2, err := y.ModPow(u2, p)
	if err != nil {
		return false
	}
	v, err := gu1.Mul(yu2).Mod(p)
	if err != nil {
		return false
	}
	v, err = v.Mod(q)
	if err != nil {
		return false
	}

	return v.Equal(sig.R)
}

// RawBytes returns r and s each left-padded to ceil(qBitLen/8) bytes,
// the fixed-width concatenated form DSA signatures take outside of an
// ASN.1 envelope.
func (sig *Signature) RawBytes(qBitLen int) (r, s []byte) {
	size := fieldbuf.ByteSize(qBitLen)
	return sig.R.ToBytesBEPad(size), sig.S.ToBytesBEPad(size)
}

// MarshalASN1 returns the DER encoding SEQUENCE { r, s }.
func (sig *Signature) MarshalASN1() []byte {
	return der.EncodeSequence(sig.R, sig.S)
}

// UnmarshalASN1 populates sig from a DER-encoded SEQUENCE { r, s }.
func (sig *Signature) UnmarshalASN1(data []byte) error {
	fields, err := der.DecodeSequence(data, 2)
	if err != nil {
		return err
	}
	sig.R = fields[0]
	sig.S = fields[1]
	return nil
}
