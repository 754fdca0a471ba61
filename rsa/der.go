package rsa

import (
	"github.com/hxlabs/pkcrypto/der"
)

// EncodePublic returns the canonical DER encoding of pub:
// SEQUENCE { n, e }.
func (pub *PublicKey) EncodePublic() []byte {
	return der.EncodeSequence(pub.N, pub.E)
}

// DecodePublicKey parses a DER-encoded RSAPublicKey SEQUENCE.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	fields, err := der.DecodeSequence(data, 2)
	if err != nil {
		return nil, err
	}
	return &PublicKey{N: fields[0], E: fields[1]}, nil
}

// Encode returns the canonical DER encoding of priv:
// SEQUENCE { version(0), n, e, d, p, q, dp, dq, qi }.
func (priv *PrivateKey) Encode() []byte {
	return der.EncodeVersionedSequence(0,
		priv.PublicKey.N, priv.PublicKey.E, priv.D,
		priv.P, priv.Q, priv.Dp, priv.Dq, priv.Qi,
	)
}

// DecodePrivateKey parses a DER-encoded RSAPrivateKey SEQUENCE.
func DecodePrivateKey(data []byte) (*PrivateKey, error) {
	fields, err := der.DecodeVersionedSequence(data, 8)
	if err != nil {
		return nil, err
	}
	n, e, d, p, q, dp, dq, qi := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6], fields[7]
	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
		P:         p,
		Q:         q,
		Dp:        dp,
		Dq:        dq,
		Qi:        qi,
	}, nil
}
