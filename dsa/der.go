package dsa

import "github.com/hxlabs/pkcrypto/der"

// EncodeParams returns the DER encoding SEQUENCE { p, q, g } of
// params.
func (params *Params) EncodeParams() []byte {
	return der.EncodeSequence(params.P, params.Q, params.G)
}

// DecodeParams parses a DER-encoded SEQUENCE { p, q, g }.
func DecodeParams(data []byte) (*Params, error) {
	fields, err := der.DecodeSequence(data, 3)
	if err != nil {
		return nil, err
	}
	return &Params{P: fields[0], Q: fields[1], G: fields[2]}, nil
}

// EncodePublic returns the DER encoding SEQUENCE { p, q, g, y } of
// pub.
func (pub *PublicKey) EncodePublic() []byte {
	return der.EncodeSequence(pub.Params.P, pub.Params.Q, pub.Params.G, pub.Y)
}

// DecodePublicKey parses a DER-encoded SEQUENCE { p, q, g, y }.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	fields, err := der.DecodeSequence(data, 4)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		Params: Params{P: fields[0], Q: fields[1], G: fields[2]},
		Y:      fields[3],
	}, nil
}

// Encode returns the DER encoding
// SEQUENCE { version(0), p, q, g, y, x } of priv.
func (priv *PrivateKey) Encode() []byte {
	return der.EncodeVersionedSequence(0,
		priv.PublicKey.Params.P, priv.PublicKey.Params.Q, priv.PublicKey.Params.G,
		priv.PublicKey.Y, priv.X,
	)
}

// DecodePrivateKey parses a DER-encoded
// SEQUENCE { version(0), p, q, g, y, x }.
func DecodePrivateKey(data []byte) (*PrivateKey, error) {
	fields, err := der.DecodeVersionedSequence(data, 5)
	if err != nil {
		return nil, err
	}
	p, q, g, y, x := fields[0], fields[1], fields[2], fields[3], fields[4]
	return &PrivateKey{
		PublicKey: PublicKey{Params: Params{P: p, Q: q, G: g}, Y: y},
		X:         x,
	}, nil
}
