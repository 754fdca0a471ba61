package dsa

import "github.com/hxlabs/pkcrypto/pkjson"

// MarshalJSON emits {kty: "DSA", p, q, g, y, ext: true}.
func (pub *PublicKey) MarshalJSON() ([]byte, error) {
	return pkjson.Marshal("DSA",
		pkjson.Field{Name: "p", Value: pub.Params.P},
		pkjson.Field{Name: "q", Value: pub.Params.Q},
		pkjson.Field{Name: "g", Value: pub.Params.G},
		pkjson.Field{Name: "y", Value: pub.Y},
	)
}

// UnmarshalJSON populates pub from a pkjson DSA public-key envelope.
func (pub *PublicKey) UnmarshalJSON(data []byte) error {
	fields, err := pkjson.Unmarshal(data, "DSA", "p", "q", "g", "y")
	if err != nil {
		return err
	}
	pub.Params = Params{P: fields["p"], Q: fields["q"], G: fields["g"]}
	pub.Y = fields["y"]
	return nil
}

// MarshalJSON emits {kty: "DSA", p, q, g, y, x, ext: true}.
func (priv *PrivateKey) MarshalJSON() ([]byte, error) {
	return pkjson.Marshal("DSA",
		pkjson.Field{Name: "p", Value: priv.PublicKey.Params.P},
		pkjson.Field{Name: "q", Value: priv.PublicKey.Params.Q},
		pkjson.Field{Name: "g", Value: priv.PublicKey.Params.G},
		pkjson.Field{Name: "y", Value: priv.PublicKey.Y},
		pkjson.Field{Name: "x", Value: priv.X},
	)
}

// UnmarshalJSON populates priv from a pkjson DSA private-key envelope.
func (priv *PrivateKey) UnmarshalJSON(data []byte) error {
	fields, err := pkjson.Unmarshal(data, "DSA", "p", "q", "g", "y", "x")
	if err != nil {
		return err
	}
	priv.PublicKey = PublicKey{
		Params: Params{P: fields["p"], Q: fields["q"], G: fields["g"]},
		Y:      fields["y"],
	}
	priv.X = fields["x"]
	return nil
}
