package rsa

import "github.com/hxlabs/pkcrypto/pkjson"

// MarshalJSON emits {kty: "RSA", n, e, ext: true}.
func (pub *PublicKey) MarshalJSON() ([]byte, error) {
	return pkjson.Marshal("RSA",
		pkjson.Field{Name: "n", Value: pub.N},
		pkjson.Field{Name: "e", Value: pub.E},
	)
}

// UnmarshalJSON populates pub from a pkjson RSA public-key envelope.
func (pub *PublicKey) UnmarshalJSON(data []byte) error {
	fields, err := pkjson.Unmarshal(data, "RSA", "n", "e")
	if err != nil {
		return err
	}
	pub.N = fields["n"]
	pub.E = fields["e"]
	return nil
}

// MarshalJSON emits {kty: "RSA", n, e, d, p, q, dp, dq, qi, ext: true}.
func (priv *PrivateKey) MarshalJSON() ([]byte, error) {
	return pkjson.Marshal("RSA",
		pkjson.Field{Name: "n", Value: priv.PublicKey.N},
		pkjson.Field{Name: "e", Value: priv.PublicKey.E},
		pkjson.Field{Name: "d", Value: priv.D},
		pkjson.Field{Name: "p", Value: priv.P},
		pkjson.Field{Name: "q", Value: priv.Q},
		pkjson.Field{Name: "dp", Value: priv.Dp},
		pkjson.Field{Name: "dq", Value: priv.Dq},
		pkjson.Field{Name: "qi", Value: priv.Qi},
	)
}

// UnmarshalJSON populates priv from a pkjson RSA private-key envelope.
func (priv *PrivateKey) UnmarshalJSON(data []byte) error {
	fields, err := pkjson.Unmarshal(data, "RSA", "n", "e", "d", "p", "q", "dp", "dq", "qi")
	if err != nil {
		return err
	}
	priv.PublicKey = PublicKey{N: fields["n"], E: fields["e"]}
	priv.D = fields["d"]
	priv.P = fields["p"]
	priv.Q = fields["q"]
	priv.Dp = fields["dp"]
	priv.Dq = fields["dq"]
	priv.Qi = fields["qi"]
	return nil
}
