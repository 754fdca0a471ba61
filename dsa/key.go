package dsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/perr"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// ComputeY returns g^x mod p for the given domain parameters, the
// single place the public value is ever derived from a private
// exponent.
func ComputeY(params *Params, x *bigint.BigInt) *bigint.BigInt {
	y, _ := params.G.ModPow(x, params.P)
	return y
}

// Verify checks params and, given that params are sound, that y lies
// in (0, p).
func (pub *PublicKey) Verify() error {
	if err := pub.Params.Verify(); err != nil {
		return err
	}
	if pub.Y == nil {
		return perr.New(perr.InvalidKey, "dsa: public key has nil y")
	}
	if pub.Y.Sign() <= 0 || pub.Y.Cmp(pub.Params.P) >= 0 {
		return perr.New(perr.InvalidKey, "dsa: y must satisfy 0 < y < p")
	}
	return nil
}

// Verify checks pub and, given that it is sound, that x lies in (0, q)
// and y == g^x mod p.
func (priv *PrivateKey) Verify() error {
	if err := priv.PublicKey.Verify(); err != nil {
		return err
	}
	if priv.X == nil {
		return perr.New(perr.InvalidKey, "dsa: private key has nil x")
	}
	q := priv.PublicKey.Params.Q
	if priv.X.Sign() <= 0 || priv.X.Cmp(q) >= 0 {
		return perr.New(perr.InvalidKey, "dsa: x must satisfy 0 < x < q")
	}
	y := ComputeY(&priv.PublicKey.Params, priv.X)
	if !y.Equal(priv.PublicKey.Y) {
		return perr.New(perr.InvalidKey, "dsa: y != g^x mod p")
	}
	return nil
}

// GeneratePrivateKey samples a fresh private exponent x in [1, q-1]
// under params and derives y = g^x mod p.
func GeneratePrivateKey(rand randsrc.Source, params *Params) (*PrivateKey, error) {
	priv := &PrivateKey{PublicKey: PublicKey{Params: *params}}
	if err := priv.Generate(rand); err != nil {
		return nil, err
	}
	return priv, nil
}

// Generate resamples x and the corresponding y in place, under priv's
// existing domain parameters.
func (priv *PrivateKey) Generate(rand randsrc.Source) error {
	q := priv.PublicKey.Params.Q
	x, err := bigint.Random(rand, q)
	if err != nil {
		return err
	}
	priv.X = x
	priv.PublicKey.Y = ComputeY(&priv.PublicKey.Params, x)
	return nil
}
