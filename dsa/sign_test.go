package dsa

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// fixedKey reproduces a deterministic 1024/160-bit key whose signing
// equation was independently cross-checked in an offline reference
// computation, so r and s below are known to verify under this exact
// key and z, not merely self-consistent.
func fixedKey(t *testing.T) *PrivateKey {
	hx := func(s string) *bigint.BigInt {
		b, err := hex.DecodeString(s)
		require.NoError(t, err)
		return bigint.FromBytesBE(b)
	}
	params := Params{
		P: hx("d064fe2e7332b66c45e90b9c25292a8934edb27ce1d4ce8322c6448c16f4f4b7419919d5ba43e86e578373747a848f37d5711b83dd4079c2e74f18f9681d92d52df8a1c174d0c49679c0f979dd24bb3b3d341d3b623c101c365b442321b76bc537dc439351d236bef2fb7abd6120edbc43f35866a85cb3c9e2f82390ea67fa25"),
		Q: hx("d9c63bb0ce962b3512654fd205bdd52a27ecb44b"),
		G: hx("1099f75f5bec1cc76fa9d69345f27f251658439a9777e8ff7fef19c6c079014c5488d7ff6795dd36b5a356d2d41ec17f2812b79303274ef44a654f53f5e154c6c43b788268c37756ad6470a8fc23a3577fc406cd7cd22182440ec2e30ecfb865e60cf3ba74be1e43190fae660cafb45c9be77125a6748fd078eb6ad92e29b8fd"),
	}
	return &PrivateKey{
		PublicKey: PublicKey{
			Params: params,
			Y:      hx("85a147e4e353b8320d4ec4418871bc975983de8e874ed42b9e7a424686f221ec1fbc4f76003163f310ae31fbcdf5c2a80ab32476f99695c2774e0ff432428c5f2f42e8c9e68654b24bbd7dff908c72fa9db3d10c018fa1cb7a3bf0385901e5550f4528c3f65baddf9d96bd638aea47e923e9bda5b924336465ae56cd94173368"),
		},
		X: hx("946264ed9722fd5d4c6f6fa77066c440489d3367"),
	}
}

// fixedZHex is sha1("abc"), used directly as the pre-hashed message
// integer — sha1's 160-bit digest exactly matches this fixture's N.
var fixedZHex = "a9993e364706816aba3e25717850c26c9cd0d89d"

const fixedKHex = "5c23b7946691c8a1eb831a9b9565e337ada52323"

func fixedSig(t *testing.T) *Signature {
	hx := func(s string) *bigint.BigInt {
		b, err := hex.DecodeString(s)
		require.NoError(t, err)
		return bigint.FromBytesBE(b)
	}
	return &Signature{
		R: hx("8001a87d9911f50a58178b69ba06fe9d31208b65"),
		S: hx("903adc9c0db92834093041509d1b31a00fba3c78"),
	}
}

func TestVerifyKnownAnswer(t *testing.T) {
	priv := fixedKey(t)
	z, err := hex.DecodeString(fixedZHex)
	require.NoError(t, err)

	require.True(t, Verify(priv.Public(), z, fixedSig(t)))
}

func TestSignReproducesKnownAnswerWithFixedK(t *testing.T) {
	priv := fixedKey(t)
	z, err := hex.DecodeString(fixedZHex)
	require.NoError(t, err)
	k, err := hex.DecodeString(fixedKHex)
	require.NoError(t, err)

	sig, err := Sign(randsrc.NewFixed(k), priv, z)
	require.NoError(t, err)

	want := fixedSig(t)
	require.True(t, sig.R.Equal(want.R))
	require.True(t, sig.S.Equal(want.S))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	priv := fixedKey(t)
	z, err := hex.DecodeString(fixedZHex)
	require.NoError(t, err)

	sig := fixedSig(t)
	sig.S = sig.S.Add(bigint.One())
	require.False(t, Verify(priv.Public(), z, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv := fixedKey(t)
	sig := fixedSig(t)
	z, err := hex.DecodeString("0000000000000000000000000000000000000001")
	require.NoError(t, err)
	require.False(t, Verify(priv.Public(), z, sig))
}

func TestVerifyRejectsOutOfRangeR(t *testing.T) {
	priv := fixedKey(t)
	z, err := hex.DecodeString(fixedZHex)
	require.NoError(t, err)

	sig := fixedSig(t)
	sig.R = priv.PublicKey.Params.Q.Add(bigint.One())
	require.False(t, Verify(priv.Public(), z, sig))
}

func TestSignatureASN1RoundTrip(t *testing.T) {
	sig := fixedSig(t)
	enc := sig.MarshalASN1()

	var got Signature
	require.NoError(t, got.UnmarshalASN1(enc))
	require.True(t, sig.R.Equal(got.R))
	require.True(t, sig.S.Equal(got.S))
}

func TestSignatureRawBytesWidth(t *testing.T) {
	priv := fixedKey(t)
	sig := fixedSig(t)
	r, s := sig.RawBytes(priv.PublicKey.Params.Q.BitLen())
	require.Len(t, r, 20)
	require.Len(t, s, 20)
}
