package rsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/randsrc"
)

func TestGeneratedKeyPassesVerify(t *testing.T) {
	priv, err := GenerateKey(randsrc.OS(), 512)
	require.NoError(t, err)
	require.NoError(t, priv.Verify())
	require.NoError(t, priv.Public().Verify())
}

func TestPublicVerifyRejectsEvenExponent(t *testing.T) {
	priv, err := GenerateKey(randsrc.OS(), 512)
	require.NoError(t, err)
	pub := priv.Public()
	pub.E = pub.E.Add(bigint.One())
	require.Error(t, pub.Verify())
}

func TestPublicVerifyRejectsEvenModulus(t *testing.T) {
	priv, err := GenerateKey(randsrc.OS(), 512)
	require.NoError(t, err)
	pub := priv.Public()
	pub.N = pub.N.Add(bigint.One())
	require.Error(t, pub.Verify())
}

func TestPublicVerifyRejectsSmallExponent(t *testing.T) {
	pub := &PublicKey{N: bigint.FromUint64(0xdeadbeef01), E: bigint.FromUint64(1)}
	require.Error(t, pub.Verify())
}

func TestPublicVerifyRejectsExponentNotLessThanModulus(t *testing.T) {
	pub := &PublicKey{N: bigint.FromUint64(9), E: bigint.FromUint64(65537)}
	require.Error(t, pub.Verify())
}

func TestPrivateVerifyRejectsMismatchedModulus(t *testing.T) {
	priv, err := GenerateKey(randsrc.OS(), 512)
	require.NoError(t, err)
	priv.PublicKey.N = priv.PublicKey.N.Add(bigint.One())
	require.Error(t, priv.Verify())
}

func TestGenerateKeyRejectsUnsupportedSize(t *testing.T) {
	_, err := GenerateKey(randsrc.OS(), 768)
	require.Error(t, err)
}
