package dsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/randsrc"
)

func TestGenerateParamsPassesVerify(t *testing.T) {
	params, err := GenerateParams(randsrc.OS(), 1024)
	require.NoError(t, err)
	require.NoError(t, params.Verify())
	require.Equal(t, 1024, params.P.BitLen())
	require.Equal(t, 160, params.Q.BitLen())
}

func TestGenerateParamsRejectsUnsupportedSize(t *testing.T) {
	_, err := GenerateParams(randsrc.OS(), 777)
	require.Error(t, err)
}

func TestParamsVerifyKnownAnswerPasses(t *testing.T) {
	priv := fixedKey(t)
	require.NoError(t, priv.PublicKey.Params.Verify())
}

func TestParamsVerifyRejectsGEqualOne(t *testing.T) {
	priv := fixedKey(t)
	params := priv.PublicKey.Params
	params.G = bigint.One()
	require.Error(t, params.Verify())
}

func TestParamsVerifyRejectsQNotDividingPMinus1(t *testing.T) {
	priv := fixedKey(t)
	params := priv.PublicKey.Params
	params.Q = params.Q.Add(bigint.FromUint64(2))
	require.Error(t, params.Verify())
}

func TestParamsVerifyRejectsUnrecognizedBitLengths(t *testing.T) {
	params := &Params{
		P: bigint.FromUint64(0xdeadbeef01),
		Q: bigint.FromUint64(0x1234567),
		G: bigint.FromUint64(2),
	}
	require.Error(t, params.Verify())
}
