package b64url

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeKnownAnswer(t *testing.T) {
	data, err := hex.DecodeString("53e9363b2962fcaf")
	require.NoError(t, err)
	require.Equal(t, "U-k2Oyli_K8", Encode(data))
}

func TestDecodeInvertsEncode(t *testing.T) {
	data, err := hex.DecodeString("53e9363b2962fcaf")
	require.NoError(t, err)
	got, err := Decode(Encode(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestDecodeRejectsStandardAlphabet(t *testing.T) {
	_, err := Decode("U+k2Oyli/K8=")
	require.Error(t, err)
}

func TestDecodeAcceptsPadding(t *testing.T) {
	data, err := hex.DecodeString("53e9363b2962fcaf")
	require.NoError(t, err)
	got, err := Decode("U-k2Oyli_K8=")
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestDecodeRejectsWhitespace(t *testing.T) {
	_, err := Decode("U-k2\nOyli_K8")
	require.Error(t, err)
}

func TestRoundTripEmpty(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	got, err := Decode("")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRoundTripVarious(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 16, 32, 255} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*7 + 3)
		}
		got, err := Decode(Encode(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}
