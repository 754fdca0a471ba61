package dsa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrivateKeyJSONRoundTrip(t *testing.T) {
	priv := fixedKey(t)
	data, err := json.Marshal(priv)
	require.NoError(t, err)

	var got PrivateKey
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, priv.PublicKey.Params.P.Equal(got.PublicKey.Params.P))
	require.True(t, priv.X.Equal(got.X))
}

func TestPublicKeyJSONRoundTrip(t *testing.T) {
	priv := fixedKey(t)
	pub := priv.Public()
	data, err := json.Marshal(pub)
	require.NoError(t, err)

	var got PublicKey
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, pub.Params.G.Equal(got.Params.G))
	require.True(t, pub.Y.Equal(got.Y))
}

func TestPublicKeyJSONRejectsWrongKty(t *testing.T) {
	var pub PublicKey
	err := pub.UnmarshalJSON([]byte(`{"kty":"RSA","p":"AQ","q":"AQ","g":"AQ","y":"AQ","ext":true}`))
	require.Error(t, err)
}
