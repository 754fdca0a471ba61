package bigint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCDAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		a := randBigIntNonZero(r, 200)
		b := randBigIntNonZero(r, 200)
		got := GCD(a, b)
		want := new(big.Int).GCD(nil, nil, refBig(a), refBig(b))
		require.Equal(t, want, refBig(got))
	}
}

func TestModInverse(t *testing.T) {
	m := FromUint64(4294967311) // a prime a bit above 2^32
	x := FromUint64(123456789)
	inv, err := x.ModInverse(m)
	require.NoError(t, err)
	prod, err := x.Mul(inv).Mod(m)
	require.NoError(t, err)
	require.True(t, prod.IsOne())
}

func TestModInverseAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 300; i++ {
		m := randBigIntNonZero(r, 256)
		if m.IsZero() || m.IsOne() {
			continue
		}
		x := randBigIntNonZero(r, 256)
		xm, _ := x.Mod(m)
		g := new(big.Int).GCD(nil, nil, refBig(xm), refBig(m))
		inv, err := x.ModInverse(m)
		if g.Cmp(big.NewInt(1)) != 0 {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		want := new(big.Int).ModInverse(refBig(xm), refBig(m))
		require.Equal(t, want, refBig(inv))
	}
}

func TestModInverseNoInverseFails(t *testing.T) {
	_, err := FromUint64(4).ModInverse(FromUint64(8))
	require.Error(t, err)
}
