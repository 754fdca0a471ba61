package bigint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func refBig(x *BigInt) *big.Int {
	r := new(big.Int).SetBytes(x.Abs().ToBytesBE())
	if x.IsNeg() {
		r.Neg(r)
	}
	return r
}

func fromRef(r *big.Int) *BigInt {
	x := FromBytesBE(new(big.Int).Abs(r).Bytes())
	if r.Sign() < 0 {
		x = x.Neg()
	}
	return x
}

func TestBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x01},
		{0xff},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{0x00, 0x00, 0x01}, // leading zeros must be trimmed on output
	}
	for _, c := range cases {
		x := FromBytesBE(c)
		got := x.ToBytesBE()
		want := fieldTrim(c)
		require.Equal(t, want, got)
	}
}

func fieldTrim(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	out := append([]byte{}, b[i:]...)
	if out == nil {
		return []byte{}
	}
	return out
}

func TestAddSubAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := randBigInt(r, 256)
		b := randBigInt(r, 256)
		ra, rb := refBig(a), refBig(b)

		require.Equal(t, new(big.Int).Add(ra, rb), refBig(a.Add(b)))
		require.Equal(t, new(big.Int).Sub(ra, rb), refBig(a.Sub(b)))
		require.Equal(t, new(big.Int).Mul(ra, rb), refBig(a.Mul(b)))
	}
}

func TestDivModAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a := randBigInt(r, 300)
		b := randBigIntNonZero(r, 160)
		ra, rb := refBig(a), refBig(b)

		q, rem, err := a.DivMod(b)
		require.NoError(t, err)

		wantR := new(big.Int).Mod(ra, rb)
		wantQ := new(big.Int).Div(ra, rb)
		require.Equal(t, wantR, refBig(rem), "a=%s b=%s", ra, rb)
		require.Equal(t, wantQ, refBig(q), "a=%s b=%s", ra, rb)
		require.True(t, rem.Sign() >= 0)
		require.True(t, rem.CmpAbs(b) < 0)
	}
}

func TestCmp(t *testing.T) {
	require.Equal(t, -1, FromInt64(1).Cmp(FromInt64(2)))
	require.Equal(t, 0, FromInt64(5).Cmp(FromInt64(5)))
	require.Equal(t, 1, FromInt64(5).Cmp(FromInt64(-5)))
	require.Equal(t, -1, FromInt64(-5).Cmp(FromInt64(5)))
}

func TestBitLenAndBit(t *testing.T) {
	x := FromUint64(0b1011)
	require.Equal(t, 4, x.BitLen())
	require.Equal(t, uint(1), x.Bit(0))
	require.Equal(t, uint(1), x.Bit(1))
	require.Equal(t, uint(0), x.Bit(2))
	require.Equal(t, uint(1), x.Bit(3))
	require.Equal(t, uint(0), x.Bit(4))
}

func TestSetBit(t *testing.T) {
	x := Zero()
	x = x.SetBit(0, 1)
	x = x.SetBit(3, 1)
	require.Equal(t, uint64(0b1001), uint64FromBigInt(x))
}

func uint64FromBigInt(x *BigInt) uint64 {
	b := x.ToBytesBE()
	var v uint64
	for _, by := range b {
		v = v<<8 | uint64(by)
	}
	return v
}

func randBigInt(r *rand.Rand, bits int) *BigInt {
	n := (bits + 7) / 8
	buf := make([]byte, n)
	r.Read(buf)
	x := FromBytesBE(buf)
	if r.Intn(2) == 0 {
		x = x.Neg()
	}
	return x
}

func randBigIntNonZero(r *rand.Rand, bits int) *BigInt {
	for {
		x := randBigInt(r, bits)
		if !x.IsZero() {
			return x.Abs()
		}
	}
}
