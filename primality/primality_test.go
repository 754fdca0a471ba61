package primality

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/randsrc"
)

func TestSmallPrimesCount(t *testing.T) {
	// There are exactly 309 primes below 2048.
	require.Len(t, smallPrimes(), 309)
	ps := smallPrimes()
	require.Equal(t, uint32(2), ps[0])
	require.Equal(t, uint32(3), ps[1])
	require.Equal(t, uint32(2039), ps[len(ps)-1])
}

func TestProbablyPrimeSmallValues(t *testing.T) {
	composites := []uint64{0, 1, 4, 6, 8, 9, 100, 1024, 2046}
	for _, c := range composites {
		require.False(t, ProbablyPrime(bigint.FromUint64(c), KeyGenRounds, randsrc.OS()), "%d", c)
	}

	primes := []uint64{2, 3, 5, 7, 11, 13, 97, 2039}
	for _, p := range primes {
		require.True(t, ProbablyPrime(bigint.FromUint64(p), KeyGenRounds, randsrc.OS()), "%d", p)
	}
}

func TestProbablyPrimeLargeKnownPrime(t *testing.T) {
	// 2^61 - 1, a Mersenne prime, well beyond the trial-division table.
	n := bigint.One().Lsh(61).Sub(bigint.One())
	require.True(t, ProbablyPrime(n, KeyGenRounds, randsrc.OS()))
}

func TestProbablyPrimeLargeKnownComposite(t *testing.T) {
	n := bigint.One().Lsh(61).Sub(bigint.One()).Add(bigint.FromUint64(2))
	require.False(t, ProbablyPrime(n, KeyGenRounds, randsrc.OS()))

	// Product of two primes above the trial-division bound.
	p := bigint.FromUint64(1000000007)
	q := bigint.FromUint64(1000000009)
	require.False(t, ProbablyPrime(p.Mul(q), KeyGenRounds, randsrc.OS()))
}

func TestProbablyPrimeRejectsNonPositive(t *testing.T) {
	require.False(t, ProbablyPrime(bigint.Zero(), KeyGenRounds, randsrc.OS()))
	require.False(t, ProbablyPrime(bigint.FromInt64(-7), KeyGenRounds, randsrc.OS()))
}

func TestProbablyPrimeDeterministicWithFixedSource(t *testing.T) {
	// A fixed byte stream must make the result reproducible across runs.
	n := bigint.FromUint64(1000000007)
	fixed := func() randsrc.Source {
		// Generous margin over the 4 bytes/round a bare draw needs:
		// rejection sampling may redraw a handful of times per round.
		buf := make([]byte, 4*KeyGenRounds*64)
		for i := range buf {
			buf[i] = byte(i*7 + 1)
		}
		return randsrc.NewFixed(buf)
	}
	require.True(t, ProbablyPrime(n, KeyGenRounds, fixed()))
}
