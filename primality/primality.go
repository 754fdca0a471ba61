// Package primality implements the primality-testing primitive (C2):
// trial division against the small primes below 2048 followed by
// Miller–Rabin, used by dsa.GenerateParams and rsa.GenerateKey to
// search for candidate primes.
package primality

import (
	"sync"

	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// KeyGenRounds is the Miller–Rabin round count this module uses when
// searching for RSA/DSA primes: 64 rounds bounds the false-positive
// probability at 2^-128 or better for any candidate that survives
// trial division, per FIPS 186-4 app. C.3.
const KeyGenRounds = 64

var (
	smallPrimesOnce sync.Once
	smallPrimesList []uint32
)

// smallPrimes returns every prime below 2048 (309 of them), computed
// once via a sieve of Eratosthenes and memoized.
func smallPrimes() []uint32 {
	smallPrimesOnce.Do(func() {
		const limit = 2048
		sieve := make([]bool, limit)
		var primes []uint32
		for p := 2; p < limit; p++ {
			if sieve[p] {
				continue
			}
			primes = append(primes, uint32(p))
			for m := p * p; m < limit; m += p {
				sieve[m] = true
			}
		}
		smallPrimesList = primes
	})
	return smallPrimesList
}

// ProbablyPrime reports whether n is prime with false-positive
// probability at most 4^-rounds, via trial division against the small
// primes below 2048 followed by a Miller–Rabin test with rounds
// independent random bases drawn from rnd. n must be positive; n<2 is
// never prime.
func ProbablyPrime(n *bigint.BigInt, rounds int, rnd randsrc.Source) bool {
	if n.Sign() <= 0 {
		return false
	}
	two := bigint.FromUint64(2)
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if !n.IsOdd() {
		return false
	}

	for _, p := range smallPrimes() {
		bp := bigint.FromUint64(uint64(p))
		if n.Equal(bp) {
			return true
		}
		_, r, err := n.DivMod(bp)
		if err != nil {
			return false
		}
		if r.IsZero() {
			return false
		}
	}

	return millerRabin(n, rounds, rnd)
}

// millerRabin runs the Miller–Rabin probabilistic test against n,
// which the caller has already established is odd and >2, for the
// given number of independent rounds.
func millerRabin(n *bigint.BigInt, rounds int, rnd randsrc.Source) bool {
	one := bigint.One()
	two := bigint.FromUint64(2)
	nMinusOne := n.Sub(one)

	// n-1 = d * 2^s, d odd.
	d := nMinusOne
	s := 0
	for !d.IsOdd() {
		d = d.Rsh(1)
		s++
	}

	nMinusTwo := n.Sub(two)

	for i := 0; i < rounds; i++ {
		a, err := randomBase(rnd, nMinusTwo)
		if err != nil {
			return false
		}

		x, err := a.ModPow(d, n)
		if err != nil {
			return false
		}

		if x.IsOne() || x.Equal(nMinusOne) {
			continue
		}

		composite := true
		for r := 1; r < s; r++ {
			x, err = x.Mul(x).Mod(n)
			if err != nil {
				return false
			}
			if x.Equal(nMinusOne) {
				composite = false
				break
			}
			if x.IsOne() {
				// x became 1 without passing through n-1: n is composite.
				return false
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// randomBase draws a uniformly random base a in [2, n-2], where
// nMinusTwo is the caller-supplied value n-2. bigint.Random(rnd, lt)
// samples uniformly from [1, lt-1]; passing lt=nMinusTwo and adding 1
// shifts that range to [2, nMinusTwo].
func randomBase(rnd randsrc.Source, nMinusTwo *bigint.BigInt) (*bigint.BigInt, error) {
	v, err := bigint.Random(rnd, nMinusTwo)
	if err != nil {
		return nil, err
	}
	return v.Add(bigint.One()), nil
}
