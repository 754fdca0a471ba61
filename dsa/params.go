package dsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/perr"
	"github.com/hxlabs/pkcrypto/internal/pklog"
	"github.com/hxlabs/pkcrypto/primality"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// generatedBits is the set of modulus sizes L this engine will
// generate; subgroupBits pairs each with its FIPS 186-4 subgroup size
// N: N=160 below 2048 bits, N=256 otherwise. Params.Verify accepts the wider set of standard
// (L,N) pairs (see allowedLN in dsa.go) since structurally-valid
// parameters are not required to have come from this generator.
var generatedBits = map[int]bool{1024: true, 2048: true, 3072: true}

func subgroupBits(l int) int {
	if l < 2048 {
		return 160
	}
	return 256
}

// GenerateParams searches for a domain parameter triple (p, q, g) with
// a modulus of the given bit length, following the FIPS 186-4
// probable-prime construction: q is drawn directly and tested; p is
// then searched for among candidates congruent to 1 mod q, up to 4*L
// tries before q itself is resampled; g is the first h in {2, 3, ...}
// whose order-q residue h^((p-1)/q) mod p is not 1.
//
// bits is deliberately restricted to the three FIPS 186-4 standard
// sizes {1024, 2048, 3072} rather than accepting any value in the
// wider [1024, 3072] range: FIPS 186-4 itself only defines (L, N)
// pairs at those three L values, so intermediate L values (e.g. 1536)
// have no defined N to pair with. Every (L, N) pair generated here is
// in allowedLN, which Params.Verify checks (allowedLN also admits
// (2048, 224)), so a caller can never generate parameters this engine
// would then reject.
func GenerateParams(rand randsrc.Source, bits int, opts ...Option) (*Params, error) {
	if !generatedBits[bits] {
		return nil, perr.New(perr.InvalidParameter, "dsa: unsupported modulus size")
	}
	cfg := newConfig(opts...)
	n := subgroupBits(bits)

	for attempt := 0; ; attempt++ {
		cfg.logger.Debug("dsa params generation attempt", pklog.Int("attempt", attempt), pklog.Int("L", bits), pklog.Int("N", n))

		q, err := generateCandidatePrime(rand, n)
		if err != nil {
			return nil, err
		}

		p, ok, err := searchModulus(rand, q, bits)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		g, err := findGenerator(p, q)
		if err != nil {
			return nil, err
		}

		cfg.logger.Info("dsa params generated", pklog.Int("L", bits), pklog.Int("N", n), pklog.Int("attempts", attempt+1))
		return &Params{P: p, Q: q, G: g}, nil
	}
}

// searchModulus looks for a prime p of exactly l bits with q | (p-1),
// trying up to 4*l candidates before reporting failure (the caller
// resamples q and starts over).
func searchModulus(rand randsrc.Source, q *bigint.BigInt, l int) (*bigint.BigInt, bool, error) {
	one := bigint.One()
	maxTries := 4 * l
	for i := 0; i < maxTries; i++ {
		cand, err := bigint.RandomBits(rand, l)
		if err != nil {
			return nil, false, err
		}
		cand = cand.SetBit(l-1, 1)
		cand = cand.SetBit(0, 1)

		rem, err := cand.Mod(q)
		if err != nil {
			return nil, false, err
		}
		// p = cand - (rem - 1), so that p == 1 mod q.
		p := cand.Sub(rem).Add(one)
		if p.BitLen() != l {
			continue
		}
		if primality.ProbablyPrime(p, primality.KeyGenRounds, rand) {
			return p, true, nil
		}
	}
	return nil, false, nil
}

// generateCandidatePrime draws random candidates of exactly bits bits,
// with the top and bottom bits forced to 1, until one passes
// Miller–Rabin.
func generateCandidatePrime(rand randsrc.Source, bits int) (*bigint.BigInt, error) {
	for {
		cand, err := bigint.RandomBits(rand, bits)
		if err != nil {
			return nil, err
		}
		cand = cand.SetBit(bits-1, 1)
		cand = cand.SetBit(0, 1)
		if primality.ProbablyPrime(cand, primality.KeyGenRounds, rand) {
			return cand, nil
		}
	}
}

// findGenerator returns the first h in {2, 3, ...} for which
// g = h^((p-1)/q) mod p is not 1; g then has order exactly q in
// (Z/pZ)*, the subgroup DSA signs in.
func findGenerator(p, q *bigint.BigInt) (*bigint.BigInt, error) {
	one := bigint.One()
	e, err := p.Sub(one).Div(q)
	if err != nil {
		return nil, err
	}
	for h := bigint.FromUint64(2); ; h = h.Add(one) {
		g, err := h.ModPow(e, p)
		if err != nil {
			return nil, err
		}
		if !g.IsOne() {
			return g, nil
		}
	}
}

// Verify checks the structural invariants of a domain parameter triple
// independent of any key: (bitLen(p), bitLen(q)) is one of the
// standard FIPS 186-4 pairs; p and q are probably prime; q divides
// p-1; and g generates a subgroup of order q (1 < g < p, g^q == 1 mod
// p). It does not and cannot check that g's order is exactly q rather
// than a proper divisor of q — q is prime, so that can't happen.
func (params *Params) Verify() error {
	if params.P == nil || params.Q == nil || params.G == nil {
		return perr.New(perr.InvalidKey, "dsa: params has nil field")
	}

	key := [2]int{params.P.BitLen(), params.Q.BitLen()}
	if !allowedLN[key] {
		return perr.New(perr.InvalidKey, "dsa: p/q bit lengths are not a recognized (L,N) pair")
	}

	if !primality.ProbablyPrime(params.Q, primality.KeyGenRounds, randsrc.OS()) {
		return perr.New(perr.InvalidKey, "dsa: q is not prime")
	}
	if !primality.ProbablyPrime(params.P, primality.KeyGenRounds, randsrc.OS()) {
		return perr.New(perr.InvalidKey, "dsa: p is not prime")
	}

	one := bigint.One()
	pMinus1 := params.P.Sub(one)
	rem, err := pMinus1.Mod(params.Q)
	if err != nil {
		return perr.New(perr.InvalidKey, "dsa: unable to reduce p-1 mod q")
	}
	if !rem.IsZero() {
		return perr.New(perr.InvalidKey, "dsa: q does not divide p-1")
	}

	if params.G.Cmp(one) <= 0 || params.G.Cmp(params.P) >= 0 {
		return perr.New(perr.InvalidKey, "dsa: g must satisfy 1 < g < p")
	}
	gq, err := params.G.ModPow(params.Q, params.P)
	if err != nil {
		return perr.New(perr.InvalidKey, "dsa: unable to compute g^q mod p")
	}
	if !gq.IsOne() {
		return perr.New(perr.InvalidKey, "dsa: g^q != 1 mod p")
	}
	return nil
}
