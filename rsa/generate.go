package rsa

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/perr"
	"github.com/hxlabs/pkcrypto/internal/pklog"
	"github.com/hxlabs/pkcrypto/primality"
	"github.com/hxlabs/pkcrypto/randsrc"
)

// GenerateKey generates a new RSA private key of the given modulus
// size. bits must be one of {512, 1024, 2048, 4096, 8192}; any other
// value fails with InvalidParameter. The default public exponent is
// 65537 (override with WithPublicExponent).
func GenerateKey(rand randsrc.Source, bits int, opts ...Option) (*PrivateKey, error) {
	if !allowedBits[bits] {
		return nil, perr.New(perr.InvalidParameter, "rsa: unsupported modulus size")
	}
	cfg := newConfig(opts...)

	e := bigint.FromUint64(cfg.pubExp)
	if e.Cmp(bigint.FromUint64(3)) < 0 || e.BitLen() > maxExpBits || !e.IsOdd() {
		return nil, perr.New(perr.InvalidParameter, "rsa: invalid public exponent")
	}

	pBits := (bits + 1) / 2
	qBits := bits / 2
	minDiff := bigint.One().Lsh(bits/2 - 100)
	one := bigint.One()

	for attempt := 0; ; attempt++ {
		cfg.logger.Debug("rsa key generation attempt", pklog.Int("attempt", attempt), pklog.Int("bits", bits))

		p, err := generatePrime(rand, pBits, e)
		if err != nil {
			return nil, err
		}
		q, err := generatePrime(rand, qBits, e)
		if err != nil {
			return nil, err
		}

		if p.Equal(q) {
			continue
		}
		if p.Sub(q).Abs().Cmp(minDiff) <= 0 {
			continue
		}

		n := p.Mul(q)
		if n.BitLen() != bits {
			continue
		}

		pMinus1 := p.Sub(one)
		qMinus1 := q.Sub(one)
		lambda, err := lcm(pMinus1, qMinus1)
		if err != nil {
			return nil, err
		}
		d, err := e.ModInverse(lambda)
		if err != nil {
			// gcd(e, p-1) = gcd(e, q-1) = 1 was already checked for each
			// prime individually, so gcd(e, lambda) = 1 should always
			// hold; retry defensively rather than fail the caller.
			continue
		}
		dp, err := d.Mod(pMinus1)
		if err != nil {
			return nil, err
		}
		dq, err := d.Mod(qMinus1)
		if err != nil {
			return nil, err
		}
		qi, err := q.ModInverse(p)
		if err != nil {
			continue
		}

		cfg.logger.Info("rsa key generated", pklog.Int("bits", bits), pklog.Int("attempts", attempt+1))
		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: e},
			D:         d,
			P:         p,
			Q:         q,
			Dp:        dp,
			Dq:        dq,
			Qi:        qi,
		}, nil
	}
}

// generatePrime draws random candidates of exactly bits bits, with the
// top and bottom bits forced to 1, until one passes Miller–Rabin and
// gcd(e, candidate-1) = 1.
func generatePrime(rand randsrc.Source, bits int, e *bigint.BigInt) (*bigint.BigInt, error) {
	one := bigint.One()
	for {
		cand, err := bigint.RandomBits(rand, bits)
		if err != nil {
			return nil, err
		}
		cand = cand.SetBit(bits-1, 1)
		cand = cand.SetBit(0, 1)

		if !primality.ProbablyPrime(cand, primality.KeyGenRounds, rand) {
			continue
		}
		if !bigint.GCD(e, cand.Sub(one)).IsOne() {
			continue
		}
		return cand, nil
	}
}
