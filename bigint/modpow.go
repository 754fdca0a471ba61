package bigint

import "github.com/hxlabs/pkcrypto/internal/perr"

// MontCtx caches the fixed quantities a Montgomery exponentiation over
// an odd modulus m needs: m itself, R^2 mod m (to move values into
// Montgomery form), and -m^-1 mod 2^32 (the REDC multiplier).
type MontCtx struct {
	m      *BigInt
	nLimbs int
	mPrime Word
	rr     *BigInt
}

// montWordInverse returns -m0^-1 mod 2^32 for an odd m0, via five
// Newton iterations over the 2-adic inverse (each iteration doubles
// the number of correct low bits: 1, 2, 4, 8, 16, 32).
func montWordInverse(m0 Word) Word {
	y := Word(1)
	for i := 0; i < 5; i++ {
		y = y * (2 - m0*y)
	}
	return -y
}

// NewMontCtx builds a Montgomery context for modulus m, which must be
// a positive odd integer.
func NewMontCtx(m *BigInt) (*MontCtx, error) {
	if m.neg || m.IsZero() || !m.IsOdd() {
		return nil, perr.New(perr.InvalidParameter, "bigint: Montgomery modulus must be positive and odd")
	}
	nLimbs := len(m.limbs)
	ctx := &MontCtx{
		m:      m,
		nLimbs: nLimbs,
		mPrime: montWordInverse(m.limbs[0]),
	}
	// R mod m, then squared mod m, avoids materializing 2^(2*nLimbs*32)
	// directly.
	rMinusOne := One().Lsh(nLimbs * wordBits)
	rModM, err := rMinusOne.Mod(m)
	if err != nil {
		return nil, err
	}
	rr, err := rModM.Mul(rModM).Mod(m)
	if err != nil {
		return nil, err
	}
	ctx.rr = rr
	return ctx, nil
}

// redc computes t*R^-1 mod m for t with at most 2*nLimbs limbs
// (t < m*R), via schoolbook Montgomery reduction.
func (c *MontCtx) redc(t []Word) []Word {
	t = append(make([]Word, 0, 2*c.nLimbs+1), t...)
	for len(t) < 2*c.nLimbs+1 {
		t = append(t, 0)
	}
	for i := 0; i < c.nLimbs; i++ {
		u := t[i] * c.mPrime
		var carry uint64
		for j := 0; j < c.nLimbs; j++ {
			var mj Word
			if j < len(c.m.limbs) {
				mj = c.m.limbs[j]
			}
			s := uint64(u)*uint64(mj) + uint64(t[i+j]) + carry
			t[i+j] = Word(s)
			carry = s >> wordBits
		}
		k := i + c.nLimbs
		for carry != 0 {
			s := uint64(t[k]) + carry
			t[k] = Word(s)
			carry = s >> wordBits
			k++
		}
	}
	result := append([]Word{}, t[c.nLimbs:]...)
	result = norm(result)
	if cmpAbs(result, c.m.limbs) >= 0 {
		result = subAbs(padTo(result, len(c.m.limbs)), c.m.limbs)
	}
	return norm(result)
}

// montMul computes a*b*R^-1 mod m, i.e. Montgomery multiplication.
func (c *MontCtx) montMul(a, b *BigInt) *BigInt {
	return &BigInt{limbs: c.redc(mulAbs(a.limbs, b.limbs))}
}

// ToMont converts x (an ordinary nonnegative integer in [0, m)) to its
// Montgomery representation x*R mod m.
func (c *MontCtx) ToMont(x *BigInt) *BigInt {
	return c.montMul(x, c.rr)
}

// FromMont converts a Montgomery-form value back to an ordinary
// integer.
func (c *MontCtx) FromMont(x *BigInt) *BigInt {
	return c.montMul(x, One())
}

// Pow computes base^exp mod m using 4-bit windowed Montgomery
// exponentiation. It is not constant-time: the number of squarings
// and the window lookups both depend on exp's value, so this must only
// be used where exp is public (RSA/DSA verify, DSA parameter search,
// public-key operations).
func (c *MontCtx) Pow(base, exp *BigInt) *BigInt {
	b, _ := base.Mod(c.m)
	bm := c.ToMont(b)

	const windowBits = 4
	const tableSize = 1 << windowBits
	table := make([]*BigInt, tableSize)
	table[0] = c.ToMont(One())
	for i := 1; i < tableSize; i++ {
		table[i] = c.montMul(table[i-1], bm)
	}

	result := table[0]
	bits := exp.BitLen()
	if bits == 0 {
		return c.FromMont(result)
	}
	for i := (bits - 1) / windowBits * windowBits; i >= 0; i -= windowBits {
		for k := 0; k < windowBits; k++ {
			result = c.montMul(result, result)
		}
		w := windowAt(exp, i, windowBits)
		if w != 0 {
			result = c.montMul(result, table[w])
		}
	}
	return c.FromMont(result)
}

func windowAt(x *BigInt, i, width int) int {
	v := 0
	for k := width - 1; k >= 0; k-- {
		v <<= 1
		v |= int(x.Bit(i + k))
	}
	return v
}

// ModPow computes x^exp mod m. When m is odd it dispatches to a
// Montgomery context; when m is even it falls back to plain binary
// (square-and-multiply) exponentiation via repeated Mod. This path is
// non-constant-time and must not be used for RSA private-key
// operations — see ModPowConstTime.
func (x *BigInt) ModPow(exp, m *BigInt) (*BigInt, error) {
	if m.IsZero() {
		return nil, perr.New(perr.InvalidParameter, "bigint: modulus must be nonzero")
	}
	if exp.IsNeg() {
		return nil, perr.New(perr.InvalidParameter, "bigint: negative exponent not supported")
	}
	if m.IsOdd() {
		ctx, err := NewMontCtx(m)
		if err != nil {
			return nil, err
		}
		return ctx.Pow(x, exp), nil
	}
	base, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	result := One()
	bits := exp.BitLen()
	for i := bits - 1; i >= 0; i-- {
		result, err = result.Mul(result).Mod(m)
		if err != nil {
			return nil, err
		}
		if exp.Bit(i) == 1 {
			result, err = result.Mul(base).Mod(m)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// ModPowConstTime computes x^exp mod m (m odd) with a fixed number of
// Montgomery squarings and multiplications determined solely by
// expBitLen, never by the actual bit pattern of exp: every iteration
// performs a square and a multiply-by-either-one-or-base, selecting the
// real result with a constant-time word mask rather than a branch. It
// is the only exponentiation primitive the RSA engine uses for
// operations that touch d, p, q, dp, dq, or qi.
func (x *BigInt) ModPowConstTime(exp, m *BigInt, expBitLen int) (*BigInt, error) {
	ctx, err := NewMontCtx(m)
	if err != nil {
		return nil, err
	}
	base, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	bm := ctx.ToMont(base)
	one := ctx.ToMont(One())
	result := one
	for i := expBitLen - 1; i >= 0; i-- {
		result = ctx.montMul(result, result)
		cand := ctx.montMul(result, bm)
		bit := exp.Bit(i)
		result = selectMont(bit, cand, result)
	}
	return ctx.FromMont(result), nil
}

// selectMont returns cand if bit==1, else keep, without branching on
// bit: every limb position is computed for both operands and combined
// through a constant arithmetic mask.
func selectMont(bit uint, cand, keep *BigInt) *BigInt {
	mask := Word(0) - Word(bit&1) // bit==1 -> all-ones; bit==0 -> all-zeros
	n := len(cand.limbs)
	if len(keep.limbs) > n {
		n = len(keep.limbs)
	}
	out := make([]Word, n)
	for i := 0; i < n; i++ {
		var cv, kv Word
		if i < len(cand.limbs) {
			cv = cand.limbs[i]
		}
		if i < len(keep.limbs) {
			kv = keep.limbs[i]
		}
		out[i] = (cv & mask) | (kv &^ mask)
	}
	return &BigInt{limbs: norm(out)}
}
