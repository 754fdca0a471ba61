package bigint

import "github.com/hxlabs/pkcrypto/internal/perr"

// quoRemAbs computes the magnitudes q, r such that a = q*b + r with
// 0 <= r < b, for nonzero b. It is a straightforward bit-at-a-time
// long division: correct and simple to verify, not tuned for speed.
func quoRemAbs(a, b []Word) (q, r []Word) {
	na := bitLenAbs(a)
	nb := bitLenAbs(b)
	if na < nb {
		return nil, append([]Word{}, a...)
	}
	q = make([]Word, na/wordBits+1)
	var rem []Word
	for i := na - 1; i >= 0; i-- {
		rem = shlAbs(norm(rem), 1)
		if len(rem) == 0 {
			rem = make([]Word, 1)
		}
		rem[0] |= bitAt(a, i)
		if cmpAbs(norm(rem), b) >= 0 {
			rem = subAbs(padTo(rem, len(b)), b)
			setBit(q, i)
		}
	}
	return norm(q), norm(rem)
}

func bitAt(a []Word, i int) Word {
	idx := i / wordBits
	if idx >= len(a) {
		return 0
	}
	return (a[idx] >> uint(i%wordBits)) & 1
}

func setBit(a []Word, i int) {
	idx := i / wordBits
	if idx >= len(a) {
		return
	}
	a[idx] |= Word(1) << uint(i%wordBits)
}

func padTo(a []Word, n int) []Word {
	if len(a) >= n {
		return a
	}
	out := make([]Word, n)
	copy(out, a)
	return out
}

// QuoRem returns the truncated (toward zero) quotient and remainder of
// x/y: x = q*y + r, with r having the same sign as x and |r| < |y|.
func (x *BigInt) QuoRem(y *BigInt) (q, r *BigInt, err error) {
	if y.IsZero() {
		return nil, nil, perr.New(perr.InvalidParameter, "bigint: division by zero")
	}
	qa, ra := quoRemAbs(x.limbs, y.limbs)
	q = make_(x.neg != y.neg, qa)
	r = make_(x.neg, ra)
	return q, r, nil
}

// DivMod returns the Euclidean quotient and remainder of x/y: x = q*y +
// r with 0 <= r < |y|. This is the modulus convention every other
// package in this module relies on (CRT reconstruction, modular
// reduction, candidate search arithmetic all assume a nonnegative
// remainder).
func (x *BigInt) DivMod(y *BigInt) (q, r *BigInt, err error) {
	q, r, err = x.QuoRem(y)
	if err != nil {
		return nil, nil, err
	}
	if r.neg {
		if y.neg {
			q = q.Add(One())
			r = r.Sub(y)
		} else {
			q = q.Sub(One())
			r = r.Add(y)
		}
	}
	return q, r, nil
}

// Div returns the Euclidean quotient of x/y (see DivMod).
func (x *BigInt) Div(y *BigInt) (*BigInt, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the Euclidean remainder of x/y, always in [0, |y|) for
// y != 0.
func (x *BigInt) Mod(y *BigInt) (*BigInt, error) {
	_, r, err := x.DivMod(y)
	return r, err
}
