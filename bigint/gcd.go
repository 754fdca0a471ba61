package bigint

import "github.com/hxlabs/pkcrypto/internal/perr"

// GCD returns gcd(|x|, |y|) via the binary (Stein's) algorithm: no
// division, only shifts, subtraction and comparison.
func GCD(x, y *BigInt) *BigInt {
	a := x.Abs()
	b := y.Abs()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	shift := 0
	for a.IsOdd() == false && b.IsOdd() == false {
		a = a.Rsh(1)
		b = b.Rsh(1)
		shift++
	}
	for !a.IsOdd() {
		a = a.Rsh(1)
	}
	for {
		for !b.IsOdd() {
			b = b.Rsh(1)
		}
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b = b.Sub(a)
		if b.IsZero() {
			break
		}
	}
	return a.Lsh(shift)
}

// ExtGCD returns (g, u, v) such that u*x + v*y = g = gcd(|x|, |y|),
// via the standard extended Euclidean recursion. It is not
// constant-time and must never be used on secret exponents (only
// ModInverse, built on the binary variant, is used on the RSA private
// path — see ModInverse).
func ExtGCD(x, y *BigInt) (g, u, v *BigInt) {
	if x.IsZero() {
		return y.Abs(), Zero(), signOne(y)
	}
	old_r, r := x.Abs(), y.Abs()
	old_s, s := One(), Zero()
	old_t, t := Zero(), One()
	for !r.IsZero() {
		q, _, _ := old_r.QuoRem(r)
		old_r, r = r, old_r.Sub(q.Mul(r))
		old_s, s = s, old_s.Sub(q.Mul(s))
		old_t, t = t, old_t.Sub(q.Mul(t))
	}
	if x.neg {
		old_s = old_s.Neg()
	}
	if y.neg {
		old_t = old_t.Neg()
	}
	return old_r, old_s, old_t
}

func signOne(y *BigInt) *BigInt {
	if y.neg {
		return FromInt64(-1)
	}
	return One()
}

var two = FromInt64(2)

// halfExact returns x/2, which must divide evenly.
func halfExact(x *BigInt) *BigInt {
	q, _, _ := x.QuoRem(two)
	return q
}

// extBinaryGCD implements the binary extended gcd algorithm (HAC
// Algorithm 14.61): given positive x, y, it returns a, b, v with
// a*x + b*y = v = gcd(x, y), using only shifts, add/sub and parity
// tests — no general division. Intermediate coefficients may go
// negative, hence the signed BigInt.
func extBinaryGCD(x, y *BigInt) (a, b, v *BigInt) {
	g := One()
	xx, yy := x, y
	for !xx.IsOdd() && !yy.IsOdd() {
		xx = halfExact(xx)
		yy = halfExact(yy)
		g = g.Mul(two)
	}
	u, w := xx, yy
	A, B, C, D := One(), Zero(), Zero(), One()
	for {
		for !u.IsOdd() {
			u = halfExact(u)
			if A.IsOdd() || B.IsOdd() {
				A = halfExact(A.Add(yy))
				B = halfExact(B.Sub(xx))
			} else {
				A = halfExact(A)
				B = halfExact(B)
			}
		}
		for !w.IsOdd() {
			w = halfExact(w)
			if C.IsOdd() || D.IsOdd() {
				C = halfExact(C.Add(yy))
				D = halfExact(D.Sub(xx))
			} else {
				C = halfExact(C)
				D = halfExact(D)
			}
		}
		if u.Cmp(w) >= 0 {
			u = u.Sub(w)
			A = A.Sub(C)
			B = B.Sub(D)
		} else {
			w = w.Sub(u)
			C = C.Sub(A)
			D = D.Sub(B)
		}
		if u.IsZero() {
			return C, D, g.Mul(w)
		}
	}
}

// ModInverse returns x^-1 mod m via the extended binary GCD, failing
// with InvalidKey if gcd(x, m) != 1 ("no inverse"). The result is
// always in [0, m).
func (x *BigInt) ModInverse(m *BigInt) (*BigInt, error) {
	xm, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	if xm.IsZero() {
		return nil, perr.New(perr.InvalidKey, "bigint: value has no modular inverse")
	}
	a, _, v := extBinaryGCD(xm, m.Abs())
	if !v.IsOne() {
		return nil, perr.New(perr.InvalidKey, "bigint: value has no modular inverse")
	}
	r, err := a.Mod(m)
	if err != nil {
		return nil, err
	}
	return r, nil
}
