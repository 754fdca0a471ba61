package bigint

import "github.com/hxlabs/pkcrypto/randsrc"

// Random samples a uniformly distributed value in [1, lt-1] using rnd
// as the entropy source: it draws ceil(bitLen(lt)/8) bytes, interprets
// them big-endian, and rejects-and-resamples until the draw lands in
// range. No modular-bias shortcut is taken. The loop is unbounded in
// theory but runs in expected O(1) iterations for any lt with more
// than a handful of values.
func Random(rnd randsrc.Source, lt *BigInt) (*BigInt, error) {
	nbytes := (lt.BitLen() + 7) / 8
	if nbytes == 0 {
		nbytes = 1
	}
	buf := make([]byte, nbytes)
	for {
		if err := rnd.Fill(buf); err != nil {
			return nil, err
		}
		v := FromBytesBE(buf)
		if v.IsZero() {
			continue
		}
		if v.Cmp(lt) >= 0 {
			continue
		}
		return v, nil
	}
}

// RandomBits samples a uniformly distributed nonnegative integer with
// exactly bits random bits, i.e. a draw from [0, 2^bits - 1] with no
// rejection. Used by primality/DSA candidate search, which impose
// their own top/bottom-bit fixups after sampling.
func RandomBits(rnd randsrc.Source, bits int) (*BigInt, error) {
	nbytes := (bits + 7) / 8
	buf := make([]byte, nbytes)
	if err := rnd.Fill(buf); err != nil {
		return nil, err
	}
	v := FromBytesBE(buf)
	extra := nbytes*8 - bits
	if extra > 0 {
		v = v.Rsh(extra)
	}
	return v, nil
}
