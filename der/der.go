// Package der implements the minimal ASN.1 DER sub-grammar the RSA and
// DSA key types need (C3): definite-length INTEGER and SEQUENCE only,
// not a general ASN.1 object model. Encoding always produces canonical
// DER; decoding rejects anything that is not: non-minimal lengths,
// trailing bytes, negative integers, non-minimal integer encodings,
// and wrong tags.
package der

import (
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/perr"
)

const (
	tagInteger  = 0x02
	tagSequence = 0x30
)

// encodeLength appends the DER definite-length header for n (short form
// for n<128, minimal long form otherwise) to dst.
func encodeLength(dst []byte, n int) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}
	var be []byte
	for v := n; v > 0; v >>= 8 {
		be = append([]byte{byte(v)}, be...)
	}
	dst = append(dst, byte(0x80|len(be)))
	return append(dst, be...)
}

// decodeLength reads a DER length header from the front of b, returning
// the decoded length and the number of header bytes consumed. It
// rejects the indefinite-length form and any non-minimal encoding
// (long form used where short form would do, or a leading zero byte in
// the long-form length).
func decodeLength(b []byte) (length, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, perr.New(perr.DecodeError, "der: truncated length")
	}
	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	numBytes := int(first &^ 0x80)
	if numBytes == 0 {
		return 0, 0, perr.New(perr.DecodeError, "der: indefinite length not supported")
	}
	if numBytes > 4 {
		return 0, 0, perr.New(perr.DecodeError, "der: length too large")
	}
	if len(b) < 1+numBytes {
		return 0, 0, perr.New(perr.DecodeError, "der: truncated length")
	}
	lenBytes := b[1 : 1+numBytes]
	if lenBytes[0] == 0 {
		return 0, 0, perr.New(perr.DecodeError, "der: non-minimal length encoding")
	}
	n := 0
	for _, by := range lenBytes {
		n = n<<8 | int(by)
	}
	if n < 0x80 {
		return 0, 0, perr.New(perr.DecodeError, "der: non-minimal length encoding")
	}
	return n, 1 + numBytes, nil
}

// readTLV reads one tag-length-value element from the front of b,
// returning the tag, the content bytes, and the number of bytes
// consumed (tag + length header + content).
func readTLV(b []byte) (tag byte, content []byte, consumed int, err error) {
	if len(b) == 0 {
		return 0, nil, 0, perr.New(perr.DecodeError, "der: truncated tag")
	}
	tag = b[0]
	length, lenConsumed, err := decodeLength(b[1:])
	if err != nil {
		return 0, nil, 0, err
	}
	start := 1 + lenConsumed
	if len(b) < start+length {
		return 0, nil, 0, perr.New(perr.DecodeError, "der: truncated content")
	}
	return tag, b[start : start+length], start + length, nil
}

// encodeInteger returns the DER encoding of the nonnegative integer x.
func encodeInteger(x *bigint.BigInt) []byte {
	content := x.ToBytesBE()
	if len(content) == 0 {
		content = []byte{0x00}
	} else if content[0]&0x80 != 0 {
		content = append([]byte{0x00}, content...)
	}
	out := []byte{tagInteger}
	out = encodeLength(out, len(content))
	return append(out, content...)
}

// decodeInteger parses one DER INTEGER element from the front of b,
// returning the value and the number of bytes consumed.
func decodeInteger(b []byte) (x *bigint.BigInt, consumed int, err error) {
	tag, content, consumed, err := readTLV(b)
	if err != nil {
		return nil, 0, err
	}
	if tag != tagInteger {
		return nil, 0, perr.New(perr.DecodeError, "der: expected INTEGER tag")
	}
	if len(content) == 0 {
		return nil, 0, perr.New(perr.DecodeError, "der: empty INTEGER content")
	}
	if content[0]&0x80 != 0 {
		return nil, 0, perr.New(perr.DecodeError, "der: negative integers not supported")
	}
	if content[0] == 0x00 {
		if len(content) == 1 {
			return bigint.Zero(), consumed, nil
		}
		if content[1]&0x80 == 0 {
			return nil, 0, perr.New(perr.DecodeError, "der: non-minimal INTEGER encoding")
		}
		return bigint.FromBytesBE(content[1:]), consumed, nil
	}
	return bigint.FromBytesBE(content), consumed, nil
}

// EncodeSequence returns the canonical DER encoding of a SEQUENCE whose
// elements are the given INTEGERs, in order.
func EncodeSequence(fields ...*bigint.BigInt) []byte {
	var body []byte
	for _, f := range fields {
		body = append(body, encodeInteger(f)...)
	}
	out := []byte{tagSequence}
	out = encodeLength(out, len(body))
	return append(out, body...)
}

// DecodeSequence parses a DER SEQUENCE of exactly n INTEGER elements.
// It fails if der contains anything other than a single well-formed
// SEQUENCE (no trailing bytes outside or inside it) or the element
// count does not match n exactly.
func DecodeSequence(der []byte, n int) ([]*bigint.BigInt, error) {
	tag, content, consumed, err := readTLV(der)
	if err != nil {
		return nil, err
	}
	if tag != tagSequence {
		return nil, perr.New(perr.DecodeError, "der: expected SEQUENCE tag")
	}
	if consumed != len(der) {
		return nil, perr.New(perr.DecodeError, "der: trailing bytes after SEQUENCE")
	}
	fields := make([]*bigint.BigInt, 0, n)
	rest := content
	for len(fields) < n {
		if len(rest) == 0 {
			return nil, perr.New(perr.DecodeError, "der: SEQUENCE has fewer elements than expected")
		}
		v, c, err := decodeInteger(rest)
		if err != nil {
			return nil, err
		}
		fields = append(fields, v)
		rest = rest[c:]
	}
	if len(rest) != 0 {
		return nil, perr.New(perr.DecodeError, "der: SEQUENCE has trailing elements")
	}
	return fields, nil
}

// EncodeVersionedSequence returns the DER encoding of a SEQUENCE whose
// first element is the INTEGER version, followed by fields.
func EncodeVersionedSequence(version int, fields ...*bigint.BigInt) []byte {
	all := make([]*bigint.BigInt, 0, len(fields)+1)
	all = append(all, bigint.FromInt64(int64(version)))
	all = append(all, fields...)
	return EncodeSequence(all...)
}

// DecodeVersionedSequence parses a SEQUENCE of a leading INTEGER
// version followed by exactly n further INTEGER fields, and checks the
// version is exactly 0 (the only version this codec emits or accepts).
func DecodeVersionedSequence(der []byte, n int) (fields []*bigint.BigInt, err error) {
	all, err := DecodeSequence(der, n+1)
	if err != nil {
		return nil, err
	}
	version := all[0]
	if !version.IsZero() {
		return nil, perr.New(perr.DecodeError, "der: unsupported key version")
	}
	return all[1:], nil
}
