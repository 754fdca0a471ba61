// Package b64url implements the URL-safe base64 codec (RFC 4648 §5)
// used by pkjson to serialize key fields: table A–Z a–z 0–9 - _, no
// padding emitted, optional padding accepted on decode, any character
// outside the table or internal whitespace is rejected.
package b64url

import "github.com/hxlabs/pkcrypto/internal/perr"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i, c := range alphabet {
		decodeTable[byte(c)] = int8(i)
	}
}

// Encode returns the unpadded URL-safe base64 encoding of data.
func Encode(data []byte) string {
	n := len(data)
	out := make([]byte, 0, (n+2)/3*4)
	for i := 0; i < n; i += 3 {
		var b0, b1, b2 byte
		b0 = data[i]
		rem := n - i
		if rem >= 2 {
			b1 = data[i+1]
		}
		if rem >= 3 {
			b2 = data[i+2]
		}
		out = append(out, alphabet[b0>>2])
		out = append(out, alphabet[(b0&0x03)<<4|(b1>>4)])
		if rem >= 2 {
			out = append(out, alphabet[(b1&0x0F)<<2|(b2>>6)])
		}
		if rem >= 3 {
			out = append(out, alphabet[b2&0x3F])
		}
	}
	return string(out)
}

// Decode inverts Encode. It accepts input with or without "=" padding
// and rejects any byte outside the URL-safe alphabet (including "+",
// "/", and whitespace).
func Decode(s string) ([]byte, error) {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	n := len(s)
	if n%4 == 1 {
		return nil, perr.New(perr.DecodeError, "b64url: invalid input length")
	}
	out := make([]byte, 0, n*3/4+3)
	var buf uint32
	var bits int
	for i := 0; i < n; i++ {
		v := decodeTable[s[i]]
		if v < 0 {
			return nil, perr.New(perr.DecodeError, "b64url: invalid character")
		}
		buf = buf<<6 | uint32(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>uint(bits)))
		}
	}
	return out, nil
}
