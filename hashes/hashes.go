// Package hashes is the opaque hash collaborator the RSA engine
// depends on (the DSA engine takes a pre-hashed z and does not use it): an ID, a digest size, a Sum function, and (for
// PKCS#1 v1.5) the DigestInfo ASN.1 prefix from RFC 3447 §9.2 that goes
// in front of the digest inside the encoded message.
package hashes

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Hash is the opaque hash-function interface every RSA signing and
// verification path treats as a black box.
type Hash interface {
	// ID names the algorithm, e.g. "SHA-256".
	ID() string
	// Size is the digest length in bytes.
	Size() int
	// Sum returns the digest of msg.
	Sum(msg []byte) []byte
	// oidDER returns the RFC 3447 §9.2 DigestInfo prefix to place ahead
	// of the digest inside a PKCS#1 v1.5 encoded message. Empty for
	// algorithms (MD5SHA1) that carry no DigestInfo wrapper.
	oidDER() []byte
}

type fixedHash struct {
	id     string
	size   int
	prefix []byte
	sum    func([]byte) []byte
}

func (h fixedHash) ID() string       { return h.id }
func (h fixedHash) Size() int        { return h.size }
func (h fixedHash) Sum(msg []byte) []byte { return h.sum(msg) }
func (h fixedHash) oidDER() []byte   { return h.prefix }

// OIDDER exposes the DigestInfo prefix for a Hash without widening the
// Hash interface itself: the rsa package, which needs it, imports this
// function directly rather than relying on an unexported method.
func OIDDER(h Hash) []byte { return h.oidDER() }

var (
	// MD5 is kept for interoperability with legacy PKCS#1 v1.5 material;
	// it is not suitable for new signatures.
	MD5 Hash = fixedHash{
		id:     "MD5",
		size:   md5.Size,
		prefix: mustHex("3020300c06082a864886f70d020505000410"),
		sum:    func(b []byte) []byte { s := md5.Sum(b); return s[:] },
	}
	SHA1 Hash = fixedHash{
		id:     "SHA-1",
		size:   sha1.Size,
		prefix: mustHex("3021300906052b0e03021a05000414"),
		sum:    func(b []byte) []byte { s := sha1.Sum(b); return s[:] },
	}
	SHA224 Hash = fixedHash{
		id:     "SHA-224",
		size:   sha256.Size224,
		prefix: mustHex("302d300d06096086480165030402040500041c"),
		sum:    func(b []byte) []byte { s := sha256.Sum224(b); return s[:] },
	}
	SHA256 Hash = fixedHash{
		id:     "SHA-256",
		size:   sha256.Size,
		prefix: mustHex("3031300d060960864801650304020105000420"),
		sum:    func(b []byte) []byte { s := sha256.Sum256(b); return s[:] },
	}
	SHA384 Hash = fixedHash{
		id:     "SHA-384",
		size:   sha512.Size384,
		prefix: mustHex("3041300d060960864801650304020205000430"),
		sum:    func(b []byte) []byte { s := sha512.Sum384(b); return s[:] },
	}
	SHA512 Hash = fixedHash{
		id:     "SHA-512",
		size:   sha512.Size,
		prefix: mustHex("3051300d060960864801650304020305000440"),
		sum:    func(b []byte) []byte { s := sha512.Sum512(b); return s[:] },
	}
	// RIPEMD160 exists for interoperability with the DSA/PKCS#1
	// material some ecosystems (Bitcoin-adjacent tooling, older PGP)
	// still produce.
	RIPEMD160 Hash = fixedHash{
		id:     "RIPEMD160",
		size:   ripemd160.Size,
		prefix: mustHex("3021300906052b2403020105000414"),
		sum: func(b []byte) []byte {
			h := ripemd160.New()
			h.Write(b)
			return h.Sum(nil)
		},
	}
	// SHA3_256 supports newer PKCS#1 v1.5 material built against
	// FIPS 202 digests; its DigestInfo prefix differs from SHA-256's
	// only in the OID's final byte (08 rather than 01).
	SHA3_256 Hash = fixedHash{
		id:     "SHA3-256",
		size:   32,
		prefix: mustHex("3031300d060960864801650304020805000420"),
		sum: func(b []byte) []byte {
			s := sha3.Sum256(b)
			return s[:]
		},
	}
	// MD5SHA1 is the bare 36-byte MD5||SHA1 concatenation TLS 1.1 and
	// earlier used for RSA signatures; it carries no DigestInfo prefix.
	MD5SHA1 Hash = fixedHash{
		id:     "MD5SHA1",
		size:   md5.Size + sha1.Size,
		prefix: nil,
		sum: func(b []byte) []byte {
			m := md5.Sum(b)
			s := sha1.Sum(b)
			return append(m[:], s[:]...)
		},
	}
)

func mustHex(s string) []byte {
	out := make([]byte, len(s)/2)
	for i := range out {
		hi := hexNibble(s[i*2])
		lo := hexNibble(s[i*2+1])
		out[i] = hi<<4 | lo
	}
	return out
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		panic("hashes: invalid hex digit in literal DigestInfo prefix")
	}
}
