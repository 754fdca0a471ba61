// Package pkjson implements the {kty, ext, <fields>} JSON envelope
// spec.md §6 requires for key serialization: each big-integer field is
// URL-safe base64 of its canonical trimmed big-endian bytes, alongside
// a "kty" discriminator ("RSA" or "DSA") and an "ext": true marker.
package pkjson

import (
	"encoding/json"

	"github.com/hxlabs/pkcrypto/b64url"
	"github.com/hxlabs/pkcrypto/bigint"
	"github.com/hxlabs/pkcrypto/internal/perr"
)

// Field pairs a JSON object key with the BigInt value it encodes.
type Field struct {
	Name  string
	Value *bigint.BigInt
}

// Marshal builds the canonical JSON envelope for a key of the given
// type ("RSA" or "DSA") and fields. The object is built as a map, so
// encoding/json emits its keys in sorted order, not in the order given.
func Marshal(kty string, fields ...Field) ([]byte, error) {
	obj := make(map[string]any, len(fields)+2)
	obj["kty"] = kty
	obj["ext"] = true
	for _, f := range fields {
		obj[f.Name] = b64url.Encode(f.Value.ToBytesBE())
	}
	return json.Marshal(obj)
}

// Unmarshal parses a pkjson envelope, checks its "kty" matches want,
// and decodes the named fields into BigInts. Every name in names must
// be present; extra object keys are ignored.
func Unmarshal(data []byte, want string, names ...string) (map[string]*bigint.BigInt, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, perr.Wrap(perr.DecodeError, "pkjson: malformed JSON object", err)
	}

	var kty string
	if ktyRaw, ok := raw["kty"]; ok {
		if err := json.Unmarshal(ktyRaw, &kty); err != nil {
			return nil, perr.Wrap(perr.DecodeError, "pkjson: malformed kty field", err)
		}
	}
	if kty != want {
		return nil, perr.New(perr.DecodeError, "pkjson: unexpected kty, want "+want)
	}

	out := make(map[string]*bigint.BigInt, len(names))
	for _, name := range names {
		enc, ok := raw[name]
		if !ok {
			return nil, perr.New(perr.DecodeError, "pkjson: missing field "+name)
		}
		var s string
		if err := json.Unmarshal(enc, &s); err != nil {
			return nil, perr.Wrap(perr.DecodeError, "pkjson: malformed field "+name, err)
		}
		b, err := b64url.Decode(s)
		if err != nil {
			return nil, perr.Wrap(perr.DecodeError, "pkjson: malformed base64 in field "+name, err)
		}
		out[name] = bigint.FromBytesBE(b)
	}
	return out, nil
}
