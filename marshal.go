package bigint

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}

	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts base 10
// text.
func (z *Int) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text), 10)

	return err
}

// MarshalJSON implements json.Marshaler. The value is a JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}

	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON number or a
// string holding a base 10 number. null leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}

	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}

	if bytes.ContainsAny(text, "_") {
		return ParseError.New("invalid JSON integer: %q", text)
	}

	return z.UnmarshalText(text)
}

// EncodeMsgpack implements msgpack.CustomEncoder. The value is a bin holding
// the big-endian two's complement bytes.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if x == nil {
		return enc.EncodeNil()
	}

	return enc.EncodeBytes(x.SignedBytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return Error.Wrap(err)
	}

	z.Set(FromSignedBytes(b))

	return nil
}
