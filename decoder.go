package dirtyjson

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal cleans data and decodes the result into v with encoding/json
// semantics.
func Unmarshal(data []byte, v interface{}) error {
	out, err := CleanAccelerated(data)
	if err != nil {
		return err
	}
	return jsonAPI.Unmarshal(out, v)
}

// IsStrictJSON reports whether data is a single strict JSON value with
// nothing but whitespace after it. data is not cleaned first.
func IsStrictJSON(data []byte) bool {
	var v interface{}
	return jsonAPI.Unmarshal(data, &v) == nil
}

// Decoder reads a dirty JSON document from a stream.
type Decoder struct {
	r      io.Reader
	scalar bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// UseScalar switches the decoder to the single-pass tokenizer.
func (d *Decoder) UseScalar() {
	d.scalar = true
}

// Decode reads the rest of the stream, cleans it and decodes it into v. It
// returns io.EOF when the stream holds no value.
func (d *Decoder) Decode(v interface{}) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}

	clean := CleanAccelerated
	if d.scalar {
		clean = Clean
	}
	out, err := clean(data)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return io.EOF
	}
	return jsonAPI.Unmarshal(out, v)
}
