// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"io"
	"mime"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/ugorji/go/codec"
)

// JSONMediaType is the MIME type of every representation.
const JSONMediaType = "application/json"

// JSONHandle returns a codec handle for the wire format.  Maps are
// written with sorted keys, and untyped objects decode as
// map[string]interface{}.
func JSONHandle() *codec.JsonHandle {
	json := &codec.JsonHandle{}
	json.Canonical = true
	json.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return json
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		// We could also consider http.DetectContentType()
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "text/json", JSONMediaType:
		decoder := codec.NewDecoder(r, JSONHandle())
		return decoder.Decode(out)
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}
}

// Encode writes v to w as JSON.
func Encode(w io.Writer, v interface{}) error {
	encoder := codec.NewEncoder(w, JSONHandle())
	return encoder.Encode(v)
}

// EncodeBytes returns the JSON encoding of v.
func EncodeBytes(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := Encode(&buf, v)
	return buf.Bytes(), err
}

// DecodeMap fills in a structure from a generic map, such as a
// request body decoded without a specific type.  Scalars are
// converted loosely, so a numeric list_id becomes a string.  Unknown
// keys are ignored.
func DecodeMap(in map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
