// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/z5labs/compose/internal/try"

	"gopkg.in/yaml.v3"
)

// DecodeFunc turns raw config bytes into nested key/value pairs.
type DecodeFunc func([]byte) (map[string]any, error)

// Decoder is a Source which reads all of r, decodes it and applies the
// resulting tree. r is closed if it is an io.Closer.
type Decoder struct {
	format string
	r      io.Reader
	decode DecodeFunc
}

// NewDecoder returns a Decoder for the named format. Errors returned by
// decode are wrapped in a [DecodeError].
func NewDecoder(format string, r io.Reader, decode DecodeFunc) Decoder {
	return Decoder{
		format: format,
		r:      r,
		decode: decode,
	}
}

// FromJson returns a Decoder for JSON objects.
func FromJson(r io.Reader) Decoder {
	return NewDecoder("json", r, unmarshalWith(json.Unmarshal))
}

// FromYaml returns a Decoder for YAML mappings.
func FromYaml(r io.Reader) Decoder {
	return NewDecoder("yaml", r, unmarshalWith(yaml.Unmarshal))
}

func unmarshalWith(unmarshal func([]byte, any) error) DecodeFunc {
	return func(b []byte) (map[string]any, error) {
		m := make(map[string]any)
		err := unmarshal(b, &m)
		return m, err
	}
}

// DecodeError occurs if the content of a Decoder is not valid in its format.
type DecodeError struct {
	Format string
	Cause  error
}

// Error implements the [builtin.error] interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
func (src Decoder) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m, err := src.decode(b)
	if err != nil {
		return DecodeError{Format: src.format, Cause: err}
	}
	return Map(m).Apply(store)
}
