// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config merges configuration from several sources into a single
// nested key value store.
//
// Sources are applied in order and later sources override earlier ones:
//
//	m, err := config.Read(
//		config.FromFile(os.DirFS("."), "config.yaml"),
//		config.FromEnv("COMPOSE"),
//	)
//
// Values are retrieved with [Manager.Lookup] and [Manager.Int] or decoded
// into a struct with [Manager.Unmarshal].
package config

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/z5labs/compose/config/key"

	"github.com/go-viper/mapstructure/v2"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager provides read access to the merged config values.
type Manager struct {
	store Map
}

// ReadError wraps a failure of an individual [Source].
type ReadError struct {
	Index int
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read config source %d: %s", e.Index, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ReadError) Unwrap() error {
	return e.Cause
}

// Read applies every source, in order, to a fresh store.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for i, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, ReadError{Index: i, Cause: err}
		}
	}
	return &Manager{store: store}, nil
}

// Lookup returns the raw value stored at the dotted path, e.g. "b.x".
func (m *Manager) Lookup(path string) (any, bool) {
	chain := key.Path(path)
	if len(chain) == 0 {
		return nil, false
	}

	var cur any = map[string]any(m.store)
	for _, k := range chain {
		sub, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = sub[k.Key()]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// KeyNotFoundError occurs when no value is stored at the requested path.
type KeyNotFoundError struct {
	Key string
}

// Error implements the [builtin.error] interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("config key not found: %s", e.Key)
}

// Int returns the value at path as an int. Numbers decoded from JSON, YAML
// or HCL as well as numeric strings from the environment are accepted.
func (m *Manager) Int(path string) (int, error) {
	v, ok := m.Lookup(path)
	if !ok {
		return 0, KeyNotFoundError{Key: path}
	}

	var n int
	err := mapstructure.WeakDecode(v, &n)
	if err != nil {
		return 0, TypeCoercionError{
			from:  reflect.ValueOf(v),
			to:    reflect.ValueOf(n),
			Cause: err,
		}
	}
	return n, nil
}

// Unmarshal decodes the whole store into v using the "config" struct tag.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(m.store))
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", typeName(e.from), typeName(e.to), e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if errors.Is(err, errInvalidDecodeCondition) {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int:
			return time.Duration(int64(data.(int))), nil
		case reflect.Float64:
			return time.Duration(int64(data.(float64))), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
