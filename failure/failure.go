// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package failure defines the error taxonomy shared by every result and
// accumulator produced by domain logic.
package failure

import (
	"errors"
	"fmt"
)

// Kind is a coarse-grained classification of a domain failure.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindConstantUnavailable Kind = "constant_unavailable"
	KindValidationFailed    Kind = "validation_failed"
	KindWrapped             Kind = "wrapped"
)

// Sentinels for use with errors.Is. They only carry a Kind.
var (
	ErrNotFound            = Error{Kind: KindNotFound}
	ErrConstantUnavailable = Error{Kind: KindConstantUnavailable}
	ErrValidationFailed    = Error{Kind: KindValidationFailed}
	ErrWrapped             = Error{Kind: KindWrapped}
)

// Error is a domain failure. It is a plain value and safe to compare.
type Error struct {
	Kind    Kind
	Message string

	// Cause is only set for KindWrapped failures.
	Cause error
}

// Error implements the [builtin.error] interface.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a kind sentinel matching e or an identical
// [Error] value.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	if t.Message == "" && t.Cause == nil {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// NotFound reports a failed lookup by id or name.
func NotFound(format string, args ...any) Error {
	return Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConstantUnavailable reports that the named configuration value is missing.
func ConstantUnavailable(name string) Error {
	return Error{
		Kind:    KindConstantUnavailable,
		Message: "constant not available: " + name,
	}
}

// ValidationFailed reports a value failing a range, shape or format predicate.
func ValidationFailed(message string) Error {
	return Error{
		Kind:    KindValidationFailed,
		Message: message,
	}
}

// Wrap translates a collaborator error into the taxonomy. A nil err yields
// the zero Error. Errors which already are an [Error] are returned unchanged.
func Wrap(err error) Error {
	if err == nil {
		return Error{}
	}
	var fe Error
	if errors.As(err, &fe) {
		return fe
	}
	return Error{
		Kind:    KindWrapped,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsKind helps callers classify errors without depending on concrete types.
func IsKind(err error, kind Kind) bool {
	var fe Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
