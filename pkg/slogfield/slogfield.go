// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides typed constructors for the slog attributes
// logged by pipelines and their collaborators.
package slogfield

import (
	"log/slog"
	"time"
)

// Any returns an slog.Attr for the supplied value.
func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Bool returns an slog.Attr for a bool.
func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

// Duration returns an slog.Attr for a time.Duration.
func Duration(key string, d time.Duration) slog.Attr {
	return slog.Duration(key, d)
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Errors returns an slog.Attr holding the message of every error, in order.
// Nil errors are skipped.
func Errors[E error](key string, errs []E) slog.Attr {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		var e error = err
		if e == nil {
			continue
		}
		msgs = append(msgs, e.Error())
	}
	return slog.Any(key, msgs)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Strings returns an slog.Attr for a slice of strings.
func Strings(key string, values []string) slog.Attr {
	return slog.Any(key, values)
}

// Int returns an slog.Attr for a int.
func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Ints returns an slog.Attr for a slice of ints.
func Ints(key string, ns []int) slog.Attr {
	return slog.Any(key, ns)
}
