// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"

	"github.com/z5labs/compose/config/key"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which will apply its config from the
// environment variables starting with prefix followed by an underscore.
//
// The remainder of the variable name is lower cased and split on double
// underscores into a key chain, so with prefix "COMPOSE" the variable
// COMPOSE_B__X=3 sets "b.x" to "3". An empty prefix selects every variable.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, ok := src.trimPrefix(k)
		if !ok {
			continue
		}

		chain := make(key.Chain, 0, 1)
		for _, part := range strings.Split(name, "__") {
			if part == "" {
				continue
			}
			chain = append(chain, key.Name(strings.ToLower(part)))
		}
		if len(chain) == 0 {
			continue
		}

		err := store.Set(chain, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (src Env) trimPrefix(name string) (string, bool) {
	if src.prefix == "" {
		return name, true
	}
	return strings.CutPrefix(name, src.prefix+"_")
}
