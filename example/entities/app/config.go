// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"fmt"
	"strconv"

	"github.com/z5labs/compose/config"
	"github.com/z5labs/compose/example/entities/domaina"
	"github.com/z5labs/compose/example/entities/domainb"
)

// Config is the shape of the configuration read by [NewConstants] and
// [NewRepository], e.g. in YAML:
//
//	constants:
//	  a: 13
//	  b:
//	    b: 2
//	entities:
//	  "26": 5
type Config struct {
	Constants struct {
		B map[string]int `config:"b"`
	} `config:"constants"`

	// Entities maps entity ids to their data.
	Entities map[string]int `config:"entities"`
}

type constantsConfig struct {
	a  int
	bs map[string]int
}

// NewConstants reads constants.a and the constants.b table.
func NewConstants(m *config.Manager) (domaina.Constants, error) {
	a, err := m.Int("constants.a")
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = m.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return constantsConfig{a: a, bs: cfg.Constants.B}, nil
}

func (c constantsConfig) A() int {
	return c.a
}

func (c constantsConfig) B(name string) (int, bool) {
	v, ok := c.bs[name]
	return v, ok
}

type repository map[int]domainb.Entity

// InvalidEntityIDError occurs when an entities key is not an integer.
type InvalidEntityIDError struct {
	ID    string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidEntityIDError) Error() string {
	return fmt.Sprintf("invalid entity id %q: %s", e.ID, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidEntityIDError) Unwrap() error {
	return e.Cause
}

// NewRepository reads the entities table.
func NewRepository(m *config.Manager) (domainb.Repository, error) {
	var cfg Config
	err := m.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	repo := make(repository, len(cfg.Entities))
	for k, data := range cfg.Entities {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, InvalidEntityIDError{ID: k, Cause: err}
		}
		repo[id] = domainb.Entity{ID: id, Data: data}
	}
	return repo, nil
}

func (r repository) FindByID(id int) (domainb.Entity, bool) {
	e, ok := r[id]
	return e, ok
}
