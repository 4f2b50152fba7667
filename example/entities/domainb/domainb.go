// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package domainb modifies entities found in a read only repository.
package domainb

import (
	"github.com/z5labs/compose"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/result"
)

// Entity is identified by ID. Its methods return modified copies.
type Entity struct {
	ID   int `json:"id"`
	Data int `json:"data"`
}

// Double returns a copy of e with its data doubled.
func (e Entity) Double() Entity {
	e.Data *= 2
	return e
}

// Add returns a copy of e with value added to its data.
func (e Entity) Add(value int) Entity {
	e.Data += value
	return e
}

// Repository is everything domainb needs from its configuration.
type Repository interface {
	FindByID(id int) (Entity, bool)
}

// Double finds the entity and doubles its data.
func Double(id int) compose.Step[Repository, failure.Error, Entity] {
	return modify(id, Entity.Double)
}

// Add finds the entity and adds value to its data.
func Add(id, value int) compose.Step[Repository, failure.Error, Entity] {
	return modify(id, func(e Entity) Entity {
		return e.Add(value)
	})
}

func modify(id int, op func(Entity) Entity) compose.Step[Repository, failure.Error, Entity] {
	return func(repo Repository) result.Result[failure.Error, Entity] {
		e, ok := repo.FindByID(id)
		found := result.FromLookup(e, ok, func() failure.Error {
			return failure.NotFound("can not find %d", id)
		})
		return result.Map(found, op)
	}
}
