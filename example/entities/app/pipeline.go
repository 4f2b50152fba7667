// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"github.com/z5labs/compose"
	"github.com/z5labs/compose/example/entities/domaina"
	"github.com/z5labs/compose/example/entities/domainb"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/reader"
	"github.com/z5labs/compose/result"
)

// Dependencies aggregates the configuration of every domain.
type Dependencies struct {
	Constants domaina.Constants
	Entities  domainb.Repository
}

func constants(d Dependencies) domaina.Constants { return d.Constants }

func entities(d Dependencies) domainb.Repository { return d.Entities }

// Pipeline resolves the named constant into an entity id and doubles the
// matching entity.
func Pipeline(name string) compose.Step[Dependencies, failure.Error, domainb.Entity] {
	id := reader.Narrow(domaina.Value(name), constants)
	return compose.Then(id, func(id int) compose.Step[Dependencies, failure.Error, domainb.Entity] {
		return reader.Narrow(domainb.Double(id), entities)
	})
}

// HalvedPipeline is [Pipeline] with the resolved id halved before the
// entity lookup.
func HalvedPipeline(name string) compose.Step[Dependencies, failure.Error, domainb.Entity] {
	id := reader.Narrow(domaina.Value(name), constants)
	halved := compose.Then(id, func(n int) compose.Step[Dependencies, failure.Error, int] {
		return compose.Lift[Dependencies](Divide(n, 2))
	})
	return compose.Then(halved, func(id int) compose.Step[Dependencies, failure.Error, domainb.Entity] {
		return reader.Narrow(domainb.Double(id), entities)
	})
}

// Divide fails instead of panicking when divisor is zero.
func Divide(dividend, divisor int) result.Result[failure.Error, int] {
	return result.When(
		divisor != 0,
		func() failure.Error { return failure.ValidationFailed("division by zero") },
		func() int { return dividend / divisor },
	)
}
