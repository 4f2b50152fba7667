// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package compose wires configuration readers and short-circuiting results
// into dependency-injected pipelines.
//
// # Building blocks
//
//   - [reader.Reader]: a deferred computation over a configuration.
//   - [result.Result]: success or a single error, first error wins.
//   - [accumulate.Accumulator]: success or every error of independent checks.
//   - [async.Task]: a Result producing computation run on request, awaited explicitly.
//
// # Steps
//
// A [Step] is a reader.Reader whose value is a result.Result. Domain modules
// return Steps over their own capability interface:
//
//	func Value(name string) compose.Step[Constants, failure.Error, int] {
//	    return compose.Then(BValue(name), func(b int) compose.Step[Constants, failure.Error, int] {
//	        return compose.Asks(func(c Constants) result.Result[failure.Error, int] {
//	            return result.Ok[failure.Error](c.A() * b)
//	        })
//	    })
//	}
//
// and the application narrows them into its aggregate configuration before
// chaining them with [Then]:
//
//	pipeline := compose.Then(
//	    reader.Narrow(domaina.Value("b"), func(d Dependencies) domaina.Constants { return d.Constants }),
//	    func(id int) compose.Step[Dependencies, failure.Error, domainb.Entity] {
//	        return reader.Narrow(domainb.Double(id), func(d Dependencies) domainb.Repository { return d.Entities })
//	    },
//	)
//	res := compose.Run(pipeline, deps)
//
// If any step fails, no later step runs and the failure is returned as is.
package compose
