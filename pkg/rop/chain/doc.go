// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains on top of the rop
// combinators.
//
// It composes Bind, Try, Map, Tee, Ensure and Match behind a convenient
// Chain[T] type that also carries a context for the step functions. This
// enables ergonomic pipelines without dealing directly with branching
// results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Check: fail the chain when a predicate rejects the value
// - Finally: collapse the chain into a final value via handlers
package chain
