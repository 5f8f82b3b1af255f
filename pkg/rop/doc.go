// Package rop provides Result[T], the outcome of a computation that either
// succeeded with a value or failed with one or more classified Errors.
//
// Business failures travel as data: an Error carries an ErrorType, an
// optional machine-readable code and a description. Contract violations
// (reading Value of a failed Result, failing with an empty error list,
// passing a nil function) panic; IsInvalidArgument and IsInvalidState
// classify the recovered value.
//
// Highlights:
// - Success/Fail/FailAll: construct Result[T]
// - Map/Bind/Then: continue on success, short-circuit on error
// - Match: reduce to a concrete value via success/error handlers
// - Try/FromError: lift Go (T, error) returns into Result[T]
// - Validate: run several checks and report every failure at once
// - FromOption/ToOption/FromEither/ToEither: interop with option and either
package rop
