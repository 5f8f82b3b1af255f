// Package either provides Either[L, R], a value holding exactly one of a
// Left or a Right. By convention Right carries the normal result and Left
// the alternate one, often an error, though nothing requires that.
//
// Key operations:
// - Left/Right: construct an Either on a given side
// - Bind/SelectMany: continue with the Right value, propagating Left
// - Select: transform the Right value
// - Filter: turn a Right that fails a predicate into a Left
// - Flatten/Join: unwrap an Either nested on the Right side
// - Match: collapse both sides to a single value
package either
