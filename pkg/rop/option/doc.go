// Package option provides Option[T], a value that is either present (Some)
// or absent (None). It replaces nil pointers and sentinel zero values for
// "may be missing" data.
//
// Common usage:
// - Some/None: construct an Option
// - HasValue/Value/ValueOrDefault/TryGetValue: read it
// - Select/SelectMany: transform or chain optional lookups
// - Match: collapse to a concrete value via handlers
//
// Some refuses nil pointers, maps, slices, funcs, channels and interfaces:
// an Option never wraps nil.
package option
