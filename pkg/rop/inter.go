package rop

// WithErrors is implemented by Result[T] for every T, so failures of
// differently typed results can be handled together.
type WithErrors interface {
	// IsError returns true if the operation failed
	IsError() bool
	// ErrorsOrEmptyList returns the recorded errors, empty on success
	ErrorsOrEmptyList() ErrorList
}

// CollectErrors concatenates the errors of every failed result, in argument
// order. It returns an empty list when all of them succeeded.
func CollectErrors(results ...WithErrors) ErrorList {
	out := ErrorList{}
	for _, r := range results {
		if r == nil || !r.IsError() {
			continue
		}
		out = append(out, r.ErrorsOrEmptyList()...)
	}
	return out
}
