package rop

import "strconv"

// ErrorType classifies a failure so callers can decide how to react.
type ErrorType int

const (
	Conflict ErrorType = iota
	Failure
	Forbidden
	NotFound
	Unauthorized
	Unexpected
	Validation
)

var errorTypeNames = [...]string{
	Conflict:     "Conflict",
	Failure:      "Failure",
	Forbidden:    "Forbidden",
	NotFound:     "NotFound",
	Unauthorized: "Unauthorized",
	Unexpected:   "Unexpected",
	Validation:   "Validation",
}

// Valid reports whether t is one of the declared error types.
func (t ErrorType) Valid() bool {
	return t >= Conflict && t <= Validation
}

func (t ErrorType) String() string {
	if !t.Valid() {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
