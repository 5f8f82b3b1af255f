package rop

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/ib-77/monads/internal/contract"
)

// IsInvalidArgument reports whether err, typically recovered from a panic,
// was raised for a nil function, a nil value or an empty error list.
func IsInvalidArgument(err error) bool {
	return contract.ErrInvalidArgument.Has(err)
}

// IsInvalidState reports whether err, typically recovered from a panic, was
// raised by reading a side of a container that is not populated.
func IsInvalidState(err error) bool {
	return contract.ErrInvalidState.Has(err)
}

// Error describes one business failure. Errors are comparable values.
type Error struct {
	Type        ErrorType
	Code        string
	Description string
}

func NewError(t ErrorType, description string) Error {
	return Error{Type: t, Description: description}
}

// WithCode returns a copy of e carrying a machine-readable code.
func (e Error) WithCode(code string) Error {
	e.Code = code
	return e
}

func (e Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Description)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Type, e.Code, e.Description)
}

// MarshalLogObject lets an Error be logged with zap.Object.
func (e Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", e.Type.String())
	if e.Code != "" {
		enc.AddString("code", e.Code)
	}
	enc.AddString("description", e.Description)
	return nil
}

// IsType reports whether err carries an Error of type t anywhere in its chain.
func IsType(err error, t ErrorType) bool {
	for _, e := range GetErrors(err) {
		var re Error
		if errors.As(e, &re) && re.Type == t {
			return true
		}
	}
	return false
}

// ErrorList is the ordered error sequence of a failed Result.
type ErrorList []Error

// MarshalLogArray lets an ErrorList be logged with zap.Array.
func (l ErrorList) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range l {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}

// Err joins the list into a single Go error; nil for an empty list.
func (l ErrorList) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	}

	errs := make([]error, 0, len(l))
	for _, e := range l {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// GetErrors splits a joined error into its parts, recursively. Single
// wraps around a join are looked through, so the parts of
// fmt.Errorf("load: %w", errors.Join(a, b)) are a and b. An error with no
// join in its chain is returned as the only part.
func GetErrors(err error) []error {
	if contract.IsNil(err) {
		return []error{}
	}

	// follow single wraps down to the first join, if there is one
	for cur := err; cur != nil; {
		if joined, ok := cur.(interface{ Unwrap() []error }); ok {
			parts := joined.Unwrap()
			out := make([]error, 0, len(parts))
			for _, inner := range parts {
				out = append(out, GetErrors(inner)...)
			}
			return out
		}

		wrapper, ok := cur.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cur = wrapper.Unwrap()
	}

	return []error{err}
}

// classify turns arbitrary Go errors into Errors. Parts that wrap an Error
// keep it; anything else becomes Unexpected.
func classify(err error) ErrorList {
	parts := GetErrors(err)
	out := make(ErrorList, 0, len(parts))
	for _, e := range parts {
		var re Error
		if errors.As(e, &re) {
			out = append(out, re)
			continue
		}
		out = append(out, NewError(Unexpected, e.Error()))
	}
	return out
}
