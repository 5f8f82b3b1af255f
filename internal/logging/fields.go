package logging

import (
	"go.uber.org/zap"

	"github.com/ib-77/monads/pkg/rop"
)

// Outcome returns the fields describing r: success flag plus the error list
// when r failed.
func Outcome(r rop.WithErrors) []zap.Field {
	if !r.IsError() {
		return []zap.Field{zap.Bool("success", true)}
	}
	return []zap.Field{
		zap.Bool("success", false),
		zap.Array("errors", r.ErrorsOrEmptyList()),
	}
}

// Error returns a field for a single classified error.
func Error(e rop.Error) zap.Field {
	return zap.Object("error", e)
}
