package pipeline

import "github.com/pkg/errors"

var (
	// ErrUnknownOp is returned for a step whose operation is not supported.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrBadArgument is returned when a step argument or an input literal cannot be used.
	ErrBadArgument = errors.New("bad argument")
	// ErrUnknownKind is returned for a numeric kind other than int32, int64 or float64.
	ErrUnknownKind = errors.New("unknown numeric kind")
)
