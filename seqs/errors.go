package seqs

import (
	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoSuchElement is returned by Head, Last and Reduce on an empty Seq.
	ErrNoSuchElement = errors.New("no such element")

	// ErrInvalidArgument is returned for illegal ranges, negative sizes and nil orderings.
	ErrInvalidArgument = errors.New("invalid argument")
)

func indexError(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}

func emptyError(op string) error {
	return errors.Wrap(ErrNoSuchElement, op)
}

func argumentError(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
