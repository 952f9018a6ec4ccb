package paramlog

import "errors"

var (
	ErrNilSink        = errors.New("paramlog: sink is nil")
	ErrSinkClosed     = errors.New("paramlog: sink is closed")
	ErrUnknownField   = errors.New("paramlog: unknown context field")
	ErrInvalidChannel = errors.New("paramlog: destination must not be empty")
)
