package ndn

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a decoded element holds a value that
// its field cannot take.
type ErrInvalidValue struct {
	Item  string
	Value any
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Item, e.Value)
}

// ErrNotSupported is returned for well-formed input this library does not handle.
type ErrNotSupported struct {
	Item string
}

func (e ErrNotSupported) Error() string {
	return fmt.Sprintf("not supported: %s", e.Item)
}

var ErrNetwork = errors.New("network error")

// ErrWrongType is returned when a packet is not of the kind the caller needs.
var ErrWrongType = errors.New("packet is not of desired type")

// ErrDeadlineExceed is returned when the lifetime of the Interest passed.
var ErrDeadlineExceed = errors.New("interest deadline exceeded")

// ErrFaceDown is returned when sending on a face that is not running.
var ErrFaceDown = errors.New("face is down")
