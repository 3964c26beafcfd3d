package encoding

import (
	"errors"
	"fmt"
)

// Buffer is a buffer of bytes
type Buffer []byte

// Wire is a collection of Buffer. May be allocated in non-contiguous memory.
type Wire []Buffer

// Join combines all buffers of the Wire into one contiguous slice.
func (w Wire) Join() []byte {
	if len(w) == 0 {
		return []byte{}
	} else if len(w) == 1 {
		return w[0]
	}

	n := 0
	for _, v := range w {
		n += len(v)
	}

	b := make([]byte, n)
	bp := copy(b, w[0])
	for _, v := range w[1:] {
		bp += copy(b[bp:], v)
	}
	return b
}

// Length returns the total number of bytes in the Wire.
func (w Wire) Length() uint64 {
	ret := uint64(0)
	for _, v := range w {
		ret += uint64(len(v))
	}
	return ret
}

type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

// ErrTruncated is matched by every ErrTruncatedStream through errors.Is.
var ErrTruncated = errors.New("ccnb stream truncated")

// ErrTruncatedStream is returned when the input ended in the middle of an
// element header, a payload, or before the outermost element was closed.
type ErrTruncatedStream struct {
	Err error
}

func (e ErrTruncatedStream) Error() string {
	if e.Err == nil {
		return "ccnb stream truncated"
	}
	return fmt.Sprintf("ccnb stream truncated: %v", e.Err)
}

func (e ErrTruncatedStream) Unwrap() error {
	return e.Err
}

func (e ErrTruncatedStream) Is(target error) bool {
	return target == ErrTruncated
}

// ErrMalformedTag is returned when an element header carries a type code
// that the wire format does not allow, or a value that overflows.
type ErrMalformedTag struct {
	Type ElemType
	Msg  string
}

func (e ErrMalformedTag) Error() string {
	if e.Msg != "" {
		return "malformed ccnb element header: " + e.Msg
	}
	return fmt.Sprintf("malformed ccnb element header: invalid type 0x%02x", uint8(e.Type))
}

// ErrPastEndOfDocument is returned when the cursor is moved past the tape.
type ErrPastEndOfDocument struct {
	Pos  int
	Size int
}

func (e ErrPastEndOfDocument) Error() string {
	return fmt.Sprintf("past end of document: size %d position %d", e.Size, e.Pos)
}

// ErrUnexpectedElement is returned when the element under the cursor does
// not match what the caller asked for. The tape is left untouched.
type ErrUnexpectedElement struct {
	Pos         int
	Expected    ElemType
	ExpectedTag DTag
	Got         Element
}

func (e ErrUnexpectedElement) Error() string {
	if e.Expected == DTagType {
		return fmt.Sprintf("element mismatch at position %d: expected %s 0x%04x, got %s",
			e.Pos, e.Expected, uint64(e.ExpectedTag), e.Got)
	}
	return fmt.Sprintf("element mismatch at position %d: expected %s, got %s",
		e.Pos, e.Expected, e.Got)
}

// ErrDecoding is returned when a UData payload is not valid UTF-8
// or a typed value cannot be parsed from its payload.
type ErrDecoding struct {
	Pos int
	Err error
}

func (e ErrDecoding) Error() string {
	return fmt.Sprintf("failed to decode element at position %d: %v", e.Pos, e.Err)
}

func (e ErrDecoding) Unwrap() error {
	return e.Err
}

// ErrUnsupported is returned by operations that must never be used on wire data.
type ErrUnsupported struct {
	Op string
}

func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("unsupported operation: %s", e.Op)
}

// ErrDocumentTooLarge is returned when a document declares more payload
// bytes than the decoder is allowed to buffer.
type ErrDocumentTooLarge struct {
	Size  uint64
	Limit int
}

func (e ErrDocumentTooLarge) Error() string {
	return fmt.Sprintf("ccnb document too large: %d bytes exceeds limit of %d", e.Size, e.Limit)
}

// ErrMalformedEscape is returned when a component URI contains an illegal
// character or a bad percent-escape.
type ErrMalformedEscape struct {
	Input string
	Pos   int
	Msg   string
}

func (e ErrMalformedEscape) Error() string {
	return fmt.Sprintf("malformed component URI %q at %d: %s", e.Input, e.Pos, e.Msg)
}

// ErrReservedComponent is returned when parsing "..", which denotes the
// parent path segment and can never be a literal component value.
var ErrReservedComponent = errors.New("'..' is a reserved component")

// ErrUnbalanced is returned when encoded output has unclosed elements.
var ErrUnbalanced = errors.New("ccnb encoder has unclosed elements")
