package encoding

import (
	"fmt"

	"github.com/named-data/ndnx/std/log"
)

// Initial number of element slots of a Tape and the fixed number of slots
// added every time it runs full.
const (
	DefaultTapeSize      = 100
	DefaultTapeIncrement = 25
)

// Element is one decoded header of a ccnb document.
//
// For DTagType the value is the tag; for BlobType and UDataType it is the
// payload length and Payload holds exactly that many bytes; for CloseType
// the value is zero.
type Element struct {
	Type    ElemType
	Value   uint64
	Payload []byte
}

// Tag returns the dictionary tag of a start element.
func (e Element) Tag() DTag {
	return DTag(e.Value)
}

// IsStart returns true if the element opens a dictionary tag.
func (e Element) IsStart() bool {
	return e.Type == DTagType
}

func (e Element) String() string {
	switch e.Type {
	case CloseType:
		return "CLOSE"
	case BlobType, UDataType:
		return fmt.Sprintf("%s len=%d", e.Type, e.Value)
	default:
		return fmt.Sprintf("%s 0x%04x", e.Type, e.Value)
	}
}

// Tape is the flat, append-only list of elements of one document.
// It grows by a fixed increment instead of doubling, which keeps the
// footprint of the typical small packet close to the initial size.
type Tape struct {
	elems     []Element
	increment int
	grows     int
}

// NewTape creates a tape with the given initial capacity and growth increment.
// Non-positive arguments select the defaults.
func NewTape(size, increment int) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	if increment <= 0 {
		increment = DefaultTapeIncrement
	}
	return &Tape{
		elems:     make([]Element, 0, size),
		increment: increment,
	}
}

func (t *Tape) String() string {
	return fmt.Sprintf("tape (%d/%d)", len(t.elems), cap(t.elems))
}

// Append adds an element to the end of the tape and returns its index.
func (t *Tape) Append(e Element) int {
	if len(t.elems) == cap(t.elems) {
		elems := make([]Element, len(t.elems), cap(t.elems)+t.increment)
		copy(elems, t.elems)
		t.elems = elems
		t.grows++
		log.Debug(t, "Grew element tape", "cap", cap(t.elems))
	}
	t.elems = append(t.elems, e)
	return len(t.elems) - 1
}

// At returns the element at index i.
func (t *Tape) At(i int) (Element, bool) {
	if i < 0 || i >= len(t.elems) {
		return Element{}, false
	}
	return t.elems[i], true
}

// Len returns the number of elements on the tape.
func (t *Tape) Len() int {
	return len(t.elems)
}

// Cap returns the number of slots currently allocated.
func (t *Tape) Cap() int {
	return cap(t.elems)
}

// Grows returns how many times the tape has been enlarged.
func (t *Tape) Grows() int {
	return t.grows
}

// Reset empties the tape, keeping its storage for the next document.
// Payload references are dropped so old documents can be collected.
func (t *Tape) Reset() {
	clear(t.elems)
	t.elems = t.elems[:0]
}
