package encoding

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/named-data/ndnx/std/types/optional"
)

// DefaultMaxDocumentSize bounds the payload bytes buffered for one document.
const DefaultMaxDocumentSize = 1 << 20

// DecoderOptions tunes the storage used by a Decoder.
type DecoderOptions struct {
	// Upper bound of header and payload bytes of one document.
	MaxDocumentSize int `json:"max_document_size"`
	// Initial number of element slots.
	TapeSize int `json:"tape_size"`
	// Number of slots added when the tape runs full.
	TapeIncrement int `json:"tape_increment"`
}

// DefaultDecoderOptions returns the options used by NewDecoder.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{
		MaxDocumentSize: DefaultMaxDocumentSize,
		TapeSize:        DefaultTapeSize,
		TapeIncrement:   DefaultTapeIncrement,
	}
}

// Decoder holds the element tape of one ccnb document and a cursor into it.
// BeginDecoding fills the tape; the Read and Peek methods then walk it like
// a push-down automaton: start elements, leaves and closes in order.
//
// A Decoder is not safe for concurrent use. Independent documents can be
// decoded concurrently with one Decoder each.
type Decoder struct {
	tape   *Tape
	cursor int
	opts   DecoderOptions
	// number of wire bytes consumed by the last BeginDecoding
	bytesRead int
}

// zero-length payload shared by every empty leaf
var byte0 = []byte{}

// NewDecoder creates a decoder with default options.
func NewDecoder() *Decoder {
	return NewDecoderWithOptions(DefaultDecoderOptions())
}

// NewDecoderWithOptions creates a decoder. Zero fields select the defaults.
func NewDecoderWithOptions(opts DecoderOptions) *Decoder {
	if opts.MaxDocumentSize <= 0 {
		opts.MaxDocumentSize = DefaultMaxDocumentSize
	}
	return &Decoder{
		tape: NewTape(opts.TapeSize, opts.TapeIncrement),
		opts: opts,
	}
}

// Pos returns the cursor position.
func (d *Decoder) Pos() int {
	return d.cursor
}

// Len returns the number of elements of the current document.
func (d *Decoder) Len() int {
	return d.tape.Len()
}

// BytesRead returns the size of the current document on the wire.
func (d *Decoder) BytesRead() int {
	return d.bytesRead
}

// Tape returns the element tape of the current document.
func (d *Decoder) Tape() *Tape {
	return d.tape
}

// Element returns the element at index i of the tape.
func (d *Decoder) Element(i int) (Element, bool) {
	return d.tape.At(i)
}

// IsEOF returns true if the cursor is past the last element.
func (d *Decoder) IsEOF() bool {
	return d.cursor >= d.tape.Len()
}

// current returns the element under the cursor without moving it.
func (d *Decoder) current() (Element, error) {
	e, ok := d.tape.At(d.cursor)
	if !ok {
		return Element{}, ErrPastEndOfDocument{Pos: d.cursor, Size: d.tape.Len()}
	}
	return e, nil
}

func (d *Decoder) advance() {
	d.cursor++
}

// expect checks that the element under the cursor has the given type and,
// for start elements, the given tag. It does not advance.
func (d *Decoder) expect(typ ElemType, tag DTag) (Element, error) {
	e, err := d.current()
	if err != nil {
		return e, err
	}
	if e.Type != typ || (typ == DTagType && e.Tag() != tag) {
		return e, ErrUnexpectedElement{Pos: d.cursor, Expected: typ, ExpectedTag: tag, Got: e}
	}
	return e, nil
}

// PeekStartElement returns true if the current element opens the given tag.
// Never advances.
func (d *Decoder) PeekStartElement(tag DTag) (bool, error) {
	e, err := d.current()
	if err != nil {
		return false, err
	}
	return e.Type == DTagType && e.Tag() == tag, nil
}

// PeekStartElementAsTag returns the tag of the current start element, or
// an unset optional if the current element is a Close.
// Any other element is an error. Never advances.
func (d *Decoder) PeekStartElementAsTag() (optional.Optional[DTag], error) {
	e, err := d.current()
	if err != nil {
		return optional.None[DTag](), err
	}
	switch e.Type {
	case DTagType:
		return optional.Some(e.Tag()), nil
	case CloseType:
		return optional.None[DTag](), nil
	default:
		return optional.None[DTag](), ErrUnexpectedElement{Pos: d.cursor, Expected: DTagType, Got: e}
	}
}

// ReadStartElement consumes the start element of the given tag.
func (d *Decoder) ReadStartElement(tag DTag) error {
	if _, err := d.expect(DTagType, tag); err != nil {
		return err
	}
	d.advance()
	return nil
}

// ReadEndElement consumes a Close.
func (d *Decoder) ReadEndElement() error {
	if _, err := d.expect(CloseType, 0); err != nil {
		return err
	}
	d.advance()
	return nil
}

// ReadBinary consumes a leaf of type kind (BlobType or UDataType) together
// with the Close that follows it, which terminates the enclosing start
// element: leaves have no Close of their own.
//
// For BlobType the optional-field default of ReadOptionalBinary applies:
// an absent Blob reads as an empty value. UDataType is strict.
func (d *Decoder) ReadBinary(kind ElemType) ([]byte, error) {
	switch kind {
	case BlobType:
		return d.ReadOptionalBinary(kind)
	case UDataType:
		return d.readLeaf(kind)
	default:
		return nil, ErrUnsupported{Op: fmt.Sprintf("ReadBinary(%s): must be BLOB or UDATA", kind)}
	}
}

// ReadOptionalBinary reads a leaf that encoders omit when its value is empty.
//
//   - leaf of type kind present: same as a strict read.
//   - Close present: the leaf was omitted. The Close is consumed and an
//     empty value is returned.
//   - anything else: an empty value is returned and the cursor stays.
//
// The tape is never modified.
func (d *Decoder) ReadOptionalBinary(kind ElemType) ([]byte, error) {
	if kind != BlobType && kind != UDataType {
		return nil, ErrUnsupported{Op: fmt.Sprintf("ReadOptionalBinary(%s): must be BLOB or UDATA", kind)}
	}
	e, err := d.current()
	if err != nil {
		return nil, err
	}
	switch e.Type {
	case kind:
		return d.readLeaf(kind)
	case CloseType:
		d.advance()
		return byte0, nil
	default:
		return byte0, nil
	}
}

func (d *Decoder) readLeaf(kind ElemType) ([]byte, error) {
	e, err := d.expect(kind, 0)
	if err != nil {
		return nil, err
	}
	d.advance()
	if err = d.ReadEndElement(); err != nil {
		return nil, err
	}
	if e.Value == 0 {
		return byte0, nil
	}
	return e.Payload, nil
}

// ReadBlob reads a Blob leaf and the Close after it.
func (d *Decoder) ReadBlob() ([]byte, error) {
	return d.ReadBinary(BlobType)
}

// ReadUString reads a UData leaf as UTF-8 text.
// On invalid UTF-8 the cursor is left on the UData element.
func (d *Decoder) ReadUString() (string, error) {
	e, err := d.expect(UDataType, 0)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(e.Payload) {
		return "", ErrDecoding{Pos: d.cursor, Err: fmt.Errorf("invalid UTF-8 in UDATA payload")}
	}
	buf, err := d.readLeaf(UDataType)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadBinaryElement reads <tag>BLOB</tag>, advancing by up to three elements.
func (d *Decoder) ReadBinaryElement(tag DTag) ([]byte, error) {
	if err := d.ReadStartElement(tag); err != nil {
		return nil, err
	}
	return d.ReadBlob()
}

// ReadUStringElement reads <tag>UDATA</tag>.
// An empty element reads as the empty string.
func (d *Decoder) ReadUStringElement(tag DTag) (string, error) {
	if err := d.ReadStartElement(tag); err != nil {
		return "", err
	}
	if e, err := d.current(); err == nil && e.Type == CloseType {
		d.advance()
		return "", nil
	}
	return d.ReadUString()
}

// ReadIntegerElement reads a non-negative integer carried as decimal text.
func (d *Decoder) ReadIntegerElement(tag DTag) (uint64, error) {
	start := d.cursor
	s, err := d.ReadUStringElement(tag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrDecoding{Pos: start, Err: err}
	}
	return v, nil
}

// ReadTimestamp reads <tag>BLOB</tag> and interprets the blob as a Timestamp.
func (d *Decoder) ReadTimestamp(tag DTag) (Timestamp, error) {
	start := d.cursor
	b, err := d.ReadBinaryElement(tag)
	if err != nil {
		return 0, err
	}
	ts, err := TimestampFromBytes(b)
	if err != nil {
		return 0, ErrDecoding{Pos: start, Err: err}
	}
	return ts, nil
}

// ReadStartDocument is a no-op: the binary encoding has no document marker.
func (d *Decoder) ReadStartDocument() error {
	return nil
}

// ReadEndDocument is a no-op: the binary encoding has no document marker.
func (d *Decoder) ReadEndDocument() error {
	return nil
}

// The wire carries only numeric tags. Decoding by tag name is refused
// outright so that a missing dictionary entry surfaces as a bug instead of
// being papered over by a name lookup.

// PeekStartElementAsString always fails.
func (d *Decoder) PeekStartElementAsString() (string, error) {
	return "", ErrUnsupported{Op: "tag names are not used when decoding wire data"}
}

// ReadStartElementByName always fails.
func (d *Decoder) ReadStartElementByName(name string) error {
	return ErrUnsupported{Op: "tag names are not used when decoding wire data: " + name}
}

// ReadTimestampByName always fails.
func (d *Decoder) ReadTimestampByName(name string) (Timestamp, error) {
	return 0, ErrUnsupported{Op: "tag names are not used when decoding wire data: " + name}
}

// String dumps the tape, one element per line.
func (d *Decoder) String() string {
	return d.Dump(nil)
}

// Dump prints the tape, naming start tags with tagName when it is not nil.
// The cursor position is marked with '>'.
func (d *Decoder) Dump(tagName func(DTag) string) string {
	sb := strings.Builder{}
	depth := 0
	for i := 0; i < d.tape.Len(); i++ {
		e, _ := d.tape.At(i)
		if e.Type == CloseType && depth > 0 {
			depth--
		}
		mark := ' '
		if i == d.cursor {
			mark = '>'
		}
		fmt.Fprintf(&sb, "%c%3d %s%s", mark, i, strings.Repeat("  ", depth), e)
		if e.Type == DTagType {
			if tagName != nil {
				sb.WriteString(" " + tagName(e.Tag()))
			}
			depth++
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
