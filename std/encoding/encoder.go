package encoding

import (
	"strconv"
)

// Encoder writes a ccnb document into a growable buffer.
// It is the inverse of the framer and the Decoder read methods.
type Encoder struct {
	buf  []byte
	open int
}

// NewEncoder creates an encoder with the given initial capacity.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, max(size, 0))}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Open returns the number of start elements not yet closed.
func (e *Encoder) Open() int {
	return e.open
}

// Reset clears the encoder, keeping its buffer.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.open = 0
}

// Bytes returns the encoded document.
// It fails with ErrUnbalanced if some element is still open.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.open != 0 {
		return nil, ErrUnbalanced
	}
	return e.buf, nil
}

// Wire returns the encoded document as a single-buffer Wire.
func (e *Encoder) Wire() (Wire, error) {
	b, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	return Wire{b}, nil
}

// WriteStartElement opens a dictionary tag.
func (e *Encoder) WriteStartElement(tag DTag) {
	e.buf = AppendTypeAndValue(e.buf, DTagType, uint64(tag))
	e.open++
}

// WriteEndElement closes the most recently opened tag.
func (e *Encoder) WriteEndElement() {
	e.buf = append(e.buf, CloseByte)
	e.open--
}

// WriteBlob writes a Blob leaf.
func (e *Encoder) WriteBlob(b []byte) {
	e.buf = AppendTypeAndValue(e.buf, BlobType, uint64(len(b)))
	e.buf = append(e.buf, b...)
}

// WriteUData writes a UData leaf.
func (e *Encoder) WriteUData(s string) {
	e.buf = AppendTypeAndValue(e.buf, UDataType, uint64(len(s)))
	e.buf = append(e.buf, s...)
}

// WriteBinaryElement writes <tag>BLOB</tag>. An empty value is written as
// <tag></tag>, which ReadBinaryElement reads back as empty.
func (e *Encoder) WriteBinaryElement(tag DTag, b []byte) {
	e.WriteStartElement(tag)
	if len(b) > 0 {
		e.WriteBlob(b)
	}
	e.WriteEndElement()
}

// WriteUStringElement writes <tag>UDATA</tag>.
func (e *Encoder) WriteUStringElement(tag DTag, s string) {
	e.WriteStartElement(tag)
	if len(s) > 0 {
		e.WriteUData(s)
	}
	e.WriteEndElement()
}

// WriteIntegerElement writes a number as decimal text.
func (e *Encoder) WriteIntegerElement(tag DTag, v uint64) {
	e.WriteUStringElement(tag, strconv.FormatUint(v, 10))
}

// WriteTimestampElement writes <tag>BLOB</tag> with the binary time.
func (e *Encoder) WriteTimestampElement(tag DTag, ts Timestamp) {
	e.WriteBinaryElement(tag, ts.Bytes())
}

// WriteComponent writes <Component>BLOB</Component>.
func (e *Encoder) WriteComponent(c Component) {
	e.WriteBinaryElement(ComponentDTag, c.Val)
}

// WriteName writes <Name>(<Component>BLOB</Component>)*</Name>.
func (e *Encoder) WriteName(n Name) {
	e.WriteStartElement(NameDTag)
	for _, c := range n {
		e.WriteComponent(c)
	}
	e.WriteEndElement()
}
