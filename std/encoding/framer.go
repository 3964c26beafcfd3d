package encoding

import (
	"bytes"
	"errors"
	"io"

	"github.com/named-data/ndnx/std/log"
)

// BeginDecoding reads exactly one ccnb document from r into the tape and
// rewinds the cursor.
//
// The document ends when the outermost start element is closed; no byte
// after it is consumed. A document that does not start with a start element
// consists of that single element.
//
// io.EOF is returned if r is exhausted before the first byte. If r ends
// inside the document, ErrTruncatedStream is returned. On any error the tape
// is left empty.
//
// The payload of every Blob and UData element is read in full before the
// next header. A declared length that would make the document larger than
// MaxDocumentSize fails with ErrDocumentTooLarge before anything is allocated.
func (d *Decoder) BeginDecoding(r io.Reader) error {
	d.tape.Reset()
	d.cursor = 0
	d.bytesRead = 0

	cr := &countingReader{r: r}
	if br, ok := r.(io.ByteReader); ok {
		cr.br = br
	}

	if err := d.frame(cr); err != nil {
		d.tape.Reset()
		return err
	}
	d.bytesRead = cr.n

	if log.HasTrace() {
		log.Trace(d.tape, "Decoded document", "elements", d.tape.Len(), "bytes", cr.n)
	}
	return nil
}

func (d *Decoder) frame(cr *countingReader) error {
	open := 0
	for {
		typ, val, err := ReadTypeAndValue(cr)
		if err != nil {
			if err == io.EOF && d.tape.Len() > 0 {
				return ErrTruncatedStream{Err: io.ErrUnexpectedEOF}
			}
			return err
		}

		e := Element{Type: typ, Value: val}
		switch typ {
		case DTagType:
			open++
		case CloseType:
			open--
		case BlobType, UDataType:
			if val > uint64(d.opts.MaxDocumentSize) || uint64(cr.n)+val > uint64(d.opts.MaxDocumentSize) {
				return ErrDocumentTooLarge{Size: uint64(cr.n) + val, Limit: d.opts.MaxDocumentSize}
			}
			if val == 0 {
				e.Payload = byte0
			} else {
				e.Payload = make([]byte, val)
				if _, err = io.ReadFull(cr, e.Payload); err != nil {
					if errors.Is(err, io.EOF) {
						err = io.ErrUnexpectedEOF
					}
					return ErrTruncatedStream{Err: err}
				}
			}
		}

		if cr.n > d.opts.MaxDocumentSize {
			return ErrDocumentTooLarge{Size: uint64(cr.n), Limit: d.opts.MaxDocumentSize}
		}

		d.tape.Append(e)
		if open <= 0 {
			return nil
		}
	}
}

// DecodeDocument reads one document from r with a new default decoder.
func DecodeDocument(r io.Reader) (*Decoder, error) {
	d := NewDecoder()
	if err := d.BeginDecoding(r); err != nil {
		return nil, err
	}
	return d, nil
}

// DecodeBytes decodes the document at the start of buf.
func DecodeBytes(buf []byte) (*Decoder, error) {
	return DecodeDocument(bytes.NewReader(buf))
}

// countingReader counts consumed bytes and reads one byte at a time from
// readers that lack ReadByte, so it never reads past the document.
type countingReader struct {
	r   io.Reader
	br  io.ByteReader
	n   int
	one [1]byte
}

func (c *countingReader) ReadByte() (byte, error) {
	if c.br != nil {
		b, err := c.br.ReadByte()
		if err == nil {
			c.n++
		}
		return b, err
	}
	for {
		n, err := c.r.Read(c.one[:])
		if n == 1 {
			c.n++
			return c.one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
