package io

import (
	"bufio"
	"io"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
)

// ReadDocumentStream frames consecutive ccnb documents from a byte stream
// and hands the raw bytes of each document to onFrame.
//
// A clean end of stream between documents returns nil, as does onFrame
// returning false. A stream that ends inside a document returns an error
// wrapping enc.ErrTruncated. Any decoding error ends the stream: the bytes
// of a bad document are not delimited, so framing cannot resume after it.
func ReadDocumentStream(
	reader io.Reader,
	opts enc.DecoderOptions,
	onFrame func([]byte) bool,
) error {
	rd := &captureReader{r: bufio.NewReaderSize(reader, ndn.MaxMessageSize*8)}
	dec := enc.NewDecoderWithOptions(opts)

	for {
		rd.buf = make([]byte, 0, ndn.MaxMessageSize)
		err := dec.BeginDecoding(rd)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if !onFrame(rd.buf) {
			return nil
		}
	}
}

// captureReader keeps a copy of every byte the framer consumes.
type captureReader struct {
	r   *bufio.Reader
	buf []byte
}

func (c *captureReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.buf = append(c.buf, b)
	}
	return b, err
}

func (c *captureReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.buf = append(c.buf, p[:n]...)
	return n, err
}
