package encoding

import (
	"io"
)

// WireReader reads a Wire as one byte stream.
// It is used to frame documents whose bytes arrived in several buffers.
type WireReader struct {
	wire  Wire
	seg   int
	pos   int
	accSz []int
}

// NewWireReader creates a reader positioned at the start of w.
func NewWireReader(w Wire) *WireReader {
	accSz := make([]int, len(w)+1)
	for i := 0; i < len(w); i++ {
		accSz[i+1] = accSz[i] + len(w[i])
	}
	return &WireReader{
		wire:  w,
		accSz: accSz,
	}
}

// nextSeg skips exhausted segments. It returns false at the end of the wire.
func (r *WireReader) nextSeg() bool {
	for r.seg < len(r.wire) && r.pos >= len(r.wire[r.seg]) {
		r.seg++
		r.pos = 0
	}
	return r.seg < len(r.wire)
}

func (r *WireReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if !r.nextSeg() {
		return 0, io.EOF
	}
	n := copy(b, r.wire[r.seg][r.pos:])
	r.pos += n
	return n, nil
}

func (r *WireReader) ReadByte() (byte, error) {
	if !r.nextSeg() {
		return 0, io.EOF
	}
	ret := r.wire[r.seg][r.pos]
	r.pos++
	return ret, nil
}

// Pos returns the number of bytes consumed.
func (r *WireReader) Pos() int {
	if r.seg >= len(r.wire) {
		return r.accSz[len(r.wire)]
	}
	return r.accSz[r.seg] + r.pos
}

// Length returns the total number of bytes of the wire.
func (r *WireReader) Length() int {
	return r.accSz[len(r.wire)]
}

// DecodeWire decodes the document at the start of a possibly fragmented wire.
func DecodeWire(w Wire) (*Decoder, error) {
	return DecodeDocument(NewWireReader(w))
}
