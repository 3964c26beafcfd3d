package face

import (
	"fmt"
	"io"
	"net"

	enc "github.com/named-data/ndnx/std/encoding"
	ndn_io "github.com/named-data/ndnx/std/utils/io"
)

// StreamFace is a face that uses a stream connection.
// Documents are written back to back and framed on receipt.
type StreamFace struct {
	baseFace
	network string
	addr    string
	conn    net.Conn
}

func NewStreamFace(network string, addr string, local bool) *StreamFace {
	return &StreamFace{
		baseFace: newBaseFace(local),
		network:  network,
		addr:     addr,
	}
}

func (f *StreamFace) String() string {
	return fmt.Sprintf("stream-face (%s://%s)", f.network, f.addr)
}

func (f *StreamFace) Open() error {
	if err := f.checkOpen(); err != nil {
		return err
	}

	c, err := net.Dial(f.network, f.addr)
	if err != nil {
		return err
	}

	f.conn = c
	f.setStateUp()
	go f.receive()

	return nil
}

func (f *StreamFace) Close() error {
	if f.setStateClosed() {
		if f.conn != nil {
			return f.conn.Close()
		}
	}

	return nil
}

func (f *StreamFace) Send(pkt enc.Wire) error {
	if !f.IsRunning() {
		return errNotRunning
	}

	f.sendMut.Lock()
	defer f.sendMut.Unlock()

	_, err := f.conn.Write(pkt.Join())
	return err
}

func (f *StreamFace) receive() {
	defer f.setStateDown()

	err := ndn_io.ReadDocumentStream(f.conn, f.opts, func(b []byte) bool {
		f.onPkt(b)
		return f.IsRunning()
	})

	if f.IsRunning() {
		if err != nil {
			f.onError(err)
		} else {
			f.onError(io.EOF)
		}
	}
}
