package face

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"time"

	enc "github.com/named-data/ndnx/std/encoding"
	ndn_io "github.com/named-data/ndnx/std/utils/io"
	"github.com/quic-go/quic-go"
)

// QuicALPN is the application protocol negotiated by QuicFace.
const QuicALPN = "ccnx"

// QuicFace carries documents over one bidirectional QUIC stream,
// framed the same way as a StreamFace.
type QuicFace struct {
	baseFace
	addr    string
	tlsConf *tls.Config
	conn    quic.Connection
	stream  quic.Stream
}

// NewQuicFace creates a QUIC face. A nil tlsConf verifies the server
// against the system roots.
func NewQuicFace(addr string, tlsConf *tls.Config, local bool) *QuicFace {
	if tlsConf == nil {
		tlsConf = &tls.Config{}
	} else {
		tlsConf = tlsConf.Clone()
	}
	if len(tlsConf.NextProtos) == 0 {
		tlsConf.NextProtos = []string{QuicALPN}
	}
	return &QuicFace{
		baseFace: newBaseFace(local),
		addr:     addr,
		tlsConf:  tlsConf,
	}
}

func (f *QuicFace) String() string {
	return fmt.Sprintf("quic-face (%s)", f.addr)
}

func (f *QuicFace) Open() error {
	if err := f.checkOpen(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := quic.DialAddr(ctx, f.addr, f.tlsConf, &quic.Config{
		MaxIdleTimeout:  60 * time.Second,
		KeepAlivePeriod: 30 * time.Second,
	})
	if err != nil {
		return err
	}

	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		conn.CloseWithError(0, "")
		return err
	}

	f.conn = conn
	f.stream = stream
	f.setStateUp()
	go f.receive()

	return nil
}

func (f *QuicFace) Close() error {
	if f.setStateClosed() && f.conn != nil {
		f.stream.Close()
		return f.conn.CloseWithError(0, "closed")
	}
	return nil
}

func (f *QuicFace) Send(pkt enc.Wire) error {
	if !f.IsRunning() {
		return errNotRunning
	}

	f.sendMut.Lock()
	defer f.sendMut.Unlock()

	_, err := f.stream.Write(pkt.Join())
	return err
}

func (f *QuicFace) receive() {
	defer f.setStateDown()

	err := ndn_io.ReadDocumentStream(f.stream, f.opts, func(b []byte) bool {
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
