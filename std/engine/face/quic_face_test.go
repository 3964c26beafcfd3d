package face_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"io"
	"math/big"
	"net"
	"testing"
	"time"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/engine/face"
	tu "github.com/named-data/ndnx/std/utils/testutils"
	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/require"
)

func selfSignedCert(t *testing.T) tls.Certificate {
	key := tu.NoErr(ecdsa.GenerateKey(elliptic.P256(), rand.Reader))
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der := tu.NoErr(x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key))
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

func TestQuicFace(t *testing.T) {
	tu.SetT(t)

	ln := tu.NoErr(quic.ListenAddr("127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{selfSignedCert(t)},
		NextProtos:   []string{face.QuicALPN},
	}, nil))
	defer ln.Close()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		conn, err := ln.Accept(ctx)
		if err != nil {
			return
		}
		stream, err := conn.AcceptStream(ctx)
		if err != nil {
			return
		}
		// Echo the first document
		buf := make([]byte, len(tu.Hex(docInterest)))
		if _, err = io.ReadFull(stream, buf); err != nil {
			return
		}
		stream.Write(buf)
		<-ctx.Done()
	}()

	frames := make(chan []byte, 8)
	f := face.NewQuicFace(ln.Addr().String(), &tls.Config{InsecureSkipVerify: true}, false)
	f.OnPacket(func(frame []byte) { frames <- frame })
	f.OnError(func(err error) {})
	require.NoError(t, f.Open())
	require.True(t, f.IsRunning())

	require.NoError(t, f.Send(enc.Wire{tu.Hex(docInterest)}))
	require.Equal(t, tu.Hex(docInterest), recvFrame(t, frames))

	require.NoError(t, f.Close())
	require.False(t, f.IsRunning())
}
