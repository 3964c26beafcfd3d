package face

import (
	"errors"
	"fmt"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
)

var (
	errAlreadyRunning = errors.New("face is already running")
	errNoCallbacks    = errors.New("face callbacks are not set")
	errNotRunning     = fmt.Errorf("face is not running: %w", ndn.ErrFaceDown)
)

// ConfigurableFace is implemented by every face of this package.
type ConfigurableFace interface {
	ndn.Face
	SetDecoderOptions(opts enc.DecoderOptions)
}

// NewFace creates a face for a network and address.
//
//	tcp, tcp4, tcp6   host:port
//	unix              socket path
//	ws, wss           full URL
//	quic              host:port
func NewFace(network string, addr string) (ConfigurableFace, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
		return NewStreamFace(network, addr, false), nil
	case "unix":
		return NewStreamFace(network, addr, true), nil
	case "ws", "wss":
		return NewWebSocketFace(addr, false), nil
	case "quic":
		return NewQuicFace(addr, nil, false), nil
	default:
		return nil, ndn.ErrNotSupported{Item: "face network " + network}
	}
}
