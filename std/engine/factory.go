package engine

import (
	"fmt"
	"net/url"

	"github.com/named-data/ndnx/std/engine/face"
)

// NewFaceFromUri creates a face from a transport URI such as
// tcp://host:port, unix:///path, ws://host:port/path or quic://host:port.
func NewFaceFromUri(uri string) (face.ConfigurableFace, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid transport URI %s: %w", uri, err)
	}

	switch u.Scheme {
	case "unix":
		return face.NewFace(u.Scheme, u.Path)
	case "ws", "wss":
		return face.NewFace(u.Scheme, u.String())
	default:
		if u.Host == "" {
			return nil, fmt.Errorf("invalid transport URI %s: missing host", uri)
		}
		return face.NewFace(u.Scheme, u.Host)
	}
}

// NewDefaultFace creates the face named by the client configuration.
func NewDefaultFace() (face.ConfigurableFace, error) {
	return NewFaceFromUri(GetClientConfig().TransportUri)
}
