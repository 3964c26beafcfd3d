package engine_test

import (
	"testing"

	"github.com/named-data/ndnx/std/engine"
	"github.com/named-data/ndnx/std/ndn"
	tu "github.com/named-data/ndnx/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestNewFaceFromUri(t *testing.T) {
	tu.SetT(t)

	f := tu.NoErr(engine.NewFaceFromUri("tcp://127.0.0.1:9695"))
	require.Equal(t, "stream-face (tcp://127.0.0.1:9695)", f.String())

	f = tu.NoErr(engine.NewFaceFromUri("unix:///run/ccnd.sock"))
	require.Equal(t, "stream-face (unix:///run/ccnd.sock)", f.String())

	f = tu.NoErr(engine.NewFaceFromUri("ws://localhost:9696/ccnx"))
	require.Equal(t, "websocket-face (ws://localhost:9696/ccnx)", f.String())

	f = tu.NoErr(engine.NewFaceFromUri("quic://localhost:6367"))
	require.Equal(t, "quic-face (localhost:6367)", f.String())

	_, err := engine.NewFaceFromUri("tcp://")
	require.Error(t, err)

	_, err = engine.NewFaceFromUri("udp://localhost:9695")
	require.IsType(t, ndn.ErrNotSupported{}, err)
}

func TestClientConfigEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CCNX_CLIENT_TRANSPORT", "unix:///tmp/ccnd.sock")
	require.Equal(t, "unix:///tmp/ccnd.sock", engine.GetClientConfig().TransportUri)

	t.Setenv("CCNX_CLIENT_TRANSPORT", "")
	require.Equal(t, engine.DefaultTransportUri, engine.GetClientConfig().TransportUri)
}
