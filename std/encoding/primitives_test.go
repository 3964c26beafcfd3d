package encoding_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	enc "github.com/named-data/ndnx/std/encoding"
	tu "github.com/named-data/ndnx/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestTypeAndValueVectors(t *testing.T) {
	tu.SetT(t)

	for _, tc := range []struct {
		typ  enc.ElemType
		val  uint64
		wire string
	}{
		{enc.DTagType, 14, "f2"},
		{enc.DTagType, 15, "fa"},
		{enc.DTagType, 26, "01d2"},
		{enc.DTagType, 64, "0482"},
		{enc.BlobType, 0, "85"},
		{enc.BlobType, 3, "9d"},
		{enc.UDataType, 3, "9e"},
		{enc.BlobType, 100, "06a5"},
	} {
		wire := tu.Hex(tc.wire)
		require.Equal(t, len(wire), enc.TypeAndValueLength(tc.val))
		require.Equal(t, wire, enc.AppendTypeAndValue(nil, tc.typ, tc.val))

		typ, val, err := enc.ReadTypeAndValue(bytes.NewReader(wire))
		require.NoError(t, err)
		require.Equal(t, tc.typ, typ)
		require.Equal(t, tc.val, val)
	}
}

func TestTypeAndValueRoundTrip(t *testing.T) {
	tu.SetT(t)

	for _, val := range []uint64{0, 1, 15, 16, 2047, 2048, 1 << 32, 1<<63 + 5, ^uint64(0)} {
		buf := enc.AppendTypeAndValue(nil, enc.UDataType, val)
		typ, got, err := enc.ReadTypeAndValue(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equal(t, enc.UDataType, typ)
		require.Equal(t, val, got)
	}
}

func TestReadTypeAndValueClose(t *testing.T) {
	tu.SetT(t)

	r := bytes.NewReader([]byte{0x00, 0xf2})
	typ, val, err := enc.ReadTypeAndValue(r)
	require.NoError(t, err)
	require.Equal(t, enc.CloseType, typ)
	require.Equal(t, uint64(0), val)
	require.Equal(t, 1, r.Len())

	// A terminal byte of type 0 is a Close too, whatever its value bits
	for _, b := range [][]byte{{0x80}, {0xf8}, {0x01, 0x80}} {
		typ, val, err = enc.ReadTypeAndValue(bytes.NewReader(b))
		require.NoError(t, err)
		require.Equal(t, enc.CloseType, typ)
		require.Equal(t, uint64(0), val)
	}
}

func TestDecodeTerminalClose(t *testing.T) {
	tu.SetT(t)

	dec := tu.NoErr(enc.DecodeBytes([]byte{0x80}))
	require.Equal(t, 1, dec.Len())
	require.NoError(t, dec.ReadEndElement())

	// <Name> closed by a terminal-byte Close
	dec = tu.NoErr(enc.DecodeBytes([]byte{0xf2, 0x80, 0xf2}))
	require.Equal(t, 2, dec.Len())
	require.Equal(t, 2, dec.BytesRead())
	name := tu.NoErr(dec.ReadName())
	require.Empty(t, name)
	require.True(t, dec.IsEOF())
}

func TestReadTypeAndValueErrors(t *testing.T) {
	tu.SetT(t)

	// clean boundary
	_, _, err := enc.ReadTypeAndValue(bytes.NewReader(nil))
	require.Equal(t, io.EOF, err)

	// continuation byte without terminal
	_, _, err = enc.ReadTypeAndValue(bytes.NewReader([]byte{0x01}))
	require.True(t, errors.Is(err, enc.ErrTruncated))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// TAG, ATTR and DATTR never appear on the wire
	for _, b := range []byte{0x81, 0x83, 0x84, 0x87} {
		_, _, err = enc.ReadTypeAndValue(bytes.NewReader([]byte{b}))
		require.IsType(t, enc.ErrMalformedTag{}, err)
	}

	// value wider than 64 bits
	over := bytes.Repeat([]byte{0x7f}, 10)
	over = append(over, 0xfa)
	_, _, err = enc.ReadTypeAndValue(bytes.NewReader(over))
	require.IsType(t, enc.ErrMalformedTag{}, err)
}
