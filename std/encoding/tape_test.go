package encoding_test

import (
	"testing"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/stretchr/testify/require"
)

func TestTapeGrowth(t *testing.T) {
	tape := enc.NewTape(2, 3)
	require.Equal(t, 2, tape.Cap())

	for i := 0; i < 6; i++ {
		idx := tape.Append(enc.Element{Type: enc.DTagType, Value: uint64(i)})
		require.Equal(t, i, idx)
	}

	// 2 -> 5 -> 8, never doubling
	require.Equal(t, 2, tape.Grows())
	require.Equal(t, 8, tape.Cap())
	require.Equal(t, 6, tape.Len())
	for i := 0; i < 6; i++ {
		e, ok := tape.At(i)
		require.True(t, ok)
		require.Equal(t, enc.DTag(i), e.Tag())
	}

	_, ok := tape.At(6)
	require.False(t, ok)
	_, ok = tape.At(-1)
	require.False(t, ok)

	tape.Reset()
	require.Equal(t, 0, tape.Len())
	require.Equal(t, 8, tape.Cap())
}

func TestTapeDefaults(t *testing.T) {
	tape := enc.NewTape(0, -1)
	require.Equal(t, enc.DefaultTapeSize, tape.Cap())
	for i := 0; i <= enc.DefaultTapeSize; i++ {
		tape.Append(enc.Element{Type: enc.CloseType})
	}
	require.Equal(t, 1, tape.Grows())
	require.Equal(t, enc.DefaultTapeSize+enc.DefaultTapeIncrement, tape.Cap())
}

func TestElementString(t *testing.T) {
	require.Equal(t, "CLOSE", enc.Element{Type: enc.CloseType}.String())
	require.Equal(t, "DTAG 0x000e", enc.Element{Type: enc.DTagType, Value: 14}.String())
	require.Equal(t, "BLOB len=3", enc.Element{Type: enc.BlobType, Value: 3}.String())
	require.True(t, enc.Element{Type: enc.DTagType}.IsStart())
}
