package encoding_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	enc "github.com/named-data/ndnx/std/encoding"
	tu "github.com/named-data/ndnx/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

// <Name><Component>ABC</Component></Name>
const nameABC = "f2 fa 9d 414243 00 00"

func TestReadNestedBlob(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex(nameABC)))
	require.Equal(t, 5, d.Len())
	require.Equal(t, 7, d.BytesRead())

	require.NoError(t, d.ReadStartElement(enc.NameDTag))
	require.NoError(t, d.ReadStartElement(enc.ComponentDTag))
	require.Equal(t, []byte("ABC"), tu.NoErr(d.ReadBinary(enc.BlobType)))
	require.Equal(t, 4, d.Pos())
	require.NoError(t, d.ReadEndElement())
	require.Equal(t, 5, d.Pos())
	require.True(t, d.IsEOF())

	_, err := d.PeekStartElement(enc.NameDTag)
	require.IsType(t, enc.ErrPastEndOfDocument{}, err)
}

func TestPeekNeverAdvances(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex(nameABC)))
	require.True(t, tu.NoErr(d.PeekStartElement(enc.NameDTag)))
	require.False(t, tu.NoErr(d.PeekStartElement(enc.ComponentDTag)))
	tag := tu.NoErr(d.PeekStartElementAsTag())
	require.Equal(t, enc.NameDTag, tag.Unwrap())
	require.Equal(t, 0, d.Pos())

	// Blob under the cursor
	require.NoError(t, d.ReadStartElement(enc.NameDTag))
	require.NoError(t, d.ReadStartElement(enc.ComponentDTag))
	_, err := d.PeekStartElementAsTag()
	require.IsType(t, enc.ErrUnexpectedElement{}, err)
	require.Equal(t, 2, d.Pos())

	// Close under the cursor
	tu.NoErr(d.ReadBlob())
	tag = tu.NoErr(d.PeekStartElementAsTag())
	require.False(t, tag.IsSet())
}

func TestReadStartElementMismatch(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex(nameABC)))
	err := d.ReadStartElement(enc.ComponentDTag)
	var mismatch enc.ErrUnexpectedElement
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, 0, mismatch.Pos)
	require.Equal(t, enc.NameDTag, mismatch.Got.Tag())
	require.Equal(t, 0, d.Pos())

	require.IsType(t, enc.ErrUnexpectedElement{}, d.ReadEndElement())
	require.Equal(t, 0, d.Pos())
}

func TestReadBinaryOnStartTag(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex(nameABC)))
	val, err := d.ReadBinary(enc.BlobType)
	require.NoError(t, err)
	require.Len(t, val, 0)
	require.Equal(t, 0, d.Pos())

	// The tape is unchanged and still reads normally
	require.Equal(t, 5, d.Len())
	require.NoError(t, d.ReadStartElement(enc.NameDTag))
	require.NoError(t, d.ReadStartElement(enc.ComponentDTag))
	require.Equal(t, []byte("ABC"), tu.NoErr(d.ReadBlob()))
}

func TestReadOmittedBlob(t *testing.T) {
	tu.SetT(t)

	// <Name><Component></Component></Name>
	d := tu.NoErr(enc.DecodeBytes(tu.Hex("f2 fa 00 00")))
	require.NoError(t, d.ReadStartElement(enc.NameDTag))
	require.NoError(t, d.ReadStartElement(enc.ComponentDTag))
	val := tu.NoErr(d.ReadOptionalBinary(enc.BlobType))
	require.Len(t, val, 0)
	require.Equal(t, 3, d.Pos())
	require.NoError(t, d.ReadEndElement())
	require.True(t, d.IsEOF())
}

func TestReadBinaryStrictUData(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex("f2 fa 00 00")))
	require.NoError(t, d.ReadStartElement(enc.NameDTag))
	_, err := d.ReadBinary(enc.UDataType)
	require.IsType(t, enc.ErrUnexpectedElement{}, err)
	require.Equal(t, 1, d.Pos())

	_, err = d.ReadBinary(enc.DTagType)
	require.IsType(t, enc.ErrUnsupported{}, err)
}

func TestReadEmptyBlob(t *testing.T) {
	tu.SetT(t)

	// explicit zero-length Blob
	d := tu.NoErr(enc.DecodeBytes(tu.Hex("fa 85 00")))
	val := tu.NoErr(d.ReadBinaryElement(enc.ComponentDTag))
	require.NotNil(t, val)
	require.Len(t, val, 0)
	require.True(t, d.IsEOF())
}

func TestReadUString(t *testing.T) {
	tu.SetT(t)

	e := enc.NewEncoder(0)
	e.WriteUStringElement(enc.NameDTag, "héllo")
	d := tu.NoErr(enc.DecodeBytes(tu.NoErr(e.Bytes())))
	require.Equal(t, "héllo", tu.NoErr(d.ReadUStringElement(enc.NameDTag)))
	require.True(t, d.IsEOF())
}

func TestReadUStringInvalid(t *testing.T) {
	tu.SetT(t)

	// UData of two bytes that are not UTF-8
	d := tu.NoErr(enc.DecodeBytes(tu.Hex("f2 96 fffe 00")))
	require.NoError(t, d.ReadStartElement(enc.NameDTag))

	_, err := d.ReadUString()
	var decErr enc.ErrDecoding
	require.True(t, errors.As(err, &decErr))
	require.Equal(t, 1, decErr.Pos)
	// cursor stays on the offending element
	require.Equal(t, 1, d.Pos())

	raw := tu.NoErr(d.ReadBinary(enc.UDataType))
	require.Equal(t, []byte{0xff, 0xfe}, raw)
	require.True(t, d.IsEOF())
}

func TestReadIntegerAndTimestamp(t *testing.T) {
	tu.SetT(t)

	ts := enc.TimestampFromTime(time.Unix(1700000000, 250000000))
	e := enc.NewEncoder(64)
	e.WriteStartElement(enc.NameDTag)
	e.WriteIntegerElement(enc.ComponentDTag, 3600)
	e.WriteTimestampElement(enc.ComponentDTag, ts)
	e.WriteEndElement()

	d := tu.NoErr(enc.DecodeBytes(tu.NoErr(e.Bytes())))
	require.NoError(t, d.ReadStartDocument())
	require.NoError(t, d.ReadStartElement(enc.NameDTag))
	require.Equal(t, uint64(3600), tu.NoErr(d.ReadIntegerElement(enc.ComponentDTag)))
	require.Equal(t, ts, tu.NoErr(d.ReadTimestamp(enc.ComponentDTag)))
	require.NoError(t, d.ReadEndElement())
	require.NoError(t, d.ReadEndDocument())

	d = tu.NoErr(enc.DecodeBytes(tu.Hex("fa 9e 616263 00")))
	_, err := d.ReadIntegerElement(enc.ComponentDTag)
	require.IsType(t, enc.ErrDecoding{}, err)
}

func TestTagNamesUnsupported(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex(nameABC)))
	_, err := d.PeekStartElementAsString()
	require.IsType(t, enc.ErrUnsupported{}, err)
	require.IsType(t, enc.ErrUnsupported{}, d.ReadStartElementByName("Name"))
	_, err = d.ReadTimestampByName("Timestamp")
	require.IsType(t, enc.ErrUnsupported{}, err)
	require.Equal(t, 0, d.Pos())
}

func TestDump(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex(nameABC)))
	out := d.Dump(func(tag enc.DTag) string {
		if tag == enc.NameDTag {
			return "Name"
		}
		return "Component"
	})
	require.Contains(t, out, ">  0 DTAG 0x000e Name")
	require.Contains(t, out, "    BLOB len=3")
	require.Equal(t, 5, bytes.Count([]byte(d.String()), []byte("\n")))
}

func TestFramerTruncated(t *testing.T) {
	tu.SetT(t)

	for _, wire := range []string{
		"f2 fa 9d 414243 00", // outer element never closed
		"f2 fa 9d 4142",      // payload cut short
		"f2 01",              // header cut short
	} {
		d := enc.NewDecoder()
		err := d.BeginDecoding(bytes.NewReader(tu.Hex(wire)))
		require.True(t, errors.Is(err, enc.ErrTruncated), wire)
		require.Equal(t, 0, d.Len())
	}
}

func TestFramerCleanEOF(t *testing.T) {
	tu.SetT(t)

	_, err := enc.DecodeBytes(nil)
	require.Equal(t, io.EOF, err)
}

func TestFramerMalformed(t *testing.T) {
	tu.SetT(t)

	_, err := enc.DecodeBytes(tu.Hex("f2 81 00"))
	require.IsType(t, enc.ErrMalformedTag{}, err)
}

func TestFramerTooLarge(t *testing.T) {
	tu.SetT(t)

	d := enc.NewDecoderWithOptions(enc.DecoderOptions{MaxDocumentSize: 16})
	// declares a 100-byte Blob; nothing after the header exists
	err := d.BeginDecoding(bytes.NewReader(tu.Hex("f2 06a5")))
	var tooLarge enc.ErrDocumentTooLarge
	require.True(t, errors.As(err, &tooLarge))
	require.Equal(t, 16, tooLarge.Limit)

	require.NoError(t, d.BeginDecoding(bytes.NewReader(tu.Hex(nameABC))))
}

func TestFramerSingleElement(t *testing.T) {
	tu.SetT(t)

	d := tu.NoErr(enc.DecodeBytes(tu.Hex("9d 414243 f2")))
	require.Equal(t, 1, d.Len())
	require.Equal(t, 4, d.BytesRead())
}

func TestFramerConsecutiveDocuments(t *testing.T) {
	tu.SetT(t)

	// a reader without ReadByte must not be read past the first document
	stream := append(tu.Hex(nameABC), tu.Hex("f2 fa 00 00")...)
	r := struct{ io.Reader }{bytes.NewReader(stream)}

	d := enc.NewDecoder()
	require.NoError(t, d.BeginDecoding(r))
	require.Equal(t, 5, d.Len())
	require.NoError(t, d.BeginDecoding(r))
	require.Equal(t, 4, d.Len())
	require.Equal(t, io.EOF, d.BeginDecoding(r))
}

func TestFramerTapeGrowth(t *testing.T) {
	tu.SetT(t)

	name := enc.Name{}
	for i := 0; i < 5; i++ {
		name = name.Append(enc.Component{})
	}
	d := enc.NewDecoderWithOptions(enc.DecoderOptions{TapeSize: 4, TapeIncrement: 2})
	require.NoError(t, d.BeginDecoding(bytes.NewReader(name.Bytes())))
	require.Equal(t, 12, d.Len())
	require.Equal(t, 4, d.Tape().Grows())
	require.True(t, name.Equal(tu.NoErr(d.ReadName())))
}

func TestDecodeWire(t *testing.T) {
	tu.SetT(t)

	raw := tu.Hex(nameABC)
	w := enc.Wire{raw[:2], raw[2:3], {}, raw[3:]}
	d := tu.NoErr(enc.DecodeWire(w))
	name := tu.NoErr(d.ReadName())
	require.Equal(t, "/ABC", name.String())

	r := enc.NewWireReader(w)
	require.Equal(t, len(raw), r.Length())
	tu.NoErr(r.ReadByte())
	tu.NoErr(r.ReadByte())
	tu.NoErr(r.ReadByte())
	require.Equal(t, 3, r.Pos())
}
