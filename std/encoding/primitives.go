package encoding

import (
	"io"
)

// ElemType is the type code carried in the terminal byte of an element header.
type ElemType uint8

// DTag is a dictionary tag: the numeric identifier of a start element.
type DTag uint64

// Element types of the binary XML wire format.
// Code 0 is Close: a lone zero byte, or a terminal byte with type 0 whose
// value bits are ignored. TAG, ATTR and DATTR are never accepted from the wire.
const (
	CloseType ElemType = 0
	TagType   ElemType = 1
	DTagType  ElemType = 2
	AttrType  ElemType = 3
	DAttrType ElemType = 4
	BlobType  ElemType = 5
	UDataType ElemType = 6
)

// Bit layout of an element header. These constants are the wire contract
// shared with every ccnb encoder and must not change.
//
// A header is zero or more continuation bytes (high bit clear, 7 value bits
// each, most significant first) followed by one terminal byte:
//
//	1 vvvv ttt
//
// with 4 more value bits and the 3-bit element type.
const (
	TTBits     = 3
	TTMask     = (1 << TTBits) - 1
	TTValBits  = TTBits + 1
	TTValMask  = (1 << TTValBits) - 1
	RegValBits = 7
	RegValMask = (1 << RegValBits) - 1
	TTNoMore   = 1 << RegValBits
)

// CloseByte terminates the most recently opened element.
const CloseByte byte = 0x00

func (t ElemType) String() string {
	switch t {
	case CloseType:
		return "CLOSE"
	case TagType:
		return "TAG"
	case DTagType:
		return "DTAG"
	case AttrType:
		return "ATTR"
	case DAttrType:
		return "DATTR"
	case BlobType:
		return "BLOB"
	case UDataType:
		return "UDATA"
	default:
		return "UNKNOWN"
	}
}

// ReadTypeAndValue reads one element header from r.
//
// io.EOF is returned as-is only when the stream ends before the first byte,
// so callers can tell a clean document boundary from a truncated header.
// For BlobType and UDataType the value is the payload length, and the caller
// must read exactly that many raw bytes before the next header.
func ReadTypeAndValue(r io.ByteReader) (typ ElemType, val uint64, err error) {
	more := false
	for {
		var b byte
		if b, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				if !more {
					return 0, 0, io.EOF
				}
				err = io.ErrUnexpectedEOF
			}
			return 0, 0, ErrTruncatedStream{Err: err}
		}

		// A zero byte at the start of a header is the Close marker
		if !more && b == CloseByte {
			return CloseType, 0, nil
		}

		if b&TTNoMore == 0 {
			if val>>(64-RegValBits) != 0 {
				return 0, 0, ErrMalformedTag{Msg: "value overflows 64 bits"}
			}
			val = (val << RegValBits) | uint64(b&RegValMask)
			more = true
			continue
		}

		if val>>(64-TTValBits) != 0 {
			return 0, 0, ErrMalformedTag{Msg: "value overflows 64 bits"}
		}
		typ = ElemType(b & TTMask)
		val = (val << TTValBits) | uint64((b>>TTBits)&TTValMask)
		break
	}

	switch typ {
	case CloseType:
		return CloseType, 0, nil
	case DTagType, BlobType, UDataType:
		return typ, val, nil
	default:
		return 0, 0, ErrMalformedTag{Type: typ}
	}
}

// TypeAndValueLength returns the number of bytes needed to encode a header with value val.
func TypeAndValueLength(val uint64) int {
	n := 1
	for val >>= TTValBits; val != 0; val >>= RegValBits {
		n++
	}
	return n
}

// EncodeTypeAndValue encodes an element header into buf, returning the number
// of bytes written. It panics if buf is shorter than TypeAndValueLength(val).
func EncodeTypeAndValue(buf Buffer, typ ElemType, val uint64) int {
	n := TypeAndValueLength(val)
	buf[n-1] = TTNoMore | byte((val&TTValMask)<<TTBits) | byte(typ&TTMask)
	val >>= TTValBits
	for i := n - 2; i >= 0; i-- {
		buf[i] = byte(val & RegValMask)
		val >>= RegValBits
	}
	return n
}

// AppendTypeAndValue appends an element header to dst.
func AppendTypeAndValue(dst []byte, typ ElemType, val uint64) []byte {
	var hdr [10]byte
	n := EncodeTypeAndValue(hdr[:], typ, val)
	return append(dst, hdr[:n]...)
}
