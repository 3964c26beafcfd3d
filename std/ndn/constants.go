package ndn

import "time"

// MaxMessageSize is the size of the largest packet a face is expected to carry.
// Stream faces accept larger documents up to the decoder limit.
const MaxMessageSize = 8800

// DefaultInterestLifetime is used when an Interest carries no lifetime.
const DefaultInterestLifetime = 4 * time.Second

// ContentType is the 3-byte type code of a ContentObject.
// The codes are the base64 spellings of the type names.
type ContentType uint32

const (
	ContentTypeData ContentType = 0x0C04C0
	ContentTypeEncr ContentType = 0x10D091
	ContentTypeGone ContentType = 0x18E344
	ContentTypeKey  ContentType = 0x28463F
	ContentTypeLink ContentType = 0x2C834A
	ContentTypeNack ContentType = 0x34008A
)

func (t ContentType) String() string {
	switch t {
	case ContentTypeData:
		return "DATA"
	case ContentTypeEncr:
		return "ENCR"
	case ContentTypeGone:
		return "GONE"
	case ContentTypeKey:
		return "KEY"
	case ContentTypeLink:
		return "LINK"
	case ContentTypeNack:
		return "NACK"
	default:
		return "UNKNOWN"
	}
}

// Bytes returns the 3-byte wire form.
func (t ContentType) Bytes() []byte {
	return []byte{byte(t >> 16), byte(t >> 8), byte(t)}
}

// ContentTypeFromBytes parses the 3-byte wire form.
func ContentTypeFromBytes(b []byte) (ContentType, error) {
	if len(b) != 3 {
		return 0, ErrInvalidValue{Item: "ContentType", Value: b}
	}
	return ContentType(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])), nil
}

// ChildSelector picks which match an Interest prefers when several exist.
type ChildSelector uint64

const (
	ChildSelectorLeftmost  ChildSelector = 0
	ChildSelectorRightmost ChildSelector = 1
)

// AnswerOriginKind flags of an Interest.
const (
	AnswerContentStore uint64 = 1
	AnswerGenerated    uint64 = 2
	AnswerStale        uint64 = 4
	MarkedForRemoval   uint64 = 16
	AnswerDefault      uint64 = AnswerContentStore | AnswerGenerated
)

// Scope values of an Interest.
const (
	ScopeLocalHost uint64 = 0
	ScopeLocalNode uint64 = 1
	ScopeNextHop   uint64 = 2
)
