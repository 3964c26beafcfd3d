package spec_ccnb

import (
	"fmt"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/ndn"
	"github.com/named-data/ndnx/std/types/optional"
)

// PacketKind tells which member of a Packet is set.
type PacketKind int

const (
	// The document is not a packet this package knows.
	PacketNone PacketKind = iota
	PacketInterest
	PacketContentObject
)

func (k PacketKind) String() string {
	switch k {
	case PacketInterest:
		return "Interest"
	case PacketContentObject:
		return "ContentObject"
	default:
		return "None"
	}
}

// Packet is the result of ReadPacket. Exactly one member is set unless
// Kind is PacketNone.
type Packet struct {
	Kind          PacketKind
	Interest      *Interest
	ContentObject *ContentObject
}

// Name returns the name of the packet, or nil.
func (p *Packet) Name() enc.Name {
	switch p.Kind {
	case PacketInterest:
		return p.Interest.Name
	case PacketContentObject:
		return p.ContentObject.Name
	default:
		return nil
	}
}

type dispatcher struct{}

func (dispatcher) String() string {
	return "spec-ccnb"
}

// ReadPacket decodes the packet starting at the cursor of dec.
//
// A top-level element that is not an Interest or a ContentObject is not an
// error: it yields a PacketNone and a warning, and the cursor stays put so
// the caller may decode it by other means. An element under the cursor that
// is not a start element is an ErrUnexpectedElement.
func ReadPacket(dec *enc.Decoder) (*Packet, error) {
	tag, err := dec.PeekStartElementAsTag()
	if err != nil {
		return nil, err
	}
	t, ok := tag.Get()
	if !ok {
		e, _ := dec.Element(dec.Pos())
		return nil, enc.ErrUnexpectedElement{Pos: dec.Pos(), Expected: enc.DTagType, Got: e}
	}

	switch t {
	case ndn.DTagInterest:
		i := &Interest{}
		if err := i.Decode(dec); err != nil {
			return nil, err
		}
		return &Packet{Kind: PacketInterest, Interest: i}, nil
	case ndn.DTagContentObject:
		c := &ContentObject{}
		if err := c.Decode(dec); err != nil {
			return nil, err
		}
		return &Packet{Kind: PacketContentObject, ContentObject: c}, nil
	default:
		log.Warn(dispatcher{}, "Unrecognized packet", "tag", ndn.TagName(t), "pos", dec.Pos())
		return &Packet{Kind: PacketNone}, nil
	}
}

// ParsePacket decodes the first document of wire.
func ParsePacket(wire []byte) (*Packet, error) {
	dec, err := enc.DecodeBytes(wire)
	if err != nil {
		return nil, err
	}
	return ReadPacket(dec)
}

// Bytes encodes the packet.
func (p *Packet) Bytes() ([]byte, error) {
	switch p.Kind {
	case PacketInterest:
		return p.Interest.Bytes()
	case PacketContentObject:
		return p.ContentObject.Bytes()
	default:
		return nil, ndn.ErrWrongType
	}
}

func (p *Packet) String() string {
	switch p.Kind {
	case PacketInterest, PacketContentObject:
		return fmt.Sprintf("%s %s", p.Kind, p.Name())
	default:
		return p.Kind.String()
	}
}

func readOptionalInt(dec *enc.Decoder, tag enc.DTag) (optional.Optional[uint64], error) {
	ok, err := dec.PeekStartElement(tag)
	if err != nil || !ok {
		return optional.None[uint64](), err
	}
	v, err := dec.ReadIntegerElement(tag)
	if err != nil {
		return optional.None[uint64](), err
	}
	return optional.Some(v), nil
}

func writeOptionalInt(e *enc.Encoder, tag enc.DTag, v optional.Optional[uint64]) {
	if n, ok := v.Get(); ok {
		e.WriteIntegerElement(tag, n)
	}
}

func readOptionalBlob(dec *enc.Decoder, tag enc.DTag) ([]byte, error) {
	ok, err := dec.PeekStartElement(tag)
	if err != nil || !ok {
		return nil, err
	}
	return dec.ReadBinaryElement(tag)
}
