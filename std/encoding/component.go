package encoding

import (
	"bytes"
)

// Dictionary tags of the name structure. They are needed at this layer
// because names are encoded and hashed here; the full dictionary lives
// in package ndn.
const (
	NameDTag      DTag = 14
	ComponentDTag DTag = 15
)

var (
	HEX_LOWER = []byte("0123456789abcdef")
	HEX_UPPER = []byte("0123456789ABCDEF")
)

// Component is one segment of a hierarchical name: an opaque byte string.
// Equality and ordering are over the raw bytes.
type Component struct {
	Val []byte
}

// NewBytesComponent creates a component holding a copy of b.
func NewBytesComponent(b []byte) Component {
	return Component{Val: append([]byte{}, b...)}
}

// NewStringComponent creates a component from the raw bytes of s.
func NewStringComponent(s string) Component {
	return Component{Val: []byte(s)}
}

// ComponentFromStr parses the URI text form of a single component.
// Text that denotes no component at all ("" and ".") is an error here.
func ComponentFromStr(s string) (Component, error) {
	c, err := ParseComponentURI(s)
	if err != nil {
		return Component{}, err
	}
	if !c.IsSet() {
		return Component{}, ErrFormat{Msg: "no component in " + s}
	}
	return c.Unwrap(), nil
}

func (c Component) Clone() Component {
	return Component{Val: append([]byte{}, c.Val...)}
}

// Length returns the number of value bytes.
func (c Component) Length() int {
	return len(c.Val)
}

func (c Component) String() string {
	return PrintComponentURI(c.Val)
}

// Append creates a name starting with c.
func (c Component) Append(rest ...Component) Name {
	return Name{c}.Append(rest...)
}

// EncodingLength returns the size of the ccnb encoding
// <Component>BLOB</Component>. The Blob is omitted for an empty value.
func (c Component) EncodingLength() int {
	l := TypeAndValueLength(uint64(ComponentDTag)) + 1
	if len(c.Val) > 0 {
		l += TypeAndValueLength(uint64(len(c.Val))) + len(c.Val)
	}
	return l
}

// EncodeInto writes the ccnb encoding into buf, which must hold
// EncodingLength bytes.
func (c Component) EncodeInto(buf Buffer) int {
	p := EncodeTypeAndValue(buf, DTagType, uint64(ComponentDTag))
	if len(c.Val) > 0 {
		p += EncodeTypeAndValue(buf[p:], BlobType, uint64(len(c.Val)))
		p += copy(buf[p:], c.Val)
	}
	buf[p] = CloseByte
	return p + 1
}

// Bytes returns the ccnb encoding.
func (c Component) Bytes() []byte {
	buf := make([]byte, c.EncodingLength())
	c.EncodeInto(buf)
	return buf
}

// Compare orders components lexicographically by their bytes.
func (c Component) Compare(rhs Component) int {
	return bytes.Compare(c.Val, rhs.Val)
}

func (c Component) Equal(rhs Component) bool {
	return bytes.Equal(c.Val, rhs.Val)
}

// NumberVal returns the value read as a big-endian number.
func (c Component) NumberVal() uint64 {
	ret := uint64(0)
	for _, v := range c.Val {
		ret = (ret << 8) | uint64(v)
	}
	return ret
}

// Hash returns the hash of the component encoding.
func (c Component) Hash() uint64 {
	xx := xxHashPoolGet()
	defer xxHashPoolPut(xx)
	xx.writeComponent(c)
	return xx.sum()
}

// ReadComponent reads <Component>BLOB</Component>. A Component without a
// Blob is the empty component.
func (d *Decoder) ReadComponent() (Component, error) {
	val, err := d.ReadBinaryElement(ComponentDTag)
	if err != nil {
		return Component{}, err
	}
	return Component{Val: val}, nil
}
