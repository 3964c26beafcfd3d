package encoding

import (
	"bytes"
	"errors"
	"strings"
)

// Name is a hierarchical name: an ordered sequence of components.
type Name []Component

// URI schemes accepted by NameFromStr. URI prints the first one.
var nameSchemes = []string{"ccnx:", "ndn:"}

// String returns the path form of the name, such as "/a/b". The root name is "/".
func (n Name) String() string {
	if len(n) == 0 {
		return "/"
	}
	sb := strings.Builder{}
	for _, c := range n {
		sb.WriteByte('/')
		WriteComponentURI(&sb, c.Val)
	}
	return sb.String()
}

// URI returns the name with the ccnx: scheme, such as "ccnx:/a/b".
func (n Name) URI() string {
	return nameSchemes[0] + n.String()
}

// NameFromStr parses a name URI.
//
// An optional scheme and "//authority" are dropped, and so is everything
// from the first '?' or '#'. Segments that denote no component ("", ".")
// are skipped and ".." removes the previous component.
func NameFromStr(s string) (Name, error) {
	for _, scheme := range nameSchemes {
		if len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme) {
			s = s[len(scheme):]
			break
		}
	}
	if strings.HasPrefix(s, "//") {
		if i := strings.IndexByte(s[2:], '/'); i >= 0 {
			s = s[2+i:]
		} else {
			s = ""
		}
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}

	ret := make(Name, 0, strings.Count(s, "/")+1)
	for _, seg := range strings.Split(s, "/") {
		c, err := ParseComponentURI(seg)
		if errors.Is(err, ErrReservedComponent) {
			ret = ret.Prefix(-1)
			continue
		}
		if err != nil {
			return nil, err
		}
		if c.IsSet() {
			ret = append(ret, c.Unwrap())
		}
	}
	return ret, nil
}

// EncodeInto encodes the components of a Name into a Buffer **excluding**
// the enclosing Name element. Please use Bytes() to get the full encoding.
func (n Name) EncodeInto(buf Buffer) int {
	pos := 0
	for _, c := range n {
		pos += c.EncodeInto(buf[pos:])
	}
	return pos
}

// EncodingLength computes the length of the components' encoding
// **excluding** the enclosing Name element.
func (n Name) EncodingLength() int {
	ret := 0
	for _, c := range n {
		ret += c.EncodingLength()
	}
	return ret
}

// Bytes returns the encoding <Name><Component>...</Component>...</Name>.
func (n Name) Bytes() []byte {
	hl := TypeAndValueLength(uint64(NameDTag))
	buf := make([]byte, hl+n.EncodingLength()+1)
	p := EncodeTypeAndValue(buf, DTagType, uint64(NameDTag))
	p += n.EncodeInto(buf[p:])
	buf[p] = CloseByte
	return buf
}

// BytesInner returns the concatenated component encodings. Every
// component encoding is self-delimiting, so a name prefix is a byte
// prefix of this key.
func (n Name) BytesInner() []byte {
	buf := make([]byte, n.EncodingLength())
	n.EncodeInto(buf)
	return buf
}

// NameFromBytes decodes a name from its full encoding.
func NameFromBytes(buf []byte) (Name, error) {
	d, err := DecodeBytes(buf)
	if err != nil {
		return nil, err
	}
	return d.ReadName()
}

// NameFromBytesInner decodes a name from the output of BytesInner.
func NameFromBytesInner(buf []byte) (Name, error) {
	ret := make(Name, 0, 8)
	r := bytes.NewReader(buf)
	d := NewDecoder()
	for r.Len() > 0 {
		if err := d.BeginDecoding(r); err != nil {
			return nil, err
		}
		c, err := d.ReadComponent()
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}

// ReadName reads <Name>(<Component>BLOB</Component>)*</Name>.
func (d *Decoder) ReadName() (Name, error) {
	if err := d.ReadStartElement(NameDTag); err != nil {
		return nil, err
	}
	ret := make(Name, 0, 8)
	for {
		ok, err := d.PeekStartElement(ComponentDTag)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		c, err := d.ReadComponent()
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	if err := d.ReadEndElement(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Clone returns a deep copy of a Name
func (n Name) Clone() Name {
	ret := make(Name, len(n))
	valLen := 0
	for i := range n {
		valLen += len(n[i].Val)
	}
	buf := make([]byte, valLen)
	for i, c := range n {
		vlen := copy(buf, c.Val)
		ret[i].Val = buf[:vlen:vlen]
		buf = buf[vlen:]
	}
	return ret
}

// Get the ith component of a Name.
// If i is out of range, a zero component is returned.
// Negative values start from the end.
func (n Name) At(i int) Component {
	if i < -len(n) || i >= len(n) {
		return Component{}
	} else if i < 0 {
		return n[len(n)+i]
	}
	return n[i]
}

// Get a name prefix with the first i components.
// If i is negative, i components are removed from the end.
// Note that the returned name is not a deep copy.
func (n Name) Prefix(i int) Name {
	if i < 0 {
		i = len(n) + i
	}
	if i <= 0 {
		return Name{}
	}
	if i >= len(n) {
		return n
	}
	return n[:i]
}

// Append appends components to a copy of the name.
// The receiver is never modified.
func (n Name) Append(rest ...Component) Name {
	if len(rest) == 0 {
		return n
	}
	ret := make(Name, len(n)+len(rest), len(n)+len(rest)+8)
	copy(ret, n)
	copy(ret[len(n):], rest)
	return ret
}

// Compare orders names component by component. A proper prefix sorts first.
func (n Name) Compare(rhs Name) int {
	for i := 0; i < min(len(n), len(rhs)); i++ {
		if ret := n[i].Compare(rhs[i]); ret != 0 {
			return ret
		}
	}
	switch {
	case len(n) < len(rhs):
		return -1
	case len(n) > len(rhs):
		return 1
	default:
		return 0
	}
}

func (n Name) Equal(rhs Name) bool {
	if len(n) != len(rhs) {
		return false
	}
	for i := range n {
		if !n[i].Equal(rhs[i]) {
			return false
		}
	}
	return true
}

// IsPrefix returns true if n is a prefix of rhs. Every name is a prefix of itself.
func (n Name) IsPrefix(rhs Name) bool {
	if len(n) > len(rhs) {
		return false
	}
	for i := range n {
		if !n[i].Equal(rhs[i]) {
			return false
		}
	}
	return true
}

// Hash returns the hash of the name
func (n Name) Hash() uint64 {
	xx := xxHashPoolGet()
	defer xxHashPoolPut(xx)
	for _, c := range n {
		xx.writeComponent(c)
	}
	return xx.sum()
}

// PrefixHash returns the hash value of all prefixes of the name.
// ret[i] is the hash of the prefix of length i, so ret[len(n)] == n.Hash().
func (n Name) PrefixHash() []uint64 {
	xx := xxHashPoolGet()
	defer xxHashPoolPut(xx)

	ret := make([]uint64, len(n)+1)
	ret[0] = xx.hash.Sum64()
	for i, c := range n {
		xx.buffer.Reset()
		xx.writeComponent(c)
		ret[i+1] = xx.sum()
	}
	return ret
}
