package encoding

import (
	"strings"

	"github.com/named-data/ndnx/std/types/optional"
)

// Canonical URI text form of a name component.
//
// Unreserved characters are printed as-is and every other byte as %XY.
// Values made only of dots get three extra dots appended, so that "." and
// ".." keep their path meaning and "..." is the empty component.

// isUnreservedByte reports whether b may appear unescaped in printed output.
func isUnreservedByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9') ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

// isPermittedReserved reports whether b is a reserved character that the
// parser accepts without escaping. The printer always escapes these.
func isPermittedReserved(b byte) bool {
	return strings.IndexByte(":[]@!$&'()*+,;=", b) >= 0
}

func unhex(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// ParseComponentURI parses the URI text of one component.
//
// Scanning stops at the first '/', '?' or '#'. If the decoded value is made
// only of dots, zero or one dot means no component (the result is unset),
// two dots fail with ErrReservedComponent, and three or more have three
// dots stripped.
func ParseComponentURI(s string) (optional.Optional[Component], error) {
	none := optional.None[Component]()
	val := make([]byte, 0, len(s))
	allDots := true

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '/' || c == '?' || c == '#':
			i = len(s)
			continue
		case c == '%':
			if i+2 >= len(s) {
				return none, ErrMalformedEscape{Input: s, Pos: i, Msg: "truncated escape"}
			}
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				return none, ErrMalformedEscape{Input: s, Pos: i, Msg: "invalid hex digit"}
			}
			c = hi<<4 | lo
			i += 2
		case isUnreservedByte(c) || isPermittedReserved(c):
		default:
			return none, ErrMalformedEscape{Input: s, Pos: i, Msg: "character must be escaped"}
		}
		if c != '.' {
			allDots = false
		}
		val = append(val, c)
	}

	if allDots {
		switch {
		case len(val) <= 1:
			return none, nil
		case len(val) == 2:
			return none, ErrReservedComponent
		default:
			val = val[:len(val)-3]
		}
	}
	return optional.Some(Component{Val: val}), nil
}

// PrintComponentURI returns the canonical URI text of a component value.
func PrintComponentURI(val []byte) string {
	sb := strings.Builder{}
	WriteComponentURI(&sb, val)
	return sb.String()
}

// WriteComponentURI writes the canonical URI text of val to sb and returns
// the number of bytes written.
func WriteComponentURI(sb *strings.Builder, val []byte) int {
	allDots := true
	for _, b := range val {
		if b != '.' {
			allDots = false
			break
		}
	}
	if allDots {
		sb.Write(val)
		sb.WriteString("...")
		return len(val) + 3
	}

	size := 0
	for _, b := range val {
		if isUnreservedByte(b) {
			sb.WriteByte(b)
			size += 1
		} else {
			sb.WriteByte('%')
			sb.WriteByte(HEX_UPPER[b>>4])
			sb.WriteByte(HEX_UPPER[b&0x0F])
			size += 3
		}
	}
	return size
}
