package spec_ccnb

import (
	"time"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
	"github.com/named-data/ndnx/std/types/optional"
)

// Interest asks for a ContentObject under Name.
type Interest struct {
	Name                     enc.Name
	MinSuffixComponents      optional.Optional[uint64]
	MaxSuffixComponents      optional.Optional[uint64]
	PublisherPublicKeyDigest []byte
	Exclude                  *Exclude
	ChildSelector            optional.Optional[uint64]
	AnswerOriginKind         optional.Optional[uint64]
	Scope                    optional.Optional[uint64]
	InterestLifetime         optional.Optional[time.Duration]
	Nonce                    []byte
}

// ExcludeKind tells the entries of an Exclude filter apart.
type ExcludeKind int

const (
	ExcludeComponent ExcludeKind = iota
	ExcludeAny
	ExcludeBloom
)

// ExcludeEntry is one entry of an Exclude filter.
// Bloom entries are kept as opaque bytes and never evaluated.
type ExcludeEntry struct {
	Kind      ExcludeKind
	Component enc.Component
	Bloom     []byte
}

// Exclude is an ordered list of components and ranges that must not
// appear right after the Interest name.
type Exclude struct {
	Entries []ExcludeEntry
}

// Decode reads <Interest> and leaves the cursor after its Close.
func (i *Interest) Decode(dec *enc.Decoder) (err error) {
	if err = dec.ReadStartElement(ndn.DTagInterest); err != nil {
		return err
	}
	if i.Name, err = dec.ReadName(); err != nil {
		return err
	}
	if i.MinSuffixComponents, err = readOptionalInt(dec, ndn.DTagMinSuffixComponents); err != nil {
		return err
	}
	if i.MaxSuffixComponents, err = readOptionalInt(dec, ndn.DTagMaxSuffixComponents); err != nil {
		return err
	}
	if i.PublisherPublicKeyDigest, err = readOptionalBlob(dec, ndn.DTagPublisherPublicKeyDigest); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagExclude); err != nil {
		return err
	} else if ok {
		i.Exclude = &Exclude{}
		if err = i.Exclude.Decode(dec); err != nil {
			return err
		}
	}
	if i.ChildSelector, err = readOptionalInt(dec, ndn.DTagChildSelector); err != nil {
		return err
	}
	if i.AnswerOriginKind, err = readOptionalInt(dec, ndn.DTagAnswerOriginKind); err != nil {
		return err
	}
	if i.Scope, err = readOptionalInt(dec, ndn.DTagScope); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagInterestLifetime); err != nil {
		return err
	} else if ok {
		b, err := dec.ReadBinaryElement(ndn.DTagInterestLifetime)
		if err != nil {
			return err
		}
		lt, err := enc.DurationFromBytes(b)
		if err != nil {
			return ndn.ErrInvalidValue{Item: "InterestLifetime", Value: b}
		}
		i.InterestLifetime = optional.Some(lt)
	}
	if i.Nonce, err = readOptionalBlob(dec, ndn.DTagNonce); err != nil {
		return err
	}
	return dec.ReadEndElement()
}

// Encode writes <Interest>. Absent fields are omitted.
func (i *Interest) Encode(e *enc.Encoder) {
	e.WriteStartElement(ndn.DTagInterest)
	e.WriteName(i.Name)
	writeOptionalInt(e, ndn.DTagMinSuffixComponents, i.MinSuffixComponents)
	writeOptionalInt(e, ndn.DTagMaxSuffixComponents, i.MaxSuffixComponents)
	if len(i.PublisherPublicKeyDigest) > 0 {
		e.WriteBinaryElement(ndn.DTagPublisherPublicKeyDigest, i.PublisherPublicKeyDigest)
	}
	if i.Exclude != nil {
		i.Exclude.Encode(e)
	}
	writeOptionalInt(e, ndn.DTagChildSelector, i.ChildSelector)
	writeOptionalInt(e, ndn.DTagAnswerOriginKind, i.AnswerOriginKind)
	writeOptionalInt(e, ndn.DTagScope, i.Scope)
	if lt, ok := i.InterestLifetime.Get(); ok {
		e.WriteBinaryElement(ndn.DTagInterestLifetime, enc.DurationToBytes(lt))
	}
	if len(i.Nonce) > 0 {
		e.WriteBinaryElement(ndn.DTagNonce, i.Nonce)
	}
	e.WriteEndElement()
}

// Bytes returns the encoding of the Interest.
func (i *Interest) Bytes() ([]byte, error) {
	e := enc.NewEncoder(64 + i.Name.EncodingLength())
	i.Encode(e)
	return e.Bytes()
}

// Lifetime returns the InterestLifetime or the default.
func (i *Interest) Lifetime() time.Duration {
	return i.InterestLifetime.GetOr(ndn.DefaultInterestLifetime)
}

// Rightmost returns true if the Interest prefers the last match.
func (i *Interest) Rightmost() bool {
	return ndn.ChildSelector(i.ChildSelector.GetOr(0)) == ndn.ChildSelectorRightmost
}

// Matches returns true if a ContentObject named name satisfies the name
// selectors of the Interest. The implicit digest counts as one suffix
// component, as on the wire.
func (i *Interest) Matches(name enc.Name) bool {
	if !i.Name.IsPrefix(name) {
		return false
	}
	suffix := uint64(len(name)-len(i.Name)) + 1
	if lo, ok := i.MinSuffixComponents.Get(); ok && suffix < lo {
		return false
	}
	if hi, ok := i.MaxSuffixComponents.Get(); ok && suffix > hi {
		return false
	}
	if i.Exclude != nil && len(name) > len(i.Name) {
		return !i.Exclude.Excludes(name[len(i.Name)])
	}
	return true
}

// Decode reads <Exclude> and leaves the cursor after its Close.
func (x *Exclude) Decode(dec *enc.Decoder) error {
	if err := dec.ReadStartElement(ndn.DTagExclude); err != nil {
		return err
	}
	x.Entries = x.Entries[:0]
	for {
		tag, err := dec.PeekStartElementAsTag()
		if err != nil {
			return err
		}
		t, ok := tag.Get()
		if !ok {
			break
		}
		switch t {
		case ndn.DTagComponent:
			c, err := dec.ReadComponent()
			if err != nil {
				return err
			}
			x.Entries = append(x.Entries, ExcludeEntry{Kind: ExcludeComponent, Component: c})
		case ndn.DTagAny:
			if err = dec.ReadStartElement(ndn.DTagAny); err != nil {
				return err
			}
			if err = dec.ReadEndElement(); err != nil {
				return err
			}
			x.Entries = append(x.Entries, ExcludeEntry{Kind: ExcludeAny})
		case ndn.DTagBloom:
			b, err := dec.ReadBinaryElement(ndn.DTagBloom)
			if err != nil {
				return err
			}
			x.Entries = append(x.Entries, ExcludeEntry{Kind: ExcludeBloom, Bloom: b})
		default:
			return ndn.ErrNotSupported{Item: "Exclude entry " + ndn.TagName(t)}
		}
	}
	return dec.ReadEndElement()
}

// Encode writes <Exclude>.
func (x *Exclude) Encode(e *enc.Encoder) {
	e.WriteStartElement(ndn.DTagExclude)
	for _, entry := range x.Entries {
		switch entry.Kind {
		case ExcludeComponent:
			e.WriteComponent(entry.Component)
		case ExcludeAny:
			e.WriteStartElement(ndn.DTagAny)
			e.WriteEndElement()
		case ExcludeBloom:
			e.WriteBinaryElement(ndn.DTagBloom, entry.Bloom)
		}
	}
	e.WriteEndElement()
}

// Excludes returns true if c is filtered out. An Any entry excludes every
// component between its neighbours; Bloom entries never match.
func (x *Exclude) Excludes(c enc.Component) bool {
	anyOpen := false
	for _, entry := range x.Entries {
		switch entry.Kind {
		case ExcludeAny:
			anyOpen = true
		case ExcludeComponent:
			cmp := c.Compare(entry.Component)
			if cmp == 0 {
				return true
			}
			if cmp < 0 {
				return anyOpen
			}
			anyOpen = false
		case ExcludeBloom:
			anyOpen = false
		}
	}
	return anyOpen
}
