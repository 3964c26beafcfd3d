package spec_ccnb_test

import (
	"crypto/sha256"
	"testing"
	"time"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
	spec "github.com/named-data/ndnx/std/ndn/spec_ccnb"
	"github.com/named-data/ndnx/std/types/optional"
	tu "github.com/named-data/ndnx/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestReadInterestVector(t *testing.T) {
	tu.SetT(t)

	// <Interest><Name><Component>a</Component></Name></Interest>
	wire := tu.Hex("01d2 f2 fa 8d 61 00 00 00")
	dec := tu.NoErr(enc.DecodeBytes(wire))
	p := tu.NoErr(spec.ReadPacket(dec))
	require.Equal(t, spec.PacketInterest, p.Kind)
	require.Nil(t, p.ContentObject)
	require.Equal(t, "/a", p.Interest.Name.String())
	require.False(t, p.Interest.ChildSelector.IsSet())
	require.Equal(t, ndn.DefaultInterestLifetime, p.Interest.Lifetime())
	require.True(t, dec.IsEOF())

	require.Equal(t, wire, tu.NoErr(p.Bytes()))
}

func TestInterestRoundTrip(t *testing.T) {
	tu.SetT(t)

	i := &spec.Interest{
		Name:                     tu.NoErr(enc.NameFromStr("ccnx:/parc/videos")),
		MinSuffixComponents:      optional.Some[uint64](1),
		MaxSuffixComponents:      optional.Some[uint64](3),
		PublisherPublicKeyDigest: []byte{1, 2, 3},
		Exclude: &spec.Exclude{Entries: []spec.ExcludeEntry{
			{Kind: spec.ExcludeAny},
			{Kind: spec.ExcludeComponent, Component: enc.NewStringComponent("m")},
			{Kind: spec.ExcludeBloom, Bloom: []byte{0xff, 0x00}},
		}},
		ChildSelector:    optional.Some(uint64(ndn.ChildSelectorRightmost)),
		AnswerOriginKind: optional.Some(ndn.AnswerDefault),
		Scope:            optional.Some(ndn.ScopeLocalNode),
		InterestLifetime: optional.Some(2 * time.Second),
		Nonce:            []byte{0xde, 0xad, 0xbe, 0xef},
	}
	wire := tu.NoErr(i.Bytes())

	p := tu.NoErr(spec.ParsePacket(wire))
	require.Equal(t, spec.PacketInterest, p.Kind)
	require.Equal(t, i, p.Interest)
	require.True(t, p.Interest.Rightmost())
	require.Equal(t, 2*time.Second, p.Interest.Lifetime())
	require.Equal(t, "Interest /parc/videos", p.String())
}

func TestContentObjectRoundTrip(t *testing.T) {
	tu.SetT(t)

	ts := enc.TimestampFromTime(time.Date(2012, 3, 4, 5, 6, 7, 0, time.UTC))
	c := &spec.ContentObject{
		Signature: &spec.Signature{
			DigestAlgorithm: "2.16.840.1.101.3.4.2.1",
			Witness:         []byte{9},
			SignatureBits:   []byte{1, 2, 3, 4},
		},
		Name: tu.NoErr(enc.NameFromStr("/test/%00%01")),
		SignedInfo: &spec.SignedInfo{
			PublisherPublicKeyDigest: []byte{5, 6},
			Timestamp:                optional.Some(ts),
			Type:                     optional.Some(ndn.ContentTypeKey),
			FreshnessSeconds:         optional.Some[uint64](60),
			FinalBlockID:             []byte{0x00, 0x01},
			KeyLocator: &spec.KeyLocator{
				Kind:                     spec.KeyLocatorKeyName,
				KeyName:                  tu.NoErr(enc.NameFromStr("/keys/alice")),
				PublisherPublicKeyDigest: []byte{7},
			},
		},
		Content: []byte("hello"),
	}
	wire := tu.NoErr(c.Bytes())

	p := tu.NoErr(spec.ParsePacket(wire))
	require.Equal(t, spec.PacketContentObject, p.Kind)
	require.Equal(t, c, p.ContentObject)
	require.Equal(t, ndn.ContentTypeKey, p.ContentObject.ContentType())

	sum := sha256.Sum256(wire)
	require.Equal(t, sum[:], tu.NoErr(c.Digest()))
	full := tu.NoErr(c.FullName())
	require.Equal(t, 3, len(full))
	require.Equal(t, sum[:], full[2].Val)
}

func TestContentObjectDefaults(t *testing.T) {
	tu.SetT(t)

	// Unsigned, no SignedInfo, empty content
	c := &spec.ContentObject{Name: tu.NoErr(enc.NameFromStr("/a"))}
	wire := tu.NoErr(c.Bytes())
	require.Equal(t, tu.Hex("0482 f2 fa 8d 61 00 00 019a 00 00"), wire)

	p := tu.NoErr(spec.ParsePacket(wire))
	require.Nil(t, p.ContentObject.Signature)
	require.Nil(t, p.ContentObject.SignedInfo)
	require.Empty(t, p.ContentObject.Content)
	require.Equal(t, ndn.ContentTypeData, p.ContentObject.ContentType())

	// A DATA type is implied and never written
	c.SignedInfo = &spec.SignedInfo{Type: optional.Some(ndn.ContentTypeData)}
	p = tu.NoErr(spec.ParsePacket(tu.NoErr(c.Bytes())))
	require.False(t, p.ContentObject.SignedInfo.Type.IsSet())
	require.Equal(t, ndn.ContentTypeData, p.ContentObject.ContentType())
}

func TestContentObjectWireDigest(t *testing.T) {
	tu.SetT(t)

	// Explicit DATA type (0C04C0) in SignedInfo: valid, but not canonical
	wire := tu.Hex("0482 f2 fa 8d 61 00 00 01a2 02c2 9d 0c04c0 00 00 019a 8d 78 00 00")
	p := tu.NoErr(spec.ParsePacket(wire))
	c := p.ContentObject
	require.Equal(t, ndn.ContentTypeData, c.ContentType())

	sum := sha256.Sum256(wire)
	require.Equal(t, sum[:], spec.WireDigest(wire))

	canonical := tu.NoErr(c.Bytes())
	require.NotEqual(t, wire, canonical)
	require.Equal(t, spec.WireDigest(canonical), tu.NoErr(c.Digest()))
	require.NotEqual(t, spec.WireDigest(wire), tu.NoErr(c.Digest()))
}

func TestKeyLocatorKinds(t *testing.T) {
	tu.SetT(t)

	for _, kl := range []*spec.KeyLocator{
		{Kind: spec.KeyLocatorKey, Key: []byte{1, 2}},
		{Kind: spec.KeyLocatorCertificate, Certificate: []byte{3, 4}},
	} {
		c := &spec.ContentObject{
			Name:       tu.NoErr(enc.NameFromStr("/k")),
			SignedInfo: &spec.SignedInfo{KeyLocator: kl},
			Content:    []byte{0},
		}
		p := tu.NoErr(spec.ParsePacket(tu.NoErr(c.Bytes())))
		require.Equal(t, kl, p.ContentObject.SignedInfo.KeyLocator)
	}
}

func TestReadPacketUnknownTag(t *testing.T) {
	tu.SetT(t)

	// <Collection></Collection>
	dec := tu.NoErr(enc.DecodeBytes(tu.Hex("018a 00")))
	p := tu.NoErr(spec.ReadPacket(dec))
	require.Equal(t, spec.PacketNone, p.Kind)
	require.Nil(t, p.Interest)
	require.Nil(t, p.ContentObject)
	require.Nil(t, p.Name())
	require.Equal(t, 0, dec.Pos())

	_, err := p.Bytes()
	require.ErrorIs(t, err, ndn.ErrWrongType)
}

func TestReadPacketNotStart(t *testing.T) {
	tu.SetT(t)

	// A lone Blob is a one-element document
	dec := tu.NoErr(enc.DecodeBytes(tu.Hex("8d 61")))
	_, err := spec.ReadPacket(dec)
	require.IsType(t, enc.ErrUnexpectedElement{}, err)
	require.Equal(t, 0, dec.Pos())

	dec = tu.NoErr(enc.DecodeBytes(tu.Hex("00")))
	_, err = spec.ReadPacket(dec)
	require.IsType(t, enc.ErrUnexpectedElement{}, err)

	dec = tu.NoErr(enc.DecodeBytes(tu.Hex("01d2 f2 00 00")))
	tu.NoErr(spec.ReadPacket(dec))
	require.True(t, dec.IsEOF())
	_, err = spec.ReadPacket(dec)
	require.IsType(t, enc.ErrPastEndOfDocument{}, err)
}

func TestReadPacketMalformed(t *testing.T) {
	tu.SetT(t)

	// Interest without a Name
	dec := tu.NoErr(enc.DecodeBytes(tu.Hex("01d2 00")))
	_, err := spec.ReadPacket(dec)
	require.IsType(t, enc.ErrUnexpectedElement{}, err)

	// Unknown element inside an Interest
	dec = tu.NoErr(enc.DecodeBytes(tu.Hex("01d2 f2 00 018a 00 00")))
	_, err = spec.ReadPacket(dec)
	require.IsType(t, enc.ErrUnexpectedElement{}, err)
}

func TestInterestMatches(t *testing.T) {
	tu.SetT(t)

	name := func(s string) enc.Name {
		return tu.NoErr(enc.NameFromStr(s))
	}
	i := &spec.Interest{Name: name("/a")}
	require.True(t, i.Matches(name("/a")))
	require.True(t, i.Matches(name("/a/b/c")))
	require.False(t, i.Matches(name("/b")))

	i.MaxSuffixComponents = optional.Some[uint64](1)
	require.True(t, i.Matches(name("/a")))
	require.False(t, i.Matches(name("/a/b")))

	i.MaxSuffixComponents.Unset()
	i.MinSuffixComponents = optional.Some[uint64](2)
	require.False(t, i.Matches(name("/a")))
	require.True(t, i.Matches(name("/a/b")))

	i.MinSuffixComponents.Unset()
	i.Exclude = &spec.Exclude{Entries: []spec.ExcludeEntry{
		{Kind: spec.ExcludeComponent, Component: enc.NewStringComponent("b")},
		{Kind: spec.ExcludeAny},
		{Kind: spec.ExcludeComponent, Component: enc.NewStringComponent("d")},
	}}
	require.True(t, i.Matches(name("/a/a")))
	require.False(t, i.Matches(name("/a/b")))
	require.False(t, i.Matches(name("/a/c")))
	require.False(t, i.Matches(name("/a/d")))
	require.True(t, i.Matches(name("/a/e")))
	require.True(t, i.Matches(name("/a")))
}

func TestExcludeTrailingAny(t *testing.T) {
	x := &spec.Exclude{Entries: []spec.ExcludeEntry{
		{Kind: spec.ExcludeComponent, Component: enc.NewStringComponent("m")},
		{Kind: spec.ExcludeAny},
	}}
	require.False(t, x.Excludes(enc.NewStringComponent("a")))
	require.True(t, x.Excludes(enc.NewStringComponent("m")))
	require.True(t, x.Excludes(enc.NewStringComponent("z")))

	x = &spec.Exclude{Entries: []spec.ExcludeEntry{{Kind: spec.ExcludeAny}}}
	require.True(t, x.Excludes(enc.NewStringComponent("a")))
}
