package spec_ccnb

import (
	"crypto/sha256"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
	"github.com/named-data/ndnx/std/types/optional"
)

// ContentObject carries named content. Signatures are transported but
// never computed or verified here.
type ContentObject struct {
	Signature  *Signature
	Name       enc.Name
	SignedInfo *SignedInfo
	Content    []byte
}

// Signature of a ContentObject.
type Signature struct {
	DigestAlgorithm string
	Witness         []byte
	SignatureBits   []byte
}

// SignedInfo holds the publisher metadata of a ContentObject.
type SignedInfo struct {
	PublisherPublicKeyDigest []byte
	Timestamp                optional.Optional[enc.Timestamp]
	// Absent on the wire means ContentTypeData.
	Type             optional.Optional[ndn.ContentType]
	FreshnessSeconds optional.Optional[uint64]
	FinalBlockID     []byte
	KeyLocator       *KeyLocator
}

// KeyLocatorKind tells which member of a KeyLocator is set.
type KeyLocatorKind int

const (
	KeyLocatorKey KeyLocatorKind = iota
	KeyLocatorCertificate
	KeyLocatorKeyName
)

// KeyLocator points at the key that signed a ContentObject: the key or
// certificate itself, or the name it is published under.
type KeyLocator struct {
	Kind        KeyLocatorKind
	Key         []byte
	Certificate []byte
	KeyName     enc.Name
	// Only used with KeyLocatorKeyName.
	PublisherPublicKeyDigest []byte
}

// Decode reads <ContentObject> and leaves the cursor after its Close.
func (c *ContentObject) Decode(dec *enc.Decoder) (err error) {
	if err = dec.ReadStartElement(ndn.DTagContentObject); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagSignature); err != nil {
		return err
	} else if ok {
		c.Signature = &Signature{}
		if err = c.Signature.Decode(dec); err != nil {
			return err
		}
	}
	if c.Name, err = dec.ReadName(); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagSignedInfo); err != nil {
		return err
	} else if ok {
		c.SignedInfo = &SignedInfo{}
		if err = c.SignedInfo.Decode(dec); err != nil {
			return err
		}
	}
	if c.Content, err = dec.ReadBinaryElement(ndn.DTagContent); err != nil {
		return err
	}
	return dec.ReadEndElement()
}

// Encode writes <ContentObject>.
func (c *ContentObject) Encode(e *enc.Encoder) {
	e.WriteStartElement(ndn.DTagContentObject)
	if c.Signature != nil {
		c.Signature.Encode(e)
	}
	e.WriteName(c.Name)
	if c.SignedInfo != nil {
		c.SignedInfo.Encode(e)
	}
	e.WriteBinaryElement(ndn.DTagContent, c.Content)
	e.WriteEndElement()
}

// Bytes returns the encoding of the ContentObject.
func (c *ContentObject) Bytes() ([]byte, error) {
	e := enc.NewEncoder(128 + c.Name.EncodingLength() + len(c.Content))
	c.Encode(e)
	return e.Bytes()
}

// Digest returns the SHA-256 of the canonical encoding produced by Bytes,
// the implicit last component of the full name. Decoding drops elements
// that carry default values, such as an explicit DATA type, so for an
// object received in non-canonical form this differs from WireDigest of
// the received bytes.
func (c *ContentObject) Digest() ([]byte, error) {
	b, err := c.Bytes()
	if err != nil {
		return nil, err
	}
	return WireDigest(b), nil
}

// WireDigest returns the SHA-256 of an encoded ContentObject as received.
func WireDigest(wire []byte) []byte {
	h := sha256.Sum256(wire)
	return h[:]
}

// FullName returns the name with the canonical Digest appended.
func (c *ContentObject) FullName() (enc.Name, error) {
	d, err := c.Digest()
	if err != nil {
		return nil, err
	}
	return c.Name.Append(enc.NewBytesComponent(d)), nil
}

// ContentType returns the type from SignedInfo, DATA if absent.
func (c *ContentObject) ContentType() ndn.ContentType {
	if c.SignedInfo == nil {
		return ndn.ContentTypeData
	}
	return c.SignedInfo.Type.GetOr(ndn.ContentTypeData)
}

// Decode reads <Signature>.
func (s *Signature) Decode(dec *enc.Decoder) (err error) {
	if err = dec.ReadStartElement(ndn.DTagSignature); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagDigestAlgorithm); err != nil {
		return err
	} else if ok {
		if s.DigestAlgorithm, err = dec.ReadUStringElement(ndn.DTagDigestAlgorithm); err != nil {
			return err
		}
	}
	if s.Witness, err = readOptionalBlob(dec, ndn.DTagWitness); err != nil {
		return err
	}
	if s.SignatureBits, err = dec.ReadBinaryElement(ndn.DTagSignatureBits); err != nil {
		return err
	}
	return dec.ReadEndElement()
}

// Encode writes <Signature>.
func (s *Signature) Encode(e *enc.Encoder) {
	e.WriteStartElement(ndn.DTagSignature)
	if s.DigestAlgorithm != "" {
		e.WriteUStringElement(ndn.DTagDigestAlgorithm, s.DigestAlgorithm)
	}
	if len(s.Witness) > 0 {
		e.WriteBinaryElement(ndn.DTagWitness, s.Witness)
	}
	e.WriteBinaryElement(ndn.DTagSignatureBits, s.SignatureBits)
	e.WriteEndElement()
}

// Decode reads <SignedInfo>.
func (si *SignedInfo) Decode(dec *enc.Decoder) (err error) {
	if err = dec.ReadStartElement(ndn.DTagSignedInfo); err != nil {
		return err
	}
	if si.PublisherPublicKeyDigest, err = readOptionalBlob(dec, ndn.DTagPublisherPublicKeyDigest); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagTimestamp); err != nil {
		return err
	} else if ok {
		ts, err := dec.ReadTimestamp(ndn.DTagTimestamp)
		if err != nil {
			return err
		}
		si.Timestamp = optional.Some(ts)
	}
	if ok, err := dec.PeekStartElement(ndn.DTagType); err != nil {
		return err
	} else if ok {
		b, err := dec.ReadBinaryElement(ndn.DTagType)
		if err != nil {
			return err
		}
		t, err := ndn.ContentTypeFromBytes(b)
		if err != nil {
			return err
		}
		si.Type = optional.Some(t)
	}
	if si.FreshnessSeconds, err = readOptionalInt(dec, ndn.DTagFreshnessSeconds); err != nil {
		return err
	}
	if si.FinalBlockID, err = readOptionalBlob(dec, ndn.DTagFinalBlockID); err != nil {
		return err
	}
	if ok, err := dec.PeekStartElement(ndn.DTagKeyLocator); err != nil {
		return err
	} else if ok {
		si.KeyLocator = &KeyLocator{}
		if err = si.KeyLocator.Decode(dec); err != nil {
			return err
		}
	}
	return dec.ReadEndElement()
}

// Encode writes <SignedInfo>. A DATA type is omitted.
func (si *SignedInfo) Encode(e *enc.Encoder) {
	e.WriteStartElement(ndn.DTagSignedInfo)
	if len(si.PublisherPublicKeyDigest) > 0 {
		e.WriteBinaryElement(ndn.DTagPublisherPublicKeyDigest, si.PublisherPublicKeyDigest)
	}
	if ts, ok := si.Timestamp.Get(); ok {
		e.WriteTimestampElement(ndn.DTagTimestamp, ts)
	}
	if t, ok := si.Type.Get(); ok && t != ndn.ContentTypeData {
		e.WriteBinaryElement(ndn.DTagType, t.Bytes())
	}
	writeOptionalInt(e, ndn.DTagFreshnessSeconds, si.FreshnessSeconds)
	if len(si.FinalBlockID) > 0 {
		e.WriteBinaryElement(ndn.DTagFinalBlockID, si.FinalBlockID)
	}
	if si.KeyLocator != nil {
		si.KeyLocator.Encode(e)
	}
	e.WriteEndElement()
}

// Decode reads <KeyLocator>.
func (k *KeyLocator) Decode(dec *enc.Decoder) (err error) {
	if err = dec.ReadStartElement(ndn.DTagKeyLocator); err != nil {
		return err
	}
	tag, err := dec.PeekStartElementAsTag()
	if err != nil {
		return err
	}
	switch tag.GetOr(0) {
	case ndn.DTagKey:
		k.Kind = KeyLocatorKey
		if k.Key, err = dec.ReadBinaryElement(ndn.DTagKey); err != nil {
			return err
		}
	case ndn.DTagCertificate:
		k.Kind = KeyLocatorCertificate
		if k.Certificate, err = dec.ReadBinaryElement(ndn.DTagCertificate); err != nil {
			return err
		}
	case ndn.DTagKeyName:
		k.Kind = KeyLocatorKeyName
		if err = dec.ReadStartElement(ndn.DTagKeyName); err != nil {
			return err
		}
		if k.KeyName, err = dec.ReadName(); err != nil {
			return err
		}
		if k.PublisherPublicKeyDigest, err = readOptionalBlob(dec, ndn.DTagPublisherPublicKeyDigest); err != nil {
			return err
		}
		if err = dec.ReadEndElement(); err != nil {
			return err
		}
	default:
		return ndn.ErrInvalidValue{Item: "KeyLocator", Value: tag}
	}
	return dec.ReadEndElement()
}

// Encode writes <KeyLocator>.
func (k *KeyLocator) Encode(e *enc.Encoder) {
	e.WriteStartElement(ndn.DTagKeyLocator)
	switch k.Kind {
	case KeyLocatorKey:
		e.WriteBinaryElement(ndn.DTagKey, k.Key)
	case KeyLocatorCertificate:
		e.WriteBinaryElement(ndn.DTagCertificate, k.Certificate)
	case KeyLocatorKeyName:
		e.WriteStartElement(ndn.DTagKeyName)
		e.WriteName(k.KeyName)
		if len(k.PublisherPublicKeyDigest) > 0 {
			e.WriteBinaryElement(ndn.DTagPublisherPublicKeyDigest, k.PublisherPublicKeyDigest)
		}
		e.WriteEndElement()
	}
	e.WriteEndElement()
}
