package tools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/ndn"
	spec "github.com/named-data/ndnx/std/ndn/spec_ccnb"
	ndn_io "github.com/named-data/ndnx/std/utils/io"
	"github.com/named-data/ndnx/std/utils/toolutils"
	"github.com/spf13/cobra"
)

// Dump prints the documents of a ccnb stream.
type Dump struct {
	tape    bool
	maxSize int
}

// DumpSummary counts what a dump has seen.
type DumpSummary struct {
	Documents      int
	Bytes          uint64
	Interests      int
	ContentObjects int
	Unrecognized   int
}

func (d *Dump) String() string {
	return "dump"
}

func (d *Dump) run(cmd *cobra.Command, args []string) {
	in := io.Reader(os.Stdin)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(d, "Unable to open input", "err", err)
			return
		}
		defer f.Close()
		in = f
	}

	opts := enc.DefaultDecoderOptions()
	if d.maxSize > 0 {
		opts.MaxDocumentSize = d.maxSize
	}

	sum, err := d.DumpStream(in, os.Stdout, opts)
	d.printSummary(os.Stdout, sum)
	if err != nil {
		log.Fatal(d, "Unable to decode input", "err", err)
	}
}

// DumpStream decodes every document of r and describes it on w.
// It stops at the first document that fails to decode.
func (d *Dump) DumpStream(r io.Reader, w io.Writer, opts enc.DecoderOptions) (sum DumpSummary, err error) {
	var frameErr error
	dec := enc.NewDecoderWithOptions(opts)
	err = ndn_io.ReadDocumentStream(r, opts, func(frame []byte) bool {
		if frameErr = dec.BeginDecoding(bytes.NewReader(frame)); frameErr != nil {
			return false
		}
		sum.Documents++
		sum.Bytes += uint64(len(frame))

		fmt.Fprintf(w, "document %d: %s, %d elements\n", sum.Documents, humanize.Bytes(uint64(len(frame))), dec.Len())
		if d.tape {
			fmt.Fprint(w, dec.Dump(ndn.TagName))
		}

		pkt, perr := spec.ReadPacket(dec)
		if perr != nil {
			frameErr = perr
			return false
		}
		switch pkt.Kind {
		case spec.PacketInterest:
			sum.Interests++
			describeInterest(w, pkt.Interest)
		case spec.PacketContentObject:
			sum.ContentObjects++
			describeContentObject(w, pkt.ContentObject, frame)
		default:
			sum.Unrecognized++
			e, _ := dec.Element(0)
			fmt.Fprintf(w, "  unrecognized %s\n", ndn.TagName(e.Tag()))
		}
		return true
	})
	if err == nil {
		err = frameErr
	}
	return sum, err
}

func (d *Dump) printSummary(w io.Writer, sum DumpSummary) {
	p := toolutils.StatusPrinter{File: w, Padding: 16}
	fmt.Fprintln(w, "summary:")
	p.Print("documents", humanize.Comma(int64(sum.Documents)))
	p.Print("bytes", humanize.Bytes(sum.Bytes))
	p.Print("interests", humanize.Comma(int64(sum.Interests)))
	p.Print("contentObjects", humanize.Comma(int64(sum.ContentObjects)))
	p.Print("unrecognized", humanize.Comma(int64(sum.Unrecognized)))
}

func describeInterest(w io.Writer, i *spec.Interest) {
	fmt.Fprintf(w, "  Interest %s\n", i.Name.URI())
	p := toolutils.StatusPrinter{File: w, Padding: 22}
	if i.MinSuffixComponents.IsSet() {
		p.Print("minSuffixComponents", i.MinSuffixComponents)
	}
	if i.MaxSuffixComponents.IsSet() {
		p.Print("maxSuffixComponents", i.MaxSuffixComponents)
	}
	if i.Exclude != nil {
		p.Print("exclude", describeExclude(i.Exclude))
	}
	if i.ChildSelector.IsSet() {
		p.Print("childSelector", i.ChildSelector)
	}
	if i.AnswerOriginKind.IsSet() {
		p.Print("answerOriginKind", i.AnswerOriginKind)
	}
	if i.Scope.IsSet() {
		p.Print("scope", i.Scope)
	}
	p.Print("lifetime", i.Lifetime())
	if len(i.Nonce) > 0 {
		p.Print("nonce", fmt.Sprintf("%x", i.Nonce))
	}
}

func describeExclude(x *spec.Exclude) string {
	parts := make([]string, 0, len(x.Entries))
	for _, e := range x.Entries {
		switch e.Kind {
		case spec.ExcludeAny:
			parts = append(parts, "*")
		case spec.ExcludeBloom:
			parts = append(parts, "bloom")
		default:
			parts = append(parts, e.Component.String())
		}
	}
	return strings.Join(parts, ",")
}

func describeContentObject(w io.Writer, c *spec.ContentObject, wire []byte) {
	fmt.Fprintf(w, "  ContentObject %s\n", c.Name.URI())
	p := toolutils.StatusPrinter{File: w, Padding: 22}
	p.Print("type", c.ContentType())
	p.Print("content", humanize.Bytes(uint64(len(c.Content))))
	if si := c.SignedInfo; si != nil {
		if ts, ok := si.Timestamp.Get(); ok {
			p.Print("timestamp", fmt.Sprintf("%s (%s)", ts, humanize.Time(ts.Time())))
		}
		if fs, ok := si.FreshnessSeconds.Get(); ok {
			p.Print("freshness", time.Duration(fs)*time.Second)
		}
		if len(si.FinalBlockID) > 0 {
			p.Print("finalBlockID", enc.Component{Val: si.FinalBlockID})
		}
		if kl := si.KeyLocator; kl != nil && kl.Kind == spec.KeyLocatorKeyName {
			p.Print("keyName", kl.KeyName.URI())
		}
	}
	if c.Signature != nil {
		p.Print("signature", humanize.Bytes(uint64(len(c.Signature.SignatureBits))))
	}
	p.Print("digest", fmt.Sprintf("%x", spec.WireDigest(wire)))
}
