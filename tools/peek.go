package tools

import (
	"fmt"
	"os"
	"time"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/engine"
	"github.com/named-data/ndnx/std/engine/face"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/ndn"
	spec "github.com/named-data/ndnx/std/ndn/spec_ccnb"
	"github.com/named-data/ndnx/std/types/optional"
	"github.com/named-data/ndnx/std/utils"
	"github.com/spf13/cobra"
)

// Peek expresses one Interest and prints the content that answers it.
type Peek struct {
	transport string
	lifetime  int
	rightmost bool
	verbose   bool
}

func (p *Peek) String() string {
	return "peek"
}

func (p *Peek) run(cmd *cobra.Command, args []string) {
	name, err := enc.NameFromStr(args[0])
	if err != nil {
		log.Fatal(p, "Invalid name", "name", args[0], "err", err)
		return
	}

	var f face.ConfigurableFace
	if p.transport != "" {
		f, err = engine.NewFaceFromUri(p.transport)
	} else {
		f, err = engine.NewDefaultFace()
	}
	if err != nil {
		log.Fatal(p, "Unable to create face", "err", err)
		return
	}

	interest := &spec.Interest{
		Name:             name,
		InterestLifetime: optional.Some(time.Duration(p.lifetime) * time.Millisecond),
		Nonce:            utils.NewNonce(),
	}
	if p.rightmost {
		interest.ChildSelector = optional.Some(uint64(ndn.ChildSelectorRightmost))
	}

	t1 := time.Now()
	c, err := PeekFace(f, interest)
	if err != nil {
		log.Fatal(p, "Peek failed", "name", name, "face", f, "err", err)
		return
	}

	os.Stdout.Write(c.Content)
	if p.verbose {
		fmt.Fprintf(os.Stderr, "ContentObject %s\n", c.Name.URI())
		fmt.Fprintf(os.Stderr, "Content: %d bytes\n", len(c.Content))
		fmt.Fprintf(os.Stderr, "Time taken: %s\n", time.Since(t1))
	}
}

// PeekFace opens f, sends the Interest and waits for the first
// ContentObject that matches it, for at most the Interest lifetime.
// The face is closed before returning.
func PeekFace(f ndn.Face, interest *spec.Interest) (*spec.ContentObject, error) {
	wire, err := interest.Bytes()
	if err != nil {
		return nil, err
	}

	result := make(chan *spec.ContentObject, 1)
	failed := make(chan error, 1)
	f.OnPacket(func(frame []byte) {
		pkt, err := spec.ParsePacket(frame)
		if err != nil || pkt.Kind != spec.PacketContentObject {
			return
		}
		if !interest.Matches(pkt.ContentObject.Name) {
			return
		}
		select {
		case result <- pkt.ContentObject:
		default:
		}
	})
	f.OnError(func(err error) {
		select {
		case failed <- err:
		default:
		}
	})

	if err = f.Open(); err != nil {
		return nil, err
	}
	defer f.Close()

	if err = f.Send(enc.Wire{wire}); err != nil {
		return nil, err
	}

	select {
	case c := <-result:
		return c, nil
	case err := <-failed:
		return nil, fmt.Errorf("%w: %w", ndn.ErrNetwork, err)
	case <-time.After(interest.Lifetime()):
		return nil, ndn.ErrDeadlineExceed
	}
}
