package face

import (
	"fmt"
	"sync"

	enc "github.com/named-data/ndnx/std/encoding"
)

// DummyFace records sent documents in memory and lets tests inject
// received ones. Received documents are delivered synchronously.
type DummyFace struct {
	baseFace
	mu       sync.Mutex
	sendPkts []enc.Buffer
}

func NewDummyFace() *DummyFace {
	return &DummyFace{
		baseFace: newBaseFace(true),
		sendPkts: make([]enc.Buffer, 0),
	}
}

func (f *DummyFace) String() string {
	return "dummy-face"
}

func (f *DummyFace) Open() error {
	if err := f.checkOpen(); err != nil {
		return err
	}
	f.setStateUp()
	return nil
}

func (f *DummyFace) Close() error {
	if !f.setStateClosed() {
		return errNotRunning
	}
	return nil
}

func (f *DummyFace) Send(pkt enc.Wire) error {
	if !f.IsRunning() {
		return errNotRunning
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendPkts = append(f.sendPkts, enc.Buffer(pkt.Join()))
	return nil
}

// FeedPacket delivers a document as if it had been received.
func (f *DummyFace) FeedPacket(pkt enc.Buffer) error {
	if !f.IsRunning() {
		return errNotRunning
	}
	f.onPkt(pkt)
	return nil
}

// Consume pops the oldest sent document.
func (f *DummyFace) Consume() (enc.Buffer, error) {
	if !f.IsRunning() {
		return nil, errNotRunning
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sendPkts) == 0 {
		return nil, fmt.Errorf("no packet to consume")
	}
	pkt := f.sendPkts[0]
	f.sendPkts = f.sendPkts[1:]
	return pkt, nil
}

// SetDown simulates a link failure.
func (f *DummyFace) SetDown() {
	f.setStateDown()
}
