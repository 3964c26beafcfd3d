package repo

import (
	"bytes"
	"slices"
	"sync"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/ndn"
	spec "github.com/named-data/ndnx/std/ndn/spec_ccnb"
	"github.com/named-data/ndnx/std/object/storage"
)

// Stats counts the packets handled by a Repo.
type Stats struct {
	Interests      uint64
	ContentObjects uint64
	Stored         uint64
	Evicted        uint64
	Served         uint64
	Unsatisfied    uint64
	Unrecognized   uint64
	Errors         uint64
}

// Repo stores ContentObjects published under its prefixes and answers
// Interests for them from the store.
type Repo struct {
	config *Config
	face   ndn.Face
	store  ndn.Store
	fifo   *storage.MemoryFifoDir

	// guards everything below
	mutex sync.Mutex
	dec   *enc.Decoder
	stats Stats
}

func NewRepo(config *Config, face ndn.Face) *Repo {
	return &Repo{
		config: config,
		face:   face,
		dec:    enc.NewDecoderWithOptions(config.Decoder),
	}
}

func (r *Repo) String() string {
	return "repo"
}

func (r *Repo) Start() (err error) {
	log.Info(r, "Starting CCNx Repository",
		"backend", r.config.Store.Backend, "path", r.config.Store.Path, "face", r.face)

	r.store, err = storage.Open(r.config.Store.Backend, r.config.Store.Path)
	if err != nil {
		return err
	}

	if r.config.Store.MaxObjects > 0 {
		r.fifo = storage.NewMemoryFifoDir(r.config.Store.MaxObjects)
	}

	r.face.OnPacket(r.onPacket)
	r.face.OnError(func(err error) {
		log.Error(r, "Face error", "face", r.face, "err", err)
	})
	if err = r.face.Open(); err != nil {
		r.store.Close()
		return err
	}

	return nil
}

func (r *Repo) Stop() error {
	log.Info(r, "Stopping CCNx Repository", "stats", r.Stats())

	if r.face.IsRunning() {
		if err := r.face.Close(); err != nil {
			log.Warn(r, "Failed to close face", "err", err)
		}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.store.Close()
}

// Stats returns a copy of the packet counters.
func (r *Repo) Stats() Stats {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.stats
}

func (r *Repo) onPacket(frame []byte) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.dec.BeginDecoding(bytes.NewReader(frame)); err != nil {
		r.stats.Errors++
		log.Warn(r, "Unable to frame document", "err", err)
		return
	}

	pkt, err := spec.ReadPacket(r.dec)
	if err != nil {
		r.stats.Errors++
		log.Warn(r, "Unable to decode packet", "err", err)
		return
	}

	switch pkt.Kind {
	case spec.PacketInterest:
		r.onInterest(pkt.Interest)
	case spec.PacketContentObject:
		r.onContentObject(pkt.ContentObject, frame[:r.dec.BytesRead()])
	default:
		r.stats.Unrecognized++
	}
}

func (r *Repo) onContentObject(c *spec.ContentObject, wire []byte) {
	r.stats.ContentObjects++

	if !r.storesName(c.Name) {
		log.Debug(r, "Ignoring ContentObject outside repo prefixes", "name", c.Name)
		return
	}

	existing, err := r.store.Get(c.Name, false)
	if err != nil {
		r.stats.Errors++
		log.Error(r, "Store lookup failed", "name", c.Name, "err", err)
		return
	}

	if err = r.store.Put(c.Name, slices.Clone(wire)); err != nil {
		r.stats.Errors++
		log.Error(r, "Unable to store ContentObject", "name", c.Name, "err", err)
		return
	}
	r.stats.Stored++
	log.Debug(r, "Stored ContentObject", "name", c.Name, "size", len(wire))

	if r.fifo != nil && existing == nil {
		r.fifo.Push(c.Name)
		n, err := r.fifo.Evict(r.store)
		r.stats.Evicted += uint64(n)
		if err != nil {
			r.stats.Errors++
			log.Error(r, "Eviction failed", "err", err)
		}
	}
}

func (r *Repo) onInterest(i *spec.Interest) {
	r.stats.Interests++

	if !r.servesName(i.Name) {
		return
	}

	var match []byte
	scanDec := enc.NewDecoderWithOptions(r.config.Decoder)
	err := r.store.Scan(i.Name, i.Rightmost(), func(wire []byte) bool {
		if scanDec.BeginDecoding(bytes.NewReader(wire)) != nil {
			return true
		}
		c := spec.ContentObject{}
		if c.Decode(scanDec) != nil {
			return true
		}
		if i.Matches(c.Name) {
			match = wire
			return false
		}
		return true
	})
	if err != nil {
		r.stats.Errors++
		log.Error(r, "Store scan failed", "name", i.Name, "err", err)
		return
	}

	if match == nil {
		r.stats.Unsatisfied++
		log.Debug(r, "No ContentObject for Interest", "name", i.Name)
		return
	}

	if err = r.face.Send(enc.Wire{match}); err != nil {
		r.stats.Errors++
		log.Warn(r, "Unable to send ContentObject", "name", i.Name, "err", err)
		return
	}
	r.stats.Served++
}

// storesName returns true if name is under one of the repo prefixes.
func (r *Repo) storesName(name enc.Name) bool {
	for _, p := range r.config.Repo.PrefixesN {
		if p.IsPrefix(name) {
			return true
		}
	}
	return false
}

// servesName returns true if an Interest for name may match a stored object.
func (r *Repo) servesName(name enc.Name) bool {
	for _, p := range r.config.Repo.PrefixesN {
		if p.IsPrefix(name) || name.IsPrefix(p) {
			return true
		}
	}
	return false
}
