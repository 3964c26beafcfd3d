package ndn

import enc "github.com/named-data/ndnx/std/encoding"

// Face is a link carrying whole ccnb documents.
type Face interface {
	// String returns the log identifier.
	String() string
	// IsRunning returns true if the face is running.
	IsRunning() bool
	// IsLocal returns true if the face is local.
	IsLocal() bool
	// OnPacket sets the callback for receiving documents.
	// Each frame holds exactly one encoded document.
	OnPacket(onPkt func(frame []byte))
	// OnError sets the callback for fatal errors.
	OnError(onError func(err error))

	// Open starts the face and may block until it is up.
	Open() error
	// Close stops the face.
	Close() error
	// Send sends one encoded document.
	Send(pkt enc.Wire) error

	// OnUp sets the callback for the face going up.
	// The callback may be called multiple times.
	OnUp(onUp func()) (cancel func())
	// OnDown sets the callback for the face going down.
	// The callback will not be called when the face is closed.
	OnDown(onDown func()) (cancel func())
}
