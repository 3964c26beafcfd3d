package encoding

import (
	"fmt"
	"time"
)

// TimeUnitsPerSecond is the resolution of the ccnb fixed-point time format.
const TimeUnitsPerSecond = 4096

// Timestamp is an absolute time in 1/4096 second units since the Unix epoch.
// On the wire it is a big-endian unsigned integer without leading zero bytes.
type Timestamp uint64

// TimestampFromBytes parses the binary form of a timestamp.
func TimestampFromBytes(b []byte) (Timestamp, error) {
	v, err := fixedFromBytes(b)
	return Timestamp(v), err
}

// TimestampFromTime converts t, truncated to the format's resolution.
// Times before the epoch map to zero.
func TimestampFromTime(t time.Time) Timestamp {
	if t.Unix() < 0 {
		return 0
	}
	sec := uint64(t.Unix())
	frac := uint64(t.Nanosecond()) * TimeUnitsPerSecond / uint64(time.Second)
	return Timestamp(sec*TimeUnitsPerSecond + frac)
}

// Bytes returns the minimal big-endian encoding. Zero encodes as no bytes.
func (ts Timestamp) Bytes() []byte {
	return fixedToBytes(uint64(ts))
}

// Time returns the timestamp as a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	sec := int64(ts / TimeUnitsPerSecond)
	nsec := int64(uint64(ts%TimeUnitsPerSecond) * uint64(time.Second) / TimeUnitsPerSecond)
	return time.Unix(sec, nsec).UTC()
}

func (ts Timestamp) String() string {
	return ts.Time().Format(time.RFC3339Nano)
}

// DurationFromBytes parses a relative time in 1/4096 second units,
// as carried by InterestLifetime.
func DurationFromBytes(b []byte) (time.Duration, error) {
	v, err := fixedFromBytes(b)
	if err != nil {
		return 0, err
	}
	sec, frac := v/TimeUnitsPerSecond, v%TimeUnitsPerSecond
	if sec > uint64(1<<63-1)/uint64(time.Second)-1 {
		return 0, ErrFormat{Msg: "duration out of range"}
	}
	return time.Duration(sec*uint64(time.Second) + frac*uint64(time.Second)/TimeUnitsPerSecond), nil
}

// DurationToBytes encodes a relative time in 1/4096 second units.
func DurationToBytes(d time.Duration) []byte {
	if d <= 0 {
		return []byte{}
	}
	sec, rem := uint64(d/time.Second), uint64(d%time.Second)
	return fixedToBytes(sec*TimeUnitsPerSecond + rem*TimeUnitsPerSecond/uint64(time.Second))
}

func fixedFromBytes(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, ErrFormat{Msg: fmt.Sprintf("fixed-point time too long: %d bytes", len(b))}
	}
	v := uint64(0)
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

func fixedToBytes(v uint64) []byte {
	var buf [8]byte
	i := len(buf)
	for v != 0 {
		i--
		buf[i] = byte(v)
		v >>= 8
	}
	return append([]byte{}, buf[i:]...)
}
