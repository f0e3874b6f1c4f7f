package bootrecord

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned by Decode when the buffer is too short to
	// contain the data it claims to hold.
	ErrTruncated = errors.New("bootrecord: buffer truncated")
	// ErrCorrupt is returned by Decode when the buffer contents are
	// internally inconsistent.
	ErrCorrupt = errors.New("bootrecord: buffer corrupt")
)

// Profile is one decoded checkpoint.
type Profile struct {
	Name string
	Time uint64
}

// Stage is the decoded contents of a stage record region.
type Stage struct {
	StageID   uint32
	StartTime uint64
	Profiles  []Profile
}

// Decode parses a dumped region according to the stage record layout:
//
//	offset 0:         stage_id   (4 bytes)
//	offset 4:         count      (4 bytes)
//	offset 8:         start_time (8 bytes)
//	offset 16 + 32*i: entries[i] (label: 24 bytes, time: 8 bytes)
//
// order selects the byte order of the machine that wrote the buffer; pass
// binary.NativeEndian for same-host buffers. buf may be the full recorded
// region or any prefix that still covers every appended entry.
func Decode(buf []byte, order binary.ByteOrder) (*Stage, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d for the header",
			ErrTruncated, len(buf), HeaderSize)
	}

	s := &Stage{
		StageID:   order.Uint32(buf[0:4]),
		StartTime: order.Uint64(buf[8:16]),
	}

	count := int(order.Uint32(buf[4:8]))
	avail := (len(buf) - HeaderSize) / EntrySize
	if count < 0 || count > avail {
		return nil, fmt.Errorf("%w: count %d exceeds the %d entries the buffer holds",
			ErrCorrupt, count, avail)
	}

	s.Profiles = make([]Profile, count)
	for i := range s.Profiles {
		off := HeaderSize + i*EntrySize
		label := buf[off : off+NameCapacity]
		end := bytes.IndexByte(label, 0)
		if end < 0 {
			return nil, fmt.Errorf("%w: entry %d label is not terminated", ErrCorrupt, i)
		}
		s.Profiles[i] = Profile{
			Name: string(label[:end]),
			Time: order.Uint64(buf[off+NameCapacity : off+EntrySize]),
		}
	}
	return s, nil
}
