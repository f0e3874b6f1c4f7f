// Package bootrecord records timestamped named checkpoints into a
// caller-supplied fixed memory region during early boot. Typical usage:
// bind a shared SRAM region once with New(), call LogProfile() at each
// boot milestone, then let a later tool read the region per the documented
// layout.
package bootrecord

import "unsafe"

const (
	// HeaderSize is the size in bytes of the stage header at the region base.
	HeaderSize = 16
	// EntrySize is the size in bytes of one profile entry.
	EntrySize = 32
	// NameCapacity is the size in bytes of an entry's label field, including
	// the mandatory NUL terminator. Labels longer than NameCapacity-1 bytes
	// are truncated silently.
	NameCapacity = 24
	// MinRegionSize is the smallest usable region: one stage header plus
	// room for one entry.
	MinRegionSize = HeaderSize + EntrySize

	// The header and every entry hold native uint64 fields, so the region
	// base must be at least this aligned.
	baseAlign = 8
)

// TimestampFunc returns the current platform time as a 64-bit value. The
// unit is platform-defined; the reference platforms report microseconds.
// Monotonicity is the platform's responsibility, not this package's.
type TimestampFunc func() uint64

// stageHeader mirrors the on-wire stage header. Field order and widths are
// fixed by the external reader contract and must not change.
type stageHeader struct {
	stageID   uint32
	count     uint32
	startTime uint64
}

// entry mirrors one on-wire profile entry.
type entry struct {
	name [NameCapacity]byte
	time uint64
}

// Overlay structs must match the wire format exactly.
var (
	_ [HeaderSize]byte = [unsafe.Sizeof(stageHeader{})]byte{}
	_ [EntrySize]byte  = [unsafe.Sizeof(entry{})]byte{}
)

// Recorder binds a caller-provided memory region and appends timestamped
// checkpoints to it. The region is borrowed, never owned: the caller keeps
// lifetime responsibility and the Recorder never grows, frees, or moves it.
// Not goroutine-safe: the design assumes a single logical writer, matching
// the pre-scheduler boot environment it targets.
type Recorder struct {
	region  []byte
	hdr     *stageHeader
	entries []entry // typed view over the region tail, len == capacity
	now     TimestampFunc
}

// New claims region as the backing store for one boot stage and writes a
// fresh stage header at its base.
//
// region must be 8-byte aligned and at least MinRegionSize bytes; now must
// be non-nil. On success the whole region is zero-filled before the header
// is written, so a reader never observes stale bytes beyond the entry
// count. On failure no memory is touched and the returned Recorder is nil.
//
// Calling New again on the same region discards everything recorded
// through the previous Recorder; there is exactly one active stage per
// region.
func New(stageID uint32, region []byte, now TimestampFunc) (*Recorder, error) {
	if region == nil || now == nil {
		return nil, ErrInvalidParameters
	}
	if len(region) < MinRegionSize {
		return nil, ErrInsufficientMemory
	}
	if uintptr(unsafe.Pointer(&region[0]))%baseAlign != 0 {
		return nil, ErrInvalidParameters
	}

	r := &Recorder{region: region, now: now}
	capacity := (len(region) - HeaderSize) / EntrySize
	r.hdr = (*stageHeader)(unsafe.Pointer(&region[0]))
	r.entries = unsafe.Slice((*entry)(unsafe.Pointer(&region[HeaderSize])), capacity)

	r.reset(stageID)
	return r, nil
}

// Reset discards all recorded entries and starts a new stage over the same
// region, as if New had been called on it again.
func (r *Recorder) Reset(stageID uint32) error {
	if r == nil || r.hdr == nil {
		return ErrInvalidParameters
	}
	r.reset(stageID)
	return nil
}

// reset zero-fills the region and writes a fresh header in place.
func (r *Recorder) reset(stageID uint32) {
	clear(r.region)
	r.hdr.stageID = stageID
	r.hdr.count = 0
	r.hdr.startTime = r.now()
}

// LogProfile appends one checkpoint named name and stamped with the current
// platform time. The stored label keeps at most NameCapacity-1 bytes of
// name and is always NUL-terminated; truncation is silent. Once the region
// is full every further call returns ErrOverflow and the entries recorded
// so far stay untouched.
func (r *Recorder) LogProfile(name string) error {
	if r == nil || r.hdr == nil {
		return ErrInvalidParameters
	}
	if int(r.hdr.count) >= len(r.entries) {
		return ErrOverflow
	}

	e := &r.entries[r.hdr.count]
	clear(e.name[:])
	copy(e.name[:NameCapacity-1], name)
	e.time = r.now()

	r.hdr.count++
	return nil
}

// StageID returns the identifier this stage was initialized with.
func (r *Recorder) StageID() uint32 {
	if r == nil || r.hdr == nil {
		return 0
	}
	return r.hdr.stageID
}

// StartTime returns the timestamp captured at initialization.
func (r *Recorder) StartTime() uint64 {
	if r == nil || r.hdr == nil {
		return 0
	}
	return r.hdr.startTime
}

// Bytes returns the full backing region, including unused entry slots.
// The caller must not write through it while the Recorder is in use.
func (r *Recorder) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.region
}
