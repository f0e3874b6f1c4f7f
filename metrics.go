package bootrecord

// Count returns the number of entries appended so far.
func (r *Recorder) Count() int {
	if r == nil || r.hdr == nil {
		return 0
	}
	return int(r.hdr.count)
}

// Capacity returns the maximum number of entries the region can hold,
// fixed at initialization.
func (r *Recorder) Capacity() int {
	if r == nil || r.hdr == nil {
		return 0
	}
	return len(r.entries)
}

// Remaining returns the number of unused entry slots.
func (r *Recorder) Remaining() int {
	return r.Capacity() - r.Count()
}

// BytesUsed returns the bytes occupied by the header and appended entries.
func (r *Recorder) BytesUsed() int {
	if r == nil || r.hdr == nil {
		return 0
	}
	return HeaderSize + r.Count()*EntrySize
}

// RegionSize returns the total size of the backing region in bytes.
func (r *Recorder) RegionSize() int {
	if r == nil {
		return 0
	}
	return len(r.region)
}

// Utilization returns the ratio of used entry slots to capacity (0.0 to 1.0).
// Returns 0.0 for an uninitialized recorder.
func (r *Recorder) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.Count()) / float64(capacity)
}

// Metrics returns a snapshot of recorder statistics.
func (r *Recorder) Metrics() RecorderMetrics {
	return RecorderMetrics{
		Count:       r.Count(),
		Capacity:    r.Capacity(),
		Remaining:   r.Remaining(),
		BytesUsed:   r.BytesUsed(),
		RegionSize:  r.RegionSize(),
		Utilization: r.Utilization(),
	}
}

// RecorderMetrics contains statistical information about a recorder's region.
type RecorderMetrics struct {
	Count       int     // Entries appended so far
	Capacity    int     // Maximum entries the region can hold
	Remaining   int     // Unused entry slots
	BytesUsed   int     // Header plus appended entries, in bytes
	RegionSize  int     // Total region size in bytes
	Utilization float64 // Ratio of used slots to capacity (0.0-1.0)
}
