// Package bootrecord implements boot stage record logging: a minimal
// instrumentation layer that appends named, timestamped checkpoints into a
// caller-supplied fixed memory region (typically shared SRAM) during early
// boot, when no allocator, filesystem, or OS service is available yet.
//
// # Overview
//
// One Recorder binds one region to one boot stage. Each LogProfile call
// writes a single 32-byte entry into the region and increments the entry
// count in the stage header. The region is self-describing: a separate
// tool, possibly on another processor, decodes it after boot without any
// cooperation from the writer.
//
// # Basic Usage
//
//	rec, err := bootrecord.New(0x5B00, sramRegion, platformTime)
//	if err != nil {
//		// region too small, misaligned, or no time source
//	}
//
//	_ = rec.LogProfile("ddr-init")
//	_ = rec.LogProfile("load-app-image")
//	_ = rec.LogProfile("jump-to-app")
//
// The time source is injected: supply the platform's monotonic counter as
// a TimestampFunc. There is no default; a nil source is rejected at
// initialization rather than silently producing garbage timestamps.
//
// # Memory Layout
//
// The wire format is positional, host-native byte order, unpacked:
//
//	offset 0:           stage_id      (4 bytes)
//	offset 4:           count         (4 bytes)
//	offset 8:           start_time    (8 bytes)
//	offset 16 + 32*i:   entries[i]    (label: 24 bytes NUL-terminated, time: 8 bytes)
//
// Capacity is fixed at initialization: floor((len(region) - 16) / 32).
// The region never grows and entries never wrap; once it is full,
// LogProfile reports ErrOverflow and leaves the recorded data intact.
//
// # Error Model
//
// All failures are ordinary error returns, never panics: ErrInvalidParameters,
// ErrInsufficientMemory, and ErrOverflow. StatusOf translates them to the
// numeric codes used by readers of the raw ABI.
//
// # Important Notes
//
//   - The region is borrowed from the caller; the package never allocates,
//     frees, or relocates it.
//   - Entry memory is guaranteed zero only immediately after New or Reset.
//   - Not goroutine-safe: one logical writer, by contract. The intended
//     reader runs only after boot completes.
//
// # Reading Dumps
//
// Decode parses a captured region back into a Stage value; the bootrec
// command under cmd/bootrec prints and charts dumps using it.
package bootrecord
