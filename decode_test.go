package bootrecord

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		const n = 5
		region := alignedRegion(HeaderSize + 8*EntrySize)
		rec, err := New(0x42, region, testClock(10, 3))
		require.NoError(t, err)

		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("checkpoint-%d", i)
			require.NoError(t, rec.LogProfile(names[i]))
		}

		stage, err := Decode(rec.Bytes(), binary.NativeEndian)
		require.NoError(t, err)

		assert.Equal(t, uint32(0x42), stage.StageID)
		assert.Equal(t, uint64(10), stage.StartTime)
		require.Len(t, stage.Profiles, n)

		prev := stage.StartTime
		for i, p := range stage.Profiles {
			assert.Equal(t, names[i], p.Name)
			assert.GreaterOrEqual(t, p.Time, prev, "timestamps must not decrease")
			prev = p.Time
		}
	})

	t.Run("foreign byte order", func(t *testing.T) {
		// A big-endian target wrote this dump; build it by hand.
		buf := make([]byte, HeaderSize+2*EntrySize)
		binary.BigEndian.PutUint32(buf[0:4], 0xB007)
		binary.BigEndian.PutUint32(buf[4:8], 2)
		binary.BigEndian.PutUint64(buf[8:16], 1_000_000)
		copy(buf[16:], "sbl-start")
		binary.BigEndian.PutUint64(buf[40:48], 1_000_250)
		copy(buf[48:], "sbl-done")
		binary.BigEndian.PutUint64(buf[72:80], 1_004_800)

		stage, err := Decode(buf, binary.BigEndian)
		require.NoError(t, err)
		assert.Equal(t, uint32(0xB007), stage.StageID)
		assert.Equal(t, uint64(1_000_000), stage.StartTime)
		require.Len(t, stage.Profiles, 2)
		assert.Equal(t, Profile{Name: "sbl-start", Time: 1_000_250}, stage.Profiles[0])
		assert.Equal(t, Profile{Name: "sbl-done", Time: 1_004_800}, stage.Profiles[1])
	})

	t.Run("empty stage", func(t *testing.T) {
		region := alignedRegion(MinRegionSize)
		rec, err := New(9, region, testClock(0, 1))
		require.NoError(t, err)

		stage, err := Decode(rec.Bytes(), binary.NativeEndian)
		require.NoError(t, err)
		assert.Equal(t, uint32(9), stage.StageID)
		assert.Empty(t, stage.Profiles)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode(make([]byte, HeaderSize-1), binary.NativeEndian)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("count beyond buffer", func(t *testing.T) {
		buf := make([]byte, HeaderSize+EntrySize)
		binary.NativeEndian.PutUint32(buf[4:8], 2) // claims two entries, holds one
		_, err := Decode(buf, binary.NativeEndian)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("unterminated label", func(t *testing.T) {
		buf := make([]byte, HeaderSize+EntrySize)
		binary.NativeEndian.PutUint32(buf[4:8], 1)
		for i := 0; i < NameCapacity; i++ {
			buf[HeaderSize+i] = 'z'
		}
		_, err := Decode(buf, binary.NativeEndian)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("reinit discards previous entries", func(t *testing.T) {
		region := alignedRegion(HeaderSize + 4*EntrySize)
		rec, err := New(1, region, testClock(0, 1))
		require.NoError(t, err)
		require.NoError(t, rec.LogProfile("stale"))

		rec, err = New(2, region, testClock(100, 1))
		require.NoError(t, err)

		stage, err := Decode(rec.Bytes(), binary.NativeEndian)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), stage.StageID)
		assert.Empty(t, stage.Profiles)
		for i, b := range region[HeaderSize:] {
			require.Zerof(t, b, "stale entry byte %d visible after reinit", i)
		}
	})
}
