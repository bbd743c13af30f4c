package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameHistoryRoundTrip(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "frames.db"))
	assert.NoError(t, err)
	defer conn.Close()
	assert.NoError(t, Seed(conn))

	// Seeding twice must be harmless.
	assert.NoError(t, Seed(conn))

	base := time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC)
	records := []FrameRecord{
		{DrawnAt: base, Angle: 97.5, BatteryPercent: 50, Indicators: "", Duration: 12 * time.Millisecond},
		{DrawnAt: base.Add(time.Minute), Angle: 97.75, BatteryPercent: 49, Indicators: "W", AlarmShown: true, Duration: 9 * time.Millisecond},
		{DrawnAt: base.Add(2 * time.Minute), Angle: 98, BatteryPercent: 49, Indicators: "W!", Fault: "perm:gps", Duration: 3 * time.Millisecond},
	}
	for _, rec := range records {
		assert.NoError(t, InsertFrame(conn, rec))
	}

	frames, err := RecentFrames(conn, 2)
	assert.NoError(t, err)
	if assert.Len(t, frames, 2) {
		// Newest first.
		assert.Equal(t, 98.0, frames[0].Angle)
		assert.Equal(t, "W!", frames[0].Indicators)
		assert.Equal(t, "perm:gps", frames[0].Fault)
		assert.Equal(t, 3*time.Millisecond, frames[0].Duration)

		assert.Equal(t, 97.75, frames[1].Angle)
		assert.True(t, frames[1].AlarmShown)
	}
}

func TestPruneBefore(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "frames.db"))
	assert.NoError(t, err)
	defer conn.Close()
	assert.NoError(t, Seed(conn))

	base := time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := FrameRecord{DrawnAt: base.Add(time.Duration(i) * time.Minute), Angle: 97.5}
		assert.NoError(t, InsertFrame(conn, rec))
	}

	pruned, err := PruneBefore(conn, base.Add(3*time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), pruned)

	frames, err := RecentFrames(conn, 10)
	assert.NoError(t, err)
	assert.Len(t, frames, 2)
}

func TestRecentFrames_Empty(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "frames.db"))
	assert.NoError(t, err)
	defer conn.Close()
	assert.NoError(t, Seed(conn))

	frames, err := RecentFrames(conn, 10)
	assert.NoError(t, err)
	assert.Empty(t, frames)
}
