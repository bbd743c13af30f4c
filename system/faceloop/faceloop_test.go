package faceloop

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thatsimonsguy/watchface/db"
	"github.com/thatsimonsguy/watchface/internal/render"
	"github.com/thatsimonsguy/watchface/internal/sysinfo"
)

// fakeSink captures flushed frames in memory.
type fakeSink struct {
	flushes []image.Image
}

func (f *fakeSink) Bounds() image.Rectangle { return image.Rect(0, 0, 250, 250) }

func (f *fakeSink) Flush(img image.Image) error {
	f.flushes = append(f.flushes, img)
	return nil
}

func (f *fakeSink) Close() error { return nil }

func newTestLoop(t *testing.T, paths sysinfo.Paths) (*Loop, *fakeSink) {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "frames.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.Seed(conn); err != nil {
		t.Fatal(err)
	}

	sink := &fakeSink{}
	loop := New(sink, render.New(render.DefaultStyle()), sysinfo.New(paths),
		conn, time.Minute, 7*24*time.Hour)
	return loop, sink
}

func TestDrawFrame_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	battery := filepath.Join(dir, "capacity")
	if err := os.WriteFile(battery, []byte("42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loop, sink := newTestLoop(t, sysinfo.Paths{BatteryCapacity: battery})

	now := time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC)
	loop.DrawFrame(now)

	assert.Len(t, sink.flushes, 1)

	frames, err := db.RecentFrames(loop.conn, 5)
	assert.NoError(t, err)
	if assert.Len(t, frames, 1) {
		assert.Equal(t, 97.5, frames[0].Angle)
		assert.Equal(t, 42, frames[0].BatteryPercent)
		assert.Equal(t, "", frames[0].Fault)
		assert.False(t, frames[0].AlarmShown)
	}
}

func TestDrawFrame_EveryTickIsIndependent(t *testing.T) {
	loop, sink := newTestLoop(t, sysinfo.Paths{})

	base := time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC)
	loop.DrawFrame(base)
	loop.DrawFrame(base.Add(time.Minute))

	assert.Len(t, sink.flushes, 2)

	frames, err := db.RecentFrames(loop.conn, 5)
	assert.NoError(t, err)
	if assert.Len(t, frames, 2) {
		assert.Equal(t, 97.75, frames[0].Angle)
		assert.Equal(t, 97.5, frames[1].Angle)
	}
}

func TestDrawFrame_GeometryFollowsSinkBounds(t *testing.T) {
	loop, _ := newTestLoop(t, sysinfo.Paths{})

	loop.DrawFrame(time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC))

	geo := loop.renderer.Geometry()
	assert.Equal(t, 125.0, geo.CenterX)
	assert.Equal(t, 117.5, geo.HandLength)
}
