// Package faceloop is the host collaborator around the render core:
// it owns the redraw schedule, assembles the per-frame snapshot, and
// pushes finished frames to the display sink, the frame history, and
// the metrics agent.
package faceloop

import (
	"database/sql"
	"errors"
	"image"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/watchface/db"
	"github.com/thatsimonsguy/watchface/internal/datadog"
	"github.com/thatsimonsguy/watchface/internal/display"
	"github.com/thatsimonsguy/watchface/internal/geom"
	"github.com/thatsimonsguy/watchface/internal/model"
	"github.com/thatsimonsguy/watchface/internal/render"
	"github.com/thatsimonsguy/watchface/internal/status"
	"github.com/thatsimonsguy/watchface/internal/sysinfo"
)

const pruneInterval = 24 * time.Hour

type Loop struct {
	sink     display.Sink
	renderer *render.Renderer
	provider *sysinfo.Provider
	conn     *sql.DB
	interval time.Duration
	retain   time.Duration

	lastPrune time.Time
}

func New(sink display.Sink, renderer *render.Renderer, provider *sysinfo.Provider,
	conn *sql.DB, interval, retain time.Duration) *Loop {
	return &Loop{
		sink:     sink,
		renderer: renderer,
		provider: provider,
		conn:     conn,
		interval: interval,
		retain:   retain,
	}
}

// Run starts the redraw loop. The first frame draws immediately; after
// that one frame per tick. One frame at a time, no queueing: a slow
// flush just delays the next tick, and a failed frame is simply retried
// by the next scheduled redraw.
func (l *Loop) Run() {
	go func() {
		log.Info().
			Dur("interval", l.interval).
			Msg("Starting face loop")

		l.DrawFrame(time.Now())

		for {
			time.Sleep(l.interval)
			l.DrawFrame(time.Now())
		}
	}()
}

// DrawFrame composes and flushes one frame for the given instant.
func (l *Loop) DrawFrame(now time.Time) {
	start := time.Now()

	bounds := l.sink.Bounds()
	l.renderer.SetDimensions(bounds.Dx(), bounds.Dy())

	snap, snapErr := l.provider.Snapshot(now)
	if snapErr != nil {
		log.Warn().Err(snapErr).Msg("Status read denied, drawing fault frame")
		datadog.Count("frame.fault", 1)
	}

	img := image.NewRGBA(bounds)
	if err := l.renderer.RenderFrame(img, now, snap, snapErr); err != nil {
		log.Error().Err(err).Msg("Frame composition failed")
		datadog.Count("frame.error", 1, "stage:render")
		return
	}

	if err := l.sink.Flush(img); err != nil {
		log.Error().Err(err).Msg("Display flush failed")
		datadog.Count("frame.error", 1, "stage:flush")
		return
	}

	elapsed := time.Since(start)
	l.recordFrame(now, snap, snapErr, elapsed)
	l.maybePrune(now)

	datadog.Timing("frame.duration", elapsed)
	datadog.Gauge("battery.percent", float64(snap.BatteryPercent))

	log.Debug().
		Int("hour", now.Hour()).
		Int("minute", now.Minute()).
		Int("battery", snap.BatteryPercent).
		Str("indicators", status.String(status.Indicators(snap))).
		Dur("elapsed", elapsed).
		Msg("Frame drawn")
}

func (l *Loop) recordFrame(now time.Time, snap model.Snapshot, snapErr error, elapsed time.Duration) {
	if l.conn == nil {
		return
	}

	rec := db.FrameRecord{
		DrawnAt:        now,
		BatteryPercent: snap.BatteryPercent,
		Indicators:     status.String(status.Indicators(snap)),
		AlarmShown:     snap.NextAlarm.DisplayedAt(now),
		Duration:       elapsed,
	}

	if snapErr != nil {
		var perm *model.PermissionError
		if errors.As(snapErr, &perm) {
			rec.Fault = perm.Label()
		} else {
			rec.Fault = "fault"
		}
	} else {
		angle, err := geom.DegreesFromNorth(now.Hour(), now.Minute())
		if err == nil {
			rec.Angle = angle
		}
	}

	if err := db.InsertFrame(l.conn, rec); err != nil {
		log.Warn().Err(err).Msg("Failed to record frame history")
	}
}

func (l *Loop) maybePrune(now time.Time) {
	if l.conn == nil || l.retain <= 0 {
		return
	}
	if now.Sub(l.lastPrune) < pruneInterval {
		return
	}
	l.lastPrune = now

	pruned, err := db.PruneBefore(l.conn, now.Add(-l.retain))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to prune frame history")
		return
	}
	if pruned > 0 {
		log.Info().Int64("frames", pruned).Msg("Pruned frame history")
	}
}
