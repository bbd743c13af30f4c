package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/thatsimonsguy/watchface/internal/geom"
	"github.com/thatsimonsguy/watchface/internal/model"
	"github.com/thatsimonsguy/watchface/internal/status"
)

// ErrNoGeometry reports a draw attempted before SetDimensions.
var ErrNoGeometry = errors.New("render: dimensions not set")

// Geometry holds the per-surface-size constants: the face center and
// the hand length. It is only recomputed when the surface size changes.
type Geometry struct {
	CenterX    float64
	CenterY    float64
	HandLength float64

	width  int
	height int
}

// NewGeometry derives the face geometry for a surface of the given
// pixel dimensions.
func NewGeometry(width, height int) Geometry {
	centerX := float64(width) / 2
	return Geometry{
		CenterX:    centerX,
		CenterY:    float64(height) / 2,
		HandLength: centerX - geom.EdgeReserve,
		width:      width,
		height:     height,
	}
}

// Style is the immutable paint set for one frame. Styles are passed by
// value per draw call so no draw can observe leftover state from a
// prior, possibly aborted operation.
type Style struct {
	Background color.Color
	Hand       color.Color
	Alert      color.Color
	Face       font.Face
}

// DefaultStyle is the production face: black ground, white hand, red
// low-battery alert, fixed-size bitmap font.
func DefaultStyle() Style {
	return Style{
		Background: color.Black,
		Hand:       color.White,
		Alert:      color.RGBA{R: 0xff, A: 0xff},
		Face:       basicfont.Face7x13,
	}
}

// Renderer composes watch-face frames onto an image/draw canvas. It
// holds no mutable state across frames beyond the cached geometry, so
// a frame is a self-contained synchronous computation.
type Renderer struct {
	style Style
	geo   Geometry
	ready bool
}

func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// SetDimensions recomputes the cached geometry when the surface size
// changes. Calling it again with the same dimensions is a no-op.
func (r *Renderer) SetDimensions(width, height int) {
	if r.ready && r.geo.width == width && r.geo.height == height {
		return
	}
	r.geo = NewGeometry(width, height)
	r.ready = true
	log.Debug().
		Int("width", width).
		Int("height", height).
		Float64("hand_length", r.geo.HandLength).
		Msg("Face geometry recomputed")
}

// Geometry returns the cached per-surface constants.
func (r *Renderer) Geometry() Geometry { return r.geo }

// RenderFrame draws one complete frame for the given instant and
// snapshot. fault, when non-nil, is the permission failure from the
// snapshot build; the frame then degrades to the background plus a
// short fault label at the center, and nothing else is drawn. Draw
// order matters: later steps occlude earlier ones.
func (r *Renderer) RenderFrame(dst draw.Image, now time.Time, snap model.Snapshot, fault error) error {
	if dst == nil {
		return errors.New("render: nil canvas")
	}
	if !r.ready {
		return ErrNoGeometry
	}

	r.fillBackground(dst)

	if fault != nil {
		r.drawTextUpright(dst, 0, 0, faultLabel(fault), r.style.Hand)
		return nil
	}

	t := model.TimeOfDayFrom(now)
	rotation, err := geom.DegreesFromNorth(t.Hour, t.Minute)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	markerRadius := r.geo.CenterX / geom.CircleRadiusDivisor

	// Hour hand indicator, alert-colored when the battery is low.
	handColor := r.style.Hand
	if snap.BatteryPercent <= geom.LowBatteryThreshold {
		handColor = r.style.Alert
	}
	r.drawCircle(dst, rotation, r.geo.HandLength, markerRadius, handColor)

	// Midnight reference tick.
	r.drawTextUpright(dst, 0, r.geo.HandLength-geom.TextSize/2,
		string(model.SymbolHourMarker), r.style.Hand)

	// Center marker. When any status indicator is active the center is
	// punched out with a slightly smaller background-colored circle,
	// leaving a hollow ring. The symbols themselves are never drawn on
	// the face; the ring is the whole signal.
	r.drawCircle(dst, rotation, 0, markerRadius, r.style.Hand)
	if status.HasActiveIndicators(snap) {
		r.drawCircle(dst, rotation, 0, markerRadius-geom.CenterFillAdjustment, r.style.Background)
	}

	if snap.NextAlarm.DisplayedAt(now) {
		trigger := snap.NextAlarm.TriggerTime
		alarmRotation, err := geom.DegreesFromNorth(trigger.Hour(), trigger.Minute())
		if err != nil {
			return fmt.Errorf("render alarm: %w", err)
		}
		r.drawTextUpright(dst, alarmRotation, r.geo.HandLength,
			string(model.SymbolAlarm), r.style.Hand)
	}

	return nil
}

// RenderFault draws the degraded frame directly: background plus an
// upright label at the exact center.
func (r *Renderer) RenderFault(dst draw.Image, label string) error {
	if dst == nil {
		return errors.New("render: nil canvas")
	}
	if !r.ready {
		return ErrNoGeometry
	}
	r.fillBackground(dst)
	r.drawTextUpright(dst, 0, 0, label, r.style.Hand)
	return nil
}

func faultLabel(err error) string {
	var perm *model.PermissionError
	if errors.As(err, &perm) {
		return perm.Label()
	}
	return "fault"
}

func (r *Renderer) fillBackground(dst draw.Image) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.style.Background), image.Point{}, draw.Src)
}

// drawCircle fills a circle of the given radius at distance
// distanceFromCenter along the rotation from north. A zero radius draws
// nothing.
func (r *Renderer) drawCircle(dst draw.Image, rotation, distanceFromCenter, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	cx := r.geo.CenterX + geom.XOffset(rotation, distanceFromCenter)
	cy := r.geo.CenterY + geom.YOffset(rotation, distanceFromCenter)
	fillCircle(dst, cx, cy, radius, c)
}

func fillCircle(dst draw.Image, cx, cy, radius float64, c color.Color) {
	rr := radius * radius
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr && image.Pt(x, y).In(dst.Bounds()) {
				dst.Set(x, y, c)
			}
		}
	}
}

// drawTextUpright places text so it reads upright regardless of the
// dial rotation: horizontally centered on its measured width, and
// vertically centered with the 7/24 line-height baseline correction.
func (r *Renderer) drawTextUpright(dst draw.Image, degreesFromNorth, radiusFromCenter float64, text string, c color.Color) {
	face := r.style.Face
	width := float64(font.MeasureString(face, text)) / 64
	lineHeight := float64(face.Metrics().Height) / 64

	x := r.geo.CenterX - width/2 + geom.XOffset(degreesFromNorth, radiusFromCenter)
	y := r.geo.CenterY + lineHeight*geom.TextVerticalCenterRatio + geom.YOffset(degreesFromNorth, radiusFromCenter)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(text)
}
