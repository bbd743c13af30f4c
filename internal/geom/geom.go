package geom

import (
	"errors"
	"fmt"
	"math"
)

// Dial and drawing constants shared across the face.
const (
	// DegreesPerHour is the dial step per hour on a 24-hour face (360/24).
	DegreesPerHour = 15.0

	// MinuteDegreeDivisor converts minutes to degrees (60 min / 15°).
	MinuteDegreeDivisor = 4.0

	// rotationOffsetDegrees shifts degrees-from-north into the standard
	// polar frame where 0 rad points right instead of up.
	rotationOffsetDegrees = 90.0

	// TextSize is the glyph line height used on the face, in pixels.
	TextSize = 15.0

	// EdgeReserve keeps the hand indicator off the bezel.
	EdgeReserve = 7.5

	// CircleRadiusDivisor scales marker circles from the face half-width.
	CircleRadiusDivisor = 75.0

	// CenterFillAdjustment is how much smaller the punch-out circle is
	// than the center marker, producing the hollow-ring effect.
	CenterFillAdjustment = 1.0

	// TextVerticalCenterRatio is the empirical baseline correction for
	// vertically centering a glyph: 7/24 of its line height.
	TextVerticalCenterRatio = 7.0 / 24.0

	// LowBatteryThreshold is the charge percentage at or below which the
	// hand indicator turns the alert color.
	LowBatteryThreshold = 10

	// DefaultBatteryPercent is assumed when the charge cannot be read.
	DefaultBatteryPercent = 100
)

// ErrInvalidTime reports an hour or minute outside the wall-clock range.
var ErrInvalidTime = errors.New("invalid time of day")

// DegreesFromNorth converts a wall-clock hour and minute into the dial
// rotation in degrees from the midnight (north) position. Each hour is
// 15° and each minute 0.25°, so valid input stays below 360. Out-of-range
// fields are rejected, never clamped.
func DegreesFromNorth(hour, minute int) (float64, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour %d not in [0,23]", ErrInvalidTime, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: minute %d not in [0,59]", ErrInvalidTime, minute)
	}
	return float64(hour)*DegreesPerHour + float64(minute)/MinuteDegreeDivisor, nil
}

func radiansWithOffset(degreesFromNorth float64) float64 {
	return (degreesFromNorth - rotationOffsetDegrees) * math.Pi / 180
}

// XOffset returns the horizontal offset from the face center of a point
// at the given rotation and radius. North maps to straight up on the
// canvas, so 0° yields a zero X offset.
func XOffset(degreesFromNorth, radius float64) float64 {
	return radius * math.Cos(radiansWithOffset(degreesFromNorth))
}

// YOffset returns the vertical offset from the face center of a point
// at the given rotation and radius, in screen coordinates (y grows
// downward, so north is negative).
func YOffset(degreesFromNorth, radius float64) float64 {
	return radius * math.Sin(radiansWithOffset(degreesFromNorth))
}
