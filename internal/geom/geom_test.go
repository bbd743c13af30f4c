package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreesFromNorth(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		want   float64
	}{
		{"midnight", 0, 0, 0},
		{"noon", 12, 0, 180},
		{"six am", 6, 0, 90},
		{"six thirty", 6, 30, 97.5},
		{"last minute of day", 23, 59, 359.75},
		{"single minute", 0, 1, 0.25},
		{"evening", 18, 45, 281.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DegreesFromNorth(tt.hour, tt.minute)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDegreesFromNorth_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
	}{
		{"hour 24", 24, 0},
		{"hour negative", -1, 0},
		{"minute 60", 0, 60},
		{"minute negative", 12, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DegreesFromNorth(tt.hour, tt.minute)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTime))
		})
	}
}

func TestOffsets_CardinalDirections(t *testing.T) {
	const radius = 100.0

	// North: straight up, which is negative Y on screen.
	assert.InDelta(t, 0, XOffset(0, radius), 1e-9)
	assert.InDelta(t, -radius, YOffset(0, radius), 1e-9)

	// 06:00 (90°): due right.
	assert.InDelta(t, radius, XOffset(90, radius), 1e-9)
	assert.InDelta(t, 0, YOffset(90, radius), 1e-9)

	// 12:00 (180°): straight down.
	assert.InDelta(t, 0, XOffset(180, radius), 1e-9)
	assert.InDelta(t, radius, YOffset(180, radius), 1e-9)

	// 18:00 (270°): due left.
	assert.InDelta(t, -radius, XOffset(270, radius), 1e-9)
	assert.InDelta(t, 0, YOffset(270, radius), 1e-9)
}

func TestOffsets_ExactTrig(t *testing.T) {
	// Offsets are exact trigonometry, not approximations.
	deg := 97.5
	rad := (deg - 90) * math.Pi / 180
	assert.Equal(t, 117.5*math.Cos(rad), XOffset(deg, 117.5))
	assert.Equal(t, 117.5*math.Sin(rad), YOffset(deg, 117.5))
}

func TestOffsets_ZeroRadius(t *testing.T) {
	assert.Equal(t, 0.0, XOffset(45, 0))
	assert.Equal(t, 0.0, YOffset(45, 0))
}
