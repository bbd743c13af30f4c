// Package display owns the output side of the face: something a
// rendered frame can be flushed to.
package display

import (
	"image"
)

// Sink is one physical or virtual display surface. Bounds is stable
// for the lifetime of the sink; the host watches it for size changes
// and feeds the renderer accordingly.
type Sink interface {
	Bounds() image.Rectangle
	Flush(img image.Image) error
	Close() error
}
