package stroke

import (
	"iter"
	"slices"

	"github.com/oliverbestmann/wavepen/gm"
	"github.com/oliverbestmann/wavepen/internal/assert"
)

// TouchList collects the raw pointer samples of a single stroke.
type TouchList struct {
	// PixelSize is the step of the first resampling pass. Samples closer
	// than this are merged into one.
	PixelSize float32

	touches []gm.Touch
}

// NewTouchList creates an empty list. It panics if pixelSize is not positive.
func NewTouchList(pixelSize float32) *TouchList {
	assert.Positive("pixel size", pixelSize)
	return &TouchList{PixelSize: pixelSize}
}

func (l *TouchList) Push(x, y, pressure float32) {
	l.touches = append(l.touches, gm.TouchOf(x, y, pressure))
}

func (l *TouchList) Len() int {
	return len(l.touches)
}

// Last returns the most recent sample, if any.
func (l *TouchList) Last() (gm.Touch, bool) {
	if len(l.touches) == 0 {
		return gm.Touch{}, false
	}

	return l.touches[len(l.touches)-1], true
}

func (l *TouchList) Touches() iter.Seq[gm.Touch] {
	return slices.Values(l.touches)
}

// Transformed returns a copy of this list with every sample mapped through the
// given transform. The pixel size is scaled by the average scale of the transform.
func (l *TouchList) Transformed(transform gm.Affine) *TouchList {
	result := &TouchList{
		PixelSize: l.PixelSize * transform.Matrix.ScaleFactor(),
		touches:   make([]gm.Touch, 0, len(l.touches)),
	}

	for _, touch := range l.touches {
		result.touches = append(result.touches, transform.TransformTouch(touch))
	}

	return result
}

// Reset drops all samples but keeps the allocated memory.
func (l *TouchList) Reset() {
	l.touches = l.touches[:0]
}
