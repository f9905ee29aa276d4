package stroke

import (
	"iter"

	"github.com/oliverbestmann/wavepen/gm"
	"github.com/oliverbestmann/wavepen/path"
)

// Point is a resampled touch with a unit normal and its arc length offset
// from the start of the stroke.
type Point = path.WithOffset[path.WithNormal[gm.Touch]]

// Points runs the touches of the list through the resampling pipeline.
// The result is lazy, nothing is computed until it is iterated.
func Points(touches *TouchList) iter.Seq[Point] {
	points := path.Deduplicate(touches.Touches())
	points = path.Split(points, touches.PixelSize)
	points = path.Smooth(path.Smooth(points))
	points = path.Split(points, 1)

	normals := path.Map(path.WithNormals(points), path.WithNormal[gm.Touch].Normalized)
	return path.WithOffsets(normals)
}
