package stroke

import (
	"iter"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/wavepen/gm"
)

// Side of a ribbon vertex relative to the center line.
const (
	SideLeft   float32 = -1
	SideCenter float32 = 0
	SideRight  float32 = 1
)

type Vertex struct {
	Position gm.Vec

	// Side is -1 on the left edge, 0 on the center line and 1 on the right edge.
	Side float32

	// Offset is the arc length from the start of the stroke.
	Offset float32

	Pressure float32

	// Taper fades the stroke in and out over TaperLength at both ends.
	Taper float32
}

// Ribbon is an indexed triangle mesh. Each point of the stroke contributes
// three consecutive vertices, each pair of consecutive points four triangles.
type Ribbon struct {
	Vertices []Vertex
	Indices  []uint32

	// Length is the arc length of the center line.
	Length float32
}

// BuildRibbon extrudes the points into a ribbon that extends thickness to both
// sides of the center line.
func BuildRibbon(points iter.Seq[Point], thickness float32) *Ribbon {
	var ribbon Ribbon
	ribbon.Append(points, thickness)
	return &ribbon
}

// Append resets the ribbon and fills it with the given points, reusing the
// already allocated buffers.
func (r *Ribbon) Append(points iter.Seq[Point], thickness float32) {
	r.Vertices = r.Vertices[:0]
	r.Indices = r.Indices[:0]
	r.Length = 0

	for point := range points {
		touch := point.Point.Point
		shift := point.Point.Normal.Mul(thickness)

		vertex := Vertex{
			Offset:   point.Offset,
			Pressure: touch.Pressure,
		}

		for _, side := range []float32{SideLeft, SideCenter, SideRight} {
			vertex.Position = touch.Point.Add(shift.Mul(side))
			vertex.Side = side
			r.Vertices = append(r.Vertices, vertex)
		}

		r.Length = point.Offset
	}

	for idx := range r.Vertices {
		r.Vertices[idx].Taper = taper(r.Vertices[idx].Offset, r.Length)
	}

	pointCount := len(r.Vertices) / 3
	for idx := 0; idx < pointCount-1; idx++ {
		p1 := uint32(idx * 3)
		p2 := p1 + 3

		r.Indices = append(r.Indices,
			// left half
			p1, p2, p1+1,
			p1+1, p2, p2+1,

			// right half
			p1+1, p2+1, p1+2,
			p1+2, p2+1, p2+2,
		)
	}
}

// IsEmpty returns true if the ribbon has no triangles.
func (r *Ribbon) IsEmpty() bool {
	return len(r.Indices) == 0
}

// Bounds returns the smallest rectangle containing all vertices.
// The empty rectangle is returned for a ribbon without vertices.
func (r *Ribbon) Bounds() gm.Rect {
	if len(r.Vertices) == 0 {
		return gm.Rect{}
	}

	first := r.Vertices[0].Position
	bb := cp.NewBBForExtents(toVector(first), 0, 0)

	for _, vertex := range r.Vertices[1:] {
		bb = bb.Expand(toVector(vertex.Position))
	}

	return gm.RectWithPoints(
		gm.VecOf(float32(bb.L), float32(bb.B)),
		gm.VecOf(float32(bb.R), float32(bb.T)),
	)
}

func toVector(vec gm.Vec) cp.Vector {
	return cp.Vector{X: float64(vec.X), Y: float64(vec.Y)}
}
