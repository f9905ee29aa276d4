package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/wavepen/internal/typedpool"
	"github.com/oliverbestmann/wavepen/stroke"
)

var vertexBuffers = typedpool.Slices[ebiten.Vertex]()

// appendVertices converts the ribbon vertices for drawing with the phase shader.
func appendVertices(vertices []ebiten.Vertex, ribbon *stroke.Ribbon) []ebiten.Vertex {
	for _, vertex := range ribbon.Vertices {
		vertices = append(vertices, ebiten.Vertex{
			DstX:    vertex.Position.X,
			DstY:    vertex.Position.Y,
			ColorR:  1,
			ColorG:  1,
			ColorB:  1,
			ColorA:  1,
			Custom0: vertex.Side,
			Custom1: vertex.Offset,
			Custom2: vertex.Taper,
			Custom3: vertex.Pressure,
		})
	}

	return vertices
}
