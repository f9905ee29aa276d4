// Package path provides lazy operators over sequences of points.
//
// Every operator consumes an iter.Seq and returns a new iter.Seq without
// materializing intermediate buffers. An operator pulls at most one upstream
// element per element it produces, apart from a fixed lookahead of one element
// in WithNeighbours. A consumer may stop ranging over a sequence at any time
// to abandon the rest of the stream.
//
// A typical stroke runs through the operators in this order:
//
//	points := path.Deduplicate(slices.Values(touches))
//	points = path.Split(points, pixelSize)
//	points = path.Smooth(path.Smooth(points))
//	points = path.Split(points, 1)
//	annotated := path.WithOffsets(path.WithNormals(points))
package path
