// Package stroke turns the raw pointer samples of a pen stroke into a
// triangulated ribbon mesh.
//
// The samples are deduplicated, resampled at the pixel size, smoothed twice
// and resampled again at unit distance. Every resulting point carries a unit
// normal and its arc length offset, see Points. BuildRibbon then extrudes the
// points into three vertices each: left edge, center line and right edge.
package stroke
