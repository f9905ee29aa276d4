// Package render draws pen strokes with ebiten.
//
// A Context owns pools of textures, depth buffers and shaders so that drawing
// a stroke every frame does not allocate new GPU objects. A Frame is a pooled
// texture that a Tool such as the WavePencil draws into.
package render
