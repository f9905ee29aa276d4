package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrInvalidSize = errors.New("invalid image size")

// Device creates GPU objects.
type Device interface {
	NewImage(width, height int) (*ebiten.Image, error)
	NewShader(source []byte) (*ebiten.Shader, error)
}

// EbitenDevice creates images and shaders using ebiten.
type EbitenDevice struct{}

func (EbitenDevice) NewImage(width, height int) (*ebiten.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	slog.Debug("Create image", slog.Int("width", width), slog.Int("height", height))
	return ebiten.NewImage(width, height), nil
}

func (EbitenDevice) NewShader(source []byte) (*ebiten.Shader, error) {
	slog.Debug("Compile shader", slog.Int("sourceLength", len(source)))

	shader, err := ebiten.NewShader(source)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	return shader, nil
}
