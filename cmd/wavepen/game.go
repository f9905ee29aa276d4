package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/wavepen/gm"
	"github.com/oliverbestmann/wavepen/render"
	"github.com/oliverbestmann/wavepen/stroke"
)

var background = []float32{0.05, 0.05, 0.08, 1}
var strokeColor = []float32{1, 1, 1, 1}

type gameConfig struct {
	Thickness float32
	Amplitude float32
	Period    float32
	PixelSize float32
	Scale     float32
}

type pointer uint8

const (
	pointerNone pointer = iota
	pointerMouse
	pointerTouch
)

type game struct {
	config  gameConfig
	context *render.Context
	pencil  render.WavePencil
	rng     *rand.Rand

	screenWidth  int
	screenHeight int

	// all finished strokes
	committed *render.Frame

	// the stroke currently drawn
	live *render.Frame

	touches *stroke.TouchList
	pointer pointer
	touchID ebiten.TouchID
	phases  []float32
	seed    uint64

	// maps window coordinates to frame coordinates
	toFrame gm.Affine

	touchIDs []ebiten.TouchID
}

func newGame(config gameConfig) *game {
	return &game{
		config:  config,
		context: render.NewContext(render.EbitenDevice{}, render.DefaultContextConfig()),
		pencil: render.WavePencil{
			Thickness: config.Thickness,
			Amplitude: config.Amplitude,
			Period:    config.Period,
		},
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		toFrame: gm.IdentityAffine().Scale(gm.VecSplat(config.Scale)),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if err := g.ensureFrames(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		slog.Debug("Clear drawing")
		g.committed.Clear()
	}

	return g.handleInput()
}

func (g *game) handleInput() error {
	switch g.pointer {
	case pointerNone:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.begin(pointerMouse, 0)
			return g.move(ebiten.CursorPosition())
		}

		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) > 0 {
			g.begin(pointerTouch, g.touchIDs[0])
			return g.move(ebiten.TouchPosition(g.touchID))
		}

	case pointerMouse:
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			return g.commit()
		}

		return g.move(ebiten.CursorPosition())

	case pointerTouch:
		if inpututil.IsTouchJustReleased(g.touchID) {
			return g.commit()
		}

		return g.move(ebiten.TouchPosition(g.touchID))
	}

	return nil
}

func (g *game) begin(pointer pointer, touchID ebiten.TouchID) {
	g.pointer = pointer
	g.touchID = touchID
	g.touches = stroke.NewTouchList(g.config.PixelSize)

	// every stroke gets its own wave
	g.phases = []float32{
		gm.RandomAngle(g.rng).Radians(),
		gm.RandomAngle(g.rng).Radians(),
		gm.RandomAngle(g.rng).Radians(),
	}

	g.seed = g.rng.Uint64()
}

func (g *game) move(x, y int) error {
	touch := gm.TouchOf(float32(x), float32(y), 1)

	if last, ok := g.touches.Last(); ok && last == touch {
		return nil
	}

	g.touches.Push(touch.X(), touch.Y(), touch.Pressure)
	return g.drawLive()
}

func (g *game) drawLive() error {
	touches := g.touches.Transformed(g.toFrame)

	err := g.live.Draw(g.pencil, touches, strokeColor, g.phases, g.seed)
	if err != nil {
		return fmt.Errorf("draw stroke: %w", err)
	}

	return nil
}

func (g *game) commit() error {
	slog.Debug("Commit stroke", slog.Int("touches", g.touches.Len()))

	g.committed.Merge(g.live)
	g.live.Clear()

	g.pointer = pointerNone
	g.touches = nil

	return nil
}

// ensureFrames (re)creates the frames when the size of the screen changes.
// The drawing is lost in that case.
func (g *game) ensureFrames() error {
	width := max(1, int(math.Ceil(float64(g.screenWidth)*float64(g.config.Scale))))
	height := max(1, int(math.Ceil(float64(g.screenHeight)*float64(g.config.Scale))))

	if g.committed != nil {
		currentWidth, currentHeight := g.committed.Size()
		if currentWidth == width && currentHeight == height {
			return nil
		}

		g.committed.Release()
		g.live.Release()
	}

	slog.Info("Resize frames", slog.Int("width", width), slog.Int("height", height))

	committed, err := g.context.Frame(width, height)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}

	live, err := g.context.Frame(width, height)
	if err != nil {
		committed.Release()
		return fmt.Errorf("create frame: %w", err)
	}

	g.committed = committed
	g.live = live

	committed.Clear()
	live.Clear()

	// a stroke in progress would continue in a frame of the wrong size
	g.pointer = pointerNone
	g.touches = nil

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.committed == nil {
		return
	}

	bounds := []int{0, 0, g.screenWidth, g.screenHeight}

	g.context.Clear(screen, bounds, background)
	g.context.DrawFrame(screen, g.committed, bounds)

	if g.touches != nil {
		g.context.DrawFrame(screen, g.live, bounds)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.screenWidth = max(1, outsideWidth)
	g.screenHeight = max(1, outsideHeight)
	return g.screenWidth, g.screenHeight
}
