package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tdewolff/argp"
)

type Wavepen struct {
	Width     int     `default:"1024" desc:"Window width"`
	Height    int     `default:"768" desc:"Window height"`
	Thickness float64 `default:"6" desc:"Distance of the stroke edges from its center in pixels"`
	Amplitude float64 `default:"0.8" desc:"Amplitude of the wave in [0, 1]"`
	Period    float64 `default:"32" desc:"Wave length along the stroke in pixels"`
	PixelSize float64 `name:"pixel-size" default:"2" desc:"Distance below which touches are merged"`
	Scale     float64 `default:"1" desc:"Resolution of the drawing relative to the window"`
	LogFile   string  `name:"log-file" default:"" desc:"Write a rotated log file instead of logging to stderr"`
	Verbose   bool    `short:"v" desc:"Enable debug logging"`
	Profile   string  `default:"" desc:"Record a cpu or mem profile"`
}

func main() {
	root := argp.NewCmd(&Wavepen{}, "Draw wavy pen strokes with mouse or touch")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Wavepen) Run() error {
	if err := cmd.validate(); err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}

	closeLog := setupLogging(cmd.LogFile, cmd.Verbose)
	defer closeLog()

	profiler, err := startProfile(cmd.Profile)
	if err != nil {
		return err
	}

	defer profiler.Stop()

	ebiten.SetWindowTitle("wavepen")
	ebiten.SetWindowSize(cmd.Width, cmd.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("Starting",
		slog.Int("width", cmd.Width),
		slog.Int("height", cmd.Height),
		slog.Float64("scale", cmd.Scale),
	)

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(newGame(cmd.gameConfig()), &options)
}

func (cmd *Wavepen) validate() error {
	switch {
	case cmd.Width <= 0 || cmd.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", cmd.Width, cmd.Height)
	case !(cmd.PixelSize > 0):
		return errors.New("pixel size must be positive")
	case !(cmd.Scale > 0 && cmd.Scale <= 4):
		return errors.New("scale must be in (0, 4]")
	case !(cmd.Period > 0):
		return errors.New("period must be positive")
	case cmd.Amplitude < 0 || cmd.Amplitude > 1:
		return errors.New("amplitude must be in [0, 1]")
	}

	return nil
}

func (cmd *Wavepen) gameConfig() gameConfig {
	return gameConfig{
		Thickness: float32(cmd.Thickness),
		Amplitude: float32(cmd.Amplitude),
		Period:    float32(cmd.Period),
		PixelSize: float32(cmd.PixelSize),
		Scale:     float32(cmd.Scale),
	}
}
