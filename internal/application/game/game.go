// Package game provides the main game loop that drives the application state machine.
package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/loadscreen/internal/application/replay"
	"github.com/younwookim/loadscreen/internal/application/scene"
	"github.com/younwookim/loadscreen/internal/application/scene/loading"
	"github.com/younwookim/loadscreen/internal/application/scene/playing"
	"github.com/younwookim/loadscreen/internal/application/state"
	"github.com/younwookim/loadscreen/internal/domain/timer"
	"github.com/younwookim/loadscreen/internal/ecs"
	"github.com/younwookim/loadscreen/internal/infrastructure/config"
	"github.com/younwookim/loadscreen/internal/infrastructure/render"
)

var colorClear = color.RGBA{0, 0, 0, 255}

// DeltaSource supplies the elapsed time of each frame.
// ok=false means the source is exhausted.
type DeltaSource interface {
	Next() (dt float64, ok bool)
}

// Game implements ebiten.Game and drives the state machine once per tick.
type Game struct {
	cfg      *config.AppConfig
	world    *ecs.World
	machine  *state.Machine
	renderer *render.Renderer

	// Created by the startup setup
	countdown *timer.Countdown

	loading *loading.Loading
	playing *playing.Playing

	screenW int
	screenH int
	dt      float64
	frames  int

	source   DeltaSource
	recorder *replay.Recorder
}

// New creates a Game from configuration. Startup setup runs immediately,
// followed by the enter hooks of the initial Loading state.
func New(cfg *config.AppConfig) *Game {
	g := &Game{
		cfg:      cfg,
		world:    ecs.NewWorld(),
		machine:  state.NewMachine(state.StateLoading),
		renderer: render.NewRenderer(),
		screenW:  cfg.Display.ScreenWidth,
		screenH:  cfg.Display.ScreenHeight,
		dt:       cfg.DT(),
	}
	g.setup()

	g.loading = loading.New(g.world, g.countdown, cfg.Loading)
	g.playing = playing.New(g.world, cfg.Playing)
	scene.Register(g.machine, g.loading)
	scene.Register(g.machine, g.playing)

	g.machine.OnTransition(func(from, to state.AppState) {
		log.Printf("State: %s -> %s (frame %d, %.2fs loaded)", from, to, g.frames, g.countdown.Elapsed())
	})

	g.machine.Start()
	return g
}

// setup runs once at process start
func (g *Game) setup() {
	g.countdown = timer.NewCountdown(g.cfg.Loading.Duration)
}

// Update advances one frame: state update hooks, then the frame-boundary
// transition, then the widget tree. Implements ebiten.Game interface.
func (g *Game) Update() error {
	dt := g.nextDelta()
	if g.recorder != nil {
		g.recorder.RecordFrame(dt)
	}

	g.machine.Update(dt)
	g.machine.ApplyPending()
	g.renderer.Update(g.world)

	g.frames++
	return nil
}

func (g *Game) nextDelta() float64 {
	dt := g.dt
	if g.source != nil {
		d, ok := g.source.Next()
		if !ok {
			d = 0 // exhausted source: idle frames
		}
		dt = d
	}
	if dt < 0 {
		return 0
	}
	return dt
}

// Draw renders the node tree.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorClear)
	g.renderer.Draw(screen, g.world)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetDeltaSource makes Update take its deltas from src instead of the fixed dt
func (g *Game) SetDeltaSource(src DeltaSource) {
	g.source = src
}

// SetRecorder records every frame's delta into rec
func (g *Game) SetRecorder(rec *replay.Recorder) {
	g.recorder = rec
}

// State returns the active application state
func (g *Game) State() state.AppState {
	return g.machine.Current()
}

// Machine returns the state machine
func (g *Game) Machine() *state.Machine {
	return g.machine
}

// World returns the visual node world
func (g *Game) World() *ecs.World {
	return g.world
}

// Countdown returns the loading countdown
func (g *Game) Countdown() *timer.Countdown {
	return g.countdown
}

// Loading returns the loading scene
func (g *Game) Loading() *loading.Loading {
	return g.loading
}

// Frames returns the number of updates run
func (g *Game) Frames() int {
	return g.frames
}
