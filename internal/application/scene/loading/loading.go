// Package loading provides the loading screen scene: a full-viewport panel
// with a label and a rotating spinner, shown until a countdown finishes.
package loading

import (
	"github.com/younwookim/loadscreen/internal/application/state"
	"github.com/younwookim/loadscreen/internal/domain/timer"
	"github.com/younwookim/loadscreen/internal/ecs"
	"github.com/younwookim/loadscreen/internal/infrastructure/config"
)

// Loading is the loading screen scene
type Loading struct {
	world *ecs.World
	timer *timer.Countdown
	cfg   config.LoadingConfig

	// Nodes spawned by OnEnter; all of them are removed by OnExit
	root     ecs.EntityID
	spinners []ecs.EntityID
}

// New creates the loading scene. The countdown is owned by the caller
// (created once at startup) and only read and advanced here.
func New(world *ecs.World, countdown *timer.Countdown, cfg config.LoadingConfig) *Loading {
	return &Loading{
		world: world,
		timer: countdown,
		cfg:   cfg,
	}
}

// State implements scene.Scene
func (l *Loading) State() state.AppState {
	return state.StateLoading
}

// OnEnter spawns the loading screen tree (implements scene.Enterer)
func (l *Loading) OnEnter() {
	l.root = l.world.CreateNode(ecs.NoEntity, ecs.Node{
		Width:          ecs.Percent(100),
		Height:         ecs.Percent(100),
		Direction:      ecs.DirectionColumn,
		AlignItems:     ecs.AlignCenter,
		JustifyContent: ecs.AlignCenter,
	}, ecs.Style{Background: l.cfg.Background})

	l.world.CreateText(l.root, ecs.Node{}, ecs.Text{
		Content:  l.cfg.Text,
		FontSize: l.cfg.FontSize,
		Color:    l.cfg.TextColor,
	})

	box := l.world.CreateNode(l.root, ecs.Node{
		Width:     ecs.Px(l.cfg.SpinnerSize),
		Height:    ecs.Px(l.cfg.SpinnerSize),
		MarginTop: l.cfg.SpinnerMargin,
	}, ecs.Style{})

	spinner := l.world.CreateSpinner(box, ecs.Node{
		Width:  ecs.Percent(100),
		Height: ecs.Percent(100),
		Border: l.cfg.SpinnerBorder,
	}, ecs.Style{
		BorderColor:  l.cfg.SpinnerColor,
		CornerRadius: ecs.Percent(50),
	})
	l.spinners = append(l.spinners, spinner)
}

// Update rotates the spinners, advances the countdown, and requests
// Playing once it has finished (implements scene.Updater)
func (l *Loading) Update(dt float64, next state.Requester) {
	if dt > 0 {
		for _, id := range l.spinners {
			l.world.RotateZ(id, l.cfg.SpinRate*dt)
		}
		l.timer.Advance(dt)
	}

	if l.timer.Finished() {
		next.Request(state.StatePlaying)
	}
}

// OnExit removes every node spawned by OnEnter (implements scene.Exiter).
// Safe to call more than once.
func (l *Loading) OnExit() {
	if l.root != ecs.NoEntity {
		l.world.DespawnRecursive(l.root)
	}
	l.root = ecs.NoEntity
	l.spinners = nil
}

// Root returns the loading screen root node, or ecs.NoEntity when not shown
func (l *Loading) Root() ecs.EntityID {
	return l.root
}

// Spinners returns the spinner nodes currently owned by the scene
func (l *Loading) Spinners() []ecs.EntityID {
	return l.spinners
}
