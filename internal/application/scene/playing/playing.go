// Package playing provides the scene shown once loading has finished.
package playing

import (
	"github.com/younwookim/loadscreen/internal/application/state"
	"github.com/younwookim/loadscreen/internal/ecs"
	"github.com/younwookim/loadscreen/internal/infrastructure/config"
)

// Playing shows a static placeholder label. It has no per-frame behavior
// and no exit hook; the program never leaves Playing.
type Playing struct {
	world *ecs.World
	cfg   config.PlayingConfig
	label ecs.EntityID
}

// New creates the playing scene
func New(world *ecs.World, cfg config.PlayingConfig) *Playing {
	return &Playing{world: world, cfg: cfg}
}

// State implements scene.Scene
func (p *Playing) State() state.AppState {
	return state.StatePlaying
}

// OnEnter spawns the label near the top-left corner (implements scene.Enterer)
func (p *Playing) OnEnter() {
	p.label = p.world.CreateText(ecs.NoEntity, ecs.Node{
		PositionType: ecs.PositionAbsolute,
		Top:          ecs.Px(p.cfg.Top),
		Left:         ecs.Px(p.cfg.Left),
	}, ecs.Text{
		Content:  p.cfg.Text,
		FontSize: p.cfg.FontSize,
		Color:    p.cfg.TextColor,
	})
}

// Label returns the spawned label, or ecs.NoEntity before OnEnter
func (p *Playing) Label() ecs.EntityID {
	return p.label
}
