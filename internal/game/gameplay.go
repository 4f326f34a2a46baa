package game

import (
	"fmt"
	"math/rand"

	"github.com/miyoosquare/square/internal/config"
	"github.com/miyoosquare/square/internal/core"
	"github.com/miyoosquare/square/internal/lang"
)

// Session is the demo gameplay: steer a square around a walled field and
// collect pickups. Pure logic, deterministic for a fixed seed and input
// sequence; rendering goes through the screen buffer only.
type Session struct {
	rng  *rand.Rand
	tick uint64

	field    core.Rect // Playable area, inside the border
	player   core.Rect
	pickup   core.Rect
	dx, dy   int // Held direction, applied every moveEvery ticks
	moveTick int

	moveEvery int
	target    int // Pickups to collect before the run completes

	score    int
	complete bool
}

// NewSession creates an unstarted session; call Reset before stepping.
func NewSession() *Session {
	return &Session{}
}

// Reset starts a fresh run sized to the screen.
func (g *Session) Reset(rc core.RuntimeConfig, gc config.GameplayConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.complete = false
	g.dx, g.dy = 0, 0
	g.moveTick = 0

	g.moveEvery = gc.MoveEveryTicks
	if g.moveEvery <= 0 {
		g.moveEvery = 3
	}
	g.target = gc.PickupTarget
	if g.target <= 0 {
		g.target = 10
	}

	// One row reserved for the HUD, one cell border on each side.
	g.field = core.NewRect(1, 2, core.Max(rc.ScreenW-2, 8), core.Max(rc.ScreenH-3, 6))
	g.player = core.NewRect(g.field.X+g.field.W/2, g.field.Y+g.field.H/2, 2, 1)
	g.spawnPickup()
}

// Apply records the direction held this frame. Opposing actions cancel out.
func (g *Session) Apply(in core.InputFrame) {
	g.dx, g.dy = 0, 0
	if in.Has(core.ActionLeft) {
		g.dx--
	}
	if in.Has(core.ActionRight) {
		g.dx++
	}
	if in.Has(core.ActionUp) {
		g.dy--
	}
	if in.Has(core.ActionDown) {
		g.dy++
	}
}

// Step advances the simulation by one tick.
func (g *Session) Step() {
	if g.complete {
		return
	}
	g.tick++

	g.moveTick++
	if g.moveTick < g.moveEvery {
		return
	}
	g.moveTick = 0

	g.player.X = core.Clamp(g.player.X+g.dx, g.field.X, g.field.Right()-g.player.W)
	g.player.Y = core.Clamp(g.player.Y+g.dy, g.field.Y, g.field.Bottom()-g.player.H)

	if g.player.Intersects(g.pickup) {
		g.score++
		if g.score >= g.target {
			g.complete = true
			return
		}
		g.spawnPickup()
	}
}

// spawnPickup places the next pickup on a free cell of the field.
func (g *Session) spawnPickup() {
	for {
		x := g.field.X + g.rng.Intn(core.Max(g.field.W-1, 1))
		y := g.field.Y + g.rng.Intn(core.Max(g.field.H, 1))
		g.pickup = core.NewRect(x, y, 1, 1)
		if !g.pickup.Intersects(g.player) {
			return
		}
	}
}

// Score returns the pickups collected so far.
func (g *Session) Score() int {
	return g.score
}

// Complete reports whether the run reached its pickup target.
func (g *Session) Complete() bool {
	return g.complete
}

// Render draws the field, the square, the pickup and the HUD.
func (g *Session) Render(dst *core.Screen, cat lang.Catalog) {
	dst.Clear()

	border := core.NewRect(g.field.X-1, g.field.Y-1, g.field.W+2, g.field.H+2)
	dst.DrawBox(border, core.ColorGray)

	dst.DrawText(1, 0, fmt.Sprintf("%s: %d / %d", cat.Score, g.score, g.target))

	dst.SetCell(g.pickup.X, g.pickup.Y, '◆', core.ColorBrightYellow)
	dst.DrawRect(g.player, '█', core.ColorRed)
}
