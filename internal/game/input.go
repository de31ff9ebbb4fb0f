package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/config"
)

// keySource abstracts ebiten's key polling so input mapping can be tested.
type keySource struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var ebitenKeys = keySource{
	pressed:     ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

// InputHandler turns the keyboard into Controls.
type InputHandler struct {
	config *config.Config
	keys   keySource
}

// NewInputHandler creates an input handler reading the real keyboard.
func NewInputHandler(cfg *config.Config) *InputHandler {
	return &InputHandler{config: cfg, keys: ebitenKeys}
}

func (ih *InputHandler) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ih.keys.pressed(k) {
			return true
		}
	}
	return false
}

// Controls reads movement and the use key. Shift runs; Alt turns the turn
// keys into strafe keys.
func (ih *InputHandler) Controls() Controls {
	var c Controls

	move, turn := ih.config.GetMoveSpeed(), ih.config.GetTurnSpeed()
	if ih.anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight) {
		move, turn = ih.config.GetRunSpeed(), ih.config.GetRunTurnSpeed()
	}

	if ih.anyPressed(ebiten.KeyUp, ebiten.KeyW) {
		c.Forward += move
	}
	if ih.anyPressed(ebiten.KeyDown, ebiten.KeyS) {
		c.Forward -= move
	}

	strafing := ih.anyPressed(ebiten.KeyAltLeft, ebiten.KeyAltRight)
	left := ih.anyPressed(ebiten.KeyLeft, ebiten.KeyA)
	right := ih.anyPressed(ebiten.KeyRight, ebiten.KeyD)
	switch {
	case strafing && left:
		c.Strafe -= move
	case strafing && right:
		c.Strafe += move
	case left:
		c.Turn += turn
	case right:
		c.Turn -= turn
	}

	if ih.anyPressed(ebiten.KeyQ) {
		c.Strafe -= move
	}
	if ih.anyPressed(ebiten.KeyE) {
		c.Strafe += move
	}

	c.Use = ih.keys.justPressed(ebiten.KeySpace) || ih.keys.justPressed(ebiten.KeyEnter)
	return c
}

// ToggleOverlay reports a press of the overlay key.
func (ih *InputHandler) ToggleOverlay() bool {
	return ih.keys.justPressed(ebiten.KeyTab)
}
