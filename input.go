package main

import (
	"github.com/deitrix/tetris-srs/round"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key ebiten.Key
	cmd round.Command
}

// bindings maps keys to round commands. Both the letter and arrow layouts are bound.
var bindings = []binding{
	{ebiten.KeyA, round.MoveLeft},
	{ebiten.KeyLeft, round.MoveLeft},
	{ebiten.KeyD, round.MoveRight},
	{ebiten.KeyRight, round.MoveRight},
	{ebiten.KeyS, round.SoftDrop},
	{ebiten.KeyDown, round.SoftDrop},
	{ebiten.KeyW, round.Rotate},
	{ebiten.KeyUp, round.Rotate},
	{ebiten.KeySpace, round.HardDrop},
	{ebiten.KeyP, round.TogglePause},
	{ebiten.KeyR, round.Restart},
	{ebiten.KeyEscape, round.Quit},
}

const (
	keyDebug = ebiten.KeyI
	keyCopy  = ebiten.KeyC
)

var helpText = []string{
	"Controls:",
	"A / Left: move left",
	"D / Right: move right",
	"S / Down: soft drop",
	"W / Up: rotate",
	"Space: hard drop",
	"P: pause",
	"R: restart",
	"C: copy board",
	"Esc: quit",
}

// pollCommands feeds this frame's key presses and releases to the round.
func pollCommands(r *round.Round) {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			r.Press(b.cmd)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			r.Release(b.cmd)
		}
	}
}
