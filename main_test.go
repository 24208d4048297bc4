package main

import (
	"testing"
	"time"

	"github.com/deitrix/tetris-srs/round"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestBindings(t *testing.T) {
	keys := map[ebiten.Key]bool{keyDebug: true, keyCopy: true}
	commands := map[round.Command]int{}
	for _, b := range bindings {
		if keys[b.key] {
			t.Errorf("key %s is bound more than once", b.key)
		}
		keys[b.key] = true
		commands[b.cmd]++
	}
	for c := round.MoveLeft; c <= round.Quit; c++ {
		assert.NotZero(t, commands[c], "no key for %s", c)
	}
}

func TestGame_FrameTime(t *testing.T) {
	tests := []struct {
		tps  int
		want time.Duration
	}{
		{tps: 60, want: 16666666 * time.Nanosecond},
		{tps: 50, want: 20 * time.Millisecond},
		{tps: 1, want: time.Second},
	}
	for _, test := range tests {
		g := Game{TPS: test.tps}
		assert.Equal(t, test.want, g.frameTime(), "tps %d", test.tps)
	}
}
