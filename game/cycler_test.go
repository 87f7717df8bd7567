package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uno-online/engine/game"
)

func TestCyclerCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
}

func TestCyclerNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
}

func TestCyclerReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, game.Clockwise, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, game.CounterClockwise, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 3, cycler.Next(), "wraps below zero")
	cycler.Reverse()
	assert.Equal(t, game.Clockwise, cycler.Direction())
	assert.Equal(t, 0, cycler.Next())
}

func TestCyclerReverseAtZeroWrapsToLastPlayer(t *testing.T) {
	cycler := game.NewCycler(4)
	cycler.Reverse()
	assert.Equal(t, 3, cycler.Next())
}
