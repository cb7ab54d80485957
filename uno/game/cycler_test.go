package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	require.True(t, cycler.Clockwise())
	require.False(t, cycler.Reverse())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	require.True(t, cycler.Reverse())
	assert.Equal(t, 3, cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(3)
	cycler.Set(2)
	assert.Equal(t, 0, cycler.Peek())
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Peek())
}

func TestNeverStuck(t *testing.T) {
	for size := 2; size <= 10; size++ {
		cycler := game.NewCycler(size)
		for step := 0; step < 3*size; step++ {
			before := cycler.Current()
			if step%4 == 0 {
				cycler.Reverse()
			}
			after := cycler.Next()
			require.NotEqual(t, before, after)
			require.True(t, after >= 0 && after < size)
		}
	}
}

func TestCyclerReset(t *testing.T) {
	cycler := game.NewCycler(3)
	cycler.Next()
	cycler.Reverse()
	cycler.Reset()
	assert.Equal(t, 0, cycler.Current())
	assert.True(t, cycler.Clockwise())
}
