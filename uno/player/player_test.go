package player_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := player.New("Annie")
	assert.Equal(t, "Annie", p.Name())
	assert.False(t, p.IsAI())
	assert.Equal(t, 0, p.HandSize())
	assert.True(t, p.HasWon())

	bot := player.NewAI("Braum")
	assert.True(t, bot.IsAI())
}

func TestUnoCall(t *testing.T) {
	t.Run("adding_a_second_card_resets_call", func(t *testing.T) {
		p := player.New("Annie")
		p.AddCard(card.New(color.Red, card.One))
		p.CallUno()
		require.True(t, p.CalledUno())
		p.AddCard(card.New(color.Red, card.Two))
		require.False(t, p.CalledUno())
	})

	t.Run("first_card_keeps_call", func(t *testing.T) {
		p := player.New("Annie")
		p.CallUno()
		p.AddCard(card.New(color.Red, card.One))
		require.True(t, p.CalledUno())
	})

	t.Run("reset", func(t *testing.T) {
		p := player.New("Annie")
		p.CallUno()
		p.ResetUnoCall()
		require.False(t, p.CalledUno())
	})
}

func TestPlayableCard(t *testing.T) {
	p := player.New("Annie")
	p.AddCard(card.New(color.Red, card.One))
	p.AddCard(card.New(color.Blue, card.Two))

	top := card.New(color.Blue, card.Nine)
	require.True(t, p.HasPlayableCard(top))
	require.Equal(t, card.New(color.Blue, card.Two), p.PlayableCard(top))
	require.Len(t, p.PlayableCards(top), 1)

	require.False(t, p.HasPlayableCard(card.New(color.Green, card.Nine)))
	require.Nil(t, p.PlayableCard(card.New(color.Green, card.Nine)))

	wild := card.New(color.Wild, card.Wild)
	wild.SetChosenColor(color.Blue)
	require.False(t, p.HasPlayableCard(wild))
	require.Empty(t, p.PlayableCards(wild))
}

func TestHandIsACopy(t *testing.T) {
	p := player.New("Annie")
	p.AddCard(card.New(color.Red, card.One))
	hand := p.Hand()
	hand[0] = nil
	require.NotNil(t, p.Hand()[0])
	require.True(t, p.HasCard(card.New(color.Red, card.One)))
}

func TestCalculateHandScore(t *testing.T) {
	p := player.New("Annie")
	p.AddCard(card.New(color.Red, card.Nine))
	p.AddCard(card.New(color.Red, card.Skip))
	p.AddCard(card.New(color.Wild, card.WildDrawFour))
	require.Equal(t, 79, p.CalculateHandScore())

	p.CallUno()
	p.ClearHand()
	require.Equal(t, 0, p.CalculateHandScore())
	require.False(t, p.CalledUno())
}

func TestString(t *testing.T) {
	p := player.New("Annie")
	p.AddCard(card.New(color.Red, card.Nine))
	require.Equal(t, "Annie (1 card(s))", p.String())
}
