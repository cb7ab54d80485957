package bot_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/bot"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestStrategyByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, name := range []string{"naive", " Naive ", "good", "GOOD", ""} {
		strategy, err := bot.StrategyByName(name, rng)
		require.NoError(t, err)
		require.NotNil(t, strategy)
	}

	_, err := bot.StrategyByName("clever", rng)
	require.Error(t, err)
}

func TestNaiveStrategy(t *testing.T) {
	strategy := bot.NewNaiveStrategy(rand.New(rand.NewSource(1)))

	t.Run("plays_the_first_playable_card", func(t *testing.T) {
		playableCards := []*card.Card{card.New(color.Blue, card.Five), card.New(color.Red, card.Five)}
		require.Same(t, playableCards[0], strategy.PickCard(playableCards, game.State{}))
	})

	t.Run("plays_nothing_without_playable_cards", func(t *testing.T) {
		require.Nil(t, strategy.PickCard(nil, game.State{}))
	})

	t.Run("picks_a_playable_color", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			require.Contains(t, color.Playable(), strategy.PickColor(game.State{}))
		}
	})
}

func TestGoodStrategy(t *testing.T) {
	strategy := bot.NewGoodStrategy()

	t.Run("picks_the_most_frequent_color", func(t *testing.T) {
		gameState := game.State{CurrentPlayerHand: []*card.Card{
			card.New(color.Red, card.One),
			card.New(color.Yellow, card.Two),
			card.New(color.Red, card.Three),
			card.New(color.Wild, card.Wild),
		}}
		require.Equal(t, color.Red, strategy.PickColor(gameState))
	})

	t.Run("picks_blue_for_an_empty_hand", func(t *testing.T) {
		require.Equal(t, color.Blue, strategy.PickColor(game.State{}))
	})

	t.Run("plays_the_card_leaving_most_follow_ups", func(t *testing.T) {
		blueFive := card.New(color.Blue, card.Five)
		redSeven := card.New(color.Red, card.Seven)
		gameState := game.State{
			CurrentPlayerHand: []*card.Card{
				blueFive,
				redSeven,
				card.New(color.Red, card.Eight),
				card.New(color.Red, card.Nine),
			},
			Rules: game.DefaultRules(),
		}
		require.Same(t, redSeven, strategy.PickCard([]*card.Card{blueFive, redSeven}, gameState))
	})

	t.Run("plays_nothing_without_playable_cards", func(t *testing.T) {
		require.Nil(t, strategy.PickCard(nil, game.State{}))
	})
}
