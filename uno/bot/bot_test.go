package bot_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/bot"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCreateBots(t *testing.T) {
	t.Run("creates_distinct_ai_players", func(t *testing.T) {
		bots, err := bot.CreateBots(4, bot.Good, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Len(t, bots, 4)

		names := make(map[string]bool)
		for _, b := range bots {
			require.True(t, b.IsAI())
			require.NotNil(t, b.Strategy())
			names[b.Name()] = true
		}
		require.Len(t, names, 4)
	})

	t.Run("is_deterministic_for_a_seed", func(t *testing.T) {
		botsOne, err := bot.CreateBots(3, bot.Naive, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		botsTwo, err := bot.CreateBots(3, bot.Naive, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		for i := range botsOne {
			require.Equal(t, botsOne[i].Name(), botsTwo[i].Name())
		}
	})

	t.Run("rejects_table_sizes_out_of_range", func(t *testing.T) {
		_, err := bot.CreateBots(1, bot.Good, rand.New(rand.NewSource(1)))
		require.Equal(t, consts.ErrorsNotEnoughPlayers, err)
		_, err = bot.CreateBots(consts.MaxPlayers+1, bot.Good, rand.New(rand.NewSource(1)))
		require.Equal(t, consts.ErrorsTooManyPlayers, err)
	})

	t.Run("rejects_unknown_strategy", func(t *testing.T) {
		_, err := bot.CreateBots(2, "clever", rand.New(rand.NewSource(1)))
		require.Error(t, err)
	})
}

func TestTakeTurn(t *testing.T) {
	for _, strategyName := range []string{bot.Naive, bot.Good} {
		t.Run(strategyName+"_bots_finish_a_game", func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			bots, err := bot.CreateBots(4, strategyName, rng)
			require.NoError(t, err)

			g := game.New(game.WithRand(rng), game.WithRules(game.Rules{MatchChosenColor: true}))
			for _, b := range bots {
				require.NoError(t, g.AddPlayer(b.Player))
			}
			require.NoError(t, g.Start())

			for turn := 0; turn < consts.MaxTurnsPerRound && !g.IsEnded(); turn++ {
				current := bots[g.CurrentPlayerIndex()]
				waiting := bots[(g.CurrentPlayerIndex()+1)%len(bots)]
				require.Nil(t, waiting.TakeTurn(g))

				played := current.TakeTurn(g)
				if played != nil && played.IsWild() {
					require.True(t, played.HasChosenColor())
				}
				if played != nil && !g.IsEnded() && current.HandSize() == 1 {
					require.True(t, current.CalledUno())
				}
			}

			require.True(t, g.IsEnded())
			require.True(t, g.Winner().HasWon())
		})
	}
}

func TestTakeTurnBeforeStart(t *testing.T) {
	b := bot.New("Annie", bot.NewGoodStrategy())
	g := game.New()
	require.NoError(t, g.AddPlayer(b.Player))
	require.Nil(t, b.TakeTurn(g))
}
