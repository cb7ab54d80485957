package bot

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naiveStrategy struct {
	rng *rand.Rand
}

// NewNaiveStrategy plays the first card it can and picks colors at random.
func NewNaiveStrategy(rng *rand.Rand) Strategy {
	return naiveStrategy{rng: rng}
}

func (s naiveStrategy) PickColor(gameState game.State) color.Color {
	colors := color.Playable()
	return colors[s.rng.Intn(len(colors))]
}

func (s naiveStrategy) PickCard(playableCards []*card.Card, gameState game.State) *card.Card {
	if len(playableCards) == 0 {
		return nil
	}
	return playableCards[0]
}
