package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const (
	Naive = "naive"
	Good  = "good"
)

// Strategy decides a bot's move from what its seat can see.
type Strategy interface {
	PickCard(playableCards []*card.Card, gameState game.State) *card.Card
	PickColor(gameState game.State) color.Color
}

func StrategyByName(name string, rng *rand.Rand) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Naive:
		return NewNaiveStrategy(rng), nil
	case Good, "":
		return NewGoodStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", name)
	}
}
