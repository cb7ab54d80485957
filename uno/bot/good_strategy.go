package bot

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodStrategy struct{}

// NewGoodStrategy plays the card that leaves the most follow-up plays and
// picks the color it holds most of.
func NewGoodStrategy() Strategy {
	return goodStrategy{}
}

func (s goodStrategy) PickColor(gameState game.State) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range gameState.CurrentPlayerHand {
		if !handCard.IsWild() {
			colorCounts[handCard.Color()]++
		}
	}

	mostFrequentColor := color.Blue
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Playable() {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

func (s goodStrategy) PickCard(playableCards []*card.Card, gameState game.State) *card.Card {
	if len(playableCards) == 0 {
		return nil
	}
	mostDiscardableCardIndex := 0
	maxSpareCards := 0

	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range gameState.CurrentPlayerHand {
			if handCard != playableCard && gameState.Rules.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}
