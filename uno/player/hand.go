package player

import (
	"github.com/ratel-online/uno/uno/card"
)

type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards ...*card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableCards lists the cards that match lastPlayedCard under the default
// rules. Game.Playable applies the rules a game was configured with.
func (h *Hand) PlayableCards(lastPlayedCard *card.Card) []*card.Card {
	var playableCards []*card.Card
	for _, candidateCard := range h.cards {
		if candidateCard.CanPlayOn(lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard takes the given card instance out of the hand, or else the first
// card equal to it. Order of the remaining cards is kept.
func (h *Hand) RemoveCard(c *card.Card) *card.Card {
	index := h.indexOf(c)
	if index < 0 {
		return nil
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Contains(c *card.Card) bool {
	return h.indexOf(c) >= 0
}

func (h *Hand) indexOf(c *card.Card) int {
	if c == nil {
		return -1
	}
	for index, cardInHand := range h.cards {
		if cardInHand == c {
			return index
		}
	}
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return index
		}
	}
	return -1
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Score() int {
	score := 0
	for _, c := range h.cards {
		score += c.ScoreValue()
	}
	return score
}
