package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const DeckSize = 108

// Deck is the draw stack. The last card of the slice is the top.
type Deck struct {
	cards []*card.Card
}

func NewDeck() *Deck {
	deck := &Deck{}
	fillDeck(deck)
	return deck
}

func NewEmptyDeck() *Deck {
	return &Deck{cards: make([]*card.Card, 0, DeckSize)}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Push(cards ...*card.Card) {
	d.cards = append(d.cards, cards...)
}

// Pop takes the top card, nil when the deck is empty.
func (d *Deck) Pop() *card.Card {
	if len(d.cards) == 0 {
		return nil
	}
	top := d.cards[len(d.cards)-1]
	d.cards[len(d.cards)-1] = nil
	d.cards = d.cards[:len(d.cards)-1]
	return top
}

func (d *Deck) Cards() []*card.Card {
	cards := make([]*card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	fillDeck(d)
}

func fillDeck(deck *Deck) {
	cards := make([]*card.Card, 0, DeckSize)

	for _, cardColor := range color.Playable() {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)

	deck.cards = append(deck.cards, cards...)
}

func createColorCards(cardColor color.Color) []*card.Card {
	cards := []*card.Card{card.New(cardColor, card.Zero)}
	for i := 0; i < 2; i++ {
		for number := card.One; number <= card.Nine; number++ {
			cards = append(cards, card.New(cardColor, number))
		}
	}
	for i := 0; i < 2; i++ {
		cards = append(cards,
			card.New(cardColor, card.Skip),
			card.New(cardColor, card.Reverse),
			card.New(cardColor, card.DrawTwo),
		)
	}
	return cards
}

func createWildCards() []*card.Card {
	cards := make([]*card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards,
			card.New(color.Wild, card.Wild),
			card.New(color.Wild, card.WildDrawFour),
		)
	}
	return cards
}
