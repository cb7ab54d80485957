package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. The last card of the slice is the top.
type Pile struct {
	cards []*card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]*card.Card, 0, 54)}
}

func (p *Pile) Add(card *card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []*card.Card {
	cards := make([]*card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Top() *card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// Below returns the card under the top one, nil if there is none.
func (p *Pile) Below() *card.Card {
	pileSize := len(p.cards)
	if pileSize < 2 {
		return nil
	}
	return p.cards[pileSize-2]
}

// TakeAllButTop removes every card except the top one and returns them
// bottom first. Chosen colors are cleared since the cards go back in play.
func (p *Pile) TakeAllButTop() []*card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	rest := make([]*card.Card, len(p.cards)-1)
	copy(rest, p.cards[:len(p.cards)-1])
	for _, c := range rest {
		c.ClearChosenColor()
	}
	p.cards = append(p.cards[:0], top)
	return rest
}

func (p *Pile) Clear() {
	p.cards = p.cards[:0]
}
