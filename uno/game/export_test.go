package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/player"
)

// Arrange collects every card back into the deck and then lays out the pile
// (bottom first) and the hands of the players in order, taking equal cards
// out of the deck. Chosen colors of the given cards are copied over.
func (g *Game) Arrange(current int, pile []*card.Card, hands ...[]*card.Card) {
	cards := g.deck.Cards()
	cards = append(cards, g.pile.Cards()...)
	for _, p := range g.players {
		cards = append(cards, p.Hand()...)
		p.ClearHand()
	}
	for _, c := range cards {
		c.ClearChosenColor()
	}
	g.deck.cards = cards
	g.pile.Clear()

	for _, wanted := range pile {
		g.pile.Add(g.takeFromDeck(wanted))
	}
	for i, hand := range hands {
		for _, wanted := range hand {
			g.players[i].AddCard(g.takeFromDeck(wanted))
		}
	}
	g.cycler.Set(current)
	g.lastWildDrawFour = nil
}

// StackDeckTop moves cards equal to the given ones to the top of the deck so
// that they are drawn in the given order.
func (g *Game) StackDeckTop(cards ...*card.Card) {
	taken := make([]*card.Card, 0, len(cards))
	for _, wanted := range cards {
		taken = append(taken, g.takeFromDeck(wanted))
	}
	for i := len(taken) - 1; i >= 0; i-- {
		g.deck.Push(taken[i])
	}
}

// MoveDeckToPile slides every card left in the deck under the top card.
func (g *Game) MoveDeckToPile() {
	top := g.pile.cards[len(g.pile.cards)-1]
	rest := g.pile.cards[:len(g.pile.cards)-1]
	rest = append(rest, g.deck.cards...)
	g.pile.cards = append(rest, top)
	g.deck.cards = g.deck.cards[:0]
}

// DealDeckTo hands every card left in the deck to p.
func (g *Game) DealDeckTo(p *player.Player) {
	for !g.deck.Empty() {
		p.AddCard(g.deck.Pop())
	}
}

func (g *Game) SetClockwise(clockwise bool) {
	if g.cycler.Clockwise() != clockwise {
		g.cycler.Reverse()
	}
}

func (g *Game) takeFromDeck(wanted *card.Card) *card.Card {
	for i, c := range g.deck.cards {
		if c.Equal(wanted) {
			g.deck.cards = append(g.deck.cards[:i], g.deck.cards[i+1:]...)
			if wanted.HasChosenColor() {
				c.SetChosenColor(wanted.ChosenColor())
			}
			return c
		}
	}
	panic(fmt.Sprintf("no %s left in the deck", wanted))
}
