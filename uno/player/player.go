package player

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
)

// Player owns a hand of cards and the state of their UNO call.
type Player struct {
	name      string
	hand      *Hand
	ai        bool
	calledUno bool
}

func New(name string) *Player {
	return &Player{name: name, hand: NewHand()}
}

func NewAI(name string) *Player {
	p := New(name)
	p.ai = true
	return p
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) SetName(name string) {
	p.name = name
}

func (p *Player) IsAI() bool {
	return p.ai
}

func (p *Player) SetAI(ai bool) {
	p.ai = ai
}

// AddCard puts c in the hand. Holding more than one card afterwards cancels a
// previous UNO call.
func (p *Player) AddCard(c *card.Card) {
	p.hand.AddCards(c)
	if p.hand.Size() > 1 {
		p.calledUno = false
	}
}

func (p *Player) RemoveCard(c *card.Card) *card.Card {
	return p.hand.RemoveCard(c)
}

func (p *Player) HasCard(c *card.Card) bool {
	return p.hand.Contains(c)
}

func (p *Player) Hand() []*card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) ClearHand() {
	p.hand.Clear()
	p.calledUno = false
}

// HasPlayableCard, PlayableCard and PlayableCards match on the default rules,
// like Hand.PlayableCards.
func (p *Player) HasPlayableCard(top *card.Card) bool {
	return p.PlayableCard(top) != nil
}

func (p *Player) PlayableCard(top *card.Card) *card.Card {
	if playable := p.hand.PlayableCards(top); len(playable) > 0 {
		return playable[0]
	}
	return nil
}

func (p *Player) PlayableCards(top *card.Card) []*card.Card {
	return p.hand.PlayableCards(top)
}

func (p *Player) HasWon() bool {
	return p.hand.Empty()
}

func (p *Player) CallUno() {
	p.calledUno = true
}

func (p *Player) CalledUno() bool {
	return p.calledUno
}

func (p *Player) ResetUnoCall() {
	p.calledUno = false
}

func (p *Player) CalculateHandScore() int {
	return p.hand.Score()
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d card(s))", p.name, p.hand.Size())
}
