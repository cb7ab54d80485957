package bot

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

// Bot is a computer controlled seat.
type Bot struct {
	*player.Player
	strategy Strategy
}

func New(name string, strategy Strategy) *Bot {
	return &Bot{Player: player.NewAI(name), strategy: strategy}
}

func (b *Bot) Strategy() Strategy {
	return b.strategy
}

// TakeTurn plays one turn for the bot, which must be the current player of g.
// Without a playable card it draws one and plays it when it can, otherwise it
// passes. It returns the card played, nil when the bot passed.
func (b *Bot) TakeTurn(g *game.Game) *card.Card {
	if !g.IsStarted() || g.IsEnded() || g.CurrentPlayer() != b.Player {
		return nil
	}

	var playableCards []*card.Card
	for _, handCard := range b.Hand() {
		if g.Playable(handCard) {
			playableCards = append(playableCards, handCard)
		}
	}

	var cardToPlay *card.Card
	if len(playableCards) > 0 {
		cardToPlay = b.strategy.PickCard(playableCards, g.ExtractState(b.Player))
	} else if drawnCard := g.DrawCard(b.Player); drawnCard != nil && g.Playable(drawnCard) {
		cardToPlay = drawnCard
	}
	if cardToPlay == nil {
		g.AdvanceToNextPlayer()
		return nil
	}

	if cardToPlay.IsWild() {
		cardToPlay.SetChosenColor(b.strategy.PickColor(g.ExtractState(b.Player)))
	}
	if !g.PlayCard(cardToPlay) {
		cardToPlay.ClearChosenColor()
		g.AdvanceToNextPlayer()
		return nil
	}
	if b.HandSize() == 1 {
		g.CallUno(b.Player)
	}
	return cardToPlay
}
