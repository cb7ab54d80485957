package ui

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// Console narrates a game on a Printer.
type Console struct {
	printer *Printer
}

func NewConsole(printer *Printer) *Console {
	return &Console{printer: printer}
}

func (c *Console) OnGameStarted(payload event.GameStartedPayload) {
	c.printer.Print(msg.Message.Welcome())
	if payload.TopCard != nil {
		c.printer.Print(msg.Message.FirstCardPlayed(payload.TopCard))
	}
}

func (c *Console) OnGameEnded(payload event.GameEndedPayload) {
	c.printer.Print(msg.Message.WinnerFound(payload.Winner.Name()))
}

func (c *Console) OnPlayerTurn(payload event.PlayerTurnPayload) {
	c.printer.Print(msg.Message.PlayerTurnStarted(payload.Player.Name()))
	c.printer.Print(msg.Message.PlayerHand(payload.Player.Name(), payload.Player.Hand()))
}

func (c *Console) OnPlayerSkipped(payload event.PlayerSkippedPayload) {
	c.printer.Print(msg.Message.PlayerTurnSkipped(payload.Player.Name()))
}

func (c *Console) OnDirectionChanged(payload event.DirectionChangedPayload) {
	c.printer.Print(msg.Message.TurnOrderReversed(payload.Clockwise))
}

func (c *Console) OnPlayerDrewCards(payload event.PlayerDrewCardsPayload) {
	c.printer.Print(msg.Message.PlayerDrewCards(payload.Player.Name(), payload.Count))
}

func (c *Console) OnDeckReshuffled(event.DeckReshuffledPayload) {
	c.printer.Print(msg.Message.DeckReshuffled())
}

func (c *Console) OnPlayerCalledUno(payload event.PlayerCalledUnoPayload) {
	c.printer.Print(msg.Message.PlayerCalledUno(payload.Player.Name()))
}

func (c *Console) OnPlayerForgotUno(payload event.PlayerForgotUnoPayload) {
	c.printer.Print(msg.Message.PlayerForgotUno(payload.Player.Name()))
}

func (c *Console) OnColorChanged(payload event.ColorChangedPayload) {
	c.printer.Print(msg.Message.ColorChanged(payload.Color))
}

func (c *Console) OnWildDrawFourChallengeSucceeded(payload event.ChallengeSucceededPayload) {
	c.printer.Print(msg.Message.ChallengeSucceeded(payload.Challenger.Name(), payload.Challenged.Name()))
}

func (c *Console) OnWildDrawFourChallengeFailed(payload event.ChallengeFailedPayload) {
	c.printer.Print(msg.Message.ChallengeFailed(payload.Challenger.Name(), payload.Challenged.Name()))
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	c.printer.Print(msg.Message.PlayerPlayedCard(payload.Player.Name(), payload.Card))
}
