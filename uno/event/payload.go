package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/player"
)

// GameStartedPayload carries the card flipped onto the discard pile.
type GameStartedPayload struct {
	TopCard *card.Card
}

type GameEndedPayload struct {
	Winner *player.Player
}

type PlayerTurnPayload struct {
	Player *player.Player
}

type PlayerSkippedPayload struct {
	Player *player.Player
}

type DirectionChangedPayload struct {
	Clockwise bool
}

type PlayerDrewCardsPayload struct {
	Player *player.Player
	Count  int
}

type DeckReshuffledPayload struct{}

type PlayerCalledUnoPayload struct {
	Player *player.Player
}

type PlayerForgotUnoPayload struct {
	Player *player.Player
}

type ColorChangedPayload struct {
	Color color.Color
}

type ChallengeSucceededPayload struct {
	Challenger *player.Player
	Challenged *player.Player
}

type ChallengeFailedPayload struct {
	Challenger *player.Player
	Challenged *player.Player
}

type CardPlayedPayload struct {
	Player *player.Player
	Card   *card.Card
}
