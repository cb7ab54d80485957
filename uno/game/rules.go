package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Rules holds the optional deviations from the engine's default behavior.
type Rules struct {
	// MatchChosenColor lets cards match the color chosen for a wild top card.
	// Off by default: matching uses the top card's printed color, so the
	// color chosen for a wild, including one flipped at the start, only
	// matters for challenges and notifications.
	MatchChosenColor bool
	// EnforceChallenge makes a Wild Draw Four challenge succeed when the
	// challenged player held a card of the color in effect. Off by default,
	// where every challenge fails.
	EnforceChallenge bool
}

func DefaultRules() Rules {
	return Rules{}
}

func (r Rules) Playable(candidateCard *card.Card, lastPlayedCard *card.Card) bool {
	if r.MatchChosenColor {
		return candidateCard.CanPlayOnChosen(lastPlayedCard)
	}
	return candidateCard.CanPlayOn(lastPlayedCard)
}

// Playable applies the default rules.
func Playable(candidateCard *card.Card, lastPlayedCard *card.Card) bool {
	return DefaultRules().Playable(candidateCard, lastPlayedCard)
}
