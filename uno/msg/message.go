package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) FirstCardPlayed(card *card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerHand(playerName string, hand []*card.Card) string {
	return Sprintfln("%s holds %s", playerName, Cards(hand))
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card *card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, count int) string {
	switch count {
	case 0:
		return Sprintfln("%s could not draw, the deck is empty!", playerName)
	case 1:
		return Sprintfln("%s drew a card!", playerName)
	default:
		return Sprintfln("%s drew %s!", playerName, Plural(count, "card"))
	}
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(clockwise bool) string {
	if clockwise {
		return Sprintln("Turn order has been reversed, play goes clockwise!")
	}
	return Sprintln("Turn order has been reversed, play goes counter-clockwise!")
}

func (m MessageWriter) DeckReshuffled() string {
	return Sprintln("The discard pile was shuffled back into the deck!")
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return Sprintfln("%s called UNO!", playerName)
}

func (m MessageWriter) PlayerForgotUno(playerName string) string {
	return Sprintfln("%s has one card left and forgot to call UNO!", playerName)
}

func (m MessageWriter) ColorChanged(newColor color.Color) string {
	return Sprintfln("Color is now %s!", newColor.Paint(newColor.Name()))
}

func (m MessageWriter) ChallengeSucceeded(challengerName string, challengedName string) string {
	return Sprintfln("%s challenged %s's Wild Draw Four and won!", challengerName, challengedName)
}

func (m MessageWriter) ChallengeFailed(challengerName string, challengedName string) string {
	return Sprintfln("%s challenged %s's Wild Draw Four and lost!", challengerName, challengedName)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) RoundScored(round int, playerName string, points int, total int) string {
	return Sprintfln("Round %d: %s scores %s (%d total)", round, playerName, Plural(points, "point"), total)
}

func (m MessageWriter) RoundDrawn(round int) string {
	return Sprintfln("Round %d ended without a winner", round)
}

func (m MessageWriter) MatchWon(playerName string, score int) string {
	return Sprintfln("%s wins the match with %d points!", playerName, score)
}
