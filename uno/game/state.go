package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is a read-only snapshot of a game seen from one player's seat.
type State struct {
	LastPlayedCard    *card.Card
	PlayedCards       []*card.Card
	CurrentPlayerHand []*card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	CurrentPlayer     string
	Clockwise         bool
	DeckSize          int
	Rules             Rules
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	direction := "clockwise"
	if !s.Clockwise {
		direction = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", direction, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
