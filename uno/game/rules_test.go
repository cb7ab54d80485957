package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  *card.Card
		lastPlayedCard *card.Card
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.New(color.Wild, card.Wild),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.New(color.Wild, card.WildDrawFour),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.New(color.Blue, card.Five),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.New(color.Red, card.Seven),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.New(color.Red, card.Five),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: false,
		},
		{
			description:    "reverse_cards",
			candidateCard:  card.New(color.Red, card.Reverse),
			lastPlayedCard: card.New(color.Blue, card.Reverse),
			expectedResult: true,
		},
		{
			description:    "skip_cards",
			candidateCard:  card.New(color.Red, card.Skip),
			lastPlayedCard: card.New(color.Blue, card.Skip),
			expectedResult: true,
		},
		{
			description:    "draw_two_cards",
			candidateCard:  card.New(color.Red, card.DrawTwo),
			lastPlayedCard: card.New(color.Blue, card.DrawTwo),
			expectedResult: true,
		},
		{
			description:    "action_cards_with_same_color",
			candidateCard:  card.New(color.Blue, card.Reverse),
			lastPlayedCard: card.New(color.Blue, card.DrawTwo),
			expectedResult: true,
		},
		{
			description:    "action_cards_with_different_color",
			candidateCard:  card.New(color.Red, card.Reverse),
			lastPlayedCard: card.New(color.Blue, card.DrawTwo),
			expectedResult: false,
		},
		{
			description:    "number_card_then_action_card_with_same_color",
			candidateCard:  card.New(color.Blue, card.Reverse),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: true,
		},
		{
			description:    "number_card_then_action_card_with_different_color",
			candidateCard:  card.New(color.Red, card.Reverse),
			lastPlayedCard: card.New(color.Blue, card.Seven),
			expectedResult: false,
		},
		{
			description:    "action_card_then_number_card_with_same_color",
			candidateCard:  card.New(color.Blue, card.Seven),
			lastPlayedCard: card.New(color.Blue, card.Reverse),
			expectedResult: true,
		},
		{
			description:    "action_card_then_number_card_with_different_color",
			candidateCard:  card.New(color.Blue, card.Seven),
			lastPlayedCard: card.New(color.Red, card.Reverse),
			expectedResult: false,
		},
		{
			description:    "colored_wild_card_matches_its_printed_color_only",
			candidateCard:  card.New(color.Blue, card.Seven),
			lastPlayedCard: chosen(card.Wild, color.Blue),
			expectedResult: false,
		},
		{
			description:    "wild_card_on_colored_wild_card",
			candidateCard:  card.New(color.Wild, card.Wild),
			lastPlayedCard: chosen(card.WildDrawFour, color.Blue),
			expectedResult: true,
		},
		{
			description:    "nothing_is_playable_without_a_top_card",
			candidateCard:  card.New(color.Blue, card.Seven),
			lastPlayedCard: nil,
			expectedResult: false,
		},
		{
			description:    "colored_wild_card_then_card_with_different_color",
			candidateCard:  card.New(color.Red, card.Seven),
			lastPlayedCard: chosen(card.Wild, color.Blue),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestRulesMatchChosenColor(t *testing.T) {
	rules := game.Rules{MatchChosenColor: true}

	t.Run("card_with_the_chosen_color", func(t *testing.T) {
		require.True(t, rules.Playable(card.New(color.Blue, card.Seven), chosen(card.Wild, color.Blue)))
	})

	t.Run("card_with_another_color", func(t *testing.T) {
		require.False(t, rules.Playable(card.New(color.Red, card.Seven), chosen(card.Wild, color.Blue)))
	})

	t.Run("regular_matching_still_applies", func(t *testing.T) {
		require.True(t, rules.Playable(card.New(color.Red, card.Seven), card.New(color.Blue, card.Seven)))
		require.False(t, rules.Playable(card.New(color.Red, card.Five), card.New(color.Blue, card.Seven)))
	})
}

func TestDefaultRules(t *testing.T) {
	require.Equal(t, game.Rules{}, game.DefaultRules())
}

func chosen(value card.Value, chosenColor color.Color) *card.Card {
	c := card.New(color.Wild, value)
	c.SetChosenColor(chosenColor)
	return c
}
