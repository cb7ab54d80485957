package event

// Listener receives every notification a game emits. Embed NopListener to
// implement only the callbacks you care about.
type Listener interface {
	OnGameStarted(GameStartedPayload)
	OnGameEnded(GameEndedPayload)
	OnPlayerTurn(PlayerTurnPayload)
	OnPlayerSkipped(PlayerSkippedPayload)
	OnDirectionChanged(DirectionChangedPayload)
	OnPlayerDrewCards(PlayerDrewCardsPayload)
	OnDeckReshuffled(DeckReshuffledPayload)
	OnPlayerCalledUno(PlayerCalledUnoPayload)
	OnPlayerForgotUno(PlayerForgotUnoPayload)
	OnColorChanged(ColorChangedPayload)
	OnWildDrawFourChallengeSucceeded(ChallengeSucceededPayload)
	OnWildDrawFourChallengeFailed(ChallengeFailedPayload)
	OnCardPlayed(CardPlayedPayload)
}

type NopListener struct{}

func (NopListener) OnGameStarted(GameStartedPayload)                           {}
func (NopListener) OnGameEnded(GameEndedPayload)                               {}
func (NopListener) OnPlayerTurn(PlayerTurnPayload)                             {}
func (NopListener) OnPlayerSkipped(PlayerSkippedPayload)                       {}
func (NopListener) OnDirectionChanged(DirectionChangedPayload)                 {}
func (NopListener) OnPlayerDrewCards(PlayerDrewCardsPayload)                   {}
func (NopListener) OnDeckReshuffled(DeckReshuffledPayload)                     {}
func (NopListener) OnPlayerCalledUno(PlayerCalledUnoPayload)                   {}
func (NopListener) OnPlayerForgotUno(PlayerForgotUnoPayload)                   {}
func (NopListener) OnColorChanged(ColorChangedPayload)                         {}
func (NopListener) OnWildDrawFourChallengeSucceeded(ChallengeSucceededPayload) {}
func (NopListener) OnWildDrawFourChallengeFailed(ChallengeFailedPayload)       {}
func (NopListener) OnCardPlayed(CardPlayedPayload)                             {}
