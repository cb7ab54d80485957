package event

import "reflect"

// DummyListener records every payload it receives, in order.
type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) Reset() {
	l.receivedPayloads = l.receivedPayloads[:0]
}

func (l *DummyListener) record(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnGameStarted(payload GameStartedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnGameEnded(payload GameEndedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerTurn(payload PlayerTurnPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerSkipped(payload PlayerSkippedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnDirectionChanged(payload DirectionChangedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerDrewCards(payload PlayerDrewCardsPayload) {
	l.record(payload)
}

func (l *DummyListener) OnDeckReshuffled(payload DeckReshuffledPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerCalledUno(payload PlayerCalledUnoPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerForgotUno(payload PlayerForgotUnoPayload) {
	l.record(payload)
}

func (l *DummyListener) OnColorChanged(payload ColorChangedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnWildDrawFourChallengeSucceeded(payload ChallengeSucceededPayload) {
	l.record(payload)
}

func (l *DummyListener) OnWildDrawFourChallengeFailed(payload ChallengeFailedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.record(payload)
}

// Count returns how many payloads of the same type as sample were recorded.
func (l *DummyListener) Count(sample interface{}) int {
	count := 0
	for _, payload := range l.receivedPayloads {
		if sameType(payload, sample) {
			count++
		}
	}
	return count
}

// Of returns the recorded payloads of the same type as sample.
func (l *DummyListener) Of(sample interface{}) []interface{} {
	var payloads []interface{}
	for _, payload := range l.receivedPayloads {
		if sameType(payload, sample) {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}

func sameType(a, b interface{}) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
