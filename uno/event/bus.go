package event

import "reflect"

// Bus delivers notifications to its listeners synchronously, in registration order.
type Bus struct {
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) AddListener(listener Listener) {
	if listener == nil {
		return
	}
	b.listeners = append(b.listeners, listener)
}

// RemoveListener drops the first registration of listener. Listeners are
// compared with ==, so register pointers to remove them later: a listener
// whose dynamic type is not comparable, such as a struct holding a slice,
// is never removed.
func (b *Bus) RemoveListener(listener Listener) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}
	for i, l := range b.listeners {
		if l == listener {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *Bus) Len() int {
	return len(b.listeners)
}

func (b *Bus) each(function func(Listener)) {
	// A listener may unregister itself while being notified.
	listeners := b.listeners
	for _, listener := range listeners {
		function(listener)
	}
}

func (b *Bus) EmitGameStarted(payload GameStartedPayload) {
	b.each(func(l Listener) { l.OnGameStarted(payload) })
}

func (b *Bus) EmitGameEnded(payload GameEndedPayload) {
	b.each(func(l Listener) { l.OnGameEnded(payload) })
}

func (b *Bus) EmitPlayerTurn(payload PlayerTurnPayload) {
	b.each(func(l Listener) { l.OnPlayerTurn(payload) })
}

func (b *Bus) EmitPlayerSkipped(payload PlayerSkippedPayload) {
	b.each(func(l Listener) { l.OnPlayerSkipped(payload) })
}

func (b *Bus) EmitDirectionChanged(payload DirectionChangedPayload) {
	b.each(func(l Listener) { l.OnDirectionChanged(payload) })
}

func (b *Bus) EmitPlayerDrewCards(payload PlayerDrewCardsPayload) {
	b.each(func(l Listener) { l.OnPlayerDrewCards(payload) })
}

func (b *Bus) EmitDeckReshuffled(payload DeckReshuffledPayload) {
	b.each(func(l Listener) { l.OnDeckReshuffled(payload) })
}

func (b *Bus) EmitPlayerCalledUno(payload PlayerCalledUnoPayload) {
	b.each(func(l Listener) { l.OnPlayerCalledUno(payload) })
}

func (b *Bus) EmitPlayerForgotUno(payload PlayerForgotUnoPayload) {
	b.each(func(l Listener) { l.OnPlayerForgotUno(payload) })
}

func (b *Bus) EmitColorChanged(payload ColorChangedPayload) {
	b.each(func(l Listener) { l.OnColorChanged(payload) })
}

func (b *Bus) EmitWildDrawFourChallengeSucceeded(payload ChallengeSucceededPayload) {
	b.each(func(l Listener) { l.OnWildDrawFourChallengeSucceeded(payload) })
}

func (b *Bus) EmitWildDrawFourChallengeFailed(payload ChallengeFailedPayload) {
	b.each(func(l Listener) { l.OnWildDrawFourChallengeFailed(payload) })
}

func (b *Bus) EmitCardPlayed(payload CardPlayedPayload) {
	b.each(func(l Listener) { l.OnCardPlayed(payload) })
}
