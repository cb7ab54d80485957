package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/player"
)

// Game is a single UNO round. It is not safe for concurrent use: one
// goroutine drives it and listeners are called on that goroutine.
type Game struct {
	players []*player.Player
	deck    *Deck
	pile    *Pile
	cycler  *Cycler
	rng     *rand.Rand
	bus     *event.Bus
	rules   Rules

	started bool
	ended   bool
	winner  *player.Player

	lastWildDrawFour *wildDrawFourPlay
}

// wildDrawFourPlay remembers who played the last Wild Draw Four and whether
// they held a card of the color that was in effect at the time.
type wildDrawFourPlay struct {
	player       *player.Player
	heldMatching bool
}

type Option func(*Game)

func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func WithRules(rules Rules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

func WithListener(listener event.Listener) Option {
	return func(g *Game) {
		g.bus.AddListener(listener)
	}
}

func New(opts ...Option) *Game {
	g := &Game{
		players: make([]*player.Player, 0, consts.MinPlayers),
		deck:    NewEmptyDeck(),
		pile:    NewPile(),
		bus:     event.NewBus(),
		rules:   DefaultRules(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

func (g *Game) AddListener(listener event.Listener) {
	g.bus.AddListener(listener)
}

func (g *Game) RemoveListener(listener event.Listener) {
	g.bus.RemoveListener(listener)
}

func (g *Game) AddPlayer(p *player.Player) error {
	if g.started {
		return consts.ErrorsGameStarted
	}
	if p == nil {
		return consts.ErrorsPlayerInvalid
	}
	g.players = append(g.players, p)
	return nil
}

func (g *Game) Start() error {
	if g.started {
		return consts.ErrorsGameStarted
	}
	return g.init()
}

// Restart clears the round state and deals a fresh one to the same players.
func (g *Game) Restart() error {
	g.started = false
	g.ended = false
	return g.Start()
}

func (g *Game) init() error {
	if len(g.players) < consts.MinPlayers {
		return consts.ErrorsNotEnoughPlayers
	}
	if len(g.players) > consts.MaxPlayers {
		return consts.ErrorsTooManyPlayers
	}

	g.deck.Reset()
	g.deck.Shuffle(g.rng)
	g.pile.Clear()
	g.cycler = NewCycler(len(g.players))

	topCard := g.deck.Pop()
	if topCard.IsWild() {
		colors := color.Playable()
		topCard.SetChosenColor(colors[g.rng.Intn(len(colors))])
	}
	g.pile.Add(topCard)

	for _, p := range g.players {
		p.ClearHand()
		for i := 0; i < consts.HandSize; i++ {
			p.AddCard(g.deck.Pop())
		}
	}

	g.cycler.Set(g.rng.Intn(len(g.players)))
	g.started = true
	g.ended = false
	g.winner = nil
	g.lastWildDrawFour = nil

	g.bus.EmitGameStarted(event.GameStartedPayload{TopCard: topCard})
	return nil
}

// PlayCard discards c from the current player's hand. It returns false, and
// changes nothing, when the game is not running, c cannot be played on the
// top card or the current player does not hold c.
func (g *Game) PlayCard(c *card.Card) bool {
	if !g.started || g.ended || c == nil {
		return false
	}
	currentPlayer := g.CurrentPlayer()
	topCard := g.pile.Top()
	if !g.rules.Playable(c, topCard) {
		return false
	}
	playedCard := currentPlayer.RemoveCard(c)
	if playedCard == nil {
		return false
	}
	if playedCard != c && c.HasChosenColor() {
		playedCard.SetChosenColor(c.ChosenColor())
	}

	g.lastWildDrawFour = nil
	if playedCard.Value() == card.WildDrawFour {
		g.lastWildDrawFour = &wildDrawFourPlay{
			player:       currentPlayer,
			heldMatching: holdsColor(currentPlayer, topCard.ChosenColor()),
		}
	}

	g.pile.Add(playedCard)
	g.bus.EmitCardPlayed(event.CardPlayedPayload{Player: currentPlayer, Card: playedCard})

	g.performCardActions(playedCard)

	if currentPlayer.HandSize() == 0 {
		g.ended = true
		g.winner = currentPlayer
		g.bus.EmitGameEnded(event.GameEndedPayload{Winner: currentPlayer})
		return true
	}
	if currentPlayer.HandSize() == 1 && !currentPlayer.CalledUno() {
		g.bus.EmitPlayerForgotUno(event.PlayerForgotUnoPayload{Player: currentPlayer})
	}

	g.AdvanceToNextPlayer()
	return true
}

func (g *Game) performCardActions(playedCard *card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.SkipTurnAction:
			g.AdvanceToNextPlayer()
			g.bus.EmitPlayerSkipped(event.PlayerSkippedPayload{Player: g.CurrentPlayer()})
		case action.ReverseTurnsAction:
			clockwise := g.cycler.Reverse()
			g.bus.EmitDirectionChanged(event.DirectionChangedPayload{Clockwise: clockwise})
		case action.DrawCardsAction:
			// The victim takes the turn and draws; the regular advance that
			// follows the play moves past them.
			g.AdvanceToNextPlayer()
			victim := g.CurrentPlayer()
			drawn := g.drawCards(victim, cardAction.Amount())
			g.bus.EmitPlayerDrewCards(event.PlayerDrewCardsPayload{Player: victim, Count: drawn})
		case action.PickColorAction:
			g.bus.EmitColorChanged(event.ColorChangedPayload{Color: playedCard.ChosenColor()})
		}
	}
}

func (g *Game) AdvanceToNextPlayer() {
	if !g.started {
		return
	}
	g.cycler.Next()
	g.bus.EmitPlayerTurn(event.PlayerTurnPayload{Player: g.CurrentPlayer()})
}

// DrawCard gives p the top card of the deck, reshuffling the discard pile
// into the deck when it runs out. It returns nil when no card is left.
func (g *Game) DrawCard(p *player.Player) *card.Card {
	drawnCard := g.draw(p)
	if drawnCard != nil {
		g.bus.EmitPlayerDrewCards(event.PlayerDrewCardsPayload{Player: p, Count: 1})
	}
	return drawnCard
}

func (g *Game) drawCards(p *player.Player, amount int) int {
	drawn := 0
	for i := 0; i < amount; i++ {
		if g.draw(p) == nil {
			break
		}
		drawn++
	}
	return drawn
}

func (g *Game) draw(p *player.Player) *card.Card {
	if !g.started || g.indexOf(p) < 0 {
		return nil
	}
	if g.deck.Empty() {
		g.ReshuffleDeck()
	}
	drawnCard := g.deck.Pop()
	if drawnCard == nil {
		return nil
	}
	p.AddCard(drawnCard)
	return drawnCard
}

// ReshuffleDeck moves every discarded card except the top one back into the
// deck and shuffles it. Nothing happens while the discard pile holds no
// card under its top one: no shuffle and no DeckReshuffled notification.
func (g *Game) ReshuffleDeck() {
	if g.pile.Len() < 2 {
		return
	}
	g.deck.Push(g.pile.TakeAllButTop()...)
	g.deck.Shuffle(g.rng)
	g.bus.EmitDeckReshuffled(event.DeckReshuffledPayload{})
}

// CallUno records p's UNO call. It is ignored unless p holds exactly one card.
func (g *Game) CallUno(p *player.Player) {
	if p == nil || p.HandSize() != 1 {
		return
	}
	p.CallUno()
	g.bus.EmitPlayerCalledUno(event.PlayerCalledUnoPayload{Player: p})
}

func (g *Game) CallUnoCurrent() {
	if !g.started {
		return
	}
	g.CallUno(g.CurrentPlayer())
}

// ChallengeWildDrawFour lets challenger dispute the Wild Draw Four on top of
// the discard pile. It returns false when there is nothing to challenge or
// the challenge fails, in which case challenger draws 6. A successful
// challenge makes challenged draw 4.
func (g *Game) ChallengeWildDrawFour(challenger, challenged *player.Player) bool {
	if !g.started || g.ended || g.pile.Len() < 2 {
		return false
	}
	if g.pile.Top().Value() != card.WildDrawFour {
		return false
	}

	challengeSuccessful := false
	if g.rules.EnforceChallenge && g.lastWildDrawFour != nil && g.lastWildDrawFour.player == challenged {
		challengeSuccessful = g.lastWildDrawFour.heldMatching
	}

	if challengeSuccessful {
		drawn := g.drawCards(challenged, 4)
		g.bus.EmitPlayerDrewCards(event.PlayerDrewCardsPayload{Player: challenged, Count: drawn})
		g.bus.EmitWildDrawFourChallengeSucceeded(event.ChallengeSucceededPayload{Challenger: challenger, Challenged: challenged})
	} else {
		drawn := g.drawCards(challenger, 6)
		g.bus.EmitPlayerDrewCards(event.PlayerDrewCardsPayload{Player: challenger, Count: drawn})
		g.bus.EmitWildDrawFourChallengeFailed(event.ChallengeFailedPayload{Challenger: challenger, Challenged: challenged})
	}
	g.lastWildDrawFour = nil
	return challengeSuccessful
}

func holdsColor(p *player.Player, c color.Color) bool {
	for _, cardInHand := range p.Hand() {
		if !cardInHand.IsWild() && cardInHand.Color() == c {
			return true
		}
	}
	return false
}

func (g *Game) indexOf(p *player.Player) int {
	if p == nil {
		return -1
	}
	for i, candidate := range g.players {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (g *Game) Players() []*player.Player {
	players := make([]*player.Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) CurrentPlayer() *player.Player {
	if g.cycler == nil {
		return nil
	}
	return g.players[g.cycler.Current()]
}

func (g *Game) CurrentPlayerIndex() int {
	if g.cycler == nil {
		return 0
	}
	return g.cycler.Current()
}

// NextPlayer is the player who would take the turn after the current one.
func (g *Game) NextPlayer() *player.Player {
	if g.cycler == nil {
		return nil
	}
	return g.players[g.cycler.Peek()]
}

func (g *Game) IsClockwise() bool {
	if g.cycler == nil {
		return true
	}
	return g.cycler.Clockwise()
}

func (g *Game) TopCard() *card.Card {
	return g.pile.Top()
}

func (g *Game) DeckSize() int {
	return g.deck.Len()
}

func (g *Game) DiscardPileSize() int {
	return g.pile.Len()
}

func (g *Game) IsStarted() bool {
	return g.started
}

func (g *Game) IsEnded() bool {
	return g.ended
}

func (g *Game) Winner() *player.Player {
	return g.winner
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Playable(c *card.Card) bool {
	return g.rules.Playable(c, g.pile.Top())
}

// WinnerScore is what the winner earns for the round: the value of every card
// left in the other players' hands.
func (g *Game) WinnerScore() int {
	if g.winner == nil {
		return 0
	}
	score := 0
	for _, p := range g.players {
		if p != g.winner {
			score += p.CalculateHandScore()
		}
	}
	return score
}

func (g *Game) ExtractState(p *player.Player) State {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make(map[string]int, len(g.players))
	for _, candidate := range g.players {
		playerSequence = append(playerSequence, candidate.Name())
		playerHandCounts[candidate.Name()] = candidate.HandSize()
	}

	state := State{
		LastPlayedCard:   g.pile.Top(),
		PlayedCards:      g.pile.Cards(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
		Clockwise:        g.IsClockwise(),
		DeckSize:         g.deck.Len(),
		Rules:            g.rules,
	}
	if p != nil {
		state.CurrentPlayerHand = p.Hand()
	}
	if current := g.CurrentPlayer(); current != nil {
		state.CurrentPlayer = current.Name()
	}
	return state
}
