package sim

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/uno/bot"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

type RoundResult struct {
	Round  int    `json:"round"`
	Winner string `json:"winner,omitempty"`
	Points int    `json:"points"`
	Turns  int    `json:"turns"`
	Drawn  bool   `json:"drawn"`
}

type Result struct {
	Seed    int64          `json:"seed"`
	Players []string       `json:"players"`
	Scores  map[string]int `json:"scores"`
	Rounds  []RoundResult  `json:"rounds"`
	Winner  string         `json:"winner,omitempty"`
}

// Match plays rounds between bots until one of them reaches the target score.
type Match struct {
	cfg    config.Config
	seed   int64
	rng    *rand.Rand
	bots   []*bot.Bot
	game   *game.Game
	scores map[*bot.Bot]int
}

func NewMatch(cfg config.Config, listeners ...event.Listener) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bots, err := bot.CreateBots(cfg.Players, cfg.Strategy, rng)
	if err != nil {
		return nil, err
	}
	opts := []game.Option{game.WithRand(rng), game.WithRules(cfg.GameRules())}
	for _, listener := range listeners {
		opts = append(opts, game.WithListener(listener))
	}
	g := game.New(opts...)
	for _, b := range bots {
		if err := g.AddPlayer(b.Player); err != nil {
			return nil, err
		}
	}

	return &Match{
		cfg:    cfg,
		seed:   seed,
		rng:    rng,
		bots:   bots,
		game:   g,
		scores: make(map[*bot.Bot]int, len(bots)),
	}, nil
}

func (m *Match) Game() *game.Game {
	return m.game
}

func (m *Match) Bots() []*bot.Bot {
	return m.bots
}

func (m *Match) Score(b *bot.Bot) int {
	return m.scores[b]
}

// Play runs rounds until a bot reaches the target score or the round limit
// is hit, in which case the match has no winner.
func (m *Match) Play() (*Result, error) {
	result := &Result{Seed: m.seed, Scores: make(map[string]int, len(m.bots))}
	for _, b := range m.bots {
		result.Players = append(result.Players, b.Name())
	}

	for round := 1; round <= m.cfg.MaxRounds; round++ {
		roundResult, err := m.PlayRound(round)
		if err != nil {
			return nil, err
		}
		result.Rounds = append(result.Rounds, roundResult)
		if winner := m.leader(); winner != nil {
			result.Winner = winner.Name()
			break
		}
	}
	for _, b := range m.bots {
		result.Scores[b.Name()] = m.scores[b]
	}
	return result, nil
}

func (m *Match) leader() *bot.Bot {
	var leader *bot.Bot
	for _, b := range m.bots {
		if m.scores[b] >= m.cfg.TargetScore && (leader == nil || m.scores[b] > m.scores[leader]) {
			leader = b
		}
	}
	return leader
}

// PlayRound deals a new round and plays it out. The round is drawn when the
// turn limit is reached or when every bot passed in a row with no card left
// to draw.
func (m *Match) PlayRound(round int) (RoundResult, error) {
	var err error
	if m.game.IsStarted() {
		err = m.game.Restart()
	} else {
		err = m.game.Start()
	}
	if err != nil {
		return RoundResult{}, err
	}

	roundResult := RoundResult{Round: round}
	passes := 0
	for !m.game.IsEnded() && roundResult.Turns < m.cfg.MaxTurns {
		roundResult.Turns++
		current := m.bots[m.game.CurrentPlayerIndex()]
		victim := m.bots[indexOf(m.bots, m.game.NextPlayer())]

		played := current.TakeTurn(m.game)
		if played == nil {
			passes++
			if passes >= len(m.bots) && m.exhausted() {
				break
			}
			continue
		}
		passes = 0
		if played.Value() == card.WildDrawFour && !m.game.IsEnded() && m.cfg.Rules.EnforceChallenge && m.rng.Intn(2) == 0 {
			m.game.ChallengeWildDrawFour(victim.Player, current.Player)
		}
	}

	winner := m.game.Winner()
	if winner == nil {
		roundResult.Drawn = true
		return roundResult, nil
	}
	roundResult.Winner = winner.Name()
	roundResult.Points = m.game.WinnerScore()
	m.scores[m.bots[indexOf(m.bots, winner)]] += roundResult.Points
	return roundResult, nil
}

func (m *Match) exhausted() bool {
	return m.game.DeckSize() == 0 && m.game.DiscardPileSize() < 2
}

func indexOf(bots []*bot.Bot, p *player.Player) int {
	for i, b := range bots {
		if b.Player == p {
			return i
		}
	}
	return -1
}
