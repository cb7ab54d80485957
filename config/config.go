package config

import (
	"fmt"
	"io/ioutil"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Players     int    `yaml:"players"`
	Strategy    string `yaml:"strategy"`
	Seed        int64  `yaml:"seed"`
	TargetScore int    `yaml:"target_score"`
	MaxTurns    int    `yaml:"max_turns"`
	MaxRounds   int    `yaml:"max_rounds"`
	Matches     int    `yaml:"matches"`
	Concurrent  int    `yaml:"concurrent"`
	Verbose     bool   `yaml:"verbose"`
	Rules       Rules  `yaml:"rules"`
}

type Rules struct {
	MatchChosenColor bool `yaml:"match_chosen_color"`
	EnforceChallenge bool `yaml:"enforce_challenge"`
}

// Default plays with MatchChosenColor on so that bot matches reach a winner.
// The literal rules of game.DefaultRules stay available through the rules
// section or the match-chosen-color flag.
func Default() Config {
	return Config{
		Players:     4,
		Strategy:    consts.DefaultStrategy,
		TargetScore: consts.WinningScore,
		MaxTurns:    consts.MaxTurnsPerRound,
		MaxRounds:   consts.MaxRoundsPerMatch,
		Matches:     1,
		Concurrent:  consts.DefaultConcurrent,
		Rules:       Rules{MatchChosenColor: true},
	}
}

// Load reads a YAML file over the defaults. An empty path gives the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	log.Infof("config loaded from %s\n", path)
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Players < consts.MinPlayers:
		return fmt.Errorf("players %d: %w", c.Players, consts.ErrorsNotEnoughPlayers)
	case c.Players > consts.MaxPlayers:
		return fmt.Errorf("players %d: %w", c.Players, consts.ErrorsTooManyPlayers)
	case c.TargetScore <= 0, c.MaxTurns <= 0, c.MaxRounds <= 0, c.Matches <= 0, c.Concurrent <= 0:
		return fmt.Errorf("target score, turn and round limits, matches and concurrency must be positive: %w", consts.ErrorsConfigInvalid)
	}
	return nil
}

func (c Config) GameRules() game.Rules {
	return game.Rules{
		MatchChosenColor: c.Rules.MatchChosenColor,
		EnforceChallenge: c.Rules.EnforceChallenge,
	}
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
