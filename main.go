package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/sim"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	defaults := config.Default()
	configPath := flag.String("config", "", "YAML config file")
	players := flag.Int("players", defaults.Players, "bots at the table")
	strategy := flag.String("strategy", defaults.Strategy, "bot strategy: naive or good")
	seed := flag.Int64("seed", defaults.Seed, "random seed, 0 for a time based one")
	target := flag.Int("target", defaults.TargetScore, "score that wins a match")
	maxTurns := flag.Int("max-turns", defaults.MaxTurns, "turns before a round is declared drawn")
	maxRounds := flag.Int("max-rounds", defaults.MaxRounds, "rounds before a match is abandoned")
	matches := flag.Int("matches", defaults.Matches, "matches to play")
	concurrent := flag.Int("concurrent", defaults.Concurrent, "matches played at the same time")
	verbose := flag.Bool("verbose", defaults.Verbose, "narrate every move, forces one match at a time")
	delay := flag.Duration("delay", 0, "pause after each narrated line")
	matchChosenColor := flag.Bool("match-chosen-color", defaults.Rules.MatchChosenColor, "cards may match the color chosen for a wild")
	enforceChallenge := flag.Bool("enforce-challenge", false, "Wild Draw Four challenges check the challenged hand")
	report := flag.Bool("report", false, "print a JSON report of every match")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = *players
		case "strategy":
			cfg.Strategy = *strategy
		case "seed":
			cfg.Seed = *seed
		case "target":
			cfg.TargetScore = *target
		case "max-turns":
			cfg.MaxTurns = *maxTurns
		case "max-rounds":
			cfg.MaxRounds = *maxRounds
		case "matches":
			cfg.Matches = *matches
		case "concurrent":
			cfg.Concurrent = *concurrent
		case "verbose":
			cfg.Verbose = *verbose
		case "match-chosen-color":
			cfg.Rules.MatchChosenColor = *matchChosenColor
		case "enforce-challenge":
			cfg.Rules.EnforceChallenge = *enforceChallenge
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	printer := ui.NewPrinter(color.Stdout, *delay)
	var listeners []event.Listener
	if cfg.Verbose {
		cfg.Concurrent = 1
		listeners = append(listeners, ui.NewConsole(printer))
	}

	start := time.Now()
	sessions, err := sim.RunAll(context.Background(), cfg, listeners...)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		printResult(printer, session.Result)
		if *report {
			printer.Println(string(session.Report()))
		}
	}
	log.Infof("%d match(es) played in %s\n", len(sessions), time.Since(start))
	return nil
}

func printResult(printer *ui.Printer, result *sim.Result) {
	totals := make(map[string]int, len(result.Players))
	for _, round := range result.Rounds {
		if round.Drawn {
			printer.Print(msg.Message.RoundDrawn(round.Round))
			continue
		}
		totals[round.Winner] += round.Points
		printer.Print(msg.Message.RoundScored(round.Round, round.Winner, round.Points, totals[round.Winner]))
	}
	if result.Winner != "" {
		printer.Print(msg.Message.MatchWon(result.Winner, result.Scores[result.Winner]))
	}
}
