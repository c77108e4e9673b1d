// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command tally runs a single election from a JSON scenario file against
// a required TOML configuration profile, and prints the resulting
// VoteResult as JSON. It exists for smoke-testing scenarios by hand; it
// is not the library's primary entry point.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/log"
	tally "github.com/luxfi/tally"
	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/config"
)

// scenario is the on-disk shape of a JSON scenario file: one ballot per
// entry, each a list of ranks, each rank a list of candidate ids.
type scenario struct {
	Candidates []ballot.CandidateID `json:"candidates"`
	Eligible   int                  `json:"eligible"`
	TieBreaker []ballot.CandidateID `json:"tie_breaker"`
	Ballots    [][][]ballot.CandidateID `json:"ballots"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a JSON scenario file")
	configPath := flag.String("config", "", "path to a TOML configuration profile")
	flag.Parse()

	if *scenarioPath == "" || *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: tally -scenario=FILE.json -config=FILE.toml")
		os.Exit(2)
	}

	logger := log.NewNoOpLogger()

	var cfg config.Config
	if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
		logger.Error("failed to load config profile", "path", *configPath, "error", err)
		os.Exit(1)
	}

	scenarioBytes, err := os.ReadFile(*scenarioPath)
	if err != nil {
		logger.Error("failed to read scenario file", "path", *scenarioPath, "error", err)
		os.Exit(1)
	}
	var sc scenario
	if err := json.Unmarshal(scenarioBytes, &sc); err != nil {
		logger.Error("failed to parse scenario file", "path", *scenarioPath, "error", err)
		os.Exit(1)
	}

	enc := ballot.NewEncoder(len(sc.Ballots))
	for _, b := range sc.Ballots {
		ranks := make([]ballot.Rank, 0, len(b))
		for _, rank := range b {
			ranks = append(ranks, ballot.Rank(rank))
		}
		if err := enc.AddBallot(ranks...); err != nil {
			logger.Error("invalid ballot in scenario file", "error", err)
			os.Exit(1)
		}
	}
	buf, err := enc.Finish()
	if err != nil {
		logger.Error("failed to finalize ballot buffer", "error", err)
		os.Exit(1)
	}

	t, err := tally.New(logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("failed to initialize tally", "error", err)
		os.Exit(1)
	}

	res := t.Run(cfg, buf, sc.Candidates, sc.Eligible, sc.TieBreaker)

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
