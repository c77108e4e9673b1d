// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tally is the dispatcher entry point: it runs the shared gates
// (quorum, blank limit, mention filter) and routes to the configured
// voting method's engine.
package tally

import (
	"time"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/config"
	"github.com/luxfi/tally/engine/majority"
	"github.com/luxfi/tally/engine/rankedpairs"
	"github.com/luxfi/tally/engine/stv"
	"github.com/luxfi/tally/engine/yesno"
	"github.com/luxfi/tally/internal/telemetry"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// Tally runs elections against a shared logger and metrics registry.
type Tally struct {
	log     log.Logger
	metrics *telemetry.Metrics
}

// New builds a Tally. A nil logger defaults to a no-op logger; a nil
// registerer disables metrics registration.
func New(logger log.Logger, registerer prometheus.Registerer) (*Tally, error) {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	m, err := telemetry.New(registerer)
	if err != nil {
		return nil, err
	}
	return &Tally{log: logger, metrics: m}, nil
}

// Run tabulates a single election. candidates is the full candidate
// roster participating (ignored entirely for Yes/No and Yes/No/Blank;
// RunMapped is where the two-candidate count is checked). tieBreaker is the pre-declared tie-break order; a
// nil or empty slice means no tie-breaker is available, and any tie
// that needs one surfaces as StatusTieBreakerNeeded instead.
func (t *Tally) Run(cfg config.Config, buf *ballot.Buffer, candidates []ballot.CandidateID, eligible int, tieBreaker []ballot.CandidateID) *result.VoteResult {
	start := time.Now()
	res := t.run(cfg, buf, candidates, eligible, tieBreaker)
	t.metrics.ObserveRun(string(cfg.Method), string(res.Status), time.Since(start).Seconds())
	t.log.Debug("tally run complete",
		"method", cfg.Method,
		"status", res.Status,
		"winners", len(res.Winners),
	)
	return res
}

func (t *Tally) run(cfg config.Config, buf *ballot.Buffer, candidates []ballot.CandidateID, eligible int, tieBreaker []ballot.CandidateID) *result.VoteResult {
	submitted := buf.Len()
	blank := 0
	for i := 0; i < submitted; i++ {
		if buf.IsBlank(i) {
			blank++
		}
	}
	counts := result.Counts{Submitted: submitted, Blank: blank, Eligible: eligible}
	cfgCounts := config.Counts{Submitted: submitted, Blank: blank, Eligible: eligible}

	if !config.PassesQuorum(cfg.Quorum, cfgCounts) {
		t.log.Info("election failed quorum gate", "submitted", submitted, "eligible", eligible)
		return &result.VoteResult{Status: result.StatusNoQuorum, Counts: counts}
	}

	if cfg.Method != config.MethodYesNo && cfg.Method != config.MethodYesNoBlank {
		if cfg.BlankLimit == nil || !config.PassesBlankLimit(*cfg.BlankLimit, cfgCounts) {
			t.log.Info("election failed blank-limit gate", "blank", blank, "submitted", submitted)
			return &result.VoteResult{Status: result.StatusTooManyBlanks, Counts: counts}
		}
	}

	var tb *tiebreak.Breaker
	if len(tieBreaker) > 0 {
		tb = tiebreak.New(tieBreaker)
	}

	var res *result.VoteResult
	switch cfg.Method {
	case config.MethodYesNo, config.MethodYesNoBlank:
		if cfg.Majority == nil {
			res = &result.VoteResult{Status: result.StatusMajorityEmpty}
			break
		}
		res = yesno.Run(buf, *cfg.Majority, eligible)

	case config.MethodThresholdMajority:
		res = t.runMentionGated(cfg, buf, candidates, 1, func(included []ballot.CandidateID, mentions map[ballot.CandidateID]uint32) *result.VoteResult {
			return majority.Run(cfg.MaxChoices.NumChosen, included, mentions, tb)
		})

	case config.MethodRankedPairs:
		res = t.runMentionGated(cfg, buf, candidates, 2, func(included []ballot.CandidateID, mentions map[ballot.CandidateID]uint32) *result.VoteResult {
			r := rankedpairs.Run(cfg.MaxChoices.NumChosen, included, mentions, buf, tb)
			if r.Status == result.StatusSuccess {
				r.Mentions = &result.MentionData{Mentions: mentions}
			}
			return r
		})

	case config.MethodSTV:
		mentions := ballot.CandidateMentions(buf)
		total := uint32(0)
		for _, c := range candidates {
			total += mentions[c]
		}
		if total == 0 {
			res = &result.VoteResult{Status: result.StatusMajorityEmpty}
			break
		}
		res = stv.Run(cfg.MaxChoices.NumChosen, candidates, buf, tb)

	default:
		res = &result.VoteResult{Status: result.StatusMajorityEmpty}
	}

	res.Counts = counts
	return res
}

// runMentionGated applies the dispatcher's configured mention filter,
// bails out with StatusMajorityEmpty if fewer than minIncluded candidates
// survive, and otherwise delegates to the engine.
func (t *Tally) runMentionGated(cfg config.Config, buf *ballot.Buffer, candidates []ballot.CandidateID, minIncluded int, engine func([]ballot.CandidateID, map[ballot.CandidateID]uint32) *result.VoteResult) *result.VoteResult {
	if cfg.MentionThreshold == nil || cfg.MaxChoices == nil {
		return &result.VoteResult{Status: result.StatusMajorityEmpty}
	}

	mentions := ballot.CandidateMentions(buf)
	included, excluded := config.FilterByMentions(*cfg.MentionThreshold, candidates, mentions, buf.Len())
	t.log.Debug("mention filter applied", "included", len(included), "excluded", len(excluded))

	if len(included) < minIncluded {
		return &result.VoteResult{
			Status:   result.StatusMajorityEmpty,
			Mentions: &result.MentionData{Mentions: mentions, IncludedByMentions: included, ExcludedByMentions: excluded},
		}
	}

	res := engine(included, mentions)
	if res.Status == result.StatusSuccess && res.Mentions != nil {
		res.Mentions.IncludedByMentions = included
		res.Mentions.ExcludedByMentions = excluded
	}
	return res
}
