// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "fmt"

// Builder provides a fluent interface for constructing a Config,
// grounded on the teacher's config.Builder / FromPreset pattern.
type Builder struct {
	cfg *Config
}

// NewBuilder starts building a Config for the given method.
func NewBuilder(method Method) *Builder {
	return &Builder{cfg: &Config{Method: method}}
}

// WithQuorum sets the required quorum gate.
func (b *Builder) WithQuorum(q Quorum) *Builder {
	b.cfg.Quorum = q
	return b
}

// WithBlankLimit sets the blank-ratio gate.
func (b *Builder) WithBlankLimit(l BlankLimit) *Builder {
	b.cfg.BlankLimit = &l
	return b
}

// WithMajority sets the Yes/No(/Blank) pass thresholds.
func (b *Builder) WithMajority(m Majority) *Builder {
	b.cfg.Majority = &m
	return b
}

// WithMaxChoices sets the number of seats to fill.
func (b *Builder) WithMaxChoices(n int) *Builder {
	b.cfg.MaxChoices = &MaxChoices{NumChosen: n}
	return b
}

// WithMentionThreshold sets the mention-ratio filter.
func (b *Builder) WithMentionThreshold(t MentionThreshold) *Builder {
	b.cfg.MentionThreshold = &t
	return b
}

// Build validates the configuration against its method's required
// sub-records (§6) and returns the finished Config.
func (b *Builder) Build() (*Config, error) {
	cfg := b.cfg
	switch cfg.Method {
	case MethodYesNo, MethodYesNoBlank:
		if cfg.Majority == nil {
			return nil, fmt.Errorf("config: %s requires a Majority record", cfg.Method)
		}
	case MethodThresholdMajority, MethodRankedPairs:
		if cfg.BlankLimit == nil {
			return nil, fmt.Errorf("config: %s requires a BlankLimit record", cfg.Method)
		}
		if cfg.MaxChoices == nil {
			return nil, fmt.Errorf("config: %s requires a MaxChoices record", cfg.Method)
		}
		if cfg.MentionThreshold == nil {
			return nil, fmt.Errorf("config: %s requires a MentionThreshold record", cfg.Method)
		}
	case MethodSTV:
		if cfg.BlankLimit == nil {
			return nil, fmt.Errorf("config: %s requires a BlankLimit record", cfg.Method)
		}
		if cfg.MaxChoices == nil {
			return nil, fmt.Errorf("config: %s requires a MaxChoices record", cfg.Method)
		}
	default:
		return nil, fmt.Errorf("config: unknown method %q", cfg.Method)
	}
	return cfg, nil
}
