// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rational implements the exact rational thresholds used
// throughout the configuration predicates: a value given as a decimal
// or as a (numerator, denominator) pair, compared against a measured
// ratio with an inclusive (">=" / "<=") or exclusive (">" / "<")
// boundary.
package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction. The zero value is 0.
type Rational struct {
	r big.Rat
}

// New returns the rational num/den. den must be nonzero.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("rational: zero denominator")
	}
	var out Rational
	out.r.SetFrac64(num, den)
	return out, nil
}

// FromFloat returns the closest rational to v.
func FromFloat(v float64) Rational {
	var out Rational
	out.r.SetFloat64(v)
	return out
}

// Of constructs the ratio a/b of two measured counts (e.g. ballots cast
// over eligible voters). Of(a, 0) is defined as 0.
func Of(a, b int) Rational {
	var out Rational
	if b != 0 {
		out.r.SetFrac64(int64(a), int64(b))
	}
	return out
}

// Passes reports whether this ratio passes threshold t: >= if
// inclusive, else >.
func (v Rational) Passes(t Rational, inclusive bool) bool {
	cmp := v.r.Cmp(&t.r)
	if inclusive {
		return cmp >= 0
	}
	return cmp > 0
}

// Within reports whether this ratio is within threshold t: <= if
// inclusive, else <. This is the symmetric predicate used by
// blank-ratio-style limits.
func (v Rational) Within(t Rational, inclusive bool) bool {
	cmp := v.r.Cmp(&t.r)
	if inclusive {
		return cmp <= 0
	}
	return cmp < 0
}

func (v Rational) String() string {
	return v.r.RatString()
}

// MarshalJSON encodes the rational as its exact "num/den" (or integer)
// string form.
func (v Rational) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.r.RatString() + `"`), nil
}

// UnmarshalJSON parses a "num/den" or decimal string.
func (v *Rational) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return fmt.Errorf("rational: invalid value %q", s)
	}
	v.r = *r
	return nil
}

// MarshalText encodes the rational the same way MarshalJSON does, minus
// the surrounding quotes, so TOML decoders (which dispatch through
// encoding.TextUnmarshaler rather than json.Unmarshaler) can load it too.
func (v Rational) MarshalText() ([]byte, error) {
	return []byte(v.r.RatString()), nil
}

// UnmarshalText parses a "num/den" or decimal string with no surrounding
// quotes, exercised when a config.Threshold is loaded from TOML.
func (v *Rational) UnmarshalText(data []byte) error {
	r, ok := new(big.Rat).SetString(string(data))
	if !ok {
		return fmt.Errorf("rational: invalid value %q", data)
	}
	v.r = *r
	return nil
}
