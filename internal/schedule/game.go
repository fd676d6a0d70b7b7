// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package schedule holds the normalized game model and the filter/sort
// pipeline applied before display.
package schedule

import (
	"encoding/json"
	"time"
)

// League identifies which competition a game belongs to.
type League int

const (
	College League = iota
	Pro
)

// Tag is the bracketed league label used in listings.
func (l League) Tag() string {
	if l == Pro {
		return "NFL"
	}
	return "NCAA"
}

func (l League) String() string {
	return l.Tag()
}

// MarshalJSON emits the league tag rather than the enum ordinal.
func (l League) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Tag())
}

// MarshalYAML emits the league tag rather than the enum ordinal.
func (l League) MarshalYAML() (interface{}, error) {
	return l.Tag(), nil
}

// Game is one normalized schedule entry. DateTime and Day keep the raw
// upstream strings ("" when absent) so date filtering stays a plain prefix
// match regardless of the upstream timestamp flavor.
type Game struct {
	League   League `json:"league" yaml:"league"`
	Home     string `json:"home" yaml:"home"`
	Away     string `json:"away" yaml:"away"`
	DateTime string `json:"dateTime,omitempty" yaml:"dateTime,omitempty"`
	Day      string `json:"day,omitempty" yaml:"day,omitempty"`
	Week     int64  `json:"week" yaml:"week"`
	Channel  string `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// Upstream feeds use a few timestamp shapes; try the precise ones first.
var stampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseStamp parses an upstream date or date-time string.
func ParseStamp(s string) (time.Time, bool) {
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Kickoff returns the game's precise start when a DateTime is present.
func (g Game) Kickoff() (time.Time, bool) {
	if g.DateTime == "" {
		return time.Time{}, false
	}
	return ParseStamp(g.DateTime)
}

// EffectiveTime is the sort key within a week: the precise DateTime when
// present, else the date-only Day, else the zero time so undated games sort
// first within their week.
func (g Game) EffectiveTime() time.Time {
	if t, ok := g.Kickoff(); ok {
		return t
	}
	if g.Day != "" {
		if t, ok := ParseStamp(g.Day); ok {
			return t
		}
	}
	return time.Time{}
}
