// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package schedule

import (
	"strings"

	"github.com/tidwall/gjson"
)

// TeamLookup maps an upper-cased short team code to its full display name.
type TeamLookup map[string]string

// Resolve returns the full name for code. An unknown code passes through
// verbatim; missing directory entries degrade gracefully, never fail.
func (t TeamLookup) Resolve(code string) string {
	if name, ok := t[strings.ToUpper(code)]; ok && name != "" {
		return name
	}
	return code
}

// BuildTeamLookup derives a TeamLookup from the professional team directory
// payload. Rows without a Key are skipped.
func BuildTeamLookup(rows gjson.Result) TeamLookup {
	lookup := make(TeamLookup)
	for _, row := range rows.Array() {
		key := row.Get("Key")
		if !key.Exists() || key.String() == "" {
			continue
		}
		lookup[strings.ToUpper(key.String())] = row.Get("FullName").String()
	}
	return lookup
}

// NormalizeCollege maps raw college schedule rows into Games. The college
// feed carries full team names directly.
func NormalizeCollege(rows gjson.Result) []Game {
	//nolint:prealloc
	var games []Game
	for _, row := range rows.Array() {
		g := baseGame(row)
		g.League = College
		g.Home = row.Get("HomeTeamName").String()
		g.Away = row.Get("AwayTeamName").String()
		games = append(games, g)
	}
	return games
}

// NormalizePro maps raw professional schedule rows into Games, resolving
// the short home/away codes through the team directory.
func NormalizePro(rows gjson.Result, lookup TeamLookup) []Game {
	//nolint:prealloc
	var games []Game
	for _, row := range rows.Array() {
		g := baseGame(row)
		g.League = Pro
		g.Home = lookup.Resolve(row.Get("HomeTeam").String())
		g.Away = lookup.Resolve(row.Get("AwayTeam").String())
		games = append(games, g)
	}
	return games
}

// baseGame extracts the league-independent fields. Values pass through
// verbatim; absence becomes the zero value, nothing is type-coerced beyond
// presence.
func baseGame(row gjson.Result) Game {
	return Game{
		DateTime: row.Get("DateTime").String(),
		Day:      row.Get("Day").String(),
		Week:     row.Get("Week").Int(),
		Channel:  row.Get("Channel").String(),
	}
}
