// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package schedule

import (
	"sort"
	"strings"
	"time"
)

// TargetDate computes the calendar date offset days from now, in now's
// location, formatted YYYY-MM-DD.
func TargetDate(now time.Time, offsetDays int) string {
	return now.AddDate(0, 0, offsetDays).Format("2006-01-02")
}

// FilterByDate keeps games scheduled on target (YYYY-MM-DD): the DateTime
// prefix when present, else the Day prefix. Games with neither field are
// excluded from any date-filtered view.
func FilterByDate(games []Game, target string) []Game {
	//nolint:prealloc
	var out []Game
	for _, g := range games {
		switch {
		case g.DateTime != "":
			if strings.HasPrefix(g.DateTime, target) {
				out = append(out, g)
			}
		case g.Day != "":
			if strings.HasPrefix(g.Day, target) {
				out = append(out, g)
			}
		}
	}
	return out
}

// FilterByTeam keeps games where either side's name contains substr,
// case-insensitively.
func FilterByTeam(games []Game, substr string) []Game {
	needle := strings.ToLower(substr)
	//nolint:prealloc
	var out []Game
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Home), needle) ||
			strings.Contains(strings.ToLower(g.Away), needle) {
			out = append(out, g)
		}
	}
	return out
}

// Sort orders games by week ascending, then by effective time ascending.
// Stable, so equal keys keep their input order.
func Sort(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Week != games[j].Week {
			return games[i].Week < games[j].Week
		}
		return games[i].EffectiveTime().Before(games[j].EffectiveTime())
	})
}
