// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package upstream

import "fmt"

// Cache entry names, one flat file per upstream resource.
const (
	CacheKeyCollegeGames = "cfb-games.json"
	CacheKeyProSchedule  = "nfl-schedule.json"
	CacheKeyProTeams     = "nfl-teams.json"
)

// CollegeGamesPath is the college schedule-for-year resource.
func CollegeGamesPath(season int) string {
	return fmt.Sprintf("/cfb/scores/json/Games/%d", season)
}

// ProSchedulePath is the professional schedule-for-year resource.
func ProSchedulePath(season int) string {
	return fmt.Sprintf("/nfl/scores/json/Schedules/%d", season)
}

// ProTeamsPath is the professional team directory resource.
func ProTeamsPath() string {
	return "/nfl/scores/json/Teams"
}
