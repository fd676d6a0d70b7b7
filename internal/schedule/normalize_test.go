// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const proTeamsDoc = `[
	{"Key": "PHI", "FullName": "Philadelphia Eagles"},
	{"Key": "dal", "FullName": "Dallas Cowboys"},
	{"FullName": "No Key Team"},
	{"Key": "NYG", "FullName": ""}
]`

func TestBuildTeamLookup(t *testing.T) {
	lookup := BuildTeamLookup(gjson.Parse(proTeamsDoc))

	assert.Equal(t, "Philadelphia Eagles", lookup.Resolve("PHI"))
	assert.Equal(t, "Philadelphia Eagles", lookup.Resolve("phi"), "resolution is case-insensitive on the code")
	assert.Equal(t, "Dallas Cowboys", lookup.Resolve("DAL"), "directory keys are upper-cased")
}

func TestResolveUnknownCodePassesThrough(t *testing.T) {
	lookup := BuildTeamLookup(gjson.Parse(proTeamsDoc))

	assert.Equal(t, "XYZ", lookup.Resolve("XYZ"))
	assert.Equal(t, "NYG", lookup.Resolve("NYG"), "empty directory name falls back to the code")
}

func TestNormalizeCollege(t *testing.T) {
	doc := `[
		{"HomeTeamName": "Ohio State Buckeyes", "AwayTeamName": "Texas Longhorns",
		 "DateTime": "2025-08-30T12:00:00", "Day": "2025-08-30T00:00:00", "Week": 1, "Channel": "FOX"},
		{"HomeTeamName": "Alabama Crimson Tide", "AwayTeamName": "Georgia Bulldogs", "Week": 5}
	]`

	games := NormalizeCollege(gjson.Parse(doc))
	require.Len(t, games, 2)

	assert.Equal(t, College, games[0].League)
	assert.Equal(t, "Ohio State Buckeyes", games[0].Home)
	assert.Equal(t, "Texas Longhorns", games[0].Away)
	assert.Equal(t, "2025-08-30T12:00:00", games[0].DateTime)
	assert.Equal(t, int64(1), games[0].Week)
	assert.Equal(t, "FOX", games[0].Channel)

	// Absent fields degrade to zero values, never errors.
	assert.Empty(t, games[1].DateTime)
	assert.Empty(t, games[1].Day)
	assert.Empty(t, games[1].Channel)
	assert.Equal(t, int64(5), games[1].Week)
}

func TestNormalizePro(t *testing.T) {
	lookup := BuildTeamLookup(gjson.Parse(proTeamsDoc))
	doc := `[
		{"HomeTeam": "DAL", "AwayTeam": "PHI", "DateTime": "2025-09-04T20:20:00",
		 "Day": "2025-09-04T00:00:00", "Week": 1, "Channel": "NBC"},
		{"HomeTeam": "ZZZ", "AwayTeam": "PHI", "Week": 2, "Channel": null}
	]`

	games := NormalizePro(gjson.Parse(doc), lookup)
	require.Len(t, games, 2)

	assert.Equal(t, Pro, games[0].League)
	assert.Equal(t, "Dallas Cowboys", games[0].Home)
	assert.Equal(t, "Philadelphia Eagles", games[0].Away)

	assert.Equal(t, "ZZZ", games[1].Home, "unknown short code passes through unchanged")
	assert.Empty(t, games[1].Channel, "null channel reads as absent")
}
