// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetDate(t *testing.T) {
	now := time.Date(2025, 9, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-09-01", TargetDate(now, 0))
	assert.Equal(t, "2025-09-02", TargetDate(now, 1))
	assert.Equal(t, "2025-08-25", TargetDate(now, -7))
}

func TestFilterByDate(t *testing.T) {
	games := []Game{
		{Home: "A", DateTime: "2025-09-01T18:00:00Z"},
		{Home: "B", DateTime: "2025-09-02T18:00:00Z"},
		{Home: "C", Day: "2025-09-01T00:00:00"},
		{Home: "D", DateTime: "2025-08-31T23:59:00Z"},
		{Home: "E", Week: 3}, // no date info at all
	}

	got := FilterByDate(games, "2025-09-01")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Home)
	assert.Equal(t, "C", got[1].Home, "day-only games match on the Day prefix")

	assert.Empty(t, FilterByDate(games, "2025-09-03"))
}

func TestFilterByTeam(t *testing.T) {
	games := []Game{
		{Home: "Philadelphia Eagles", Away: "Dallas Cowboys"},
		{Home: "Green Bay Packers", Away: "Chicago Bears"},
		{Home: "Ohio State Buckeyes", Away: "Texas Longhorns"},
	}

	got := FilterByTeam(games, "eagles")
	require.Len(t, got, 1)
	assert.Equal(t, "Philadelphia Eagles", got[0].Home)

	got = FilterByTeam(games, "BEARS")
	require.Len(t, got, 1)
	assert.Equal(t, "Chicago Bears", got[0].Away)

	assert.Empty(t, FilterByTeam(games, "zzzz"))
}

func TestSortWeekThenTime(t *testing.T) {
	games := []Game{
		{Home: "late", Week: 2, DateTime: "2025-09-08T13:00:00Z"},
		{Home: "early", Week: 1, DateTime: "2025-09-01T13:00:00Z"},
		{Home: "earlier same week", Week: 1, DateTime: "2025-09-01T09:30:00Z"},
	}

	Sort(games)

	assert.Equal(t, "earlier same week", games[0].Home)
	assert.Equal(t, "early", games[1].Home)
	assert.Equal(t, "late", games[2].Home)
}

func TestSortUndatedGamesFirstInWeek(t *testing.T) {
	games := []Game{
		{Home: "dated", Week: 4, DateTime: "2025-09-27T19:00:00Z"},
		{Home: "undated", Week: 4},
		{Home: "day only", Week: 4, Day: "2025-09-28T00:00:00"},
	}

	Sort(games)

	assert.Equal(t, "undated", games[0].Home, "zero-time fallback sorts first within the week")
	assert.Equal(t, "dated", games[1].Home)
	assert.Equal(t, "day only", games[2].Home)
}

func TestEffectiveTime(t *testing.T) {
	g := Game{DateTime: "2025-09-01T18:00:00Z"}
	assert.Equal(t, time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC), g.EffectiveTime())

	g = Game{Day: "2025-09-01T00:00:00"}
	assert.Equal(t, 2025, g.EffectiveTime().Year())

	g = Game{}
	assert.True(t, g.EffectiveTime().IsZero())
}
