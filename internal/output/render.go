// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/fbctl/fbctlgo/internal/config"
	"github.com/fbctl/fbctlgo/internal/schedule"
)

// View names the filters that produced the listing, for the header and the
// empty-result line. Empty fields mean the filter was not active.
type View struct {
	Date string
	Team string
}

// Options controls the rendering.
type Options struct {
	Format string // text, json, yaml
	Color  bool
}

// Render writes the listing to w. The json and yaml formats emit the
// normalized games; text is the line-per-game view.
func Render(w io.Writer, games []schedule.Game, view View, opts Options) error {
	if games == nil {
		// A nil slice would marshal as null instead of an empty list.
		games = []schedule.Game{}
	}
	switch opts.Format {
	case "json":
		out, err := json.MarshalIndent(games, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal games: %w", err)
		}
		_, _ = w.Write(append(out, '\n'))
		return nil
	case "yaml":
		out, err := yaml.Marshal(games)
		if err != nil {
			return fmt.Errorf("failed to marshal games: %w", err)
		}
		_, _ = w.Write(out)
		return nil
	default:
		renderText(w, games, view, opts)
		return nil
	}
}

func renderText(w io.Writer, games []schedule.Game, view View, opts Options) {
	if len(games) == 0 {
		fmt.Fprintln(w, emptyLine(view))
		return
	}

	header := headerLine(view)
	if opts.Color {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(config.GetString("colors.title", "#f6be00")))
		header = style.Render(header)
	}
	fmt.Fprintln(w, header)

	for _, g := range games {
		fmt.Fprintln(w, GameLine(g))
	}
}

// headerLine names the effective view. When both filters are active the
// date form wins.
func headerLine(view View) string {
	switch {
	case view.Date != "":
		return fmt.Sprintf("Games for %s", view.Date)
	case view.Team != "":
		return fmt.Sprintf("All games for teams matching %q", view.Team)
	default:
		return "Games"
	}
}

// emptyLine reports an empty result, naming whichever filters were active.
func emptyLine(view View) string {
	switch {
	case view.Team != "" && view.Date != "":
		return fmt.Sprintf("No games matching %q on %s.", view.Team, view.Date)
	case view.Team != "":
		return fmt.Sprintf("No games found for teams matching %q.", view.Team)
	case view.Date != "":
		return fmt.Sprintf("No games found for %s.", view.Date)
	default:
		return "No games found."
	}
}

// GameLine formats one game as
//
//	[<DATE>][<LEAGUE>] <away> @ <home> - <start or TBD> - Channel: <channel or N/A>
func GameLine(g schedule.Game) string {
	channel := g.Channel
	if channel == "" {
		channel = "N/A"
	}
	return fmt.Sprintf("[%s][%s] %s @ %s - %s - Channel: %s",
		dateLabel(g), g.League.Tag(), g.Away, g.Home, startTime(g), channel)
}

// dateLabel prefers the precise timestamp, then the date-only day, then a
// week-number placeholder.
func dateLabel(g schedule.Game) string {
	for _, s := range []string{g.DateTime, g.Day} {
		if s == "" {
			continue
		}
		if t, ok := schedule.ParseStamp(s); ok {
			return t.Format("2006-01-02") + " " + strings.ToUpper(t.Format("Mon"))
		}
	}
	return fmt.Sprintf("WEEK %d (TBD)", g.Week)
}

// startTime is the kickoff hour, known only when a DateTime is present.
func startTime(g schedule.Game) string {
	if t, ok := g.Kickoff(); ok {
		return t.Format("03:04 PM")
	}
	return "TBD"
}
