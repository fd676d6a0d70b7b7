// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/fbctl/fbctlgo/internal/cache"
	"github.com/fbctl/fbctlgo/internal/config"
	"github.com/fbctl/fbctlgo/internal/meta"
	"github.com/fbctl/fbctlgo/internal/output"
	"github.com/fbctl/fbctlgo/internal/schedule"
	"github.com/fbctl/fbctlgo/internal/upstream"
)

// GamesAction is the action handler for the fbctl root command. It fetches
// the team directory, then both league schedules concurrently, and runs the
// filter/sort/render pipeline over the combined set.
func GamesAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing games action for %v", m.Args)

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// --clear-cache short-circuits everything else: no key needed, no fetch.
	if cmd.Bool("clear-cache") {
		report, err := cache.New(cfg.CacheDir).Clear()
		if err != nil {
			return RuntimeError{err}
		}
		fmt.Fprintln(writer(cmd), report)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	season := cmd.Int("season")
	if season == 0 {
		season = cfg.Season
	}

	client := upstream.NewClient(upstream.Options{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Store:   cache.New(cfg.CacheDir),
		TTL:     cfg.CacheTTL,
	})

	// The team directory must land before pro normalization, so it is
	// awaited on its own. The two schedule fetches are independent and run
	// concurrently.
	teamsDoc, err := client.FetchCached(ctx, upstream.ProTeamsPath(), upstream.CacheKeyProTeams)
	if err != nil {
		return RuntimeError{err}
	}
	lookup := schedule.BuildTeamLookup(teamsDoc)

	var college, pro []schedule.Game

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := client.FetchCached(gctx, upstream.CollegeGamesPath(season), upstream.CacheKeyCollegeGames)
		if err != nil {
			return err
		}
		college = schedule.NormalizeCollege(doc)
		return nil
	})
	g.Go(func() error {
		doc, err := client.FetchCached(gctx, upstream.ProSchedulePath(season), upstream.CacheKeyProSchedule)
		if err != nil {
			return err
		}
		pro = schedule.NormalizePro(doc, lookup)
		return nil
	})
	if err := g.Wait(); err != nil {
		return RuntimeError{err}
	}

	games := append(college, pro...)
	log.Debugf("normalized %d games (%d college, %d pro)", len(games), len(college), len(pro))

	days := cmd.String("days")
	team := cmd.String("team")

	// Default view: today's games. A team filter on its own spans all weeks.
	if days == "" && team == "" {
		days = "0"
	}

	view := output.View{Team: team}
	if days != "" {
		offset, err := strconv.Atoi(days)
		if err != nil {
			return fmt.Errorf("--days must be an integer, got %q", days)
		}
		view.Date = schedule.TargetDate(time.Now(), offset)
		games = schedule.FilterByDate(games, view.Date)
	}
	if team != "" {
		games = schedule.FilterByTeam(games, team)
	}

	schedule.Sort(games)

	opts := output.Options{
		Format: cmd.String("output"),
		Color:  useColor(cmd),
	}
	if err := output.Render(writer(cmd), games, view, opts); err != nil {
		return RuntimeError{err}
	}

	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// useColor honors --color only when stdout is a terminal.
func useColor(cmd *cli.Command) bool {
	if !cmd.Bool("color") {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
