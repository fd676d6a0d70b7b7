// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/fbctl/fbctlgo/internal/config"
	"github.com/fbctl/fbctlgo/internal/meta"
)

// InitApp builds the fbctl command. The optional fbctl.yaml is loaded here
// so its path can feed the flag value sources; a missing file just leaves
// flag defaults in place.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	file, _ := config.LoadFile()
	m := meta.Meta{
		Args:    args,
		File:    file,
		Context: ctx,
	}

	app := &cli.Command{
		Name:      "fbctl",
		Usage:     "college and pro football schedule query",
		UsageText: "fbctl [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "fbctl version info",
				HideDefault: true,
			},
		}, GamesFlags(m)...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GamesValidator(ctx, c); err != nil {
				return err
			}
			return GamesAction(ctx, c)
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
