// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strconv"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/fbctl/fbctlgo/internal/meta"
)

// GamesFlags builds the flag set for the games listing. String flags use ""
// as the "not provided" sentinel so defaulting logic can tell an absent flag
// from an explicit value.
func GamesFlags(m meta.Meta) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "signed day offset from today to show games for",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FBCTL_DAYS"),
				yaml.YAML("days", altsrc.StringSourcer(m.File.Source)),
			),
			Value: "",
			Validator: func(value string) error {
				return FlagValidators(value, DayOffsetValidator)
			},
		},
		&cli.StringFlag{
			Name:    "team",
			Aliases: []string{"t"},
			Usage:   "substring to match against home or away team names",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("team", altsrc.StringSourcer(m.File.Source)),
			),
			Value: "",
		},
		&cli.IntFlag{
			Name:    "season",
			Aliases: []string{"s"},
			Usage:   "season year to fetch schedules for",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("season", altsrc.StringSourcer(m.File.Source)),
			),
		},
		&cli.BoolFlag{
			Name:        "clear-cache",
			Usage:       "remove all cached schedule data and exit",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("output", altsrc.StringSourcer(m.File.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(m.File.Source)),
			),
			Value: false,
		},
	}
}

// DayOffsetValidator accepts the empty sentinel or a signed integer.
func DayOffsetValidator(value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("unexpected value type %T", value)
	}
	if v == "" {
		return nil
	}
	if _, err := strconv.Atoi(v); err != nil {
		return fmt.Errorf("--days must be an integer, got %q", v)
	}
	return nil
}
