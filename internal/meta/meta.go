// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/fbctl/fbctlgo/internal/config"
)

// Meta carries the invocation context shared by the command layer: the raw
// args, the optional fbctl.yaml, and the run context.
type Meta struct {
	Args    []string
	File    config.File
	Context context.Context
}
