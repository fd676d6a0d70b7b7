// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI surface for fbctl. It wires flags,
// validators, and the games action that orchestrates fetch, normalize,
// filter, sort, and render.
package command
