// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the build version reported by --version.
package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
