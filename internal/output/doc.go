// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders the filtered, sorted game listing as text, json,
// or yaml.
package output
