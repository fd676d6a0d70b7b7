// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache stores raw upstream JSON payloads as flat files in a
// per-user directory. Freshness is derived from file modification time
// against a TTL; there is no background sweep.
package cache
