// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Store is a file-per-resource cache rooted at Dir. Entry names are flat
// filenames; the store owns the directory exclusively.
type Store struct {
	Dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Ensure creates the cache directory, parents included. Idempotent.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Path returns the on-disk location of the named entry.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Read returns the raw stored content for name, or false if there is no
// entry.
func (s *Store) Read(name string) ([]byte, bool) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, false
	}
	return data, true
}

// IsFresh reports whether the named entry exists and was written within ttl
// of now. An absent entry is never fresh.
func (s *Store) IsFresh(name string, now time.Time, ttl time.Duration) bool {
	info, err := os.Stat(s.Path(name))
	if err != nil {
		return false
	}
	return Fresh(info.ModTime(), now, ttl)
}

// Fresh is the freshness rule with explicit time inputs: an entry last
// written at mod is fresh at now iff its age is under ttl.
func Fresh(mod, now time.Time, ttl time.Duration) bool {
	return now.Sub(mod) < ttl
}

// Write overwrites the named entry. JSON payloads are stored pretty-printed
// so the cache files are inspectable. The file mtime doubles as the entry's
// freshness timestamp.
func (s *Store) Write(name string, data []byte) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	if gjson.ValidBytes(data) {
		data = pretty.Pretty(data)
	}
	if err := os.WriteFile(s.Path(name), data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// ClearReport summarizes what a Clear removed.
type ClearReport struct {
	Files int
	Bytes uint64
}

func (r ClearReport) String() string {
	if r.Files == 0 {
		return "cache is already empty"
	}
	return fmt.Sprintf("cache cleared: removed %d file(s), %s", r.Files, humanize.Bytes(r.Bytes))
}

// Clear removes the entire cache directory. Clearing an empty or absent
// cache is a no-op, not an error.
func (s *Store) Clear() (ClearReport, error) {
	var report ClearReport

	// Tally before removal so the report can say what was reclaimed. Walk
	// errors (including an absent directory) are ignored; RemoveAll below is
	// the authoritative operation.
	_ = filepath.Walk(s.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr
		}
		if !info.IsDir() {
			report.Files++
			report.Bytes += uint64(info.Size())
		}
		return nil
	})

	if err := os.RemoveAll(s.Dir); err != nil {
		return ClearReport{}, fmt.Errorf("failed to clear cache: %w", err)
	}

	log.Debugf("cleared cache at %s", s.Dir)
	return report, nil
}
