// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

// RuntimeError marks failures that occur after flag and config validation,
// such as fetches, parses, and cache filesystem trouble. main maps these to
// a distinct exit code.
type RuntimeError struct {
	Err error
}

func (e RuntimeError) Error() string {
	return e.Err.Error()
}

func (e RuntimeError) Unwrap() error {
	return e.Err
}
