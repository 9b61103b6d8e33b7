// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package filter matches directories against glob exclusion patterns,
// to keep them out of the set of watched directories.
// A pattern matches when it matches either the whole path or its base name,
// so "*.swp" and "/tmp/**" both work.
package filter

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

type Filter struct {
	patterns []string
	globs    []glob.Glob
}

func New(patterns []string) (ret *Filter, err error) {
	f := &Filter{patterns: patterns}

	for _, pattern := range patterns {
		var g glob.Glob
		g, err = glob.Compile(pattern, filepath.Separator)
		if err != nil {
			err = fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
			return
		}
		f.globs = append(f.globs, g)
	}

	ret = f
	return
}

// Excluded reports whether path matches any pattern.
// A nil Filter excludes nothing.
func (f *Filter) Excluded(path string) bool {
	if f == nil {
		return false
	}

	base := filepath.Base(path)
	for _, g := range f.globs {
		if g.Match(path) || g.Match(base) {
			return true
		}
	}

	return false
}

func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return f.patterns
}
