// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"slices"

	"github.com/black-desk/fswatch/pkg/filter"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.Path == "" {
		c.Path = DefaultPath
	}

	if c.Backend == "" {
		c.Backend = DefaultBackend
	}

	if !slices.Contains(Backends, c.Backend) {
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
		return
	}

	if c.Library != "" && c.Backend != BackendLibwatcher {
		c.log.Warnw("Library is ignored by this backend.",
			"backend", c.Backend,
			"library", c.Library,
		)
	}

	if len(c.Exclude) != 0 && c.Backend != BackendFsnotify {
		c.log.Warnw("Exclude is ignored by this backend.",
			"backend", c.Backend,
			"exclude", c.Exclude,
		)
	}

	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}

	if c.Buffer == 0 {
		c.Buffer = DefaultBuffer
	}

	if c.Format == "" {
		c.Format = DefaultFormat
	}

	c.filter, err = filter.New(c.Exclude)
	if err != nil {
		return
	}

	return
}
