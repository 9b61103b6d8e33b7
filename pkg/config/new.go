// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the yaml configuration of fswatch.
package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type options struct {
	content   []byte
	log       *zap.SugaredLogger
	overrides []func(*Config)
}

type Opt func(o *options) (ret *options, err error)

// New loads the configuration from the content given by WithContent,
// or from DefaultConfig when there is none.
func New(opts ...Opt) (ret *Config, err error) {
	defer Wrap(&err, "load configuration")

	o := &options{}
	for i := range opts {
		o, err = opts[i](o)
		if err != nil {
			return
		}
	}

	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	if o.content == nil {
		o.content = []byte(DefaultConfig)
	}

	cfg := &Config{}
	cfg.log = o.log

	err = yaml.Unmarshal(o.content, cfg)
	if err != nil {
		Wrap(&err, "unmarshal configuration")
		return
	}

	for _, override := range o.overrides {
		override(cfg)
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg

	cfg.log.Debugw("Configuration loaded.",
		"path", cfg.Path,
		"backend", cfg.Backend,
		"capacity", cfg.Capacity,
		"format", cfg.Format,
	)

	return
}

func WithContent(content []byte) Opt {
	return func(o *options) (ret *options, err error) {
		o.content = content
		ret = o
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(o *options) (ret *options, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		o.log = log
		ret = o
		return
	}
}

// WithPath overrides the path from the content, if path is not empty.
func WithPath(path string) Opt {
	return withOverride(path != "", func(cfg *Config) {
		cfg.Path = path
	})
}

// WithBackend overrides the backend from the content, if backend is not empty.
func WithBackend(backend Backend) Opt {
	return withOverride(backend != "", func(cfg *Config) {
		cfg.Backend = backend
	})
}

// WithFormat overrides the format from the content, if format is not empty.
func WithFormat(format Format) Opt {
	return withOverride(format != "", func(cfg *Config) {
		cfg.Format = format
	})
}

func withOverride(apply bool, override func(*Config)) Opt {
	return func(o *options) (ret *options, err error) {
		if apply {
			o.overrides = append(o.overrides, override)
		}
		ret = o
		return
	}
}
