// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"github.com/black-desk/fswatch/pkg/filter"
	"go.uber.org/zap"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Path is the file or directory to watch.
	Path string `yaml:"path"`
	// Backend selects the native watcher.
	Backend Backend `yaml:"backend"`
	// Library is the libwatcher-c shared object to load.
	// It is only used by the libwatcher backend.
	// Empty means searching the default library names.
	Library string `yaml:"library"`
	// Capacity bounds the number of events
	// waiting between the native watcher and the consumer.
	Capacity int `yaml:"capacity" validate:"gte=0"`
	// Buffer is the size of the channel
	// the notify and fsnotify backends receive from.
	Buffer int `yaml:"buffer" validate:"gte=0"`
	// Format is how the command line prints events.
	Format Format `yaml:"format" validate:"omitempty,oneof=json yaml text"`
	// Exclude holds glob patterns of directories
	// the fsnotify backend does not add watches for.
	Exclude []string `yaml:"exclude"`

	log    *zap.SugaredLogger `yaml:"-"`
	filter *filter.Filter
}

type Backend string

const (
	BackendNotify     Backend = "notify"
	BackendFsnotify   Backend = "fsnotify"
	BackendLibwatcher Backend = "libwatcher"
)

var Backends = []Backend{BackendNotify, BackendFsnotify, BackendLibwatcher}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Filter returns the compiled Exclude patterns.
func (c *Config) Filter() *filter.Filter {
	return c.filter
}
