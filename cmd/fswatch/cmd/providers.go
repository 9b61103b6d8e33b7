// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fswatch/pkg/config"
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/black-desk/fswatch/pkg/native/fsnotifywatcher"
	"github.com/black-desk/fswatch/pkg/native/libwatcher"
	"github.com/black-desk/fswatch/pkg/native/notifywatcher"
	"github.com/black-desk/fswatch/pkg/watch"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func provideNativeWatcher(
	cfg *config.Config, logger *zap.SugaredLogger,
) (
	ret native.Watcher, err error,
) {
	switch cfg.Backend {
	case config.BackendNotify:
		var w *notifywatcher.Watcher
		w, err = notifywatcher.New(
			notifywatcher.WithBuffer(cfg.Buffer),
			notifywatcher.WithLogger(logger),
		)
		if err != nil {
			return
		}
		ret = w
	case config.BackendFsnotify:
		var w *fsnotifywatcher.Watcher
		w, err = fsnotifywatcher.New(
			fsnotifywatcher.WithBuffer(cfg.Buffer),
			fsnotifywatcher.WithExclude(cfg.Filter()),
			fsnotifywatcher.WithLogger(logger),
		)
		if err != nil {
			return
		}
		ret = w
	case config.BackendLibwatcher:
		var w *libwatcher.Watcher
		w, err = libwatcher.New(
			libwatcher.WithLibrary(cfg.Library),
			libwatcher.WithLogger(logger),
		)
		if err != nil {
			return
		}
		ret = w
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}

	return
}

func provideWatch(
	cfg *config.Config, nw native.Watcher, logger *zap.SugaredLogger,
) (
	*watch.Watch, error,
) {
	return watch.New(
		watch.WithPath(cfg.Path),
		watch.WithNative(nw),
		watch.WithCapacity(cfg.Capacity),
		watch.WithLogger(logger),
	)
}

var set = wire.NewSet(
	provideNativeWatcher,
	provideWatch,
)
