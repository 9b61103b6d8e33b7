// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/black-desk/fswatch/pkg/config"
	"github.com/black-desk/fswatch/pkg/watch"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedWatch(
	*config.Config, *zap.SugaredLogger,
) (
	*watch.Watch, error,
) {
	panic(wire.Build(set))
}
