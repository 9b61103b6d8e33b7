// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch

import (
	"github.com/black-desk/fswatch/pkg/convert"
	"github.com/black-desk/fswatch/pkg/location"
	"github.com/black-desk/fswatch/pkg/native"
)

var _ native.Callback = bridge

// bridge is the callback every native watcher is opened with.
// It runs on threads owned by the native watcher
// and must never panic back into them.
func bridge(ev *native.RawEvent, cx uintptr) {
	e, ok := endpoints.lookup(cx)
	if !ok {
		return
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}

		e.log.Errorw("Panic in native callback recovered.",
			"panic", p,
			"location", location.Capture(2),
		)
	}()

	e.send(convert.FromRaw(ev))
}
