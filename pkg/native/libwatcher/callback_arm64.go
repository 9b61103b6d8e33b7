// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin || freebsd || linux

package libwatcher

import (
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/ebitengine/purego"
)

// On AAPCS64 a struct larger than 16 bytes is passed by reference to a
// caller made copy, so struct wtr_watcher_event arrives as a pointer.
func newCallback() uintptr {
	return purego.NewCallback(func(ev *native.RawEvent, cx uintptr) {
		slots.dispatch(ev, cx)
	})
}
