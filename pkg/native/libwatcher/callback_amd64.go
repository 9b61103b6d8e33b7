// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin || freebsd || linux

package libwatcher

import (
	"unsafe"

	"github.com/black-desk/fswatch/pkg/native"
	"github.com/ebitengine/purego"
)

// The library passes struct wtr_watcher_event (32 bytes) by value.
// On System V x86-64 such a struct is copied onto the stack,
// right after the six integer register arguments, while the context
// pointer still goes in the first integer register. The callback below
// spells that layout out: the five ignored arguments stand for the unused
// registers, and the struct arrives as its four eightbytes.
// The last eightbyte holds effect_type and path_type as its two low bytes.
func newCallback() uintptr {
	return purego.NewCallback(func(
		cx, _, _, _, _, _ uintptr,
		effectTime int64, pathName, associatedPathName, types uintptr,
	) {
		ev := native.RawEvent{
			EffectTime:         effectTime,
			PathName:           (*byte)(unsafe.Pointer(pathName)),
			AssociatedPathName: (*byte)(unsafe.Pointer(associatedPathName)),
			EffectType:         int8(types),
			PathType:           int8(types >> 8),
		}
		slots.dispatch(&ev, cx)
	})
}
