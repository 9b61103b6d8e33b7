// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package native describes the contract of a callback driven filesystem
// watcher, modelled after the C ABI of libwatcher-c:
//
//	void *wtr_watcher_open(char const *path, wtr_watcher_callback cb, void *cx);
//	bool  wtr_watcher_close(void *watcher);
//
// Implementations live in the sub packages.
package native

// RawEvent has the memory layout of struct wtr_watcher_event.
// The text pointers are NUL-terminated, may be nil,
// and are only valid during the callback they are passed to.
type RawEvent struct {
	EffectTime         int64
	PathName           *byte
	AssociatedPathName *byte
	EffectType         int8
	PathType           int8
}

// Effect codes.
const (
	EffectRename int8 = iota
	EffectModify
	EffectCreate
	EffectDestroy
	EffectOwner
	EffectOther
)

// Path codes.
const (
	PathDir int8 = iota
	PathFile
	PathHardLink
	PathSymLink
	PathWatcher
	PathOther
)

// Callback is invoked by a watcher on a goroutine or thread it owns,
// zero or more times, until Close of the corresponding handle returns true.
// cx is the value given to Open.
type Callback func(ev *RawEvent, cx uintptr)

// Handle is an opaque watch. The zero Handle is the null handle.
type Handle uintptr

type Watcher interface {
	// Open starts watching path. It returns the null handle on failure.
	Open(path string, cb Callback, cx uintptr) Handle

	// Close stops the watch. It returns false on failure.
	// Once it has returned true, cb is never called again for h.
	Close(h Handle) bool
}

// Status messages carried in the path of PathWatcher events.
const (
	StatusLive = "s/self/live@"
	StatusDie  = "s/self/die@"

	StatusLiveFailed = "e/self/live@"
	StatusDieFailed  = "e/self/die@"
)
