// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package libwatcher implements native.Watcher by loading the C ABI of the
// watcher library (libwatcher-c) at runtime with purego, without cgo.
//
// The library calls back into Go on its own threads.
// All watches share one callback trampoline, because purego can only create
// a limited number of callbacks per process; the context pointer given to
// the library selects the watch the event belongs to.
//
// The library stays loaded for the lifetime of the process.
package libwatcher

import (
	"fmt"
	"sync"

	"github.com/black-desk/fswatch/pkg/native"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

type Watcher struct {
	library string
	log     *zap.SugaredLogger

	lib *library

	mu      sync.Mutex
	handles map[native.Handle]uintptr
}

var _ native.Watcher = (*Watcher)(nil)

// library holds the entry points of one loaded libwatcher-c.
type library struct {
	path  string
	open  func(path string, callback uintptr, context uintptr) uintptr
	close func(watcher uintptr) bool
}

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create libwatcher watcher")

	w := &Watcher{
		handles: map[native.Handle]uintptr{},
	}

	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	candidates := DefaultLibraries
	if w.library != "" {
		candidates = []string{w.library}
	}

	if len(candidates) == 0 {
		err = ErrUnsupportedPlatform
		return
	}

	var errs []error
	for _, candidate := range candidates {
		var lib *library
		lib, err = load(candidate)
		if err == nil {
			w.lib = lib
			break
		}

		w.log.Debugw("Failed to load libwatcher-c.",
			"library", candidate,
			"error", err,
		)
		errs = append(errs, err)
	}

	if w.lib == nil {
		err = fmt.Errorf("%w (tried %v): %w", ErrLibraryNotFound, candidates, errs[len(errs)-1])
		return
	}

	if _, err = trampoline(); err != nil {
		return
	}

	ret = w

	w.log.Debugw("Create a libwatcher watcher.",
		"library", w.lib.path,
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

// WithLibrary loads the library from path
// instead of searching DefaultLibraries.
func WithLibrary(path string) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		w.library = path
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}
