// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fsnotifywatcher implements native.Watcher on top of
// github.com/fsnotify/fsnotify.
//
// fsnotify does not watch recursively, so every directory below the root
// is added on open, and directories created later are added when their
// create event arrives.
//
// fsnotify reports a rename as a rename of the old name followed by a
// create of the new one, without anything tying the two together.
// They are paired when the create is the very next event, arrives within
// a short window, lands in the same directory, the old name is gone and
// both names are of the same kind. This is a heuristic: moving a file out
// of the tree and creating another file next to it at once, as in
// "mv a.txt ../out; touch c.txt", is reported as a rename of a.txt to
// c.txt. Otherwise the old name is reported as a rename with no new name
// and the new one as a create. Use the notify backend on Linux for exact
// pairing.
package fsnotifywatcher

import (
	"sync"
	"time"

	"github.com/black-desk/fswatch/pkg/filter"
	"github.com/black-desk/fswatch/pkg/native"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

const (
	DefaultBuffer = 64

	renameWindow = 20 * time.Millisecond
)

type Watcher struct {
	buffer  int
	exclude *filter.Filter
	log     *zap.SugaredLogger

	mu      sync.Mutex
	next    native.Handle
	watches map[native.Handle]*watch
}

var _ native.Watcher = (*Watcher)(nil)

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create fsnotify watcher")

	w := &Watcher{
		buffer:  DefaultBuffer,
		watches: map[native.Handle]*watch{},
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

	ret = w

	w.log.Debugw("Create a fsnotify watcher.",
		"buffer", w.buffer,
		"exclude", w.exclude.Patterns(),
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

func WithBuffer(size int) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if size < 0 {
			err = ErrInvalidBuffer
			return
		}

		w.buffer = size
		ret = w
		return
	}
}

// WithExclude skips directories matching the filter when adding watches.
func WithExclude(f *filter.Filter) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		w.exclude = f
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
