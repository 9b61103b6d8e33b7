// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package notifywatcher implements native.Watcher on top of
// github.com/rjeczalik/notify. Directories are watched recursively.
//
// On Linux, inotify events are used directly, so that the two halves of a
// rename (IN_MOVED_FROM, IN_MOVED_TO) can be paired by their cookie into
// one rename event carrying the old and the new path.
// Elsewhere the halves are reported as separate rename events.
package notifywatcher

import (
	"sync"
	"time"

	"github.com/black-desk/fswatch/pkg/native"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

const (
	DefaultBuffer = 64

	// renameWindow is how long the first half of a rename waits
	// for its second half before being reported alone.
	renameWindow = 20 * time.Millisecond
)

type Watcher struct {
	buffer int
	log    *zap.SugaredLogger

	mu      sync.Mutex
	next    native.Handle
	watches map[native.Handle]*watch
}

var _ native.Watcher = (*Watcher)(nil)

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create notify watcher")

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

	w.log.Debugw("Create a notify watcher.",
		"buffer", w.buffer,
	)

	return
}

type Opt func(w *Watcher) (ret *Watcher, err error)

// WithBuffer sets the size of the channel notify sends to.
//
// FIXME:
// github.com/rjeczalik/notify drop events if receiver is too slow.
// https://github.com/rjeczalik/notify/issues/85
// https://github.com/rjeczalik/notify/issues/98
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
