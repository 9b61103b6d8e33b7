// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package watch bridges a callback driven native watcher
// to a pull based stream of types.Event.
//
// Events are handed over through a bounded channel (capacity 1 unless
// WithCapacity says otherwise). A native thread delivering an event blocks
// until the consumer has taken the previous ones, or until the watch is
// closed, in which case the event is dropped.
package watch

import (
	"runtime"
	"sync"

	"github.com/black-desk/fswatch/pkg/native"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

const DefaultCapacity = 1

type state uint8

const (
	stateUnopened state = iota
	stateOpen
	stateClosed
)

// Watch is one active watch session.
// The native watch is closed by Close, when an iteration over All ends,
// or, as a last resort, after the Watch has become unreachable.
type Watch struct {
	*resource
}

// resource is what cleanup needs to close the native watch.
// It must not reference the Watch wrapping it.
type resource struct {
	path     string
	native   native.Watcher
	capacity int
	log      *zap.SugaredLogger

	mu     sync.Mutex
	state  state
	closed chan struct{}
	err    error

	handle native.Handle
	cx     uintptr
	ep     *endpoint
}

type Opt func(r *resource) (ret *resource, err error)

// New opens a watch. It fails with ErrOpenFailed
// if the native watcher cannot watch the path.
func New(opts ...Opt) (ret *Watch, err error) {
	defer Wrap(&err, "open watch")

	r := &resource{
		capacity: DefaultCapacity,
		closed:   make(chan struct{}),
	}

	for i := range opts {
		r, err = opts[i](r)
		if err != nil {
			return
		}
	}

	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}

	if r.path == "" {
		err = ErrPathMissing
		return
	}

	if r.native == nil {
		err = ErrNativeMissing
		return
	}

	err = r.open()
	if err != nil {
		return
	}

	w := &Watch{resource: r}
	runtime.AddCleanup(w, func(r *resource) {
		go r.dispose()
	}, r)

	ret = w

	r.log.Debugw("Watch opened.",
		"path", r.path,
		"capacity", r.capacity,
	)

	return
}

// Open is New with the path and native watcher given positionally.
func Open(path string, nw native.Watcher, opts ...Opt) (*Watch, error) {
	return New(append([]Opt{WithPath(path), WithNative(nw)}, opts...)...)
}

func WithPath(path string) Opt {
	return func(r *resource) (ret *resource, err error) {
		if path == "" {
			err = ErrPathMissing
			return
		}

		r.path = path
		ret = r
		return
	}
}

func WithNative(nw native.Watcher) Opt {
	return func(r *resource) (ret *resource, err error) {
		if nw == nil {
			err = ErrNativeMissing
			return
		}

		r.native = nw
		ret = r
		return
	}
}

// WithCapacity sets how many events may wait for the consumer
// before native threads block.
func WithCapacity(capacity int) Opt {
	return func(r *resource) (ret *resource, err error) {
		if capacity < 1 {
			err = ErrInvalidCapacity
			return
		}

		r.capacity = capacity
		ret = r
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(r *resource) (ret *resource, err error) {
		r.log = log
		ret = r
		return
	}
}
