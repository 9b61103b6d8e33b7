// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fakenative provides a scriptable native.Watcher for tests.
// Events are delivered synchronously on the goroutine calling Fire,
// which plays the part of a native watcher thread.
package fakenative

import (
	"sync"
	"sync/atomic"

	"github.com/black-desk/fswatch/pkg/native"
)

type Watcher struct {
	// FailOpen makes Open return the null handle.
	FailOpen bool
	// FailClose makes Close report failure after stopping the watch.
	FailClose bool

	mu      sync.Mutex
	next    native.Handle
	watches map[native.Handle]*watch

	opens  atomic.Int32
	closes atomic.Int32
}

type watch struct {
	path     string
	cb       native.Callback
	cx       uintptr
	emitter  *native.Emitter
	closed   bool
	inflight sync.WaitGroup
}

var _ native.Watcher = (*Watcher)(nil)

func New() *Watcher {
	return &Watcher{watches: map[native.Handle]*watch{}}
}

func (w *Watcher) Open(path string, cb native.Callback, cx uintptr) native.Handle {
	w.opens.Add(1)

	if w.FailOpen {
		return 0
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.next++
	w.watches[w.next] = &watch{
		path:    path,
		cb:      cb,
		cx:      cx,
		emitter: native.NewEmitter(cb, cx),
	}
	return w.next
}

// Close waits for callbacks in flight. Closing a handle twice fails.
func (w *Watcher) Close(h native.Handle) bool {
	w.closes.Add(1)

	w.mu.Lock()
	wt, ok := w.watches[h]
	if !ok || wt.closed {
		w.mu.Unlock()
		return false
	}
	wt.closed = true
	w.mu.Unlock()

	wt.inflight.Wait()

	return !w.FailClose
}

// Fire delivers one event for h and returns once the callback returned.
// It reports false without calling back if h is closed.
func (w *Watcher) Fire(
	h native.Handle,
	effectType, pathType int8,
	pathName string, associatedPathName *string,
) bool {
	wt := w.begin(h)
	if wt == nil {
		return false
	}
	defer wt.inflight.Done()

	wt.emitter.Emit(effectType, pathType, pathName, associatedPathName)
	return true
}

// FireRaw is Fire with a caller made descriptor.
func (w *Watcher) FireRaw(h native.Handle, ev *native.RawEvent) bool {
	wt := w.begin(h)
	if wt == nil {
		return false
	}
	defer wt.inflight.Done()

	wt.cb(ev, wt.cx)
	return true
}

// FireLate calls back for h even if it is closed,
// like a native watcher breaking its contract would.
func (w *Watcher) FireLate(h native.Handle, effectType, pathType int8, pathName string) {
	w.mu.Lock()
	wt, ok := w.watches[h]
	w.mu.Unlock()
	if !ok {
		return
	}

	wt.emitter.Emit(effectType, pathType, pathName, nil)
}

func (w *Watcher) begin(h native.Handle) *watch {
	w.mu.Lock()
	defer w.mu.Unlock()

	wt, ok := w.watches[h]
	if !ok || wt.closed {
		return nil
	}

	wt.inflight.Add(1)
	return wt
}

// Last is the most recently opened handle.
func (w *Watcher) Last() native.Handle {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.next
}

func (w *Watcher) Path(h native.Handle) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	wt, ok := w.watches[h]
	if !ok {
		return ""
	}
	return wt.path
}

func (w *Watcher) Opens() int {
	return int(w.opens.Load())
}

func (w *Watcher) Closes() int {
	return int(w.closes.Load())
}
