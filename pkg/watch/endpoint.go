// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch

import (
	"sync"
	"sync/atomic"

	"github.com/black-desk/fswatch/pkg/types"
	"go.uber.org/zap"
)

// endpoint is the hand-off between native callbacks and the consumer.
// events is bounded: a send blocks until the consumer takes
// the previous event or the endpoint is shut down.
type endpoint struct {
	events chan types.Event
	done   chan struct{}
	once   sync.Once

	dropped atomic.Uint64

	log *zap.SugaredLogger
}

func newEndpoint(capacity int, log *zap.SugaredLogger) *endpoint {
	return &endpoint{
		events: make(chan types.Event, capacity),
		done:   make(chan struct{}),
		log:    log,
	}
}

// send enqueues ev. It reports false, counting ev as dropped,
// if the endpoint is or gets shut down first.
func (e *endpoint) send(ev types.Event) bool {
	select {
	case <-e.done:
		e.drop(ev)
		return false
	default:
	}

	select {
	case e.events <- ev:
		return true
	case <-e.done:
		e.drop(ev)
		return false
	}
}

func (e *endpoint) drop(ev types.Event) {
	e.dropped.Add(1)
	e.log.Debugw("Event dropped, watch is closing.",
		"event", ev,
	)
}

// shutdown unblocks pending sends and makes later ones fail.
func (e *endpoint) shutdown() {
	e.once.Do(func() {
		close(e.done)
	})
}

// registry maps context values given to native watchers to endpoints.
// Native code only ever borrows an endpoint through a lookup;
// once released, the context value resolves to nothing.
type registry struct {
	next      atomic.Uintptr
	endpoints sync.Map
}

var endpoints registry

func (r *registry) register(e *endpoint) (cx uintptr) {
	cx = r.next.Add(1)
	r.endpoints.Store(cx, e)
	return
}

func (r *registry) lookup(cx uintptr) (e *endpoint, ok bool) {
	v, ok := r.endpoints.Load(cx)
	if !ok {
		return
	}

	e = v.(*endpoint)
	return
}

func (r *registry) release(cx uintptr) {
	r.endpoints.Delete(cx)
}
