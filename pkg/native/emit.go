// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package native

import (
	"time"

	"github.com/black-desk/fswatch/pkg/pool"
)

// scrub is written over text buffers once a callback returns.
const scrub = 0xA5

var buffers = pool.New(
	func() *[]byte {
		buf := make([]byte, 0, 256)
		return &buf
	},
	func(buf *[]byte) *[]byte {
		b := (*buf)[:cap(*buf)]
		for i := range b {
			b[i] = scrub
		}
		*buf = b[:0]
		return buf
	},
)

// Emitter delivers events to a Callback the way a C watcher would:
// text is passed as NUL-terminated bytes in a scratch buffer
// that is scrubbed right after the callback returns.
// It is used by watchers implemented in Go.
type Emitter struct {
	cb  Callback
	cx  uintptr
	now func() int64
}

func NewEmitter(cb Callback, cx uintptr) *Emitter {
	return &Emitter{
		cb: cb,
		cx: cx,
		now: func() int64 {
			return time.Now().UnixNano()
		},
	}
}

// Emit calls the callback once. It must not be called concurrently
// with itself if the receiver relies on ordering.
func (e *Emitter) Emit(
	effectType, pathType int8, pathName string, associatedPathName *string,
) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	ev := RawEvent{
		EffectTime: e.now(),
		EffectType: effectType,
		PathType:   pathType,
	}
	*buf = ev.Fill(*buf, pathName, associatedPathName)

	e.cb(&ev, e.cx)
}

// Live emits the status event opening a watch on root.
func (e *Emitter) Live(root string, ok bool) {
	status := StatusLive
	if !ok {
		status = StatusLiveFailed
	}
	e.Emit(EffectCreate, PathWatcher, status+root, nil)
}

// Die emits the status event closing a watch on root.
func (e *Emitter) Die(root string, ok bool) {
	status := StatusDie
	if !ok {
		status = StatusDieFailed
	}
	e.Emit(EffectDestroy, PathWatcher, status+root, nil)
}
