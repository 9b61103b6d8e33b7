// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package libwatcher

import (
	"sync"
	"sync/atomic"

	"github.com/black-desk/fswatch/pkg/native"
)

type slot struct {
	cb native.Callback
	cx uintptr
}

// slotTable maps the context pointer handed to the library
// to the callback of one watch.
type slotTable struct {
	next  atomic.Uintptr
	slots sync.Map
}

var slots slotTable

func (t *slotTable) add(cb native.Callback, cx uintptr) uintptr {
	id := t.next.Add(1)
	t.slots.Store(id, slot{cb: cb, cx: cx})
	return id
}

func (t *slotTable) remove(id uintptr) {
	t.slots.Delete(id)
}

// dispatch runs on the library's threads.
// Events for a removed slot are dropped.
func (t *slotTable) dispatch(ev *native.RawEvent, id uintptr) {
	v, ok := t.slots.Load(id)
	if !ok {
		return
	}

	s := v.(slot)
	s.cb(ev, s.cx)
}
