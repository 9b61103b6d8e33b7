// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package libwatcher

import (
	"github.com/black-desk/fswatch/pkg/native"
)

func (w *Watcher) Open(path string, cb native.Callback, cx uintptr) native.Handle {
	fn, err := trampoline()
	if err != nil {
		w.log.Errorw("No callback trampoline.",
			"error", err,
		)
		return 0
	}

	id := slots.add(cb, cx)

	raw := w.lib.open(path, fn, id)
	if raw == 0 {
		slots.remove(id)
		w.log.Errorw("libwatcher-c failed to open a watch.",
			"path", path,
		)
		return 0
	}

	h := native.Handle(raw)

	w.mu.Lock()
	w.handles[h] = id
	w.mu.Unlock()

	w.log.Debugw("Start watching.",
		"path", path,
		"handle", h,
	)

	return h
}

func (w *Watcher) Close(h native.Handle) bool {
	w.mu.Lock()
	id, ok := w.handles[h]
	delete(w.handles, h)
	w.mu.Unlock()

	if !ok {
		w.log.Warnw("Close of an unknown handle.",
			"handle", h,
		)
		return false
	}

	// The library joins its worker before returning,
	// so the slot is not used after this.
	ok = w.lib.close(uintptr(h))
	slots.remove(id)

	w.log.Debugw("Stop watching.",
		"handle", h,
		"ok", ok,
	)

	return ok
}

// Library returns the path the library was loaded from.
func (w *Watcher) Library() string {
	return w.lib.path
}
