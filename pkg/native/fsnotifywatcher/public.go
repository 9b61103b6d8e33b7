// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsnotifywatcher

import (
	"os"
	"path/filepath"

	"github.com/black-desk/fswatch/pkg/native"
	"github.com/fsnotify/fsnotify"
)

func (w *Watcher) Open(path string, cb native.Callback, cx uintptr) native.Handle {
	root, err := filepath.Abs(path)
	if err != nil {
		w.log.Errorw("Failed to resolve path to watch.",
			"path", path,
			"error", err,
		)
		return 0
	}

	if _, err = os.Stat(root); err != nil {
		w.log.Errorw("Failed to stat path to watch.",
			"path", root,
			"error", err,
		)
		return 0
	}

	fsw, err := fsnotify.NewBufferedWatcher(uint(w.buffer))
	if err != nil {
		w.log.Errorw("Failed to create fsnotify watcher.",
			"error", err,
		)
		return 0
	}

	wt := newWatch(root, fsw, cb, cx, w.exclude, w.log)

	if err = wt.addTree(root); err != nil {
		w.log.Errorw("Failed to watch path.",
			"path", root,
			"error", err,
		)
		_ = fsw.Close()
		return 0
	}

	w.mu.Lock()
	w.next++
	h := w.next
	w.watches[h] = wt
	w.mu.Unlock()

	wt.wg.Go(wt.run)

	w.log.Debugw("Start watching.",
		"path", root,
		"handle", h,
	)

	return h
}

func (w *Watcher) Close(h native.Handle) bool {
	w.mu.Lock()
	wt, ok := w.watches[h]
	delete(w.watches, h)
	w.mu.Unlock()

	if !ok {
		w.log.Warnw("Close of an unknown handle.",
			"handle", h,
		)
		return false
	}

	ok = true

	// Closing the fsnotify watcher closes its channels, which ends run.
	if err := wt.fsw.Close(); err != nil {
		w.log.Errorw("Failed to close fsnotify watcher.",
			"path", wt.root,
			"error", err,
		)
		ok = false
	}

	if recovered := wt.wg.WaitAndRecover(); recovered != nil {
		w.log.Errorw("Event delivery panicked.",
			"path", wt.root,
			"panic", recovered.Value,
			"stack", string(recovered.Stack),
		)
		ok = false
	}

	w.log.Debugw("Stop watching.",
		"path", wt.root,
		"handle", h,
	)

	return ok
}
