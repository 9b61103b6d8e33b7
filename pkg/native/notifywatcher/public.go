// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"os"
	"path/filepath"

	"github.com/black-desk/fswatch/pkg/native"
	"github.com/rjeczalik/notify"
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

	info, err := os.Stat(root)
	if err != nil {
		w.log.Errorw("Failed to stat path to watch.",
			"path", root,
			"error", err,
		)
		return 0
	}

	wt := newWatch(root, cb, cx, w.buffer, w.log)

	target := root
	if info.IsDir() {
		target = filepath.Join(root, "...")
	}

	err = notify.Watch(target, wt.eventsIn, watchedEvents...)
	if err != nil {
		w.log.Errorw("Failed to watch path.",
			"path", target,
			"error", err,
		)
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

	// When Stop returns, eventsIn receives nothing more.
	notify.Stop(wt.eventsIn)
	close(wt.stop)

	if recovered := wt.wg.WaitAndRecover(); recovered != nil {
		w.log.Errorw("Event delivery panicked.",
			"path", wt.root,
			"panic", recovered.Value,
			"stack", string(recovered.Stack),
		)
		return false
	}

	w.log.Debugw("Stop watching.",
		"path", wt.root,
		"handle", h,
	)

	return true
}
