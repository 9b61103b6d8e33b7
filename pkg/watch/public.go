// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch

import (
	. "github.com/black-desk/lib/go/errwrap"
)

// Close stops the native watch. It blocks until the native watcher
// guarantees no further callback, then ends the event stream.
// Only the first call reaches the native watcher;
// later calls wait for it and return nil.
func (w *Watch) Close() (err error) {
	defer Wrap(&err, "close watch on %s", w.path)

	err = w.close()
	return
}

func (w *Watch) Path() string {
	return w.path
}

// Dropped is the number of events discarded because they were delivered
// while the watch was closing.
func (w *Watch) Dropped() uint64 {
	return w.ep.dropped.Load()
}

// Done is closed once Close has started.
func (w *Watch) Done() <-chan struct{} {
	return w.ep.done
}
