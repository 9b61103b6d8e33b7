// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch

import (
	"fmt"
)

func (r *resource) open() (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateUnopened {
		panic("this should never happened.")
	}

	r.ep = newEndpoint(r.capacity, r.log)
	r.cx = endpoints.register(r.ep)

	r.handle = r.native.Open(r.path, bridge, r.cx)
	if r.handle == 0 {
		endpoints.release(r.cx)
		r.ep.shutdown()
		r.state = stateClosed
		close(r.closed)
		err = fmt.Errorf("%w (path: %s)", ErrOpenFailed, r.path)
		return
	}

	r.state = stateOpen
	return
}

// close runs the native close at most once.
// Callers arriving while or after it runs wait for it and get nil.
func (r *resource) close() (err error) {
	r.mu.Lock()
	if r.state != stateOpen {
		r.mu.Unlock()
		<-r.closed
		return nil
	}
	r.state = stateClosed
	r.mu.Unlock()

	defer close(r.closed)

	// Unblock native threads waiting on a full channel,
	// otherwise the native close below may wait for them forever.
	r.ep.shutdown()

	ok := r.native.Close(r.handle)

	endpoints.release(r.cx)

	if !ok {
		r.err = fmt.Errorf("%w (path: %s)", ErrCloseFailed, r.path)
		err = r.err
		return
	}

	r.log.Debugw("Watch closed.",
		"path", r.path,
		"dropped", r.ep.dropped.Load(),
	)

	return
}

// dispose closes without reporting errors to anyone but the log.
func (r *resource) dispose() {
	err := r.close()
	if err == nil {
		return
	}

	r.log.Warnw("Failed to close watch on disposal.",
		"path", r.path,
		"error", err,
	)
}
