// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch

import (
	"context"
	"io"
	"iter"

	"github.com/black-desk/fswatch/pkg/types"
)

// Next waits for the next event in arrival order.
// It returns io.EOF once the watch is closed, and ctx.Err() if ctx is done
// first; the latter leaves the watch open.
func (w *Watch) Next(ctx context.Context) (ev types.Event, err error) {
	ep := w.ep

	select {
	case <-ep.done:
		err = io.EOF
		return
	default:
	}

	select {
	case ev = <-ep.events:
	case <-ep.done:
		err = io.EOF
		return
	case <-ctx.Done():
		err = ctx.Err()
		return
	}

	// Close may have started while we were receiving.
	select {
	case <-ep.done:
		ep.drop(ev)
		ev = types.Event{}
		err = io.EOF
	default:
	}

	return
}

// All returns the events as a sequence that ends when the watch is closed.
// Stopping the iteration early, or ctx being done, closes the watch:
// the sequence cannot be resumed.
func (w *Watch) All(ctx context.Context) iter.Seq[types.Event] {
	return func(yield func(types.Event) bool) {
		defer w.dispose()

		for {
			ev, err := w.Next(ctx)
			if err != nil {
				return
			}

			if !yield(ev) {
				return
			}
		}
	}
}
