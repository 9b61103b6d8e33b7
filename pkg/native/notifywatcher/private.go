// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"slices"
	"time"

	"github.com/black-desk/fswatch/pkg/native"
	"github.com/rjeczalik/notify"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

type move uint8

const (
	moveNone move = iota
	moveFrom
	moveTo
)

// decoded is a notify event reduced to what the native event needs.
type decoded struct {
	path   string
	effect int8
	move   move
	cookie uint32
	// isDir is only meaningful when dirKnown is set.
	isDir    bool
	dirKnown bool
}

type watch struct {
	root     string
	eventsIn chan notify.EventInfo
	emitter  *native.Emitter
	stop     chan struct{}
	wg       conc.WaitGroup
	log      *zap.SugaredLogger

	// pending holds rename halves waiting for their other half,
	// keyed by inotify cookie. The halves may come in either order.
	pending map[uint32]pendingMove
	timer   *time.Timer
}

type pendingMove struct {
	d  decoded
	at time.Time
}

func newWatch(
	root string, cb native.Callback, cx uintptr, buffer int,
	log *zap.SugaredLogger,
) *watch {
	return &watch{
		root:     root,
		eventsIn: make(chan notify.EventInfo, buffer),
		emitter:  native.NewEmitter(cb, cx),
		stop:     make(chan struct{}),
		log:      log,
		pending:  map[uint32]pendingMove{},
	}
}

func (wt *watch) run() {
	wt.emitter.Live(wt.root, true)
	defer wt.emitter.Die(wt.root, true)
	defer wt.flushAll()

	for {
		var expired <-chan time.Time
		if wt.timer != nil {
			expired = wt.timer.C
		}

		select {
		case <-wt.stop:
			return
		case now := <-expired:
			wt.timer = nil
			wt.expire(now)
		case ei := <-wt.eventsIn:
			wt.log.Debugw("Notify event received.",
				"event", ei.Event(),
				"path", ei.Path(),
			)
			wt.handle(decode(ei), time.Now())
		}
	}
}

func (wt *watch) handle(d decoded, now time.Time) {
	if d.move == moveNone || d.cookie == 0 {
		wt.emit(d)
		return
	}

	half, ok := wt.pending[d.cookie]
	if ok && half.d.move != d.move {
		delete(wt.pending, d.cookie)

		from, to := half.d, d
		if from.move == moveTo {
			from, to = to, from
		}
		wt.emitRename(from, to)
		return
	}

	if ok {
		wt.emit(half.d)
	}

	wt.pending[d.cookie] = pendingMove{d: d, at: now}
	wt.arm(now)
}

// expire reports the rename halves that waited renameWindow for their
// other half, e.g. a file moved out of or into the watched tree.
func (wt *watch) expire(now time.Time) {
	wt.flush(func(m pendingMove) bool {
		return now.Sub(m.at) >= renameWindow
	})

	if len(wt.pending) != 0 {
		wt.arm(now)
	}
}

func (wt *watch) flushAll() {
	wt.flush(func(pendingMove) bool { return true })
	wt.stopTimer()
}

// flush reports the selected pending halves alone, oldest first.
func (wt *watch) flush(selected func(pendingMove) bool) {
	var moves []pendingMove
	for cookie, m := range wt.pending {
		if !selected(m) {
			continue
		}

		moves = append(moves, m)
		delete(wt.pending, cookie)
	}

	slices.SortFunc(moves, func(a, b pendingMove) int {
		return a.at.Compare(b.at)
	})

	for _, m := range moves {
		wt.emit(m.d)
	}
}

// arm makes sure the timer fires when the oldest pending half expires.
func (wt *watch) arm(now time.Time) {
	if wt.timer != nil {
		return
	}

	oldest := now
	for _, m := range wt.pending {
		if m.at.Before(oldest) {
			oldest = m.at
		}
	}

	wt.timer = time.NewTimer(renameWindow - now.Sub(oldest))
}

func (wt *watch) stopTimer() {
	if wt.timer == nil {
		return
	}

	wt.timer.Stop()
	wt.timer = nil
}

func (wt *watch) emitRename(from, to decoded) {
	pathType := native.PathWatcher
	if from.path != wt.root {
		if from.dirKnown {
			to.isDir, to.dirKnown = from.isDir, true
		}
		to.effect = native.EffectRename
		pathType = wt.pathType(to)
	}

	newName := to.path
	wt.emitter.Emit(native.EffectRename, pathType, from.path, &newName)
}

func (wt *watch) emit(d decoded) {
	wt.emitter.Emit(d.effect, wt.pathType(d), d.path, nil)
}

func (wt *watch) pathType(d decoded) int8 {
	if d.path == wt.root &&
		(d.effect == native.EffectDestroy || d.effect == native.EffectRename) {
		return native.PathWatcher
	}

	if d.dirKnown && d.isDir {
		return native.PathDir
	}

	pathType, ok := native.Classify(d.path)
	if !ok && d.dirKnown {
		return native.PathFile
	}

	return pathType
}
