// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsnotifywatcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/black-desk/fswatch/pkg/filter"
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/fsnotify/fsnotify"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// StatusOverflow is reported as a watcher event
// when the kernel queue overflowed and events were lost.
const StatusOverflow = "e/self/overflow@"

type watch struct {
	root    string
	fsw     *fsnotify.Watcher
	emitter *native.Emitter
	exclude *filter.Filter
	wg      conc.WaitGroup
	log     *zap.SugaredLogger

	// dirs holds every directory added to fsw,
	// so that removed paths can still be told apart.
	dirs map[string]struct{}

	pending *string
	timer   *time.Timer
}

func newWatch(
	root string, fsw *fsnotify.Watcher, cb native.Callback, cx uintptr,
	exclude *filter.Filter, log *zap.SugaredLogger,
) *watch {
	return &watch{
		root:    root,
		fsw:     fsw,
		emitter: native.NewEmitter(cb, cx),
		exclude: exclude,
		log:     log,
		dirs:    map[string]struct{}{},
	}
}

func (wt *watch) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Entries may vanish while walking.
			return nil
		}

		if !d.IsDir() {
			if path == root {
				return wt.fsw.Add(path)
			}
			return nil
		}

		if path != root && wt.exclude.Excluded(path) {
			return filepath.SkipDir
		}

		if err := wt.fsw.Add(path); err != nil {
			return err
		}

		wt.dirs[path] = struct{}{}
		return nil
	})
}

func (wt *watch) run() {
	wt.emitter.Live(wt.root, true)
	defer wt.emitter.Die(wt.root, true)
	defer wt.flush()

	events := wt.fsw.Events
	errs := wt.fsw.Errors

	for events != nil || errs != nil {
		var expired <-chan time.Time
		if wt.timer != nil {
			expired = wt.timer.C
		}

		select {
		case <-expired:
			wt.timer = nil
			wt.flush()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			wt.log.Debugw("Fsnotify event received.",
				"event", ev,
			)
			wt.handle(ev)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			wt.handleError(err)
		}
	}
}

func (wt *watch) handleError(err error) {
	wt.log.Warnw("Fsnotify reported an error.",
		"path", wt.root,
		"error", err,
	)

	if errors.Is(err, fsnotify.ErrEventOverflow) {
		wt.emitter.Emit(native.EffectOther, native.PathWatcher, StatusOverflow+wt.root, nil)
	}
}

func (wt *watch) handle(ev fsnotify.Event) {
	path := ev.Name

	switch {
	case ev.Has(fsnotify.Create):
		isDir := wt.addIfDir(path)

		if wt.pending != nil && wt.pairs(*wt.pending, path, isDir) {
			from := *wt.pending
			wt.pending = nil
			wt.stopTimer()

			wt.forget(from)
			wt.emitter.Emit(native.EffectRename, wt.pathType(path, isDir), from, &path)
			return
		}

		wt.flush()
		wt.emitter.Emit(native.EffectCreate, wt.pathType(path, isDir), path, nil)

	case ev.Has(fsnotify.Rename):
		wt.flush()
		wt.pending = &path
		wt.timer = time.NewTimer(renameWindow)

	case ev.Has(fsnotify.Remove):
		wt.flush()
		pathType := wt.gonePathType(path)
		wt.forget(path)
		wt.emitter.Emit(native.EffectDestroy, pathType, path, nil)

	case ev.Has(fsnotify.Write):
		wt.flush()
		wt.emitter.Emit(native.EffectModify, wt.pathType(path, false), path, nil)

	case ev.Has(fsnotify.Chmod):
		wt.flush()
		wt.emitter.Emit(native.EffectOwner, wt.pathType(path, false), path, nil)

	default:
		wt.flush()
		wt.emitter.Emit(native.EffectOther, wt.pathType(path, false), path, nil)
	}
}

// pairs reports whether the create of to completes the rename of from.
// fsnotify drops the inotify cookie, so this is a guess: both names share
// a directory, from is gone and both are of the same kind.
func (wt *watch) pairs(from, to string, isDir bool) bool {
	if filepath.Dir(from) != filepath.Dir(to) {
		return false
	}

	if _, err := os.Lstat(from); err == nil {
		return false
	}

	_, wasDir := wt.dirs[from]
	// Excluded directories are never tracked.
	if isDir && !wasDir && wt.exclude.Excluded(from) {
		return true
	}

	return wasDir == isDir
}

// flush reports a rename whose new name never showed up,
// e.g. a file moved out of the watched tree.
func (wt *watch) flush() {
	if wt.pending == nil {
		return
	}

	path := *wt.pending
	wt.pending = nil
	wt.stopTimer()

	pathType := wt.gonePathType(path)
	wt.forget(path)
	wt.emitter.Emit(native.EffectRename, pathType, path, nil)
}

func (wt *watch) stopTimer() {
	if wt.timer == nil {
		return
	}

	wt.timer.Stop()
	wt.timer = nil
}

// addIfDir starts watching path if it is a directory.
func (wt *watch) addIfDir(path string) bool {
	if pathType, _ := native.Classify(path); pathType != native.PathDir {
		return false
	}

	if wt.exclude.Excluded(path) {
		return true
	}

	if err := wt.addTree(path); err != nil {
		wt.log.Warnw("Failed to watch new directory.",
			"path", path,
			"error", err,
		)
	}

	return true
}

func (wt *watch) forget(path string) {
	if _, ok := wt.dirs[path]; !ok {
		return
	}

	delete(wt.dirs, path)
	// fsnotify already dropped the watch if the directory is gone.
	_ = wt.fsw.Remove(path)
}

func (wt *watch) gonePathType(path string) int8 {
	if path == wt.root {
		return native.PathWatcher
	}

	if _, ok := wt.dirs[path]; ok {
		return native.PathDir
	}

	return native.PathFile
}

func (wt *watch) pathType(path string, isDir bool) int8 {
	if isDir {
		return native.PathDir
	}

	pathType, _ := native.Classify(path)
	return pathType
}
