// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	. "github.com/black-desk/fswatch/internal/test/ginkgo-helper"
	. "github.com/black-desk/fswatch/internal/test/gomega-helper"
	"github.com/black-desk/fswatch/internal/tests/logger"
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/black-desk/fswatch/pkg/native/fsnotifywatcher"
	"github.com/black-desk/fswatch/pkg/native/notifywatcher"
	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/black-desk/fswatch/pkg/watch"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"go.uber.org/zap"
)

func newNotify(log *zap.SugaredLogger) (native.Watcher, error) {
	return notifywatcher.New(notifywatcher.WithLogger(log))
}

func newFsnotify(log *zap.SugaredLogger) (native.Watcher, error) {
	return fsnotifywatcher.New(fsnotifywatcher.WithLogger(log))
}

var _ = Describe("Watching a directory", func() {
	ContextTable("backed by %s",
		func(backend string, newNative func(*zap.SugaredLogger) (native.Watcher, error)) {
			var (
				w      *Watch
				root   string
				ctx    context.Context
				cancel context.CancelFunc
			)

			BeforeEach(func() {
				if backend == "notify" && runtime.GOOS != "linux" {
					Skip("rename pairing needs inotify cookies")
				}

				log, err := logger.ProvideLogger()
				Expect(err).To(Succeed())

				nw, err := newNative(log)
				Expect(err).To(Succeed())

				root, err = filepath.EvalSymlinks(GinkgoT().TempDir())
				Expect(err).To(Succeed())

				ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)

				w, err = Open(root, nw, WithLogger(log), WithCapacity(64))
				Expect(err).To(Succeed())
			})

			AfterEach(func() {
				if w != nil {
					Expect(w.Close()).To(Succeed())
					w = nil
				}
				if cancel != nil {
					cancel()
				}
			})

			// until reads file events, skipping watcher status,
			// up to and including the first one matching m.
			until := func(m func(types.Event) bool) (seen []types.Event) {
				for {
					ev, err := w.Next(ctx)
					Expect(err).To(Succeed())
					if ev.PathType == types.PathTypeWatcher {
						continue
					}

					seen = append(seen, ev)
					if m(ev) {
						return
					}
				}
			}

			It("should report a file through its whole life.", func() {
				a := filepath.Join(root, "a.txt")
				b := filepath.Join(root, "b.txt")

				f, err := os.Create(a)
				Expect(err).To(Succeed())
				Expect(f.Close()).To(Succeed())

				seen := until(func(ev types.Event) bool {
					return ev.EffectType == types.EffectTypeCreate && ev.PathName == a
				})
				Expect(seen[len(seen)-1]).To(MatchFields(IgnoreExtras, Fields{
					"PathType":           Equal(types.PathTypeFile),
					"AssociatedPathName": BeNil(),
				}))

				Expect(os.Rename(a, b)).To(Succeed())

				seen = until(func(ev types.Event) bool {
					return ev.EffectType == types.EffectTypeRename
				})
				Expect(seen).NotTo(ContainElement(MatchFields(IgnoreExtras, Fields{
					"EffectType": Equal(types.EffectTypeCreate),
					"PathName":   Equal(a),
				})))
				Expect(seen[len(seen)-1]).To(MatchFields(IgnoreExtras, Fields{
					"PathType":           Equal(types.PathTypeFile),
					"PathName":           Equal(a),
					"AssociatedPathName": PointTo(Equal(b)),
				}))

				Expect(os.Remove(b)).To(Succeed())

				seen = until(func(ev types.Event) bool {
					return ev.EffectType == types.EffectTypeDestroy
				})
				Expect(seen[len(seen)-1].PathName).To(Equal(b))
				Expect(seen).NotTo(ContainElement(MatchFields(IgnoreExtras, Fields{
					"EffectType": Equal(types.EffectTypeRename),
				})))

				Expect(w.Dropped()).To(BeZero())
			})

			It("should yield nothing once iteration stops.", func() {
				Expect(os.WriteFile(filepath.Join(root, "c.txt"), nil, 0o644)).To(Succeed())

				var got []types.Event
				for ev := range w.All(ctx) {
					if ev.PathType == types.PathTypeWatcher {
						continue
					}
					got = append(got, ev)
					break
				}
				Expect(got).To(HaveLen(1))
				Expect(w.Done()).To(BeClosed())

				Expect(os.WriteFile(filepath.Join(root, "d.txt"), nil, 0o644)).To(Succeed())

				Consistently(func() error {
					_, err := w.Next(ctx)
					return err
				}, 200*time.Millisecond).Should(MatchErr(io.EOF))
			})
		},
		ContextTableEntry("notify", newNotify).WithFmt("notify"),
		ContextTableEntry("fsnotify", newFsnotify).WithFmt("fsnotify"),
	)
})
