// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsnotifywatcher

import (
	"os"
	"path/filepath"

	"github.com/black-desk/fswatch/pkg/convert"
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/fsnotify/fsnotify"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Rename pairing", func() {
	var (
		wt     *watch
		fsw    *fsnotify.Watcher
		events []types.Event
		root   string
	)

	BeforeEach(func() {
		var err error
		fsw, err = fsnotify.NewWatcher()
		Expect(err).To(Succeed())

		root = GinkgoT().TempDir()
		Expect(os.Mkdir(filepath.Join(root, "sub"), 0o755)).To(Succeed())

		events = nil
		wt = newWatch(root, fsw, func(ev *native.RawEvent, _ uintptr) {
			events = append(events, convert.FromRaw(ev))
		}, 0, nil, zap.NewNop().Sugar())
		Expect(wt.addTree(root)).To(Succeed())
	})

	AfterEach(func() {
		wt.stopTimer()
		Expect(fsw.Close()).To(Succeed())
	})

	renamed := func(path string) {
		wt.handle(fsnotify.Event{Name: path, Op: fsnotify.Rename})
	}

	created := func(path string) {
		wt.handle(fsnotify.Event{Name: path, Op: fsnotify.Create})
	}

	It("should pair a file moved within its directory", func() {
		to := filepath.Join(root, "b.txt")
		Expect(os.WriteFile(to, nil, 0o644)).To(Succeed())

		renamed(filepath.Join(root, "a.txt"))
		created(to)

		Expect(events).To(HaveLen(1))
		Expect(events[0].EffectType).To(Equal(types.EffectTypeRename))
		Expect(events[0].PathType).To(Equal(types.PathTypeFile))
		Expect(events[0].PathName).To(Equal(filepath.Join(root, "a.txt")))
		Expect(events[0].AssociatedPathName).To(HaveValue(Equal(to)))
	})

	It("should not pair a directory moved out with a file created", func() {
		sub := filepath.Join(root, "sub")
		Expect(os.Rename(sub, filepath.Join(GinkgoT().TempDir(), "sub"))).To(Succeed())
		c := filepath.Join(root, "c.txt")
		Expect(os.WriteFile(c, nil, 0o644)).To(Succeed())

		renamed(sub)
		created(c)

		Expect(events).To(HaveLen(2))
		Expect(events[0].EffectType).To(Equal(types.EffectTypeRename))
		Expect(events[0].PathType).To(Equal(types.PathTypeDir))
		Expect(events[0].PathName).To(Equal(sub))
		Expect(events[0].AssociatedPathName).To(BeNil())
		Expect(events[1].EffectType).To(Equal(types.EffectTypeCreate))
		Expect(events[1].PathName).To(Equal(c))
	})

	It("should not pair a file moved out with a directory created", func() {
		d := filepath.Join(root, "d")
		Expect(os.Mkdir(d, 0o755)).To(Succeed())

		renamed(filepath.Join(root, "a.txt"))
		created(d)

		Expect(events).To(HaveLen(2))
		Expect(events[0].AssociatedPathName).To(BeNil())
		Expect(events[1].EffectType).To(Equal(types.EffectTypeCreate))
		Expect(events[1].PathType).To(Equal(types.PathTypeDir))
	})

	It("should not pair when the old name still exists", func() {
		a := filepath.Join(root, "a.txt")
		b := filepath.Join(root, "b.txt")
		Expect(os.WriteFile(a, nil, 0o644)).To(Succeed())
		Expect(os.WriteFile(b, nil, 0o644)).To(Succeed())

		renamed(a)
		created(b)

		Expect(events).To(HaveLen(2))
		Expect(events[0].AssociatedPathName).To(BeNil())
		Expect(events[1].EffectType).To(Equal(types.EffectTypeCreate))
	})

	It("should not pair across directories", func() {
		to := filepath.Join(root, "sub", "b.txt")
		Expect(os.WriteFile(to, nil, 0o644)).To(Succeed())

		renamed(filepath.Join(root, "a.txt"))
		created(to)

		Expect(events).To(HaveLen(2))
		Expect(events[0].AssociatedPathName).To(BeNil())
		Expect(events[1].PathName).To(Equal(to))
	})

	It("should report a lone rename when another event comes first", func() {
		b := filepath.Join(root, "b.txt")
		Expect(os.WriteFile(b, nil, 0o644)).To(Succeed())

		renamed(filepath.Join(root, "a.txt"))
		wt.handle(fsnotify.Event{Name: b, Op: fsnotify.Write})
		created(b)

		Expect(events).To(HaveLen(3))
		Expect(events[0].EffectType).To(Equal(types.EffectTypeRename))
		Expect(events[0].AssociatedPathName).To(BeNil())
		Expect(events[1].EffectType).To(Equal(types.EffectTypeModify))
		Expect(events[2].EffectType).To(Equal(types.EffectTypeCreate))
	})
})
