// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatcher

import (
	"os"
	"path/filepath"
	"time"

	"github.com/black-desk/fswatch/pkg/convert"
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Rename pairing", func() {
	var (
		wt     *watch
		events []types.Event
		root   string
		from   decoded
		to     decoded
		t0     time.Time
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(root, "b.txt"), nil, 0o644)).To(Succeed())

		events = nil
		wt = newWatch(root, func(ev *native.RawEvent, _ uintptr) {
			events = append(events, convert.FromRaw(ev))
		}, 0, 0, zap.NewNop().Sugar())

		from = decoded{
			path: filepath.Join(root, "a.txt"), effect: native.EffectRename,
			move: moveFrom, cookie: 60, dirKnown: true,
		}
		to = decoded{
			path: filepath.Join(root, "b.txt"), effect: native.EffectRename,
			move: moveTo, cookie: 60, dirKnown: true,
		}
		t0 = time.Now()
	})

	AfterEach(func() {
		wt.stopTimer()
	})

	paired := func() types.Event {
		newName := to.path
		return types.Event{
			EffectTime:         events[0].EffectTime,
			PathName:           from.path,
			AssociatedPathName: &newName,
			EffectType:         types.EffectTypeRename,
			PathType:           types.PathTypeFile,
		}
	}

	It("should pair the old name arriving first", func() {
		wt.handle(from, t0)
		Expect(events).To(BeEmpty())
		wt.handle(to, t0)

		Expect(events).To(HaveLen(1))
		Expect(events[0]).To(Equal(paired()))
		Expect(wt.pending).To(BeEmpty())
	})

	It("should pair the new name arriving first", func() {
		wt.handle(to, t0)
		Expect(events).To(BeEmpty())
		wt.handle(from, t0)

		Expect(events).To(HaveLen(1))
		Expect(events[0]).To(Equal(paired()))
		Expect(wt.pending).To(BeEmpty())
	})

	It("should let other events pass while a half waits", func() {
		created := decoded{
			path: filepath.Join(root, "b.txt"), effect: native.EffectCreate,
			dirKnown: true,
		}

		wt.handle(to, t0)
		wt.handle(created, t0)
		wt.handle(from, t0)

		Expect(events).To(HaveLen(2))
		Expect(events[0].EffectType).To(Equal(types.EffectTypeCreate))
		Expect(events[1].EffectType).To(Equal(types.EffectTypeRename))
		Expect(events[1].PathName).To(Equal(from.path))
		Expect(events[1].AssociatedPathName).To(HaveValue(Equal(to.path)))
	})

	It("should report a lone half once the window has passed", func() {
		wt.handle(from, t0)

		wt.expire(t0.Add(renameWindow / 2))
		Expect(events).To(BeEmpty())

		wt.expire(t0.Add(renameWindow))
		Expect(events).To(HaveLen(1))
		Expect(events[0].EffectType).To(Equal(types.EffectTypeRename))
		Expect(events[0].PathName).To(Equal(from.path))
		Expect(events[0].AssociatedPathName).To(BeNil())
		Expect(wt.pending).To(BeEmpty())
	})

	It("should report lone halves oldest first when stopping", func() {
		other := to
		other.cookie = 61

		wt.handle(from, t0)
		wt.handle(other, t0.Add(time.Millisecond))
		wt.flushAll()

		Expect(events).To(HaveLen(2))
		Expect(events[0].PathName).To(Equal(from.path))
		Expect(events[1].PathName).To(Equal(other.path))
		Expect(wt.timer).To(BeNil())
	})

	It("should report the watched root moving away as the watcher", func() {
		from.path = root
		from.dirKnown, from.isDir = true, true
		wt.handle(from, t0)
		wt.handle(to, t0)

		Expect(events).To(HaveLen(1))
		Expect(events[0].PathType).To(Equal(types.PathTypeWatcher))
	})
})
