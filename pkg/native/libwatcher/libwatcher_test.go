// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package libwatcher_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/black-desk/fswatch/internal/test/gomega-helper"
	"github.com/black-desk/fswatch/internal/tests/logger"
	"github.com/black-desk/fswatch/pkg/convert"
	"github.com/black-desk/fswatch/pkg/native"
	. "github.com/black-desk/fswatch/pkg/native/libwatcher"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

func TestLibwatcher(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Libwatcher Suite")
}

var _ = Describe("Loading libwatcher-c", func() {
	It("should fail for a missing library", func() {
		missing := filepath.Join(GinkgoT().TempDir(), uuid.NewString()+".so")
		_, err := New(WithLibrary(missing))
		Expect(err).To(Or(MatchErr(ErrLibraryNotFound), MatchErr(ErrUnsupportedPlatform)))
	})

	It("should reject a nil logger", func() {
		_, err := New(WithLogger(nil))
		Expect(err).To(MatchErr(ErrLoggerMissing))
	})
})

// FSWATCH_LIBWATCHER names a libwatcher-c build to run against.
var _ = Describe("Watching with libwatcher-c", func() {
	var (
		w    *Watcher
		root string

		mu     sync.Mutex
		events []types.Event
	)

	snapshot := func() []types.Event {
		mu.Lock()
		defer mu.Unlock()
		return append([]types.Event(nil), events...)
	}

	BeforeEach(func() {
		library := os.Getenv("FSWATCH_LIBWATCHER")
		if library == "" {
			Skip("FSWATCH_LIBWATCHER is not set")
		}

		log, err := logger.ProvideLogger()
		Expect(err).To(Succeed())

		w, err = New(WithLibrary(library), WithLogger(log))
		Expect(err).To(Succeed())
		Expect(w.Library()).To(Equal(library))

		root = filepath.Join(GinkgoT().TempDir(), uuid.NewString())
		Expect(os.Mkdir(root, 0o755)).To(Succeed())
		root, err = filepath.EvalSymlinks(root)
		Expect(err).To(Succeed())

		mu.Lock()
		events = nil
		mu.Unlock()
	})

	It("should deliver events through the shared callback", func() {
		h := w.Open(root, func(ev *native.RawEvent, _ uintptr) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, convert.FromRaw(ev))
		}, 0)
		Expect(h).NotTo(BeZero())

		Eventually(snapshot, time.Second*5).Should(ContainElement(MatchFields(IgnoreExtras, Fields{
			"PathType": Equal(types.PathTypeWatcher),
			"PathName": HavePrefix(native.StatusLive),
		})))

		path := filepath.Join(root, "a.txt")
		Expect(os.WriteFile(path, []byte("a"), 0o644)).To(Succeed())

		Eventually(snapshot, time.Second*5).Should(ContainElement(MatchFields(IgnoreExtras, Fields{
			"EffectType": Equal(types.EffectTypeCreate),
			"PathType":   Equal(types.PathTypeFile),
			"PathName":   Equal(path),
		})))

		Expect(w.Close(h)).To(BeTrue())
		Expect(w.Close(h)).To(BeFalse())
	})

	It("should keep concurrent watches apart", func() {
		var a, b sync.Map

		ha := w.Open(root, func(ev *native.RawEvent, cx uintptr) {
			a.Store(convert.FromRaw(ev).PathName, cx)
		}, 1)
		other := GinkgoT().TempDir()
		hb := w.Open(other, func(ev *native.RawEvent, cx uintptr) {
			b.Store(convert.FromRaw(ev).PathName, cx)
		}, 2)
		Expect(ha).NotTo(BeZero())
		Expect(hb).NotTo(BeZero())

		path := filepath.Join(root, "a.txt")
		Expect(os.WriteFile(path, []byte("a"), 0o644)).To(Succeed())

		Eventually(func() bool {
			cx, ok := a.Load(path)
			return ok && cx.(uintptr) == 1
		}, time.Second*5).Should(BeTrue())
		_, ok := b.Load(path)
		Expect(ok).To(BeFalse())

		Expect(w.Close(ha)).To(BeTrue())
		Expect(w.Close(hb)).To(BeTrue())
	})
})
