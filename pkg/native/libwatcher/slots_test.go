// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package libwatcher

import (
	"github.com/black-desk/fswatch/pkg/native"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Slot table", func() {
	It("should route events by context and drop them once removed", func() {
		var table slotTable

		var got []uintptr
		cb := func(_ *native.RawEvent, cx uintptr) { got = append(got, cx) }

		a := table.add(cb, 10)
		b := table.add(cb, 20)
		Expect(a).NotTo(Equal(b))

		ev := &native.RawEvent{}
		table.dispatch(ev, b)
		table.dispatch(ev, a)
		Expect(got).To(Equal([]uintptr{20, 10}))

		table.remove(a)
		table.dispatch(ev, a)
		Expect(got).To(Equal([]uintptr{20, 10}))
	})
})
