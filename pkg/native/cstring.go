// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package native

import "unsafe"

// GoString copies the NUL-terminated text at p.
// ok is false if p is nil.
func GoString(p *byte) (s string, ok bool) {
	if p == nil {
		return
	}

	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}

	s = string(unsafe.Slice(p, n))
	ok = true
	return
}

// Fill lays pathName and associatedPathName out in buf as NUL-terminated
// text and points ev at them. buf is grown when it is too small;
// the slice actually used is returned.
func (ev *RawEvent) Fill(
	buf []byte, pathName string, associatedPathName *string,
) []byte {
	need := len(pathName) + 1
	if associatedPathName != nil {
		need += len(*associatedPathName) + 1
	}

	if cap(buf) < need {
		buf = make([]byte, need)
	}
	buf = buf[:need]

	n := copy(buf, pathName)
	buf[n] = 0
	ev.PathName = &buf[0]

	ev.AssociatedPathName = nil
	if associatedPathName != nil {
		off := n + 1
		m := copy(buf[off:], *associatedPathName)
		buf[off+m] = 0
		ev.AssociatedPathName = &buf[off]
	}

	return buf
}
