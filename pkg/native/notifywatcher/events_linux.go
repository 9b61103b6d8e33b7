// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package notifywatcher

import (
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/rjeczalik/notify"
	"golang.org/x/sys/unix"
)

var watchedEvents = []notify.Event{
	notify.InCreate,
	notify.InDelete,
	notify.InDeleteSelf,
	notify.InModify,
	notify.InAttrib,
	notify.InMovedFrom,
	notify.InMovedTo,
	notify.InMoveSelf,
}

func decode(ei notify.EventInfo) (d decoded) {
	d.path = ei.Path()

	if raw, ok := ei.Sys().(*unix.InotifyEvent); ok && raw != nil {
		d.isDir = raw.Mask&unix.IN_ISDIR != 0
		d.dirKnown = true
		d.cookie = raw.Cookie
	}

	switch ei.Event() {
	case notify.InCreate, notify.Create:
		d.effect = native.EffectCreate
	case notify.InDelete, notify.InDeleteSelf, notify.Remove:
		d.effect = native.EffectDestroy
	case notify.InModify, notify.Write:
		d.effect = native.EffectModify
	case notify.InAttrib:
		d.effect = native.EffectOwner
	case notify.InMovedFrom, notify.InMoveSelf, notify.Rename:
		d.effect = native.EffectRename
		d.move = moveFrom
	case notify.InMovedTo:
		d.effect = native.EffectRename
		d.move = moveTo
	default:
		d.effect = native.EffectOther
	}

	return
}
