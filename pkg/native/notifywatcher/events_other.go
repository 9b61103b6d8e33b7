// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package notifywatcher

import (
	"github.com/black-desk/fswatch/pkg/native"
	"github.com/rjeczalik/notify"
)

var watchedEvents = []notify.Event{notify.All}

func decode(ei notify.EventInfo) (d decoded) {
	d.path = ei.Path()

	switch ei.Event() {
	case notify.Create:
		d.effect = native.EffectCreate
	case notify.Remove:
		d.effect = native.EffectDestroy
	case notify.Write:
		d.effect = native.EffectModify
	case notify.Rename:
		d.effect = native.EffectRename
	default:
		d.effect = native.EffectOther
	}

	return
}
