// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package convert turns raw native events into owned types.Event values.
// Conversion is total: missing or malformed input degrades to empty text,
// nil associated paths and the Other classifications.
package convert

import (
	"unicode/utf8"

	"github.com/black-desk/fswatch/pkg/native"
	"github.com/black-desk/fswatch/pkg/types"
)

func FromRaw(ev *native.RawEvent) (ret types.Event) {
	ret.EffectType = types.EffectTypeOther
	ret.PathType = types.PathTypeOther

	if ev == nil {
		return
	}

	ret.EffectTime = ev.EffectTime
	ret.EffectType = EffectType(ev.EffectType)
	ret.PathType = PathType(ev.PathType)

	if s, ok := text(ev.PathName); ok {
		ret.PathName = s
	}

	if s, ok := text(ev.AssociatedPathName); ok {
		ret.AssociatedPathName = &s
	}

	return
}

func EffectType(code int8) types.EffectType {
	switch code {
	case native.EffectRename:
		return types.EffectTypeRename
	case native.EffectModify:
		return types.EffectTypeModify
	case native.EffectCreate:
		return types.EffectTypeCreate
	case native.EffectDestroy:
		return types.EffectTypeDestroy
	case native.EffectOwner:
		return types.EffectTypeOwner
	default:
		return types.EffectTypeOther
	}
}

func PathType(code int8) types.PathType {
	switch code {
	case native.PathDir:
		return types.PathTypeDir
	case native.PathFile:
		return types.PathTypeFile
	case native.PathHardLink:
		return types.PathTypeHardLink
	case native.PathSymLink:
		return types.PathTypeSymLink
	case native.PathWatcher:
		return types.PathTypeWatcher
	default:
		return types.PathTypeOther
	}
}

// text copies the native text at p.
// ok is false only for a nil pointer; text that is not valid UTF-8,
// or that faults while being read, becomes the empty string.
func text(p *byte) (s string, ok bool) {
	if p == nil {
		return
	}

	ok = true

	defer func() {
		if recover() != nil {
			s = ""
		}
	}()

	s, _ = native.GoString(p)
	if !utf8.ValidString(s) {
		s = ""
	}

	return
}
