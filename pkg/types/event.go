// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import (
	"fmt"
	"strings"
)

// EffectType is the kind of change observed on a path.
type EffectType uint8

const (
	EffectTypeRename  EffectType = iota // rename
	EffectTypeModify                    // modify
	EffectTypeCreate                    // create
	EffectTypeDestroy                   // destroy
	EffectTypeOwner                     // owner
	EffectTypeOther                     // other
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=EffectType -linecomment

// PathType is the kind of filesystem entity an event concerns.
// PathTypeWatcher marks events about the watch itself,
// e.g. its root being removed or its live/die status messages.
type PathType uint8

const (
	PathTypeDir      PathType = iota // dir
	PathTypeFile                     // file
	PathTypeHardLink                 // hard_link
	PathTypeSymLink                  // sym_link
	PathTypeWatcher                  // watcher
	PathTypeOther                    // other
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=PathType -linecomment

// Event is an owned, immutable record of a filesystem change.
//
// EffectTime is passed through from the native watcher unmodified,
// in practice nanoseconds since the Unix epoch.
//
// AssociatedPathName is nil unless the effect involves two paths.
// For EffectTypeRename, PathName is the old name
// and AssociatedPathName is the new one.
type Event struct {
	EffectTime         int64      `json:"effect_time" yaml:"effect_time"`
	PathName           string     `json:"path_name" yaml:"path_name"`
	AssociatedPathName *string    `json:"associated_path_name" yaml:"associated_path_name"`
	EffectType         EffectType `json:"effect_type" yaml:"effect_type"`
	PathType           PathType   `json:"path_type" yaml:"path_type"`
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s %s",
		e.EffectTime, e.EffectType, e.PathType, e.PathName)
	if e.AssociatedPathName != nil {
		fmt.Fprintf(&b, " -> %s", *e.AssociatedPathName)
	}
	return b.String()
}
