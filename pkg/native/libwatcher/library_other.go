// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !darwin && !linux

package libwatcher

// DefaultLibraries are tried in order when no library is configured.
var DefaultLibraries = []string{
	"libwatcher-c.so",
}
