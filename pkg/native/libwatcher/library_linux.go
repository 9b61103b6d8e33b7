// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package libwatcher

// DefaultLibraries are tried in order when no library is configured.
// The dynamic loader searches its usual paths, LD_LIBRARY_PATH included.
var DefaultLibraries = []string{
	"libwatcher-c.so",
	"libwatcher-c.so.0",
}
