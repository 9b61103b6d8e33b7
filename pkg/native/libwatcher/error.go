// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package libwatcher

import "errors"

var (
	ErrLoggerMissing       = errors.New("logger is missing.")
	ErrLibraryNotFound     = errors.New("libwatcher-c not found.")
	ErrSymbolMissing       = errors.New("symbol missing from libwatcher-c.")
	ErrUnsupportedPlatform = errors.New("libwatcher-c is not supported on this platform.")
)
