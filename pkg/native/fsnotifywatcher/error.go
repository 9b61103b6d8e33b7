// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsnotifywatcher

import "errors"

var (
	ErrLoggerMissing = errors.New("logger is missing.")
	ErrInvalidBuffer = errors.New("buffer size must not be negative.")
)
