// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package watch

import "errors"

var (
	ErrPathMissing     = errors.New("path is missing.")
	ErrNativeMissing   = errors.New("native watcher is missing.")
	ErrInvalidCapacity = errors.New("channel capacity must be at least 1.")
	ErrOpenFailed      = errors.New("native watcher failed to open.")
	ErrCloseFailed     = errors.New("native watcher failed to close.")
)
