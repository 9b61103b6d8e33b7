// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

const (
	DefaultConfig = `
version: 1
path: .
backend: notify
capacity: 1
buffer: 64
format: json
`
	DefaultPath     = "."
	DefaultBackend  = BackendNotify
	DefaultCapacity = 1
	DefaultBuffer   = 64
	DefaultFormat   = FormatJSON
)
