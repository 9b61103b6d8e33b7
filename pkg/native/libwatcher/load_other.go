// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !((darwin || freebsd || linux) && (amd64 || arm64))

package libwatcher

func load(string) (*library, error) {
	return nil, ErrUnsupportedPlatform
}

func trampoline() (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}
