// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import "errors"

var (
	ErrUnknownEffectType = errors.New("unknown effect type")
	ErrUnknownPathType   = errors.New("unknown path type")
)
