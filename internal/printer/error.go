// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package printer

import "errors"

var ErrUnknownFormat = errors.New("unknown output format.")
