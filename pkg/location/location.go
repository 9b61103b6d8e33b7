// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package location

import (
	"fmt"
	"path"
	"runtime"
)

// Capture returns "file:line (function)" of the code skip frames above
// its caller. Capture(0) describes the caller itself.
func Capture(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}

	fn := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = path.Base(f.Name())
	}

	return fmt.Sprintf("%s:%d (%s)", path.Base(file), line, fn)
}
