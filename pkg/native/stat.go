// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package native

import "os"

// Classify returns the path type of what is at path now,
// without following symbolic links.
// ok is false when path cannot be examined, e.g. it is gone.
func Classify(path string) (pathType int8, ok bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return PathOther, false
	}

	switch mode := info.Mode(); {
	case mode.IsDir():
		return PathDir, true
	case mode&os.ModeSymlink != 0:
		return PathSymLink, true
	case mode.IsRegular():
		return PathFile, true
	default:
		return PathOther, true
	}
}
