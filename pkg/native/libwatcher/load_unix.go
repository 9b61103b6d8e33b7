// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package libwatcher

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

func load(path string) (ret *library, err error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return
	}

	lib := &library{path: path}

	for _, fn := range []struct {
		ptr  any
		name string
	}{
		{&lib.open, "wtr_watcher_open"},
		{&lib.close, "wtr_watcher_close"},
	} {
		var sym uintptr
		sym, err = purego.Dlsym(handle, fn.name)
		if err != nil {
			err = fmt.Errorf("%w %s: %w", ErrSymbolMissing, fn.name, err)
			return
		}

		purego.RegisterFunc(fn.ptr, sym)
	}

	ret = lib
	return
}

var (
	trampolineOnce sync.Once
	trampolineFn   uintptr
	trampolineErr  error
)

// trampoline returns the C function pointer all watches share.
func trampoline() (uintptr, error) {
	trampolineOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				trampolineErr = fmt.Errorf("create callback: %v", r)
			}
		}()

		trampolineFn = newCallback()
	})

	return trampolineFn, trampolineErr
}
