// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pool

import "sync"

// Pool is a typed sync.Pool.
// onPut, when set, runs on every value before it goes back to the pool.
type Pool[T any] struct {
	p     *sync.Pool
	onPut func(x T) T
}

func New[T any](newFn func() T, onPut func(x T) T) (ret *Pool[T]) {
	ret = &Pool[T]{
		p: &sync.Pool{New: func() any {
			return newFn()
		}},
		onPut: onPut,
	}
	return
}

func (p *Pool[T]) Get() T {
	return p.p.Get().(T)
}

func (p *Pool[T]) Put(x T) {
	if p.onPut != nil {
		x = p.onPut(x)
	}
	p.p.Put(x)
}
