// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ginkgohelper provides table driven containers for ginkgo.
//
// Unlike ginkgo.DescribeTable, every entry of a ContextTable becomes a
// Context node, so the body can declare its own BeforeEach, AfterEach and It.
package ginkgohelper

import (
	"fmt"
	"reflect"

	"github.com/onsi/ginkgo/v2"
)

type ContextTableEntryT struct {
	fmtArgs []any
	args    []reflect.Value
}

// ContextTable creates one ginkgo.Context per entry.
// The context text is message formatted with the entry's format arguments,
// body is called with the entry's arguments.
// A nil argument is passed as the zero value of the parameter type.
func ContextTable(message string, body any, entries ...*ContextTableEntryT) {
	vbody := reflect.ValueOf(body)
	if vbody.Kind() != reflect.Func {
		panic("ginkgohelper: body of ContextTable must be a function")
	}

	for i := range entries {
		entry := entries[i]
		if len(entry.args) != vbody.Type().NumIn() {
			panic(fmt.Sprintf(
				"ginkgohelper: entry %d has %d arguments, body takes %d",
				i, len(entry.args), vbody.Type().NumIn(),
			))
		}

		ginkgo.Context(fmt.Sprintf(message, entry.fmtArgs...), func() {
			args := make([]reflect.Value, len(entry.args))
			for j := range entry.args {
				args[j] = entry.args[j]
				if args[j].IsValid() {
					continue
				}

				args[j] = reflect.Zero(vbody.Type().In(j))
			}
			vbody.Call(args)
		})
	}
}

// WithFmt replaces the arguments used to format the context text.
func (c *ContextTableEntryT) WithFmt(args ...any) *ContextTableEntryT {
	c.fmtArgs = args
	return c
}

func ContextTableEntry(args ...any) *ContextTableEntryT {
	ret := &ContextTableEntryT{}
	for i := range args {
		ret.args = append(ret.args, reflect.ValueOf(args[i]))
	}
	ret.fmtArgs = args
	return ret
}
