// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gomegahelper provides gomega matchers missing from gomega itself.
package gomegahelper

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// MatchErr succeeds when actual is nil and expected is nil,
// when errors.Is(actual, expected) holds,
// or, when expected is an empty value like new(yaml.TypeError),
// when errors.As(actual, &target) holds for a target of expected's type.
func MatchErr(expected any) types.GomegaMatcher {
	return &matchErrMatcher{expected: expected}
}

type matchErrMatcher struct {
	expected any
}

func (m *matchErrMatcher) Match(actual any) (success bool, err error) {
	if actual == nil {
		success = m.expected == nil
		return
	}

	if m.expected == nil {
		return
	}

	actualErr, ok := actual.(error)
	if !ok {
		err = fmt.Errorf("Expected an error.  Got:\n%s",
			format.Object(actual, 1),
		)
		return
	}

	expectedErr, ok := m.expected.(error)
	if !ok {
		err = fmt.Errorf("MatchErr must be passed an error.  Got:\n%s",
			format.Object(m.expected, 1),
		)
		return
	}

	if errors.Is(actualErr, expectedErr) {
		success = true
		return
	}

	if !isEmpty(reflect.ValueOf(expectedErr)) {
		return
	}

	target := reflect.New(reflect.TypeOf(expectedErr))
	success = errors.As(actualErr, target.Interface())
	return
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer:
		return v.IsNil() || v.Elem().IsZero()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

func (m *matchErrMatcher) FailureMessage(actual any) string {
	return format.Message(actual, "to match error", m.expected)
}

func (m *matchErrMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to match error", m.expected)
}
