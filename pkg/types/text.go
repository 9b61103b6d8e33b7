// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import "fmt"

func (i EffectType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *EffectType) UnmarshalText(text []byte) error {
	for v := EffectTypeRename; v <= EffectTypeOther; v++ {
		if v.String() == string(text) {
			*i = v
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownEffectType, text)
}

func (i PathType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *PathType) UnmarshalText(text []byte) error {
	for v := PathTypeDir; v <= PathTypeOther; v++ {
		if v.String() == string(text) {
			*i = v
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownPathType, text)
}
