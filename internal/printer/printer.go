// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package printer writes events in the output formats of the command line.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/black-desk/fswatch/pkg/config"
	"github.com/black-desk/fswatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"gopkg.in/yaml.v3"
)

type Printer interface {
	Print(ev types.Event) error
}

// New returns a printer writing one json object per line,
// one yaml document per event, or one line of text per event.
func New(format config.Format, w io.Writer) (ret Printer, err error) {
	switch format {
	case config.FormatJSON:
		ret = &jsonPrinter{enc: json.NewEncoder(w)}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		ret = &yamlPrinter{enc: enc}
	case config.FormatText:
		ret = &textPrinter{w: w}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return
}

type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) Print(ev types.Event) (err error) {
	defer Wrap(&err, "print event as json")
	return p.enc.Encode(ev)
}

type yamlPrinter struct {
	enc *yaml.Encoder
}

func (p *yamlPrinter) Print(ev types.Event) (err error) {
	defer Wrap(&err, "print event as yaml")
	return p.enc.Encode(ev)
}

type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) Print(ev types.Event) (err error) {
	defer Wrap(&err, "print event as text")
	_, err = fmt.Fprintln(p.w, ev.String())
	return
}
