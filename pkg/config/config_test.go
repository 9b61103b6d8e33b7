// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"testing"

	. "github.com/black-desk/fswatch/internal/test/ginkgo-helper"
	. "github.com/black-desk/fswatch/internal/test/gomega-helper"
	"github.com/black-desk/fswatch/pkg/config"
	"github.com/black-desk/fswatch/pkg/filter"
	"github.com/go-playground/validator/v10"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Configuration", func() {
	It("should load the default configuration.", func() {
		cfg, err := config.New()
		Expect(err).To(Succeed())
		Expect(cfg.Version).To(Equal("1"))
		Expect(cfg.Path).To(Equal(config.DefaultPath))
		Expect(cfg.Backend).To(Equal(config.DefaultBackend))
		Expect(cfg.Capacity).To(Equal(config.DefaultCapacity))
		Expect(cfg.Buffer).To(Equal(config.DefaultBuffer))
		Expect(cfg.Format).To(Equal(config.DefaultFormat))
	})

	ContextTable("load from valid configuration (%s)",
		func(name string, content string, check func(*config.Config)) {
			var (
				cfg *config.Config
				err error
			)

			BeforeEach(func() {
				cfg, err = config.New(config.WithContent([]byte(content)))
			})

			It("should success.", func() {
				Expect(err).To(Succeed())
				check(cfg)
			})
		},
		ContextTableEntry("minimal", "version: 1\n", func(cfg *config.Config) {
			Expect(cfg.Path).To(Equal("."))
			Expect(cfg.Capacity).To(Equal(1))
			Expect(cfg.Filter().Patterns()).To(BeEmpty())
		}).WithFmt("minimal"),
		ContextTableEntry("libwatcher", `
version: 1
path: /tmp
backend: libwatcher
library: /usr/lib/libwatcher-c.so
capacity: 16
format: text
`, func(cfg *config.Config) {
			Expect(cfg.Path).To(Equal("/tmp"))
			Expect(cfg.Backend).To(Equal(config.BackendLibwatcher))
			Expect(cfg.Library).To(Equal("/usr/lib/libwatcher-c.so"))
			Expect(cfg.Capacity).To(Equal(16))
			Expect(cfg.Format).To(Equal(config.FormatText))
		}).WithFmt("libwatcher"),
		ContextTableEntry("exclude", `
version: 1
backend: fsnotify
exclude:
  - "*.swp"
  - ".git"
`, func(cfg *config.Config) {
			Expect(cfg.Filter().Excluded("/w/.a.swp")).To(BeTrue())
			Expect(cfg.Filter().Excluded("/w/.git")).To(BeTrue())
			Expect(cfg.Filter().Excluded("/w/main.go")).To(BeFalse())
		}).WithFmt("exclude"),
	)

	ContextTable("load from invalid configuration (%s)",
		func(name string, content string, expectErr error) {
			var err error

			BeforeEach(func() {
				_, err = config.New(config.WithContent([]byte(content)))
			})

			It("should fail.", func() {
				Expect(err).To(MatchErr(expectErr))
			})
		},
		ContextTableEntry("wrong type", "version: 1\ncapacity: [1]\n", new(yaml.TypeError)).
			WithFmt("wrong type"),
		ContextTableEntry("wrong version", "version: 2\n", validator.ValidationErrors{}).
			WithFmt("wrong version"),
		ContextTableEntry("negative capacity", "version: 1\ncapacity: -1\n", validator.ValidationErrors{}).
			WithFmt("negative capacity"),
		ContextTableEntry("unknown format", "version: 1\nformat: xml\n", validator.ValidationErrors{}).
			WithFmt("unknown format"),
		ContextTableEntry("unknown backend", "version: 1\nbackend: kqueue\n", config.ErrUnknownBackend).
			WithFmt("unknown backend"),
		ContextTableEntry("broken pattern", "version: 1\nexclude: [\"[a-\"]\n", filter.ErrInvalidPattern).
			WithFmt("broken pattern"),
	)

	It("should apply overrides before checking.", func() {
		cfg, err := config.New(
			config.WithContent([]byte("version: 1\nbackend: fsnotify\n")),
			config.WithPath("/srv"),
			config.WithBackend(""),
			config.WithFormat(config.FormatYAML),
		)
		Expect(err).To(Succeed())
		Expect(cfg.Path).To(Equal("/srv"))
		Expect(cfg.Backend).To(Equal(config.BackendFsnotify))
		Expect(cfg.Format).To(Equal(config.FormatYAML))

		_, err = config.New(config.WithBackend("kqueue"))
		Expect(err).To(MatchErr(config.ErrUnknownBackend))
	})

	It("should reject a nil logger.", func() {
		_, err := config.New(config.WithLogger(nil))
		Expect(err).To(MatchErr(config.ErrLoggerMissing))
	})
})
