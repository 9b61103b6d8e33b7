// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/black-desk/fswatch/internal/consts"
	"github.com/black-desk/fswatch/internal/printer"
	"github.com/black-desk/fswatch/pkg/config"
	"github.com/black-desk/fswatch/pkg/types"
	"github.com/black-desk/fswatch/pkg/watch"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/lib/go/logger"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	CfgPath string
	Backend string
	Format  string
	For     time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "fswatch [PATH]",
	Short: "Print filesystem events under a path",
	Long: `Watch PATH (the configured path, "." by default) recursively
and print every filesystem event until interrupted.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+consts.CheckDocumentString,
				err,
			)

			return
		}()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		err = rootCmdRun(cmd.Context(), path)
		return
	},
}

// loadConfig reads the configuration file with the command line overrides.
// A missing file at the default location falls back to the default config.
func loadConfig(path string, log *zap.SugaredLogger) (ret *config.Config, err error) {
	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == defaultCfgPath() {
		log.Debugw("Configuration file missing fallback to default config.",
			"file", flags.CfgPath,
		)

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		log.Errorw("Failed to read configuration from file",
			"file", flags.CfgPath,
			"error", err)

		Wrap(&err, "read configuration from %s", flags.CfgPath)
		return
	}

	return config.New(
		config.WithContent(content),
		config.WithLogger(log),
		config.WithPath(path),
		config.WithBackend(config.Backend(flags.Backend)),
		config.WithFormat(config.Format(flags.Format)),
	)
}

func rootCmdRun(ctx context.Context, path string) (err error) {
	log := logger.Get(consts.AppName)

	cfg, err := loadConfig(path, log)
	if err != nil {
		return
	}

	p, err := printer.New(cfg.Format, os.Stdout)
	if err != nil {
		return
	}

	w, err := injectedWatch(cfg, log)
	if err != nil {
		return
	}
	defer func() {
		closeErr := w.Close()
		if err == nil {
			err = closeErr
		}

		log.Debugw("Watch closed.",
			"path", w.Path(),
			"dropped", w.Dropped(),
		)
	}()

	if ctx == nil {
		ctx = context.Background()
	}

	pool := pool.New().
		WithContext(ctx).
		WithCancelOnError()

	pool.Go(waitSig(log))
	pool.Go(consume(w, p, cfg, log))

	err = pool.Wait()
	if err == nil {
		return
	}

	log.Debugw(
		"Watch exited with error.",
		"error", err,
	)

	var cancelBySignal *ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	var timeLimitReached *ErrTimeLimitReached
	if errors.As(err, &timeLimitReached) {
		log.Infow("Time limit reached, exiting...",
			"limit", timeLimitReached.Duration,
		)
		err = nil
		return
	}

	return
}

func waitSig(log *zap.SugaredLogger) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigChan)

		var limit <-chan time.Time
		if flags.For > 0 {
			timer := time.NewTimer(flags.For)
			defer timer.Stop()
			limit = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-limit:
			return &ErrTimeLimitReached{flags.For}
		case sig := <-sigChan:
			log.Debugw(
				"Receive signal.",
				"signal", sig,
			)
			return &ErrCancelBySignal{sig}
		}
	}
}

// consume prints events until ctx is done or the watch is closed.
// Closing is left to the caller, so that a failing close is reported.
func consume(
	w *watch.Watch, p printer.Printer, cfg *config.Config,
	log *zap.SugaredLogger,
) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		defer log.Debugw("Consumer exited.")

		log.Debugw("Start printing events.",
			"path", w.Path(),
			"format", cfg.Format,
		)

		for {
			var ev types.Event
			ev, err = w.Next(ctx)
			if errors.Is(err, io.EOF) {
				err = nil
				return
			}
			if err != nil {
				return
			}

			err = p.Print(ev)
			if err != nil {
				return
			}
		}
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func defaultCfgPath() string {
	cfgPath := os.Getenv("CONFIGURATION_DIRECTORY")
	if cfgPath == "" {
		return consts.CfgPath
	}

	return cfgPath + "/config.yaml"
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", defaultCfgPath(),
		"the configure file to use",
	)
	rootCmd.PersistentFlags().StringVarP(
		&flags.Backend,
		"backend", "b", "",
		"the native watcher to use (notify, fsnotify or libwatcher)",
	)
	rootCmd.Flags().StringVarP(
		&flags.Format,
		"format", "f", "",
		"the output format (json, yaml or text)",
	)
	rootCmd.Flags().DurationVar(
		&flags.For,
		"for", 0,
		"stop watching after this long (0 means until interrupted)",
	)
}
