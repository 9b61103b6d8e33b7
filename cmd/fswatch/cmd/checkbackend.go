// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fswatch/internal/consts"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

// checkBackendCmd represents the backend command
var checkBackendCmd = &cobra.Command{
	Use:   "backend [PATH]",
	Short: "Check native watcher",
	Long:  `Open and close a watch on PATH with the configured backend.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		checkBackendPath = path
		err = checkBackendCmdRun()
		return
	},
}

var checkBackendPath string

func checkBackendCmdRun() (err error) {
	defer Wrap(&err, "check backend")

	log := checkLogger()

	cfg, err := loadConfig(checkBackendPath, log)
	if err != nil {
		return
	}

	w, err := injectedWatch(cfg, log)
	if err != nil {
		return
	}

	log.Infow("Backend works.",
		"backend", cfg.Backend,
		"path", w.Path(),
	)

	err = w.Close()
	return
}

func init() {
	checkCmd.AddCommand(checkBackendCmd)
}
