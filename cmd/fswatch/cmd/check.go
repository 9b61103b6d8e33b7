// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fswatch/internal/consts"
	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkFlags struct {
	EnableLogger bool
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:          "check",
	Short:        "Check configuration and backend",
	Long:         `Validate configuration, then open and close a watch with the configured backend.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			checkLogger().Errorw("Failed to check.",
				"config", flags.CfgPath,
				"error", err,
			)

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkCmdRun()
		return
	},
}

func checkCmdRun() (err error) {
	err = checkConfigCmdRun()
	if err != nil {
		return
	}

	err = checkBackendCmdRun()
	if err != nil {
		return
	}

	return
}

func checkLogger() *zap.SugaredLogger {
	if !checkFlags.EnableLogger {
		return zap.NewNop().Sugar()
	}

	return logger.Get(consts.AppName)
}

func init() {
	checkCmd.PersistentFlags().BoolVarP(
		&checkFlags.EnableLogger,
		"log", "l", false,
		"log while checking",
	)

	rootCmd.AddCommand(checkCmd)
}
