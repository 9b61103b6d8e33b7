// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/fswatch/internal/consts"
	"github.com/black-desk/fswatch/pkg/config"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

var checkConfigFlags struct {
	PrintDefault bool
}

// checkConfigCmd represents the config command
var checkConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Check configuration",
	Long:  `Validate configuration.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		if checkConfigFlags.PrintDefault {
			_, err = fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfig)
			return
		}

		err = checkConfigCmdRun()
		return
	},
}

func checkConfigCmdRun() (err error) {
	defer Wrap(&err)

	_, err = loadConfig("", checkLogger())
	return
}

func init() {
	checkConfigCmd.Flags().BoolVar(
		&checkConfigFlags.PrintDefault,
		"default", false,
		"print the default configuration instead",
	)

	checkCmd.AddCommand(checkConfigCmd)
}
