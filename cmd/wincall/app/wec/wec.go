/*
 * Copyright 2021-2022 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wec

import (
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "wec",
	Short: "Manage Windows Event Collector subscriptions",
}

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List subscriptions, optionally filtered by a wildcard pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE:  list,
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the definition of a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  show,
}

var statusCmd = &cobra.Command{
	Use:   "status <name>",
	Short: "Show the runtime status of a subscription and its event sources",
	Args:  cobra.ExactArgs(1),
	RunE:  status,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create or update subscriptions from a definition file",
	Args:  cobra.NoArgs,
	RunE:  apply,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Delete subscriptions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  remove,
}

var retryCmd = &cobra.Command{
	Use:   "retry <name>",
	Short: "Retry inactive event sources of a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  retry,
}

var cfg = config.NewWithOpts(config.WithWEC())

var (
	output string

	file    string
	dryRun  bool
	wait    bool
	sources []string
)

func init() {
	cfg.MustViperize(Command)

	common.AddOutputFlag(listCmd, &output)
	Command.AddCommand(listCmd)

	common.AddOutputFlag(showCmd, &output)
	Command.AddCommand(showCmd)

	common.AddOutputFlag(statusCmd, &output)
	Command.AddCommand(statusCmd)

	applyCmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with subscription definitions")
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the definitions without applying them")
	applyCmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait until enabled subscriptions become active")
	_ = applyCmd.MarkFlagRequired("file")
	Command.AddCommand(applyCmd)

	Command.AddCommand(deleteCmd)

	retryCmd.Flags().StringSliceVar(&sources, "source", nil, "Event sources to retry. All inactive sources by default")
	retryCmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait until the subscription becomes active")
	Command.AddCommand(retryCmd)
}
