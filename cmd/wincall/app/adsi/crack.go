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

package adsi

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/directory"
	"github.com/spf13/cobra"
)

func crack(cmd *cobra.Command, args []string) error {
	fromFormat, err := directory.ParseNameFormat(from)
	if err != nil {
		return err
	}
	toFormat, err := directory.ParseNameFormat(to)
	if err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	names, err := directory.Crack(dc, args, fromFormat, toFormat)
	if err != nil {
		return err
	}

	t := common.NewTable("Input", "Name", "Domain", "Status")
	for _, n := range names {
		status := color.GreenString(n.Status.String())
		if !n.Resolved() {
			status = color.RedString(n.Status.String())
		}
		t.AppendRow(table.Row{n.Input, common.Dash(n.Name), common.Dash(n.Domain), status})
	}
	t.Render()

	return nil
}
