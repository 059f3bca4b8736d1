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
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/collector"
	"github.com/rabbitstack/wincall/pkg/sys/wec"
	"github.com/spf13/cobra"
)

func colorStatus(st collector.RuntimeStatus) string {
	switch st.Active {
	case wec.EcRuntimeStatusActiveStatusActive:
		return color.GreenString(st.Active.String())
	case wec.EcRuntimeStatusActiveStatusDisabled:
		return color.RedString(st.Active.String())
	default:
		return color.YellowString(st.Active.String())
	}
}

func lastError(st collector.RuntimeStatus) string {
	if st.LastError == 0 {
		return "-"
	}
	if st.LastErrorMessage != "" {
		return st.ErrorName() + ": " + st.LastErrorMessage
	}
	return st.ErrorName()
}

func status(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	st, err := collector.New(cfg.WEC).Status(args[0])
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(st)
	}
	renderStatus(st)
	return nil
}

func renderStatus(st *collector.Status) {
	t := common.NewTable()
	t.AppendRow(table.Row{"Subscription", st.Name})
	t.AppendRow(table.Row{"Status", colorStatus(st.RuntimeStatus)})
	t.AppendRow(table.Row{"Last error", lastError(st.RuntimeStatus)})
	t.AppendRow(table.Row{"Last error time", common.Time(st.LastErrorTime)})
	t.AppendRow(table.Row{"Next retry", common.Time(st.NextRetryTime)})
	t.Render()

	if len(st.Sources) == 0 {
		return
	}
	s := common.NewTable("Event source", "Status", "Last heartbeat", "Last error", "Next retry")
	for _, src := range st.Sources {
		s.AppendRow(table.Row{
			src.Source,
			colorStatus(src.RuntimeStatus),
			common.Time(src.LastHeartbeat),
			lastError(src.RuntimeStatus),
			common.Time(src.NextRetryTime),
		})
	}
	s.Render()
}
