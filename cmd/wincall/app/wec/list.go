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
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/collector"
	"github.com/spf13/cobra"
)

func list(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	var pattern string
	if len(args) > 0 {
		pattern = args[0]
	}
	c := collector.New(cfg.WEC)
	names, err := c.Find(pattern)
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(names)
	}
	t := common.NewTable("#", "Subscription", "Status")
	for i, name := range names {
		st, err := c.Status(name)
		if err != nil {
			t.AppendRow(table.Row{i + 1, name, err.Error()})
			continue
		}
		t.AppendRow(table.Row{i + 1, name, colorStatus(st.RuntimeStatus)})
	}
	t.AppendFooter(table.Row{"TOTAL", len(names)})
	t.Render()

	return nil
}

func show(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	sub, err := collector.New(cfg.WEC).Get(args[0])
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(sub)
	}

	t := common.NewTable()
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 100}})
	t.AppendRow(table.Row{"Name", sub.Name})
	t.AppendRow(table.Row{"Description", common.Dash(sub.Description)})
	t.AppendRow(table.Row{"Enabled", sub.Enabled})
	t.AppendRow(table.Row{"Type", sub.Type})
	t.AppendRow(table.Row{"Destination log", sub.LogFile})
	t.AppendRow(table.Row{"Query", strings.TrimSpace(sub.Query)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Configuration mode", sub.ConfigurationMode})
	t.AppendRow(table.Row{"Delivery", delivery(sub)})
	t.AppendRow(table.Row{"Content format", sub.ContentFormat})
	t.AppendRow(table.Row{"Read existing events", sub.ReadExistingEvents})
	t.AppendRow(table.Row{"Expires", common.Time(sub.Expires)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Transport", fmt.Sprintf("%s:%d", common.Dash(sub.TransportName), sub.TransportPort)})
	t.AppendRow(table.Row{"Credentials", common.Dash(sub.CredentialsType)})
	t.AppendRow(table.Row{"User", common.Dash(sub.CommonUserName)})
	if sub.Type == collector.TypeSourceInitiated {
		t.AppendRow(table.Row{"Allowed computers", common.Dash(sub.AllowedSourceDomainComputers)})
	}
	for _, src := range sub.EventSources {
		state := "enabled"
		if !src.Enabled {
			state = "disabled"
		}
		t.AppendRow(table.Row{"Event source", fmt.Sprintf("%s (%s)", src.Address, state)})
	}
	t.Render()

	return nil
}

func delivery(sub *collector.Subscription) string {
	var b strings.Builder
	b.WriteString(sub.DeliveryMode)
	if sub.MaxItems > 0 {
		fmt.Fprintf(&b, ", max %d items", sub.MaxItems)
	}
	if sub.MaxLatency > 0 {
		fmt.Fprintf(&b, ", max latency %v", sub.MaxLatency.Round(time.Millisecond))
	}
	if sub.Heartbeat > 0 {
		fmt.Fprintf(&b, ", heartbeat %v", sub.Heartbeat.Round(time.Millisecond))
	}
	return b.String()
}
