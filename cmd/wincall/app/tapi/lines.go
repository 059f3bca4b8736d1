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

package tapi

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/telephony"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/spf13/cobra"
)

func addOutputFlag(cmd *cobra.Command) { common.AddOutputFlag(cmd, &output) }

func lines(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	s, err := telephony.NewSession(cfg.TAPI)
	if err != nil {
		return err
	}
	defer s.Close()

	devices, err := s.Devices()
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(devices)
	}

	t := common.NewTable("#", "Name", "Provider", "API", "Addresses", "Media modes", "Max calls")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Media modes", WidthMax: 40},
	})
	for _, dev := range devices {
		t.AppendRow(table.Row{
			dev.ID,
			dev.Name,
			common.Dash(dev.Provider),
			config.FormatAPIVersion(dev.APIVersion),
			common.Join(dev.Addresses),
			common.Join(dev.MediaModes),
			dev.MaxActive,
		})
	}
	t.AppendFooter(table.Row{"TOTAL", len(devices)})
	t.Render()

	return nil
}
