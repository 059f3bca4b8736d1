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
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/telephony"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/spf13/cobra"
)

func phones(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	s, err := telephony.NewPhoneSession(cfg.TAPI)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		id, err := parseDevice(args[0])
		if err != nil {
			return err
		}
		return phoneStatus(s, id)
	}

	phones, err := s.Devices()
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(phones)
	}
	t := common.NewTable("#", "Name", "Provider", "API", "Hook switch", "Display", "Buttons")
	for _, phone := range phones {
		display := "-"
		if phone.DisplayRows > 0 {
			display = fmt.Sprintf("%dx%d", phone.DisplayRows, phone.DisplayColumns)
		}
		t.AppendRow(table.Row{
			phone.ID,
			phone.Name,
			common.Dash(phone.Provider),
			config.FormatAPIVersion(phone.APIVersion),
			common.Join(phone.HookSwitchDevs),
			display,
			phone.NumButtonLamps,
		})
	}
	t.AppendFooter(table.Row{"TOTAL", len(phones)})
	t.Render()

	return nil
}

func phoneStatus(s *telephony.PhoneSession, id uint32) error {
	phone, err := s.Device(id)
	if err != nil {
		return err
	}
	state, err := s.Status(id)
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(struct {
			*telephony.Phone
			Status *telephony.PhoneState
		}{phone, state})
	}

	t := common.NewTable()
	t.AppendRow(table.Row{"Name", phone.Name})
	t.AppendRow(table.Row{"Provider", common.Dash(phone.Provider)})
	t.AppendRow(table.Row{"GUID", common.Dash(phone.GUID)})
	t.AppendRow(table.Row{"Device classes", common.Join(phone.DeviceClasses)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Off hook", common.Join(state.OffHook)})
	t.AppendRow(table.Row{"Handset", common.Join(state.HandsetMode)})
	t.AppendRow(table.Row{"Speaker", common.Join(state.SpeakerMode)})
	t.AppendRow(table.Row{"Headset", common.Join(state.HeadsetMode)})
	t.AppendRow(table.Row{"Ring mode", state.RingMode})
	t.AppendRow(table.Row{"Ring volume", state.RingVolume})
	t.AppendRow(table.Row{"Display", common.Dash(state.Display)})
	t.AppendRow(table.Row{"Owner", common.Dash(state.Owner)})
	t.AppendRow(table.Row{"Owners/monitors", fmt.Sprintf("%d/%d", state.NumOwners, state.NumMonitors)})
	t.Render()

	return nil
}
