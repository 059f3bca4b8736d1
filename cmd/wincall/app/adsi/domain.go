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
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/directory"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/spf13/cobra"
)

func locateDC(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	flags, err := directory.ParseLocateFlags(locate)
	if err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	var domain string
	if len(args) > 0 {
		domain = args[0]
	}
	dc, err := directory.LocateDC(domain, flags)
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(dc)
	}

	t := common.NewTable()
	t.AppendRow(table.Row{"Name", dc.Name})
	t.AppendRow(table.Row{"Address", dc.Address + " (" + common.Dash(dc.AddressType) + ")"})
	t.AppendRow(table.Row{"Domain", dc.Domain})
	t.AppendRow(table.Row{"Domain GUID", common.Dash(dc.DomainGUID)})
	t.AppendRow(table.Row{"Forest", common.Dash(dc.Forest)})
	t.AppendRow(table.Row{"Site", common.Dash(dc.Site)})
	t.AppendRow(table.Row{"Client site", common.Dash(dc.ClientSite)})
	t.AppendRow(table.Row{"Flags", common.Join(dc.Flags)})
	t.Render()

	return nil
}

func sysinfo(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	role, err := directory.Role()
	if err != nil {
		return err
	}
	// the role is available on workgroup computers too
	info, err := directory.SystemInfo()
	if err != nil && !errors.Is(err, errs.ErrNoDomain) {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(struct {
			Role   *directory.DomainRole
			System *directory.ADSystemInfo `json:",omitempty"`
		}{role, info})
	}

	t := common.NewTable()
	t.AppendRow(table.Row{"Role", role.Role})
	t.AppendRow(table.Row{"Domain", common.Dash(role.FlatName)})
	t.AppendRow(table.Row{"DNS domain", common.Dash(role.DNSName)})
	t.AppendRow(table.Row{"Forest", common.Dash(role.ForestName)})
	t.AppendRow(table.Row{"Domain GUID", common.Dash(role.DomainGUID)})
	if info != nil {
		t.AppendSeparator()
		t.AppendRow(table.Row{"User", info.User})
		t.AppendRow(table.Row{"Computer", info.Computer})
		t.AppendRow(table.Row{"Site", common.Dash(info.Site)})
		t.AppendRow(table.Row{"PDC role owner", common.Dash(info.PDCRoleOwner)})
		t.AppendRow(table.Row{"Schema role owner", common.Dash(info.SchemaRoleOwner)})
		t.AppendRow(table.Row{"Native mode", info.NativeMode})
	}
	t.Render()

	return nil
}

func trusts(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	var server string
	if len(args) > 0 {
		server = args[0]
	}
	trusts, err := directory.Trusts(server)
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(trusts)
	}
	t := common.NewTable("NetBIOS", "DNS", "Flags", "SID")
	for _, trust := range trusts {
		t.AppendRow(table.Row{trust.NetbiosName, common.Dash(trust.DNSName), common.Join(trust.Flags), common.Dash(trust.SID)})
	}
	t.Render()

	return nil
}
