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
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/spf13/cobra"
)

func translateOptions() uint32 {
	var opts uint32
	if forceLocal {
		opts |= tapi.LINETRANSLATEOPTION_FORCELOCAL
	}
	if forceLongDistance {
		opts |= tapi.LINETRANSLATEOPTION_FORCELD
	}
	if cancelCallWaiting {
		opts |= tapi.LINETRANSLATEOPTION_CANCELCALLWAITING
	}
	return opts
}

func translate(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	s, err := telephony.NewSession(cfg.TAPI)
	if err != nil {
		return err
	}
	defer s.Close()

	tr, err := s.Translate(device, args[0], translateOptions())
	if err != nil {
		return err
	}
	t := common.NewTable()
	t.AppendRow(table.Row{"Dialable", tr.Dialable})
	t.AppendRow(table.Row{"Displayable", tr.Displayable})
	t.AppendRow(table.Row{"Current country", tr.CurrentCountry})
	t.AppendRow(table.Row{"Destination country", tr.DestCountry})
	t.AppendRow(table.Row{"Results", common.Join(tr.Results)})
	t.Render()

	return nil
}

func locations(cmd *cobra.Command, args []string) error {
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

	locs, err := s.Locations()
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(locs)
	}

	t := common.NewTable("#", "Location", "Country", "City", "Local access", "LD access", "Current")
	for _, loc := range locs.Locations {
		current := ""
		if loc.Current {
			current = "*"
		}
		t.AppendRow(table.Row{
			loc.ID,
			loc.Name,
			loc.CountryCode,
			common.Dash(loc.CityCode),
			common.Dash(loc.LocalAccessCode),
			common.Dash(loc.LongDistanceAccessCode),
			current,
		})
	}
	t.Render()

	if len(locs.Cards) == 0 {
		return nil
	}
	c := common.NewTable("#", "Card", "Digits", "Preferred")
	for _, card := range locs.Cards {
		preferred := ""
		if card.Preferred {
			preferred = "*"
		}
		c.AppendRow(table.Row{card.ID, card.Name, card.NumberDigits, preferred})
	}
	c.Render()

	return nil
}
