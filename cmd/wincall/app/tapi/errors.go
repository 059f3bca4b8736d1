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
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/spf13/cobra"
)

func explainErrors(cmd *cobra.Command, args []string) error {
	t := common.NewTable("Code", "Family", "Name")
	if len(args) == 0 {
		for _, err := range tapi.KnownErrors() {
			t.AppendRow(errorRow(err))
		}
		t.Render()
		return nil
	}
	for _, arg := range args {
		code, err := parseErrorCode(arg)
		if err != nil {
			return err
		}
		e := tapi.ParseError(code)
		if e == nil {
			t.AppendRow(table.Row{arg, "-", "not a telephony error code"})
			continue
		}
		t.AppendRow(errorRow(e))
	}
	t.Render()
	return nil
}

// parseErrorCode accepts decimal or 0x prefixed codes. Line and phone
// errors are usually written as unsigned hex, request errors as negative
// decimals.
func parseErrorCode(s string) (int32, error) {
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid error code %q", s)
		}
		return int32(n), nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q", s)
	}
	return int32(uint32(n)), nil
}

func errorRow(err error) table.Row {
	switch e := err.(type) {
	case tapi.LineErr:
		return table.Row{fmt.Sprintf("0x%08X", uint32(e)), "line", e.Error()}
	case tapi.PhoneErr:
		return table.Row{fmt.Sprintf("0x%08X", uint32(e)), "phone", e.Error()}
	case tapi.RequestErr:
		return table.Row{int32(e), "request", e.Error()}
	}
	return table.Row{"-", "-", err.Error()}
}
