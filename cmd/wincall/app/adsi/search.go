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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/directory"
	"github.com/spf13/cobra"
)

func buildQuery(args []string) (directory.Query, error) {
	if query != "" {
		if len(args) > 0 {
			return directory.Query{}, errors.New("the filter and --query are mutually exclusive")
		}
		q, err := directory.NamedQuery(cfg.ADSI, query)
		if err != nil {
			return q, err
		}
		if len(attrs) > 0 {
			q.Attributes = attrs
		}
		return q, nil
	}
	if len(args) == 0 {
		return directory.Query{}, errors.New("either a filter or --query is required")
	}
	return directory.NewQuery(cfg.ADSI, args[0], attrs, scope, path)
}

func search(cmd *cobra.Command, args []string) error {
	if err := common.ValidateOutput(output); err != nil {
		return err
	}
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	q, err := buildQuery(args)
	if err != nil {
		return err
	}
	searcher, err := directory.NewSearcher(cfg.ADSI)
	if err != nil {
		return err
	}

	ctx, cancel := bootstrap.SignalContext(context.Background())
	defer cancel()

	entries, err := searcher.Search(ctx, q)
	if err != nil {
		return err
	}
	if output == common.OutputJSON {
		return common.PrintJSON(entries)
	}
	renderEntries(entries, q.Attributes)
	return nil
}

func formatValues(vals []interface{}) string {
	s := make([]string, 0, len(vals))
	for _, v := range vals {
		s = append(s, directory.FormatValue(v))
	}
	return strings.Join(s, "; ")
}

// renderEntries lays out one column per attribute when the attributes are
// known upfront. Otherwise every entry gets its own block of rows.
func renderEntries(entries []directory.Entry, names []string) {
	if len(names) > 0 {
		header := table.Row{"DN"}
		for _, name := range names {
			header = append(header, name)
		}
		t := common.NewTable(header...)
		for _, e := range entries {
			row := table.Row{e.DN}
			for _, name := range names {
				row = append(row, formatValues(e.Get(name)))
			}
			t.AppendRow(row)
		}
		t.AppendFooter(table.Row{fmt.Sprintf("%d entries", len(entries))})
		t.Render()
		return
	}

	t := common.NewTable()
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 80}})
	for i, e := range entries {
		if i > 0 {
			t.AppendSeparator()
		}
		t.AppendRow(table.Row{"dn", e.DN})
		for _, name := range e.Names() {
			t.AppendRow(table.Row{name, formatValues(e.Attributes[name])})
		}
		if flags := e.UserFlags(); len(flags) > 0 {
			t.AppendRow(table.Row{"(account flags)", strings.Join(flags, ", ")})
		}
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d entries", len(entries))})
	t.Render()
}
