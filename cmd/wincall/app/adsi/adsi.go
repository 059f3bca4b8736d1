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
	"strings"

	"github.com/rabbitstack/wincall/cmd/wincall/common"
	"github.com/rabbitstack/wincall/internal/directory"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "adsi",
	Short: "Search Active Directory and inspect the domain",
}

var dcCmd = &cobra.Command{
	Use:   "dc [domain]",
	Short: "Locate a domain controller",
	Args:  cobra.MaximumNArgs(1),
	RunE:  locateDC,
}

var crackCmd = &cobra.Command{
	Use:   "crack <name>...",
	Short: "Translate object names between formats",
	Args:  cobra.MinimumNArgs(1),
	RunE:  crack,
}

var searchCmd = &cobra.Command{
	Use:   "search [filter]",
	Short: "Run a directory search",
	Args:  cobra.MaximumNArgs(1),
	RunE:  search,
}

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show the domain membership of this computer",
	Args:  cobra.NoArgs,
	RunE:  sysinfo,
}

var flagsCmd = &cobra.Command{
	Use:   "flags <userAccountControl|flag...>",
	Short: "Decode a userAccountControl value or encode flag names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  userFlags,
}

var trustsCmd = &cobra.Command{
	Use:   "trusts [server]",
	Short: "Enumerate domain trusts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  trusts,
}

var cfg = config.NewWithOpts(config.WithADSI())

var (
	output string

	locate []string

	from string
	to   string
	dc   string

	attrs []string
	scope string
	path  string
	query string
)

func init() {
	cfg.MustViperize(Command)

	dcCmd.Flags().StringSliceVar(&locate, "require", nil, "Locator requirements. One or more of: "+strings.Join(directory.LocateFlagNames(), ", "))
	common.AddOutputFlag(dcCmd, &output)
	Command.AddCommand(dcCmd)

	crackCmd.Flags().StringVar(&from, "from", "unknown", "Format of the input names")
	crackCmd.Flags().StringVar(&to, "to", "dn", "Desired format of the output names")
	crackCmd.Flags().StringVar(&dc, "dc", "", "Domain controller to bind. Any domain controller of the local domain by default")
	Command.AddCommand(crackCmd)

	searchCmd.Flags().StringSliceVarP(&attrs, "attrs", "a", nil, "Attributes to retrieve. All attributes by default")
	searchCmd.Flags().StringVarP(&scope, "scope", "s", "", "Search scope. One of: base, onelevel, subtree")
	searchCmd.Flags().StringVarP(&path, "path", "p", "", "ADsPath or base DN of the search root")
	searchCmd.Flags().StringVarP(&query, "query", "q", "", "Run the query with this name from the config file")
	common.AddOutputFlag(searchCmd, &output)
	Command.AddCommand(searchCmd)

	common.AddOutputFlag(sysinfoCmd, &output)
	Command.AddCommand(sysinfoCmd)

	Command.AddCommand(flagsCmd)

	common.AddOutputFlag(trustsCmd, &output)
	Command.AddCommand(trustsCmd)
}
