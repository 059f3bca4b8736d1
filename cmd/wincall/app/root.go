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

package app

import (
	"runtime"

	"github.com/rabbitstack/wincall/cmd/wincall/app/adsi"
	"github.com/rabbitstack/wincall/cmd/wincall/app/config"
	"github.com/rabbitstack/wincall/cmd/wincall/app/tapi"
	"github.com/rabbitstack/wincall/cmd/wincall/app/wec"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/spf13/cobra"
)

// RootCmd is the entrance to the wincall CLI
var RootCmd = &cobra.Command{
	Use:   "wincall",
	Short: "Windows telephony, directory and event collector toolkit",
	Long: `
	wincall talks to three Windows subsystems from a single binary.
	It enumerates and monitors telephony line and phone devices, searches
	Active Directory and locates domain controllers, and manages the
	subscriptions of the Windows Event Collector service.
	`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return checkArch(runtime.GOARCH)
	},
}

// checkArch refuses architectures where VARIANT arguments passed by
// pointer don't match the calling convention of the ADSI interfaces.
func checkArch(arch string) error {
	if arch == "386" || arch == "arm" {
		return errs.ErrUnsupportedArch
	}
	return nil
}

func init() {
	RootCmd.AddCommand(tapi.Command)
	RootCmd.AddCommand(adsi.Command)
	RootCmd.AddCommand(wec.Command)
	RootCmd.AddCommand(config.Command)
	RootCmd.AddCommand(versionCmd)
}
