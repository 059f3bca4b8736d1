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

	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "tapi",
	Short: "Inspect and monitor telephony line and phone devices",
}

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "List line devices and their capabilities",
	Args:  cobra.NoArgs,
	RunE:  lines,
}

var phonesCmd = &cobra.Command{
	Use:   "phones [device]",
	Short: "List phone devices or show the status of a single phone",
	Args:  cobra.MaximumNArgs(1),
	RunE:  phones,
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Show dialing locations and calling cards",
	Args:  cobra.NoArgs,
	RunE:  locations,
}

var translateCmd = &cobra.Command{
	Use:   "translate <number>",
	Short: "Translate a canonical address into a dialable string",
	Args:  cobra.ExactArgs(1),
	RunE:  translate,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor <device>",
	Short: "Watch call state transitions on a line device",
	Args:  cobra.ExactArgs(1),
	RunE:  monitor,
}

var errorsCmd = &cobra.Command{
	Use:   "errors [code...]",
	Short: "Decode telephony status codes or list the known ones",
	RunE:  explainErrors,
}

var cfg = config.NewWithOpts(config.WithTAPI())

var (
	output string

	device            uint32
	forceLocal        bool
	forceLongDistance bool
	cancelCallWaiting bool
)

func init() {
	cfg.MustViperize(Command)

	addOutputFlag(linesCmd)
	addOutputFlag(phonesCmd)
	addOutputFlag(locationsCmd)
	Command.AddCommand(linesCmd)
	Command.AddCommand(phonesCmd)
	Command.AddCommand(locationsCmd)

	translateCmd.Flags().Uint32VarP(&device, "device", "d", 0, "Line device whose API version is used for the translation")
	translateCmd.Flags().BoolVar(&forceLocal, "force-local", false, "Treat the number as local")
	translateCmd.Flags().BoolVar(&forceLongDistance, "force-ld", false, "Treat the number as long distance")
	translateCmd.Flags().BoolVar(&cancelCallWaiting, "cancel-call-waiting", false, "Prefix the cancel call waiting sequence")
	Command.AddCommand(translateCmd)

	Command.AddCommand(monitorCmd)
	Command.AddCommand(errorsCmd)
}

func parseDevice(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid device identifier %q", s)
	}
	return uint32(id), nil
}
