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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/telephony"
	"github.com/spf13/cobra"
)

func monitor(cmd *cobra.Command, args []string) error {
	id, err := parseDevice(args[0])
	if err != nil {
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

	ctx, cancel := bootstrap.SignalContext(context.Background())
	defer cancel()

	fmt.Fprintf(os.Stderr, "Monitoring line device %d. Press Ctrl+C to stop\n", id)
	return s.Monitor(ctx, id, func(t telephony.Transition) {
		fmt.Fprintln(os.Stdout, formatTransition(t))
	})
}

func formatTransition(t telephony.Transition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s call 0x%08X ", t.At.Format("15:04:05.000"), uint32(t.Call))
	switch {
	case t.New:
		fmt.Fprintf(&b, "%s", color.CyanString(t.To.String()))
	case !t.Applied():
		fmt.Fprintf(&b, "%s -> %s %s", t.From, color.RedString(t.To.String()), color.RedString("(illegal)"))
	default:
		fmt.Fprintf(&b, "%s -> %s", t.From, color.GreenString(t.To.String()))
	}
	if t.CallerID != "" || t.CalledID != "" {
		fmt.Fprintf(&b, " [%s => %s]", dash(t.CallerID), dash(t.CalledID))
	}
	return b.String()
}

func dash(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
