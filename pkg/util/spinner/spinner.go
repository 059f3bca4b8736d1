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

// Package spinner renders progress while a command waits on the system.
package spinner

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner wraps a terminal spinner with a success or failure epilogue.
type Spinner struct {
	s *spinner.Spinner
}

// Show creates a new spinner on stderr and starts it.
func Show(prefix string) *Spinner {
	return ShowTo(os.Stderr, prefix)
}

// ShowTo creates a spinner writing to w and starts it.
func ShowTo(w io.Writer, prefix string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Prefix = "> " + prefix + " "
	s.HideCursor = true
	s.Start()
	return &Spinner{s: s}
}

// Update replaces the text trailing the spinner.
func (s *Spinner) Update(suffix string) {
	s.s.Lock()
	s.s.Suffix = " " + suffix
	s.s.Unlock()
}

// Stop halts the spinner and prints a check mark or a cross followed by msg.
func (s *Spinner) Stop(ok bool, msg string) {
	mark := color.GreenString("✓")
	if !ok {
		mark = color.RedString("✗")
	}
	s.s.FinalMSG = s.s.Prefix + mark + " " + msg + "\n"
	s.s.Stop()
}
