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

// Package version carries the release information stamped into the binary.
package version

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	semver "github.com/hashicorp/go-version"
	"github.com/jedib0t/go-pretty/v6/table"
)

var version string

var (
	once sync.Once
	sem  *semver.Version
)

// Set initializes the version string as global variable.
func Set(v string) { version = v }

// Get returns the version string.
func Get() string {
	if IsDev() {
		return "dev"
	}
	return version
}

// IsDev determines if this is a dev version.
func IsDev() bool { return version == "0.0.0" || version == "" }

// Sem returns the parsed release version. Dev builds resolve to 0.0.0.
func Sem() *semver.Version {
	once.Do(func() {
		var err error
		sem, err = semver.NewVersion(Get())
		if err != nil {
			sem = semver.Must(semver.NewVersion("0.0.0"))
		}
	})
	return sem
}

// ProductToken returns the tag used as the TAPI application name and in
// event source descriptions.
func ProductToken() string { return fmt.Sprintf("wincall/%s", Get()) }

// Info stores the release along with the commit and build date.
type Info struct {
	Version *semver.Version
	Commit  string
	Date    string
}

// New parses the version string. An empty version yields a dev build.
func New(v, commit, date string) (Info, error) {
	info := Info{Commit: commit, Date: date}
	if v == "" || v == "0.0.0" {
		return info, nil
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return info, fmt.Errorf("invalid release version %q: %v", v, err)
	}
	info.Version = sv
	return info, nil
}

// String returns the dotted release or dev.
func (i Info) String() string {
	if i.Version == nil {
		return "dev"
	}
	return i.Version.String()
}

// Render writes the version table to w. Extra rows are appended after the
// build information, one per key/value pair.
func (i Info) Render(w io.Writer, extra ...[2]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"Version", i.String()})
	if i.Version != nil && i.Version.Prerelease() != "" {
		t.AppendRow(table.Row{"Pre-release", i.Version.Prerelease()})
	}
	t.AppendRow(table.Row{"Commit", i.Commit})
	t.AppendRow(table.Row{"Build date", i.Date})

	t.AppendSeparator()

	t.AppendRow(table.Row{"Go compiler", runtime.Version()})
	t.AppendRow(table.Row{"Platform", runtime.GOOS + "/" + runtime.GOARCH})
	for _, kv := range extra {
		t.AppendRow(table.Row{kv[0], kv[1]})
	}

	t.Render()
}
