//go:build windows

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
	"testing"

	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckArch(t *testing.T) {
	var tests = []struct {
		arch string
		err  error
	}{
		{"amd64", nil},
		{"arm64", nil},
		{"386", errs.ErrUnsupportedArch},
		{"arm", errs.ErrUnsupportedArch},
	}

	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			assert.Equal(t, tt.err, checkArch(tt.arch))
		})
	}
}
