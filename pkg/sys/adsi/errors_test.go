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

package adsi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/windows"
)

func TestHResult(t *testing.T) {
	var tests = []struct {
		hr       HResult
		failed   bool
		facility uint32
		name     string
	}{
		{S_OK, false, 0, "S_OK"},
		{S_ADS_NOMORE_ROWS, false, 0, "S_ADS_NOMORE_ROWS"},
		{E_ADS_PROPERTY_NOT_FOUND, true, 0, "E_ADS_PROPERTY_NOT_FOUND"},
		{E_ADS_BAD_PATHNAME, true, 0, "E_ADS_BAD_PATHNAME"},
		{E_NOINTERFACE, true, 0, "E_NOINTERFACE"},
		{E_ADS_INVALID_FILTER, true, 0, "E_ADS_INVALID_FILTER"},
		{HResult(0x80005FFF), true, 0, "HRESULT 0x80005FFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.failed, tt.hr.Failed())
			assert.Equal(t, !tt.failed, tt.hr.Succeeded())
			assert.Equal(t, tt.facility, tt.hr.Facility())
			assert.Equal(t, tt.name, tt.hr.Error())
		})
	}
}

func TestHResultWin32Facility(t *testing.T) {
	assert.Equal(t, uint32(7), E_ACCESSDENIED.Facility())
	assert.True(t, errors.Is(E_ACCESSDENIED, windows.ERROR_ACCESS_DENIED))
	assert.Equal(t, E_ACCESSDENIED, HResultFromWin32(windows.ERROR_ACCESS_DENIED))
	assert.Equal(t, S_OK, HResultFromWin32(0))
	assert.Contains(t, E_INVALIDARG.Error(), "HRESULT 0x80070057")
	assert.Nil(t, E_ADS_BAD_PATHNAME.Unwrap())
}

func TestHResultErr(t *testing.T) {
	assert.NoError(t, S_OK.Err())
	assert.NoError(t, S_ADS_ERRORSOCCURRED.Err())
	assert.Equal(t, E_FAIL, E_FAIL.Err())
}
