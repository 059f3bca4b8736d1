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

package tapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineErr(t *testing.T) {
	var tests = []struct {
		err  LineErr
		code int32
		want string
	}{
		{LINEERR_ALLOCATED, -0x7FFFFFFF, "LINEERR_ALLOCATED"},
		{LINEERR_INVALPARAM, -0x7FFFFFCE, "LINEERR_INVALPARAM"},
		{LINEERR_STRUCTURETOOSMALL, -0x7FFFFFB3, "LINEERR_STRUCTURETOOSMALL"},
		{LINEERR_SERVICE_NOT_RUNNING, -0x7FFFFF9F, "LINEERR_SERVICE_NOT_RUNNING"},
		{LineErr(0x80000004), -0x7FFFFFFC, "LINEERR 0x80000004"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.code, tt.err.Code())
		})
	}
}

func TestPhoneErr(t *testing.T) {
	assert.Equal(t, "PHONEERR_RESOURCEUNAVAIL", PHONEERR_RESOURCEUNAVAIL.Error())
	assert.Equal(t, "PHONEERR 0x9000001E", PhoneErr(0x9000001E).Error())
	assert.Equal(t, PhoneErr(0x90000025), PHONEERR_SERVICE_NOT_RUNNING)
}

func TestRequestErr(t *testing.T) {
	assert.Equal(t, "TAPIERR_DESTBUSY", TAPIERR_DESTBUSY.Error())
	assert.Equal(t, "TAPIERR_SCP_DOES_NOT_EXIST", TAPIERR_SCP_DOES_NOT_EXIST.Error())
	assert.Equal(t, "TAPIERR -99", RequestErr(-99).Error())
}

func TestHResult(t *testing.T) {
	assert.Equal(t, "TAPI_E_NOTOWNER", TAPI_E_NOTOWNER.Error())
	assert.Equal(t, "TAPI_E_RESOURCEUNAVAIL", TAPI_E_RESOURCEUNAVAIL.Error())
	assert.Equal(t, "HRESULT 0x80004005", HResult(0x80004005).Error())
	assert.True(t, TAPI_E_DROPPED.Failed())
	assert.False(t, HResult(1).Failed())
}

func TestLineResult(t *testing.T) {
	id, err := lineResult(42)
	require.NoError(t, err)
	assert.Equal(t, int32(42), id)

	_, err = lineResult(int32(-0x7FFFFFBC))
	require.Error(t, err)
	assert.True(t, errors.Is(err, LINEERR_NOMEM))

	err = phoneErr(int32(-0x6FFFFFDE))
	assert.Equal(t, PHONEERR_UNINITIALIZED, err)
}

func TestParseError(t *testing.T) {
	var tests = []struct {
		code int32
		want error
	}{
		{int32(-2147483646), LINEERR_BADDEVICEID},
		{int32(-1879048190), PHONEERR_BADDEVICEID},
		{-11, TAPIERR_DESTBUSY},
		{0, TAPIERR_CONNECTED},
		{5, nil},
		{-100, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseError(tt.code))
	}
}

func TestKnownErrors(t *testing.T) {
	errs := KnownErrors()
	require.Len(t, errs, len(lineErrNames)+len(phoneErrNames))
	assert.Equal(t, LINEERR_ALLOCATED, errs[0])
	assert.Equal(t, PHONEERR_SERVICE_NOT_RUNNING, errs[len(errs)-1])
}
