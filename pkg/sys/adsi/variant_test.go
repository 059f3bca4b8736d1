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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantScalars(t *testing.T) {
	i := NewInt32Variant(-42)
	assert.Equal(t, int32(-42), i.Value())

	b := NewBoolVariant(true)
	assert.Equal(t, true, b.Value())
	f := NewBoolVariant(false)
	assert.Equal(t, false, f.Value())

	var empty Variant
	assert.Nil(t, empty.Value())
	assert.Nil(t, empty.BSTR())
	assert.Nil(t, empty.Array())
}

func TestBSTRVariant(t *testing.T) {
	v, err := NewBSTRVariant("LDAP://rootDSE")
	require.NoError(t, err)
	defer v.Clear()

	assert.Equal(t, VT_BSTR, v.VT)
	assert.Equal(t, "LDAP://rootDSE", v.Value())
	assert.Equal(t, uint32(14), SysStringLen(v.BSTR()))
}

func TestTakeBSTR(t *testing.T) {
	b, err := AllocBSTR("a")
	require.NoError(t, err)
	assert.Equal(t, "a", TakeBSTR(b))
	assert.Equal(t, "", BSTRToString(nil))
}

func TestOleDateToTime(t *testing.T) {
	var tests = []struct {
		date float64
		want time.Time
	}{
		{0, time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)},
		{2.5, time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC)},
		{-1.25, time.Date(1899, 12, 29, 6, 0, 0, 0, time.UTC)},
		{45000.75, time.Date(2023, 3, 15, 18, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OleDateToTime(tt.date))
	}
}
