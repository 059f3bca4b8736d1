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

package directory

import (
	"testing"

	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameFormat(t *testing.T) {
	var tests = []struct {
		s    string
		want adsi.DsNameFormat
		err  bool
	}{
		{"nt4", adsi.DS_NT4_ACCOUNT_NAME, false},
		{"DN", adsi.DS_FQDN_1779_NAME, false},
		{"upn", adsi.DS_USER_PRINCIPAL_NAME, false},
		{"canonical-ex", adsi.DS_CANONICAL_NAME_EX, false},
		{"sid", adsi.DS_SID_OR_SID_HISTORY_NAME, false},
		{"x500", 0, true},
	}

	for _, tt := range tests {
		f, err := ParseNameFormat(tt.s)
		if tt.err {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, f)
	}
}

func TestCrackedNames(t *testing.T) {
	names := []string{`CORP\jdoe`, `CORP\ghost`}
	items := []adsi.DsNameResultItem{
		{Status: adsi.DS_NAME_NO_ERROR, Domain: utf16(t, "corp.example.com"), Name: utf16(t, "CN=jdoe,CN=Users,DC=corp,DC=example,DC=com")},
		{Status: adsi.DS_NAME_ERROR_NOT_FOUND},
	}

	out := crackedNames(names, items)
	require.Len(t, out, 2)
	assert.Equal(t, CrackedName{
		Input:  `CORP\jdoe`,
		Name:   "CN=jdoe,CN=Users,DC=corp,DC=example,DC=com",
		Domain: "corp.example.com",
		Status: adsi.DS_NAME_NO_ERROR,
	}, out[0])
	assert.True(t, out[0].Resolved())
	assert.False(t, out[1].Resolved())
	assert.Equal(t, `CORP\ghost`, out[1].Input)
	assert.Equal(t, "DS_NAME_ERROR_NOT_FOUND", out[1].Status.String())
}

func TestCrackNoNames(t *testing.T) {
	out, err := Crack("", nil, adsi.DS_NT4_ACCOUNT_NAME, adsi.DS_FQDN_1779_NAME)
	require.NoError(t, err)
	assert.Nil(t, out)
}
