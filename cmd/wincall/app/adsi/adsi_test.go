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

	"github.com/rabbitstack/wincall/pkg/config"
	sys "github.com/rabbitstack/wincall/pkg/sys/adsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUserFlags(t *testing.T) {
	uac, err := encodeUserFlags([]string{"NORMAL_ACCOUNT", "ADS_UF_DONT_EXPIRE_PASSWD"})
	require.NoError(t, err)
	assert.Equal(t, uint32(sys.ADS_UF_NORMAL_ACCOUNT|sys.ADS_UF_DONT_EXPIRE_PASSWD), uac)
	assert.Equal(t, []string{"NORMAL_ACCOUNT", "DONT_EXPIRE_PASSWD"}, sys.UserFlags(uac))

	_, err = encodeUserFlags([]string{"ADMIN"})
	require.Error(t, err)
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "a; 2; ", formatValues([]interface{}{"a", int32(2), nil}))
	assert.Equal(t, "", formatValues(nil))
}

func TestBuildQuery(t *testing.T) {
	defer func() { query, path, scope, attrs = "", "", "", nil }()

	cfg.ADSI = config.ADSIConfig{
		Path:           "LDAP://DC=corp,DC=local",
		Scope:          config.ScopeSubtree,
		PageSize:       500,
		ChaseReferrals: "never",
		Queries: []config.Query{
			{Name: "admins", Filter: "(adminCount=1)", Attributes: []string{"sAMAccountName"}},
		},
	}

	_, err := buildQuery(nil)
	require.Error(t, err)

	q, err := buildQuery([]string{"(objectClass=user)"})
	require.NoError(t, err)
	assert.Equal(t, "(objectClass=user)", q.Filter)
	assert.Equal(t, "LDAP://DC=corp,DC=local", q.Path)
	assert.Equal(t, sys.ADS_SCOPE_SUBTREE, q.Scope)

	query = "admins"
	q, err = buildQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, "(adminCount=1)", q.Filter)
	assert.Equal(t, []string{"sAMAccountName"}, q.Attributes)

	attrs = []string{"cn"}
	q, err = buildQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cn"}, q.Attributes)

	_, err = buildQuery([]string{"(cn=*)"})
	require.Error(t, err)

	query = "missing"
	_, err = buildQuery(nil)
	require.Error(t, err)
}
