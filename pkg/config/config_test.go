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

package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFromFile(t *testing.T, file string, args ...string) *Config {
	c := NewWithOpts(WithAll())
	require.NoError(t, c.flags.Parse(append([]string{"--config-file=" + file}, args...)))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, c.TryLoadFile(c.File()))
	return c
}

func TestNewFromYamlFile(t *testing.T) {
	c := newFromFile(t, "_fixtures/wincall.yml")

	require.NoError(t, c.Init())
	require.NoError(t, c.Validate())

	assert.Equal(t, "dialer", c.TAPI.AppName)
	assert.Equal(t, uint32(0x00020000), c.TAPI.APIVersionLow)
	assert.Equal(t, uint32(0x00030000), c.TAPI.APIVersionHigh)
	assert.Equal(t, time.Millisecond*250, c.TAPI.MessageTimeout)
	assert.Equal(t, 50, c.TAPI.PollRate)
	assert.Equal(t, 10, c.TAPI.PollBurst)

	assert.Equal(t, "LDAP://OU=Staff,DC=corp,DC=local", c.ADSI.Path)
	assert.Equal(t, []string{"secure", "use-signing"}, c.ADSI.AuthFlags)
	assert.Equal(t, 200, c.ADSI.PageSize)
	assert.Equal(t, ScopeOneLevel, c.ADSI.Scope)
	assert.Equal(t, 1000, c.ADSI.SizeLimit)
	assert.Equal(t, time.Second*30, c.ADSI.TimeLimit)
	assert.Equal(t, "subordinate", c.ADSI.ChaseReferrals)

	assert.True(t, c.ADSI.LDAP.Enabled())
	assert.True(t, c.ADSI.LDAP.TLS)
	assert.Equal(t, "dc01.corp.local:636", c.ADSI.LDAP.Address())
	assert.Equal(t, "DC=corp,DC=local", c.ADSI.LDAP.BaseDN)

	require.Len(t, c.ADSI.Queries, 2)
	q, ok := c.ADSI.Query("disabled-users")
	require.True(t, ok)
	assert.Equal(t, "(&(objectCategory=person)(objectClass=user)(userAccountControl:1.2.840.113556.1.4.803:=2))", q.Filter)
	assert.Equal(t, []string{"sAMAccountName", "userAccountControl"}, q.Attributes)
	assert.Equal(t, ScopeOneLevel, q.Scope)
	q, ok = c.ADSI.Query("domain-controllers")
	require.True(t, ok)
	assert.Equal(t, ScopeSubtree, q.Scope)
	assert.Equal(t, "LDAP://OU=Domain Controllers,DC=corp,DC=local", q.Path)
	_, ok = c.ADSI.Query("printers")
	assert.False(t, ok)

	assert.Equal(t, time.Second*2, c.WEC.Retry.InitialInterval)
	assert.Equal(t, time.Minute, c.WEC.Retry.MaxInterval)
	assert.Equal(t, time.Minute*10, c.WEC.Retry.MaxElapsed)
	assert.Equal(t, "push", c.WEC.DeliveryMode)
	assert.Equal(t, "rendered-text", c.WEC.ContentFormat)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "text", c.Log.Formatter)
	assert.Equal(t, 20, c.Log.MaxSize)
}

func TestNewFromJsonFile(t *testing.T) {
	c := newFromFile(t, "_fixtures/wincall.json")

	require.NoError(t, c.Init())
	require.NoError(t, c.Validate())

	assert.Equal(t, uint32(0x00010004), c.TAPI.APIVersionLow)
	assert.Equal(t, uint32(0x00020002), c.TAPI.APIVersionHigh)
	assert.Equal(t, 5, c.TAPI.PollRate)
	assert.Equal(t, time.Second*90, c.WEC.Retry.MaxElapsed)
	// defaults from flags
	assert.Equal(t, time.Second, c.TAPI.MessageTimeout)
	assert.Equal(t, ScopeSubtree, c.ADSI.Scope)
	assert.Equal(t, 500, c.ADSI.PageSize)
	assert.False(t, c.ADSI.LDAP.Enabled())
	assert.Empty(t, c.ADSI.Queries)
}

func TestFlagsOverrideFile(t *testing.T) {
	c := newFromFile(t, "_fixtures/wincall.yml", "--adsi.page-size=50", "--tapi.app-name=console")

	require.NoError(t, c.Init())

	assert.Equal(t, 50, c.ADSI.PageSize)
	assert.Equal(t, "console", c.TAPI.AppName)
}

func TestInvalidConfig(t *testing.T) {
	c := newFromFile(t, "_fixtures/invalid.yml")

	require.Error(t, c.Init())
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestInitRejectsInvertedVersions(t *testing.T) {
	c := NewWithOpts(WithTAPI())
	require.NoError(t, c.flags.Parse([]string{"--tapi.api-version-low=3.0", "--tapi.api-version-high=2.0"}))
	require.NoError(t, c.viper.BindPFlags(c.flags))

	err := c.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tapi.api-version-low 3.0 is greater than tapi.api-version-high 2.0")
}

func TestSectionFlags(t *testing.T) {
	c := NewWithOpts(WithWEC())
	assert.NotNil(t, c.flags.Lookup("wec.retry.max-elapsed"))
	assert.NotNil(t, c.flags.Lookup("logging.level"))
	assert.Nil(t, c.flags.Lookup("tapi.app-name"))
	assert.Nil(t, c.flags.Lookup("adsi.scope"))

	cmd := &cobra.Command{Use: "wec"}
	c.MustViperize(cmd)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("wec.delivery-mode"))
}

func TestParseAPIVersion(t *testing.T) {
	var tests = []struct {
		in  string
		ver uint32
		err bool
	}{
		{"1.4", 0x00010004, false},
		{"2.2", 0x00020002, false},
		{"3.1", 0x00030001, false},
		{"3", 0, true},
		{"x.1", 0, true},
		{"1.70000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ver, err := ParseAPIVersion(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ver, ver)
			assert.Equal(t, tt.in, FormatAPIVersion(ver))
		})
	}
}

func TestPrint(t *testing.T) {
	c := newFromFile(t, "_fixtures/wincall.yml")

	out := c.Print()
	assert.Contains(t, out, "tapi")
	assert.Contains(t, out, "app-name=>dialer")
	assert.Contains(t, out, "auth-flags=>secure;use-signing")
	assert.Contains(t, out, "password=>********")
	assert.NotContains(t, out, "changeit")
}
