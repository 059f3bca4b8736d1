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

package directory

import (
	"context"
	"testing"
	"time"

	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestSearchPrefs(t *testing.T) {
	prefs := searchPrefs(Query{Scope: adsi.ADS_SCOPE_ONELEVEL, ChaseReferrals: adsi.ADS_CHASE_REFERRALS_ALWAYS})
	require.Len(t, prefs, 2)
	assert.Equal(t, adsi.ADS_SEARCHPREF_SEARCH_SCOPE, prefs[0].SearchPref)
	assert.Equal(t, uint32(adsi.ADS_SCOPE_ONELEVEL), prefs[0].Value.Int())
	assert.Equal(t, adsi.ADS_SEARCHPREF_CHASE_REFERRALS, prefs[1].SearchPref)
	assert.Equal(t, uint32(adsi.ADS_CHASE_REFERRALS_ALWAYS), prefs[1].Value.Int())

	prefs = searchPrefs(Query{PageSize: 500, SizeLimit: 20, TimeLimit: 1500 * time.Millisecond})
	require.Len(t, prefs, 5)
	byPref := make(map[adsi.ADsSearchPref]uint32)
	for i := range prefs {
		assert.Equal(t, adsi.ADSTYPE_INTEGER, prefs[i].Value.Type)
		byPref[prefs[i].SearchPref] = prefs[i].Value.Int()
	}
	assert.Equal(t, uint32(500), byPref[adsi.ADS_SEARCHPREF_PAGESIZE])
	assert.Equal(t, uint32(20), byPref[adsi.ADS_SEARCHPREF_SIZE_LIMIT])
	assert.Equal(t, uint32(2), byPref[adsi.ADS_SEARCHPREF_TIME_LIMIT])
}

func TestColumnValues(t *testing.T) {
	vals := []adsi.ADsValue{
		adsi.NewIntegerValue(512),
		adsi.NewBooleanValue(true),
		adsi.NewLargeIntegerValue(132537600000000000),
		adsi.NewStringValue(adsi.ADSTYPE_CASE_IGNORE_STRING, utf16(t, "jdoe")),
	}
	assert.Equal(t, []interface{}{uint32(512), true, int64(132537600000000000), "jdoe"}, columnValues(vals))
}

type fakeCursor struct {
	rows []adsi.HResult
	more []uint32
}

func (c *fakeCursor) GetFirstRow(h adsi.ADsSearchHandle) adsi.HResult { return c.next() }
func (c *fakeCursor) GetNextRow(h adsi.ADsSearchHandle) adsi.HResult  { return c.next() }

func (c *fakeCursor) next() adsi.HResult {
	if len(c.rows) == 0 {
		return adsi.S_ADS_NOMORE_ROWS
	}
	hr := c.rows[0]
	c.rows = c.rows[1:]
	return hr
}

func (c *fakeCursor) lastErr() uint32 {
	if len(c.more) == 0 {
		return 0
	}
	code := c.more[0]
	c.more = c.more[1:]
	return code
}

func TestWalkRows(t *testing.T) {
	const ok = adsi.HResult(0)
	var tests = []struct {
		name string
		rows []adsi.HResult
		more []uint32
		want int
		err  bool
	}{
		{"empty", nil, nil, 0, false},
		{"single page", []adsi.HResult{ok, ok, ok}, nil, 3, false},
		{"next page pending", []adsi.HResult{ok, ok, adsi.S_ADS_NOMORE_ROWS, ok, ok}, []uint32{uint32(windows.ERROR_MORE_DATA), 0}, 4, false},
		{"pending on first row", []adsi.HResult{adsi.S_ADS_NOMORE_ROWS, ok}, []uint32{uint32(windows.ERROR_MORE_DATA), 0}, 1, false},
		{"failed row", []adsi.HResult{ok, adsi.E_ADS_BAD_PARAMETER}, nil, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCursor{rows: tt.rows, more: tt.more}
			var n int
			err := walkRows(context.Background(), c, 0, c.lastErr, func() error {
				n++
				return nil
			})
			if tt.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestWalkRowsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &fakeCursor{rows: []adsi.HResult{0, 0}}
	err := walkRows(ctx, c, 0, c.lastErr, func() error { return nil })
	assert.Equal(t, context.Canceled, err)
}

func TestADSISearchLive(t *testing.T) {
	if _, err := LocateDC("", 0); err != nil {
		if err == errs.ErrNoDomain {
			t.Skip("computer is not joined to a domain")
		}
		t.Skipf("no domain controller reachable: %v", err)
	}
	s, err := NewADSISearcher(testADSIConfig())
	require.NoError(t, err)
	q := Query{Filter: "(objectClass=domainDNS)", Attributes: []string{"distinguishedName", "name"}, Scope: adsi.ADS_SCOPE_BASE}
	entries, err := s.Search(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].DN)
}
