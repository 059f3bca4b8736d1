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

package telephony

import (
	"testing"

	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	s, err := newSession(newFakeLine(lineDevice{version: tapi.TAPIVersion2_0}), testConfig())
	require.NoError(t, err)

	var tests = []struct {
		address string
		want    *Translation
		err     bool
	}{
		{
			"+385 1 4444555",
			&Translation{
				Dialable:       "9 011 385 1 4444555",
				Displayable:    "+385 1 4444555",
				CurrentCountry: 1,
				DestCountry:    385,
				Results:        []string{"canonical", "international"},
			},
			false,
		},
		{"4444555", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			tr, err := s.Translate(0, tt.address, 0)
			if tt.err {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "lineTranslateAddress")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr)
		})
	}
}

func TestLocations(t *testing.T) {
	s, err := newSession(newFakeLine(), testConfig())
	require.NoError(t, err)

	locs, err := s.Locations()
	require.NoError(t, err)
	assert.Equal(t, "1", locs.Country)
	assert.Equal(t, "425", locs.City)

	require.Len(t, locs.Locations, 2)
	home, office := locs.Locations[0], locs.Locations[1]
	assert.Equal(t, "Home", home.Name)
	assert.Equal(t, "1", home.CityCode)
	assert.Equal(t, "0", home.LongDistanceAccessCode)
	assert.Equal(t, uint32(385), home.CountryCode)
	assert.Equal(t, uint32(7), home.PreferredCardID)
	assert.False(t, home.Current)
	assert.Equal(t, "Office", office.Name)
	assert.Equal(t, "9", office.LocalAccessCode)
	assert.True(t, office.Current)

	require.Len(t, locs.Cards, 1)
	assert.Equal(t, Card{ID: 7, Name: "Direct Dial", NumberDigits: 12, SameAreaRule: "G", Preferred: true}, locs.Cards[0])
}

func TestEntriesOutOfRange(t *testing.T) {
	buf := make([]byte, 16)
	assert.Nil(t, entries[tapi.LineCardEntry](buf, 0, 1))
	assert.Nil(t, entries[tapi.LineCardEntry](buf, 0, 0))
}
