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
	"unsafe"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
)

// Translation is the outcome of translating a canonical address.
type Translation struct {
	Dialable       string
	Displayable    string
	CurrentCountry uint32
	DestCountry    uint32
	Results        []string
}

// Location is a dialing location defined in the telephony control panel.
type Location struct {
	ID                     uint32
	Name                   string
	CountryCode            uint32
	CountryID              uint32
	CityCode               string
	LocalAccessCode        string
	LongDistanceAccessCode string
	TollPrefixes           string
	CancelCallWaiting      string
	PreferredCardID        uint32
	Options                uint32
	Current                bool
}

// Card is a calling card available for address translation.
type Card struct {
	ID                uint32
	Name              string
	NumberDigits      uint32
	SameAreaRule      string
	LongDistanceRule  string
	InternationalRule string
	Options           uint32
	Preferred         bool
}

// Locations aggregates the address translation capabilities.
type Locations struct {
	// Country and City are the codes of the current location.
	Country   string
	City      string
	Locations []Location
	Cards     []Card
}

var translateResultNames = map[uint32]string{
	tapi.LINETRANSLATERESULT_CANONICAL:     "canonical",
	tapi.LINETRANSLATERESULT_INTERNATIONAL: "international",
	tapi.LINETRANSLATERESULT_LONGDISTANCE:  "long-distance",
	tapi.LINETRANSLATERESULT_LOCAL:         "local",
	tapi.LINETRANSLATERESULT_INTOLLLIST:    "in-toll-list",
	tapi.LINETRANSLATERESULT_NOTINTOLLLIST: "not-in-toll-list",
	tapi.LINETRANSLATERESULT_DIALBILLING:   "dial-billing",
	tapi.LINETRANSLATERESULT_DIALQUIET:     "dial-quiet",
	tapi.LINETRANSLATERESULT_DIALDIALTONE:  "dial-dialtone",
	tapi.LINETRANSLATERESULT_DIALPROMPT:    "dial-prompt",
	tapi.LINETRANSLATERESULT_VOICEDETECT:   "voice-detect",
	tapi.LINETRANSLATERESULT_NOTRANSLATION: "no-translation",
}

// Translate converts the canonical address into the dialable form for the
// current location using the device's negotiated API version.
func (s *Session) Translate(deviceID uint32, address string, options uint32) (*Translation, error) {
	ver, err := s.negotiate(deviceID)
	if err != nil {
		return nil, err
	}
	b, err := s.api.translateAddress(s.app, deviceID, ver, address, 0, options)
	if err != nil {
		return nil, errors.Wrapf(err, "lineTranslateAddress(%q)", address)
	}
	out := b.Ptr()
	return &Translation{
		Dialable:       b.String(out.DialableStringOffset, out.DialableStringSize, tapi.STRINGFORMAT_UNICODE),
		Displayable:    b.String(out.DisplayableStringOffset, out.DisplayableStringSize, tapi.STRINGFORMAT_UNICODE),
		CurrentCountry: out.CurrentCountry,
		DestCountry:    out.DestCountry,
		Results:        tapi.FlagNames(out.TranslateResults, translateResultNames),
	}, nil
}

// Locations returns the dialing locations and calling cards. The current
// location is flagged and so is the preferred card.
func (s *Session) Locations() (*Locations, error) {
	b, err := s.api.translateCaps(s.app, s.cfg.APIVersionHigh)
	if err != nil {
		return nil, errors.Wrap(err, "lineGetTranslateCaps")
	}
	caps := b.Ptr()
	buf := b.Bytes()
	str := func(offset, size uint32) string {
		return tapi.VarStringAt(buf, offset, size, tapi.STRINGFORMAT_UNICODE)
	}

	locs := &Locations{}
	for _, e := range entries[tapi.LineLocationEntry](buf, caps.LocationListOffset, caps.NumLocations) {
		locs.Locations = append(locs.Locations, Location{
			ID:                     e.PermanentLocationID,
			Name:                   str(e.LocationNameOffset, e.LocationNameSize),
			CountryCode:            e.CountryCode,
			CountryID:              e.CountryID,
			CityCode:               str(e.CityCodeOffset, e.CityCodeSize),
			LocalAccessCode:        str(e.LocalAccessCodeOffset, e.LocalAccessCodeSize),
			LongDistanceAccessCode: str(e.LongDistanceAccessCodeOffset, e.LongDistanceAccessCodeSize),
			TollPrefixes:           str(e.TollPrefixListOffset, e.TollPrefixListSize),
			CancelCallWaiting:      str(e.CancelCallWaitingOffset, e.CancelCallWaitingSize),
			PreferredCardID:        e.PreferredCardID,
			Options:                e.Options,
			Current:                e.PermanentLocationID == caps.CurrentLocationID,
		})
	}
	for _, e := range entries[tapi.LineCardEntry](buf, caps.CardListOffset, caps.NumCards) {
		locs.Cards = append(locs.Cards, Card{
			ID:                e.PermanentCardID,
			Name:              str(e.CardNameOffset, e.CardNameSize),
			NumberDigits:      e.CardNumberDigits,
			SameAreaRule:      str(e.SameAreaRuleOffset, e.SameAreaRuleSize),
			LongDistanceRule:  str(e.LongDistanceRuleOffset, e.LongDistanceRuleSize),
			InternationalRule: str(e.InternationalRuleOffset, e.InternationalRuleSize),
			Options:           e.Options,
			Preferred:         e.PermanentCardID == caps.CurrentPreferredCardID,
		})
	}

	locs.Country, locs.City, err = s.api.locationInfo()
	if err != nil {
		return nil, errors.Wrap(err, "tapiGetLocationInfo")
	}
	return locs, nil
}

// entries copies count fixed-size records located at offset in the variable part of a structure.
func entries[T any](buf []byte, offset, count uint32) []T {
	var t T
	size := uint64(unsafe.Sizeof(t))
	if count == 0 || uint64(offset)+size*uint64(count) > uint64(len(buf)) {
		return nil
	}
	out := make([]T, count)
	for i := range out {
		out[i] = *(*T)(unsafe.Pointer(&buf[uint64(offset)+uint64(i)*size]))
	}
	return out
}
