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

	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhone struct {
	versions   []uint32
	opened     []uint32
	closed     []tapi.HPhone
	noDisplay  bool
	isShutdown bool
}

func (f *fakePhone) initialize(appName string, apiVersion uint32, params *tapi.PhoneInitializeExParams) (tapi.HPhoneApp, uint32, error) {
	return 0x20, uint32(len(f.versions)), nil
}

func (f *fakePhone) shutdown(app tapi.HPhoneApp) error {
	f.isShutdown = true
	return nil
}

func (f *fakePhone) negotiateAPIVersion(app tapi.HPhoneApp, deviceID, lo, hi uint32) (uint32, error) {
	ver := f.versions[deviceID]
	if ver < lo || ver > hi {
		return 0, tapi.PHONEERR_INCOMPATIBLEAPIVERSION
	}
	return ver, nil
}

func (f *fakePhone) devCaps(app tapi.HPhoneApp, deviceID, apiVersion uint32) (*tapi.VarBuffer[tapi.PhoneCaps], error) {
	v := newVarBuilder[tapi.PhoneCaps]()
	caps := v.buf.Ptr()
	caps.StringFormat = tapi.STRINGFORMAT_UNICODE
	caps.PermanentPhoneID = 0x2000 + deviceID
	caps.HookSwitchDevs = tapi.PHONEHOOKSWITCHDEV_HANDSET | tapi.PHONEHOOKSWITCHDEV_SPEAKER
	caps.DisplayNumRows = 2
	caps.DisplayNumColumns = 40
	caps.NumRingModes = 3
	caps.NumButtonLamps = 12
	caps.PhoneNameSize, caps.PhoneNameOffset = v.str("Desk Phone")
	caps.ProviderInfoSize, caps.ProviderInfoOffset = v.str("TSP")
	caps.PhoneInfoSize, caps.PhoneInfoOffset = v.str("rev 2")
	caps.DeviceClassesSize, caps.DeviceClassesOffset = v.multi("tapi/phone")
	return v.buf, nil
}

func (f *fakePhone) open(app tapi.HPhoneApp, deviceID, apiVersion uint32, privilege uint32) (tapi.HPhone, error) {
	if privilege != tapi.PHONEPRIVILEGE_MONITOR {
		return 0, tapi.PHONEERR_INVALPRIVILEGE
	}
	f.opened = append(f.opened, deviceID)
	return tapi.HPhone(0x400 + deviceID), nil
}

func (f *fakePhone) close(phone tapi.HPhone) error {
	f.closed = append(f.closed, phone)
	return nil
}

func (f *fakePhone) status(phone tapi.HPhone) (*tapi.VarBuffer[tapi.PhoneStatus], error) {
	v := newVarBuilder[tapi.PhoneStatus]()
	st := v.buf.Ptr()
	st.NumMonitors = 1
	st.RingMode = 2
	st.RingVolume = 0x8000
	st.HandsetHookSwitchMode = tapi.PHONEHOOKSWITCHMODE_MICSPEAKER
	st.SpeakerHookSwitchMode = tapi.PHONEHOOKSWITCHMODE_ONHOOK
	st.OwnerNameSize, st.OwnerNameOffset = v.str("dialer.exe")
	return v.buf, nil
}

func (f *fakePhone) hookSwitch(phone tapi.HPhone) (uint32, error) {
	return tapi.PHONEHOOKSWITCHDEV_HANDSET, nil
}

func (f *fakePhone) display(phone tapi.HPhone) (*tapi.VarBuffer[tapi.VarString], error) {
	if f.noDisplay {
		return nil, tapi.PHONEERR_OPERATIONUNAVAIL
	}
	v := newVarBuilder[tapi.VarString]()
	vs := v.buf.Ptr()
	vs.StringFormat = tapi.STRINGFORMAT_UNICODE
	vs.StringSize, vs.StringOffset = v.str("Line 1 idle")
	return v.buf, nil
}

func TestPhoneDevices(t *testing.T) {
	f := &fakePhone{versions: []uint32{tapi.TAPIVersion2_0, tapi.TAPIVersion1_3}}
	s, err := newPhoneSession(f, testConfig())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), s.NumDevices())

	phones, err := s.Devices()
	require.NoError(t, err)
	require.Len(t, phones, 1)
	assert.Equal(t, Phone{
		ID:             0,
		APIVersion:     tapi.TAPIVersion2_0,
		Name:           "Desk Phone",
		Provider:       "TSP",
		Info:           "rev 2",
		PermanentID:    0x2000,
		HookSwitchDevs: []string{"handset", "speaker"},
		DisplayRows:    2,
		DisplayColumns: 40,
		NumRingModes:   3,
		NumButtonLamps: 12,
		DeviceClasses:  []string{"tapi/phone"},
	}, phones[0])

	require.NoError(t, s.Close())
	assert.True(t, f.isShutdown)
}

func TestPhoneStatus(t *testing.T) {
	var tests = []struct {
		name      string
		noDisplay bool
		display   string
	}{
		{"with display", false, "Line 1 idle"},
		{"without display", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakePhone{versions: []uint32{tapi.TAPIVersion3_0}, noDisplay: tt.noDisplay}
			s, err := newPhoneSession(f, testConfig())
			require.NoError(t, err)

			st, err := s.Status(0)
			require.NoError(t, err)
			assert.Equal(t, []string{"handset"}, st.OffHook)
			assert.Equal(t, []string{"mic-speaker"}, st.HandsetMode)
			assert.Equal(t, []string{"onhook"}, st.SpeakerMode)
			assert.Empty(t, st.HeadsetMode)
			assert.Equal(t, uint32(2), st.RingMode)
			assert.Equal(t, uint32(0x8000), st.RingVolume)
			assert.Equal(t, "dialer.exe", st.Owner)
			assert.Equal(t, tt.display, st.Display)
			assert.Equal(t, []uint32{0}, f.opened)
			assert.Equal(t, []tapi.HPhone{0x400}, f.closed)
		})
	}
}

func TestPhoneNotFound(t *testing.T) {
	s, err := newPhoneSession(&fakePhone{}, testConfig())
	require.NoError(t, err)
	_, err = s.Status(0)
	assert.True(t, errs.IsDeviceNotFound(err))
}
