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
	"sync"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/config"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/rabbitstack/wincall/pkg/util/guid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// Phone describes a phone device.
type Phone struct {
	ID             uint32
	APIVersion     uint32
	Name           string
	Provider       string
	Info           string
	PermanentID    uint32
	GUID           string
	HookSwitchDevs []string
	DisplayRows    uint32
	DisplayColumns uint32
	NumRingModes   uint32
	NumButtonLamps uint32
	DeviceClasses  []string
}

// PhoneState is the momentary status of an open phone device.
type PhoneState struct {
	OffHook     []string
	HandsetMode []string
	SpeakerMode []string
	HeadsetMode []string
	RingMode    uint32
	RingVolume  uint32
	Display     string
	Owner       string
	NumOwners   uint32
	NumMonitors uint32
}

// PhoneSession is the application's registration with the telephony service for phone devices.
type PhoneSession struct {
	api     phoneAPI
	app     tapi.HPhoneApp
	event   windows.Handle
	numDevs uint32
	cfg     config.TAPIConfig

	mu       sync.Mutex
	versions map[uint32]uint32
}

// NewPhoneSession initializes phone usage with event handle notification.
func NewPhoneSession(cfg config.TAPIConfig) (*PhoneSession, error) {
	return newPhoneSession(sysPhone{}, cfg)
}

func newPhoneSession(api phoneAPI, cfg config.TAPIConfig) (*PhoneSession, error) {
	params := &tapi.PhoneInitializeExParams{Options: tapi.LINEINITIALIZEEXOPTION_USEEVENT}
	app, numDevs, err := api.initialize(cfg.AppName, cfg.APIVersionHigh, params)
	if err != nil {
		return nil, errors.Wrap(err, "phoneInitializeEx")
	}
	log.Debugf("initialized phone usage for %s with %d device(s)", cfg.AppName, numDevs)
	return &PhoneSession{
		api:      api,
		app:      app,
		event:    params.Event,
		numDevs:  numDevs,
		cfg:      cfg,
		versions: make(map[uint32]uint32),
	}, nil
}

// NumDevices returns the number of phone devices reported at initialization.
func (s *PhoneSession) NumDevices() uint32 { return s.numDevs }

// Close shuts down the phone usage.
func (s *PhoneSession) Close() error {
	if err := s.api.shutdown(s.app); err != nil {
		return errors.Wrap(err, "phoneShutdown")
	}
	return nil
}

// Devices enumerates the phone devices skipping the ones that fail to negotiate.
func (s *PhoneSession) Devices() ([]Phone, error) {
	phones := make([]Phone, 0, s.numDevs)
	for id := uint32(0); id < s.numDevs; id++ {
		phone, err := s.Device(id)
		if err != nil {
			log.Warnf("skipping phone device %d: %v", id, err)
			continue
		}
		phones = append(phones, *phone)
	}
	return phones, nil
}

// Device returns the capabilities of a single phone device.
func (s *PhoneSession) Device(id uint32) (*Phone, error) {
	ver, err := s.negotiate(id)
	if err != nil {
		return nil, err
	}
	b, err := s.api.devCaps(s.app, id, ver)
	if err != nil {
		return nil, errors.Wrapf(err, "phoneGetDevCaps(%d)", id)
	}
	caps := b.Ptr()
	phone := &Phone{
		ID:             id,
		APIVersion:     ver,
		Name:           b.String(caps.PhoneNameOffset, caps.PhoneNameSize, caps.StringFormat),
		Provider:       b.String(caps.ProviderInfoOffset, caps.ProviderInfoSize, caps.StringFormat),
		Info:           b.String(caps.PhoneInfoOffset, caps.PhoneInfoSize, caps.StringFormat),
		PermanentID:    caps.PermanentPhoneID,
		HookSwitchDevs: tapi.FlagNames(caps.HookSwitchDevs, tapi.HookSwitchDevNames),
		DisplayRows:    caps.DisplayNumRows,
		DisplayColumns: caps.DisplayNumColumns,
		NumRingModes:   caps.NumRingModes,
		NumButtonLamps: caps.NumButtonLamps,
	}
	if ver >= tapi.TAPIVersion2_0 {
		phone.DeviceClasses = tapi.MultiStringAt(b.Bytes(), caps.DeviceClassesOffset, caps.DeviceClassesSize, tapi.STRINGFORMAT_UNICODE)
	}
	if ver >= tapi.TAPIVersion2_2 && !guid.IsZero(caps.PermanentPhoneGUID) {
		phone.GUID = guid.String(caps.PermanentPhoneGUID)
	}
	return phone, nil
}

// Status opens the phone with monitor privileges and samples its status.
func (s *PhoneSession) Status(id uint32) (*PhoneState, error) {
	ver, err := s.negotiate(id)
	if err != nil {
		return nil, err
	}
	phone, err := s.api.open(s.app, id, ver, tapi.PHONEPRIVILEGE_MONITOR)
	if err != nil {
		return nil, errors.Wrapf(err, "phoneOpen(%d)", id)
	}
	defer func() {
		if err := s.api.close(phone); err != nil {
			log.Warnf("unable to close phone device %d: %v", id, err)
		}
	}()
	b, err := s.api.status(phone)
	if err != nil {
		return nil, errors.Wrapf(err, "phoneGetStatus(%d)", id)
	}
	st := b.Ptr()
	state := &PhoneState{
		HandsetMode: tapi.FlagNames(st.HandsetHookSwitchMode, tapi.HookSwitchModeNames),
		SpeakerMode: tapi.FlagNames(st.SpeakerHookSwitchMode, tapi.HookSwitchModeNames),
		HeadsetMode: tapi.FlagNames(st.HeadsetHookSwitchMode, tapi.HookSwitchModeNames),
		RingMode:    st.RingMode,
		RingVolume:  st.RingVolume,
		Owner:       b.String(st.OwnerNameOffset, st.OwnerNameSize, tapi.STRINGFORMAT_UNICODE),
		NumOwners:   st.NumOwners,
		NumMonitors: st.NumMonitors,
	}
	devs, err := s.api.hookSwitch(phone)
	if err != nil {
		log.Debugf("unable to get hook switch of phone device %d: %v", id, err)
	} else {
		state.OffHook = tapi.FlagNames(devs, tapi.HookSwitchDevNames)
	}
	display, err := s.api.display(phone)
	if err != nil {
		log.Debugf("unable to get display of phone device %d: %v", id, err)
	} else {
		vs := display.Ptr()
		state.Display = display.String(vs.StringOffset, vs.StringSize, vs.StringFormat)
	}
	return state, nil
}

func (s *PhoneSession) negotiate(id uint32) (uint32, error) {
	if id >= s.numDevs {
		return 0, errs.ErrDeviceNotFound{Kind: "phone", ID: id}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ver, ok := s.versions[id]; ok {
		return ver, nil
	}
	ver, err := s.api.negotiateAPIVersion(s.app, id, s.cfg.APIVersionLow, s.cfg.APIVersionHigh)
	if err != nil {
		return 0, errors.Wrapf(err, "phoneNegotiateAPIVersion(%d)", id)
	}
	s.versions[id] = ver
	return ver, nil
}
