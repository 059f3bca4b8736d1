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

// Package telephony drives line and phone devices through the Telephony API.
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

// Device describes a line device along with the API version negotiated for it.
type Device struct {
	ID            uint32
	APIVersion    uint32
	Name          string
	Provider      string
	SwitchInfo    string
	PermanentID   uint32
	GUID          string
	MediaModes    []string
	BearerModes   []string
	Addresses     []string
	DeviceClasses []string
	MaxActive     uint32
}

// Session is the application's registration with the telephony service for line devices.
// Line events are delivered through the event handle selected at initialization time
// and are retrieved by lineGetMessage.
type Session struct {
	api     lineAPI
	app     tapi.HLineApp
	event   windows.Handle
	numDevs uint32
	cfg     config.TAPIConfig

	mu       sync.Mutex
	versions map[uint32]uint32

	monitoring uint32
}

// NewSession initializes line usage with event handle notification.
func NewSession(cfg config.TAPIConfig) (*Session, error) {
	return newSession(sysLine{}, cfg)
}

func newSession(api lineAPI, cfg config.TAPIConfig) (*Session, error) {
	params := &tapi.LineInitializeExParams{Options: tapi.LINEINITIALIZEEXOPTION_USEEVENT}
	app, numDevs, err := api.initialize(cfg.AppName, cfg.APIVersionHigh, params)
	if err != nil {
		return nil, errors.Wrap(err, "lineInitializeEx")
	}
	log.Debugf("initialized line usage for %s with %d device(s)", cfg.AppName, numDevs)
	return &Session{
		api:      api,
		app:      app,
		event:    params.Event,
		numDevs:  numDevs,
		cfg:      cfg,
		versions: make(map[uint32]uint32),
	}, nil
}

// NumDevices returns the number of line devices reported at initialization.
func (s *Session) NumDevices() uint32 { return s.numDevs }

// Event returns the event handle that is signaled when a line message is queued.
func (s *Session) Event() windows.Handle { return s.event }

// Close shuts down the line usage. Every line opened through the session is closed.
func (s *Session) Close() error {
	if err := s.api.shutdown(s.app); err != nil {
		return errors.Wrap(err, "lineShutdown")
	}
	return nil
}

// Devices enumerates the line devices. Devices for which the API version can't be
// negotiated in the configured range are skipped.
func (s *Session) Devices() ([]Device, error) {
	devices := make([]Device, 0, s.numDevs)
	for id := uint32(0); id < s.numDevs; id++ {
		dev, err := s.Device(id)
		if err != nil {
			log.Warnf("skipping line device %d: %v", id, err)
			continue
		}
		devices = append(devices, *dev)
	}
	return devices, nil
}

// Device returns the capabilities of a single line device.
func (s *Session) Device(id uint32) (*Device, error) {
	ver, err := s.negotiate(id)
	if err != nil {
		return nil, err
	}
	b, err := s.api.devCaps(s.app, id, ver)
	if err != nil {
		return nil, errors.Wrapf(err, "lineGetDevCaps(%d)", id)
	}
	caps := b.Ptr()
	dev := &Device{
		ID:            id,
		APIVersion:    ver,
		Name:          b.String(caps.LineNameOffset, caps.LineNameSize, caps.StringFormat),
		Provider:      b.String(caps.ProviderInfoOffset, caps.ProviderInfoSize, caps.StringFormat),
		SwitchInfo:    b.String(caps.SwitchInfoOffset, caps.SwitchInfoSize, caps.StringFormat),
		PermanentID:   caps.PermanentLineID,
		MediaModes:    tapi.FlagNames(caps.MediaModes, tapi.MediaModeNames),
		BearerModes:   tapi.FlagNames(caps.BearerModes, tapi.BearerModeNames),
		DeviceClasses: tapi.MultiStringAt(b.Bytes(), caps.DeviceClassesOffset, caps.DeviceClassesSize, tapi.STRINGFORMAT_UNICODE),
		MaxActive:     caps.MaxNumActiveCalls,
	}
	if ver >= tapi.TAPIVersion2_2 && !guid.IsZero(caps.PermanentLineGUID) {
		dev.GUID = guid.String(caps.PermanentLineGUID)
	}
	for addr := uint32(0); addr < caps.NumAddresses; addr++ {
		ab, err := s.api.addressCaps(s.app, id, addr, ver)
		if err != nil {
			log.Warnf("unable to get caps of address %d on line device %d: %v", addr, id, err)
			continue
		}
		ac := ab.Ptr()
		dev.Addresses = append(dev.Addresses, ab.String(ac.AddressOffset, ac.AddressSize, caps.StringFormat))
	}
	return dev, nil
}

// negotiate picks the highest API version in the configured range the device
// supports. Negotiated versions are cached for the lifetime of the session.
func (s *Session) negotiate(id uint32) (uint32, error) {
	if id >= s.numDevs {
		return 0, errs.ErrDeviceNotFound{Kind: "line", ID: id}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ver, ok := s.versions[id]; ok {
		return ver, nil
	}
	ver, err := s.api.negotiateAPIVersion(s.app, id, s.cfg.APIVersionLow, s.cfg.APIVersionHigh)
	if err != nil {
		return 0, errors.Wrapf(err, "lineNegotiateAPIVersion(%d)", id)
	}
	s.versions[id] = ver
	return ver, nil
}
