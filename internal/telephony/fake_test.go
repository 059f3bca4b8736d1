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
	"encoding/binary"
	"sync"
	"unicode/utf16"
	"unsafe"

	"github.com/rabbitstack/wincall/pkg/sys/tapi"
)

// varBuilder lays out a variable-sized structure the way a service provider
// does, appending strings after the fixed part.
type varBuilder[T any] struct {
	buf *tapi.VarBuffer[T]
	off uint32
}

func newVarBuilder[T any]() *varBuilder[T] {
	var t T
	fixed := uint32(unsafe.Sizeof(t))
	b := tapi.NewVarBuffer[T](fixed + 2048)
	(*tapi.VarHeader)(unsafe.Pointer(b.Ptr())).UsedSize = b.TotalSize()
	return &varBuilder[T]{buf: b, off: fixed}
}

// str appends a NUL-terminated UTF-16 string and returns its size and offset.
func (v *varBuilder[T]) str(s string) (uint32, uint32) {
	u := append(utf16.Encode([]rune(s)), 0)
	return v.raw(u16bytes(u))
}

// multi appends a NUL-separated string list terminated by an empty string.
func (v *varBuilder[T]) multi(ss ...string) (uint32, uint32) {
	var u []uint16
	for _, s := range ss {
		u = append(u, utf16.Encode([]rune(s))...)
		u = append(u, 0)
	}
	u = append(u, 0)
	return v.raw(u16bytes(u))
}

func (v *varBuilder[T]) raw(b []byte) (uint32, uint32) {
	off := v.off
	copy(v.buf.Bytes()[off:], b)
	v.off += uint32(len(b))
	return uint32(len(b)), off
}

func u16bytes(u []uint16) []byte {
	b := make([]byte, len(u)*2)
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[i*2:], c)
	}
	return b
}

func structBytes[T any](items ...T) []byte {
	var out []byte
	for i := range items {
		out = append(out, unsafe.Slice((*byte)(unsafe.Pointer(&items[i])), unsafe.Sizeof(items[i]))...)
	}
	return out
}

type lineDevice struct {
	version   uint32
	name      string
	provider  string
	addresses []string
	media     uint32
	err       error
}

type fakeLine struct {
	mu        sync.Mutex
	devices   []lineDevice
	messages  []*tapi.LineMessage
	callInfos map[tapi.HCall][2]string

	negotiations int
	opened       []uint32
	closed       []tapi.HLine
	deallocated  []tapi.HCall
	isShutdown   bool
	// drained is closed once the message queue runs empty
	drained chan struct{}
}

func newFakeLine(devices ...lineDevice) *fakeLine {
	return &fakeLine{devices: devices, callInfos: make(map[tapi.HCall][2]string), drained: make(chan struct{})}
}

func (f *fakeLine) initialize(appName string, apiVersion uint32, params *tapi.LineInitializeExParams) (tapi.HLineApp, uint32, error) {
	params.Event = 0x42
	return 0x10, uint32(len(f.devices)), nil
}

func (f *fakeLine) shutdown(app tapi.HLineApp) error {
	f.isShutdown = true
	return nil
}

func (f *fakeLine) negotiateAPIVersion(app tapi.HLineApp, deviceID, lo, hi uint32) (uint32, error) {
	f.negotiations++
	dev := f.devices[deviceID]
	if dev.err != nil {
		return 0, dev.err
	}
	if dev.version < lo || dev.version > hi {
		return 0, tapi.LINEERR_INCOMPATIBLEAPIVERSION
	}
	return dev.version, nil
}

func (f *fakeLine) devCaps(app tapi.HLineApp, deviceID, apiVersion uint32) (*tapi.VarBuffer[tapi.LineDevCaps], error) {
	dev := f.devices[deviceID]
	v := newVarBuilder[tapi.LineDevCaps]()
	caps := v.buf.Ptr()
	caps.StringFormat = tapi.STRINGFORMAT_UNICODE
	caps.PermanentLineID = 0x1000 + deviceID
	caps.NumAddresses = uint32(len(dev.addresses))
	caps.MediaModes = dev.media
	caps.BearerModes = tapi.LINEBEARERMODE_VOICE
	caps.MaxNumActiveCalls = 1
	caps.LineNameSize, caps.LineNameOffset = v.str(dev.name)
	caps.ProviderInfoSize, caps.ProviderInfoOffset = v.str(dev.provider)
	caps.DeviceClassesSize, caps.DeviceClassesOffset = v.multi("tapi/line", "wave/in")
	return v.buf, nil
}

func (f *fakeLine) addressCaps(app tapi.HLineApp, deviceID, addressID, apiVersion uint32) (*tapi.VarBuffer[tapi.LineAddressCaps], error) {
	v := newVarBuilder[tapi.LineAddressCaps]()
	ac := v.buf.Ptr()
	ac.LineDeviceID = deviceID
	ac.AddressSize, ac.AddressOffset = v.str(f.devices[deviceID].addresses[addressID])
	return v.buf, nil
}

func (f *fakeLine) open(app tapi.HLineApp, deviceID, apiVersion uint32, instance uintptr, privileges, mediaModes uint32) (tapi.HLine, error) {
	f.opened = append(f.opened, deviceID)
	return tapi.HLine(0x200 + deviceID), nil
}

func (f *fakeLine) close(line tapi.HLine) error {
	f.closed = append(f.closed, line)
	return nil
}

func (f *fakeLine) setStatusMessages(line tapi.HLine, lineStates, addressStates uint32) error {
	return nil
}

func (f *fakeLine) getMessage(app tapi.HLineApp, timeout uint32) (*tapi.LineMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		if f.drained != nil {
			close(f.drained)
			f.drained = nil
		}
		return nil, tapi.LINEERR_OPERATIONFAILED
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeLine) callInfo(call tapi.HCall) (*tapi.VarBuffer[tapi.LineCallInfo], error) {
	ids, ok := f.callInfos[call]
	if !ok {
		return nil, tapi.LINEERR_INVALCALLHANDLE
	}
	v := newVarBuilder[tapi.LineCallInfo]()
	ci := v.buf.Ptr()
	ci.CallerIDSize, ci.CallerIDOffset = v.str(ids[0])
	ci.CalledIDSize, ci.CalledIDOffset = v.str(ids[1])
	return v.buf, nil
}

func (f *fakeLine) deallocateCall(call tapi.HCall) error {
	f.deallocated = append(f.deallocated, call)
	return nil
}

func (f *fakeLine) translateCaps(app tapi.HLineApp, apiVersion uint32) (*tapi.VarBuffer[tapi.LineTranslateCaps], error) {
	v := newVarBuilder[tapi.LineTranslateCaps]()
	home := tapi.LineLocationEntry{PermanentLocationID: 1, CountryCode: 385, CountryID: 385, PreferredCardID: 7}
	home.LocationNameSize, home.LocationNameOffset = v.str("Home")
	home.CityCodeSize, home.CityCodeOffset = v.str("1")
	home.LongDistanceAccessCodeSize, home.LongDistanceAccessCodeOffset = v.str("0")
	office := tapi.LineLocationEntry{PermanentLocationID: 2, CountryCode: 1, CountryID: 1}
	office.LocationNameSize, office.LocationNameOffset = v.str("Office")
	office.CityCodeSize, office.CityCodeOffset = v.str("425")
	office.LocalAccessCodeSize, office.LocalAccessCodeOffset = v.str("9")
	card := tapi.LineCardEntry{PermanentCardID: 7, CardNumberDigits: 12}
	card.CardNameSize, card.CardNameOffset = v.str("Direct Dial")
	card.SameAreaRuleSize, card.SameAreaRuleOffset = v.str("G")

	caps := v.buf.Ptr()
	caps.NumLocations = 2
	caps.LocationListSize, caps.LocationListOffset = v.raw(structBytes(home, office))
	caps.NumCards = 1
	caps.CardListSize, caps.CardListOffset = v.raw(structBytes(card))
	caps.CurrentLocationID = 2
	caps.CurrentPreferredCardID = 7
	return v.buf, nil
}

func (f *fakeLine) translateAddress(app tapi.HLineApp, deviceID, apiVersion uint32, address string, card, options uint32) (*tapi.VarBuffer[tapi.LineTranslateOutput], error) {
	if address == "" || address[0] != '+' {
		return nil, tapi.LINEERR_INVALADDRESS
	}
	v := newVarBuilder[tapi.LineTranslateOutput]()
	out := v.buf.Ptr()
	out.DialableStringSize, out.DialableStringOffset = v.str("9 011 " + address[1:])
	out.DisplayableStringSize, out.DisplayableStringOffset = v.str(address)
	out.CurrentCountry = 1
	out.DestCountry = 385
	out.TranslateResults = tapi.LINETRANSLATERESULT_CANONICAL | tapi.LINETRANSLATERESULT_INTERNATIONAL
	return v.buf, nil
}

func (f *fakeLine) locationInfo() (string, string, error) { return "1", "425", nil }
