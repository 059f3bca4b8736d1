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

package tapi

import "golang.org/x/sys/windows"

// TAPI handles are 32-bit opaque values on every architecture.
type (
	// HLineApp is the usage handle returned by lineInitializeEx.
	HLineApp uint32
	// HLine is the handle of an opened line device.
	HLine uint32
	// HCall is the handle of a call on an opened line.
	HCall uint32
	// HPhoneApp is the usage handle returned by phoneInitializeEx.
	HPhoneApp uint32
	// HPhone is the handle of an opened phone device.
	HPhone uint32
)

// VarHeader is the size triple that leads every variable-sized TAPI structure.
type VarHeader struct {
	TotalSize  uint32
	NeededSize uint32
	UsedSize   uint32
}

// LineDialParams specifies dialing timing parameters.
type LineDialParams struct {
	DialPause       uint32
	DialSpeed       uint32
	DigitDuration   uint32
	WaitForDialtone uint32
}

// LineExtensionID identifies a service provider extension.
type LineExtensionID struct {
	ExtensionID0 uint32
	ExtensionID1 uint32
	ExtensionID2 uint32
	ExtensionID3 uint32
}

// PhoneExtensionID identifies a phone service provider extension.
type PhoneExtensionID LineExtensionID

// LineInitializeExParams describes the event notification mechanism the
// application picks when initializing line usage. Event and CompletionPort
// share the same storage.
type LineInitializeExParams struct {
	TotalSize  uint32
	NeededSize uint32
	UsedSize   uint32
	Options    uint32
	// Event holds the event handle (LINEINITIALIZEEXOPTION_USEEVENT) or
	// the completion port handle (LINEINITIALIZEEXOPTION_USECOMPLETIONPORT).
	Event         windows.Handle
	CompletionKey uint32
}

// CompletionPort returns the completion port handle stored in the union.
func (p *LineInitializeExParams) CompletionPort() windows.Handle { return p.Event }

// PhoneInitializeExParams mirrors LineInitializeExParams for phone devices.
type PhoneInitializeExParams LineInitializeExParams

// LineMessage is the message retrieved by lineGetMessage.
type LineMessage struct {
	Device           uint32
	MessageID        uint32
	CallbackInstance uintptr
	Param1           uintptr
	Param2           uintptr
	Param3           uintptr
}

// PhoneMessage is the message retrieved by phoneGetMessage.
type PhoneMessage LineMessage

// VarString returns variably sized strings.
type VarString struct {
	TotalSize    uint32
	NeededSize   uint32
	UsedSize     uint32
	StringFormat uint32
	StringSize   uint32
	StringOffset uint32
}

// LineDevCaps describes the capabilities of a line device.
type LineDevCaps struct {
	TotalSize                  uint32
	NeededSize                 uint32
	UsedSize                   uint32
	ProviderInfoSize           uint32
	ProviderInfoOffset         uint32
	SwitchInfoSize             uint32
	SwitchInfoOffset           uint32
	PermanentLineID            uint32
	LineNameSize               uint32
	LineNameOffset             uint32
	StringFormat               uint32
	AddressModes               uint32
	NumAddresses               uint32
	BearerModes                uint32
	MaxRate                    uint32
	MediaModes                 uint32
	GenerateToneModes          uint32
	GenerateToneMaxNumFreq     uint32
	GenerateDigitModes         uint32
	MonitorToneMaxNumFreq      uint32
	MonitorToneMaxNumEntries   uint32
	MonitorDigitModes          uint32
	GatherDigitsMinTimeout     uint32
	GatherDigitsMaxTimeout     uint32
	MedCtlDigitMaxListSize     uint32
	MedCtlMediaMaxListSize     uint32
	MedCtlToneMaxListSize      uint32
	MedCtlCallStateMaxListSize uint32
	DevCapFlags                uint32
	MaxNumActiveCalls          uint32
	AnswerMode                 uint32
	RingModes                  uint32
	LineStates                 uint32
	UUIAcceptSize              uint32
	UUIAnswerSize              uint32
	UUIMakeCallSize            uint32
	UUIDropSize                uint32
	UUISendUserUserInfoSize    uint32
	UUICallInfoSize            uint32
	MinDialParams              LineDialParams
	MaxDialParams              LineDialParams
	DefaultDialParams          LineDialParams
	NumTerminals               uint32
	TerminalCapsSize           uint32
	TerminalCapsOffset         uint32
	TerminalTextEntrySize      uint32
	TerminalTextSize           uint32
	TerminalTextOffset         uint32
	DevSpecificSize            uint32
	DevSpecificOffset          uint32
	LineFeatures               uint32
	SettableDevStatus          uint32
	DeviceClassesSize          uint32
	DeviceClassesOffset        uint32
	PermanentLineGUID          windows.GUID
	AddressTypes               uint32
	ProtocolGUID               windows.GUID
	AvailableTracking          uint32
}

// LineAddressCaps describes the capabilities of an address on a line device.
type LineAddressCaps struct {
	TotalSize                    uint32
	NeededSize                   uint32
	UsedSize                     uint32
	LineDeviceID                 uint32
	AddressSize                  uint32
	AddressOffset                uint32
	DevSpecificSize              uint32
	DevSpecificOffset            uint32
	AddressSharing               uint32
	AddressStates                uint32
	CallInfoStates               uint32
	CallerIDFlags                uint32
	CalledIDFlags                uint32
	ConnectedIDFlags             uint32
	RedirectionIDFlags           uint32
	RedirectingIDFlags           uint32
	CallStates                   uint32
	DialToneModes                uint32
	BusyModes                    uint32
	SpecialInfo                  uint32
	DisconnectModes              uint32
	MaxNumActiveCalls            uint32
	MaxNumOnHoldCalls            uint32
	MaxNumOnHoldPendingCalls     uint32
	MaxNumConference             uint32
	MaxNumTransConf              uint32
	AddrCapFlags                 uint32
	CallFeatures                 uint32
	RemoveFromConfCaps           uint32
	RemoveFromConfState          uint32
	TransferModes                uint32
	ParkModes                    uint32
	ForwardModes                 uint32
	MaxForwardEntries            uint32
	MaxSpecificEntries           uint32
	MinFwdNumRings               uint32
	MaxFwdNumRings               uint32
	MaxCallCompletions           uint32
	CallCompletionConds          uint32
	CallCompletionModes          uint32
	NumCompletionMessages        uint32
	CompletionMsgTextEntrySize   uint32
	CompletionMsgTextSize        uint32
	CompletionMsgTextOffset      uint32
	AddressFeatures              uint32
	PredictiveAutoTransferStates uint32
	NumCallTreatments            uint32
	CallTreatmentListSize        uint32
	CallTreatmentListOffset      uint32
	DeviceClassesSize            uint32
	DeviceClassesOffset          uint32
	MaxCallDataSize              uint32
	CallFeatures2                uint32
	MaxNoAnswerTimeout           uint32
	ConnectedModes               uint32
	OfferingModes                uint32
	AvailableMediaModes          uint32
}

// LineCallInfo contains information about a call.
type LineCallInfo struct {
	TotalSize                uint32
	NeededSize               uint32
	UsedSize                 uint32
	Line                     HLine
	LineDeviceID             uint32
	AddressID                uint32
	BearerMode               uint32
	Rate                     uint32
	MediaMode                uint32
	AppSpecific              uint32
	CallID                   uint32
	RelatedCallID            uint32
	CallParamFlags           uint32
	CallStates               uint32
	MonitorDigitModes        uint32
	MonitorMediaModes        uint32
	DialParams               LineDialParams
	Origin                   uint32
	Reason                   uint32
	CompletionID             uint32
	NumOwners                uint32
	NumMonitors              uint32
	CountryCode              uint32
	Trunk                    uint32
	CallerIDFlags            uint32
	CallerIDSize             uint32
	CallerIDOffset           uint32
	CallerIDNameSize         uint32
	CallerIDNameOffset       uint32
	CalledIDFlags            uint32
	CalledIDSize             uint32
	CalledIDOffset           uint32
	CalledIDNameSize         uint32
	CalledIDNameOffset       uint32
	ConnectedIDFlags         uint32
	ConnectedIDSize          uint32
	ConnectedIDOffset        uint32
	ConnectedIDNameSize      uint32
	ConnectedIDNameOffset    uint32
	RedirectionIDFlags       uint32
	RedirectionIDSize        uint32
	RedirectionIDOffset      uint32
	RedirectionIDNameSize    uint32
	RedirectionIDNameOffset  uint32
	RedirectingIDFlags       uint32
	RedirectingIDSize        uint32
	RedirectingIDOffset      uint32
	RedirectingIDNameSize    uint32
	RedirectingIDNameOffset  uint32
	AppNameSize              uint32
	AppNameOffset            uint32
	DisplayableAddressSize   uint32
	DisplayableAddressOffset uint32
	CalledPartySize          uint32
	CalledPartyOffset        uint32
	CommentSize              uint32
	CommentOffset            uint32
	DisplaySize              uint32
	DisplayOffset            uint32
	UserUserInfoSize         uint32
	UserUserInfoOffset       uint32
	HighLevelCompSize        uint32
	HighLevelCompOffset      uint32
	LowLevelCompSize         uint32
	LowLevelCompOffset       uint32
	ChargingInfoSize         uint32
	ChargingInfoOffset       uint32
	TerminalModesSize        uint32
	TerminalModesOffset      uint32
	DevSpecificSize          uint32
	DevSpecificOffset        uint32
	CallTreatment            uint32
	CallDataSize             uint32
	CallDataOffset           uint32
	SendingFlowspecSize      uint32
	SendingFlowspecOffset    uint32
	ReceivingFlowspecSize    uint32
	ReceivingFlowspecOffset  uint32
	CallerIDAddressType      uint32
	CalledIDAddressType      uint32
	ConnectedIDAddressType   uint32
	RedirectionIDAddressType uint32
	RedirectingIDAddressType uint32
}

// LineCallStatus describes the current status of a call.
type LineCallStatus struct {
	TotalSize         uint32
	NeededSize        uint32
	UsedSize          uint32
	CallState         uint32
	CallStateMode     uint32
	CallPrivilege     uint32
	CallFeatures      uint32
	DevSpecificSize   uint32
	DevSpecificOffset uint32
	CallFeatures2     uint32
	StateEntryTime    windows.Systemtime
}

// LineCallParams describes parameters supplied when making calls.
type LineCallParams struct {
	TotalSize                    uint32
	NeededSize                   uint32
	UsedSize                     uint32
	BearerMode                   uint32
	MinRate                      uint32
	MaxRate                      uint32
	MediaMode                    uint32
	CallParamFlags               uint32
	AddressMode                  uint32
	AddressID                    uint32
	DialParams                   LineDialParams
	OrigAddressSize              uint32
	OrigAddressOffset            uint32
	DisplayableAddressSize       uint32
	DisplayableAddressOffset     uint32
	CalledPartySize              uint32
	CalledPartyOffset            uint32
	CommentSize                  uint32
	CommentOffset                uint32
	UserUserInfoSize             uint32
	UserUserInfoOffset           uint32
	HighLevelCompSize            uint32
	HighLevelCompOffset          uint32
	LowLevelCompSize             uint32
	LowLevelCompOffset           uint32
	DevSpecificSize              uint32
	DevSpecificOffset            uint32
	PredictiveAutoTransferStates uint32
	TargetAddressSize            uint32
	TargetAddressOffset          uint32
	SendingFlowspecSize          uint32
	SendingFlowspecOffset        uint32
	ReceivingFlowspecSize        uint32
	ReceivingFlowspecOffset      uint32
	DeviceClassSize              uint32
	DeviceClassOffset            uint32
	DeviceConfigSize             uint32
	DeviceConfigOffset           uint32
	CallDataSize                 uint32
	CallDataOffset               uint32
	NoAnswerTimeout              uint32
	CallingPartyIDSize           uint32
	CallingPartyIDOffset         uint32
	AddressType                  uint32
}

// LineDevStatus describes the current status of a line device.
type LineDevStatus struct {
	TotalSize           uint32
	NeededSize          uint32
	UsedSize            uint32
	NumOpens            uint32
	OpenMediaModes      uint32
	NumActiveCalls      uint32
	NumOnHoldCalls      uint32
	NumOnHoldPendCalls  uint32
	LineFeatures        uint32
	NumCallCompletions  uint32
	RingMode            uint32
	SignalLevel         uint32
	BatteryLevel        uint32
	RoamMode            uint32
	DevStatusFlags      uint32
	TerminalModesSize   uint32
	TerminalModesOffset uint32
	DevSpecificSize     uint32
	DevSpecificOffset   uint32
	AvailableMediaModes uint32
	AppInfoSize         uint32
	AppInfoOffset       uint32
}

// LineAddressStatus describes the current status of an address.
type LineAddressStatus struct {
	TotalSize           uint32
	NeededSize          uint32
	UsedSize            uint32
	NumInUse            uint32
	NumActiveCalls      uint32
	NumOnHoldCalls      uint32
	NumOnHoldPendCalls  uint32
	AddressFeatures     uint32
	NumRingsNoAnswer    uint32
	ForwardNumEntries   uint32
	ForwardSize         uint32
	ForwardOffset       uint32
	TerminalModesSize   uint32
	TerminalModesOffset uint32
	DevSpecificSize     uint32
	DevSpecificOffset   uint32
}

// LineTranslateCaps describes the address translation capabilities.
type LineTranslateCaps struct {
	TotalSize              uint32
	NeededSize             uint32
	UsedSize               uint32
	NumLocations           uint32
	LocationListSize       uint32
	LocationListOffset     uint32
	CurrentLocationID      uint32
	NumCards               uint32
	CardListSize           uint32
	CardListOffset         uint32
	CurrentPreferredCardID uint32
}

// LineLocationEntry describes a location used to provide an address translation context.
type LineLocationEntry struct {
	PermanentLocationID          uint32
	LocationNameSize             uint32
	LocationNameOffset           uint32
	CountryCode                  uint32
	CityCodeSize                 uint32
	CityCodeOffset               uint32
	PreferredCardID              uint32
	LocalAccessCodeSize          uint32
	LocalAccessCodeOffset        uint32
	LongDistanceAccessCodeSize   uint32
	LongDistanceAccessCodeOffset uint32
	TollPrefixListSize           uint32
	TollPrefixListOffset         uint32
	CountryID                    uint32
	Options                      uint32
	CancelCallWaitingSize        uint32
	CancelCallWaitingOffset      uint32
}

// LineCardEntry describes a calling card.
type LineCardEntry struct {
	PermanentCardID         uint32
	CardNameSize            uint32
	CardNameOffset          uint32
	CardNumberDigits        uint32
	SameAreaRuleSize        uint32
	SameAreaRuleOffset      uint32
	LongDistanceRuleSize    uint32
	LongDistanceRuleOffset  uint32
	InternationalRuleSize   uint32
	InternationalRuleOffset uint32
	Options                 uint32
}

// LineTranslateOutput describes the result of an address translation.
type LineTranslateOutput struct {
	TotalSize               uint32
	NeededSize              uint32
	UsedSize                uint32
	DialableStringSize      uint32
	DialableStringOffset    uint32
	DisplayableStringSize   uint32
	DisplayableStringOffset uint32
	CurrentCountry          uint32
	DestCountry             uint32
	TranslateResults        uint32
}

// PhoneCaps describes the capabilities of a phone device.
type PhoneCaps struct {
	TotalSize                       uint32
	NeededSize                      uint32
	UsedSize                        uint32
	ProviderInfoSize                uint32
	ProviderInfoOffset              uint32
	PhoneInfoSize                   uint32
	PhoneInfoOffset                 uint32
	PermanentPhoneID                uint32
	PhoneNameSize                   uint32
	PhoneNameOffset                 uint32
	StringFormat                    uint32
	PhoneStates                     uint32
	HookSwitchDevs                  uint32
	HandsetHookSwitchModes          uint32
	SpeakerHookSwitchModes          uint32
	HeadsetHookSwitchModes          uint32
	VolumeFlags                     uint32
	GainFlags                       uint32
	DisplayNumRows                  uint32
	DisplayNumColumns               uint32
	NumRingModes                    uint32
	NumButtonLamps                  uint32
	ButtonModesSize                 uint32
	ButtonModesOffset               uint32
	ButtonFunctionsSize             uint32
	ButtonFunctionsOffset           uint32
	LampModesSize                   uint32
	LampModesOffset                 uint32
	NumSetData                      uint32
	SetDataSize                     uint32
	SetDataOffset                   uint32
	NumGetData                      uint32
	GetDataSize                     uint32
	GetDataOffset                   uint32
	DevSpecificSize                 uint32
	DevSpecificOffset               uint32
	DeviceClassesSize               uint32
	DeviceClassesOffset             uint32
	PhoneFeatures                   uint32
	SettableHandsetHookSwitchModes  uint32
	SettableSpeakerHookSwitchModes  uint32
	SettableHeadsetHookSwitchModes  uint32
	MonitoredHandsetHookSwitchModes uint32
	MonitoredSpeakerHookSwitchModes uint32
	MonitoredHeadsetHookSwitchModes uint32
	PermanentPhoneGUID              windows.GUID
}

// PhoneStatus describes the current status of a phone device.
type PhoneStatus struct {
	TotalSize             uint32
	NeededSize            uint32
	UsedSize              uint32
	StatusFlags           uint32
	NumOwners             uint32
	NumMonitors           uint32
	RingMode              uint32
	RingVolume            uint32
	HandsetHookSwitchMode uint32
	HandsetVolume         uint32
	HandsetGain           uint32
	SpeakerHookSwitchMode uint32
	SpeakerVolume         uint32
	SpeakerGain           uint32
	HeadsetHookSwitchMode uint32
	HeadsetVolume         uint32
	HeadsetGain           uint32
	DisplaySize           uint32
	DisplayOffset         uint32
	LampModesSize         uint32
	LampModesOffset       uint32
	OwnerNameSize         uint32
	OwnerNameOffset       uint32
	DevSpecificSize       uint32
	DevSpecificOffset     uint32
	PhoneFeatures         uint32
}
