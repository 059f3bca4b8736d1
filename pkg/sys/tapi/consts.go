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

// API versions negotiated with lineNegotiateAPIVersion/phoneNegotiateAPIVersion.
const (
	TAPIVersion1_3     uint32 = 0x00010003
	TAPIVersion1_4     uint32 = 0x00010004
	TAPIVersion2_0     uint32 = 0x00020000
	TAPIVersion2_1     uint32 = 0x00020001
	TAPIVersion2_2     uint32 = 0x00020002
	TAPIVersion3_0     uint32 = 0x00030000
	TAPIVersion3_1     uint32 = 0x00030001
	TAPICurrentVersion = TAPIVersion3_1
)

// LINEINITIALIZEEXOPTION
const (
	LINEINITIALIZEEXOPTION_USEHIDDENWINDOW    uint32 = 0x00000001
	LINEINITIALIZEEXOPTION_USEEVENT           uint32 = 0x00000002
	LINEINITIALIZEEXOPTION_USECOMPLETIONPORT  uint32 = 0x00000003
	LINEINITIALIZEEXOPTION_CALLHUBTRACKING    uint32 = 0x80000000
	PHONEINITIALIZEEXOPTION_USEHIDDENWINDOW   uint32 = 0x00000001
	PHONEINITIALIZEEXOPTION_USEEVENT          uint32 = 0x00000002
	PHONEINITIALIZEEXOPTION_USECOMPLETIONPORT uint32 = 0x00000003
)

// LINECALLSTATE
const (
	LINECALLSTATE_IDLE               uint32 = 0x00000001
	LINECALLSTATE_OFFERING           uint32 = 0x00000002
	LINECALLSTATE_ACCEPTED           uint32 = 0x00000004
	LINECALLSTATE_DIALTONE           uint32 = 0x00000008
	LINECALLSTATE_DIALING            uint32 = 0x00000010
	LINECALLSTATE_RINGBACK           uint32 = 0x00000020
	LINECALLSTATE_BUSY               uint32 = 0x00000040
	LINECALLSTATE_SPECIALINFO        uint32 = 0x00000080
	LINECALLSTATE_CONNECTED          uint32 = 0x00000100
	LINECALLSTATE_PROCEEDING         uint32 = 0x00000200
	LINECALLSTATE_ONHOLD             uint32 = 0x00000400
	LINECALLSTATE_CONFERENCED        uint32 = 0x00000800
	LINECALLSTATE_ONHOLDPENDCONF     uint32 = 0x00001000
	LINECALLSTATE_ONHOLDPENDTRANSFER uint32 = 0x00002000
	LINECALLSTATE_DISCONNECTED       uint32 = 0x00004000
	LINECALLSTATE_UNKNOWN            uint32 = 0x00008000
)

// LINEDEVSTATE
const (
	LINEDEVSTATE_OTHER           uint32 = 0x00000001
	LINEDEVSTATE_RINGING         uint32 = 0x00000002
	LINEDEVSTATE_CONNECTED       uint32 = 0x00000004
	LINEDEVSTATE_DISCONNECTED    uint32 = 0x00000008
	LINEDEVSTATE_MSGWAITON       uint32 = 0x00000010
	LINEDEVSTATE_MSGWAITOFF      uint32 = 0x00000020
	LINEDEVSTATE_INSERVICE       uint32 = 0x00000040
	LINEDEVSTATE_OUTOFSERVICE    uint32 = 0x00000080
	LINEDEVSTATE_MAINTENANCE     uint32 = 0x00000100
	LINEDEVSTATE_OPEN            uint32 = 0x00000200
	LINEDEVSTATE_CLOSE           uint32 = 0x00000400
	LINEDEVSTATE_NUMCALLS        uint32 = 0x00000800
	LINEDEVSTATE_NUMCOMPLETIONS  uint32 = 0x00001000
	LINEDEVSTATE_TERMINALS       uint32 = 0x00002000
	LINEDEVSTATE_ROAMMODE        uint32 = 0x00004000
	LINEDEVSTATE_BATTERY         uint32 = 0x00008000
	LINEDEVSTATE_SIGNAL          uint32 = 0x00010000
	LINEDEVSTATE_DEVSPECIFIC     uint32 = 0x00020000
	LINEDEVSTATE_REINIT          uint32 = 0x00040000
	LINEDEVSTATE_LOCK            uint32 = 0x00080000
	LINEDEVSTATE_CAPSCHANGE      uint32 = 0x00100000
	LINEDEVSTATE_CONFIGCHANGE    uint32 = 0x00200000
	LINEDEVSTATE_TRANSLATECHANGE uint32 = 0x00400000
	LINEDEVSTATE_COMPLCANCEL     uint32 = 0x00800000
	LINEDEVSTATE_REMOVED         uint32 = 0x01000000
	LINEDEVSTATE_ALL             uint32 = 0x01ffffff
)

// LINEADDRESSSTATE
const (
	LINEADDRESSSTATE_OTHER       uint32 = 0x00000001
	LINEADDRESSSTATE_DEVSPECIFIC uint32 = 0x00000002
	LINEADDRESSSTATE_INUSEZERO   uint32 = 0x00000004
	LINEADDRESSSTATE_INUSEONE    uint32 = 0x00000008
	LINEADDRESSSTATE_INUSEMANY   uint32 = 0x00000010
	LINEADDRESSSTATE_NUMCALLS    uint32 = 0x00000020
	LINEADDRESSSTATE_FORWARD     uint32 = 0x00000040
	LINEADDRESSSTATE_TERMINALS   uint32 = 0x00000080
	LINEADDRESSSTATE_CAPSCHANGE  uint32 = 0x00000100
	LINEADDRESSSTATE_ALL         uint32 = 0x000001ff
)

// LINEMEDIAMODE
const (
	LINEMEDIAMODE_UNKNOWN          uint32 = 0x00000002
	LINEMEDIAMODE_INTERACTIVEVOICE uint32 = 0x00000004
	LINEMEDIAMODE_AUTOMATEDVOICE   uint32 = 0x00000008
	LINEMEDIAMODE_DATAMODEM        uint32 = 0x00000010
	LINEMEDIAMODE_G3FAX            uint32 = 0x00000020
	LINEMEDIAMODE_TDD              uint32 = 0x00000040
	LINEMEDIAMODE_G4FAX            uint32 = 0x00000080
	LINEMEDIAMODE_DIGITALDATA      uint32 = 0x00000100
	LINEMEDIAMODE_TELETEX          uint32 = 0x00000200
	LINEMEDIAMODE_VIDEOTEX         uint32 = 0x00000400
	LINEMEDIAMODE_TELEX            uint32 = 0x00000800
	LINEMEDIAMODE_MIXED            uint32 = 0x00001000
	LINEMEDIAMODE_ADSI             uint32 = 0x00002000
	LINEMEDIAMODE_VOICEVIEW        uint32 = 0x00004000
	LINEMEDIAMODE_VIDEO            uint32 = 0x00008000
)

// LINEBEARERMODE
const (
	LINEBEARERMODE_VOICE            uint32 = 0x00000001
	LINEBEARERMODE_SPEECH           uint32 = 0x00000002
	LINEBEARERMODE_MULTIUSE         uint32 = 0x00000004
	LINEBEARERMODE_DATA             uint32 = 0x00000008
	LINEBEARERMODE_ALTSPEECHDATA    uint32 = 0x00000010
	LINEBEARERMODE_NONCALLSIGNALING uint32 = 0x00000020
	LINEBEARERMODE_PASSTHROUGH      uint32 = 0x00000040
	LINEBEARERMODE_RESTRICTEDDATA   uint32 = 0x00000080
)

// LINECALLPRIVILEGE
const (
	LINECALLPRIVILEGE_NONE    uint32 = 0x00000001
	LINECALLPRIVILEGE_MONITOR uint32 = 0x00000002
	LINECALLPRIVILEGE_OWNER   uint32 = 0x00000004
)

// LINECALLORIGIN
const (
	LINECALLORIGIN_OUTBOUND   uint32 = 0x00000001
	LINECALLORIGIN_INTERNAL   uint32 = 0x00000002
	LINECALLORIGIN_EXTERNAL   uint32 = 0x00000004
	LINECALLORIGIN_UNKNOWN    uint32 = 0x00000010
	LINECALLORIGIN_UNAVAIL    uint32 = 0x00000020
	LINECALLORIGIN_CONFERENCE uint32 = 0x00000040
	LINECALLORIGIN_INBOUND    uint32 = 0x00000080
)

// LINEDISCONNECTMODE
const (
	LINEDISCONNECTMODE_NORMAL        uint32 = 0x00000001
	LINEDISCONNECTMODE_UNKNOWN       uint32 = 0x00000002
	LINEDISCONNECTMODE_REJECT        uint32 = 0x00000004
	LINEDISCONNECTMODE_PICKUP        uint32 = 0x00000008
	LINEDISCONNECTMODE_FORWARDED     uint32 = 0x00000010
	LINEDISCONNECTMODE_BUSY          uint32 = 0x00000020
	LINEDISCONNECTMODE_NOANSWER      uint32 = 0x00000040
	LINEDISCONNECTMODE_BADADDRESS    uint32 = 0x00000080
	LINEDISCONNECTMODE_UNREACHABLE   uint32 = 0x00000100
	LINEDISCONNECTMODE_CONGESTION    uint32 = 0x00000200
	LINEDISCONNECTMODE_INCOMPATIBLE  uint32 = 0x00000400
	LINEDISCONNECTMODE_UNAVAIL       uint32 = 0x00000800
	LINEDISCONNECTMODE_NODIALTONE    uint32 = 0x00001000
	LINEDISCONNECTMODE_NUMBERCHANGED uint32 = 0x00002000
	LINEDISCONNECTMODE_OUTOFORDER    uint32 = 0x00004000
	LINEDISCONNECTMODE_TEMPFAILURE   uint32 = 0x00008000
	LINEDISCONNECTMODE_QOSUNAVAIL    uint32 = 0x00010000
	LINEDISCONNECTMODE_BLOCKED       uint32 = 0x00020000
	LINEDISCONNECTMODE_DONOTDISTURB  uint32 = 0x00040000
	LINEDISCONNECTMODE_CANCELLED     uint32 = 0x00080000
)

// LINEDIGITMODE
const (
	LINEDIGITMODE_PULSE   uint32 = 0x00000001
	LINEDIGITMODE_DTMF    uint32 = 0x00000002
	LINEDIGITMODE_DTMFEND uint32 = 0x00000004
)

// LINETRANSLATEOPTION
const (
	LINETRANSLATEOPTION_CARDOVERRIDE      uint32 = 0x00000001
	LINETRANSLATEOPTION_CANCELCALLWAITING uint32 = 0x00000002
	LINETRANSLATEOPTION_FORCELOCAL        uint32 = 0x00000004
	LINETRANSLATEOPTION_FORCELD           uint32 = 0x00000008
)

// LINETRANSLATERESULT
const (
	LINETRANSLATERESULT_CANONICAL     uint32 = 0x00000001
	LINETRANSLATERESULT_INTERNATIONAL uint32 = 0x00000002
	LINETRANSLATERESULT_LONGDISTANCE  uint32 = 0x00000004
	LINETRANSLATERESULT_LOCAL         uint32 = 0x00000008
	LINETRANSLATERESULT_INTOLLLIST    uint32 = 0x00000010
	LINETRANSLATERESULT_NOTINTOLLLIST uint32 = 0x00000020
	LINETRANSLATERESULT_DIALBILLING   uint32 = 0x00000040
	LINETRANSLATERESULT_DIALQUIET     uint32 = 0x00000080
	LINETRANSLATERESULT_DIALDIALTONE  uint32 = 0x00000100
	LINETRANSLATERESULT_DIALPROMPT    uint32 = 0x00000200
	LINETRANSLATERESULT_VOICEDETECT   uint32 = 0x00000400
	LINETRANSLATERESULT_NOTRANSLATION uint32 = 0x00000800
)

// STRINGFORMAT
const (
	STRINGFORMAT_ASCII   uint32 = 0x00000001
	STRINGFORMAT_DBCS    uint32 = 0x00000002
	STRINGFORMAT_UNICODE uint32 = 0x00000003
	STRINGFORMAT_BINARY  uint32 = 0x00000004
)

// LINEOPENOPTION
const (
	LINEOPENOPTION_SINGLEADDRESS uint32 = 0x80000000
	LINEOPENOPTION_PROXY         uint32 = 0x40000000
)

// LINEADDRESSMODE
const (
	LINEADDRESSMODE_ADDRESSID    uint32 = 0x00000001
	LINEADDRESSMODE_DIALABLEADDR uint32 = 0x00000002
)

// LINECALLSELECT
const (
	LINECALLSELECT_LINE     uint32 = 0x00000001
	LINECALLSELECT_ADDRESS  uint32 = 0x00000002
	LINECALLSELECT_CALL     uint32 = 0x00000004
	LINECALLSELECT_DEVICEID uint32 = 0x00000008
	LINECALLSELECT_CALLID   uint32 = 0x00000010
)

const LINEREQUESTMODE_MAKECALL uint32 = 0x00000001

// Line and phone message identifiers carried in LineMessage.MessageID
// and PhoneMessage.MessageID.
const (
	LINE_ADDRESSSTATE uint32 = iota
	LINE_CALLINFO
	LINE_CALLSTATE
	LINE_CLOSE
	LINE_DEVSPECIFIC
	LINE_DEVSPECIFICFEATURE
	LINE_GATHERDIGITS
	LINE_GENERATE
	LINE_LINEDEVSTATE
	LINE_MONITORDIGITS
	LINE_MONITORMEDIA
	LINE_MONITORTONE
	LINE_REPLY
	LINE_REQUEST
	PHONE_BUTTON
	PHONE_CLOSE
	PHONE_DEVSPECIFIC
	PHONE_REPLY
	PHONE_STATE
	LINE_CREATE
	PHONE_CREATE
	LINE_AGENTSPECIFIC
	LINE_AGENTSTATUS
	LINE_APPNEWCALL
	LINE_PROXYREQUEST
	LINE_REMOVE
	PHONE_REMOVE
	LINE_AGENTSESSIONSTATUS
	LINE_QUEUESTATUS
	LINE_AGENTSTATUSEX
	LINE_GROUPSTATUS
	LINE_PROXYSTATUS
	LINE_APPNEWCALLHUB
	LINE_CALLHUBCLOSE
	LINE_DEVSPECIFICEX
)

var messageNames = [...]string{
	"LINE_ADDRESSSTATE", "LINE_CALLINFO", "LINE_CALLSTATE", "LINE_CLOSE",
	"LINE_DEVSPECIFIC", "LINE_DEVSPECIFICFEATURE", "LINE_GATHERDIGITS",
	"LINE_GENERATE", "LINE_LINEDEVSTATE", "LINE_MONITORDIGITS",
	"LINE_MONITORMEDIA", "LINE_MONITORTONE", "LINE_REPLY", "LINE_REQUEST",
	"PHONE_BUTTON", "PHONE_CLOSE", "PHONE_DEVSPECIFIC", "PHONE_REPLY",
	"PHONE_STATE", "LINE_CREATE", "PHONE_CREATE", "LINE_AGENTSPECIFIC",
	"LINE_AGENTSTATUS", "LINE_APPNEWCALL", "LINE_PROXYREQUEST", "LINE_REMOVE",
	"PHONE_REMOVE", "LINE_AGENTSESSIONSTATUS", "LINE_QUEUESTATUS",
	"LINE_AGENTSTATUSEX", "LINE_GROUPSTATUS", "LINE_PROXYSTATUS",
	"LINE_APPNEWCALLHUB", "LINE_CALLHUBCLOSE", "LINE_DEVSPECIFICEX",
}

// MessageName returns the symbolic name of the line or phone message id.
func MessageName(id uint32) string {
	if int(id) < len(messageNames) {
		return messageNames[id]
	}
	return "UNKNOWN"
}

// PHONEHOOKSWITCHDEV
const (
	PHONEHOOKSWITCHDEV_HANDSET uint32 = 0x00000001
	PHONEHOOKSWITCHDEV_SPEAKER uint32 = 0x00000002
	PHONEHOOKSWITCHDEV_HEADSET uint32 = 0x00000004
)

// PHONEHOOKSWITCHMODE
const (
	PHONEHOOKSWITCHMODE_ONHOOK     uint32 = 0x00000001
	PHONEHOOKSWITCHMODE_MIC        uint32 = 0x00000002
	PHONEHOOKSWITCHMODE_SPEAKER    uint32 = 0x00000004
	PHONEHOOKSWITCHMODE_MICSPEAKER uint32 = 0x00000008
	PHONEHOOKSWITCHMODE_UNKNOWN    uint32 = 0x00000010
)

// PHONESTATE
const (
	PHONESTATE_OTHER             uint32 = 0x00000001
	PHONESTATE_CONNECTED         uint32 = 0x00000002
	PHONESTATE_DISCONNECTED      uint32 = 0x00000004
	PHONESTATE_OWNER             uint32 = 0x00000008
	PHONESTATE_MONITORS          uint32 = 0x00000010
	PHONESTATE_DISPLAY           uint32 = 0x00000020
	PHONESTATE_LAMP              uint32 = 0x00000040
	PHONESTATE_RINGMODE          uint32 = 0x00000080
	PHONESTATE_RINGVOLUME        uint32 = 0x00000100
	PHONESTATE_HANDSETHOOKSWITCH uint32 = 0x00000200
	PHONESTATE_HANDSETVOLUME     uint32 = 0x00000400
	PHONESTATE_HANDSETGAIN       uint32 = 0x00000800
	PHONESTATE_SPEAKERHOOKSWITCH uint32 = 0x00001000
	PHONESTATE_SPEAKERVOLUME     uint32 = 0x00002000
	PHONESTATE_SPEAKERGAIN       uint32 = 0x00004000
	PHONESTATE_HEADSETHOOKSWITCH uint32 = 0x00008000
	PHONESTATE_HEADSETVOLUME     uint32 = 0x00010000
	PHONESTATE_HEADSETGAIN       uint32 = 0x00020000
	PHONESTATE_SUSPEND           uint32 = 0x00040000
	PHONESTATE_RESUME            uint32 = 0x00080000
	PHONESTATE_DEVSPECIFIC       uint32 = 0x00100000
	PHONESTATE_REINIT            uint32 = 0x00200000
	PHONESTATE_CAPSCHANGE        uint32 = 0x00400000
	PHONESTATE_REMOVED           uint32 = 0x00800000
)

// PHONEPRIVILEGE
const (
	PHONEPRIVILEGE_MONITOR uint32 = 0x00000001
	PHONEPRIVILEGE_OWNER   uint32 = 0x00000002
)

// Flag name tables used by FlagNames.
var (
	MediaModeNames = map[uint32]string{
		LINEMEDIAMODE_UNKNOWN:          "unknown",
		LINEMEDIAMODE_INTERACTIVEVOICE: "interactive-voice",
		LINEMEDIAMODE_AUTOMATEDVOICE:   "automated-voice",
		LINEMEDIAMODE_DATAMODEM:        "data-modem",
		LINEMEDIAMODE_G3FAX:            "g3fax",
		LINEMEDIAMODE_TDD:              "tdd",
		LINEMEDIAMODE_G4FAX:            "g4fax",
		LINEMEDIAMODE_DIGITALDATA:      "digital-data",
		LINEMEDIAMODE_TELETEX:          "teletex",
		LINEMEDIAMODE_VIDEOTEX:         "videotex",
		LINEMEDIAMODE_TELEX:            "telex",
		LINEMEDIAMODE_MIXED:            "mixed",
		LINEMEDIAMODE_ADSI:             "adsi",
		LINEMEDIAMODE_VOICEVIEW:        "voiceview",
		LINEMEDIAMODE_VIDEO:            "video",
	}
	BearerModeNames = map[uint32]string{
		LINEBEARERMODE_VOICE:            "voice",
		LINEBEARERMODE_SPEECH:           "speech",
		LINEBEARERMODE_MULTIUSE:         "multiuse",
		LINEBEARERMODE_DATA:             "data",
		LINEBEARERMODE_ALTSPEECHDATA:    "alt-speech-data",
		LINEBEARERMODE_NONCALLSIGNALING: "non-call-signaling",
		LINEBEARERMODE_PASSTHROUGH:      "passthrough",
		LINEBEARERMODE_RESTRICTEDDATA:   "restricted-data",
	}
	CallStateNames = map[uint32]string{
		LINECALLSTATE_IDLE:               "IDLE",
		LINECALLSTATE_OFFERING:           "OFFERING",
		LINECALLSTATE_ACCEPTED:           "ACCEPTED",
		LINECALLSTATE_DIALTONE:           "DIALTONE",
		LINECALLSTATE_DIALING:            "DIALING",
		LINECALLSTATE_RINGBACK:           "RINGBACK",
		LINECALLSTATE_BUSY:               "BUSY",
		LINECALLSTATE_SPECIALINFO:        "SPECIALINFO",
		LINECALLSTATE_CONNECTED:          "CONNECTED",
		LINECALLSTATE_PROCEEDING:         "PROCEEDING",
		LINECALLSTATE_ONHOLD:             "ONHOLD",
		LINECALLSTATE_CONFERENCED:        "CONFERENCED",
		LINECALLSTATE_ONHOLDPENDCONF:     "ONHOLDPENDCONF",
		LINECALLSTATE_ONHOLDPENDTRANSFER: "ONHOLDPENDTRANSFER",
		LINECALLSTATE_DISCONNECTED:       "DISCONNECTED",
		LINECALLSTATE_UNKNOWN:            "UNKNOWN",
	}
	HookSwitchDevNames = map[uint32]string{
		PHONEHOOKSWITCHDEV_HANDSET: "handset",
		PHONEHOOKSWITCHDEV_SPEAKER: "speaker",
		PHONEHOOKSWITCHDEV_HEADSET: "headset",
	}
	HookSwitchModeNames = map[uint32]string{
		PHONEHOOKSWITCHMODE_ONHOOK:     "onhook",
		PHONEHOOKSWITCHMODE_MIC:        "mic",
		PHONEHOOKSWITCHMODE_SPEAKER:    "speaker",
		PHONEHOOKSWITCHMODE_MICSPEAKER: "mic-speaker",
		PHONEHOOKSWITCHMODE_UNKNOWN:    "unknown",
	}
)

// FlagNames expands the bitmask into the names found in the table, ordered by bit value.
// Bits without a name are ignored.
func FlagNames(mask uint32, names map[uint32]string) []string {
	var out []string
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if mask&bit == 0 {
			continue
		}
		if name, ok := names[bit]; ok {
			out = append(out, name)
		}
	}
	return out
}
