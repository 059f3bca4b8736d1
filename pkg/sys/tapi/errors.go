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

import (
	"fmt"
	"sort"
)

// LineErr is the negative LONG returned by line* functions on failure.
type LineErr uint32

// PhoneErr is the negative LONG returned by phone* functions on failure.
type PhoneErr uint32

// RequestErr is the result of the assisted telephony tapiRequest* functions.
type RequestErr int32

// HResult is the COM status code reported by the TAPI 3 object model.
type HResult uint32

const (
	LINEERR_ALLOCATED              LineErr = 0x80000001
	LINEERR_BADDEVICEID            LineErr = 0x80000002
	LINEERR_BEARERMODEUNAVAIL      LineErr = 0x80000003
	LINEERR_CALLUNAVAIL            LineErr = 0x80000005
	LINEERR_COMPLETIONOVERRUN      LineErr = 0x80000006
	LINEERR_CONFERENCEFULL         LineErr = 0x80000007
	LINEERR_DIALBILLING            LineErr = 0x80000008
	LINEERR_DIALDIALTONE           LineErr = 0x80000009
	LINEERR_DIALPROMPT             LineErr = 0x8000000A
	LINEERR_DIALQUIET              LineErr = 0x8000000B
	LINEERR_INCOMPATIBLEAPIVERSION LineErr = 0x8000000C
	LINEERR_INCOMPATIBLEEXTVERSION LineErr = 0x8000000D
	LINEERR_INIFILECORRUPT         LineErr = 0x8000000E
	LINEERR_INUSE                  LineErr = 0x8000000F
	LINEERR_INVALADDRESS           LineErr = 0x80000010
	LINEERR_INVALADDRESSID         LineErr = 0x80000011
	LINEERR_INVALADDRESSMODE       LineErr = 0x80000012
	LINEERR_INVALADDRESSSTATE      LineErr = 0x80000013
	LINEERR_INVALAPPHANDLE         LineErr = 0x80000014
	LINEERR_INVALAPPNAME           LineErr = 0x80000015
	LINEERR_INVALBEARERMODE        LineErr = 0x80000016
	LINEERR_INVALCALLCOMPLMODE     LineErr = 0x80000017
	LINEERR_INVALCALLHANDLE        LineErr = 0x80000018
	LINEERR_INVALCALLPARAMS        LineErr = 0x80000019
	LINEERR_INVALCALLPRIVILEGE     LineErr = 0x8000001A
	LINEERR_INVALCALLSELECT        LineErr = 0x8000001B
	LINEERR_INVALCALLSTATE         LineErr = 0x8000001C
	LINEERR_INVALCALLSTATELIST     LineErr = 0x8000001D
	LINEERR_INVALCARD              LineErr = 0x8000001E
	LINEERR_INVALCOMPLETIONID      LineErr = 0x8000001F
	LINEERR_INVALCONFCALLHANDLE    LineErr = 0x80000020
	LINEERR_INVALCONSULTCALLHANDLE LineErr = 0x80000021
	LINEERR_INVALCOUNTRYCODE       LineErr = 0x80000022
	LINEERR_INVALDEVICECLASS       LineErr = 0x80000023
	LINEERR_INVALDEVICEHANDLE      LineErr = 0x80000024
	LINEERR_INVALDIALPARAMS        LineErr = 0x80000025
	LINEERR_INVALDIGITLIST         LineErr = 0x80000026
	LINEERR_INVALDIGITMODE         LineErr = 0x80000027
	LINEERR_INVALDIGITS            LineErr = 0x80000028
	LINEERR_INVALEXTVERSION        LineErr = 0x80000029
	LINEERR_INVALGROUPID           LineErr = 0x8000002A
	LINEERR_INVALLINEHANDLE        LineErr = 0x8000002B
	LINEERR_INVALLINESTATE         LineErr = 0x8000002C
	LINEERR_INVALLOCATION          LineErr = 0x8000002D
	LINEERR_INVALMEDIALIST         LineErr = 0x8000002E
	LINEERR_INVALMEDIAMODE         LineErr = 0x8000002F
	LINEERR_INVALMESSAGEID         LineErr = 0x80000030
	LINEERR_INVALPARAM             LineErr = 0x80000032
	LINEERR_INVALPARKID            LineErr = 0x80000033
	LINEERR_INVALPARKMODE          LineErr = 0x80000034
	LINEERR_INVALPOINTER           LineErr = 0x80000035
	LINEERR_INVALPRIVSELECT        LineErr = 0x80000036
	LINEERR_INVALRATE              LineErr = 0x80000037
	LINEERR_INVALREQUESTMODE       LineErr = 0x80000038
	LINEERR_INVALTERMINALID        LineErr = 0x80000039
	LINEERR_INVALTERMINALMODE      LineErr = 0x8000003A
	LINEERR_INVALTIMEOUT           LineErr = 0x8000003B
	LINEERR_INVALTONE              LineErr = 0x8000003C
	LINEERR_INVALTONELIST          LineErr = 0x8000003D
	LINEERR_INVALTONEMODE          LineErr = 0x8000003E
	LINEERR_INVALTRANSFERMODE      LineErr = 0x8000003F
	LINEERR_LINEMAPPERFAILED       LineErr = 0x80000040
	LINEERR_NOCONFERENCE           LineErr = 0x80000041
	LINEERR_NODEVICE               LineErr = 0x80000042
	LINEERR_NODRIVER               LineErr = 0x80000043
	LINEERR_NOMEM                  LineErr = 0x80000044
	LINEERR_NOREQUEST              LineErr = 0x80000045
	LINEERR_NOTOWNER               LineErr = 0x80000046
	LINEERR_NOTREGISTERED          LineErr = 0x80000047
	LINEERR_OPERATIONFAILED        LineErr = 0x80000048
	LINEERR_OPERATIONUNAVAIL       LineErr = 0x80000049
	LINEERR_RATEUNAVAIL            LineErr = 0x8000004A
	LINEERR_RESOURCEUNAVAIL        LineErr = 0x8000004B
	LINEERR_REQUESTOVERRUN         LineErr = 0x8000004C
	LINEERR_STRUCTURETOOSMALL      LineErr = 0x8000004D
	LINEERR_TARGETNOTFOUND         LineErr = 0x8000004E
	LINEERR_TARGETSELF             LineErr = 0x8000004F
	LINEERR_UNINITIALIZED          LineErr = 0x80000050
	LINEERR_USERUSERINFOTOOBIG     LineErr = 0x80000051
	LINEERR_REINIT                 LineErr = 0x80000052
	LINEERR_ADDRESSBLOCKED         LineErr = 0x80000053
	LINEERR_BILLINGREJECTED        LineErr = 0x80000054
	LINEERR_INVALFEATURE           LineErr = 0x80000055
	LINEERR_NOMULTIPLEINSTANCE     LineErr = 0x80000056
	LINEERR_INVALAGENTID           LineErr = 0x80000057
	LINEERR_INVALAGENTGROUP        LineErr = 0x80000058
	LINEERR_INVALPASSWORD          LineErr = 0x80000059
	LINEERR_INVALAGENTSTATE        LineErr = 0x8000005A
	LINEERR_INVALAGENTACTIVITY     LineErr = 0x8000005B
	LINEERR_DIALVOICEDETECT        LineErr = 0x8000005C
	LINEERR_USERCANCELLED          LineErr = 0x8000005D
	LINEERR_INVALADDRESSTYPE       LineErr = 0x8000005E
	LINEERR_INVALAGENTSESSIONSTATE LineErr = 0x8000005F
	LINEERR_DISCONNECTED           LineErr = 0x80000060
	LINEERR_SERVICE_NOT_RUNNING    LineErr = 0x80000061
)

var lineErrNames = map[LineErr]string{
	LINEERR_ALLOCATED:              "LINEERR_ALLOCATED",
	LINEERR_BADDEVICEID:            "LINEERR_BADDEVICEID",
	LINEERR_BEARERMODEUNAVAIL:      "LINEERR_BEARERMODEUNAVAIL",
	LINEERR_CALLUNAVAIL:            "LINEERR_CALLUNAVAIL",
	LINEERR_COMPLETIONOVERRUN:      "LINEERR_COMPLETIONOVERRUN",
	LINEERR_CONFERENCEFULL:         "LINEERR_CONFERENCEFULL",
	LINEERR_DIALBILLING:            "LINEERR_DIALBILLING",
	LINEERR_DIALDIALTONE:           "LINEERR_DIALDIALTONE",
	LINEERR_DIALPROMPT:             "LINEERR_DIALPROMPT",
	LINEERR_DIALQUIET:              "LINEERR_DIALQUIET",
	LINEERR_INCOMPATIBLEAPIVERSION: "LINEERR_INCOMPATIBLEAPIVERSION",
	LINEERR_INCOMPATIBLEEXTVERSION: "LINEERR_INCOMPATIBLEEXTVERSION",
	LINEERR_INIFILECORRUPT:         "LINEERR_INIFILECORRUPT",
	LINEERR_INUSE:                  "LINEERR_INUSE",
	LINEERR_INVALADDRESS:           "LINEERR_INVALADDRESS",
	LINEERR_INVALADDRESSID:         "LINEERR_INVALADDRESSID",
	LINEERR_INVALADDRESSMODE:       "LINEERR_INVALADDRESSMODE",
	LINEERR_INVALADDRESSSTATE:      "LINEERR_INVALADDRESSSTATE",
	LINEERR_INVALAPPHANDLE:         "LINEERR_INVALAPPHANDLE",
	LINEERR_INVALAPPNAME:           "LINEERR_INVALAPPNAME",
	LINEERR_INVALBEARERMODE:        "LINEERR_INVALBEARERMODE",
	LINEERR_INVALCALLCOMPLMODE:     "LINEERR_INVALCALLCOMPLMODE",
	LINEERR_INVALCALLHANDLE:        "LINEERR_INVALCALLHANDLE",
	LINEERR_INVALCALLPARAMS:        "LINEERR_INVALCALLPARAMS",
	LINEERR_INVALCALLPRIVILEGE:     "LINEERR_INVALCALLPRIVILEGE",
	LINEERR_INVALCALLSELECT:        "LINEERR_INVALCALLSELECT",
	LINEERR_INVALCALLSTATE:         "LINEERR_INVALCALLSTATE",
	LINEERR_INVALCALLSTATELIST:     "LINEERR_INVALCALLSTATELIST",
	LINEERR_INVALCARD:              "LINEERR_INVALCARD",
	LINEERR_INVALCOMPLETIONID:      "LINEERR_INVALCOMPLETIONID",
	LINEERR_INVALCONFCALLHANDLE:    "LINEERR_INVALCONFCALLHANDLE",
	LINEERR_INVALCONSULTCALLHANDLE: "LINEERR_INVALCONSULTCALLHANDLE",
	LINEERR_INVALCOUNTRYCODE:       "LINEERR_INVALCOUNTRYCODE",
	LINEERR_INVALDEVICECLASS:       "LINEERR_INVALDEVICECLASS",
	LINEERR_INVALDEVICEHANDLE:      "LINEERR_INVALDEVICEHANDLE",
	LINEERR_INVALDIALPARAMS:        "LINEERR_INVALDIALPARAMS",
	LINEERR_INVALDIGITLIST:         "LINEERR_INVALDIGITLIST",
	LINEERR_INVALDIGITMODE:         "LINEERR_INVALDIGITMODE",
	LINEERR_INVALDIGITS:            "LINEERR_INVALDIGITS",
	LINEERR_INVALEXTVERSION:        "LINEERR_INVALEXTVERSION",
	LINEERR_INVALGROUPID:           "LINEERR_INVALGROUPID",
	LINEERR_INVALLINEHANDLE:        "LINEERR_INVALLINEHANDLE",
	LINEERR_INVALLINESTATE:         "LINEERR_INVALLINESTATE",
	LINEERR_INVALLOCATION:          "LINEERR_INVALLOCATION",
	LINEERR_INVALMEDIALIST:         "LINEERR_INVALMEDIALIST",
	LINEERR_INVALMEDIAMODE:         "LINEERR_INVALMEDIAMODE",
	LINEERR_INVALMESSAGEID:         "LINEERR_INVALMESSAGEID",
	LINEERR_INVALPARAM:             "LINEERR_INVALPARAM",
	LINEERR_INVALPARKID:            "LINEERR_INVALPARKID",
	LINEERR_INVALPARKMODE:          "LINEERR_INVALPARKMODE",
	LINEERR_INVALPOINTER:           "LINEERR_INVALPOINTER",
	LINEERR_INVALPRIVSELECT:        "LINEERR_INVALPRIVSELECT",
	LINEERR_INVALRATE:              "LINEERR_INVALRATE",
	LINEERR_INVALREQUESTMODE:       "LINEERR_INVALREQUESTMODE",
	LINEERR_INVALTERMINALID:        "LINEERR_INVALTERMINALID",
	LINEERR_INVALTERMINALMODE:      "LINEERR_INVALTERMINALMODE",
	LINEERR_INVALTIMEOUT:           "LINEERR_INVALTIMEOUT",
	LINEERR_INVALTONE:              "LINEERR_INVALTONE",
	LINEERR_INVALTONELIST:          "LINEERR_INVALTONELIST",
	LINEERR_INVALTONEMODE:          "LINEERR_INVALTONEMODE",
	LINEERR_INVALTRANSFERMODE:      "LINEERR_INVALTRANSFERMODE",
	LINEERR_LINEMAPPERFAILED:       "LINEERR_LINEMAPPERFAILED",
	LINEERR_NOCONFERENCE:           "LINEERR_NOCONFERENCE",
	LINEERR_NODEVICE:               "LINEERR_NODEVICE",
	LINEERR_NODRIVER:               "LINEERR_NODRIVER",
	LINEERR_NOMEM:                  "LINEERR_NOMEM",
	LINEERR_NOREQUEST:              "LINEERR_NOREQUEST",
	LINEERR_NOTOWNER:               "LINEERR_NOTOWNER",
	LINEERR_NOTREGISTERED:          "LINEERR_NOTREGISTERED",
	LINEERR_OPERATIONFAILED:        "LINEERR_OPERATIONFAILED",
	LINEERR_OPERATIONUNAVAIL:       "LINEERR_OPERATIONUNAVAIL",
	LINEERR_RATEUNAVAIL:            "LINEERR_RATEUNAVAIL",
	LINEERR_RESOURCEUNAVAIL:        "LINEERR_RESOURCEUNAVAIL",
	LINEERR_REQUESTOVERRUN:         "LINEERR_REQUESTOVERRUN",
	LINEERR_STRUCTURETOOSMALL:      "LINEERR_STRUCTURETOOSMALL",
	LINEERR_TARGETNOTFOUND:         "LINEERR_TARGETNOTFOUND",
	LINEERR_TARGETSELF:             "LINEERR_TARGETSELF",
	LINEERR_UNINITIALIZED:          "LINEERR_UNINITIALIZED",
	LINEERR_USERUSERINFOTOOBIG:     "LINEERR_USERUSERINFOTOOBIG",
	LINEERR_REINIT:                 "LINEERR_REINIT",
	LINEERR_ADDRESSBLOCKED:         "LINEERR_ADDRESSBLOCKED",
	LINEERR_BILLINGREJECTED:        "LINEERR_BILLINGREJECTED",
	LINEERR_INVALFEATURE:           "LINEERR_INVALFEATURE",
	LINEERR_NOMULTIPLEINSTANCE:     "LINEERR_NOMULTIPLEINSTANCE",
	LINEERR_INVALAGENTID:           "LINEERR_INVALAGENTID",
	LINEERR_INVALAGENTGROUP:        "LINEERR_INVALAGENTGROUP",
	LINEERR_INVALPASSWORD:          "LINEERR_INVALPASSWORD",
	LINEERR_INVALAGENTSTATE:        "LINEERR_INVALAGENTSTATE",
	LINEERR_INVALAGENTACTIVITY:     "LINEERR_INVALAGENTACTIVITY",
	LINEERR_DIALVOICEDETECT:        "LINEERR_DIALVOICEDETECT",
	LINEERR_USERCANCELLED:          "LINEERR_USERCANCELLED",
	LINEERR_INVALADDRESSTYPE:       "LINEERR_INVALADDRESSTYPE",
	LINEERR_INVALAGENTSESSIONSTATE: "LINEERR_INVALAGENTSESSIONSTATE",
	LINEERR_DISCONNECTED:           "LINEERR_DISCONNECTED",
	LINEERR_SERVICE_NOT_RUNNING:    "LINEERR_SERVICE_NOT_RUNNING",
}

func (e LineErr) Error() string {
	if s, ok := lineErrNames[e]; ok {
		return s
	}
	return fmt.Sprintf("LINEERR 0x%08X", uint32(e))
}

// Code returns the raw LONG the function returned.
func (e LineErr) Code() int32 { return int32(e) }

const (
	PHONEERR_ALLOCATED              PhoneErr = 0x90000001
	PHONEERR_BADDEVICEID            PhoneErr = 0x90000002
	PHONEERR_INCOMPATIBLEAPIVERSION PhoneErr = 0x90000003
	PHONEERR_INCOMPATIBLEEXTVERSION PhoneErr = 0x90000004
	PHONEERR_INIFILECORRUPT         PhoneErr = 0x90000005
	PHONEERR_INUSE                  PhoneErr = 0x90000006
	PHONEERR_INVALAPPHANDLE         PhoneErr = 0x90000007
	PHONEERR_INVALAPPNAME           PhoneErr = 0x90000008
	PHONEERR_INVALBUTTONLAMPID      PhoneErr = 0x90000009
	PHONEERR_INVALBUTTONMODE        PhoneErr = 0x9000000A
	PHONEERR_INVALBUTTONSTATE       PhoneErr = 0x9000000B
	PHONEERR_INVALDATAID            PhoneErr = 0x9000000C
	PHONEERR_INVALDEVICECLASS       PhoneErr = 0x9000000D
	PHONEERR_INVALEXTVERSION        PhoneErr = 0x9000000E
	PHONEERR_INVALHOOKSWITCHDEV     PhoneErr = 0x9000000F
	PHONEERR_INVALHOOKSWITCHMODE    PhoneErr = 0x90000010
	PHONEERR_INVALLAMPMODE          PhoneErr = 0x90000011
	PHONEERR_INVALPARAM             PhoneErr = 0x90000012
	PHONEERR_INVALPHONEHANDLE       PhoneErr = 0x90000013
	PHONEERR_INVALPHONESTATE        PhoneErr = 0x90000014
	PHONEERR_INVALPOINTER           PhoneErr = 0x90000015
	PHONEERR_INVALPRIVILEGE         PhoneErr = 0x90000016
	PHONEERR_INVALRINGMODE          PhoneErr = 0x90000017
	PHONEERR_NODEVICE               PhoneErr = 0x90000018
	PHONEERR_NODRIVER               PhoneErr = 0x90000019
	PHONEERR_NOMEM                  PhoneErr = 0x9000001A
	PHONEERR_NOTOWNER               PhoneErr = 0x9000001B
	PHONEERR_OPERATIONFAILED        PhoneErr = 0x9000001C
	PHONEERR_OPERATIONUNAVAIL       PhoneErr = 0x9000001D
	PHONEERR_RESOURCEUNAVAIL        PhoneErr = 0x9000001F
	PHONEERR_REQUESTOVERRUN         PhoneErr = 0x90000020
	PHONEERR_STRUCTURETOOSMALL      PhoneErr = 0x90000021
	PHONEERR_UNINITIALIZED          PhoneErr = 0x90000022
	PHONEERR_REINIT                 PhoneErr = 0x90000023
	PHONEERR_DISCONNECTED           PhoneErr = 0x90000024
	PHONEERR_SERVICE_NOT_RUNNING    PhoneErr = 0x90000025
)

var phoneErrNames = map[PhoneErr]string{
	PHONEERR_ALLOCATED:              "PHONEERR_ALLOCATED",
	PHONEERR_BADDEVICEID:            "PHONEERR_BADDEVICEID",
	PHONEERR_INCOMPATIBLEAPIVERSION: "PHONEERR_INCOMPATIBLEAPIVERSION",
	PHONEERR_INCOMPATIBLEEXTVERSION: "PHONEERR_INCOMPATIBLEEXTVERSION",
	PHONEERR_INIFILECORRUPT:         "PHONEERR_INIFILECORRUPT",
	PHONEERR_INUSE:                  "PHONEERR_INUSE",
	PHONEERR_INVALAPPHANDLE:         "PHONEERR_INVALAPPHANDLE",
	PHONEERR_INVALAPPNAME:           "PHONEERR_INVALAPPNAME",
	PHONEERR_INVALBUTTONLAMPID:      "PHONEERR_INVALBUTTONLAMPID",
	PHONEERR_INVALBUTTONMODE:        "PHONEERR_INVALBUTTONMODE",
	PHONEERR_INVALBUTTONSTATE:       "PHONEERR_INVALBUTTONSTATE",
	PHONEERR_INVALDATAID:            "PHONEERR_INVALDATAID",
	PHONEERR_INVALDEVICECLASS:       "PHONEERR_INVALDEVICECLASS",
	PHONEERR_INVALEXTVERSION:        "PHONEERR_INVALEXTVERSION",
	PHONEERR_INVALHOOKSWITCHDEV:     "PHONEERR_INVALHOOKSWITCHDEV",
	PHONEERR_INVALHOOKSWITCHMODE:    "PHONEERR_INVALHOOKSWITCHMODE",
	PHONEERR_INVALLAMPMODE:          "PHONEERR_INVALLAMPMODE",
	PHONEERR_INVALPARAM:             "PHONEERR_INVALPARAM",
	PHONEERR_INVALPHONEHANDLE:       "PHONEERR_INVALPHONEHANDLE",
	PHONEERR_INVALPHONESTATE:        "PHONEERR_INVALPHONESTATE",
	PHONEERR_INVALPOINTER:           "PHONEERR_INVALPOINTER",
	PHONEERR_INVALPRIVILEGE:         "PHONEERR_INVALPRIVILEGE",
	PHONEERR_INVALRINGMODE:          "PHONEERR_INVALRINGMODE",
	PHONEERR_NODEVICE:               "PHONEERR_NODEVICE",
	PHONEERR_NODRIVER:               "PHONEERR_NODRIVER",
	PHONEERR_NOMEM:                  "PHONEERR_NOMEM",
	PHONEERR_NOTOWNER:               "PHONEERR_NOTOWNER",
	PHONEERR_OPERATIONFAILED:        "PHONEERR_OPERATIONFAILED",
	PHONEERR_OPERATIONUNAVAIL:       "PHONEERR_OPERATIONUNAVAIL",
	PHONEERR_RESOURCEUNAVAIL:        "PHONEERR_RESOURCEUNAVAIL",
	PHONEERR_REQUESTOVERRUN:         "PHONEERR_REQUESTOVERRUN",
	PHONEERR_STRUCTURETOOSMALL:      "PHONEERR_STRUCTURETOOSMALL",
	PHONEERR_UNINITIALIZED:          "PHONEERR_UNINITIALIZED",
	PHONEERR_REINIT:                 "PHONEERR_REINIT",
	PHONEERR_DISCONNECTED:           "PHONEERR_DISCONNECTED",
	PHONEERR_SERVICE_NOT_RUNNING:    "PHONEERR_SERVICE_NOT_RUNNING",
}

func (e PhoneErr) Error() string {
	if s, ok := phoneErrNames[e]; ok {
		return s
	}
	return fmt.Sprintf("PHONEERR 0x%08X", uint32(e))
}

// Code returns the raw LONG the function returned.
func (e PhoneErr) Code() int32 { return int32(e) }

const (
	TAPIERR_CONNECTED                RequestErr = 0
	TAPIERR_DROPPED                  RequestErr = -1
	TAPIERR_NOREQUESTRECIPIENT       RequestErr = -2
	TAPIERR_REQUESTQUEUEFULL         RequestErr = -3
	TAPIERR_INVALDESTADDRESS         RequestErr = -4
	TAPIERR_INVALWINDOWHANDLE        RequestErr = -5
	TAPIERR_INVALDEVICECLASS         RequestErr = -6
	TAPIERR_INVALDEVICEID            RequestErr = -7
	TAPIERR_DEVICECLASSUNAVAIL       RequestErr = -8
	TAPIERR_DEVICEIDUNAVAIL          RequestErr = -9
	TAPIERR_DEVICEINUSE              RequestErr = -10
	TAPIERR_DESTBUSY                 RequestErr = -11
	TAPIERR_DESTNOANSWER             RequestErr = -12
	TAPIERR_DESTUNAVAIL              RequestErr = -13
	TAPIERR_UNKNOWNWINHANDLE         RequestErr = -14
	TAPIERR_UNKNOWNREQUESTID         RequestErr = -15
	TAPIERR_REQUESTFAILED            RequestErr = -16
	TAPIERR_REQUESTCANCELLED         RequestErr = -17
	TAPIERR_INVALPOINTER             RequestErr = -18
	TAPIERR_NOTADMIN                 RequestErr = -19
	TAPIERR_MMCWRITELOCKED           RequestErr = -20
	TAPIERR_PROVIDERALREADYINSTALLED RequestErr = -21
	TAPIERR_SCP_ALREADY_EXISTS       RequestErr = -22
	TAPIERR_SCP_DOES_NOT_EXIST       RequestErr = -23
)

var requestErrNames = [...]string{
	"TAPIERR_CONNECTED", "TAPIERR_DROPPED", "TAPIERR_NOREQUESTRECIPIENT",
	"TAPIERR_REQUESTQUEUEFULL", "TAPIERR_INVALDESTADDRESS",
	"TAPIERR_INVALWINDOWHANDLE", "TAPIERR_INVALDEVICECLASS",
	"TAPIERR_INVALDEVICEID", "TAPIERR_DEVICECLASSUNAVAIL",
	"TAPIERR_DEVICEIDUNAVAIL", "TAPIERR_DEVICEINUSE", "TAPIERR_DESTBUSY",
	"TAPIERR_DESTNOANSWER", "TAPIERR_DESTUNAVAIL", "TAPIERR_UNKNOWNWINHANDLE",
	"TAPIERR_UNKNOWNREQUESTID", "TAPIERR_REQUESTFAILED",
	"TAPIERR_REQUESTCANCELLED", "TAPIERR_INVALPOINTER", "TAPIERR_NOTADMIN",
	"TAPIERR_MMCWRITELOCKED", "TAPIERR_PROVIDERALREADYINSTALLED",
	"TAPIERR_SCP_ALREADY_EXISTS", "TAPIERR_SCP_DOES_NOT_EXIST",
}

func (e RequestErr) Error() string {
	if e <= 0 && int(-e) < len(requestErrNames) {
		return requestErrNames[-e]
	}
	return fmt.Sprintf("TAPIERR %d", int32(e))
}

const (
	TAPI_E_NOTENOUGHMEMORY          HResult = 0x80040001
	TAPI_E_NOITEMS                  HResult = 0x80040002
	TAPI_E_NOTSUPPORTED             HResult = 0x80040003
	TAPI_E_INVALIDMEDIATYPE         HResult = 0x80040004
	TAPI_E_OPERATIONFAILED          HResult = 0x80040005
	TAPI_E_ALLOCATED                HResult = 0x80040006
	TAPI_E_CALLUNAVAIL              HResult = 0x80040007
	TAPI_E_COMPLETIONOVERRUN        HResult = 0x80040008
	TAPI_E_CONFERENCEFULL           HResult = 0x80040009
	TAPI_E_DIALMODIFIERNOTSUPPORTED HResult = 0x8004000A
	TAPI_E_INUSE                    HResult = 0x8004000B
	TAPI_E_INVALADDRESS             HResult = 0x8004000C
	TAPI_E_INVALADDRESSSTATE        HResult = 0x8004000D
	TAPI_E_INVALCALLPARAMS          HResult = 0x8004000E
	TAPI_E_INVALCALLPRIVILEGE       HResult = 0x8004000F
	TAPI_E_INVALCALLSTATE           HResult = 0x80040010
	TAPI_E_INVALCARD                HResult = 0x80040011
	TAPI_E_INVALCOMPLETIONID        HResult = 0x80040012
	TAPI_E_INVALCOUNTRYCODE         HResult = 0x80040013
	TAPI_E_INVALDEVICECLASS         HResult = 0x80040014
	TAPI_E_INVALDIALPARAMS          HResult = 0x80040015
	TAPI_E_INVALDIGITS              HResult = 0x80040016
	TAPI_E_INVALGROUPID             HResult = 0x80040017
	TAPI_E_INVALLOCATION            HResult = 0x80040018
	TAPI_E_INVALMESSAGEID           HResult = 0x80040019
	TAPI_E_INVALPARKID              HResult = 0x8004001A
	TAPI_E_INVALRATE                HResult = 0x8004001B
	TAPI_E_INVALTIMEOUT             HResult = 0x8004001C
	TAPI_E_INVALTONE                HResult = 0x8004001D
	TAPI_E_INVALLIST                HResult = 0x8004001E
	TAPI_E_INVALMODE                HResult = 0x8004001F
	TAPI_E_NOCONFERENCE             HResult = 0x80040020
	TAPI_E_NODEVICE                 HResult = 0x80040021
	TAPI_E_NOREQUEST                HResult = 0x80040022
	TAPI_E_NOTOWNER                 HResult = 0x80040023
	TAPI_E_NOTREGISTERED            HResult = 0x80040024
	TAPI_E_REQUESTOVERRUN           HResult = 0x80040025
	TAPI_E_TARGETNOTFOUND           HResult = 0x80040026
	TAPI_E_TARGETSELF               HResult = 0x80040027
	TAPI_E_USERUSERINFOTOOBIG       HResult = 0x80040028
	TAPI_E_REINIT                   HResult = 0x80040029
	TAPI_E_ADDRESSBLOCKED           HResult = 0x8004002A
	TAPI_E_BILLINGREJECTED          HResult = 0x8004002B
	TAPI_E_INVALFEATURE             HResult = 0x8004002C
	TAPI_E_INVALBUTTONLAMPID        HResult = 0x8004002D
	TAPI_E_INVALBUTTONSTATE         HResult = 0x8004002E
	TAPI_E_INVALDATAID              HResult = 0x8004002F
	TAPI_E_INVALHOOKSWITCHDEV       HResult = 0x80040030
	TAPI_E_DROPPED                  HResult = 0x80040031
	TAPI_E_NOREQUESTRECIPIENT       HResult = 0x80040032
	TAPI_E_REQUESTQUEUEFULL         HResult = 0x80040033
	TAPI_E_DESTBUSY                 HResult = 0x80040034
	TAPI_E_DESTNOANSWER             HResult = 0x80040035
	TAPI_E_DESTUNAVAIL              HResult = 0x80040036
	TAPI_E_REQUESTFAILED            HResult = 0x80040037
	TAPI_E_REQUESTCANCELLED         HResult = 0x80040038
	TAPI_E_INVALPRIVILEGE           HResult = 0x80040039
	TAPI_E_INVALIDDIRECTION         HResult = 0x8004003A
	TAPI_E_INVALIDTERMINAL          HResult = 0x8004003B
	TAPI_E_INVALIDTERMINALCLASS     HResult = 0x8004003C
	TAPI_E_NODRIVER                 HResult = 0x8004003D
	TAPI_E_MAXSTREAMS               HResult = 0x8004003E
	TAPI_E_NOTERMINALSELECTED       HResult = 0x8004003F
	TAPI_E_TERMINALPEER             HResult = 0x80040040
	TAPI_E_PHONENOTOPEN             HResult = 0x80040041
	TAPI_E_CALLNOTSELECTED          HResult = 0x80040042
	TAPI_E_WRONGEVENT               HResult = 0x80040043
	TAPI_E_NOEVENT                  HResult = 0x80040044
	TAPI_E_INVALIDSTREAM            HResult = 0x80040045
	TAPI_E_RESOURCEUNAVAIL          HResult = 0x80040046
)

var hresultNames = [...]string{
	"TAPI_E_NOTENOUGHMEMORY", "TAPI_E_NOITEMS", "TAPI_E_NOTSUPPORTED",
	"TAPI_E_INVALIDMEDIATYPE", "TAPI_E_OPERATIONFAILED", "TAPI_E_ALLOCATED",
	"TAPI_E_CALLUNAVAIL", "TAPI_E_COMPLETIONOVERRUN", "TAPI_E_CONFERENCEFULL",
	"TAPI_E_DIALMODIFIERNOTSUPPORTED", "TAPI_E_INUSE", "TAPI_E_INVALADDRESS",
	"TAPI_E_INVALADDRESSSTATE", "TAPI_E_INVALCALLPARAMS",
	"TAPI_E_INVALCALLPRIVILEGE", "TAPI_E_INVALCALLSTATE", "TAPI_E_INVALCARD",
	"TAPI_E_INVALCOMPLETIONID", "TAPI_E_INVALCOUNTRYCODE",
	"TAPI_E_INVALDEVICECLASS", "TAPI_E_INVALDIALPARAMS", "TAPI_E_INVALDIGITS",
	"TAPI_E_INVALGROUPID", "TAPI_E_INVALLOCATION", "TAPI_E_INVALMESSAGEID",
	"TAPI_E_INVALPARKID", "TAPI_E_INVALRATE", "TAPI_E_INVALTIMEOUT",
	"TAPI_E_INVALTONE", "TAPI_E_INVALLIST", "TAPI_E_INVALMODE",
	"TAPI_E_NOCONFERENCE", "TAPI_E_NODEVICE", "TAPI_E_NOREQUEST",
	"TAPI_E_NOTOWNER", "TAPI_E_NOTREGISTERED", "TAPI_E_REQUESTOVERRUN",
	"TAPI_E_TARGETNOTFOUND", "TAPI_E_TARGETSELF", "TAPI_E_USERUSERINFOTOOBIG",
	"TAPI_E_REINIT", "TAPI_E_ADDRESSBLOCKED", "TAPI_E_BILLINGREJECTED",
	"TAPI_E_INVALFEATURE", "TAPI_E_INVALBUTTONLAMPID",
	"TAPI_E_INVALBUTTONSTATE", "TAPI_E_INVALDATAID",
	"TAPI_E_INVALHOOKSWITCHDEV", "TAPI_E_DROPPED",
	"TAPI_E_NOREQUESTRECIPIENT", "TAPI_E_REQUESTQUEUEFULL", "TAPI_E_DESTBUSY",
	"TAPI_E_DESTNOANSWER", "TAPI_E_DESTUNAVAIL", "TAPI_E_REQUESTFAILED",
	"TAPI_E_REQUESTCANCELLED", "TAPI_E_INVALPRIVILEGE",
	"TAPI_E_INVALIDDIRECTION", "TAPI_E_INVALIDTERMINAL",
	"TAPI_E_INVALIDTERMINALCLASS", "TAPI_E_NODRIVER", "TAPI_E_MAXSTREAMS",
	"TAPI_E_NOTERMINALSELECTED", "TAPI_E_TERMINALPEER", "TAPI_E_PHONENOTOPEN",
	"TAPI_E_CALLNOTSELECTED", "TAPI_E_WRONGEVENT", "TAPI_E_NOEVENT",
	"TAPI_E_INVALIDSTREAM", "TAPI_E_RESOURCEUNAVAIL",
}

func (h HResult) Error() string {
	if i := int(h - TAPI_E_NOTENOUGHMEMORY); h >= TAPI_E_NOTENOUGHMEMORY && i < len(hresultNames) {
		return hresultNames[i]
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(h))
}

// Failed reports whether the severity bit is set.
func (h HResult) Failed() bool { return int32(h) < 0 }

// lineResult maps the LONG returned by a line function to a request id or a LineErr.
func lineResult(r int32) (int32, error) {
	if r < 0 {
		return 0, LineErr(uint32(r))
	}
	return r, nil
}

func phoneResult(r int32) (int32, error) {
	if r < 0 {
		return 0, PhoneErr(uint32(r))
	}
	return r, nil
}

func lineErr(r int32) error {
	_, err := lineResult(r)
	return err
}

func phoneErr(r int32) error {
	_, err := phoneResult(r)
	return err
}

// ParseError maps a raw LONG status to the typed error of the function
// family that owns its range. Non-negative values that aren't assisted
// telephony codes yield nil.
func ParseError(code int32) error {
	switch uint32(code) & 0xF0000000 {
	case 0x80000000:
		return LineErr(uint32(code))
	case 0x90000000:
		return PhoneErr(uint32(code))
	}
	if code <= 0 && int(-code) < len(requestErrNames) {
		return RequestErr(code)
	}
	return nil
}

// KnownErrors returns every named line and phone error ordered by code.
func KnownErrors() []error {
	lines := make([]LineErr, 0, len(lineErrNames))
	for e := range lineErrNames {
		lines = append(lines, e)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	phones := make([]PhoneErr, 0, len(phoneErrNames))
	for e := range phoneErrNames {
		phones = append(phones, e)
	}
	sort.Slice(phones, func(i, j int) bool { return phones[i] < phones[j] })

	errs := make([]error, 0, len(lines)+len(phones))
	for _, e := range lines {
		errs = append(errs, e)
	}
	for _, e := range phones {
		errs = append(errs, e)
	}
	return errs
}
