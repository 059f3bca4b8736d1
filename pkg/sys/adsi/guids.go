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

package adsi

import "golang.org/x/sys/windows"

// Interface identifiers.
var (
	IID_IUnknown               = windows.GUID{Data1: 0x00000000, Data2: 0x0000, Data3: 0x0000, Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	IID_IDispatch              = windows.GUID{Data1: 0x00020400, Data2: 0x0000, Data3: 0x0000, Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	IID_IADs                   = windows.GUID{Data1: 0xFD8256D0, Data2: 0xFD15, Data3: 0x11CE, Data4: [8]byte{0xAB, 0xC4, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}}
	IID_IADsContainer          = windows.GUID{Data1: 0x001677D0, Data2: 0xFD16, Data3: 0x11CE, Data4: [8]byte{0xAB, 0xC4, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}}
	IID_IADsUser               = windows.GUID{Data1: 0x3E37E320, Data2: 0x17E2, Data3: 0x11CF, Data4: [8]byte{0xAB, 0xC4, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}}
	IID_IADsGroup              = windows.GUID{Data1: 0x27636B00, Data2: 0x410F, Data3: 0x11CF, Data4: [8]byte{0xB1, 0xFF, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}}
	IID_IADsComputer           = windows.GUID{Data1: 0xEFE3CC70, Data2: 0x1D9F, Data3: 0x11CF, Data4: [8]byte{0xB1, 0xF3, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}}
	IID_IADsMembers            = windows.GUID{Data1: 0x451A0030, Data2: 0x72EC, Data3: 0x11CF, Data4: [8]byte{0xB0, 0x3B, 0x00, 0xAA, 0x00, 0x6E, 0x09, 0x75}}
	IID_IDirectoryObject       = windows.GUID{Data1: 0xE798DE2C, Data2: 0x22E4, Data3: 0x11D0, Data4: [8]byte{0x84, 0xFE, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	IID_IDirectorySearch       = windows.GUID{Data1: 0x109BA8EC, Data2: 0x92F0, Data3: 0x11D0, Data4: [8]byte{0xA7, 0x90, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0xA8}}
	IID_IDirectorySchemaMgmt   = windows.GUID{Data1: 0x75DB3B9C, Data2: 0xA4D8, Data3: 0x11D0, Data4: [8]byte{0xA7, 0x9C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0xA8}}
	IID_IADsOpenDSObject       = windows.GUID{Data1: 0xDDF2891E, Data2: 0x0F9C, Data3: 0x11D0, Data4: [8]byte{0x8A, 0xD4, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	IID_IADsNameTranslate      = windows.GUID{Data1: 0xB1B272A3, Data2: 0x3625, Data3: 0x11D1, Data4: [8]byte{0xA3, 0xA4, 0x00, 0xC0, 0x4F, 0xB9, 0x50, 0xDC}}
	IID_IADsADSystemInfo       = windows.GUID{Data1: 0x5BB11929, Data2: 0xAFD1, Data3: 0x11D2, Data4: [8]byte{0x9C, 0xB9, 0x00, 0x00, 0xF8, 0x7A, 0x36, 0x9E}}
	IID_IADsWinNTSystemInfo    = windows.GUID{Data1: 0x6C6D65DC, Data2: 0xAFD1, Data3: 0x11D2, Data4: [8]byte{0x9C, 0xB9, 0x00, 0x00, 0xF8, 0x7A, 0x36, 0x9E}}
	IID_IADsPathname           = windows.GUID{Data1: 0xD592AED4, Data2: 0xF420, Data3: 0x11D0, Data4: [8]byte{0xA3, 0x6E, 0x00, 0xC0, 0x4F, 0xB9, 0x50, 0xDC}}
	IID_IADsLargeInteger       = windows.GUID{Data1: 0x9068270B, Data2: 0x0939, Data3: 0x11D1, Data4: [8]byte{0x8B, 0xE1, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	IID_IADsSecurityDescriptor = windows.GUID{Data1: 0xB8C787CA, Data2: 0x9BDD, Data3: 0x11D0, Data4: [8]byte{0x85, 0x2C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	IID_IADsAccessControlEntry = windows.GUID{Data1: 0xB4F3A14C, Data2: 0x9BDD, Data3: 0x11D0, Data4: [8]byte{0x85, 0x2C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	IID_IADsAccessControlList  = windows.GUID{Data1: 0xB7EE91CC, Data2: 0x9BDD, Data3: 0x11D0, Data4: [8]byte{0x85, 0x2C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	IID_IADsClass              = windows.GUID{Data1: 0xC8F93DD0, Data2: 0x4AE0, Data3: 0x11CF, Data4: [8]byte{0x9E, 0x73, 0x00, 0xAA, 0x00, 0x4A, 0x56, 0x91}}
	IID_IADsSyntax             = windows.GUID{Data1: 0xC8F93DD2, Data2: 0x4AE0, Data3: 0x11CF, Data4: [8]byte{0x9E, 0x73, 0x00, 0xAA, 0x00, 0x4A, 0x56, 0x91}}
	IID_IADsProperty           = windows.GUID{Data1: 0xC8F93DD3, Data2: 0x4AE0, Data3: 0x11CF, Data4: [8]byte{0x9E, 0x73, 0x00, 0xAA, 0x00, 0x4A, 0x56, 0x91}}
)

// Class identifiers.
var (
	CLSID_NameTranslate      = windows.GUID{Data1: 0x274FAE1F, Data2: 0x3626, Data3: 0x11D1, Data4: [8]byte{0xA3, 0xA4, 0x00, 0xC0, 0x4F, 0xB9, 0x50, 0xDC}}
	CLSID_ADSystemInfo       = windows.GUID{Data1: 0x50B6327F, Data2: 0xAFD1, Data3: 0x11D2, Data4: [8]byte{0x9C, 0xB9, 0x00, 0x00, 0xF8, 0x7A, 0x36, 0x9E}}
	CLSID_WinNTSystemInfo    = windows.GUID{Data1: 0x66182EC4, Data2: 0xAFD1, Data3: 0x11D2, Data4: [8]byte{0x9C, 0xB9, 0x00, 0x00, 0xF8, 0x7A, 0x36, 0x9E}}
	CLSID_Pathname           = windows.GUID{Data1: 0x080D0D78, Data2: 0xF421, Data3: 0x11D0, Data4: [8]byte{0xA3, 0x6E, 0x00, 0xC0, 0x4F, 0xB9, 0x50, 0xDC}}
	CLSID_LargeInteger       = windows.GUID{Data1: 0x927971F5, Data2: 0x0939, Data3: 0x11D1, Data4: [8]byte{0x8B, 0xE1, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	CLSID_SecurityDescriptor = windows.GUID{Data1: 0xB958F73C, Data2: 0x9BDD, Data3: 0x11D0, Data4: [8]byte{0x85, 0x2C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	CLSID_AccessControlEntry = windows.GUID{Data1: 0xB75AC000, Data2: 0x9BDD, Data3: 0x11D0, Data4: [8]byte{0x85, 0x2C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
	CLSID_AccessControlList  = windows.GUID{Data1: 0xB85EA052, Data2: 0x9BDD, Data3: 0x11D0, Data4: [8]byte{0x85, 0x2C, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0x03}}
)
