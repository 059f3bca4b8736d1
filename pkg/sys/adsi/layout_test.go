//go:build windows

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

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestStructSizes(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layouts are asserted against the amd64 ABI")
	}
	var tests = []struct {
		name string
		size uintptr
		want uintptr
	}{
		{"ADSVALUE", unsafe.Sizeof(ADsValue{}), 24},
		{"ADS_ATTR_INFO", unsafe.Sizeof(ADsAttrInfo{}), 32},
		{"ADS_ATTR_DEF", unsafe.Sizeof(ADsAttrDef{}), 24},
		{"ADS_CLASS_DEF", unsafe.Sizeof(ADsClassDef{}), 80},
		{"ADS_OBJECT_INFO", unsafe.Sizeof(ADsObjectInfo{}), 40},
		{"ADS_SEARCHPREF_INFO", unsafe.Sizeof(ADsSearchPrefInfo{}), 40},
		{"ADS_SEARCH_COLUMN", unsafe.Sizeof(ADsSearchColumn{}), 40},
		{"ADS_SORTKEY", unsafe.Sizeof(ADsSortKey{}), 24},
		{"ADS_OCTET_STRING", unsafe.Sizeof(ADsOctetString{}), 16},
		{"ADS_DN_WITH_BINARY", unsafe.Sizeof(ADsDNWithBinary{}), 24},
		{"DOMAIN_CONTROLLER_INFOW", unsafe.Sizeof(DomainControllerInfo{}), 80},
		{"DS_NAME_RESULT_ITEMW", unsafe.Sizeof(DsNameResultItem{}), 24},
		{"DS_NAME_RESULTW", unsafe.Sizeof(DsNameResult{}), 16},
		{"DS_DOMAIN_TRUSTSW", unsafe.Sizeof(DsDomainTrusts{}), 56},
		{"DSROLE_PRIMARY_DOMAIN_INFO_BASIC", unsafe.Sizeof(DsRolePrimaryDomainInfoBasic{}), 48},
		{"VARIANT", unsafe.Sizeof(Variant{}), 24},
		{"SAFEARRAY", unsafe.Sizeof(SafeArray{}), 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size)
		})
	}
}

func TestFieldOffsets(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layouts are asserted against the amd64 ABI")
	}
	var dc DomainControllerInfo
	assert.Equal(t, uintptr(20), unsafe.Offsetof(dc.DomainGUID))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(dc.DomainName))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(dc.Flags))
	assert.Equal(t, uintptr(72), unsafe.Offsetof(dc.ClientSiteName))

	var pref ADsSearchPrefInfo
	assert.Equal(t, uintptr(8), unsafe.Offsetof(pref.Value))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(pref.Status))

	var trust DsDomainTrusts
	assert.Equal(t, uintptr(32), unsafe.Offsetof(trust.DomainSid))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(trust.DomainGUID))

	var col ADsSearchColumn
	assert.Equal(t, uintptr(16), unsafe.Offsetof(col.Values))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(col.Reserved))

	var sa SafeArray
	assert.Equal(t, uintptr(16), unsafe.Offsetof(sa.Data))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(sa.Bounds))
}

func TestGUIDs(t *testing.T) {
	var tests = []struct {
		name string
		got  string
		want string
	}{
		{"IID_IADs", IID_IADs.String(), "{FD8256D0-FD15-11CE-ABC4-02608C9E7553}"},
		{"IID_IDirectorySearch", IID_IDirectorySearch.String(), "{109BA8EC-92F0-11D0-A790-00C04FD8D5A8}"},
		{"IID_IDirectoryObject", IID_IDirectoryObject.String(), "{E798DE2C-22E4-11D0-84FE-00C04FD8D503}"},
		{"IID_IADsADSystemInfo", IID_IADsADSystemInfo.String(), "{5BB11929-AFD1-11D2-9CB9-0000F87A369E}"},
		{"CLSID_ADSystemInfo", CLSID_ADSystemInfo.String(), "{50B6327F-AFD1-11D2-9CB9-0000F87A369E}"},
		{"CLSID_NameTranslate", CLSID_NameTranslate.String(), "{274FAE1F-3626-11D1-A3A4-00C04FB950DC}"},
		{"CLSID_Pathname", CLSID_Pathname.String(), "{080D0D78-F421-11D0-A36E-00C04FB950DC}"},
		{"IID_IDispatch", IID_IDispatch.String(), "{00020400-0000-0000-C000-000000000046}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConstants(t *testing.T) {
	assert.Equal(t, ADsChaseReferrals(0x60), ADS_CHASE_REFERRALS_ALWAYS)
	assert.Equal(t, ADsSearchPref(7), ADS_SEARCHPREF_PAGESIZE)
	assert.Equal(t, ADsSearchPref(18), ADS_SEARCHPREF_EXTENDED_DN)
	assert.Equal(t, ADsScope(2), ADS_SCOPE_SUBTREE)
	assert.Equal(t, ADsUserFlag(0x200), ADS_UF_NORMAL_ACCOUNT)
	assert.Equal(t, ADsFormat(11), ADS_FORMAT_LEAF)
	assert.Equal(t, uint32(0x40000000), DS_RETURN_DNS_NAME)
	assert.Equal(t, "primary domain controller", DsRolePrimaryDomainController.String())
	assert.Equal(t, "DS_NAME_ERROR_NOT_FOUND", DS_NAME_ERROR_NOT_FOUND.String())
}
