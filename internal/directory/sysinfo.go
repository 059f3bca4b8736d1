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

package directory

import (
	"unsafe"

	"github.com/pkg/errors"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// ADSystemInfo describes the domain membership of the local computer and
// the logged on user.
type ADSystemInfo struct {
	User            string
	Computer        string
	Site            string
	DomainShortName string
	DomainDNSName   string
	Forest          string
	PDCRoleOwner    string
	SchemaRoleOwner string
	NativeMode      bool
}

// SystemInfo queries the ADSystemInfo object.
func SystemInfo() (*ADSystemInfo, error) {
	release, err := initCOM()
	if err != nil {
		return nil, err
	}
	defer release()

	var obj unsafe.Pointer
	hr := adsi.CoCreateInstance(&adsi.CLSID_ADSystemInfo, nil, windows.CLSCTX_INPROC_SERVER, &adsi.IID_IADsADSystemInfo, &obj)
	if hr.Failed() {
		return nil, errors.Wrap(hr, "CoCreateInstance(ADSystemInfo)")
	}
	si := (*adsi.IADsADSystemInfo)(obj)
	defer si.Release()

	info := &ADSystemInfo{}
	var b *uint16
	if hr := si.GetDomainDNSName(&b); hr.Failed() {
		if errors.Is(hr, windows.ERROR_NO_SUCH_DOMAIN) || errors.Is(hr, windows.ERROR_NO_TRUST_LSA_SECRET) {
			return nil, errs.ErrNoDomain
		}
		return nil, errors.Wrap(hr, "IADsADSystemInfo::get_DomainDNSName")
	}
	info.DomainDNSName = adsi.TakeBSTR(b)

	props := []struct {
		name string
		get  func(**uint16) adsi.HResult
		dst  *string
	}{
		{"UserName", si.GetUserName, &info.User},
		{"ComputerName", si.GetComputerName, &info.Computer},
		{"SiteName", si.GetSiteName, &info.Site},
		{"DomainShortName", si.GetDomainShortName, &info.DomainShortName},
		{"ForestDNSName", si.GetForestDNSName, &info.Forest},
		{"PDCRoleOwner", si.GetPDCRoleOwner, &info.PDCRoleOwner},
		{"SchemaRoleOwner", si.GetSchemaRoleOwner, &info.SchemaRoleOwner},
	}
	for _, p := range props {
		var b *uint16
		if hr := p.get(&b); hr.Failed() {
			// local accounts have no user DN and role owners need a reachable DC
			log.Debugf("unable to get %s: %v", p.name, hr)
			continue
		}
		*p.dst = adsi.TakeBSTR(b)
	}
	var native int16
	if hr := si.GetIsNativeMode(&native); hr.Succeeded() {
		info.NativeMode = native != adsi.VARIANT_FALSE
	}
	return info, nil
}
