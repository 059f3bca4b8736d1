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
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"golang.org/x/sys/windows"
)

// DomainController describes the domain controller located by DsGetDcName.
type DomainController struct {
	Name        string
	Address     string
	AddressType string
	DomainGUID  string
	Domain      string
	Forest      string
	Site        string
	ClientSite  string
	Flags       []string
}

var dcFlagNames = []struct {
	flag uint32
	name string
}{
	{adsi.DS_PDC_FLAG, "pdc"},
	{adsi.DS_GC_FLAG, "gc"},
	{adsi.DS_LDAP_FLAG, "ldap"},
	{adsi.DS_DS_FLAG, "ds"},
	{adsi.DS_KDC_FLAG, "kdc"},
	{adsi.DS_TIMESERV_FLAG, "timeserv"},
	{adsi.DS_CLOSEST_FLAG, "closest"},
	{adsi.DS_WRITABLE_FLAG, "writable"},
	{adsi.DS_GOOD_TIMESERV_FLAG, "good-timeserv"},
	{adsi.DS_NDNC_FLAG, "ndnc"},
	{adsi.DS_SELECT_SECRET_DOMAIN_6_FLAG, "rodc"},
	{adsi.DS_FULL_SECRET_DOMAIN_6_FLAG, "full-secret"},
	{adsi.DS_WS_FLAG, "web-service"},
	{adsi.DS_DS_8_FLAG, "ds8"},
	{adsi.DS_DNS_CONTROLLER_FLAG, "dns-controller"},
	{adsi.DS_DNS_DOMAIN_FLAG, "dns-domain"},
	{adsi.DS_DNS_FOREST_FLAG, "dns-forest"},
}

var locateFlags = map[string]uint32{
	"force":         adsi.DS_FORCE_REDISCOVERY,
	"ds":            adsi.DS_DIRECTORY_SERVICE_REQUIRED,
	"ds-preferred":  adsi.DS_DIRECTORY_SERVICE_PREFERRED,
	"ds6":           adsi.DS_DIRECTORY_SERVICE_6_REQUIRED,
	"gc":            adsi.DS_GC_SERVER_REQUIRED,
	"pdc":           adsi.DS_PDC_REQUIRED,
	"background":    adsi.DS_BACKGROUND_ONLY,
	"ip":            adsi.DS_IP_REQUIRED,
	"kdc":           adsi.DS_KDC_REQUIRED,
	"timeserv":      adsi.DS_TIMESERV_REQUIRED,
	"writable":      adsi.DS_WRITABLE_REQUIRED,
	"good-timeserv": adsi.DS_GOOD_TIMESERV_PREFERRED,
	"avoid-self":    adsi.DS_AVOID_SELF,
	"ldap":          adsi.DS_ONLY_LDAP_NEEDED,
	"flat-name":     adsi.DS_IS_FLAT_NAME,
	"dns-name":      adsi.DS_IS_DNS_NAME,
	"next-site":     adsi.DS_TRY_NEXTCLOSEST_SITE,
	"web-service":   adsi.DS_WEB_SERVICE_REQUIRED,
	"return-dns":    adsi.DS_RETURN_DNS_NAME,
	"return-flat":   adsi.DS_RETURN_FLAT_NAME,
}

// ParseLocateFlags combines the named locator requirements into the
// DsGetDcName flags.
func ParseLocateFlags(names []string) (uint32, error) {
	var flags uint32
	for _, name := range names {
		f, ok := locateFlags[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown locator flag %q", name)
		}
		flags |= f
	}
	if flags&adsi.DS_RETURN_DNS_NAME != 0 && flags&adsi.DS_RETURN_FLAT_NAME != 0 {
		return 0, fmt.Errorf("return-dns and return-flat are mutually exclusive")
	}
	return flags, nil
}

// LocateFlagNames lists the locator requirement names.
func LocateFlagNames() []string {
	names := make([]string, 0, len(locateFlags))
	for name := range locateFlags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LocateDC finds a domain controller of the domain. An empty domain stands
// for the domain of the local computer.
func LocateDC(domain string, flags uint32) (*DomainController, error) {
	var dom *uint16
	if domain != "" {
		var err error
		dom, err = windows.UTF16PtrFromString(domain)
		if err != nil {
			return nil, err
		}
	}
	var info *adsi.DomainControllerInfo
	if err := adsi.DsGetDcName(nil, dom, nil, nil, flags, &info); err != nil {
		if err == windows.ERROR_NO_SUCH_DOMAIN {
			return nil, errs.ErrNoDomain
		}
		return nil, errors.Wrapf(err, "DsGetDcName(%q)", domain)
	}
	defer adsi.NetApiBufferFree(unsafe.Pointer(info))
	return newDomainController(info), nil
}

func newDomainController(info *adsi.DomainControllerInfo) *DomainController {
	dc := &DomainController{
		Name:       strings.TrimPrefix(windows.UTF16PtrToString(info.DomainControllerName), `\\`),
		Address:    strings.TrimPrefix(windows.UTF16PtrToString(info.DomainControllerAddress), `\\`),
		Domain:     windows.UTF16PtrToString(info.DomainName),
		Forest:     windows.UTF16PtrToString(info.DNSForestName),
		Site:       windows.UTF16PtrToString(info.DCSiteName),
		ClientSite: windows.UTF16PtrToString(info.ClientSiteName),
	}
	switch info.DomainControllerAddressType {
	case adsi.DS_INET_ADDRESS:
		dc.AddressType = "inet"
	case adsi.DS_NETBIOS_ADDRESS:
		dc.AddressType = "netbios"
	}
	if info.DomainGUID != (windows.GUID{}) {
		dc.DomainGUID = info.DomainGUID.String()
	}
	for _, f := range dcFlagNames {
		if info.Flags&f.flag != 0 {
			dc.Flags = append(dc.Flags, f.name)
		}
	}
	return dc
}

// DomainRole describes the role of the local computer in its domain.
type DomainRole struct {
	Role       string
	FlatName   string
	DNSName    string
	ForestName string
	DomainGUID string
}

// Role returns the role the local computer plays in the domain. It
// doesn't require a domain controller to be reachable.
func Role() (*DomainRole, error) {
	var buf *byte
	if err := adsi.DsRoleGetPrimaryDomainInformation(nil, adsi.DsRolePrimaryDomainInfoBasicLevel, &buf); err != nil {
		return nil, errors.Wrap(err, "DsRoleGetPrimaryDomainInformation")
	}
	defer adsi.DsRoleFreeMemory(unsafe.Pointer(buf))
	return newDomainRole((*adsi.DsRolePrimaryDomainInfoBasic)(unsafe.Pointer(buf))), nil
}

func newDomainRole(info *adsi.DsRolePrimaryDomainInfoBasic) *DomainRole {
	role := &DomainRole{
		Role:       info.MachineRole.String(),
		FlatName:   windows.UTF16PtrToString(info.DomainNameFlat),
		DNSName:    windows.UTF16PtrToString(info.DomainNameDNS),
		ForestName: windows.UTF16PtrToString(info.DomainForestName),
	}
	if info.DomainGUID != (windows.GUID{}) {
		role.DomainGUID = info.DomainGUID.String()
	}
	return role
}

// Trust is a domain trusted by or trusting the local domain.
type Trust struct {
	NetbiosName string
	DNSName     string
	Flags       []string
	ParentIndex uint32
	Type        uint32
	Attributes  uint32
	SID         string
	GUID        string
}

var trustFlagNames = []struct {
	flag uint32
	name string
}{
	{adsi.DS_DOMAIN_IN_FOREST, "in-forest"},
	{adsi.DS_DOMAIN_DIRECT_OUTBOUND, "direct-outbound"},
	{adsi.DS_DOMAIN_TREE_ROOT, "tree-root"},
	{adsi.DS_DOMAIN_PRIMARY, "primary"},
	{adsi.DS_DOMAIN_NATIVE_MODE, "native-mode"},
	{adsi.DS_DOMAIN_DIRECT_INBOUND, "direct-inbound"},
}

// Trusts enumerates the domain trusts visible from the server. An empty
// server queries the local computer.
func Trusts(server string) ([]Trust, error) {
	var srv *uint16
	if server != "" {
		var err error
		srv, err = windows.UTF16PtrFromString(server)
		if err != nil {
			return nil, err
		}
	}
	var (
		domains *adsi.DsDomainTrusts
		count   uint32
	)
	if err := adsi.DsEnumerateDomainTrusts(srv, adsi.DS_DOMAIN_VALID_FLAGS, &domains, &count); err != nil {
		if err == windows.ERROR_NO_SUCH_DOMAIN {
			return nil, errs.ErrNoDomain
		}
		return nil, errors.Wrap(err, "DsEnumerateDomainTrusts")
	}
	defer adsi.NetApiBufferFree(unsafe.Pointer(domains))
	if domains == nil || count == 0 {
		return nil, nil
	}
	return newTrusts(unsafe.Slice(domains, count)), nil
}

func newTrusts(domains []adsi.DsDomainTrusts) []Trust {
	trusts := make([]Trust, 0, len(domains))
	for _, d := range domains {
		t := Trust{
			NetbiosName: windows.UTF16PtrToString(d.NetbiosDomainName),
			DNSName:     windows.UTF16PtrToString(d.DNSDomainName),
			ParentIndex: d.ParentIndex,
			Type:        d.TrustType,
			Attributes:  d.TrustAttributes,
		}
		for _, f := range trustFlagNames {
			if d.Flags&f.flag != 0 {
				t.Flags = append(t.Flags, f.name)
			}
		}
		if d.DomainSid != nil {
			t.SID = d.DomainSid.String()
		}
		if d.DomainGUID != (windows.GUID{}) {
			t.GUID = d.DomainGUID.String()
		}
		trusts = append(trusts, t)
	}
	return trusts
}
