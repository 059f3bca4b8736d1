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
	"strings"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"golang.org/x/sys/windows"
)

// CrackedName is the outcome of translating a single name.
type CrackedName struct {
	Input  string
	Name   string
	Domain string
	Status adsi.DsNameError
}

// Resolved determines if the name was translated.
func (c CrackedName) Resolved() bool { return c.Status == adsi.DS_NAME_NO_ERROR }

var nameFormats = map[string]adsi.DsNameFormat{
	"unknown":      adsi.DS_UNKNOWN_NAME,
	"fqdn":         adsi.DS_FQDN_1779_NAME,
	"dn":           adsi.DS_FQDN_1779_NAME,
	"nt4":          adsi.DS_NT4_ACCOUNT_NAME,
	"display":      adsi.DS_DISPLAY_NAME,
	"guid":         adsi.DS_UNIQUE_ID_NAME,
	"canonical":    adsi.DS_CANONICAL_NAME,
	"upn":          adsi.DS_USER_PRINCIPAL_NAME,
	"canonical-ex": adsi.DS_CANONICAL_NAME_EX,
	"spn":          adsi.DS_SERVICE_PRINCIPAL_NAME,
	"sid":          adsi.DS_SID_OR_SID_HISTORY_NAME,
	"dns-domain":   adsi.DS_DNS_DOMAIN_NAME,
}

// ParseNameFormat resolves the name format from its short name.
func ParseNameFormat(s string) (adsi.DsNameFormat, error) {
	f, ok := nameFormats[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown name format %q", s)
	}
	return f, nil
}

// Crack translates the names from one format into another. The directory
// service of the domain controller is bound for the duration of the call.
// An empty dc binds to any domain controller of the local domain.
func Crack(dc string, names []string, from, to adsi.DsNameFormat) ([]CrackedName, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var dcName *uint16
	if dc != "" {
		var err error
		dcName, err = windows.UTF16PtrFromString(dc)
		if err != nil {
			return nil, err
		}
	}
	var h adsi.DsHandle
	if err := adsi.DsBind(dcName, nil, &h); err != nil {
		return nil, errors.Wrap(err, "DsBind")
	}
	defer adsi.DsUnBind(&h)

	ptrs := make([]*uint16, len(names))
	for i, name := range names {
		p, err := windows.UTF16PtrFromString(name)
		if err != nil {
			return nil, err
		}
		ptrs[i] = p
	}
	var res *adsi.DsNameResult
	if err := adsi.DsCrackNames(h, adsi.DS_NAME_NO_FLAGS, from, to, uint32(len(ptrs)), &ptrs[0], &res); err != nil {
		return nil, errors.Wrap(err, "DsCrackNames")
	}
	defer adsi.DsFreeNameResult(res)
	return crackedNames(names, res.Slice()), nil
}

func crackedNames(names []string, items []adsi.DsNameResultItem) []CrackedName {
	out := make([]CrackedName, 0, len(items))
	for i, item := range items {
		c := CrackedName{
			Name:   windows.UTF16PtrToString(item.Name),
			Domain: windows.UTF16PtrToString(item.Domain),
			Status: item.Status,
		}
		if i < len(names) {
			c.Input = names[i]
		}
		out = append(out, c)
	}
	return out
}
