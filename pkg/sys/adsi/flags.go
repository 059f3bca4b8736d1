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
	"fmt"
	"sort"
)

var userFlagNames = map[ADsUserFlag]string{
	ADS_UF_SCRIPT:                                 "SCRIPT",
	ADS_UF_ACCOUNTDISABLE:                         "ACCOUNTDISABLE",
	ADS_UF_HOMEDIR_REQUIRED:                       "HOMEDIR_REQUIRED",
	ADS_UF_LOCKOUT:                                "LOCKOUT",
	ADS_UF_PASSWD_NOTREQD:                         "PASSWD_NOTREQD",
	ADS_UF_PASSWD_CANT_CHANGE:                     "PASSWD_CANT_CHANGE",
	ADS_UF_ENCRYPTED_TEXT_PASSWORD_ALLOWED:        "ENCRYPTED_TEXT_PASSWORD_ALLOWED",
	ADS_UF_TEMP_DUPLICATE_ACCOUNT:                 "TEMP_DUPLICATE_ACCOUNT",
	ADS_UF_NORMAL_ACCOUNT:                         "NORMAL_ACCOUNT",
	ADS_UF_INTERDOMAIN_TRUST_ACCOUNT:              "INTERDOMAIN_TRUST_ACCOUNT",
	ADS_UF_WORKSTATION_TRUST_ACCOUNT:              "WORKSTATION_TRUST_ACCOUNT",
	ADS_UF_SERVER_TRUST_ACCOUNT:                   "SERVER_TRUST_ACCOUNT",
	ADS_UF_DONT_EXPIRE_PASSWD:                     "DONT_EXPIRE_PASSWD",
	ADS_UF_MNS_LOGON_ACCOUNT:                      "MNS_LOGON_ACCOUNT",
	ADS_UF_SMARTCARD_REQUIRED:                     "SMARTCARD_REQUIRED",
	ADS_UF_TRUSTED_FOR_DELEGATION:                 "TRUSTED_FOR_DELEGATION",
	ADS_UF_NOT_DELEGATED:                          "NOT_DELEGATED",
	ADS_UF_USE_DES_KEY_ONLY:                       "USE_DES_KEY_ONLY",
	ADS_UF_DONT_REQUIRE_PREAUTH:                   "DONT_REQUIRE_PREAUTH",
	ADS_UF_PASSWORD_EXPIRED:                       "PASSWORD_EXPIRED",
	ADS_UF_TRUSTED_TO_AUTHENTICATE_FOR_DELEGATION: "TRUSTED_TO_AUTHENTICATE_FOR_DELEGATION",
	ADS_UF_PARTIAL_SECRETS_ACCOUNT:                "PARTIAL_SECRETS_ACCOUNT",
}

// UserFlags decodes a userAccountControl value into flag names ordered by
// bit position. Bits without a name are rendered as hex.
func UserFlags(uac uint32) []string {
	flags := make([]string, 0)
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if uac&bit == 0 {
			continue
		}
		if name, ok := userFlagNames[ADsUserFlag(bit)]; ok {
			flags = append(flags, name)
		} else {
			flags = append(flags, fmt.Sprintf("0x%X", bit))
		}
	}
	return flags
}

// ParseUserFlag resolves a flag name, with or without the ADS_UF_ prefix.
func ParseUserFlag(name string) (ADsUserFlag, bool) {
	if len(name) > 7 && name[:7] == "ADS_UF_" {
		name = name[7:]
	}
	for f, n := range userFlagNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// UserFlagNames lists every known flag name sorted alphabetically.
func UserFlagNames() []string {
	names := make([]string, 0, len(userFlagNames))
	for _, n := range userFlagNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GroupTypes decodes the groupType attribute.
func GroupTypes(gt uint32) []string {
	var types []string
	switch {
	case gt&uint32(ADS_GROUP_TYPE_GLOBAL_GROUP) != 0:
		types = append(types, "GLOBAL")
	case gt&uint32(ADS_GROUP_TYPE_DOMAIN_LOCAL_GROUP) != 0:
		types = append(types, "DOMAIN_LOCAL")
	case gt&uint32(ADS_GROUP_TYPE_UNIVERSAL_GROUP) != 0:
		types = append(types, "UNIVERSAL")
	}
	if gt&uint32(ADS_GROUP_TYPE_SECURITY_ENABLED) != 0 {
		types = append(types, "SECURITY")
	} else {
		types = append(types, "DISTRIBUTION")
	}
	return types
}
