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

// ADsType is the ADSTYPE enumeration identifying the data type of an ADsValue.
type ADsType uint32

const (
	ADSTYPE_INVALID ADsType = iota
	ADSTYPE_DN_STRING
	ADSTYPE_CASE_EXACT_STRING
	ADSTYPE_CASE_IGNORE_STRING
	ADSTYPE_PRINTABLE_STRING
	ADSTYPE_NUMERIC_STRING
	ADSTYPE_BOOLEAN
	ADSTYPE_INTEGER
	ADSTYPE_OCTET_STRING
	ADSTYPE_UTC_TIME
	ADSTYPE_LARGE_INTEGER
	ADSTYPE_PROV_SPECIFIC
	ADSTYPE_OBJECT_CLASS
	ADSTYPE_CASEIGNORE_LIST
	ADSTYPE_OCTET_LIST
	ADSTYPE_PATH
	ADSTYPE_POSTALADDRESS
	ADSTYPE_TIMESTAMP
	ADSTYPE_BACKLINK
	ADSTYPE_TYPEDNAME
	ADSTYPE_HOLD
	ADSTYPE_NETADDRESS
	ADSTYPE_REPLICAPOINTER
	ADSTYPE_FAXNUMBER
	ADSTYPE_EMAIL
	ADSTYPE_NT_SECURITY_DESCRIPTOR
	ADSTYPE_UNKNOWN
	ADSTYPE_DN_WITH_BINARY
	ADSTYPE_DN_WITH_STRING
)

var adsTypeNames = [...]string{
	"INVALID", "DN_STRING", "CASE_EXACT_STRING", "CASE_IGNORE_STRING",
	"PRINTABLE_STRING", "NUMERIC_STRING", "BOOLEAN", "INTEGER", "OCTET_STRING",
	"UTC_TIME", "LARGE_INTEGER", "PROV_SPECIFIC", "OBJECT_CLASS",
	"CASEIGNORE_LIST", "OCTET_LIST", "PATH", "POSTALADDRESS", "TIMESTAMP",
	"BACKLINK", "TYPEDNAME", "HOLD", "NETADDRESS", "REPLICAPOINTER",
	"FAXNUMBER", "EMAIL", "NT_SECURITY_DESCRIPTOR", "UNKNOWN",
	"DN_WITH_BINARY", "DN_WITH_STRING",
}

func (t ADsType) String() string {
	if int(t) < len(adsTypeNames) {
		return adsTypeNames[t]
	}
	return "UNKNOWN"
}

// ADsSearchPref is the ADS_SEARCHPREF_ENUM enumeration.
type ADsSearchPref uint32

const (
	ADS_SEARCHPREF_ASYNCHRONOUS ADsSearchPref = iota
	ADS_SEARCHPREF_DEREF_ALIASES
	ADS_SEARCHPREF_SIZE_LIMIT
	ADS_SEARCHPREF_TIME_LIMIT
	ADS_SEARCHPREF_ATTRIBTYPES_ONLY
	ADS_SEARCHPREF_SEARCH_SCOPE
	ADS_SEARCHPREF_TIMEOUT
	ADS_SEARCHPREF_PAGESIZE
	ADS_SEARCHPREF_PAGED_TIME_LIMIT
	ADS_SEARCHPREF_CHASE_REFERRALS
	ADS_SEARCHPREF_SORT_ON
	ADS_SEARCHPREF_CACHE_RESULTS
	ADS_SEARCHPREF_DIRSYNC
	ADS_SEARCHPREF_TOMBSTONE
	ADS_SEARCHPREF_VLV
	ADS_SEARCHPREF_ATTRIBUTE_QUERY
	ADS_SEARCHPREF_SECURITY_MASK
	ADS_SEARCHPREF_DIRSYNC_FLAG
	ADS_SEARCHPREF_EXTENDED_DN
)

// ADsStatus is the per-preference status set by SetSearchPreference.
type ADsStatus uint32

const (
	ADS_STATUS_S_OK ADsStatus = iota
	ADS_STATUS_INVALID_SEARCHPREF
	ADS_STATUS_INVALID_SEARCHPREFVALUE
)

// ADsAuthentication is the ADS_AUTHENTICATION_ENUM bitmask passed to ADsOpenObject.
type ADsAuthentication uint32

const (
	ADS_SECURE_AUTHENTICATION ADsAuthentication = 0x1
	ADS_USE_ENCRYPTION        ADsAuthentication = 0x2
	ADS_USE_SSL               ADsAuthentication = 0x2
	ADS_READONLY_SERVER       ADsAuthentication = 0x4
	ADS_PROMPT_CREDENTIALS    ADsAuthentication = 0x8
	ADS_NO_AUTHENTICATION     ADsAuthentication = 0x10
	ADS_FAST_BIND             ADsAuthentication = 0x20
	ADS_USE_SIGNING           ADsAuthentication = 0x40
	ADS_USE_SEALING           ADsAuthentication = 0x80
	ADS_USE_DELEGATION        ADsAuthentication = 0x100
	ADS_SERVER_BIND           ADsAuthentication = 0x200
	ADS_NO_REFERRAL_CHASING   ADsAuthentication = 0x400
	ADS_AUTH_RESERVED         ADsAuthentication = 0x80000000
)

// ADsScope is the ADS_SCOPEENUM search scope.
type ADsScope uint32

const (
	ADS_SCOPE_BASE ADsScope = iota
	ADS_SCOPE_ONELEVEL
	ADS_SCOPE_SUBTREE
)

// ADsDeref is the ADS_DEREFENUM alias dereferencing mode.
type ADsDeref uint32

const (
	ADS_DEREF_NEVER ADsDeref = iota
	ADS_DEREF_SEARCHING
	ADS_DEREF_FINDING
	ADS_DEREF_ALWAYS
)

// ADsChaseReferrals is the ADS_CHASE_REFERRALS_ENUM.
type ADsChaseReferrals uint32

const (
	ADS_CHASE_REFERRALS_NEVER       ADsChaseReferrals = 0x00
	ADS_CHASE_REFERRALS_SUBORDINATE ADsChaseReferrals = 0x20
	ADS_CHASE_REFERRALS_EXTERNAL    ADsChaseReferrals = 0x40
	ADS_CHASE_REFERRALS_ALWAYS      = ADS_CHASE_REFERRALS_SUBORDINATE | ADS_CHASE_REFERRALS_EXTERNAL
)

// ADsNameType is the ADS_NAME_TYPE_ENUM used by IADsNameTranslate.
type ADsNameType uint32

const (
	ADS_NAME_TYPE_1779                    ADsNameType = 1
	ADS_NAME_TYPE_CANONICAL               ADsNameType = 2
	ADS_NAME_TYPE_NT4                     ADsNameType = 3
	ADS_NAME_TYPE_DISPLAY                 ADsNameType = 4
	ADS_NAME_TYPE_DOMAIN_SIMPLE           ADsNameType = 5
	ADS_NAME_TYPE_ENTERPRISE_SIMPLE       ADsNameType = 6
	ADS_NAME_TYPE_GUID                    ADsNameType = 7
	ADS_NAME_TYPE_UNKNOWN                 ADsNameType = 8
	ADS_NAME_TYPE_USER_PRINCIPAL_NAME     ADsNameType = 9
	ADS_NAME_TYPE_CANONICAL_EX            ADsNameType = 10
	ADS_NAME_TYPE_SERVICE_PRINCIPAL_NAME  ADsNameType = 11
	ADS_NAME_TYPE_SID_OR_SID_HISTORY_NAME ADsNameType = 12
)

// ADsNameInitType is the ADS_NAME_INITTYPE_ENUM.
type ADsNameInitType uint32

const (
	ADS_NAME_INITTYPE_DOMAIN ADsNameInitType = 1
	ADS_NAME_INITTYPE_SERVER ADsNameInitType = 2
	ADS_NAME_INITTYPE_GC     ADsNameInitType = 3
)

// ADsPropertyOperation is the ADS_PROPERTY_OPERATION_ENUM used by IADs.PutEx
// and the control code of ADsAttrInfo.
type ADsPropertyOperation uint32

const (
	ADS_PROPERTY_CLEAR  ADsPropertyOperation = 1
	ADS_PROPERTY_UPDATE ADsPropertyOperation = 2
	ADS_PROPERTY_APPEND ADsPropertyOperation = 3
	ADS_PROPERTY_DELETE ADsPropertyOperation = 4
)

const (
	ADS_ATTR_CLEAR  = ADS_PROPERTY_CLEAR
	ADS_ATTR_UPDATE = ADS_PROPERTY_UPDATE
	ADS_ATTR_APPEND = ADS_PROPERTY_APPEND
	ADS_ATTR_DELETE = ADS_PROPERTY_DELETE
)

// ADsUserFlag is the ADS_USER_FLAG_ENUM stored in userAccountControl.
type ADsUserFlag uint32

const (
	ADS_UF_SCRIPT                                 ADsUserFlag = 0x1
	ADS_UF_ACCOUNTDISABLE                         ADsUserFlag = 0x2
	ADS_UF_HOMEDIR_REQUIRED                       ADsUserFlag = 0x8
	ADS_UF_LOCKOUT                                ADsUserFlag = 0x10
	ADS_UF_PASSWD_NOTREQD                         ADsUserFlag = 0x20
	ADS_UF_PASSWD_CANT_CHANGE                     ADsUserFlag = 0x40
	ADS_UF_ENCRYPTED_TEXT_PASSWORD_ALLOWED        ADsUserFlag = 0x80
	ADS_UF_TEMP_DUPLICATE_ACCOUNT                 ADsUserFlag = 0x100
	ADS_UF_NORMAL_ACCOUNT                         ADsUserFlag = 0x200
	ADS_UF_INTERDOMAIN_TRUST_ACCOUNT              ADsUserFlag = 0x800
	ADS_UF_WORKSTATION_TRUST_ACCOUNT              ADsUserFlag = 0x1000
	ADS_UF_SERVER_TRUST_ACCOUNT                   ADsUserFlag = 0x2000
	ADS_UF_DONT_EXPIRE_PASSWD                     ADsUserFlag = 0x10000
	ADS_UF_MNS_LOGON_ACCOUNT                      ADsUserFlag = 0x20000
	ADS_UF_SMARTCARD_REQUIRED                     ADsUserFlag = 0x40000
	ADS_UF_TRUSTED_FOR_DELEGATION                 ADsUserFlag = 0x80000
	ADS_UF_NOT_DELEGATED                          ADsUserFlag = 0x100000
	ADS_UF_USE_DES_KEY_ONLY                       ADsUserFlag = 0x200000
	ADS_UF_DONT_REQUIRE_PREAUTH                   ADsUserFlag = 0x400000
	ADS_UF_PASSWORD_EXPIRED                       ADsUserFlag = 0x800000
	ADS_UF_TRUSTED_TO_AUTHENTICATE_FOR_DELEGATION ADsUserFlag = 0x1000000
	ADS_UF_PARTIAL_SECRETS_ACCOUNT                ADsUserFlag = 0x4000000
)

// ADsGroupType is the ADS_GROUP_TYPE_ENUM stored in groupType.
type ADsGroupType uint32

const (
	ADS_GROUP_TYPE_GLOBAL_GROUP       ADsGroupType = 0x2
	ADS_GROUP_TYPE_DOMAIN_LOCAL_GROUP ADsGroupType = 0x4
	ADS_GROUP_TYPE_LOCAL_GROUP        ADsGroupType = 0x4
	ADS_GROUP_TYPE_UNIVERSAL_GROUP    ADsGroupType = 0x8
	ADS_GROUP_TYPE_SECURITY_ENABLED   ADsGroupType = 0x80000000
)

// ADsRights is the ADS_RIGHTS_ENUM access mask.
type ADsRights uint32

const (
	ADS_RIGHT_DELETE                 ADsRights = 0x10000
	ADS_RIGHT_READ_CONTROL           ADsRights = 0x20000
	ADS_RIGHT_WRITE_DAC              ADsRights = 0x40000
	ADS_RIGHT_WRITE_OWNER            ADsRights = 0x80000
	ADS_RIGHT_SYNCHRONIZE            ADsRights = 0x100000
	ADS_RIGHT_ACCESS_SYSTEM_SECURITY ADsRights = 0x1000000
	ADS_RIGHT_GENERIC_READ           ADsRights = 0x80000000
	ADS_RIGHT_GENERIC_WRITE          ADsRights = 0x40000000
	ADS_RIGHT_GENERIC_EXECUTE        ADsRights = 0x20000000
	ADS_RIGHT_GENERIC_ALL            ADsRights = 0x10000000
	ADS_RIGHT_DS_CREATE_CHILD        ADsRights = 0x1
	ADS_RIGHT_DS_DELETE_CHILD        ADsRights = 0x2
	ADS_RIGHT_ACTRL_DS_LIST          ADsRights = 0x4
	ADS_RIGHT_DS_SELF                ADsRights = 0x8
	ADS_RIGHT_DS_READ_PROP           ADsRights = 0x10
	ADS_RIGHT_DS_WRITE_PROP          ADsRights = 0x20
	ADS_RIGHT_DS_DELETE_TREE         ADsRights = 0x40
	ADS_RIGHT_DS_LIST_OBJECT         ADsRights = 0x80
	ADS_RIGHT_DS_CONTROL_ACCESS      ADsRights = 0x100
)

// ADsAceType is the ADS_ACETYPE_ENUM.
type ADsAceType uint32

const (
	ADS_ACETYPE_ACCESS_ALLOWED                 ADsAceType = 0x0
	ADS_ACETYPE_ACCESS_DENIED                  ADsAceType = 0x1
	ADS_ACETYPE_SYSTEM_AUDIT                   ADsAceType = 0x2
	ADS_ACETYPE_ACCESS_ALLOWED_OBJECT          ADsAceType = 0x5
	ADS_ACETYPE_ACCESS_DENIED_OBJECT           ADsAceType = 0x6
	ADS_ACETYPE_SYSTEM_AUDIT_OBJECT            ADsAceType = 0x7
	ADS_ACETYPE_SYSTEM_ALARM_OBJECT            ADsAceType = 0x8
	ADS_ACETYPE_ACCESS_ALLOWED_CALLBACK        ADsAceType = 0x9
	ADS_ACETYPE_ACCESS_DENIED_CALLBACK         ADsAceType = 0xa
	ADS_ACETYPE_ACCESS_ALLOWED_CALLBACK_OBJECT ADsAceType = 0xb
	ADS_ACETYPE_ACCESS_DENIED_CALLBACK_OBJECT  ADsAceType = 0xc
	ADS_ACETYPE_SYSTEM_AUDIT_CALLBACK          ADsAceType = 0xd
	ADS_ACETYPE_SYSTEM_ALARM_CALLBACK          ADsAceType = 0xe
	ADS_ACETYPE_SYSTEM_AUDIT_CALLBACK_OBJECT   ADsAceType = 0xf
	ADS_ACETYPE_SYSTEM_ALARM_CALLBACK_OBJECT   ADsAceType = 0x10
)

// ADsSystemFlag is the ADS_SYSTEMFLAG_ENUM stored in systemFlags.
type ADsSystemFlag uint32

const (
	ADS_SYSTEMFLAG_DISALLOW_DELETE           ADsSystemFlag = 0x80000000
	ADS_SYSTEMFLAG_CONFIG_ALLOW_RENAME       ADsSystemFlag = 0x40000000
	ADS_SYSTEMFLAG_CONFIG_ALLOW_MOVE         ADsSystemFlag = 0x20000000
	ADS_SYSTEMFLAG_CONFIG_ALLOW_LIMITED_MOVE ADsSystemFlag = 0x10000000
	ADS_SYSTEMFLAG_DOMAIN_DISALLOW_RENAME    ADsSystemFlag = 0x8000000
	ADS_SYSTEMFLAG_DOMAIN_DISALLOW_MOVE      ADsSystemFlag = 0x4000000
	ADS_SYSTEMFLAG_CR_NTDS_NC                ADsSystemFlag = 0x1
	ADS_SYSTEMFLAG_CR_NTDS_DOMAIN            ADsSystemFlag = 0x2
	ADS_SYSTEMFLAG_ATTR_NOT_REPLICATED       ADsSystemFlag = 0x1
	ADS_SYSTEMFLAG_ATTR_IS_CONSTRUCTED       ADsSystemFlag = 0x4
)

// ADsSetType is the ADS_SETTYPE_ENUM used by IADsPathname.Set.
type ADsSetType uint32

const (
	ADS_SETTYPE_FULL     ADsSetType = 1
	ADS_SETTYPE_PROVIDER ADsSetType = 2
	ADS_SETTYPE_SERVER   ADsSetType = 3
	ADS_SETTYPE_DN       ADsSetType = 4
)

// ADsFormat is the ADS_FORMAT_ENUM used by IADsPathname.Retrieve.
type ADsFormat uint32

const (
	ADS_FORMAT_WINDOWS           ADsFormat = 1
	ADS_FORMAT_WINDOWS_NO_SERVER ADsFormat = 2
	ADS_FORMAT_WINDOWS_DN        ADsFormat = 3
	ADS_FORMAT_WINDOWS_PARENT    ADsFormat = 4
	ADS_FORMAT_X500              ADsFormat = 5
	ADS_FORMAT_X500_NO_SERVER    ADsFormat = 6
	ADS_FORMAT_X500_DN           ADsFormat = 7
	ADS_FORMAT_X500_PARENT       ADsFormat = 8
	ADS_FORMAT_SERVER            ADsFormat = 9
	ADS_FORMAT_PROVIDER          ADsFormat = 10
	ADS_FORMAT_LEAF              ADsFormat = 11
)

// DsNameFormat is the DS_NAME_FORMAT enumeration used by DsCrackNames.
type DsNameFormat uint32

const (
	DS_UNKNOWN_NAME            DsNameFormat = 0
	DS_FQDN_1779_NAME          DsNameFormat = 1
	DS_NT4_ACCOUNT_NAME        DsNameFormat = 2
	DS_DISPLAY_NAME            DsNameFormat = 3
	DS_UNIQUE_ID_NAME          DsNameFormat = 6
	DS_CANONICAL_NAME          DsNameFormat = 7
	DS_USER_PRINCIPAL_NAME     DsNameFormat = 8
	DS_CANONICAL_NAME_EX       DsNameFormat = 9
	DS_SERVICE_PRINCIPAL_NAME  DsNameFormat = 10
	DS_SID_OR_SID_HISTORY_NAME DsNameFormat = 11
	DS_DNS_DOMAIN_NAME         DsNameFormat = 12
)

// DsNameFlags is the DS_NAME_FLAGS bitmask.
type DsNameFlags uint32

const (
	DS_NAME_NO_FLAGS              DsNameFlags = 0x0
	DS_NAME_FLAG_SYNTACTICAL_ONLY DsNameFlags = 0x1
	DS_NAME_FLAG_EVAL_AT_DC       DsNameFlags = 0x2
	DS_NAME_FLAG_GCVERIFY         DsNameFlags = 0x4
	DS_NAME_FLAG_TRUST_REFERRAL   DsNameFlags = 0x8
)

// DsNameError is the per-item status of a DsCrackNames result.
type DsNameError uint32

const (
	DS_NAME_NO_ERROR DsNameError = iota
	DS_NAME_ERROR_RESOLVING
	DS_NAME_ERROR_NOT_FOUND
	DS_NAME_ERROR_NOT_UNIQUE
	DS_NAME_ERROR_NO_MAPPING
	DS_NAME_ERROR_DOMAIN_ONLY
	DS_NAME_ERROR_NO_SYNTACTICAL_MAPPING
	DS_NAME_ERROR_TRUST_REFERRAL
)

var dsNameErrorNames = [...]string{
	"DS_NAME_NO_ERROR", "DS_NAME_ERROR_RESOLVING", "DS_NAME_ERROR_NOT_FOUND",
	"DS_NAME_ERROR_NOT_UNIQUE", "DS_NAME_ERROR_NO_MAPPING",
	"DS_NAME_ERROR_DOMAIN_ONLY", "DS_NAME_ERROR_NO_SYNTACTICAL_MAPPING",
	"DS_NAME_ERROR_TRUST_REFERRAL",
}

func (e DsNameError) String() string {
	if int(e) < len(dsNameErrorNames) {
		return dsNameErrorNames[e]
	}
	return "DS_NAME_ERROR_UNKNOWN"
}

// DsSpnNameType is the DS_SPN_NAME_TYPE enumeration used by DsGetSpn.
type DsSpnNameType uint32

const (
	DS_SPN_DNS_HOST DsSpnNameType = iota
	DS_SPN_DN_HOST
	DS_SPN_NB_HOST
	DS_SPN_DOMAIN
	DS_SPN_NB_DOMAIN
	DS_SPN_SERVICE
)

// DsGetDcName flags.
const (
	DS_FORCE_REDISCOVERY            uint32 = 0x00000001
	DS_DIRECTORY_SERVICE_REQUIRED   uint32 = 0x00000010
	DS_DIRECTORY_SERVICE_PREFERRED  uint32 = 0x00000020
	DS_GC_SERVER_REQUIRED           uint32 = 0x00000040
	DS_PDC_REQUIRED                 uint32 = 0x00000080
	DS_BACKGROUND_ONLY              uint32 = 0x00000100
	DS_IP_REQUIRED                  uint32 = 0x00000200
	DS_KDC_REQUIRED                 uint32 = 0x00000400
	DS_TIMESERV_REQUIRED            uint32 = 0x00000800
	DS_WRITABLE_REQUIRED            uint32 = 0x00001000
	DS_GOOD_TIMESERV_PREFERRED      uint32 = 0x00002000
	DS_AVOID_SELF                   uint32 = 0x00004000
	DS_ONLY_LDAP_NEEDED             uint32 = 0x00008000
	DS_IS_FLAT_NAME                 uint32 = 0x00010000
	DS_IS_DNS_NAME                  uint32 = 0x00020000
	DS_TRY_NEXTCLOSEST_SITE         uint32 = 0x00040000
	DS_DIRECTORY_SERVICE_6_REQUIRED uint32 = 0x00080000
	DS_WEB_SERVICE_REQUIRED         uint32 = 0x00100000
	DS_RETURN_DNS_NAME              uint32 = 0x40000000
	DS_RETURN_FLAT_NAME             uint32 = 0x80000000
)

// Flags reported in DomainControllerInfo.Flags.
const (
	DS_PDC_FLAG                    uint32 = 0x00000001
	DS_GC_FLAG                     uint32 = 0x00000004
	DS_LDAP_FLAG                   uint32 = 0x00000008
	DS_DS_FLAG                     uint32 = 0x00000010
	DS_KDC_FLAG                    uint32 = 0x00000020
	DS_TIMESERV_FLAG               uint32 = 0x00000040
	DS_CLOSEST_FLAG                uint32 = 0x00000080
	DS_WRITABLE_FLAG               uint32 = 0x00000100
	DS_GOOD_TIMESERV_FLAG          uint32 = 0x00000200
	DS_NDNC_FLAG                   uint32 = 0x00000400
	DS_SELECT_SECRET_DOMAIN_6_FLAG uint32 = 0x00000800
	DS_FULL_SECRET_DOMAIN_6_FLAG   uint32 = 0x00001000
	DS_WS_FLAG                     uint32 = 0x00002000
	DS_DS_8_FLAG                   uint32 = 0x00004000
	DS_DNS_CONTROLLER_FLAG         uint32 = 0x20000000
	DS_DNS_DOMAIN_FLAG             uint32 = 0x40000000
	DS_DNS_FOREST_FLAG             uint32 = 0x80000000
)

// DomainControllerInfo.DomainControllerAddressType values.
const (
	DS_INET_ADDRESS    uint32 = 1
	DS_NETBIOS_ADDRESS uint32 = 2
)

// DsEnumerateDomainTrusts flags.
const (
	DS_DOMAIN_IN_FOREST       uint32 = 0x0001
	DS_DOMAIN_DIRECT_OUTBOUND uint32 = 0x0002
	DS_DOMAIN_TREE_ROOT       uint32 = 0x0004
	DS_DOMAIN_PRIMARY         uint32 = 0x0008
	DS_DOMAIN_NATIVE_MODE     uint32 = 0x0010
	DS_DOMAIN_DIRECT_INBOUND  uint32 = 0x0020
	DS_DOMAIN_VALID_FLAGS     uint32 = 0x003f
)

// DsRolePrimaryDomainInfoLevel is the DSROLE_PRIMARY_DOMAIN_INFO_LEVEL enumeration.
type DsRolePrimaryDomainInfoLevel uint32

const (
	DsRolePrimaryDomainInfoBasicLevel DsRolePrimaryDomainInfoLevel = 1
	DsRoleUpgradeStatusLevel          DsRolePrimaryDomainInfoLevel = 2
	DsRoleOperationStateLevel         DsRolePrimaryDomainInfoLevel = 3
)

// DsRoleMachineRole is the DSROLE_MACHINE_ROLE enumeration.
type DsRoleMachineRole uint32

const (
	DsRoleStandaloneWorkstation DsRoleMachineRole = iota
	DsRoleMemberWorkstation
	DsRoleStandaloneServer
	DsRoleMemberServer
	DsRoleBackupDomainController
	DsRolePrimaryDomainController
)

var machineRoleNames = [...]string{
	"standalone workstation", "member workstation", "standalone server",
	"member server", "backup domain controller", "primary domain controller",
}

func (r DsRoleMachineRole) String() string {
	if int(r) < len(machineRoleNames) {
		return machineRoleNames[r]
	}
	return "unknown"
}

// DsRolePrimaryDomainInfoBasic.Flags values.
const (
	DSROLE_PRIMARY_DS_RUNNING          uint32 = 0x00000001
	DSROLE_PRIMARY_DS_MIXED_MODE       uint32 = 0x00000002
	DSROLE_UPGRADE_IN_PROGRESS         uint32 = 0x00000004
	DSROLE_PRIMARY_DS_READONLY         uint32 = 0x00000008
	DSROLE_PRIMARY_DOMAIN_GUID_PRESENT uint32 = 0x01000000
)

// CLSCTX values for CoCreateInstance.
const (
	CLSCTX_INPROC_SERVER  uint32 = 0x1
	CLSCTX_INPROC_HANDLER uint32 = 0x2
	CLSCTX_LOCAL_SERVER   uint32 = 0x4
	CLSCTX_REMOTE_SERVER  uint32 = 0x10
	CLSCTX_ALL            = CLSCTX_INPROC_SERVER | CLSCTX_INPROC_HANDLER | CLSCTX_LOCAL_SERVER | CLSCTX_REMOTE_SERVER
)
