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
	"encoding/binary"
	"fmt"
	"time"
	"unsafe"

	"github.com/rabbitstack/wincall/pkg/util/filetime"
	"golang.org/x/sys/windows"
)

// ADsSearchHandle is the ADS_SEARCH_HANDLE returned by IDirectorySearch.ExecuteSearch.
type ADsSearchHandle uintptr

// DsHandle is the directory service binding handle returned by DsBind.
type DsHandle windows.Handle

// ADsValue is the ADSVALUE structure. The union is addressed through the typed accessors.
type ADsValue struct {
	Type ADsType
	_    uint32
	val  [2]uint64
}

// ADsOctetString is the ADS_OCTET_STRING structure.
type ADsOctetString struct {
	Length uint32
	Value  *byte
}

// ADsNTSecurityDescriptor is the ADS_NT_SECURITY_DESCRIPTOR structure.
type ADsNTSecurityDescriptor struct {
	Length uint32
	Value  *byte
}

// ADsProvSpecific is the ADS_PROV_SPECIFIC structure.
type ADsProvSpecific struct {
	Length uint32
	Value  *byte
}

// ADsLargeInteger is the ADS_LARGE_INTEGER type.
type ADsLargeInteger int64

// ADsDNWithString is the ADS_DN_WITH_STRING structure.
type ADsDNWithString struct {
	StringValue *uint16
	DNString    *uint16
}

// ADsDNWithBinary is the ADS_DN_WITH_BINARY structure.
type ADsDNWithBinary struct {
	Length      uint32
	BinaryValue *byte
	DNString    *uint16
}

// ADsAttrInfo is the ADS_ATTR_INFO structure used by IDirectoryObject.
type ADsAttrInfo struct {
	AttrName    *uint16
	ControlCode ADsPropertyOperation
	ADsType     ADsType
	Values      *ADsValue
	NumValues   uint32
}

// ValueSlice returns the attribute values as a slice backed by the ADSI allocation.
func (a *ADsAttrInfo) ValueSlice() []ADsValue {
	if a.Values == nil || a.NumValues == 0 {
		return nil
	}
	return unsafe.Slice(a.Values, a.NumValues)
}

// ADsAttrDef is the ADS_ATTR_DEF structure.
type ADsAttrDef struct {
	AttrName    *uint16
	ADsType     ADsType
	MinRange    uint32
	MaxRange    uint32
	MultiValued int32
}

// ADsClassDef is the ADS_CLASS_DEF structure.
type ADsClassDef struct {
	ClassName         *uint16
	NumMandatoryAttrs uint32
	MandatoryAttrs    **uint16
	NumOptionalAttrs  uint32
	OptionalAttrs     **uint16
	NumNamingAttrs    uint32
	NamingAttrs       **uint16
	NumSuperClasses   uint32
	SuperClasses      **uint16
	IsContainer       int32
}

// ADsObjectInfo is the ADS_OBJECT_INFO structure.
type ADsObjectInfo struct {
	RDN       *uint16
	ObjectDN  *uint16
	ParentDN  *uint16
	SchemaDN  *uint16
	ClassName *uint16
}

// ADsSearchPrefInfo is the ADS_SEARCHPREF_INFO structure.
type ADsSearchPrefInfo struct {
	SearchPref ADsSearchPref
	_          uint32
	Value      ADsValue
	Status     ADsStatus
	_          uint32
}

// ADsSearchColumn is the ADS_SEARCH_COLUMN structure.
type ADsSearchColumn struct {
	AttrName  *uint16
	ADsType   ADsType
	Values    *ADsValue
	NumValues uint32
	Reserved  windows.Handle
}

// ValueSlice returns the column values.
func (c *ADsSearchColumn) ValueSlice() []ADsValue {
	if c.Values == nil || c.NumValues == 0 {
		return nil
	}
	return unsafe.Slice(c.Values, c.NumValues)
}

// ADsSortKey is the ADS_SORTKEY structure.
type ADsSortKey struct {
	AttrType     *uint16
	Reserved     *uint16
	ReverseOrder bool
}

// DomainControllerInfo is the DOMAIN_CONTROLLER_INFOW structure returned by DsGetDcName.
type DomainControllerInfo struct {
	DomainControllerName        *uint16
	DomainControllerAddress     *uint16
	DomainControllerAddressType uint32
	DomainGUID                  windows.GUID
	DomainName                  *uint16
	DNSForestName               *uint16
	Flags                       uint32
	DCSiteName                  *uint16
	ClientSiteName              *uint16
}

// DsNameResultItem is the DS_NAME_RESULT_ITEMW structure.
type DsNameResultItem struct {
	Status DsNameError
	Domain *uint16
	Name   *uint16
}

// DsNameResult is the DS_NAME_RESULTW structure.
type DsNameResult struct {
	Items    uint32
	ItemsPtr *DsNameResultItem
}

// Slice returns the result items.
func (r *DsNameResult) Slice() []DsNameResultItem {
	if r.ItemsPtr == nil || r.Items == 0 {
		return nil
	}
	return unsafe.Slice(r.ItemsPtr, r.Items)
}

// DsDomainTrusts is the DS_DOMAIN_TRUSTSW structure.
type DsDomainTrusts struct {
	NetbiosDomainName *uint16
	DNSDomainName     *uint16
	Flags             uint32
	ParentIndex       uint32
	TrustType         uint32
	TrustAttributes   uint32
	DomainSid         *windows.SID
	DomainGUID        windows.GUID
}

// DsRolePrimaryDomainInfoBasic is the DSROLE_PRIMARY_DOMAIN_INFO_BASIC structure.
type DsRolePrimaryDomainInfoBasic struct {
	MachineRole      DsRoleMachineRole
	Flags            uint32
	DomainNameFlat   *uint16
	DomainNameDNS    *uint16
	DomainForestName *uint16
	DomainGUID       windows.GUID
}

func (v *ADsValue) ptr() unsafe.Pointer { return unsafe.Pointer(&v.val[0]) }

// NewStringValue returns an ADsValue referencing the UTF-16 string s. The
// caller keeps s reachable while the value is in use.
func NewStringValue(typ ADsType, s *uint16) ADsValue {
	v := ADsValue{Type: typ}
	*(**uint16)(v.ptr()) = s
	return v
}

// NewIntegerValue returns an ADSTYPE_INTEGER value.
func NewIntegerValue(n uint32) ADsValue {
	v := ADsValue{Type: ADSTYPE_INTEGER}
	*(*uint32)(v.ptr()) = n
	return v
}

// NewBooleanValue returns an ADSTYPE_BOOLEAN value.
func NewBooleanValue(b bool) ADsValue {
	v := ADsValue{Type: ADSTYPE_BOOLEAN}
	if b {
		*(*uint32)(v.ptr()) = 1
	}
	return v
}

// NewLargeIntegerValue returns an ADSTYPE_LARGE_INTEGER value.
func NewLargeIntegerValue(n int64) ADsValue {
	v := ADsValue{Type: ADSTYPE_LARGE_INTEGER}
	*(*int64)(v.ptr()) = n
	return v
}

// NewOctetStringValue returns an ADSTYPE_OCTET_STRING value referencing b.
// The caller keeps b reachable while the value is in use.
func NewOctetStringValue(b []byte) ADsValue {
	v := ADsValue{Type: ADSTYPE_OCTET_STRING}
	o := (*ADsOctetString)(v.ptr())
	o.Length = uint32(len(b))
	if len(b) > 0 {
		o.Value = &b[0]
	}
	return v
}

// IsString reports whether the value carries one of the string types.
func (v *ADsValue) IsString() bool {
	switch v.Type {
	case ADSTYPE_DN_STRING, ADSTYPE_CASE_EXACT_STRING, ADSTYPE_CASE_IGNORE_STRING,
		ADSTYPE_PRINTABLE_STRING, ADSTYPE_NUMERIC_STRING, ADSTYPE_OBJECT_CLASS:
		return true
	}
	return false
}

// Str returns the string for the string types and an empty string otherwise.
func (v *ADsValue) Str() string {
	if !v.IsString() {
		return ""
	}
	return windows.UTF16PtrToString(*(**uint16)(v.ptr()))
}

// Int returns the ADSTYPE_INTEGER value.
func (v *ADsValue) Int() uint32 { return *(*uint32)(v.ptr()) }

// Bool returns the ADSTYPE_BOOLEAN value.
func (v *ADsValue) Bool() bool { return *(*uint32)(v.ptr()) != 0 }

// LargeInteger returns the ADSTYPE_LARGE_INTEGER value.
func (v *ADsValue) LargeInteger() int64 { return *(*int64)(v.ptr()) }

// OctetString copies out the octet string, security descriptor or provider
// specific payload.
func (v *ADsValue) OctetString() []byte {
	o := (*ADsOctetString)(v.ptr())
	if o.Value == nil || o.Length == 0 {
		return nil
	}
	b := make([]byte, o.Length)
	copy(b, unsafe.Slice(o.Value, o.Length))
	return b
}

// Time returns the ADSTYPE_UTC_TIME value.
func (v *ADsValue) Time() time.Time {
	st := (*windows.Systemtime)(v.ptr())
	return time.Date(int(st.Year), time.Month(st.Month), int(st.Day), int(st.Hour),
		int(st.Minute), int(st.Second), int(st.Milliseconds)*int(time.Millisecond), time.UTC)
}

// DNWithString returns the string and DN of an ADSTYPE_DN_WITH_STRING value.
func (v *ADsValue) DNWithString() (string, string) {
	p := *(**ADsDNWithString)(v.ptr())
	if p == nil {
		return "", ""
	}
	return windows.UTF16PtrToString(p.StringValue), windows.UTF16PtrToString(p.DNString)
}

// DNWithBinary returns the payload and DN of an ADSTYPE_DN_WITH_BINARY value.
func (v *ADsValue) DNWithBinary() ([]byte, string) {
	p := *(**ADsDNWithBinary)(v.ptr())
	if p == nil {
		return nil, ""
	}
	var b []byte
	if p.BinaryValue != nil && p.Length > 0 {
		b = append(b, unsafe.Slice(p.BinaryValue, p.Length)...)
	}
	return b, windows.UTF16PtrToString(p.DNString)
}

// Interface converts the value to the closest Go type.
func (v *ADsValue) Interface() interface{} {
	switch v.Type {
	case ADSTYPE_BOOLEAN:
		return v.Bool()
	case ADSTYPE_INTEGER:
		return v.Int()
	case ADSTYPE_LARGE_INTEGER:
		return v.LargeInteger()
	case ADSTYPE_OCTET_STRING, ADSTYPE_NT_SECURITY_DESCRIPTOR, ADSTYPE_PROV_SPECIFIC:
		return v.OctetString()
	case ADSTYPE_UTC_TIME:
		return v.Time()
	case ADSTYPE_DN_WITH_STRING:
		s, dn := v.DNWithString()
		return fmt.Sprintf("S:%d:%s:%s", len(s), s, dn)
	case ADSTYPE_DN_WITH_BINARY:
		b, dn := v.DNWithBinary()
		return fmt.Sprintf("B:%d:%X:%s", len(b)*2, b, dn)
	}
	if v.IsString() {
		return v.Str()
	}
	return nil
}

// String renders the value for display.
func (v *ADsValue) String() string {
	switch val := v.Interface().(type) {
	case nil:
		return fmt.Sprintf("<%s>", v.Type)
	case []byte:
		return fmt.Sprintf("%X", val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

// FileTimeToTime converts the 100ns intervals since 1601 stored in large
// integer attributes such as lastLogonTimestamp.
func FileTimeToTime(n int64) time.Time {
	if n <= 0 {
		return time.Time{}
	}
	return filetime.ToTime(uint64(n))
}

// GUIDFromOctets decodes the objectGUID octet string into a GUID.
func GUIDFromOctets(b []byte) (windows.GUID, bool) {
	if len(b) != 16 {
		return windows.GUID{}, false
	}
	var g windows.GUID
	g.Data1 = binary.LittleEndian.Uint32(b[0:4])
	g.Data2 = binary.LittleEndian.Uint16(b[4:6])
	g.Data3 = binary.LittleEndian.Uint16(b[6:8])
	copy(g.Data4[:], b[8:])
	return g, true
}
