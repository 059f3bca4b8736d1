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
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func comCall(fn uintptr, args ...uintptr) HResult {
	r, _, _ := syscall.SyscallN(fn, args...)
	return HResult(r)
}

// IUnknownVtbl is the IUnknown method table.
type IUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// IUnknown is the root of every COM interface.
type IUnknown struct {
	Vtbl *IUnknownVtbl
}

func (u *IUnknown) this() uintptr { return uintptr(unsafe.Pointer(u)) }

func (u *IUnknown) QueryInterface(iid *windows.GUID, obj *unsafe.Pointer) HResult {
	return comCall(u.Vtbl.QueryInterface, u.this(), uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(obj)))
}

func (u *IUnknown) AddRef() uint32 {
	r, _, _ := syscall.SyscallN(u.Vtbl.AddRef, u.this())
	return uint32(r)
}

func (u *IUnknown) Release() uint32 {
	r, _, _ := syscall.SyscallN(u.Vtbl.Release, u.this())
	return uint32(r)
}

// IDispatchVtbl is the IDispatch method table.
type IDispatchVtbl struct {
	IUnknownVtbl
	GetTypeInfoCount uintptr
	GetTypeInfo      uintptr
	GetIDsOfNames    uintptr
	Invoke           uintptr
}

// IDispatch is the automation interface every ADSI object exposes.
type IDispatch struct {
	IUnknown
}

func (d *IDispatch) vtbl() *IDispatchVtbl { return (*IDispatchVtbl)(unsafe.Pointer(d.Vtbl)) }

func (d *IDispatch) GetTypeInfoCount(n *uint32) HResult {
	return comCall(d.vtbl().GetTypeInfoCount, d.this(), uintptr(unsafe.Pointer(n)))
}

func (d *IDispatch) GetTypeInfo(index, lcid uint32, info **IUnknown) HResult {
	return comCall(d.vtbl().GetTypeInfo, d.this(), uintptr(index), uintptr(lcid), uintptr(unsafe.Pointer(info)))
}

func (d *IDispatch) GetIDsOfNames(iid *windows.GUID, names **uint16, count, lcid uint32, dispIDs *int32) HResult {
	return comCall(d.vtbl().GetIDsOfNames, d.this(), uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(names)),
		uintptr(count), uintptr(lcid), uintptr(unsafe.Pointer(dispIDs)))
}

func (d *IDispatch) Invoke(dispID int32, iid *windows.GUID, lcid uint32, flags uint16, params unsafe.Pointer, result *Variant, excepInfo unsafe.Pointer, argErr *uint32) HResult {
	return comCall(d.vtbl().Invoke, d.this(), uintptr(dispID), uintptr(unsafe.Pointer(iid)), uintptr(lcid), uintptr(flags),
		uintptr(params), uintptr(unsafe.Pointer(result)), uintptr(excepInfo), uintptr(unsafe.Pointer(argErr)))
}

// IEnumVARIANTVtbl is the IEnumVARIANT method table.
type IEnumVARIANTVtbl struct {
	IUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

// IEnumVARIANT enumerates container children built by ADsBuildEnumerator.
type IEnumVARIANT struct {
	IUnknown
}

func (e *IEnumVARIANT) vtbl() *IEnumVARIANTVtbl { return (*IEnumVARIANTVtbl)(unsafe.Pointer(e.Vtbl)) }

func (e *IEnumVARIANT) Next(n uint32, vars *Variant, fetched *uint32) HResult {
	return comCall(e.vtbl().Next, e.this(), uintptr(n), uintptr(unsafe.Pointer(vars)), uintptr(unsafe.Pointer(fetched)))
}

func (e *IEnumVARIANT) Skip(n uint32) HResult { return comCall(e.vtbl().Skip, e.this(), uintptr(n)) }

func (e *IEnumVARIANT) Reset() HResult { return comCall(e.vtbl().Reset, e.this()) }

func (e *IEnumVARIANT) Clone(out **IEnumVARIANT) HResult {
	return comCall(e.vtbl().Clone, e.this(), uintptr(unsafe.Pointer(out)))
}

// IADsVtbl is the IADs method table.
type IADsVtbl struct {
	IDispatchVtbl
	GetName    uintptr
	GetClass   uintptr
	GetGUID    uintptr
	GetADsPath uintptr
	GetParent  uintptr
	GetSchema  uintptr
	GetInfo    uintptr
	SetInfo    uintptr
	Get        uintptr
	Put        uintptr
	GetEx      uintptr
	PutEx      uintptr
	GetInfoEx  uintptr
}

// IADs is the core interface of every directory object.
type IADs struct {
	IDispatch
}

func (o *IADs) vtbl() *IADsVtbl { return (*IADsVtbl)(unsafe.Pointer(o.Vtbl)) }

func (o *IADs) bstrProp(fn uintptr, out **uint16) HResult {
	return comCall(fn, o.this(), uintptr(unsafe.Pointer(out)))
}

func (o *IADs) GetName(out **uint16) HResult    { return o.bstrProp(o.vtbl().GetName, out) }
func (o *IADs) GetClass(out **uint16) HResult   { return o.bstrProp(o.vtbl().GetClass, out) }
func (o *IADs) GetGUID(out **uint16) HResult    { return o.bstrProp(o.vtbl().GetGUID, out) }
func (o *IADs) GetADsPath(out **uint16) HResult { return o.bstrProp(o.vtbl().GetADsPath, out) }
func (o *IADs) GetParent(out **uint16) HResult  { return o.bstrProp(o.vtbl().GetParent, out) }
func (o *IADs) GetSchema(out **uint16) HResult  { return o.bstrProp(o.vtbl().GetSchema, out) }

// GetInfo loads the property cache from the directory.
func (o *IADs) GetInfo() HResult { return comCall(o.vtbl().GetInfo, o.this()) }

// SetInfo commits the property cache to the directory.
func (o *IADs) SetInfo() HResult { return comCall(o.vtbl().SetInfo, o.this()) }

func (o *IADs) Get(name *uint16, v *Variant) HResult {
	return comCall(o.vtbl().Get, o.this(), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(v)))
}

// Put stores v in the property cache. The VARIANT is passed by reference
// as the x64 calling convention requires for 24-byte aggregates.
func (o *IADs) Put(name *uint16, v *Variant) HResult {
	return comCall(o.vtbl().Put, o.this(), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(v)))
}

func (o *IADs) GetEx(name *uint16, v *Variant) HResult {
	return comCall(o.vtbl().GetEx, o.this(), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(v)))
}

func (o *IADs) PutEx(control ADsPropertyOperation, name *uint16, v *Variant) HResult {
	return comCall(o.vtbl().PutEx, o.this(), uintptr(control), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(v)))
}

func (o *IADs) GetInfoEx(props *Variant, reserved int32) HResult {
	return comCall(o.vtbl().GetInfoEx, o.this(), uintptr(unsafe.Pointer(props)), uintptr(reserved))
}

// IADsContainerVtbl is the IADsContainer method table.
type IADsContainerVtbl struct {
	IDispatchVtbl
	GetCount   uintptr
	GetNewEnum uintptr
	GetFilter  uintptr
	PutFilter  uintptr
	GetHints   uintptr
	PutHints   uintptr
	GetObject  uintptr
	Create     uintptr
	Delete     uintptr
	CopyHere   uintptr
	MoveHere   uintptr
}

// IADsContainer manages the children of a container object.
type IADsContainer struct {
	IDispatch
}

func (c *IADsContainer) vtbl() *IADsContainerVtbl {
	return (*IADsContainerVtbl)(unsafe.Pointer(c.Vtbl))
}

func (c *IADsContainer) GetCount(n *int32) HResult {
	return comCall(c.vtbl().GetCount, c.this(), uintptr(unsafe.Pointer(n)))
}

func (c *IADsContainer) GetNewEnum(enum **IUnknown) HResult {
	return comCall(c.vtbl().GetNewEnum, c.this(), uintptr(unsafe.Pointer(enum)))
}

func (c *IADsContainer) GetFilter(v *Variant) HResult {
	return comCall(c.vtbl().GetFilter, c.this(), uintptr(unsafe.Pointer(v)))
}

func (c *IADsContainer) PutFilter(v *Variant) HResult {
	return comCall(c.vtbl().PutFilter, c.this(), uintptr(unsafe.Pointer(v)))
}

func (c *IADsContainer) GetHints(v *Variant) HResult {
	return comCall(c.vtbl().GetHints, c.this(), uintptr(unsafe.Pointer(v)))
}

func (c *IADsContainer) PutHints(v *Variant) HResult {
	return comCall(c.vtbl().PutHints, c.this(), uintptr(unsafe.Pointer(v)))
}

func (c *IADsContainer) GetObject(class, rdn *uint16, out **IDispatch) HResult {
	return comCall(c.vtbl().GetObject, c.this(), uintptr(unsafe.Pointer(class)), uintptr(unsafe.Pointer(rdn)), uintptr(unsafe.Pointer(out)))
}

func (c *IADsContainer) Create(class, rdn *uint16, out **IDispatch) HResult {
	return comCall(c.vtbl().Create, c.this(), uintptr(unsafe.Pointer(class)), uintptr(unsafe.Pointer(rdn)), uintptr(unsafe.Pointer(out)))
}

func (c *IADsContainer) Delete(class, rdn *uint16) HResult {
	return comCall(c.vtbl().Delete, c.this(), uintptr(unsafe.Pointer(class)), uintptr(unsafe.Pointer(rdn)))
}

func (c *IADsContainer) CopyHere(src, newName *uint16, out **IDispatch) HResult {
	return comCall(c.vtbl().CopyHere, c.this(), uintptr(unsafe.Pointer(src)), uintptr(unsafe.Pointer(newName)), uintptr(unsafe.Pointer(out)))
}

func (c *IADsContainer) MoveHere(src, newName *uint16, out **IDispatch) HResult {
	return comCall(c.vtbl().MoveHere, c.this(), uintptr(unsafe.Pointer(src)), uintptr(unsafe.Pointer(newName)), uintptr(unsafe.Pointer(out)))
}

// IDirectoryObjectVtbl is the IDirectoryObject method table.
type IDirectoryObjectVtbl struct {
	IUnknownVtbl
	GetObjectInformation uintptr
	GetObjectAttributes  uintptr
	SetObjectAttributes  uintptr
	CreateDSObject       uintptr
	DeleteDSObject       uintptr
}

// IDirectoryObject is the non-automation interface for attribute access.
type IDirectoryObject struct {
	IUnknown
}

func (o *IDirectoryObject) vtbl() *IDirectoryObjectVtbl {
	return (*IDirectoryObjectVtbl)(unsafe.Pointer(o.Vtbl))
}

// GetObjectInformation returns an ADSI allocated ADsObjectInfo released with FreeADsMem.
func (o *IDirectoryObject) GetObjectInformation(info **ADsObjectInfo) HResult {
	return comCall(o.vtbl().GetObjectInformation, o.this(), uintptr(unsafe.Pointer(info)))
}

// GetObjectAttributes fills attrs with an ADSI allocated array released with FreeADsMem.
func (o *IDirectoryObject) GetObjectAttributes(names **uint16, count uint32, attrs **ADsAttrInfo, returned *uint32) HResult {
	return comCall(o.vtbl().GetObjectAttributes, o.this(), uintptr(unsafe.Pointer(names)), uintptr(count),
		uintptr(unsafe.Pointer(attrs)), uintptr(unsafe.Pointer(returned)))
}

func (o *IDirectoryObject) SetObjectAttributes(attrs *ADsAttrInfo, count uint32, modified *uint32) HResult {
	return comCall(o.vtbl().SetObjectAttributes, o.this(), uintptr(unsafe.Pointer(attrs)), uintptr(count), uintptr(unsafe.Pointer(modified)))
}

func (o *IDirectoryObject) CreateDSObject(rdn *uint16, attrs *ADsAttrInfo, count uint32, out **IDispatch) HResult {
	return comCall(o.vtbl().CreateDSObject, o.this(), uintptr(unsafe.Pointer(rdn)), uintptr(unsafe.Pointer(attrs)),
		uintptr(count), uintptr(unsafe.Pointer(out)))
}

func (o *IDirectoryObject) DeleteDSObject(rdn *uint16) HResult {
	return comCall(o.vtbl().DeleteDSObject, o.this(), uintptr(unsafe.Pointer(rdn)))
}

// IDirectorySearchVtbl is the IDirectorySearch method table.
type IDirectorySearchVtbl struct {
	IUnknownVtbl
	SetSearchPreference uintptr
	ExecuteSearch       uintptr
	AbandonSearch       uintptr
	GetFirstRow         uintptr
	GetNextRow          uintptr
	GetPreviousRow      uintptr
	GetNextColumnName   uintptr
	GetColumn           uintptr
	FreeColumn          uintptr
	CloseSearchHandle   uintptr
}

// IDirectorySearch runs LDAP queries against a bound container.
type IDirectorySearch struct {
	IUnknown
}

func (s *IDirectorySearch) vtbl() *IDirectorySearchVtbl {
	return (*IDirectorySearchVtbl)(unsafe.Pointer(s.Vtbl))
}

func (s *IDirectorySearch) SetSearchPreference(prefs *ADsSearchPrefInfo, count uint32) HResult {
	return comCall(s.vtbl().SetSearchPreference, s.this(), uintptr(unsafe.Pointer(prefs)), uintptr(count))
}

func (s *IDirectorySearch) ExecuteSearch(filter *uint16, attrs **uint16, count uint32, h *ADsSearchHandle) HResult {
	return comCall(s.vtbl().ExecuteSearch, s.this(), uintptr(unsafe.Pointer(filter)), uintptr(unsafe.Pointer(attrs)),
		uintptr(count), uintptr(unsafe.Pointer(h)))
}

func (s *IDirectorySearch) AbandonSearch(h ADsSearchHandle) HResult {
	return comCall(s.vtbl().AbandonSearch, s.this(), uintptr(h))
}

// GetFirstRow returns S_ADS_NOMORE_ROWS when the result set is empty.
func (s *IDirectorySearch) GetFirstRow(h ADsSearchHandle) HResult {
	return comCall(s.vtbl().GetFirstRow, s.this(), uintptr(h))
}

func (s *IDirectorySearch) GetNextRow(h ADsSearchHandle) HResult {
	return comCall(s.vtbl().GetNextRow, s.this(), uintptr(h))
}

func (s *IDirectorySearch) GetPreviousRow(h ADsSearchHandle) HResult {
	return comCall(s.vtbl().GetPreviousRow, s.this(), uintptr(h))
}

// GetNextColumnName returns a name released with FreeADsMem, and
// S_ADS_NOMORE_COLUMNS after the last column.
func (s *IDirectorySearch) GetNextColumnName(h ADsSearchHandle, name **uint16) HResult {
	return comCall(s.vtbl().GetNextColumnName, s.this(), uintptr(h), uintptr(unsafe.Pointer(name)))
}

func (s *IDirectorySearch) GetColumn(h ADsSearchHandle, name *uint16, col *ADsSearchColumn) HResult {
	return comCall(s.vtbl().GetColumn, s.this(), uintptr(h), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(col)))
}

func (s *IDirectorySearch) FreeColumn(col *ADsSearchColumn) HResult {
	return comCall(s.vtbl().FreeColumn, s.this(), uintptr(unsafe.Pointer(col)))
}

func (s *IDirectorySearch) CloseSearchHandle(h ADsSearchHandle) HResult {
	return comCall(s.vtbl().CloseSearchHandle, s.this(), uintptr(h))
}

// IADsNameTranslateVtbl is the IADsNameTranslate method table.
type IADsNameTranslateVtbl struct {
	IDispatchVtbl
	PutChaseReferral uintptr
	Init             uintptr
	InitEx           uintptr
	Set              uintptr
	Get              uintptr
	SetEx            uintptr
	GetEx            uintptr
}

// IADsNameTranslate converts object names between ADsNameType formats.
type IADsNameTranslate struct {
	IDispatch
}

func (n *IADsNameTranslate) vtbl() *IADsNameTranslateVtbl {
	return (*IADsNameTranslateVtbl)(unsafe.Pointer(n.Vtbl))
}

func (n *IADsNameTranslate) PutChaseReferral(referral ADsChaseReferrals) HResult {
	return comCall(n.vtbl().PutChaseReferral, n.this(), uintptr(referral))
}

func (n *IADsNameTranslate) Init(typ ADsNameInitType, path *uint16) HResult {
	return comCall(n.vtbl().Init, n.this(), uintptr(typ), uintptr(unsafe.Pointer(path)))
}

func (n *IADsNameTranslate) InitEx(typ ADsNameInitType, path, user, domain, password *uint16) HResult {
	return comCall(n.vtbl().InitEx, n.this(), uintptr(typ), uintptr(unsafe.Pointer(path)), uintptr(unsafe.Pointer(user)),
		uintptr(unsafe.Pointer(domain)), uintptr(unsafe.Pointer(password)))
}

func (n *IADsNameTranslate) Set(typ ADsNameType, name *uint16) HResult {
	return comCall(n.vtbl().Set, n.this(), uintptr(typ), uintptr(unsafe.Pointer(name)))
}

func (n *IADsNameTranslate) Get(typ ADsNameType, out **uint16) HResult {
	return comCall(n.vtbl().Get, n.this(), uintptr(typ), uintptr(unsafe.Pointer(out)))
}

func (n *IADsNameTranslate) SetEx(typ ADsNameType, names *Variant) HResult {
	return comCall(n.vtbl().SetEx, n.this(), uintptr(typ), uintptr(unsafe.Pointer(names)))
}

func (n *IADsNameTranslate) GetEx(typ ADsNameType, out *Variant) HResult {
	return comCall(n.vtbl().GetEx, n.this(), uintptr(typ), uintptr(unsafe.Pointer(out)))
}

// IADsADSystemInfoVtbl is the IADsADSystemInfo method table.
type IADsADSystemInfoVtbl struct {
	IDispatchVtbl
	GetUserName        uintptr
	GetComputerName    uintptr
	GetSiteName        uintptr
	GetDomainShortName uintptr
	GetDomainDNSName   uintptr
	GetForestDNSName   uintptr
	GetPDCRoleOwner    uintptr
	GetSchemaRoleOwner uintptr
	GetIsNativeMode    uintptr
	GetAnyDCName       uintptr
	GetDCSiteName      uintptr
	RefreshSchemaCache uintptr
	GetTrees           uintptr
}

// IADsADSystemInfo describes the domain membership of the local machine.
type IADsADSystemInfo struct {
	IDispatch
}

func (s *IADsADSystemInfo) vtbl() *IADsADSystemInfoVtbl {
	return (*IADsADSystemInfoVtbl)(unsafe.Pointer(s.Vtbl))
}

func (s *IADsADSystemInfo) out(fn uintptr, p unsafe.Pointer) HResult {
	return comCall(fn, s.this(), uintptr(p))
}

func (s *IADsADSystemInfo) GetUserName(out **uint16) HResult {
	return s.out(s.vtbl().GetUserName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetComputerName(out **uint16) HResult {
	return s.out(s.vtbl().GetComputerName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetSiteName(out **uint16) HResult {
	return s.out(s.vtbl().GetSiteName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetDomainShortName(out **uint16) HResult {
	return s.out(s.vtbl().GetDomainShortName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetDomainDNSName(out **uint16) HResult {
	return s.out(s.vtbl().GetDomainDNSName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetForestDNSName(out **uint16) HResult {
	return s.out(s.vtbl().GetForestDNSName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetPDCRoleOwner(out **uint16) HResult {
	return s.out(s.vtbl().GetPDCRoleOwner, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetSchemaRoleOwner(out **uint16) HResult {
	return s.out(s.vtbl().GetSchemaRoleOwner, unsafe.Pointer(out))
}

// GetIsNativeMode stores a VARIANT_BOOL.
func (s *IADsADSystemInfo) GetIsNativeMode(out *int16) HResult {
	return s.out(s.vtbl().GetIsNativeMode, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetAnyDCName(out **uint16) HResult {
	return s.out(s.vtbl().GetAnyDCName, unsafe.Pointer(out))
}

func (s *IADsADSystemInfo) GetDCSiteName(server *uint16, out **uint16) HResult {
	return comCall(s.vtbl().GetDCSiteName, s.this(), uintptr(unsafe.Pointer(server)), uintptr(unsafe.Pointer(out)))
}

func (s *IADsADSystemInfo) RefreshSchemaCache() HResult {
	return comCall(s.vtbl().RefreshSchemaCache, s.this())
}

func (s *IADsADSystemInfo) GetTrees(out *Variant) HResult {
	return s.out(s.vtbl().GetTrees, unsafe.Pointer(out))
}

// IADsWinNTSystemInfoVtbl is the IADsWinNTSystemInfo method table.
type IADsWinNTSystemInfoVtbl struct {
	IDispatchVtbl
	GetUserName     uintptr
	GetComputerName uintptr
	GetDomainName   uintptr
	GetPDC          uintptr
}

// IADsWinNTSystemInfo is the NetBIOS view of the local machine.
type IADsWinNTSystemInfo struct {
	IDispatch
}

func (s *IADsWinNTSystemInfo) vtbl() *IADsWinNTSystemInfoVtbl {
	return (*IADsWinNTSystemInfoVtbl)(unsafe.Pointer(s.Vtbl))
}

func (s *IADsWinNTSystemInfo) GetUserName(out **uint16) HResult {
	return comCall(s.vtbl().GetUserName, s.this(), uintptr(unsafe.Pointer(out)))
}

func (s *IADsWinNTSystemInfo) GetComputerName(out **uint16) HResult {
	return comCall(s.vtbl().GetComputerName, s.this(), uintptr(unsafe.Pointer(out)))
}

func (s *IADsWinNTSystemInfo) GetDomainName(out **uint16) HResult {
	return comCall(s.vtbl().GetDomainName, s.this(), uintptr(unsafe.Pointer(out)))
}

func (s *IADsWinNTSystemInfo) GetPDC(out **uint16) HResult {
	return comCall(s.vtbl().GetPDC, s.this(), uintptr(unsafe.Pointer(out)))
}

// IADsPathnameVtbl is the IADsPathname method table.
type IADsPathnameVtbl struct {
	IDispatchVtbl
	Set               uintptr
	SetDisplayType    uintptr
	Retrieve          uintptr
	GetNumElements    uintptr
	GetElement        uintptr
	AddLeafElement    uintptr
	RemoveLeafElement uintptr
	CopyPath          uintptr
	GetEscapedElement uintptr
	GetEscapedMode    uintptr
	PutEscapedMode    uintptr
}

// IADsPathname parses and builds ADsPath strings.
type IADsPathname struct {
	IDispatch
}

func (p *IADsPathname) vtbl() *IADsPathnameVtbl { return (*IADsPathnameVtbl)(unsafe.Pointer(p.Vtbl)) }

func (p *IADsPathname) Set(path *uint16, typ ADsSetType) HResult {
	return comCall(p.vtbl().Set, p.this(), uintptr(unsafe.Pointer(path)), uintptr(typ))
}

func (p *IADsPathname) SetDisplayType(typ int32) HResult {
	return comCall(p.vtbl().SetDisplayType, p.this(), uintptr(typ))
}

func (p *IADsPathname) Retrieve(format ADsFormat, out **uint16) HResult {
	return comCall(p.vtbl().Retrieve, p.this(), uintptr(format), uintptr(unsafe.Pointer(out)))
}

func (p *IADsPathname) GetNumElements(n *int32) HResult {
	return comCall(p.vtbl().GetNumElements, p.this(), uintptr(unsafe.Pointer(n)))
}

func (p *IADsPathname) GetElement(index int32, out **uint16) HResult {
	return comCall(p.vtbl().GetElement, p.this(), uintptr(index), uintptr(unsafe.Pointer(out)))
}

func (p *IADsPathname) AddLeafElement(elem *uint16) HResult {
	return comCall(p.vtbl().AddLeafElement, p.this(), uintptr(unsafe.Pointer(elem)))
}

func (p *IADsPathname) RemoveLeafElement() HResult {
	return comCall(p.vtbl().RemoveLeafElement, p.this())
}

func (p *IADsPathname) CopyPath(out **IDispatch) HResult {
	return comCall(p.vtbl().CopyPath, p.this(), uintptr(unsafe.Pointer(out)))
}

func (p *IADsPathname) GetEscapedElement(reserved int32, in *uint16, out **uint16) HResult {
	return comCall(p.vtbl().GetEscapedElement, p.this(), uintptr(reserved), uintptr(unsafe.Pointer(in)), uintptr(unsafe.Pointer(out)))
}

func (p *IADsPathname) GetEscapedMode(mode *int32) HResult {
	return comCall(p.vtbl().GetEscapedMode, p.this(), uintptr(unsafe.Pointer(mode)))
}

func (p *IADsPathname) PutEscapedMode(mode int32) HResult {
	return comCall(p.vtbl().PutEscapedMode, p.this(), uintptr(mode))
}
