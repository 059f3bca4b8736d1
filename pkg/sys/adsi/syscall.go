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

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall.go

// ADSI helper functions
//sys ADsGetObject(path *uint16, iid *windows.GUID, obj *unsafe.Pointer) (hr HResult) = activeds.ADsGetObject
//sys ADsOpenObject(path *uint16, user *uint16, password *uint16, flags ADsAuthentication, iid *windows.GUID, obj *unsafe.Pointer) (hr HResult) = activeds.ADsOpenObject
//sys ADsBuildEnumerator(container *IADsContainer, enum **IEnumVARIANT) (hr HResult) = activeds.ADsBuildEnumerator
//sys ADsEnumerateNext(enum *IEnumVARIANT, elements uint32, vars *Variant, fetched *uint32) (hr HResult) = activeds.ADsEnumerateNext
//sys ADsFreeEnumerator(enum *IEnumVARIANT) (hr HResult) = activeds.ADsFreeEnumerator
//sys ADsBuildVarArrayStr(strs **uint16, count uint32, v *Variant) (hr HResult) = activeds.ADsBuildVarArrayStr
//sys ADsBuildVarArrayInt(objTypes *uint32, count uint32, v *Variant) (hr HResult) = activeds.ADsBuildVarArrayInt
//sys ADsGetLastError(code *uint32, errBuf *uint16, errBufLen uint32, nameBuf *uint16, nameBufLen uint32) (hr HResult) = activeds.ADsGetLastError
//sys ADsSetLastError(code uint32, errStr *uint16, provider *uint16) = activeds.ADsSetLastError
//sys AllocADsMem(size uint32) (p unsafe.Pointer) = activeds.AllocADsMem
//sys FreeADsMem(p unsafe.Pointer) (ok bool) = activeds.FreeADsMem
//sys ReallocADsMem(old unsafe.Pointer, oldSize uint32, newSize uint32) (p unsafe.Pointer) = activeds.ReallocADsMem
//sys AllocADsStr(s *uint16) (p *uint16) = activeds.AllocADsStr
//sys FreeADsStr(s *uint16) (ok bool) = activeds.FreeADsStr
//sys ReallocADsStr(dst **uint16, src *uint16) (ok bool) = activeds.ReallocADsStr
//sys ADsEncodeBinaryData(data *byte, length uint32, encoded **uint16) (hr HResult) = activeds.ADsEncodeBinaryData
//sys ADsDecodeBinaryData(src *uint16, data **byte, length *uint32) (hr HResult) = activeds.ADsDecodeBinaryData
//sys PropVariantToAdsType(v *Variant, count uint32, values **ADsValue, valueCount *uint32) (hr HResult) = activeds.PropVariantToAdsType
//sys AdsTypeToPropVariant(values *ADsValue, count uint32, v *Variant) (hr HResult) = activeds.AdsTypeToPropVariant
//sys AdsFreeAdsValues(values *ADsValue, count uint32) = activeds.AdsFreeAdsValues
//sys BinarySDToSecurityDescriptor(sd *windows.SECURITY_DESCRIPTOR, v *Variant, server *uint16, user *uint16, password *uint16, flags uint32) (hr HResult) = activeds.BinarySDToSecurityDescriptor
//sys SecurityDescriptorToBinarySD(v *Variant, sd **windows.SECURITY_DESCRIPTOR, size *uint32, server *uint16, user *uint16, password *uint16, flags uint32) (hr HResult) = activeds.SecurityDescriptorToBinarySD

// Domain controller locator and role APIs
//sys DsGetDcName(computer *uint16, domain *uint16, domainGUID *windows.GUID, site *uint16, flags uint32, info **DomainControllerInfo) (ret error) = netapi32.DsGetDcNameW
//sys DsGetSiteName(computer *uint16, site **uint16) (ret error) = netapi32.DsGetSiteNameW
//sys DsEnumerateDomainTrusts(server *uint16, flags uint32, domains **DsDomainTrusts, count *uint32) (ret error) = netapi32.DsEnumerateDomainTrustsW
//sys DsRoleGetPrimaryDomainInformation(server *uint16, level DsRolePrimaryDomainInfoLevel, buf **byte) (ret error) = netapi32.DsRoleGetPrimaryDomainInformation
//sys DsRoleFreeMemory(buf unsafe.Pointer) = netapi32.DsRoleFreeMemory
//sys NetApiBufferFree(buf unsafe.Pointer) (ret error) = netapi32.NetApiBufferFree

// Directory service binding, name cracking and SPN APIs
//sys DsBind(dc *uint16, dnsDomain *uint16, h *DsHandle) (ret error) = ntdsapi.DsBindW
//sys DsUnBind(h *DsHandle) (ret error) = ntdsapi.DsUnBindW
//sys DsCrackNames(h DsHandle, flags DsNameFlags, offered DsNameFormat, desired DsNameFormat, count uint32, names **uint16, result **DsNameResult) (ret error) = ntdsapi.DsCrackNamesW
//sys DsFreeNameResult(result *DsNameResult) = ntdsapi.DsFreeNameResultW
//sys DsMakeSpn(serviceClass *uint16, serviceName *uint16, instanceName *uint16, instancePort uint16, referrer *uint16, spnLength *uint32, spn *uint16) (ret error) = ntdsapi.DsMakeSpnW
//sys DsGetSpn(typ DsSpnNameType, serviceClass *uint16, serviceName *uint16, instancePort uint16, instanceCount uint16, instanceNames **uint16, instancePorts *uint16, spnCount *uint32, spns ***uint16) (ret error) = ntdsapi.DsGetSpnW
//sys DsFreeSpnArray(count uint32, spns **uint16) = ntdsapi.DsFreeSpnArrayW

// COM activation and automation types
//sys CoCreateInstance(clsid *windows.GUID, outer *IUnknown, clsctx uint32, iid *windows.GUID, obj *unsafe.Pointer) (hr HResult) = ole32.CoCreateInstance
//sys SysAllocString(s *uint16) (b *uint16) = oleaut32.SysAllocString
//sys SysFreeString(b *uint16) = oleaut32.SysFreeString
//sys SysStringLen(b *uint16) (n uint32) = oleaut32.SysStringLen
//sys VariantInit(v *Variant) = oleaut32.VariantInit
//sys VariantClear(v *Variant) (hr HResult) = oleaut32.VariantClear
//sys SafeArrayAccessData(sa *SafeArray, data *unsafe.Pointer) (hr HResult) = oleaut32.SafeArrayAccessData
//sys SafeArrayUnaccessData(sa *SafeArray) (hr HResult) = oleaut32.SafeArrayUnaccessData
