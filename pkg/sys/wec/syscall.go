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

package wec

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall.go

//sys EcOpenSubscriptionEnum(flags uint32) (h EcHandle, err error) = wecapi.EcOpenSubscriptionEnum
//sys EcEnumNextSubscription(enum EcHandle, bufSize uint32, buf *uint16, bufUsed *uint32) (err error) = wecapi.EcEnumNextSubscription
//sys EcOpenSubscription(name *uint16, access uint32, flags uint32) (h EcHandle, err error) = wecapi.EcOpenSubscription
//sys EcSetSubscriptionProperty(sub EcHandle, id EcSubscriptionPropertyID, flags uint32, value *EcVariant) (err error) = wecapi.EcSetSubscriptionProperty
//sys EcGetSubscriptionProperty(sub EcHandle, id EcSubscriptionPropertyID, flags uint32, bufSize uint32, buf *EcVariant, bufUsed *uint32) (err error) = wecapi.EcGetSubscriptionProperty
//sys EcSaveSubscription(sub EcHandle, flags uint32) (err error) = wecapi.EcSaveSubscription
//sys EcDeleteSubscription(name *uint16, flags uint32) (err error) = wecapi.EcDeleteSubscription
//sys EcGetObjectArraySize(arr EcObjectArrayPropertyHandle, size *uint32) (err error) = wecapi.EcGetObjectArraySize
//sys EcSetObjectArrayProperty(arr EcObjectArrayPropertyHandle, id EcSubscriptionPropertyID, index uint32, flags uint32, value *EcVariant) (err error) = wecapi.EcSetObjectArrayProperty
//sys EcGetObjectArrayProperty(arr EcObjectArrayPropertyHandle, id EcSubscriptionPropertyID, index uint32, flags uint32, bufSize uint32, buf *EcVariant, bufUsed *uint32) (err error) = wecapi.EcGetObjectArrayProperty
//sys EcInsertObjectArrayElement(arr EcObjectArrayPropertyHandle, index uint32) (err error) = wecapi.EcInsertObjectArrayElement
//sys EcRemoveObjectArrayElement(arr EcObjectArrayPropertyHandle, index uint32) (err error) = wecapi.EcRemoveObjectArrayElement
//sys EcGetSubscriptionRunTimeStatus(name *uint16, id EcSubscriptionRuntimeStatusInfoID, source *uint16, flags uint32, bufSize uint32, buf *EcVariant, bufUsed *uint32) (err error) = wecapi.EcGetSubscriptionRunTimeStatus
//sys EcRetrySubscription(name *uint16, source *uint16, flags uint32) (err error) = wecapi.EcRetrySubscription
//sys EcClose(h EcHandle) (err error) = wecapi.EcClose
