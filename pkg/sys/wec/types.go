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

// EcHandle is the EC_HANDLE returned by EcOpenSubscription and EcOpenSubscriptionEnum.
type EcHandle uintptr

// EcObjectArrayPropertyHandle is the EC_OBJECT_ARRAY_PROPERTY_HANDLE
// carried by EcSubscriptionEventSources.
type EcObjectArrayPropertyHandle uintptr

// EcVariant is the EC_VARIANT structure. The 8-byte union is interpreted
// according to Type.
type EcVariant struct {
	val   uint64
	Count uint32
	Type  EcVariantType
}
