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

// EcSubscriptionPropertyID is the EC_SUBSCRIPTION_PROPERTY_ID enumeration.
type EcSubscriptionPropertyID uint32

const (
	EcSubscriptionEnabled EcSubscriptionPropertyID = iota
	EcSubscriptionEventSources
	EcSubscriptionEventSourceAddress
	EcSubscriptionEventSourceEnabled
	EcSubscriptionEventSourceUserName
	EcSubscriptionEventSourcePassword
	EcSubscriptionDescription
	EcSubscriptionURI
	EcSubscriptionConfigurationMode
	EcSubscriptionExpires
	EcSubscriptionQuery
	EcSubscriptionTransportName
	EcSubscriptionTransportPort
	EcSubscriptionDeliveryMode
	EcSubscriptionDeliveryMaxItems
	EcSubscriptionDeliveryMaxLatencyTime
	EcSubscriptionHeartbeatInterval
	EcSubscriptionLocale
	EcSubscriptionContentFormat
	EcSubscriptionLogFile
	EcSubscriptionPublisherName
	EcSubscriptionCredentialsType
	EcSubscriptionCommonUserName
	EcSubscriptionCommonPassword
	EcSubscriptionHostName
	EcSubscriptionReadExistingEvents
	EcSubscriptionDialect
	EcSubscriptionType
	EcSubscriptionAllowedIssuerCAs
	EcSubscriptionAllowedSubjects
	EcSubscriptionDeniedSubjects
	EcSubscriptionAllowedSourceDomainComputers
	EcSubscriptionPropertyIdEND
)

var propertyNames = [...]string{
	"Enabled", "EventSources", "EventSourceAddress", "EventSourceEnabled",
	"EventSourceUserName", "EventSourcePassword", "Description", "URI",
	"ConfigurationMode", "Expires", "Query", "TransportName", "TransportPort",
	"DeliveryMode", "DeliveryMaxItems", "DeliveryMaxLatencyTime",
	"HeartbeatInterval", "Locale", "ContentFormat", "LogFile", "PublisherName",
	"CredentialsType", "CommonUserName", "CommonPassword", "HostName",
	"ReadExistingEvents", "Dialect", "Type", "AllowedIssuerCAs",
	"AllowedSubjects", "DeniedSubjects", "AllowedSourceDomainComputers",
}

func (id EcSubscriptionPropertyID) String() string {
	if int(id) < len(propertyNames) {
		return propertyNames[id]
	}
	return "Unknown"
}

// EcSubscriptionRuntimeStatusInfoID is the EC_SUBSCRIPTION_RUNTIME_STATUS_INFO_ID enumeration.
type EcSubscriptionRuntimeStatusInfoID uint32

const (
	EcSubscriptionRunTimeStatusActive EcSubscriptionRuntimeStatusInfoID = iota
	EcSubscriptionRunTimeStatusLastError
	EcSubscriptionRunTimeStatusLastErrorMessage
	EcSubscriptionRunTimeStatusLastErrorTime
	EcSubscriptionRunTimeStatusNextRetryTime
	EcSubscriptionRunTimeStatusEventSources
	EcSubscriptionRunTimeStatusLastHeartbeatTime
	EcSubscriptionRunTimeStatusInfoIdEND
)

// EcVariantType is the EC_VARIANT_TYPE enumeration.
type EcVariantType uint32

const (
	EcVarTypeNull EcVariantType = iota
	EcVarTypeBoolean
	EcVarTypeUInt32
	EcVarTypeDateTime
	EcVarTypeString
	EcVarObjectArrayPropertyHandle
)

const (
	// EcVariantTypeMask selects the scalar type of an EcVariant.
	EcVariantTypeMask EcVariantType = 0x7f
	// EcVariantTypeArray marks an EcVariant carrying Count elements.
	EcVariantTypeArray EcVariantType = 128
)

// EcConfigurationMode is the EC_SUBSCRIPTION_CONFIGURATION_MODE enumeration.
type EcConfigurationMode uint32

const (
	EcConfigurationModeNormal EcConfigurationMode = iota
	EcConfigurationModeCustom
	EcConfigurationModeMinLatency
	EcConfigurationModeMinBandwidth
)

// EcDeliveryMode is the EC_SUBSCRIPTION_DELIVERY_MODE enumeration.
type EcDeliveryMode uint32

const (
	EcDeliveryModePull EcDeliveryMode = 1
	EcDeliveryModePush EcDeliveryMode = 2
)

// EcContentFormat is the EC_SUBSCRIPTION_CONTENT_FORMAT enumeration.
type EcContentFormat uint32

const (
	EcContentFormatEvents       EcContentFormat = 1
	EcContentFormatRenderedText EcContentFormat = 2
)

// EcCredentialsType is the EC_SUBSCRIPTION_CREDENTIALS_TYPE enumeration.
type EcCredentialsType uint32

const (
	EcSubscriptionCredDefault EcCredentialsType = iota
	EcSubscriptionCredNegotiate
	EcSubscriptionCredDigest
	EcSubscriptionCredBasic
	EcSubscriptionCredLocalMachine
)

// EcSubscriptionKind is the EC_SUBSCRIPTION_TYPE enumeration.
type EcSubscriptionKind uint32

const (
	EcSubscriptionTypeSourceInitiated EcSubscriptionKind = iota
	EcSubscriptionTypeCollectorInitiated
)

// EcSubscriptionRuntimeStatusActiveStatus is the EC_SUBSCRIPTION_RUNTIME_STATUS_ACTIVE_STATUS enumeration.
type EcSubscriptionRuntimeStatusActiveStatus uint32

const (
	EcRuntimeStatusActiveStatusDisabled EcSubscriptionRuntimeStatusActiveStatus = 1
	EcRuntimeStatusActiveStatusActive   EcSubscriptionRuntimeStatusActiveStatus = 2
	EcRuntimeStatusActiveStatusInactive EcSubscriptionRuntimeStatusActiveStatus = 3
	EcRuntimeStatusActiveStatusTrying   EcSubscriptionRuntimeStatusActiveStatus = 4
)

func (s EcSubscriptionRuntimeStatusActiveStatus) String() string {
	switch s {
	case EcRuntimeStatusActiveStatusDisabled:
		return "Disabled"
	case EcRuntimeStatusActiveStatusActive:
		return "Active"
	case EcRuntimeStatusActiveStatusInactive:
		return "Inactive"
	case EcRuntimeStatusActiveStatusTrying:
		return "Trying"
	}
	return "Unknown"
}

// EcOpenSubscription flags.
const (
	EcOpenAlways   uint32 = 0
	EcCreateNew    uint32 = 1
	EcOpenExisting uint32 = 2
)

// EcOpenSubscription access masks.
const (
	EcReadAccess  uint32 = 1
	EcWriteAccess uint32 = 2
)
