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

package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/rabbitstack/wincall/pkg/sys/wec"
)

// Subscription describes an event collector subscription. The same struct
// serves as the definition applied from files and as the state read back
// from the collector.
type Subscription struct {
	Name                         string        `mapstructure:"name" json:"name"`
	Description                  string        `mapstructure:"description" json:"description,omitempty"`
	Enabled                      bool          `mapstructure:"enabled" json:"enabled"`
	Type                         string        `mapstructure:"type" json:"type"`
	URI                          string        `mapstructure:"uri" json:"uri"`
	Query                        string        `mapstructure:"query" json:"query"`
	LogFile                      string        `mapstructure:"log-file" json:"log-file"`
	PublisherName                string        `mapstructure:"publisher-name" json:"publisher-name,omitempty"`
	Locale                       string        `mapstructure:"locale" json:"locale,omitempty"`
	Dialect                      string        `mapstructure:"dialect" json:"dialect,omitempty"`
	ConfigurationMode            string        `mapstructure:"configuration-mode" json:"configuration-mode"`
	DeliveryMode                 string        `mapstructure:"delivery-mode" json:"delivery-mode"`
	MaxItems                     uint32        `mapstructure:"max-items" json:"max-items,omitempty"`
	MaxLatency                   time.Duration `mapstructure:"max-latency" json:"max-latency,omitempty"`
	Heartbeat                    time.Duration `mapstructure:"heartbeat" json:"heartbeat,omitempty"`
	ContentFormat                string        `mapstructure:"content-format" json:"content-format"`
	Expires                      time.Time     `mapstructure:"expires" json:"expires,omitempty"`
	ReadExistingEvents           bool          `mapstructure:"read-existing-events" json:"read-existing-events"`
	TransportName                string        `mapstructure:"transport-name" json:"transport-name,omitempty"`
	TransportPort                uint32        `mapstructure:"transport-port" json:"transport-port,omitempty"`
	CredentialsType              string        `mapstructure:"credentials-type" json:"credentials-type,omitempty"`
	CommonUserName               string        `mapstructure:"common-user-name" json:"common-user-name,omitempty"`
	CommonPassword               string        `mapstructure:"common-password" json:"-"`
	HostName                     string        `mapstructure:"host-name" json:"host-name,omitempty"`
	AllowedSourceDomainComputers string        `mapstructure:"allowed-source-domain-computers" json:"allowed-source-domain-computers,omitempty"`
	EventSources                 []EventSource `mapstructure:"event-sources" json:"event-sources,omitempty"`
}

// EventSource is a computer a collector initiated subscription pulls events from.
type EventSource struct {
	Address  string `mapstructure:"address" json:"address"`
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	UserName string `mapstructure:"user-name" json:"user-name,omitempty"`
	Password string `mapstructure:"password" json:"-"`
}

// Subscription types.
const (
	TypeCollectorInitiated = "collector-initiated"
	TypeSourceInitiated    = "source-initiated"
)

// Configuration modes.
const (
	ModeNormal       = "normal"
	ModeCustom       = "custom"
	ModeMinLatency   = "min-latency"
	ModeMinBandwidth = "min-bandwidth"
)

const (
	defaultURI     = "http://schemas.microsoft.com/wbem/wsman/1/windows/EventLog"
	defaultLogFile = "ForwardedEvents"
)

var subscriptionTypes = map[string]wec.EcSubscriptionKind{
	TypeSourceInitiated:    wec.EcSubscriptionTypeSourceInitiated,
	TypeCollectorInitiated: wec.EcSubscriptionTypeCollectorInitiated,
}

var configurationModes = map[string]wec.EcConfigurationMode{
	ModeNormal:       wec.EcConfigurationModeNormal,
	ModeCustom:       wec.EcConfigurationModeCustom,
	ModeMinLatency:   wec.EcConfigurationModeMinLatency,
	ModeMinBandwidth: wec.EcConfigurationModeMinBandwidth,
}

var deliveryModes = map[string]wec.EcDeliveryMode{
	"pull": wec.EcDeliveryModePull,
	"push": wec.EcDeliveryModePush,
}

var contentFormats = map[string]wec.EcContentFormat{
	"events":        wec.EcContentFormatEvents,
	"rendered-text": wec.EcContentFormatRenderedText,
}

var credentialsTypes = map[string]wec.EcCredentialsType{
	"default":       wec.EcSubscriptionCredDefault,
	"negotiate":     wec.EcSubscriptionCredNegotiate,
	"digest":        wec.EcSubscriptionCredDigest,
	"basic":         wec.EcSubscriptionCredBasic,
	"local-machine": wec.EcSubscriptionCredLocalMachine,
}

// lookup resolves the name of an enumeration value. Unknown values are
// rendered as numbers.
func lookup[T ~uint32](m map[string]T, v T) string {
	for name, val := range m {
		if val == v {
			return name
		}
	}
	return fmt.Sprintf("%d", v)
}

func names[T ~uint32](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func resolve[T ~uint32](kind string, m map[string]T, name string) (T, error) {
	v, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q: expected one of %v", kind, name, names(m))
	}
	return v, nil
}

// property is a single subscription property write.
type property struct {
	id    wec.EcSubscriptionPropertyID
	value *wec.EcVariant
}

// tuned reports whether any delivery tuning setting is present.
func (s Subscription) tuned() bool {
	return s.MaxItems > 0 || s.MaxLatency > 0 || s.Heartbeat > 0
}

// checkTuning refuses delivery tuning outside the custom configuration mode.
func (s Subscription) checkTuning() error {
	if s.ConfigurationMode != ModeCustom && s.tuned() {
		return fmt.Errorf("%s: delivery tuning requires the custom configuration mode, got %s", s.Name, s.ConfigurationMode)
	}
	return nil
}

// properties translates the subscription into the property writes issued
// before saving. Empty optional fields keep the collector defaults. Delivery
// settings are written only in custom configuration mode.
func (s Subscription) properties() ([]property, error) {
	var props []property
	add := func(id wec.EcSubscriptionPropertyID, v *wec.EcVariant) {
		props = append(props, property{id: id, value: v})
	}
	str := func(id wec.EcSubscriptionPropertyID, val string) error {
		if val == "" {
			return nil
		}
		v, err := wec.NewStringVariant(val)
		if err != nil {
			return fmt.Errorf("%s: %v", id, err)
		}
		add(id, v)
		return nil
	}

	typ, err := resolve("subscription type", subscriptionTypes, s.Type)
	if err != nil {
		return nil, err
	}
	mode, err := resolve("configuration mode", configurationModes, s.ConfigurationMode)
	if err != nil {
		return nil, err
	}
	if err := s.checkTuning(); err != nil {
		return nil, err
	}
	format, err := resolve("content format", contentFormats, s.ContentFormat)
	if err != nil {
		return nil, err
	}

	add(wec.EcSubscriptionType, wec.NewUInt32Variant(uint32(typ)))
	for _, p := range []struct {
		id  wec.EcSubscriptionPropertyID
		val string
	}{
		{wec.EcSubscriptionDescription, s.Description},
		{wec.EcSubscriptionURI, s.URI},
		{wec.EcSubscriptionQuery, s.Query},
		{wec.EcSubscriptionLogFile, s.LogFile},
		{wec.EcSubscriptionPublisherName, s.PublisherName},
		{wec.EcSubscriptionLocale, s.Locale},
		{wec.EcSubscriptionDialect, s.Dialect},
		{wec.EcSubscriptionTransportName, s.TransportName},
		{wec.EcSubscriptionCommonUserName, s.CommonUserName},
		{wec.EcSubscriptionCommonPassword, s.CommonPassword},
		{wec.EcSubscriptionHostName, s.HostName},
		{wec.EcSubscriptionAllowedSourceDomainComputers, s.AllowedSourceDomainComputers},
	} {
		if err := str(p.id, p.val); err != nil {
			return nil, err
		}
	}
	add(wec.EcSubscriptionConfigurationMode, wec.NewUInt32Variant(uint32(mode)))
	if mode == wec.EcConfigurationModeCustom {
		delivery, err := resolve("delivery mode", deliveryModes, s.DeliveryMode)
		if err != nil {
			return nil, err
		}
		add(wec.EcSubscriptionDeliveryMode, wec.NewUInt32Variant(uint32(delivery)))
		if s.MaxItems > 0 {
			add(wec.EcSubscriptionDeliveryMaxItems, wec.NewUInt32Variant(s.MaxItems))
		}
		if s.MaxLatency > 0 {
			add(wec.EcSubscriptionDeliveryMaxLatencyTime, wec.NewUInt32Variant(uint32(s.MaxLatency.Milliseconds())))
		}
		if s.Heartbeat > 0 {
			add(wec.EcSubscriptionHeartbeatInterval, wec.NewUInt32Variant(uint32(s.Heartbeat.Milliseconds())))
		}
	}
	add(wec.EcSubscriptionContentFormat, wec.NewUInt32Variant(uint32(format)))
	add(wec.EcSubscriptionReadExistingEvents, wec.NewBoolVariant(s.ReadExistingEvents))
	if s.TransportPort > 0 {
		add(wec.EcSubscriptionTransportPort, wec.NewUInt32Variant(s.TransportPort))
	}
	if s.CredentialsType != "" {
		creds, err := resolve("credentials type", credentialsTypes, s.CredentialsType)
		if err != nil {
			return nil, err
		}
		add(wec.EcSubscriptionCredentialsType, wec.NewUInt32Variant(uint32(creds)))
	}
	if !s.Expires.IsZero() {
		add(wec.EcSubscriptionExpires, wec.NewDateTimeVariant(s.Expires))
	}
	add(wec.EcSubscriptionEnabled, wec.NewBoolVariant(s.Enabled))
	return props, nil
}

// readableProperties are the scalar properties read back by Get. Passwords
// are write-only.
var readableProperties = []wec.EcSubscriptionPropertyID{
	wec.EcSubscriptionEnabled,
	wec.EcSubscriptionDescription,
	wec.EcSubscriptionURI,
	wec.EcSubscriptionConfigurationMode,
	wec.EcSubscriptionExpires,
	wec.EcSubscriptionQuery,
	wec.EcSubscriptionTransportName,
	wec.EcSubscriptionTransportPort,
	wec.EcSubscriptionDeliveryMode,
	wec.EcSubscriptionDeliveryMaxItems,
	wec.EcSubscriptionDeliveryMaxLatencyTime,
	wec.EcSubscriptionHeartbeatInterval,
	wec.EcSubscriptionLocale,
	wec.EcSubscriptionContentFormat,
	wec.EcSubscriptionLogFile,
	wec.EcSubscriptionPublisherName,
	wec.EcSubscriptionCredentialsType,
	wec.EcSubscriptionCommonUserName,
	wec.EcSubscriptionHostName,
	wec.EcSubscriptionReadExistingEvents,
	wec.EcSubscriptionDialect,
	wec.EcSubscriptionType,
	wec.EcSubscriptionAllowedSourceDomainComputers,
}

// subscriptionFromProps assembles the subscription from the decoded
// property values. Properties of unexpected type are ignored.
func subscriptionFromProps(name string, props map[wec.EcSubscriptionPropertyID]interface{}) Subscription {
	s := Subscription{Name: name}
	str := func(id wec.EcSubscriptionPropertyID) string {
		v, _ := props[id].(string)
		return v
	}
	num := func(id wec.EcSubscriptionPropertyID) (uint32, bool) {
		v, ok := props[id].(uint32)
		return v, ok
	}

	s.Enabled, _ = props[wec.EcSubscriptionEnabled].(bool)
	s.ReadExistingEvents, _ = props[wec.EcSubscriptionReadExistingEvents].(bool)
	s.Expires, _ = props[wec.EcSubscriptionExpires].(time.Time)
	s.Description = str(wec.EcSubscriptionDescription)
	s.URI = str(wec.EcSubscriptionURI)
	s.Query = str(wec.EcSubscriptionQuery)
	s.TransportName = str(wec.EcSubscriptionTransportName)
	s.Locale = str(wec.EcSubscriptionLocale)
	s.LogFile = str(wec.EcSubscriptionLogFile)
	s.PublisherName = str(wec.EcSubscriptionPublisherName)
	s.CommonUserName = str(wec.EcSubscriptionCommonUserName)
	s.HostName = str(wec.EcSubscriptionHostName)
	s.Dialect = str(wec.EcSubscriptionDialect)
	s.AllowedSourceDomainComputers = str(wec.EcSubscriptionAllowedSourceDomainComputers)

	if v, ok := num(wec.EcSubscriptionType); ok {
		s.Type = lookup(subscriptionTypes, wec.EcSubscriptionKind(v))
	}
	if v, ok := num(wec.EcSubscriptionConfigurationMode); ok {
		s.ConfigurationMode = lookup(configurationModes, wec.EcConfigurationMode(v))
	}
	if v, ok := num(wec.EcSubscriptionDeliveryMode); ok {
		s.DeliveryMode = lookup(deliveryModes, wec.EcDeliveryMode(v))
	}
	if v, ok := num(wec.EcSubscriptionContentFormat); ok {
		s.ContentFormat = lookup(contentFormats, wec.EcContentFormat(v))
	}
	if v, ok := num(wec.EcSubscriptionCredentialsType); ok {
		s.CredentialsType = lookup(credentialsTypes, wec.EcCredentialsType(v))
	}
	s.MaxItems, _ = num(wec.EcSubscriptionDeliveryMaxItems)
	s.TransportPort, _ = num(wec.EcSubscriptionTransportPort)
	if v, ok := num(wec.EcSubscriptionDeliveryMaxLatencyTime); ok {
		s.MaxLatency = time.Duration(v) * time.Millisecond
	}
	if v, ok := num(wec.EcSubscriptionHeartbeatInterval); ok {
		s.Heartbeat = time.Duration(v) * time.Millisecond
	}
	return s
}
