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
	"sort"
	"testing"
	"time"

	"github.com/rabbitstack/wincall/pkg/config"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/wec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.WECConfig {
	return config.WECConfig{
		Retry: config.RetryConfig{
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			MaxElapsed:      time.Second,
		},
		DeliveryMode:  "pull",
		ContentFormat: "events",
	}
}

func newTestCollector() (*Collector, *fakeCollector) {
	f := newFakeCollector()
	return &Collector{api: f, cfg: testConfig()}, f
}

func forwardedSecurity() Subscription {
	return Subscription{
		Name:              "forwarded-security",
		Description:       "Security events of the domain controllers",
		Enabled:           true,
		Type:              TypeCollectorInitiated,
		URI:               defaultURI,
		Query:             `<QueryList><Query Id="0"><Select Path="Security">*</Select></Query></QueryList>`,
		LogFile:           defaultLogFile,
		ConfigurationMode: ModeCustom,
		DeliveryMode:      "push",
		MaxItems:          20,
		MaxLatency:        30 * time.Second,
		Heartbeat:         15 * time.Minute,
		ContentFormat:     "rendered-text",
		TransportName:     "http",
		TransportPort:     5985,
		CredentialsType:   "negotiate",
		EventSources: []EventSource{
			{Address: "dc01.corp.example.com", Enabled: true},
			{Address: "dc02.corp.example.com", Enabled: false, UserName: `CORP\svc-wec`, Password: "secret"},
		},
	}
}

func TestApplyAndGet(t *testing.T) {
	c, f := newTestCollector()
	def := forwardedSecurity()
	require.NoError(t, c.Apply(def))

	require.Contains(t, f.subs, def.Name)
	fs := f.subs[def.Name]
	assert.Equal(t, 1, fs.saved)
	assert.Equal(t, "secret", fs.sources[1][wec.EcSubscriptionEventSourcePassword])
	assert.Equal(t, wec.EcSubscriptionEnabled, f.writes[len(f.writes)-1])
	assert.Empty(t, f.handles)
	assert.Equal(t, uint32(wec.EcDeliveryModePush), fs.props[wec.EcSubscriptionDeliveryMode])
	assert.Equal(t, uint32(20), fs.props[wec.EcSubscriptionDeliveryMaxItems])
	assert.Equal(t, uint32(30000), fs.props[wec.EcSubscriptionDeliveryMaxLatencyTime])
	assert.Equal(t, uint32(900000), fs.props[wec.EcSubscriptionHeartbeatInterval])

	sub, err := c.Get(def.Name)
	require.NoError(t, err)
	def.EventSources[1].Password = ""
	assert.Equal(t, def, *sub)
}

func TestApplyReplacesSources(t *testing.T) {
	c, f := newTestCollector()
	def := forwardedSecurity()
	require.NoError(t, c.Apply(def))

	def.EventSources = []EventSource{{Address: "dc03.corp.example.com", Enabled: true}}
	require.NoError(t, c.Apply(def))

	fs := f.subs[def.Name]
	require.Len(t, fs.sources, 1)
	assert.Equal(t, "dc03.corp.example.com", fs.sources[0][wec.EcSubscriptionEventSourceAddress])
	assert.Equal(t, 2, fs.saved)
}

func TestApplySourceInitiated(t *testing.T) {
	c, f := newTestCollector()
	def := Subscription{
		Name:              "workstations",
		Enabled:           true,
		Type:              TypeSourceInitiated,
		Query:             "*",
		ConfigurationMode: ModeMinLatency,
		DeliveryMode:      "push",
		ContentFormat:     "events",
		EventSources:      []EventSource{{Address: "ignored"}},
	}
	def.AllowedSourceDomainComputers = "O:NSG:NSD:(A;;GA;;;DC)"
	require.NoError(t, c.Apply(def))

	fs := f.subs["workstations"]
	assert.Empty(t, fs.sources)
	assert.Equal(t, uint32(wec.EcSubscriptionTypeSourceInitiated), fs.props[wec.EcSubscriptionType])
	assert.Equal(t, uint32(wec.EcConfigurationModeMinLatency), fs.props[wec.EcSubscriptionConfigurationMode])
	assert.NotContains(t, fs.props, wec.EcSubscriptionDeliveryMode)
	assert.NotContains(t, fs.props, wec.EcSubscriptionDeliveryMaxItems)
	assert.Equal(t, "O:NSG:NSD:(A;;GA;;;DC)", fs.props[wec.EcSubscriptionAllowedSourceDomainComputers])
}

func TestApplyInvalid(t *testing.T) {
	c, f := newTestCollector()
	var tests = []struct {
		name string
		sub  Subscription
	}{
		{"no name", Subscription{Type: TypeCollectorInitiated, ConfigurationMode: ModeNormal, ContentFormat: "events"}},
		{"bad type", Subscription{Name: "a", Type: "pushed", ConfigurationMode: ModeNormal, ContentFormat: "events"}},
		{"bad mode", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: "fast", ContentFormat: "events"}},
		{"bad delivery", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: ModeCustom, DeliveryMode: "mail", ContentFormat: "events"}},
		{"bad format", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: ModeNormal, ContentFormat: "xml"}},
		{"bad credentials", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: ModeNormal, ContentFormat: "events", CredentialsType: "kerberos"}},
		{"tuning in normal mode", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: ModeNormal, ContentFormat: "events", MaxItems: 5}},
		{"tuning in min-latency mode", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: ModeMinLatency, ContentFormat: "events", MaxLatency: time.Second}},
		{"tuning in min-bandwidth mode", Subscription{Name: "a", Type: TypeCollectorInitiated, ConfigurationMode: ModeMinBandwidth, ContentFormat: "events", Heartbeat: time.Minute}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, c.Apply(tt.sub))
		})
	}
	assert.Empty(t, f.subs)
}

func TestGetNotFound(t *testing.T) {
	c, _ := newTestCollector()
	_, err := c.Get("missing")
	require.Error(t, err)
	assert.True(t, errs.IsSubscriptionNotFound(err))
}

func TestListAndDelete(t *testing.T) {
	c, _ := newTestCollector()
	require.NoError(t, c.Apply(forwardedSecurity()))
	def := forwardedSecurity()
	def.Name = "forwarded-system"
	require.NoError(t, c.Apply(def))

	names, err := c.List()
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"forwarded-security", "forwarded-system"}, names)

	names, err = c.Find("Forwarded-Sys*")
	require.NoError(t, err)
	assert.Equal(t, []string{"forwarded-system"}, names)

	require.NoError(t, c.Delete("forwarded-system"))
	err = c.Delete("forwarded-system")
	require.Error(t, err)
	assert.True(t, errs.IsSubscriptionNotFound(err))

	names, err = c.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"forwarded-security"}, names)
}

func TestRetry(t *testing.T) {
	c, f := newTestCollector()
	require.NoError(t, c.Apply(forwardedSecurity()))

	require.NoError(t, c.Retry("forwarded-security"))
	require.NoError(t, c.Retry("forwarded-security", "dc01.corp.example.com", "dc02.corp.example.com"))
	assert.Equal(t, []string{
		"forwarded-security/",
		"forwarded-security/dc01.corp.example.com",
		"forwarded-security/dc02.corp.example.com",
	}, f.retried)

	err := c.Retry("missing")
	require.Error(t, err)
	assert.True(t, errs.IsSubscriptionNotFound(err))
}

func TestSubscriptionFromProps(t *testing.T) {
	sub := subscriptionFromProps("legacy", map[wec.EcSubscriptionPropertyID]interface{}{
		wec.EcSubscriptionEnabled:           false,
		wec.EcSubscriptionType:              uint32(7),
		wec.EcSubscriptionConfigurationMode: uint32(wec.EcConfigurationModeMinBandwidth),
		wec.EcSubscriptionQuery:             nil,
		wec.EcSubscriptionHeartbeatInterval: uint32(21600000),
		wec.EcSubscriptionDescription:       uint32(1),
	})
	assert.Equal(t, "legacy", sub.Name)
	assert.False(t, sub.Enabled)
	assert.Equal(t, "7", sub.Type)
	assert.Equal(t, ModeMinBandwidth, sub.ConfigurationMode)
	assert.Equal(t, 6*time.Hour, sub.Heartbeat)
	assert.Empty(t, sub.Query)
	assert.Empty(t, sub.Description)
}
