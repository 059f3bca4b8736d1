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
	"context"
	"testing"
	"time"

	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/wec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	c, f := newTestCollector()
	f.status["forwarded-security"] = &fakeStatus{
		actives: []uint32{uint32(wec.EcRuntimeStatusActiveStatusActive)},
		sources: map[string]map[wec.EcSubscriptionRuntimeStatusInfoID]interface{}{
			"dc01.corp.example.com": {
				wec.EcSubscriptionRunTimeStatusActive:            uint32(wec.EcRuntimeStatusActiveStatusActive),
				wec.EcSubscriptionRunTimeStatusLastHeartbeatTime: heartbeat,
			},
		},
	}

	st, err := c.Status("forwarded-security")
	require.NoError(t, err)
	assert.Equal(t, wec.EcRuntimeStatusActiveStatusActive, st.Active)
	assert.Empty(t, st.ErrorName())
	require.Len(t, st.Sources, 1)
	assert.Equal(t, "dc01.corp.example.com", st.Sources[0].Source)
	assert.Equal(t, heartbeat, st.Sources[0].LastHeartbeat)
	assert.Equal(t, "Active", st.Sources[0].Active.String())
}

func TestStatusLastError(t *testing.T) {
	c, f := newTestCollector()
	f.status["forwarded-security"] = &fakeStatus{
		actives: []uint32{uint32(wec.EcRuntimeStatusActiveStatusTrying)},
		values: map[wec.EcSubscriptionRuntimeStatusInfoID]interface{}{
			wec.EcSubscriptionRunTimeStatusLastError:        uint32(wec.ERROR_EC_CRED_NOT_FOUND),
			wec.EcSubscriptionRunTimeStatusLastErrorMessage: "credentials not found",
			wec.EcSubscriptionRunTimeStatusNextRetryTime:    heartbeat.Add(time.Minute),
		},
	}

	st, err := c.Status("forwarded-security")
	require.NoError(t, err)
	assert.Equal(t, "Trying", st.Active.String())
	assert.Equal(t, "ERROR_EC_CRED_NOT_FOUND", st.ErrorName())
	assert.Equal(t, "credentials not found", st.LastErrorMessage)
	assert.Equal(t, heartbeat.Add(time.Minute), st.NextRetryTime)
	assert.Empty(t, st.Sources)
}

func TestStatusNotFound(t *testing.T) {
	c, _ := newTestCollector()
	_, err := c.Status("missing")
	require.Error(t, err)
	assert.True(t, errs.IsSubscriptionNotFound(err))
}

func TestWaitActive(t *testing.T) {
	var tests = []struct {
		name    string
		actives []uint32
		err     bool
	}{
		{
			"becomes active",
			[]uint32{
				uint32(wec.EcRuntimeStatusActiveStatusTrying),
				uint32(wec.EcRuntimeStatusActiveStatusInactive),
				uint32(wec.EcRuntimeStatusActiveStatusActive),
			},
			false,
		},
		{"disabled", []uint32{uint32(wec.EcRuntimeStatusActiveStatusDisabled)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, f := newTestCollector()
			f.status["forwarded-security"] = &fakeStatus{actives: tt.actives}
			st, err := c.WaitActive(context.Background(), "forwarded-security")
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, wec.EcRuntimeStatusActiveStatusActive, st.Active)
			assert.Equal(t, []uint32{uint32(wec.EcRuntimeStatusActiveStatusActive)}, f.status["forwarded-security"].actives)
		})
	}
}

func TestWaitActiveGivesUp(t *testing.T) {
	c, f := newTestCollector()
	c.cfg.Retry.MaxElapsed = 20 * time.Millisecond
	f.status["forwarded-security"] = &fakeStatus{actives: []uint32{uint32(wec.EcRuntimeStatusActiveStatusTrying)}}

	st, err := c.WaitActive(context.Background(), "forwarded-security")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is Trying")
	assert.Equal(t, wec.EcRuntimeStatusActiveStatusTrying, st.Active)
}

func TestWaitActiveCanceled(t *testing.T) {
	c, f := newTestCollector()
	c.cfg.Retry.MaxElapsed = time.Minute
	f.status["forwarded-security"] = &fakeStatus{actives: []uint32{uint32(wec.EcRuntimeStatusActiveStatusTrying)}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.WaitActive(ctx, "forwarded-security")
	require.Error(t, err)
}

func TestWaitActiveNotFound(t *testing.T) {
	c, _ := newTestCollector()
	_, err := c.WaitActive(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errs.IsSubscriptionNotFound(err))
}
