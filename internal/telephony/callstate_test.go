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

package telephony

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStateString(t *testing.T) {
	assert.Equal(t, "OFFERING", Offering.String())
	assert.Equal(t, "ONHOLDPENDTRANSFER", OnHoldPendTransfer.String())
	assert.Equal(t, "0x30000", CallState(0x30000).String())
}

func TestCallStateMachine(t *testing.T) {
	var tests = []struct {
		name    string
		initial CallState
		path    []CallState
		want    CallState
		illegal bool
	}{
		{"inbound answered", Idle, []CallState{Offering, Accepted, Connected, Disconnected, Idle}, Idle, false},
		{"outbound busy", Idle, []CallState{Dialtone, Dialing, Proceeding, Busy, Disconnected}, Disconnected, false},
		{"outbound ringback", Dialing, []CallState{Ringback, Connected, OnHold, Connected}, Connected, false},
		{"conference", Connected, []CallState{OnHoldPendConf, Dialtone, Dialing, Connected, Conferenced}, Conferenced, false},
		{"transfer", Connected, []CallState{OnHoldPendTransfer, Dialtone}, Dialtone, false},
		{"reentry", Connected, []CallState{Connected, Connected}, Connected, false},
		{"unknown recovers", Unknown, []CallState{Ringback}, Ringback, false},
		{"any to unknown", Conferenced, []CallState{Unknown}, Unknown, false},
		{"idle to connected", Idle, []CallState{Connected}, Idle, true},
		{"dialtone to ringback", Dialtone, []CallState{Ringback}, Dialtone, true},
		{"disconnected to connected", Disconnected, []CallState{Connected}, Disconnected, true},
		{"busy to connected", Busy, []CallState{Connected}, Busy, true},
		{"unrecognized state", Offering, []CallState{CallState(0x10000)}, Offering, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCallStateMachine(tapi.HCall(0x301), tt.initial)
			var err error
			for _, s := range tt.path {
				if err = m.Fire(s); err != nil {
					break
				}
			}
			if tt.illegal {
				require.Error(t, err)
				var e IllegalTransitionError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, tt.want, e.From)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, m.State())
		})
	}
}

func TestCanTransition(t *testing.T) {
	m := NewCallStateMachine(tapi.HCall(1), Idle)
	assert.True(t, m.CanTransition(Offering))
	assert.True(t, m.CanTransition(Idle))
	assert.True(t, m.CanTransition(Unknown))
	assert.False(t, m.CanTransition(Connected))
	assert.False(t, m.CanTransition(OnHold))
}

func TestIllegalTransitionError(t *testing.T) {
	err := IllegalTransitionError{Call: 0x1F, From: Idle, To: Conferenced}
	assert.Equal(t, "call 0x1F: illegal transition from IDLE to CONFERENCED", err.Error())
}
