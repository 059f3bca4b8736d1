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
	"fmt"
	"time"

	fsm "github.com/qmuntal/stateless"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
)

// CallState is one of the LINECALLSTATE_* values.
type CallState uint32

// String returns the symbolic name of the call state.
func (s CallState) String() string {
	if name, ok := tapi.CallStateNames[uint32(s)]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", uint32(s))
}

const (
	Idle               = CallState(tapi.LINECALLSTATE_IDLE)
	Offering           = CallState(tapi.LINECALLSTATE_OFFERING)
	Accepted           = CallState(tapi.LINECALLSTATE_ACCEPTED)
	Dialtone           = CallState(tapi.LINECALLSTATE_DIALTONE)
	Dialing            = CallState(tapi.LINECALLSTATE_DIALING)
	Ringback           = CallState(tapi.LINECALLSTATE_RINGBACK)
	Busy               = CallState(tapi.LINECALLSTATE_BUSY)
	SpecialInfo        = CallState(tapi.LINECALLSTATE_SPECIALINFO)
	Connected          = CallState(tapi.LINECALLSTATE_CONNECTED)
	Proceeding         = CallState(tapi.LINECALLSTATE_PROCEEDING)
	OnHold             = CallState(tapi.LINECALLSTATE_ONHOLD)
	Conferenced        = CallState(tapi.LINECALLSTATE_CONFERENCED)
	OnHoldPendConf     = CallState(tapi.LINECALLSTATE_ONHOLDPENDCONF)
	OnHoldPendTransfer = CallState(tapi.LINECALLSTATE_ONHOLDPENDTRANSFER)
	Disconnected       = CallState(tapi.LINECALLSTATE_DISCONNECTED)
	Unknown            = CallState(tapi.LINECALLSTATE_UNKNOWN)
)

// transitions lists the states reachable from each state. Idle, Disconnected
// and Unknown are reachable from everywhere and Unknown reaches everything.
var transitions = map[CallState][]CallState{
	Idle:               {Offering, Dialtone, Dialing, Proceeding},
	Offering:           {Accepted, Connected},
	Accepted:           {Connected},
	Dialtone:           {Dialing},
	Dialing:            {Proceeding, Ringback, Busy, SpecialInfo, Connected},
	Proceeding:         {Ringback, Busy, SpecialInfo, Connected},
	Ringback:           {Busy, Connected},
	Busy:               {},
	SpecialInfo:        {},
	Connected:          {OnHold, OnHoldPendConf, OnHoldPendTransfer, Conferenced},
	OnHold:             {Connected},
	OnHoldPendConf:     {Connected, Conferenced, Dialtone},
	OnHoldPendTransfer: {Connected, Dialtone},
	Conferenced:        {Connected, OnHold},
	Disconnected:       {},
	Unknown:            {},
}

// permitted returns every legal destination from the given state.
func permitted(from CallState) []CallState {
	if from == Unknown {
		states := make([]CallState, 0, len(transitions)-1)
		for s := range transitions {
			if s != Unknown {
				states = append(states, s)
			}
		}
		return states
	}
	dests := append([]CallState{}, transitions[from]...)
	for _, s := range []CallState{Idle, Disconnected, Unknown} {
		if s != from && !containsState(dests, s) {
			dests = append(dests, s)
		}
	}
	return dests
}

func containsState(states []CallState, s CallState) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}

// Transition describes a call state change observed on a monitored line.
type Transition struct {
	Call tapi.HCall
	From CallState
	To   CallState
	// Mode carries the LINECONNECTEDMODE, LINEDISCONNECTMODE or LINEOFFERINGMODE
	// value accompanying the new state.
	Mode uint32
	// New is set for the first state observed on the call.
	New bool
	// Err is set when the state change isn't legal. The state machine
	// stays in From in that case.
	Err error

	CallerID string
	CalledID string
	At       time.Time
}

// Applied determines if the transition moved the state machine.
func (t Transition) Applied() bool { return t.Err == nil }

// IllegalTransitionError is returned when the provider reports a state that
// can't follow the current one.
type IllegalTransitionError struct {
	Call tapi.HCall
	From CallState
	To   CallState
}

// Error returns the error message.
func (e IllegalTransitionError) Error() string {
	return fmt.Sprintf("call 0x%X: illegal transition from %s to %s", uint32(e.Call), e.From, e.To)
}

// CallStateMachine tracks the state of a single call. The trigger of each
// transition is the destination state itself.
type CallStateMachine struct {
	call tapi.HCall
	fsm  *fsm.StateMachine
}

// NewCallStateMachine builds the state machine for the call seeded with the
// first state observed for it.
func NewCallStateMachine(call tapi.HCall, initial CallState) *CallStateMachine {
	m := &CallStateMachine{call: call, fsm: fsm.NewStateMachine(initial)}
	for from := range transitions {
		sc := m.fsm.Configure(from)
		for _, to := range permitted(from) {
			sc.Permit(to, to)
		}
	}
	return m
}

// State returns the current call state.
func (m *CallStateMachine) State() CallState {
	return m.fsm.MustState().(CallState)
}

// CanTransition determines if the call can move into the given state.
func (m *CallStateMachine) CanTransition(to CallState) bool {
	from := m.State()
	return from == to || containsState(permitted(from), to)
}

// Fire moves the call into the given state. Repeating the current state is
// accepted since providers report mode changes that way. Illegal state
// changes leave the machine untouched and yield an IllegalTransitionError.
func (m *CallStateMachine) Fire(to CallState) error {
	from := m.State()
	if from == to {
		return nil
	}
	if _, known := transitions[to]; !known {
		return IllegalTransitionError{Call: m.call, From: from, To: to}
	}
	if err := m.fsm.Fire(to); err != nil {
		return IllegalTransitionError{Call: m.call, From: from, To: to}
	}
	return nil
}
