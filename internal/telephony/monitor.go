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
	"context"
	"sync/atomic"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/config"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrMonitorRunning is returned when a monitor is already attached to the session.
var ErrMonitorRunning = errors.New("a line monitor is already running on this session")

// maxTrackedCalls bounds the number of call state machines kept per line.
// Calls that never report the idle state are evicted oldest first.
var maxTrackedCalls = 256

// monitor holds the per-call state machines of a monitored line.
type monitor struct {
	s      *Session
	device uint32
	line   tapi.HLine
	calls  *lru.Cache
	fn     func(Transition)
	now    func() time.Time
}

// Monitor opens the line device with monitor privileges and dispatches the
// call state changes it observes to fn until the context is canceled or the
// line is closed by the provider. Messages are drained from the application
// queue at the configured poll rate.
func (s *Session) Monitor(ctx context.Context, deviceID uint32, fn func(Transition)) error {
	if !atomic.CompareAndSwapUint32(&s.monitoring, 0, 1) {
		return ErrMonitorRunning
	}
	defer atomic.StoreUint32(&s.monitoring, 0)

	ver, err := s.negotiate(deviceID)
	if err != nil {
		return err
	}
	line, err := s.api.open(s.app, deviceID, ver, 0, tapi.LINECALLPRIVILEGE_MONITOR, tapi.LINEMEDIAMODE_INTERACTIVEVOICE)
	if err != nil {
		return errors.Wrapf(err, "lineOpen(%d)", deviceID)
	}
	defer func() {
		if err := s.api.close(line); err != nil {
			log.Warnf("unable to close line device %d: %v", deviceID, err)
		}
	}()
	if err := s.api.setStatusMessages(line, tapi.LINEDEVSTATE_ALL, tapi.LINEADDRESSSTATE_ALL); err != nil {
		log.Warnf("unable to enable status messages on line device %d: %v", deviceID, err)
	}

	m := &monitor{
		s:      s,
		device: deviceID,
		line:   line,
		calls:  lru.New(maxTrackedCalls),
		fn:     fn,
		now:    time.Now,
	}
	m.calls.OnEvicted = m.release
	// calls still tracked when the monitor stops are released before the line closes
	defer m.calls.Clear()
	burst := s.cfg.PollBurst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(s.cfg.PollRate), burst)
	timeout := uint32(s.cfg.MessageTimeout / time.Millisecond)

	log.Infof("monitoring line device %d (API version %s)", deviceID, config.FormatAPIVersion(ver))

	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		msg, err := s.api.getMessage(s.app, timeout)
		if err != nil {
			if errors.Is(err, tapi.LINEERR_OPERATIONFAILED) {
				// no message queued within the timeout
				continue
			}
			return errors.Wrap(err, "lineGetMessage")
		}
		if err := m.dispatch(msg); err != nil {
			return err
		}
	}
}

func (m *monitor) dispatch(msg *tapi.LineMessage) error {
	switch msg.MessageID {
	case tapi.LINE_CALLSTATE:
		m.callState(tapi.HCall(msg.Device), CallState(msg.Param1), uint32(msg.Param2))
	case tapi.LINE_CLOSE:
		return errs.ErrMonitorClosed(m.device)
	case tapi.LINE_APPNEWCALL:
		log.Debugf("new call 0x%X on address %d", uint32(msg.Param2), uint32(msg.Param1))
	case tapi.LINE_REPLY:
		log.Debugf("reply to request %d: 0x%X", uint32(msg.Param1), uint32(msg.Param2))
	default:
		log.Debugf("%s message on device 0x%X", tapi.MessageName(msg.MessageID), msg.Device)
	}
	return nil
}

func (m *monitor) callState(call tapi.HCall, state CallState, mode uint32) {
	t := Transition{Call: call, To: state, Mode: mode, At: m.now()}
	if v, ok := m.calls.Get(call); ok {
		sm := v.(*CallStateMachine)
		t.From = sm.State()
		t.Err = sm.Fire(state)
	} else {
		m.calls.Add(call, NewCallStateMachine(call, state))
		t.From, t.New = state, true
		t.CallerID, t.CalledID = m.parties(call)
	}
	if t.Err != nil {
		log.Warn(t.Err)
	}
	if m.fn != nil {
		m.fn(t)
	}
	if t.Err == nil && state == Idle {
		m.calls.Remove(call)
	}
}

// release frees the call handle once its state machine leaves the cache.
func (m *monitor) release(key lru.Key, _ interface{}) {
	call := key.(tapi.HCall)
	if err := m.s.api.deallocateCall(call); err != nil {
		log.Warnf("unable to deallocate call 0x%X: %v", uint32(call), err)
	}
}

// parties resolves the caller and called numbers of the call.
func (m *monitor) parties(call tapi.HCall) (string, string) {
	b, err := m.s.api.callInfo(call)
	if err != nil {
		log.Debugf("unable to get info of call 0x%X: %v", uint32(call), err)
		return "", ""
	}
	ci := b.Ptr()
	return b.String(ci.CallerIDOffset, ci.CallerIDSize, tapi.STRINGFORMAT_UNICODE),
		b.String(ci.CalledIDOffset, ci.CalledIDSize, tapi.STRINGFORMAT_UNICODE)
}
