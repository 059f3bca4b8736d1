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
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/wec"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// RuntimeStatus is the runtime state of a subscription or one of its event sources.
type RuntimeStatus struct {
	Active           wec.EcSubscriptionRuntimeStatusActiveStatus
	LastError        uint32
	LastErrorMessage string
	LastErrorTime    time.Time
	NextRetryTime    time.Time
	LastHeartbeat    time.Time
}

// ErrorName returns the symbolic name of the last error, if any.
func (r RuntimeStatus) ErrorName() string {
	if r.LastError == 0 {
		return ""
	}
	if name := wec.ErrorName(windows.Errno(r.LastError)); name != "" {
		return name
	}
	return windows.Errno(r.LastError).Error()
}

// SourceStatus is the runtime state of a single event source.
type SourceStatus struct {
	Source string
	RuntimeStatus
}

// Status is the runtime state of a subscription and each of its event sources.
type Status struct {
	Name string
	RuntimeStatus
	Sources []SourceStatus
}

// Status reads the overall runtime state followed by the state of every
// event source the collector knows about.
func (c *Collector) Status(name string) (*Status, error) {
	overall, err := c.runtimeStatus(name, "")
	if err != nil {
		return nil, err
	}
	st := &Status{Name: name, RuntimeStatus: *overall}

	v, err := c.api.runtimeStatus(name, wec.EcSubscriptionRunTimeStatusEventSources, "")
	if err != nil {
		log.Debugf("unable to read event sources of %s: %v", name, err)
		return st, nil
	}
	sources, _ := v.([]string)
	for _, src := range sources {
		rs, err := c.runtimeStatus(name, src)
		if err != nil {
			log.Warnf("unable to read runtime status of %s for %s: %v", name, src, err)
			continue
		}
		st.Sources = append(st.Sources, SourceStatus{Source: src, RuntimeStatus: *rs})
	}
	return st, nil
}

func (c *Collector) runtimeStatus(name, source string) (*RuntimeStatus, error) {
	v, err := c.api.runtimeStatus(name, wec.EcSubscriptionRunTimeStatusActive, source)
	if err != nil {
		return nil, errors.Wrapf(notFound(name, err), "EcGetSubscriptionRunTimeStatus(%s)", name)
	}
	active, _ := v.(uint32)
	rs := &RuntimeStatus{Active: wec.EcSubscriptionRuntimeStatusActiveStatus(active)}

	for _, f := range []struct {
		id  wec.EcSubscriptionRuntimeStatusInfoID
		set func(interface{})
	}{
		{wec.EcSubscriptionRunTimeStatusLastError, func(v interface{}) { rs.LastError, _ = v.(uint32) }},
		{wec.EcSubscriptionRunTimeStatusLastErrorMessage, func(v interface{}) { rs.LastErrorMessage, _ = v.(string) }},
		{wec.EcSubscriptionRunTimeStatusLastErrorTime, func(v interface{}) { rs.LastErrorTime, _ = v.(time.Time) }},
		{wec.EcSubscriptionRunTimeStatusNextRetryTime, func(v interface{}) { rs.NextRetryTime, _ = v.(time.Time) }},
		{wec.EcSubscriptionRunTimeStatusLastHeartbeatTime, func(v interface{}) { rs.LastHeartbeat, _ = v.(time.Time) }},
	} {
		v, err := c.api.runtimeStatus(name, f.id, source)
		if err != nil {
			continue
		}
		f.set(v)
	}
	return rs, nil
}

// WaitActive polls the subscription until it becomes active. Polling backs
// off exponentially within the configured intervals and gives up once the
// maximum elapsed time passes. Disabled and unknown subscriptions fail right away.
func (c *Collector) WaitActive(ctx context.Context, name string) (*Status, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.Retry.InitialInterval
	b.MaxInterval = c.cfg.Retry.MaxInterval
	b.MaxElapsedTime = c.cfg.Retry.MaxElapsed
	b.Reset()

	var st *Status
	op := func() error {
		var err error
		st, err = c.Status(name)
		if err != nil {
			if errs.IsSubscriptionNotFound(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		switch st.Active {
		case wec.EcRuntimeStatusActiveStatusActive:
			return nil
		case wec.EcRuntimeStatusActiveStatusDisabled:
			return backoff.Permanent(fmt.Errorf("subscription %s is disabled", name))
		}
		return fmt.Errorf("subscription %s is %s", name, st.Active)
	}
	notify := func(err error, next time.Duration) {
		log.Debugf("%v, checking again in %v", err, next)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return st, err
	}
	return st, nil
}
