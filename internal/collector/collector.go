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

// Package collector manages Windows Event Collector subscriptions.
package collector

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/config"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/wec"
	"github.com/rabbitstack/wincall/pkg/util/wildcard"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// Collector reads and writes subscriptions on the local event collector service.
type Collector struct {
	api ecAPI
	cfg config.WECConfig
}

// New creates the collector for the local event collector service.
func New(cfg config.WECConfig) *Collector {
	return &Collector{api: sysCollector{}, cfg: cfg}
}

// notFound maps the collector's lookup failures to ErrSubscriptionNotFound.
func notFound(name string, err error) error {
	if errors.Is(err, windows.ERROR_NOT_FOUND) || errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
		return errs.ErrSubscriptionNotFound{Name: name}
	}
	return err
}

// List returns the names of every subscription.
func (c *Collector) List() ([]string, error) {
	return c.api.subscriptions()
}

// Find returns the names of the subscriptions matching the wildcard pattern.
func (c *Collector) Find(pattern string) ([]string, error) {
	names, err := c.api.subscriptions()
	if err != nil {
		return nil, err
	}
	return wildcard.Filter(pattern, names), nil
}

// Get reads the subscription along with its event sources.
func (c *Collector) Get(name string) (*Subscription, error) {
	h, err := c.api.open(name, wec.EcReadAccess, wec.EcOpenExisting)
	if err != nil {
		return nil, errors.Wrapf(notFound(name, err), "EcOpenSubscription(%s)", name)
	}
	defer c.close(h)

	props := make(map[wec.EcSubscriptionPropertyID]interface{}, len(readableProperties))
	for _, id := range readableProperties {
		v, err := c.api.property(h, id)
		if err != nil {
			log.Debugf("unable to read %s property of %s subscription: %v", id, name, err)
			continue
		}
		props[id] = v
	}
	sub := subscriptionFromProps(name, props)

	sources, err := c.eventSources(h)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read event sources of %s", name)
	}
	sub.EventSources = sources
	return &sub, nil
}

func (c *Collector) sourcesHandle(h wec.EcHandle) (wec.EcObjectArrayPropertyHandle, error) {
	v, err := c.api.property(h, wec.EcSubscriptionEventSources)
	if err != nil {
		return 0, err
	}
	arr, ok := v.(wec.EcObjectArrayPropertyHandle)
	if !ok {
		return 0, fmt.Errorf("event sources property has unexpected type %T", v)
	}
	return arr, nil
}

func (c *Collector) eventSources(h wec.EcHandle) ([]EventSource, error) {
	arr, err := c.sourcesHandle(h)
	if err != nil {
		return nil, err
	}
	defer c.close(wec.EcHandle(arr))
	n, err := c.api.arraySize(arr)
	if err != nil {
		return nil, err
	}
	sources := make([]EventSource, 0, n)
	for i := uint32(0); i < n; i++ {
		var src EventSource
		if v, err := c.api.arrayProperty(arr, wec.EcSubscriptionEventSourceAddress, i); err == nil {
			src.Address, _ = v.(string)
		}
		if v, err := c.api.arrayProperty(arr, wec.EcSubscriptionEventSourceEnabled, i); err == nil {
			src.Enabled, _ = v.(bool)
		}
		if v, err := c.api.arrayProperty(arr, wec.EcSubscriptionEventSourceUserName, i); err == nil {
			src.UserName, _ = v.(string)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Apply creates the subscription or updates the existing one to match the
// definition. The event sources of a collector initiated subscription are
// replaced with the ones in the definition.
func (c *Collector) Apply(sub Subscription) error {
	if sub.Name == "" {
		return errors.New("subscription name is required")
	}
	props, err := sub.properties()
	if err != nil {
		return errors.Wrapf(err, "invalid %s subscription", sub.Name)
	}
	h, err := c.api.open(sub.Name, wec.EcReadAccess|wec.EcWriteAccess, wec.EcOpenAlways)
	if err != nil {
		return errors.Wrapf(err, "EcOpenSubscription(%s)", sub.Name)
	}
	defer c.close(h)

	for _, p := range props {
		if err := c.api.setProperty(h, p.id, p.value); err != nil {
			return errors.Wrapf(err, "unable to set %s property of %s", p.id, sub.Name)
		}
	}
	if sub.Type == TypeCollectorInitiated {
		if err := c.replaceSources(h, sub.EventSources); err != nil {
			return errors.Wrapf(err, "unable to set event sources of %s", sub.Name)
		}
	} else if len(sub.EventSources) > 0 {
		log.Warnf("ignoring event sources of source initiated subscription %s", sub.Name)
	}
	if err := c.api.save(h); err != nil {
		return errors.Wrapf(err, "EcSaveSubscription(%s)", sub.Name)
	}
	log.Infof("applied %s subscription", sub.Name)
	return nil
}

func (c *Collector) replaceSources(h wec.EcHandle, sources []EventSource) error {
	arr, err := c.sourcesHandle(h)
	if err != nil {
		return err
	}
	defer c.close(wec.EcHandle(arr))
	n, err := c.api.arraySize(arr)
	if err != nil {
		return err
	}
	for i := n; i > 0; i-- {
		if err := c.api.removeElement(arr, i-1); err != nil {
			return errors.Wrap(err, "EcRemoveObjectArrayElement")
		}
	}
	for i, src := range sources {
		idx := uint32(i)
		if err := c.api.insertElement(arr, idx); err != nil {
			return errors.Wrap(err, "EcInsertObjectArrayElement")
		}
		addr, err := wec.NewStringVariant(src.Address)
		if err != nil {
			return err
		}
		writes := []property{
			{wec.EcSubscriptionEventSourceAddress, addr},
			{wec.EcSubscriptionEventSourceEnabled, wec.NewBoolVariant(src.Enabled)},
		}
		if src.UserName != "" {
			user, err := wec.NewStringVariant(src.UserName)
			if err != nil {
				return err
			}
			pass, err := wec.NewStringVariant(src.Password)
			if err != nil {
				return err
			}
			writes = append(writes,
				property{wec.EcSubscriptionEventSourceUserName, user},
				property{wec.EcSubscriptionEventSourcePassword, pass},
			)
		}
		for _, w := range writes {
			if err := c.api.setArrayProperty(arr, w.id, idx, w.value); err != nil {
				return errors.Wrapf(err, "unable to set %s of %s", w.id, src.Address)
			}
		}
	}
	return nil
}

// Delete removes the subscription.
func (c *Collector) Delete(name string) error {
	if err := c.api.delete(name); err != nil {
		return errors.Wrapf(notFound(name, err), "EcDeleteSubscription(%s)", name)
	}
	return nil
}

// Retry reactivates the subscription for the given event sources, or for
// every source when none are given.
func (c *Collector) Retry(name string, sources ...string) error {
	if len(sources) == 0 {
		sources = []string{""}
	}
	for _, src := range sources {
		if err := c.api.retry(name, src); err != nil {
			err = notFound(name, err)
			if src == "" {
				return errors.Wrapf(err, "EcRetrySubscription(%s)", name)
			}
			return errors.Wrapf(err, "EcRetrySubscription(%s, %s)", name, src)
		}
	}
	return nil
}

func (c *Collector) close(h wec.EcHandle) {
	if err := c.api.close(h); err != nil {
		log.Warnf("unable to close event collector handle: %v", err)
	}
}
