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

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	wecRetryInitialInterval = "wec.retry.initial-interval"
	wecRetryMaxInterval     = "wec.retry.max-interval"
	wecRetryMaxElapsed      = "wec.retry.max-elapsed"
	wecDeliveryMode         = "wec.delivery-mode"
	wecContentFormat        = "wec.content-format"
)

// WECConfig contains the options for managing event collector subscriptions.
type WECConfig struct {
	// Retry controls how long subscription activation is awaited.
	Retry RetryConfig `json:"wec.retry" yaml:"wec.retry"`
	// DeliveryMode is the delivery mode applied when a definition omits it (pull|push).
	DeliveryMode string `json:"wec.delivery-mode" yaml:"wec.delivery-mode"`
	// ContentFormat is the content format applied when a definition omits it (events|rendered-text).
	ContentFormat string `json:"wec.content-format" yaml:"wec.content-format"`
}

// RetryConfig contains the exponential backoff settings.
type RetryConfig struct {
	InitialInterval time.Duration `json:"wec.retry.initial-interval" yaml:"wec.retry.initial-interval"`
	MaxInterval     time.Duration `json:"wec.retry.max-interval" yaml:"wec.retry.max-interval"`
	MaxElapsed      time.Duration `json:"wec.retry.max-elapsed" yaml:"wec.retry.max-elapsed"`
}

func (c *WECConfig) initFromViper(v *viper.Viper) error {
	c.Retry = RetryConfig{
		InitialInterval: v.GetDuration(wecRetryInitialInterval),
		MaxInterval:     v.GetDuration(wecRetryMaxInterval),
		MaxElapsed:      v.GetDuration(wecRetryMaxElapsed),
	}
	c.DeliveryMode = v.GetString(wecDeliveryMode)
	c.ContentFormat = v.GetString(wecContentFormat)
	if c.Retry.MaxInterval < c.Retry.InitialInterval {
		return fmt.Errorf("%s must not be lower than %s", wecRetryMaxInterval, wecRetryInitialInterval)
	}
	return nil
}

func addWECFlags(flags *pflag.FlagSet) {
	flags.Duration(wecRetryInitialInterval, time.Second, "Specifies the initial interval between subscription status checks")
	flags.Duration(wecRetryMaxInterval, time.Second*30, "Specifies the maximum interval between subscription status checks")
	flags.Duration(wecRetryMaxElapsed, time.Minute*5, "Specifies how long to wait for the subscription to become active")
	flags.String(wecDeliveryMode, "pull", "Designates the delivery mode applied when a subscription definition omits it (pull|push)")
	flags.String(wecContentFormat, "events", "Designates the content format applied when a subscription definition omits it (events|rendered-text)")
}
