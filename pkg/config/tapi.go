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
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/util/version"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	tapiAppName        = "tapi.app-name"
	tapiAPIVersionLow  = "tapi.api-version-low"
	tapiAPIVersionHigh = "tapi.api-version-high"
	tapiMessageTimeout = "tapi.message-timeout"
	tapiPollRate       = "tapi.poll-rate"
	tapiPollBurst      = "tapi.poll-burst"
)

// TAPIConfig contains the options that govern telephony sessions.
type TAPIConfig struct {
	// AppName is the friendly application name reported to the telephony service.
	AppName string `json:"tapi.app-name" yaml:"tapi.app-name"`
	// APIVersionLow is the earliest API version the application can work with.
	APIVersionLow uint32 `json:"tapi.api-version-low" yaml:"tapi.api-version-low"`
	// APIVersionHigh is the latest API version the application can work with.
	APIVersionHigh uint32 `json:"tapi.api-version-high" yaml:"tapi.api-version-high"`
	// MessageTimeout is how long a single message retrieval blocks.
	MessageTimeout time.Duration `json:"tapi.message-timeout" yaml:"tapi.message-timeout"`
	// PollRate is the number of message retrievals allowed per second.
	PollRate int `json:"tapi.poll-rate" yaml:"tapi.poll-rate"`
	// PollBurst is the number of retrievals that may exceed the poll rate.
	PollBurst int `json:"tapi.poll-burst" yaml:"tapi.poll-burst"`
}

func (c *TAPIConfig) initFromViper(v *viper.Viper) error {
	c.AppName = v.GetString(tapiAppName)
	c.MessageTimeout = v.GetDuration(tapiMessageTimeout)
	c.PollRate = v.GetInt(tapiPollRate)
	c.PollBurst = v.GetInt(tapiPollBurst)

	var err error
	c.APIVersionLow, err = ParseAPIVersion(v.GetString(tapiAPIVersionLow))
	if err != nil {
		return errors.Wrap(err, tapiAPIVersionLow)
	}
	c.APIVersionHigh, err = ParseAPIVersion(v.GetString(tapiAPIVersionHigh))
	if err != nil {
		return errors.Wrap(err, tapiAPIVersionHigh)
	}
	if c.APIVersionLow > c.APIVersionHigh {
		return fmt.Errorf("%s %s is greater than %s %s", tapiAPIVersionLow,
			FormatAPIVersion(c.APIVersionLow), tapiAPIVersionHigh, FormatAPIVersion(c.APIVersionHigh))
	}
	return nil
}

// ParseAPIVersion converts the major.minor notation into the packed
// version value where the major number occupies the high word.
func ParseAPIVersion(s string) (uint32, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("invalid API version %q", s)
	}
	hi, err := strconv.ParseUint(major, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid API version %q: %v", s, err)
	}
	lo, err := strconv.ParseUint(minor, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid API version %q: %v", s, err)
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// FormatAPIVersion renders the packed version value as major.minor.
func FormatAPIVersion(v uint32) string {
	return fmt.Sprintf("%d.%d", v>>16, v&0xffff)
}

func addTAPIFlags(flags *pflag.FlagSet) {
	flags.String(tapiAppName, version.ProductToken(), "Specifies the application name reported to the telephony service")
	flags.String(tapiAPIVersionLow, "1.4", "Designates the earliest telephony API version the application can work with")
	flags.String(tapiAPIVersionHigh, "3.1", "Designates the latest telephony API version the application can work with")
	flags.Duration(tapiMessageTimeout, time.Second, "Determines how long a single message retrieval blocks")
	flags.Int(tapiPollRate, 20, "Specifies the number of message retrievals allowed per second")
	flags.Int(tapiPollBurst, 5, "Specifies the number of message retrievals that may exceed the poll rate")
}
