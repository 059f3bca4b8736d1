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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrSubscriptionNotFound(t *testing.T) {
	err := fmt.Errorf("show: %w", ErrSubscriptionNotFound{Name: "forwarded-security"})
	assert.True(t, IsSubscriptionNotFound(err))
	assert.False(t, IsDeviceNotFound(err))
	assert.Equal(t, `show: subscription "forwarded-security" not found`, err.Error())
}

func TestErrDeviceNotFound(t *testing.T) {
	err := ErrDeviceNotFound{Kind: "line", ID: 7}
	assert.True(t, IsDeviceNotFound(err))
	assert.False(t, IsSubscriptionNotFound(err))
	assert.Equal(t, "line device 7 not found", err.Error())
}

func TestErrMonitorClosed(t *testing.T) {
	assert.EqualError(t, ErrMonitorClosed(2), "line device 2 was closed by the telephony service")
}
