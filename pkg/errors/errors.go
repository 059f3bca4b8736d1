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
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPlatform is returned when wincall is started on a non-Windows host
	ErrUnsupportedPlatform = errors.New("wincall can only be run on Windows operating systems")
	// ErrUnsupportedArch is returned when wincall is started on 32-bit Windows
	ErrUnsupportedArch = errors.New("wincall can't be run on 32-bit Windows operating systems")
	// ErrCOMNotInitialized signals that a COM call was issued from a thread that didn't initialize the COM library
	ErrCOMNotInitialized = errors.New("COM library is not initialized on the calling thread")
	// ErrBufferExhausted is returned when a variable-sized structure keeps requesting more room than offered
	ErrBufferExhausted = errors.New("buffer still too small after regrowing")
	// ErrNoDomain is returned when the computer is not joined to a domain
	ErrNoDomain = errors.New("the computer is not joined to a domain")

	// ErrMonitorClosed signals that the line was closed by the telephony service while being monitored
	ErrMonitorClosed = func(device uint32) error {
		return fmt.Errorf("line device %d was closed by the telephony service", device)
	}
)

// ErrSubscriptionNotFound is returned when the event collector doesn't know the subscription.
type ErrSubscriptionNotFound struct {
	Name string
}

// Error returns the error message.
func (e ErrSubscriptionNotFound) Error() string {
	return fmt.Sprintf("subscription %q not found", e.Name)
}

// ErrDeviceNotFound is returned when the telephony device identifier is out of range.
type ErrDeviceNotFound struct {
	Kind string
	ID   uint32
}

// Error returns the error message.
func (e ErrDeviceNotFound) Error() string {
	return fmt.Sprintf("%s device %d not found", e.Kind, e.ID)
}

// IsSubscriptionNotFound returns true if the error is ErrSubscriptionNotFound.
func IsSubscriptionNotFound(err error) bool {
	var e ErrSubscriptionNotFound
	return errors.As(err, &e)
}

// IsDeviceNotFound returns true if the error is ErrDeviceNotFound.
func IsDeviceNotFound(err error) bool {
	var e ErrDeviceNotFound
	return errors.As(err, &e)
}
