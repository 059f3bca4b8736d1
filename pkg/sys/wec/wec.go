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

package wec

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const (
	initialVariantSize = 512
	initialNameSize    = 128
	maxBufferAttempts  = 4
)

// ErrBufferExhausted is returned when the collector keeps asking for a
// larger buffer after every regrowth.
var ErrBufferExhausted = errors.New("event collector buffer kept growing")

func utf16Ptr(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}

// queryVariant calls fn with an 8-byte aligned buffer and regrows it while
// the collector reports ERROR_INSUFFICIENT_BUFFER. The returned variant
// points at the start of the buffer so the trailing strings stay reachable.
func queryVariant(fn func(size uint32, buf *EcVariant, used *uint32) error) (*EcVariant, error) {
	size := uint32(initialVariantSize)
	for i := 0; i < maxBufferAttempts; i++ {
		buf := make([]uint64, (size+7)/8)
		v := (*EcVariant)(unsafe.Pointer(&buf[0]))
		var used uint32
		err := fn(uint32(len(buf)*8), v, &used)
		if err == nil {
			return v, nil
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return nil, err
		}
		if used > size {
			size = used
		} else {
			size *= 2
		}
	}
	return nil, ErrBufferExhausted
}

// GetSubscriptionProperty reads a subscription property.
func GetSubscriptionProperty(sub EcHandle, id EcSubscriptionPropertyID) (*EcVariant, error) {
	return queryVariant(func(size uint32, buf *EcVariant, used *uint32) error {
		return EcGetSubscriptionProperty(sub, id, 0, size, buf, used)
	})
}

// GetObjectArrayProperty reads the property of the element at index.
func GetObjectArrayProperty(arr EcObjectArrayPropertyHandle, id EcSubscriptionPropertyID, index uint32) (*EcVariant, error) {
	return queryVariant(func(size uint32, buf *EcVariant, used *uint32) error {
		return EcGetObjectArrayProperty(arr, id, index, 0, size, buf, used)
	})
}

// GetSubscriptionRunTimeStatus reads a runtime status value. An empty
// source queries the subscription as a whole.
func GetSubscriptionRunTimeStatus(name string, id EcSubscriptionRuntimeStatusInfoID, source string) (*EcVariant, error) {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	src, err := utf16Ptr(source)
	if err != nil {
		return nil, err
	}
	return queryVariant(func(size uint32, buf *EcVariant, used *uint32) error {
		return EcGetSubscriptionRunTimeStatus(n, id, src, 0, size, buf, used)
	})
}

// ObjectArraySize returns the number of elements in an object array property.
func ObjectArraySize(arr EcObjectArrayPropertyHandle) (uint32, error) {
	var n uint32
	if err := EcGetObjectArraySize(arr, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// EnumNextSubscription returns the next subscription name, or
// ERROR_NO_MORE_ITEMS once the enumeration is exhausted.
func EnumNextSubscription(enum EcHandle) (string, error) {
	size := uint32(initialNameSize)
	for i := 0; i < maxBufferAttempts; i++ {
		buf := make([]uint16, size)
		var used uint32
		err := EcEnumNextSubscription(enum, size, &buf[0], &used)
		if err == nil {
			return windows.UTF16ToString(buf), nil
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return "", err
		}
		if used > size {
			size = used
		} else {
			size *= 2
		}
	}
	return "", ErrBufferExhausted
}

// Subscriptions lists the names of every subscription on the collector.
func Subscriptions() ([]string, error) {
	enum, err := EcOpenSubscriptionEnum(0)
	if err != nil {
		return nil, errors.Wrap(err, "EcOpenSubscriptionEnum")
	}
	defer EcClose(enum)
	names := make([]string, 0)
	for {
		name, err := EnumNextSubscription(enum)
		if err == windows.ERROR_NO_MORE_ITEMS {
			return names, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "EcEnumNextSubscription")
		}
		names = append(names, name)
	}
}

// OpenSubscription opens the named subscription.
func OpenSubscription(name string, access, flags uint32) (EcHandle, error) {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	return EcOpenSubscription(n, access, flags)
}

// DeleteSubscription removes the named subscription.
func DeleteSubscription(name string) error {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	return EcDeleteSubscription(n, 0)
}

// RetrySubscription retries the subscription for a single event source, or
// for every source when source is empty.
func RetrySubscription(name, source string) error {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	src, err := utf16Ptr(source)
	if err != nil {
		return err
	}
	return EcRetrySubscription(n, src, 0)
}
