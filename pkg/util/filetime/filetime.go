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

// Package filetime converts between Windows FILETIME values and time.Time.
package filetime

import (
	"time"
)

// epochDelta is the number of 100ns intervals between 1601-01-01 and 1970-01-01.
const epochDelta = 116444736000000000

// never is the largest signed FILETIME. Directory attributes such as
// accountExpires use it to mean the value is unset.
const never = 0x7FFFFFFFFFFFFFFF

// ToTime converts the 100ns intervals since 1601 to UTC time. Zero and
// the never sentinel yield the zero time.
func ToTime(ts uint64) time.Time {
	if ts == 0 || ts >= never {
		return time.Time{}
	}
	return time.Unix(0, nanoseconds(ts)).UTC()
}

// FromTime converts t to a FILETIME. The zero time maps to zero.
func FromTime(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.UnixNano()/100 + epochDelta)
}

// Split returns the low and high 32-bit halves of ts.
func Split(ts uint64) (low, high uint32) { return uint32(ts), uint32(ts >> 32) }

func nanoseconds(ts uint64) int64 {
	return (int64(ts) - epochDelta) * 100
}
