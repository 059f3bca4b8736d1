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

import "golang.org/x/sys/windows"

// Event collector specific Win32 error codes.
const (
	ERROR_EC_SUBSCRIPTION_CANNOT_ACTIVATE windows.Errno = 15080
	ERROR_EC_LOG_DISABLED                 windows.Errno = 15081
	ERROR_EC_CIRCULAR_FORWARDING          windows.Errno = 15082
	ERROR_EC_CREDSTORE_FULL               windows.Errno = 15083
	ERROR_EC_CRED_NOT_FOUND               windows.Errno = 15084
	ERROR_EC_NO_ACTIVE_CHANNEL            windows.Errno = 15085
)

var ecErrorNames = map[windows.Errno]string{
	ERROR_EC_SUBSCRIPTION_CANNOT_ACTIVATE: "ERROR_EC_SUBSCRIPTION_CANNOT_ACTIVATE",
	ERROR_EC_LOG_DISABLED:                 "ERROR_EC_LOG_DISABLED",
	ERROR_EC_CIRCULAR_FORWARDING:          "ERROR_EC_CIRCULAR_FORWARDING",
	ERROR_EC_CREDSTORE_FULL:               "ERROR_EC_CREDSTORE_FULL",
	ERROR_EC_CRED_NOT_FOUND:               "ERROR_EC_CRED_NOT_FOUND",
	ERROR_EC_NO_ACTIVE_CHANNEL:            "ERROR_EC_NO_ACTIVE_CHANNEL",
}

// ErrorName returns the symbolic name of an event collector error code, or
// an empty string when the code is not collector specific.
func ErrorName(e windows.Errno) string {
	return ecErrorNames[e]
}
