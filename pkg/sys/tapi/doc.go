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

// Package tapi contains the bindings for the Telephony API exported by tapi32.dll.
// Line and phone functions return a negative LONG on failure and a positive
// request id when the operation completes asynchronously through a LINE_REPLY
// or PHONE_REPLY message. The wrappers in this package surface the former as
// LineErr/PhoneErr values. Variable-sized structures are queried through
// QueryVar, which regrows the buffer until the service provider stops asking
// for more room.
package tapi
