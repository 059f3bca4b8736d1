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

package guid

import (
	"encoding/binary"
	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

// FromUUID converts an RFC 4122 UUID into the mixed-endian Windows GUID layout.
func FromUUID(u uuid.UUID) windows.GUID {
	var g windows.GUID
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:])
	return g
}

// ToUUID converts a Windows GUID into its RFC 4122 representation.
func ToUUID(g windows.GUID) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// Parse accepts the braced registry form as well as every form uuid.Parse understands.
func Parse(s string) (windows.GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return windows.GUID{}, err
	}
	return FromUUID(u), nil
}

// String formats the GUID without braces in lower case.
func String(g windows.GUID) string {
	return ToUUID(g).String()
}

// IsZero reports whether all GUID fields are zero.
func IsZero(g windows.GUID) bool {
	return g == windows.GUID{}
}
