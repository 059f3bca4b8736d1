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

package directory

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"golang.org/x/sys/windows"
)

// initCOM initializes the COM library on the calling goroutine's OS thread
// and returns the function that releases it. The goroutine stays wired to
// the thread until then.
func initCOM() (func(), error) {
	runtime.LockOSThread()
	err := windows.CoInitializeEx(0, windows.COINIT_MULTITHREADED)
	switch err {
	case nil, windows.Errno(adsi.S_FALSE):
		return func() {
			windows.CoUninitialize()
			runtime.UnlockOSThread()
		}, nil
	case windows.Errno(adsi.RPC_E_CHANGED_MODE):
		// already initialized as an apartment thread by someone else
		return runtime.UnlockOSThread, nil
	}
	runtime.UnlockOSThread()
	return nil, errors.Wrap(err, "CoInitializeEx")
}

// utf16OrNil returns nil for empty strings so optional arguments default.
func utf16OrNil(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}
