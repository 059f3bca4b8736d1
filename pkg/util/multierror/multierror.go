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

// Package multierror folds a list of errors into a single error value.
package multierror

import (
	"strings"
)

// Error is a list of errors rendered one per line.
type Error struct {
	errs []error
}

// Wrap combines errors into a single error. Nil errors are skipped. It
// returns nil when no error remains and the error itself when only one does.
func Wrap(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	}
	return &Error{errs: nonNil}
}

// Error renders every error on its own line.
func (e *Error) Error() string {
	var b strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the wrapped errors to errors.Is and errors.As.
func (e *Error) Unwrap() []error { return e.errs }

// Errors returns the wrapped errors.
func (e *Error) Errors() []error { return e.errs }
