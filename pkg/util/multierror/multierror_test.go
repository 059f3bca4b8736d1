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

package multierror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	errNotFound := errors.New("subscription not found")
	errDenied := errors.New("access denied")

	assert.Nil(t, Wrap())
	assert.Nil(t, Wrap(nil, nil))
	assert.Equal(t, errNotFound, Wrap(nil, errNotFound))

	err := Wrap(errNotFound, nil, errDenied)
	require.Error(t, err)
	assert.Equal(t, "subscription not found\naccess denied", err.Error())
	assert.True(t, errors.Is(err, errDenied))

	var merr *Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors(), 2)
}
