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

package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, ValidateOutput(OutputTable))
	assert.NoError(t, ValidateOutput(OutputJSON))
	assert.Error(t, ValidateOutput("xml"))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "-", Time(time.Time{}))
	assert.Contains(t, Time(time.Now().Add(-3*time.Hour)), "3 hours ago")
	assert.Equal(t, "-", Join(nil))
	assert.Equal(t, "pdc, gc", Join([]string{"pdc", "gc"}))
	assert.Equal(t, "-", Dash(""))
	assert.Equal(t, "DC01", Dash("DC01"))
}
