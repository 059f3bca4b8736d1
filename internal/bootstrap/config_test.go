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

package bootstrap

import (
	"context"
	"testing"

	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigAndLoggerFallsBackToDefaults(t *testing.T) {
	cfg := config.NewWithOpts(config.WithTAPI())
	cmd := &cobra.Command{Use: "tapi"}
	cfg.MustViperize(cmd)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{
		"--config-file=" + t.TempDir() + "/missing.yml",
		"--logging.path=" + t.TempDir(),
	}))

	require.NoError(t, InitConfigAndLogger(cfg))
	assert.Equal(t, "wincall/dev", cfg.TAPI.AppName)
}

func TestSignalContext(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := SignalContext(parent)
	defer cancel()

	cancelParent()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
