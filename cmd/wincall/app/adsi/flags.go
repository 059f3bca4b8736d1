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

package adsi

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"github.com/spf13/cobra"
)

func userFlags(cmd *cobra.Command, args []string) error {
	if uac, err := strconv.ParseUint(args[0], 0, 32); err == nil && len(args) == 1 {
		for _, name := range adsi.UserFlags(uint32(uac)) {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}
	uac, err := encodeUserFlags(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%d (0x%X)\n", uac, uac)
	return nil
}

func encodeUserFlags(names []string) (uint32, error) {
	var uac uint32
	for _, name := range names {
		f, ok := adsi.ParseUserFlag(name)
		if !ok {
			return 0, fmt.Errorf("unknown account flag %q", name)
		}
		uac |= uint32(f)
	}
	return uac, nil
}
