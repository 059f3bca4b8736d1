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

package config

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

func (c *Config) printArray(arr reflect.Value) string {
	var buffer bytes.Buffer
	for i := 0; i < arr.Len(); i++ {
		if i > 0 {
			buffer.WriteString(";")
		}
		buffer.WriteString(c.print(arr.Index(i).Interface()))
	}
	return buffer.String()
}

func (c *Config) printMap(m map[string]interface{}) string {
	var buffer bytes.Buffer
	buffer.WriteString("[")
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		val := c.print(m[k])
		if len(val) > 0 {
			buffer.WriteString(" ")
			buffer.WriteString(k)
			buffer.WriteString("=>")
			if strings.Contains(k, "password") {
				buffer.WriteString("********")
			} else {
				buffer.WriteString(val)
			}
		}
	}
	buffer.WriteString("]")
	return buffer.String()
}

func (c *Config) print(value interface{}) string {
	if value == nil {
		return ""
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Array, reflect.Slice:
		return c.printArray(reflect.ValueOf(value))
	case reflect.Map:
		if m, ok := value.(map[string]interface{}); ok {
			return c.printMap(m)
		}
		return fmt.Sprintf("%v", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func (c *Config) printLine(buffer *bytes.Buffer, maxLength int, key string, value string) {
	if value != "" {
		buffer.WriteString("\n\t")
		buffer.WriteString(key)
		buffer.WriteString(" ")
		buffer.WriteString(strings.Repeat(".", maxLength-len(key)+5))
		buffer.WriteString(" ")
		buffer.WriteString(value)
	}
}

// Print returns the string with all the config options pretty-printed.
func (c *Config) Print() string {
	opts := c.viper.AllSettings()

	var buffer bytes.Buffer
	var maxKeyLen = 20

	type kv struct {
		k string
		v interface{}
	}

	sorted := make([]kv, 0, len(opts))
	// for printing we need to find the max key length
	for key, v := range opts {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
		sorted = append(sorted, kv{k: key, v: v})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].k < sorted[j].k })

	// print the options
	for _, kv := range sorted {
		c.printLine(&buffer, maxKeyLen, kv.k, c.print(kv.v))
	}

	return buffer.String()
}
