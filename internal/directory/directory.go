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

// Package directory queries Active Directory through ADSI and the directory
// service APIs, with a plain LDAP fallback.
package directory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
)

// Query describes a directory search.
type Query struct {
	// Path is the ADsPath of the search root for ADSI searches, or the
	// base DN for LDAP searches.
	Path           string
	Filter         string
	Attributes     []string
	Scope          adsi.ADsScope
	PageSize       int
	SizeLimit      int
	TimeLimit      time.Duration
	ChaseReferrals adsi.ADsChaseReferrals
}

// Entry is a directory object returned by a search.
type Entry struct {
	DN         string
	Attributes map[string][]interface{}
}

// Searcher runs directory searches.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Entry, error)
}

// NewSearcher returns the LDAP searcher when an LDAP server is configured
// and the ADSI searcher otherwise.
func NewSearcher(cfg config.ADSIConfig) (Searcher, error) {
	if cfg.LDAP.Enabled() {
		return NewLDAPSearcher(cfg.LDAP), nil
	}
	s, err := NewADSISearcher(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Names returns the attribute names of the entry in lexical order.
func (e Entry) Names() []string {
	names := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the values of the attribute. Attribute names are matched case-insensitively.
func (e Entry) Get(name string) []interface{} {
	if vals, ok := e.Attributes[name]; ok {
		return vals
	}
	for n, vals := range e.Attributes {
		if strings.EqualFold(n, name) {
			return vals
		}
	}
	return nil
}

// String renders the first value of the attribute.
func (e Entry) String(name string) string {
	vals := e.Get(name)
	if len(vals) == 0 {
		return ""
	}
	return FormatValue(vals[0])
}

// UserFlags decodes the userAccountControl attribute into flag names.
func (e Entry) UserFlags() []string {
	vals := e.Get("userAccountControl")
	if len(vals) == 0 {
		return nil
	}
	uac, ok := toUint32(vals[0])
	if !ok {
		return nil
	}
	return adsi.UserFlags(uac)
}

func toUint32(v interface{}) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case int32:
		return uint32(n), true
	case int64:
		return uint32(n), true
	case int:
		return uint32(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return uint32(i), true
	}
	return 0, false
}

// FormatValue renders an attribute value for display.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		if g, ok := adsi.GUIDFromOctets(val); ok {
			return g.String()
		}
		return fmt.Sprintf("%X", val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
