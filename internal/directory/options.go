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
	"fmt"
	"strings"

	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
)

var authFlags = map[string]adsi.ADsAuthentication{
	"secure":              adsi.ADS_SECURE_AUTHENTICATION,
	"use-encryption":      adsi.ADS_USE_ENCRYPTION,
	"use-ssl":             adsi.ADS_USE_SSL,
	"readonly-server":     adsi.ADS_READONLY_SERVER,
	"prompt-credentials":  adsi.ADS_PROMPT_CREDENTIALS,
	"no-authentication":   adsi.ADS_NO_AUTHENTICATION,
	"fast-bind":           adsi.ADS_FAST_BIND,
	"use-signing":         adsi.ADS_USE_SIGNING,
	"use-sealing":         adsi.ADS_USE_SEALING,
	"use-delegation":      adsi.ADS_USE_DELEGATION,
	"server-bind":         adsi.ADS_SERVER_BIND,
	"no-referral-chasing": adsi.ADS_NO_REFERRAL_CHASING,
	"auth-reserved":       adsi.ADS_AUTH_RESERVED,
}

// ParseAuthFlags combines the authentication option names into the flags passed to ADsOpenObject.
func ParseAuthFlags(names []string) (adsi.ADsAuthentication, error) {
	var flags adsi.ADsAuthentication
	for _, name := range names {
		f, ok := authFlags[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown authentication flag %q", name)
		}
		flags |= f
	}
	return flags, nil
}

// ParseScope converts the scope name into the ADSI search scope.
func ParseScope(s string) (adsi.ADsScope, error) {
	switch strings.ToLower(s) {
	case config.ScopeBase:
		return adsi.ADS_SCOPE_BASE, nil
	case config.ScopeOneLevel:
		return adsi.ADS_SCOPE_ONELEVEL, nil
	case config.ScopeSubtree, "":
		return adsi.ADS_SCOPE_SUBTREE, nil
	}
	return 0, fmt.Errorf("unknown search scope %q", s)
}

// ParseReferrals converts the referral chasing option name.
func ParseReferrals(s string) (adsi.ADsChaseReferrals, error) {
	switch strings.ToLower(s) {
	case "never", "":
		return adsi.ADS_CHASE_REFERRALS_NEVER, nil
	case "subordinate":
		return adsi.ADS_CHASE_REFERRALS_SUBORDINATE, nil
	case "external":
		return adsi.ADS_CHASE_REFERRALS_EXTERNAL, nil
	case "always":
		return adsi.ADS_CHASE_REFERRALS_ALWAYS, nil
	}
	return 0, fmt.Errorf("unknown referral chasing option %q", s)
}

// NewQuery builds the search for the filter from the search options of the
// config. Empty scope and path fall back to the config values.
func NewQuery(cfg config.ADSIConfig, filter string, attrs []string, scope, path string) (Query, error) {
	if scope == "" {
		scope = cfg.Scope
	}
	sc, err := ParseScope(scope)
	if err != nil {
		return Query{}, err
	}
	refs, err := ParseReferrals(cfg.ChaseReferrals)
	if err != nil {
		return Query{}, err
	}
	if path == "" {
		path = cfg.Path
		if cfg.LDAP.Enabled() {
			path = cfg.LDAP.BaseDN
		}
	}
	return Query{
		Path:           path,
		Filter:         filter,
		Attributes:     attrs,
		Scope:          sc,
		PageSize:       cfg.PageSize,
		SizeLimit:      cfg.SizeLimit,
		TimeLimit:      cfg.TimeLimit,
		ChaseReferrals: refs,
	}, nil
}

// NamedQuery builds the search declared under the name in the config file.
func NamedQuery(cfg config.ADSIConfig, name string) (Query, error) {
	q, ok := cfg.Query(name)
	if !ok {
		return Query{}, fmt.Errorf("query %q is not defined", name)
	}
	return NewQuery(cfg, q.Filter, q.Attributes, q.Scope, q.Path)
}
