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
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	adsiPath           = "adsi.path"
	adsiUsername       = "adsi.username"
	adsiPassword       = "adsi.password"
	adsiAuthFlags      = "adsi.auth-flags"
	adsiPageSize       = "adsi.page-size"
	adsiScope          = "adsi.scope"
	adsiSizeLimit      = "adsi.size-limit"
	adsiTimeLimit      = "adsi.time-limit"
	adsiChaseReferrals = "adsi.chase-referrals"
	adsiQueries        = "adsi.queries"

	ldapServer             = "adsi.ldap.server"
	ldapPort               = "adsi.ldap.port"
	ldapBindDN             = "adsi.ldap.bind-dn"
	ldapPassword           = "adsi.ldap.password"
	ldapBaseDN             = "adsi.ldap.base-dn"
	ldapTLS                = "adsi.ldap.tls"
	ldapInsecureSkipVerify = "adsi.ldap.insecure-skip-verify"
)

// Search scopes.
const (
	ScopeBase     = "base"
	ScopeOneLevel = "onelevel"
	ScopeSubtree  = "subtree"
)

// ADSIConfig contains the directory binding and search options.
type ADSIConfig struct {
	// Path is the ADsPath of the search root. When empty, the default naming
	// context of the current domain is used.
	Path string `json:"adsi.path" yaml:"adsi.path"`
	// Username and Password are the alternate credentials used to bind.
	Username string `json:"adsi.username" yaml:"adsi.username"`
	Password string `json:"adsi.password" yaml:"adsi.password"`
	// AuthFlags lists the authentication options (secure, use-encryption, use-signing, ...).
	AuthFlags []string `json:"adsi.auth-flags" yaml:"adsi.auth-flags"`
	// PageSize is the number of rows requested per page.
	PageSize int `json:"adsi.page-size" yaml:"adsi.page-size"`
	// Scope is one of base, onelevel or subtree.
	Scope string `json:"adsi.scope" yaml:"adsi.scope"`
	// SizeLimit caps the number of returned entries. Zero means no limit.
	SizeLimit int `json:"adsi.size-limit" yaml:"adsi.size-limit"`
	// TimeLimit caps the server-side search time. Zero means no limit.
	TimeLimit time.Duration `json:"adsi.time-limit" yaml:"adsi.time-limit"`
	// ChaseReferrals is one of never, subordinate, external or always.
	ChaseReferrals string `json:"adsi.chase-referrals" yaml:"adsi.chase-referrals"`
	// LDAP contains the settings of the plain LDAP searcher.
	LDAP LDAPConfig `json:"adsi.ldap" yaml:"adsi.ldap"`
	// Queries holds the named searches declared in the config file.
	Queries []Query `json:"adsi.queries" yaml:"adsi.queries"`
}

// LDAPConfig contains the options for searching the directory over plain LDAP.
type LDAPConfig struct {
	Server             string `json:"adsi.ldap.server" yaml:"adsi.ldap.server"`
	Port               int    `json:"adsi.ldap.port" yaml:"adsi.ldap.port"`
	BindDN             string `json:"adsi.ldap.bind-dn" yaml:"adsi.ldap.bind-dn"`
	Password           string `json:"adsi.ldap.password" yaml:"adsi.ldap.password"`
	BaseDN             string `json:"adsi.ldap.base-dn" yaml:"adsi.ldap.base-dn"`
	TLS                bool   `json:"adsi.ldap.tls" yaml:"adsi.ldap.tls"`
	InsecureSkipVerify bool   `json:"adsi.ldap.insecure-skip-verify" yaml:"adsi.ldap.insecure-skip-verify"`
}

// Enabled determines if the LDAP searcher is configured.
func (c LDAPConfig) Enabled() bool { return c.Server != "" }

// Address returns the host:port pair of the LDAP server.
func (c LDAPConfig) Address() string { return fmt.Sprintf("%s:%d", c.Server, c.Port) }

// Query is a named directory search.
type Query struct {
	Name       string   `mapstructure:"name"`
	Filter     string   `mapstructure:"filter"`
	Attributes []string `mapstructure:"attributes"`
	Scope      string   `mapstructure:"scope"`
	Path       string   `mapstructure:"path"`
}

// Query returns the named query.
func (c ADSIConfig) Query(name string) (Query, bool) {
	for _, q := range c.Queries {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}

func (c *ADSIConfig) initFromViper(v *viper.Viper) error {
	c.Path = v.GetString(adsiPath)
	c.Username = v.GetString(adsiUsername)
	c.Password = v.GetString(adsiPassword)
	c.AuthFlags = v.GetStringSlice(adsiAuthFlags)
	c.PageSize = v.GetInt(adsiPageSize)
	c.Scope = v.GetString(adsiScope)
	c.SizeLimit = v.GetInt(adsiSizeLimit)
	c.TimeLimit = v.GetDuration(adsiTimeLimit)
	c.ChaseReferrals = v.GetString(adsiChaseReferrals)
	c.LDAP = LDAPConfig{
		Server:             v.GetString(ldapServer),
		Port:               v.GetInt(ldapPort),
		BindDN:             v.GetString(ldapBindDN),
		Password:           v.GetString(ldapPassword),
		BaseDN:             v.GetString(ldapBaseDN),
		TLS:                v.GetBool(ldapTLS),
		InsecureSkipVerify: v.GetBool(ldapInsecureSkipVerify),
	}

	switch c.Scope {
	case ScopeBase, ScopeOneLevel, ScopeSubtree:
	default:
		return fmt.Errorf("%s: unknown search scope %q", adsiScope, c.Scope)
	}

	queries := v.Get(adsiQueries)
	if queries == nil {
		return nil
	}
	m, err := stringKeys(queries, adsiQueries)
	if err != nil {
		return err
	}
	if err := decode(m, &c.Queries); err != nil {
		return fmt.Errorf("unable to decode %s: %v", adsiQueries, err)
	}
	for i, q := range c.Queries {
		if q.Name == "" || q.Filter == "" {
			return fmt.Errorf("%s[%d]: name and filter are required", adsiQueries, i)
		}
		if q.Scope == "" {
			c.Queries[i].Scope = c.Scope
		}
	}
	return nil
}

func addADSIFlags(flags *pflag.FlagSet) {
	flags.String(adsiPath, "", "Specifies the ADsPath of the search root. Defaults to the naming context of the current domain")
	flags.String(adsiUsername, "", "Specifies the user name for binding to the directory with alternate credentials")
	flags.String(adsiPassword, "", "Specifies the password for binding to the directory with alternate credentials")
	flags.StringSlice(adsiAuthFlags, []string{"secure"}, "Comma-separated list of authentication options (secure, use-encryption, use-signing, use-sealing, readonly-server, server-bind, fast-bind, no-authentication)")
	flags.Int(adsiPageSize, 500, "Specifies the number of entries requested per result page")
	flags.String(adsiScope, ScopeSubtree, "Designates the search scope (base|onelevel|subtree)")
	flags.Int(adsiSizeLimit, 0, "Specifies the maximum number of returned entries. Zero means no limit")
	flags.Duration(adsiTimeLimit, 0, "Specifies the maximum server-side search time. Zero means no limit")
	flags.String(adsiChaseReferrals, "never", "Determines how referrals are chased (never|subordinate|external|always)")
	flags.String(ldapServer, "", "Specifies the LDAP server. When set, searches are run over LDAP instead of ADSI")
	flags.Int(ldapPort, 389, "Specifies the LDAP server port")
	flags.String(ldapBindDN, "", "Specifies the distinguished name used to bind to the LDAP server")
	flags.String(ldapPassword, "", "Specifies the password used to bind to the LDAP server")
	flags.String(ldapBaseDN, "", "Specifies the LDAP search base")
	flags.Bool(ldapTLS, false, "Indicates if the LDAP connection is upgraded with StartTLS")
	flags.Bool(ldapInsecureSkipVerify, false, "Skips the LDAP server certificate verification")
}
