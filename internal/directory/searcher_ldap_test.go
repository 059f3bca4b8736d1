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
	"context"
	"crypto/tls"
	"errors"
	"testing"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testADSIConfig() config.ADSIConfig {
	return config.ADSIConfig{AuthFlags: []string{"secure"}, Scope: config.ScopeSubtree, PageSize: 100}
}

type fakeLDAPConn struct {
	tls      *tls.Config
	bindDN   string
	req      *ldap.SearchRequest
	pageSize uint32
	result   *ldap.SearchResult
	err      error
	closed   int
}

func (c *fakeLDAPConn) StartTLS(config *tls.Config) error {
	c.tls = config
	return nil
}

func (c *fakeLDAPConn) Bind(username, password string) error {
	if password != "secret" {
		return ldap.NewError(ldap.LDAPResultInvalidCredentials, errors.New("invalid credentials"))
	}
	c.bindDN = username
	return nil
}

func (c *fakeLDAPConn) SearchWithPaging(req *ldap.SearchRequest, pagingSize uint32) (*ldap.SearchResult, error) {
	c.req, c.pageSize = req, pagingSize
	return c.result, c.err
}

func newFakeSearcher(cfg config.LDAPConfig, conn *fakeLDAPConn) *LDAPSearcher {
	s := NewLDAPSearcher(cfg)
	s.dial = func(addr string) (ldapConn, func(), error) {
		if addr != cfg.Address() {
			return nil, nil, errors.New("unexpected address " + addr)
		}
		return conn, func() { conn.closed++ }, nil
	}
	return s
}

func TestLDAPSearch(t *testing.T) {
	conn := &fakeLDAPConn{
		result: &ldap.SearchResult{Entries: []*ldap.Entry{
			{
				DN: "CN=jdoe,CN=Users,DC=corp,DC=example,DC=com",
				Attributes: []*ldap.EntryAttribute{
					{Name: "sAMAccountName", Values: []string{"jdoe"}, ByteValues: [][]byte{[]byte("jdoe")}},
					{Name: "userAccountControl", Values: []string{"66048"}, ByteValues: [][]byte{[]byte("66048")}},
					{Name: "objectGUID", Values: []string{"\x01"}, ByteValues: [][]byte{{1, 2, 3, 4}}},
				},
			},
		}},
	}
	cfg := config.LDAPConfig{
		Server:             "dc01.corp.example.com",
		Port:               389,
		BindDN:             "CN=svc,DC=corp,DC=example,DC=com",
		Password:           "secret",
		BaseDN:             "DC=corp,DC=example,DC=com",
		TLS:                true,
		InsecureSkipVerify: true,
	}
	s := newFakeSearcher(cfg, conn)

	q := Query{
		Filter:     "(sAMAccountName=jdoe)",
		Attributes: []string{"sAMAccountName", "userAccountControl", "objectGUID"},
		Scope:      adsi.ADS_SCOPE_SUBTREE,
		SizeLimit:  5,
		TimeLimit:  10 * time.Second,
	}
	entries, err := s.Search(context.Background(), q)
	require.NoError(t, err)

	require.NotNil(t, conn.tls)
	assert.Equal(t, "dc01.corp.example.com", conn.tls.ServerName)
	assert.True(t, conn.tls.InsecureSkipVerify)
	assert.Equal(t, cfg.BindDN, conn.bindDN)
	assert.Equal(t, "DC=corp,DC=example,DC=com", conn.req.BaseDN)
	assert.Equal(t, ldap.ScopeWholeSubtree, conn.req.Scope)
	assert.Equal(t, 5, conn.req.SizeLimit)
	assert.Equal(t, 10, conn.req.TimeLimit)
	assert.Equal(t, uint32(defaultLDAPPageSize), conn.pageSize)
	assert.Equal(t, 1, conn.closed)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "CN=jdoe,CN=Users,DC=corp,DC=example,DC=com", e.DN)
	assert.Equal(t, "jdoe", e.String("sAMAccountName"))
	assert.Equal(t, []interface{}{[]byte{1, 2, 3, 4}}, e.Get("objectGUID"))
	assert.Equal(t, []string{"NORMAL_ACCOUNT", "DONT_EXPIRE_PASSWD"}, e.UserFlags())
}

func TestLDAPSearchPathAndScope(t *testing.T) {
	conn := &fakeLDAPConn{result: &ldap.SearchResult{}}
	s := newFakeSearcher(config.LDAPConfig{Server: "dc01", Port: 636, BaseDN: "DC=corp"}, conn)

	_, err := s.Search(context.Background(), Query{
		Path:     "LDAP://dc01/OU=Sales,DC=corp",
		Filter:   "(objectClass=*)",
		Scope:    adsi.ADS_SCOPE_ONELEVEL,
		PageSize: 50,
	})
	require.NoError(t, err)
	assert.Nil(t, conn.tls)
	assert.Empty(t, conn.bindDN)
	assert.Equal(t, "OU=Sales,DC=corp", conn.req.BaseDN)
	assert.Equal(t, ldap.ScopeSingleLevel, conn.req.Scope)
	assert.Equal(t, uint32(50), conn.pageSize)
}

func TestLDAPSearchBindFailure(t *testing.T) {
	conn := &fakeLDAPConn{}
	s := newFakeSearcher(config.LDAPConfig{Server: "dc01", Port: 389, BindDN: "CN=svc", Password: "wrong"}, conn)
	_, err := s.Search(context.Background(), Query{Filter: "(cn=*)"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to bind as CN=svc")
	assert.Nil(t, conn.req)
	assert.Equal(t, 1, conn.closed)
}

func TestLDAPSearchSizeLimitExceeded(t *testing.T) {
	conn := &fakeLDAPConn{
		result: &ldap.SearchResult{Entries: []*ldap.Entry{{DN: "CN=a"}, {DN: "CN=b"}}},
		err:    ldap.NewError(ldap.LDAPResultSizeLimitExceeded, errors.New("size limit exceeded")),
	}
	s := newFakeSearcher(config.LDAPConfig{Server: "dc01", Port: 389}, conn)
	entries, err := s.Search(context.Background(), Query{Filter: "(cn=*)", SizeLimit: 2})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	conn.err = ldap.NewError(ldap.LDAPResultOperationsError, errors.New("operations error"))
	_, err = s.Search(context.Background(), Query{Filter: "(cn=*)"})
	require.Error(t, err)
}

func TestBaseDN(t *testing.T) {
	var tests = []struct {
		path string
		want string
	}{
		{"LDAP://DC=corp,DC=example", "DC=corp,DC=example"},
		{"ldap://dc01.corp:389/OU=Sales,DC=corp", "OU=Sales,DC=corp"},
		{"DC=corp", "DC=corp"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, baseDN(tt.path))
	}
}
