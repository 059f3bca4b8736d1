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
	"strings"
	"sync"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	log "github.com/sirupsen/logrus"
)

const defaultLDAPPageSize = 500

// binaryAttributes are returned as raw bytes instead of strings.
var binaryAttributes = map[string]bool{
	"objectguid":           true,
	"objectsid":            true,
	"sidhistory":           true,
	"ntsecuritydescriptor": true,
	"msexchmailboxguid":    true,
	"thumbnailphoto":       true,
	"usercertificate":      true,
}

// ldapConn is the part of the LDAP connection the searcher drives.
type ldapConn interface {
	StartTLS(config *tls.Config) error
	Bind(username, password string) error
	SearchWithPaging(req *ldap.SearchRequest, pagingSize uint32) (*ldap.SearchResult, error)
}

// LDAPSearcher searches the directory over plain LDAP. It serves hosts
// where ADSI can't be used and domains the host isn't joined to.
type LDAPSearcher struct {
	cfg  config.LDAPConfig
	dial func(addr string) (ldapConn, func(), error)
}

// NewLDAPSearcher creates the LDAP searcher for the configured server.
func NewLDAPSearcher(cfg config.LDAPConfig) *LDAPSearcher {
	return &LDAPSearcher{cfg: cfg, dial: dialLDAP}
}

func dialLDAP(addr string) (ldapConn, func(), error) {
	conn, err := ldap.DialURL("ldap://" + addr)
	if err != nil {
		return nil, nil, err
	}
	return conn, func() { conn.Close() }, nil
}

// Search runs a paged search. Canceling the context tears down the connection.
func (s *LDAPSearcher) Search(ctx context.Context, q Query) ([]Entry, error) {
	conn, closer, err := s.dial(s.cfg.Address())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to connect to %s", s.cfg.Address())
	}
	var once sync.Once
	stop := func() { once.Do(closer) }
	defer stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	if s.cfg.TLS {
		tlsConfig := &tls.Config{ServerName: s.cfg.Server, InsecureSkipVerify: s.cfg.InsecureSkipVerify}
		if err := conn.StartTLS(tlsConfig); err != nil {
			return nil, errors.Wrap(err, "StartTLS")
		}
	}
	if s.cfg.BindDN != "" {
		if err := conn.Bind(s.cfg.BindDN, s.cfg.Password); err != nil {
			return nil, errors.Wrapf(err, "unable to bind as %s", s.cfg.BindDN)
		}
	}
	if q.ChaseReferrals != adsi.ADS_CHASE_REFERRALS_NEVER {
		log.Debug("referral chasing is not supported over plain LDAP")
	}

	base := baseDN(q.Path)
	if base == "" {
		base = s.cfg.BaseDN
	}
	req := ldap.NewSearchRequest(
		base, ldapScope(q.Scope), ldap.NeverDerefAliases,
		q.SizeLimit, int(q.TimeLimit/time.Second), false,
		q.Filter, q.Attributes, nil,
	)
	pageSize := uint32(q.PageSize)
	if pageSize == 0 {
		pageSize = defaultLDAPPageSize
	}
	res, err := conn.SearchWithPaging(req, pageSize)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// a size limit hit still yields the entries read so far
		if !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) || res == nil {
			return nil, errors.Wrapf(err, "search %s under %s", q.Filter, base)
		}
	}
	entries := make([]Entry, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, newLDAPEntry(e))
	}
	return entries, nil
}

func newLDAPEntry(e *ldap.Entry) Entry {
	entry := Entry{DN: e.DN, Attributes: make(map[string][]interface{}, len(e.Attributes))}
	for _, attr := range e.Attributes {
		vals := make([]interface{}, 0, len(attr.Values))
		if binaryAttributes[strings.ToLower(attr.Name)] {
			for _, b := range attr.ByteValues {
				vals = append(vals, b)
			}
		} else {
			for _, v := range attr.Values {
				vals = append(vals, v)
			}
		}
		entry.Attributes[attr.Name] = vals
	}
	return entry
}

func ldapScope(scope adsi.ADsScope) int {
	switch scope {
	case adsi.ADS_SCOPE_BASE:
		return ldap.ScopeBaseObject
	case adsi.ADS_SCOPE_ONELEVEL:
		return ldap.ScopeSingleLevel
	default:
		return ldap.ScopeWholeSubtree
	}
}

// baseDN strips the provider and server from an ADsPath.
func baseDN(path string) string {
	const prefix = "LDAP://"
	if len(path) < len(prefix) || !strings.EqualFold(path[:len(prefix)], prefix) {
		return path
	}
	rest := path[len(prefix):]
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[i+1:]
	}
	return rest
}
