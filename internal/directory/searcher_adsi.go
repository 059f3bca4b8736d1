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
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/sys/adsi"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// allAttributes requests every attribute of the matched objects.
const allAttributes = ^uint32(0)

// ADSISearcher searches the directory through the IDirectorySearch interface.
type ADSISearcher struct {
	username string
	password string
	flags    adsi.ADsAuthentication
}

// NewADSISearcher creates the ADSI searcher binding with the configured credentials.
func NewADSISearcher(cfg config.ADSIConfig) (*ADSISearcher, error) {
	flags, err := ParseAuthFlags(cfg.AuthFlags)
	if err != nil {
		return nil, err
	}
	return &ADSISearcher{username: cfg.Username, password: cfg.Password, flags: flags}, nil
}

// Search binds to the search root and walks the result rows. Each row
// becomes an entry holding the decoded column values.
func (s *ADSISearcher) Search(ctx context.Context, q Query) ([]Entry, error) {
	release, err := initCOM()
	if err != nil {
		return nil, err
	}
	defer release()

	path := q.Path
	if path == "" {
		path, err = s.defaultPath()
		if err != nil {
			return nil, err
		}
	}
	var obj unsafe.Pointer
	if err := s.open(path, &adsi.IID_IDirectorySearch, &obj); err != nil {
		return nil, err
	}
	ds := (*adsi.IDirectorySearch)(obj)
	defer ds.Release()

	prefs := searchPrefs(q)
	if hr := ds.SetSearchPreference(&prefs[0], uint32(len(prefs))); hr.Failed() {
		return nil, errors.Wrap(hr, "SetSearchPreference")
	}
	for _, p := range prefs {
		if p.Status != adsi.ADS_STATUS_S_OK {
			log.Warnf("search preference %d was rejected with status %d", p.SearchPref, p.Status)
		}
	}

	filter, err := windows.UTF16PtrFromString(q.Filter)
	if err != nil {
		return nil, err
	}
	var (
		attrs *(*uint16)
		count = allAttributes
	)
	if len(q.Attributes) > 0 {
		names := make([]*uint16, len(q.Attributes))
		for i, a := range q.Attributes {
			if names[i], err = windows.UTF16PtrFromString(a); err != nil {
				return nil, err
			}
		}
		attrs, count = &names[0], uint32(len(names))
	}
	var h adsi.ADsSearchHandle
	if hr := ds.ExecuteSearch(filter, attrs, count, &h); hr.Failed() {
		return nil, errors.Wrapf(hr, "ExecuteSearch(%s)", q.Filter)
	}
	defer ds.CloseSearchHandle(h)

	var entries []Entry
	err = walkRows(ctx, ds, h, lastErrorCode, func() error {
		e, err := readRow(ds, h)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			ds.AbandonSearch(h)
		}
		return entries, err
	}
	log.Debugf("search %s under %s matched %d entries", q.Filter, path, len(entries))
	return entries, nil
}

// rowCursor moves through the rows of an executed search.
type rowCursor interface {
	GetFirstRow(h adsi.ADsSearchHandle) adsi.HResult
	GetNextRow(h adsi.ADsSearchHandle) adsi.HResult
}

func lastErrorCode() uint32 {
	code, _ := adsi.LastError()
	return code
}

// walkRows calls fn once per result row. Paged searches may answer
// S_ADS_NOMORE_ROWS while the provider still fetches the next page, in which
// case the extended error is ERROR_MORE_DATA and the row is requested again.
func walkRows(ctx context.Context, c rowCursor, h adsi.ADsSearchHandle, lastErr func() uint32, fn func() error) error {
	hr := c.GetFirstRow(h)
	for {
		for hr == adsi.S_ADS_NOMORE_ROWS && lastErr() == uint32(windows.ERROR_MORE_DATA) {
			if err := ctx.Err(); err != nil {
				return err
			}
			hr = c.GetNextRow(h)
		}
		if hr == adsi.S_ADS_NOMORE_ROWS {
			return nil
		}
		if hr.Failed() {
			return errors.Wrap(hr, "GetNextRow")
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(); err != nil {
			return err
		}
		hr = c.GetNextRow(h)
	}
}

func (s *ADSISearcher) open(path string, iid *windows.GUID, obj *unsafe.Pointer) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	user, err := utf16OrNil(s.username)
	if err != nil {
		return err
	}
	pass, err := utf16OrNil(s.password)
	if err != nil {
		return err
	}
	if hr := adsi.ADsOpenObject(p, user, pass, s.flags, iid, obj); hr.Failed() {
		return errors.Wrapf(hr, "ADsOpenObject(%s)", path)
	}
	return nil
}

// defaultPath resolves the default naming context of the current domain from RootDSE.
func (s *ADSISearcher) defaultPath() (string, error) {
	var obj unsafe.Pointer
	if err := s.open("LDAP://RootDSE", &adsi.IID_IADs, &obj); err != nil {
		return "", err
	}
	root := (*adsi.IADs)(obj)
	defer root.Release()

	name, err := windows.UTF16PtrFromString("defaultNamingContext")
	if err != nil {
		return "", err
	}
	var v adsi.Variant
	if hr := root.Get(name, &v); hr.Failed() {
		return "", errors.Wrap(hr, "IADs::Get(defaultNamingContext)")
	}
	defer v.Clear()
	nc, _ := v.Value().(string)
	if nc == "" {
		return "", errors.New("RootDSE has no default naming context")
	}
	return "LDAP://" + nc, nil
}

func readRow(ds *adsi.IDirectorySearch, h adsi.ADsSearchHandle) (Entry, error) {
	e := Entry{Attributes: make(map[string][]interface{})}
	for {
		var name *uint16
		hr := ds.GetNextColumnName(h, &name)
		if hr == adsi.S_ADS_NOMORE_COLUMNS {
			break
		}
		if hr.Failed() {
			return e, errors.Wrap(hr, "GetNextColumnName")
		}
		attr := windows.UTF16PtrToString(name)
		var col adsi.ADsSearchColumn
		if hr := ds.GetColumn(h, name, &col); hr.Succeeded() {
			e.Attributes[attr] = columnValues(col.ValueSlice())
			ds.FreeColumn(&col)
		} else {
			log.Debugf("unable to read column %s: %v", attr, hr)
		}
		adsi.FreeADsMem(unsafe.Pointer(name))
	}
	e.DN = e.String("distinguishedName")
	if e.DN == "" {
		e.DN = e.String("ADsPath")
	}
	return e, nil
}

func columnValues(vals []adsi.ADsValue) []interface{} {
	out := make([]interface{}, 0, len(vals))
	for i := range vals {
		out = append(out, vals[i].Interface())
	}
	return out
}

// searchPrefs translates the query options into search preferences.
// Zero limits are left to the server defaults.
func searchPrefs(q Query) []adsi.ADsSearchPrefInfo {
	prefs := []adsi.ADsSearchPrefInfo{
		{SearchPref: adsi.ADS_SEARCHPREF_SEARCH_SCOPE, Value: adsi.NewIntegerValue(uint32(q.Scope))},
		{SearchPref: adsi.ADS_SEARCHPREF_CHASE_REFERRALS, Value: adsi.NewIntegerValue(uint32(q.ChaseReferrals))},
	}
	if q.PageSize > 0 {
		prefs = append(prefs, adsi.ADsSearchPrefInfo{SearchPref: adsi.ADS_SEARCHPREF_PAGESIZE, Value: adsi.NewIntegerValue(uint32(q.PageSize))})
	}
	if q.SizeLimit > 0 {
		prefs = append(prefs, adsi.ADsSearchPrefInfo{SearchPref: adsi.ADS_SEARCHPREF_SIZE_LIMIT, Value: adsi.NewIntegerValue(uint32(q.SizeLimit))})
	}
	if q.TimeLimit > 0 {
		secs := uint32((q.TimeLimit + time.Second - 1) / time.Second)
		prefs = append(prefs, adsi.ADsSearchPrefInfo{SearchPref: adsi.ADS_SEARCHPREF_TIME_LIMIT, Value: adsi.NewIntegerValue(secs)})
	}
	return prefs
}
