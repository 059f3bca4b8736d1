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

package collector

import (
	"sync"
	"time"

	"github.com/rabbitstack/wincall/pkg/sys/wec"
	"golang.org/x/sys/windows"
)

type fakeSubscription struct {
	props   map[wec.EcSubscriptionPropertyID]interface{}
	sources []map[wec.EcSubscriptionPropertyID]interface{}
	saved   int
}

type fakeStatus struct {
	values  map[wec.EcSubscriptionRuntimeStatusInfoID]interface{}
	sources map[string]map[wec.EcSubscriptionRuntimeStatusInfoID]interface{}
	// actives is consumed one value per read of the active status
	actives []uint32
}

type fakeCollector struct {
	mu      sync.Mutex
	subs    map[string]*fakeSubscription
	status  map[string]*fakeStatus
	handles map[wec.EcHandle]string
	arrays  map[wec.EcObjectArrayPropertyHandle]string
	next    uintptr
	closed  int
	retried []string
	writes  []wec.EcSubscriptionPropertyID
}

func newFakeCollector() *fakeCollector {
	return &fakeCollector{
		subs:    make(map[string]*fakeSubscription),
		status:  make(map[string]*fakeStatus),
		handles: make(map[wec.EcHandle]string),
		arrays:  make(map[wec.EcObjectArrayPropertyHandle]string),
		next:    0x100,
	}
}

func (f *fakeCollector) handle() uintptr {
	f.next++
	return f.next
}

func (f *fakeCollector) subscriptions() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.subs))
	for name := range f.subs {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeCollector) open(name string, access, flags uint32) (wec.EcHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[name]; !ok {
		if flags == wec.EcOpenExisting {
			return 0, windows.ERROR_NOT_FOUND
		}
		f.subs[name] = &fakeSubscription{props: make(map[wec.EcSubscriptionPropertyID]interface{})}
	}
	h := wec.EcHandle(f.handle())
	f.handles[h] = name
	return h, nil
}

func (f *fakeCollector) close(h wec.EcHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	delete(f.handles, h)
	delete(f.arrays, wec.EcObjectArrayPropertyHandle(h))
	return nil
}

func (f *fakeCollector) sub(h wec.EcHandle) (*fakeSubscription, error) {
	name, ok := f.handles[h]
	if !ok {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	return f.subs[name], nil
}

func (f *fakeCollector) property(h wec.EcHandle, id wec.EcSubscriptionPropertyID) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.sub(h)
	if err != nil {
		return nil, err
	}
	if id == wec.EcSubscriptionEventSources {
		arr := wec.EcObjectArrayPropertyHandle(f.handle())
		f.arrays[arr] = f.handles[h]
		return arr, nil
	}
	v, ok := s.props[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeCollector) setProperty(h wec.EcHandle, id wec.EcSubscriptionPropertyID, v *wec.EcVariant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.sub(h)
	if err != nil {
		return err
	}
	f.writes = append(f.writes, id)
	s.props[id] = v.Value()
	return nil
}

func (f *fakeCollector) save(h wec.EcHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.sub(h)
	if err != nil {
		return err
	}
	s.saved++
	return nil
}

func (f *fakeCollector) delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[name]; !ok {
		return windows.ERROR_NOT_FOUND
	}
	delete(f.subs, name)
	return nil
}

func (f *fakeCollector) array(arr wec.EcObjectArrayPropertyHandle) (*fakeSubscription, error) {
	name, ok := f.arrays[arr]
	if !ok {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	return f.subs[name], nil
}

func (f *fakeCollector) arraySize(arr wec.EcObjectArrayPropertyHandle) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.array(arr)
	if err != nil {
		return 0, err
	}
	return uint32(len(s.sources)), nil
}

func (f *fakeCollector) arrayProperty(arr wec.EcObjectArrayPropertyHandle, id wec.EcSubscriptionPropertyID, index uint32) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.array(arr)
	if err != nil {
		return nil, err
	}
	if int(index) >= len(s.sources) {
		return nil, windows.ERROR_INVALID_INDEX
	}
	if id == wec.EcSubscriptionEventSourcePassword {
		return nil, windows.ERROR_ACCESS_DENIED
	}
	return s.sources[index][id], nil
}

func (f *fakeCollector) setArrayProperty(arr wec.EcObjectArrayPropertyHandle, id wec.EcSubscriptionPropertyID, index uint32, v *wec.EcVariant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.array(arr)
	if err != nil {
		return err
	}
	if int(index) >= len(s.sources) {
		return windows.ERROR_INVALID_INDEX
	}
	s.sources[index][id] = v.Value()
	return nil
}

func (f *fakeCollector) insertElement(arr wec.EcObjectArrayPropertyHandle, index uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.array(arr)
	if err != nil {
		return err
	}
	if int(index) > len(s.sources) {
		return windows.ERROR_INVALID_INDEX
	}
	s.sources = append(s.sources, nil)
	copy(s.sources[index+1:], s.sources[index:])
	s.sources[index] = make(map[wec.EcSubscriptionPropertyID]interface{})
	return nil
}

func (f *fakeCollector) removeElement(arr wec.EcObjectArrayPropertyHandle, index uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.array(arr)
	if err != nil {
		return err
	}
	if int(index) >= len(s.sources) {
		return windows.ERROR_INVALID_INDEX
	}
	s.sources = append(s.sources[:index], s.sources[index+1:]...)
	return nil
}

func (f *fakeCollector) runtimeStatus(name string, id wec.EcSubscriptionRuntimeStatusInfoID, source string) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.status[name]
	if !ok {
		return nil, windows.ERROR_NOT_FOUND
	}
	if source != "" {
		vals, ok := st.sources[source]
		if !ok {
			return nil, windows.ERROR_NOT_FOUND
		}
		return vals[id], nil
	}
	if id == wec.EcSubscriptionRunTimeStatusActive && len(st.actives) > 0 {
		v := st.actives[0]
		if len(st.actives) > 1 {
			st.actives = st.actives[1:]
		}
		return v, nil
	}
	if id == wec.EcSubscriptionRunTimeStatusEventSources {
		sources := make([]string, 0, len(st.sources))
		for src := range st.sources {
			sources = append(sources, src)
		}
		return sources, nil
	}
	return st.values[id], nil
}

func (f *fakeCollector) retry(name, source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[name]; !ok {
		return windows.ERROR_NOT_FOUND
	}
	f.retried = append(f.retried, name+"/"+source)
	return nil
}

var heartbeat = time.Date(2022, 5, 10, 8, 30, 0, 0, time.UTC)
