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
	"github.com/rabbitstack/wincall/pkg/sys/wec"
)

// ecAPI is the subset of the event collector functions the collector consumes.
// Property getters return the decoded variant value, so strings are copied
// before the variant buffer goes away.
type ecAPI interface {
	subscriptions() ([]string, error)
	open(name string, access, flags uint32) (wec.EcHandle, error)
	close(h wec.EcHandle) error
	property(sub wec.EcHandle, id wec.EcSubscriptionPropertyID) (interface{}, error)
	setProperty(sub wec.EcHandle, id wec.EcSubscriptionPropertyID, v *wec.EcVariant) error
	save(sub wec.EcHandle) error
	delete(name string) error
	arraySize(arr wec.EcObjectArrayPropertyHandle) (uint32, error)
	arrayProperty(arr wec.EcObjectArrayPropertyHandle, id wec.EcSubscriptionPropertyID, index uint32) (interface{}, error)
	setArrayProperty(arr wec.EcObjectArrayPropertyHandle, id wec.EcSubscriptionPropertyID, index uint32, v *wec.EcVariant) error
	insertElement(arr wec.EcObjectArrayPropertyHandle, index uint32) error
	removeElement(arr wec.EcObjectArrayPropertyHandle, index uint32) error
	runtimeStatus(name string, id wec.EcSubscriptionRuntimeStatusInfoID, source string) (interface{}, error)
	retry(name, source string) error
}

// sysCollector dispatches to wecapi.dll.
type sysCollector struct{}

func (sysCollector) subscriptions() ([]string, error) { return wec.Subscriptions() }

func (sysCollector) open(name string, access, flags uint32) (wec.EcHandle, error) {
	return wec.OpenSubscription(name, access, flags)
}

func (sysCollector) close(h wec.EcHandle) error { return wec.EcClose(h) }

func (sysCollector) property(sub wec.EcHandle, id wec.EcSubscriptionPropertyID) (interface{}, error) {
	v, err := wec.GetSubscriptionProperty(sub, id)
	if err != nil {
		return nil, err
	}
	return v.Value(), nil
}

func (sysCollector) setProperty(sub wec.EcHandle, id wec.EcSubscriptionPropertyID, v *wec.EcVariant) error {
	return wec.EcSetSubscriptionProperty(sub, id, 0, v)
}

func (sysCollector) save(sub wec.EcHandle) error { return wec.EcSaveSubscription(sub, 0) }

func (sysCollector) delete(name string) error { return wec.DeleteSubscription(name) }

func (sysCollector) arraySize(arr wec.EcObjectArrayPropertyHandle) (uint32, error) {
	return wec.ObjectArraySize(arr)
}

func (sysCollector) arrayProperty(arr wec.EcObjectArrayPropertyHandle, id wec.EcSubscriptionPropertyID, index uint32) (interface{}, error) {
	v, err := wec.GetObjectArrayProperty(arr, id, index)
	if err != nil {
		return nil, err
	}
	return v.Value(), nil
}

func (sysCollector) setArrayProperty(arr wec.EcObjectArrayPropertyHandle, id wec.EcSubscriptionPropertyID, index uint32, v *wec.EcVariant) error {
	return wec.EcSetObjectArrayProperty(arr, id, index, 0, v)
}

func (sysCollector) insertElement(arr wec.EcObjectArrayPropertyHandle, index uint32) error {
	return wec.EcInsertObjectArrayElement(arr, index)
}

func (sysCollector) removeElement(arr wec.EcObjectArrayPropertyHandle, index uint32) error {
	return wec.EcRemoveObjectArrayElement(arr, index)
}

func (sysCollector) runtimeStatus(name string, id wec.EcSubscriptionRuntimeStatusInfoID, source string) (interface{}, error) {
	v, err := wec.GetSubscriptionRunTimeStatus(name, id, source)
	if err != nil {
		return nil, err
	}
	return v.Value(), nil
}

func (sysCollector) retry(name, source string) error { return wec.RetrySubscription(name, source) }
