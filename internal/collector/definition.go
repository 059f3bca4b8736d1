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
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/util/multierror"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var definitionSchema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"definitions": {
		"duration": {"type": "string", "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h))+$"},
		"subscription": {
			"type": "object",
			"properties": {
				"name":                             {"type": "string", "minLength": 1, "pattern": "^[^/\\\\]+$"},
				"description":                      {"type": "string"},
				"enabled":                          {"type": "boolean"},
				"type":                             {"type": "string", "enum": ["collector-initiated", "source-initiated"]},
				"uri":                              {"type": "string", "minLength": 1},
				"query":                            {"type": "string", "minLength": 1},
				"log-file":                         {"type": "string"},
				"publisher-name":                   {"type": "string"},
				"locale":                           {"type": "string"},
				"dialect":                          {"type": "string"},
				"configuration-mode":               {"type": "string", "enum": ["normal", "custom", "min-latency", "min-bandwidth"]},
				"delivery-mode":                    {"type": "string", "enum": ["pull", "push"]},
				"max-items":                        {"type": "integer", "minimum": 1},
				"max-latency":                      {"$ref": "#/definitions/duration"},
				"heartbeat":                        {"$ref": "#/definitions/duration"},
				"content-format":                   {"type": "string", "enum": ["events", "rendered-text"]},
				"expires":                          {"type": "string", "format": "date-time"},
				"read-existing-events":             {"type": "boolean"},
				"transport-name":                   {"type": "string", "enum": ["http", "https", "HTTP", "HTTPS"]},
				"transport-port":                   {"type": "integer", "minimum": 1, "maximum": 65535},
				"credentials-type":                 {"type": "string", "enum": ["default", "negotiate", "digest", "basic", "local-machine"]},
				"common-user-name":                 {"type": "string"},
				"common-password":                  {"type": "string"},
				"host-name":                        {"type": "string"},
				"allowed-source-domain-computers":  {"type": "string"},
				"event-sources": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"address":   {"type": "string", "minLength": 1},
							"enabled":   {"type": "boolean"},
							"user-name": {"type": "string"},
							"password":  {"type": "string"}
						},
						"required": ["address"],
						"additionalProperties": false
					}
				}
			},
			"required": ["name", "query"],
			"additionalProperties": false
		}
	},
	"oneOf": [
		{"$ref": "#/definitions/subscription"},
		{
			"type": "object",
			"properties": {
				"subscriptions": {"type": "array", "items": {"$ref": "#/definitions/subscription"}, "minItems": 1}
			},
			"required": ["subscriptions"],
			"additionalProperties": false
		}
	]
}
`

var schemaLoader = gojsonschema.NewStringLoader(definitionSchema)

// LoadDefinitions reads the subscription definitions from a YAML or JSON file.
func LoadDefinitions(path string, cfg config.WECConfig) ([]Subscription, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read subscription definitions")
	}
	subs, err := ParseDefinitions(b, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid subscription definitions in %s", path)
	}
	return subs, nil
}

// ParseDefinitions decodes the definitions document. The document holds
// either a single subscription or a list of them under the subscriptions
// key. Omitted settings take the defaults of the collector config. Template
// directives are expanded before decoding, so secrets can be pulled from
// the environment with {{ env "NAME" }}.
func ParseDefinitions(b []byte, cfg config.WECConfig) ([]Subscription, error) {
	b, err := renderTmpl(b)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document is empty")
	}
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		errs := make([]error, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			errs = append(errs, errors.New(e.String()))
		}
		return nil, multierror.Wrap(errs...)
	}

	var raw []interface{}
	if list, ok := doc["subscriptions"].([]interface{}); ok {
		raw = list
	} else {
		raw = []interface{}{doc}
	}
	subs := make([]Subscription, 0, len(raw))
	seen := make(map[string]bool)
	for _, r := range raw {
		sub := defaultSubscription(cfg)
		if err := decode(r, &sub); err != nil {
			return nil, err
		}
		key := strings.ToLower(sub.Name)
		if seen[key] {
			return nil, fmt.Errorf("subscription %s is defined more than once", sub.Name)
		}
		seen[key] = true
		if err := sub.checkTuning(); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// renderTmpl executes the template directives of the definitions document.
func renderTmpl(b []byte) ([]byte, error) {
	if !bytes.Contains(b, []byte("{{")) {
		return b, nil
	}
	tmpl, err := template.New("definitions").Funcs(sprig.TxtFuncMap()).Parse(string(b))
	if err != nil {
		return nil, errors.Wrap(err, "malformed template")
	}
	tmpl.Option("missingkey=error")
	var w bytes.Buffer
	if err := tmpl.Execute(&w, nil); err != nil {
		return nil, errors.Wrap(err, "unable to expand template")
	}
	return w.Bytes(), nil
}

func defaultSubscription(cfg config.WECConfig) Subscription {
	return Subscription{
		Enabled:           true,
		Type:              TypeCollectorInitiated,
		URI:               defaultURI,
		LogFile:           defaultLogFile,
		ConfigurationMode: ModeNormal,
		DeliveryMode:      cfg.DeliveryMode,
		ContentFormat:     cfg.ContentFormat,
	}
}

var (
	eventSourceType = reflect.TypeOf(EventSource{})
	timeType        = reflect.TypeOf(time.Time{})
)

// enableSourcesHook turns on event sources that don't say otherwise.
func enableSourcesHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != eventSourceType {
			return data, nil
		}
		m, ok := data.(map[string]interface{})
		if !ok {
			return data, nil
		}
		if _, ok := m["enabled"]; !ok {
			src := make(map[string]interface{}, len(m)+1)
			for k, v := range m {
				src[k] = v
			}
			src["enabled"] = true
			return src, nil
		}
		return data, nil
	}
}

// timeHook parses RFC 3339 timestamps. Quoted and unquoted YAML
// timestamps both reach the decoder as strings.
func timeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != timeType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.Parse(time.RFC3339, v)
		case time.Time:
			return v, nil
		}
		return data, nil
	}
}

func decode(input interface{}, output *Subscription) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			timeHook(),
			enableSourcesHook(),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
