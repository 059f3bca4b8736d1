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
	"text/template"
)

const (
	// maxPageSize is the MaxPageSize policy default of Active Directory domain controllers
	maxPageSize = 1000
	maxLDAPPort = 65535
	maxPollRate = 1000
)

var schema = `
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"definitions": {
		"duration": {"type": "string", "pattern": "^(0|([0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h))+)$"},
		"version":  {"type": "string", "pattern": "^[1-9][0-9]*\\.[0-9]+$"}
	},

	"type": "object",
	"properties": {
		"config-file":		{"type": "string"},
		"tapi": {
			"type": "object",
			"properties": {
				"app-name":			{"type": "string", "minLength": 1},
				"api-version-low":	{"$ref": "#/definitions/version"},
				"api-version-high":	{"$ref": "#/definitions/version"},
				"message-timeout":	{"$ref": "#/definitions/duration"},
				"poll-rate":		{"type": "integer", "minimum": 1, "maximum": {{ .MaxPollRate }}},
				"poll-burst":		{"type": "integer", "minimum": 1}
			},
			"additionalProperties": false
		},
		"adsi": {
			"type": "object",
			"properties": {
				"path":				{"type": "string"},
				"username":			{"type": "string"},
				"password":			{"type": "string"},
				"auth-flags":		{"type": "array", "items": {"type": "string", "enum": ["secure", "use-encryption", "use-ssl", "readonly-server", "prompt-credentials", "no-authentication", "fast-bind", "use-signing", "use-sealing", "use-delegation", "server-bind", "no-referral-chasing", "auth-reserved"]}},
				"page-size":		{"type": "integer", "minimum": 0, "maximum": {{ .MaxPageSize }}},
				"scope":			{"type": "string", "enum": ["base", "onelevel", "subtree"]},
				"size-limit":		{"type": "integer", "minimum": 0},
				"time-limit":		{"$ref": "#/definitions/duration"},
				"chase-referrals":	{"type": "string", "enum": ["never", "subordinate", "external", "always"]},
				"ldap": {
					"type": "object",
					"properties": {
						"server":				{"type": "string"},
						"port":					{"type": "integer", "minimum": 1, "maximum": {{ .MaxLDAPPort }}},
						"bind-dn":				{"type": "string"},
						"password":				{"type": "string"},
						"base-dn":				{"type": "string"},
						"tls":					{"type": "boolean"},
						"insecure-skip-verify":	{"type": "boolean"}
					},
					"additionalProperties": false
				},
				"queries": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"name":			{"type": "string", "minLength": 1},
							"filter":		{"type": "string", "minLength": 3},
							"attributes":	{"type": "array", "items": {"type": "string", "minLength": 1}},
							"scope":		{"type": "string", "enum": ["base", "onelevel", "subtree"]},
							"path":			{"type": "string"}
						},
						"required": ["name", "filter"],
						"additionalProperties": false
					}
				}
			},
			"additionalProperties": false
		},
		"wec": {
			"type": "object",
			"properties": {
				"retry": {
					"type": "object",
					"properties": {
						"initial-interval":	{"$ref": "#/definitions/duration"},
						"max-interval":		{"$ref": "#/definitions/duration"},
						"max-elapsed":		{"$ref": "#/definitions/duration"}
					},
					"additionalProperties": false
				},
				"delivery-mode":	{"type": "string", "enum": ["pull", "push"]},
				"content-format":	{"type": "string", "enum": ["events", "rendered-text"]}
			},
			"additionalProperties": false
		},
		"logging": {
			"type": "object",
			"properties": {
				"level":		{"type": "string", "enum": ["panic", "fatal", "error", "warn", "info", "debug", "trace"]},
				"max-age":		{"type": "integer", "minimum": 0},
				"max-backups":	{"type": "integer", "minimum": 1},
				"max-size":		{"type": "integer", "minimum": 1},
				"formatter":	{"type": "string", "enum": ["json", "text"]},
				"path":			{"type": "string"},
				"log-stdout":	{"type": "boolean"},
				"compress":		{"type": "boolean"},
				"redact":		{"type": "array", "items": {"type": "string", "minLength": 1}}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}
`

type schemaConfig struct {
	MaxPageSize int
	MaxLDAPPort int
	MaxPollRate int
}

func interpolateSchema() string {
	tmpl := template.Must(template.New("schema").Parse(schema))

	var b bytes.Buffer
	err := tmpl.Execute(&b, &schemaConfig{
		MaxPageSize: maxPageSize,
		MaxLDAPPort: maxLDAPPort,
		MaxPollRate: maxPollRate,
	})
	if err != nil {
		return ""
	}

	return b.String()
}
