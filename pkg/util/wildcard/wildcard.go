/*
 *	Copyright 2019-present by Nedim Sabic
 *	http://rabbitstack.github.io
 *	All Rights Reserved.
 *
 *	Licensed under the Apache License, Version 2.0 (the "License"); you may
 *	not use this file except in compliance with the License. You may obtain
 *	a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 */

// Package wildcard matches names against glob patterns where * stands for
// any run of characters and ? for exactly one.
package wildcard

import (
	"unicode"
)

// Match reports whether str matches the pattern. Letters are compared
// case-insensitively, the way Windows compares object names.
func Match(pattern, str string) bool {
	p, s := []rune(pattern), []rune(str)
	var pi, si int
	star, mark := -1, 0

	for si < len(s) {
		if pi < len(p) {
			switch {
			case p[pi] == '*':
				star, mark = pi, si
				pi++
				continue
			case p[pi] == '?' || equalFold(p[pi], s[si]):
				pi++
				si++
				continue
			}
		}
		// on mismatch let the last star swallow one more character
		if star == -1 {
			return false
		}
		pi = star + 1
		mark++
		si = mark
	}

	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

// Filter returns the names matching the pattern. An empty pattern matches
// every name.
func Filter(pattern string, names []string) []string {
	if pattern == "" {
		return names
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if Match(pattern, name) {
			out = append(out, name)
		}
	}
	return out
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
