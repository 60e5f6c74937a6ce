// Copyright 2026 Capgemini
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package updater

import (
	"strings"
	"time"
)

// modToken starts every modification line:
//
//	Modifications on 2024/01/10 Copyright 2024 Capgemini
//	Modifications on 2024/01/10-2024/03/05 Copyright 2024 Capgemini
//
// The date field is either a single date or two dates joined by a dash, the
// first being the earliest modification and the second the most recent one.
const modToken = "Modifications on "

// modLine is a parsed modification line.
type modLine struct {
	text   string // exact matched text, replaced as-is
	first  string
	second string // empty when only one date is recorded
}

// latest returns the most recent date the line records.
func (ml modLine) latest() string {
	if ml.second != "" {
		return ml.second
	}
	return ml.first
}

// renewed returns the replacement modification line, preserving the first
// date and recording today as the most recent one, with this year's
// copyright.
func (h *Headers) renewed(first string) string {
	return modToken + first + "-" + h.today + " " + h.copyright
}

// findModLine scans content for a modification line. The match is
// deliberately strict: after the token there must be a valid date field,
// a space, and the configured copyright line with any 20NN year, ending the
// line. Anything else is passed through untouched.
func (h *Headers) findModLine(content string) (modLine, bool) {
	for _, line := range strings.Split(content, "\n") {
		i := strings.Index(line, modToken)
		if i < 0 {
			continue
		}
		rest := line[i+len(modToken):]

		dates, copyright, ok := strings.Cut(rest, " ")
		if !ok {
			continue
		}
		first, second, ok := parseDates(dates)
		if !ok {
			continue
		}
		if !h.matchCopyright(copyright) {
			continue
		}
		return modLine{text: line[i:], first: first, second: second}, true
	}
	return modLine{}, false
}

// matchCopyright reports whether s is the configured copyright line with any
// 20NN year.
func (h *Headers) matchCopyright(s string) bool {
	if !strings.HasPrefix(s, h.prefix) || !strings.HasSuffix(s, h.suffix) {
		return false
	}
	year := strings.TrimSuffix(strings.TrimPrefix(s, h.prefix), h.suffix)
	if len(year) != 4 || year[0] != '2' || year[1] != '0' {
		return false
	}
	return isDigits(year[2:])
}

// parseDates splits the date field of a modification line into its one or
// two dates, validating each.
func parseDates(s string) (first, second string, ok bool) {
	first, second, dashed := strings.Cut(s, "-")
	if !validDate(first) {
		return "", "", false
	}
	if dashed && !validDate(second) {
		return "", "", false
	}
	return first, second, true
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
