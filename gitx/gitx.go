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

// Package gitx classifies the files of a pending commit by shelling out to
// git.
package gitx

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Changes holds the sets of paths classified as added or modified relative to
// the last commit. Membership is queried by path string.
type Changes struct {
	added    map[string]bool
	modified map[string]bool
}

// Added reports whether path is newly added.
func (c Changes) Added(path string) bool { return c.added[path] }

// Modified reports whether path is modified.
func (c Changes) Modified(path string) bool { return c.modified[path] }

// Changed classifies the files touched by the pending commit in the
// repository at dir, comparing the working tree (staged changes included)
// against HEAD. Statuses other than added and modified, like deletions and
// renames, are ignored.
func Changed(ctx context.Context, dir string) (Changes, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-status", "HEAD")
	cmd.Dir = dir

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Changes{}, errors.Wrapf(err, "git diff: %s", strings.TrimSpace(stderr.String()))
	}
	return parseNameStatus(out.String()), nil
}

// parseNameStatus parses `git diff --name-status` output: one file per line,
// a status letter, a tab, and the path. Rename and copy statuses carry a
// similarity score (for example R100) and two paths; they never match the
// plain A and M statuses and so are skipped.
func parseNameStatus(out string) Changes {
	c := Changes{
		added:    make(map[string]bool),
		modified: make(map[string]bool),
	}
	for _, line := range strings.Split(out, "\n") {
		status, path, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		switch status {
		case "A":
			c.added[path] = true
		case "M":
			c.modified[path] = true
		}
	}
	return c
}
