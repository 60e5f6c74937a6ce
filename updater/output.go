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
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Writer applies updated file contents.
type Writer interface {
	Write(path string, data []byte, perm fs.FileMode) error
}

// FSWriter rewrites files in place, keeping their permissions.
type FSWriter struct{}

// Write implements [Writer].
func (FSWriter) Write(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// DiffWriter records a diff between the current and the updated contents of
// each file instead of writing anything. It backs check mode, where stale
// headers are reported but files stay untouched.
type DiffWriter struct {
	differ *diffmatchpatch.DiffMatchPatch
	diffs  []fileDiff
}

type fileDiff struct {
	path  string
	diffs []diffmatchpatch.Diff
}

// NewDiffWriter returns an empty DiffWriter.
func NewDiffWriter() *DiffWriter {
	return &DiffWriter{differ: diffmatchpatch.New()}
}

// Write implements [Writer].
func (w *DiffWriter) Write(path string, data []byte, _ fs.FileMode) error {
	current, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !bytes.Equal(current, data) {
		w.diffs = append(w.diffs, fileDiff{
			path:  path,
			diffs: w.differ.DiffMain(string(current), string(data), false),
		})
	}
	return nil
}

// Report returns a printable summary of every recorded diff, one block per
// file, or an empty string when nothing would change.
func (w *DiffWriter) Report() string {
	var sb strings.Builder
	for _, d := range w.diffs {
		fmt.Fprintf(&sb, "%s:\n%s", d.path, w.differ.DiffPrettyText(d.diffs))
	}
	return sb.String()
}
