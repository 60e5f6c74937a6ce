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
	"testing"

	"github.com/b4pm-devops/sostrades-pre-commit/testutil"
)

func TestDiffWriterLeavesFilesUntouched(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, []byte("old content\n"))

	w := NewDiffWriter()
	if err := w.Write(path, []byte("new content\n"), 0o644); err != nil {
		t.Fatalf("Write(): %v", err)
	}

	testutil.AssertEqual(t, string(readBack(t, path)), "old content\n")

	report := w.Report()
	if !strings.Contains(report, path) {
		t.Fatalf("report %q does not mention the file", report)
	}
}

func TestDiffWriterIgnoresIdenticalContent(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, []byte("same\n"))

	w := NewDiffWriter()
	if err := w.Write(path, []byte("same\n"), 0o644); err != nil {
		t.Fatalf("Write(): %v", err)
	}
	testutil.AssertEqual(t, w.Report(), "")
}

func TestCheckModifiedThroughDiffWriter(t *testing.T) {
	t.Parallel()

	lic, err := LoadLicense("")
	if err != nil {
		t.Fatalf("LoadLicense(): %v", err)
	}
	w := NewDiffWriter()
	h := NewHeaders(lic, DefaultConfig(), fixedNow, w)

	input := h.origin + "x = 1\n"
	path := writeTemp(t, []byte(input))

	changed, err := h.CheckModified(path)
	if err != nil {
		t.Fatalf("CheckModified(): %v", err)
	}
	testutil.AssertEqual(t, changed, true)
	// Changed is reported, but the file itself stays as it was.
	testutil.AssertEqual(t, string(readBack(t, path)), input)
	if w.Report() == "" {
		t.Fatal("diff report is empty")
	}
}
