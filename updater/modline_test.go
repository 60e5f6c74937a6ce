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
	"testing"

	"github.com/b4pm-devops/sostrades-pre-commit/testutil"
)

func TestFindModLine(t *testing.T) {
	t.Parallel()

	h := testHeaders(t, fixedNow)

	cases := map[string]struct {
		content    string
		wantOK     bool
		wantText   string
		wantFirst  string
		wantSecond string
	}{
		"single date": {
			content:   "Modifications on 2024/01/10 Copyright 2024 Capgemini\n",
			wantOK:    true,
			wantText:  "Modifications on 2024/01/10 Copyright 2024 Capgemini",
			wantFirst: "2024/01/10",
		},
		"date range": {
			content:    "Modifications on 2024/01/10-2024/02/01 Copyright 2023 Capgemini\n",
			wantOK:     true,
			wantText:   "Modifications on 2024/01/10-2024/02/01 Copyright 2023 Capgemini",
			wantFirst:  "2024/01/10",
			wantSecond: "2024/02/01",
		},
		"embedded in a larger file": {
			content: "'''\nCopyright 2022 Airbus SAS\n" +
				"Modifications on 2023/12/31 Copyright 2023 Capgemini\n\nbody\n'''\n",
			wantOK:    true,
			wantText:  "Modifications on 2023/12/31 Copyright 2023 Capgemini",
			wantFirst: "2023/12/31",
		},
		"line with a comment prefix": {
			content:   "# Modifications on 2024/01/10 Copyright 2024 Capgemini\n",
			wantOK:    true,
			wantText:  "Modifications on 2024/01/10 Copyright 2024 Capgemini",
			wantFirst: "2024/01/10",
		},
		"no modification line": {
			content: "just some text\n",
		},
		"wrong organization": {
			content: "Modifications on 2024/01/10 Copyright 2024 Airbus SAS\n",
		},
		"year outside 20NN": {
			content: "Modifications on 2024/01/10 Copyright 1999 Capgemini\n",
		},
		"malformed date": {
			content: "Modifications on someday Copyright 2024 Capgemini\n",
		},
		"invalid calendar date": {
			content: "Modifications on 2024/13/40 Copyright 2024 Capgemini\n",
		},
		"dangling dash": {
			content: "Modifications on 2024/01/10- Copyright 2024 Capgemini\n",
		},
		"trailing text after the copyright": {
			content: "Modifications on 2024/01/10 Copyright 2024 Capgemini and more\n",
		},
		"token without the rest": {
			content: "Modifications on \n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ml, ok := h.findModLine(tc.content)
			testutil.AssertEqual(t, ok, tc.wantOK)
			if !tc.wantOK {
				return
			}
			testutil.AssertEqual(t, ml.text, tc.wantText)
			testutil.AssertEqual(t, ml.first, tc.wantFirst)
			testutil.AssertEqual(t, ml.second, tc.wantSecond)
		})
	}
}

func TestModLineLatest(t *testing.T) {
	t.Parallel()

	testutil.AssertEqual(t, modLine{first: "2024/01/10"}.latest(), "2024/01/10")
	testutil.AssertEqual(t, modLine{first: "2024/01/10", second: "2024/02/01"}.latest(), "2024/02/01")
}

func TestRenewed(t *testing.T) {
	t.Parallel()

	h := testHeaders(t, fixedNow)
	got := h.renewed("2024/01/10")
	testutil.AssertEqual(t, got, "Modifications on 2024/01/10-2024/03/05 Copyright 2024 Capgemini")
}

func TestMatchCopyrightRespectsConfig(t *testing.T) {
	t.Parallel()

	lic, err := LoadLicense("")
	if err != nil {
		t.Fatalf("LoadLicense(): %v", err)
	}
	cfg := Config{
		OriginCopyright: "Copyright 2010 Example Corp",
		Copyright:       "Copyright %d New Corp",
	}
	h := NewHeaders(lic, cfg, fixedNow, FSWriter{})

	if !h.matchCopyright("Copyright 2025 New Corp") {
		t.Error("configured copyright with another year should match")
	}
	if h.matchCopyright("Copyright 2025 Capgemini") {
		t.Error("default copyright should not match a custom config")
	}
}
