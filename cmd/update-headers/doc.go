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

/*
Update-headers checks and updates the license headers of files staged for a
commit. It is meant to be invoked from a Git pre-commit hook with the staged
file paths as arguments.

Newly added files get the current copyright header prepended. Modified files
that still carry the original author's header get a "Modifications on" line
recording today's date; files that already carry such a line get its date
range refreshed, keeping the earliest date.

The tool exits with status 0 when every header was already up to date and
with status 1 when it rewrote at least one file, aborting the commit so the
affected files can be re-staged.

Copyright lines can be adjusted per repository through an optional
.update-headers.yml file with the keys origin_copyright, copyright (a line
with a %d verb for the year) and license (a path to an alternative license
body). The UPDATE_HEADERS_CONFIG, UPDATE_HEADERS_LICENSE and
UPDATE_HEADERS_VERBOSE environment variables override the corresponding
settings.

With -check, stale headers are reported as diffs on stdout and no file is
written. With -install, the .git/hooks/pre-commit script is created and the
tool exits.
*/
package main

import (
	_ "embed"

	"github.com/b4pm-devops/sostrades-pre-commit/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
