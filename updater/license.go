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
	_ "embed"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

//go:embed apache_license.txt
var apacheLicense string

// LoadLicense returns the license body shared by every header variant. With
// an empty path it returns the embedded Apache-2.0 body; otherwise it reads
// the body from the given file. A missing or unreadable file is fatal and
// reported before any file is touched.
func LoadLicense(path string) (string, error) {
	if path == "" {
		return strings.TrimRight(apacheLicense, "\n"), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "load license template")
	}
	return strings.TrimRight(string(data), "\n"), nil
}
