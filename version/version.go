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

// Package version reports the name and build information of the running
// binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// CmdName returns the base name of the running binary.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

// Version returns a human-readable version string, derived from the build
// information embedded in the binary.
func Version() string {
	var sb strings.Builder

	ver := "devel"
	var rev string
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			ver = info.Main.Version
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				rev = s.Value
			}
		}
	}

	fmt.Fprintf(&sb, "%s %s", CmdName(), ver)
	if rev != "" {
		fmt.Fprintf(&sb, " (%s)", rev)
	}
	fmt.Fprintf(&sb, "\n%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return sb.String()
}
