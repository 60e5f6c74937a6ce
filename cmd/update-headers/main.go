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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/b4pm-devops/sostrades-pre-commit/cli"
	"github.com/b4pm-devops/sostrades-pre-commit/gitx"
	"github.com/b4pm-devops/sostrades-pre-commit/logger"
	"github.com/b4pm-devops/sostrades-pre-commit/updater"
)

func main() { cli.Main(new(app)) }

// errHeadersUpdated drives the non-zero exit status that makes the hosting
// pre-commit run abort, so the user can re-stage the rewritten files.
var errHeadersUpdated = errors.New("headers were updated, re-stage the affected files and commit again")

type app struct {
	check   bool
	install bool
	config  string
	license string
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Report files whose header is stale, without rewriting them.")
	fs.BoolVar(&a.install, "install", false, "Install the Git pre-commit hook and exit.")
	fs.StringVar(&a.config, "config", updater.DefaultConfigFile, "Path to the configuration `file`.")
	fs.StringVar(&a.license, "license", "", "Read the license body from `file` instead of the embedded one.")
	fs.BoolVar(&a.verbose, "v", false, "Enable debug logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	overrides, err := updater.ParseEnv(env.Getenv)
	if err != nil {
		return err
	}
	if overrides.Config != "" {
		a.config = overrides.Config
	}
	if overrides.License != "" {
		a.license = overrides.License
	}
	if overrides.Verbose {
		a.verbose = true
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	ctx = logger.Put(ctx, logger.New(tint.NewHandler(env.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})))

	if a.install {
		return installHook(ctx)
	}

	if len(env.Args) == 0 {
		logger.Debug(ctx, "no files to check")
		return nil
	}

	cfg, err := updater.LoadConfig(a.config)
	if err != nil {
		return err
	}
	if a.license == "" {
		a.license = cfg.License
	}
	license, err := updater.LoadLicense(a.license)
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	changes, err := gitx.Changed(ctx, dir)
	if err != nil {
		return err
	}

	var w updater.Writer = updater.FSWriter{}
	var differ *updater.DiffWriter
	if a.check {
		differ = updater.NewDiffWriter()
		w = differ
	}

	headers := updater.NewHeaders(license, cfg, time.Now(), w)

	width := terminalWidth(env.Stderr)
	changed, err := headers.UpdateHeaders(ctx, dir, env.Args, changes, func(current, total int, path string) {
		env.Logf("%s", progressMessage(current, total, path, width))
	})
	if err != nil {
		return err
	}

	if a.check {
		if report := differ.Report(); report != "" {
			fmt.Fprint(env.Stdout, report)
			return cli.SilentExitError(errHeadersUpdated)
		}
		return nil
	}

	if changed {
		return errHeadersUpdated
	}
	return nil
}

// progressMessage renders the per-file progress line, shortening the path to
// fit the terminal. A width of zero disables shortening; the counter prefix
// is always kept.
func progressMessage(current, total int, path string, width int) string {
	prefix := fmt.Sprintf("[%d/%d] Checking ", current, total)
	msg := prefix + path
	if width <= 0 || len(msg) <= width {
		return msg
	}

	avail := width - len(prefix)
	if avail <= 0 {
		return prefix
	}
	const ellipsis = "..."
	if avail > len(ellipsis) {
		return prefix + path[:avail-len(ellipsis)] + ellipsis
	}
	return prefix + path[:avail]
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// hookShellScript re-invokes the tool with the staged files on every commit.
const hookShellScript = `#!/bin/sh
exec update-headers $(git diff --cached --name-only --diff-filter=AM)
`

func installHook(ctx context.Context) error {
	hookPath := filepath.Join(".git", "hooks", "pre-commit")

	if _, err := os.Stat(hookPath); err == nil {
		logger.Info(ctx, "pre-commit hook already installed", slog.String("path", hookPath))
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(hookPath, []byte(hookShellScript), 0o755); err != nil {
		return err
	}
	logger.Info(ctx, "pre-commit hook installed", slog.String("path", hookPath))
	return nil
}
