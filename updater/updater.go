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

// Package updater checks and rewrites the license headers of files touched by
// a pending commit.
//
// A header is a block of text wrapped in a pair of ''' markers at the very
// start of a file. Three variants exist: the origin header carries the
// original author's copyright line, the current header carries the present
// maintainer's line with this year, and the modified header is the origin
// header augmented with a "Modifications on <date> <copyright>" line. Newly
// added files get the current header prepended; modified files transition
// from the origin header to the modified header, and already-modified files
// get their modification date range refreshed.
package updater

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/b4pm-devops/sostrades-pre-commit/logger"
)

const dateLayout = "2006/01/02"

// Changes reports how a file is classified in the pending commit. Paths are
// compared as strings, relative to the repository root.
type Changes interface {
	Added(path string) bool
	Modified(path string) bool
}

// ProgressFunc is called before each file is processed, with its 1-based
// position in the list.
type ProgressFunc func(current, total int, path string)

// Headers holds the header templates for a single run. It is built once by
// NewHeaders and is immutable afterwards.
type Headers struct {
	origin   string
	current  string
	modified string

	copyright string // current copyright line, with this year filled in
	prefix    string // copyright line text before the year
	suffix    string // copyright line text after the year
	today     string
	w         Writer
}

// NewHeaders builds the header templates from the license body, the
// configured copyright lines and the given date. The date is injected rather
// than read from the clock so that the "as of which day" dependency is
// explicit. Rewritten files go through w; pass FSWriter to write in place.
func NewHeaders(license string, cfg Config, now time.Time, w Writer) *Headers {
	today := now.Format(dateLayout)
	prefix, suffix, _ := strings.Cut(cfg.Copyright, "%d")
	copyright := prefix + now.Format("2006") + suffix

	modLine := modToken + today + " " + copyright

	return &Headers{
		origin:    wrapHeader(cfg.OriginCopyright + "\n\n" + license),
		current:   wrapHeader(copyright + "\n\n" + license),
		modified:  wrapHeader(strings.Join([]string{cfg.OriginCopyright, modLine, "", license}, "\n")),
		copyright: copyright,
		prefix:    prefix,
		suffix:    suffix,
		today:     today,
		w:         w,
	}
}

// wrapHeader puts the ''' delimiters around a header body. Matching against
// existing files is byte-exact, so this shape must never change.
func wrapHeader(body string) string {
	return "'''\n" + body + "\n'''\n"
}

// UpdateHeaders checks the header of every listed file, resolving each path
// against dir and dispatching on its classification: added files get the
// current header prepended, modified files get their header transitioned or
// refreshed, anything else (deleted, renamed, untracked) is skipped. It
// reports whether at least one file was rewritten.
//
// Files are processed sequentially, in the given order. A file that cannot be
// read or written aborts the run with an error rather than being silently
// skipped, so a failed header check never turns into a passing exit status.
func (h *Headers) UpdateHeaders(ctx context.Context, dir string, files []string, changes Changes, progress ProgressFunc) (bool, error) {
	var changed bool
	for i, name := range files {
		if progress != nil {
			progress(i+1, len(files), name)
		}

		path := filepath.Join(dir, name)
		var (
			fileChanged bool
			err         error
		)
		switch {
		case changes.Added(name):
			fileChanged, err = h.CheckAdded(path)
		case changes.Modified(name):
			fileChanged, err = h.CheckModified(path)
		default:
			logger.Debug(ctx, "file not classified as added or modified, skipping",
				slog.String("path", name))
			continue
		}
		if err != nil {
			return changed, err
		}
		if fileChanged {
			logger.Info(ctx, "header out of date", slog.String("path", name))
			changed = true
		} else {
			logger.Debug(ctx, "header already up to date", slog.String("path", name))
		}
	}
	return changed, nil
}

// CheckAdded ensures a newly added file starts with the current header. If
// the file already begins with the exact header bytes it is left alone;
// otherwise the header is prepended in front of whatever the file starts
// with, including any older header variant. It reports whether the file was
// rewritten.
func (h *Headers) CheckAdded(path string) (bool, error) {
	content, mode, err := readFile(path)
	if err != nil {
		return false, err
	}
	if strings.HasPrefix(content, h.current) {
		return false, nil
	}
	return true, h.w.Write(path, []byte(h.current+content), mode)
}

// CheckModified ensures a modified file's header records today's date.
//
// A file still carrying the origin header gets it replaced with the modified
// header. A file carrying a modification line gets the line refreshed: the
// first date is preserved and today becomes the second date, unless the
// line's latest date already is today, in which case nothing happens. Files
// with no recognizable header are left alone. It reports whether the file was
// rewritten.
func (h *Headers) CheckModified(path string) (bool, error) {
	content, mode, err := readFile(path)
	if err != nil {
		return false, err
	}

	// The origin header check must come first: origin content also contains
	// a copyright line that looser checks could trip over.
	var updated string
	if strings.HasPrefix(content, h.origin) {
		updated = strings.Replace(content, h.origin, h.modified, 1)
	} else {
		ml, ok := h.findModLine(content)
		if !ok {
			return false, nil
		}
		if ml.latest() == h.today {
			return false, nil
		}
		updated = strings.Replace(content, ml.text, h.renewed(ml.first), 1)
	}

	return true, h.w.Write(path, []byte(updated), mode)
}

func readFile(path string) (content string, mode fs.FileMode, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	return string(data), fi.Mode().Perm(), nil
}
