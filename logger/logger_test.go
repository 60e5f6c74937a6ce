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

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	if !logged {
		t.Fatal("Logf sink was not called")
	}
	if message != "hello" {
		t.Fatalf("message = %q, want %q", message, "hello")
	}
}

func TestGetReturnsDefaultLogger(t *testing.T) {
	l := Get(context.Background())
	if l != defaultLogger {
		t.Fatal("Get() on empty context should return the default logger")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))
	ctx := Put(context.Background(), l)

	if got := Get(ctx); got != l {
		t.Fatal("Get() did not return the logger stored with Put()")
	}

	Info(ctx, "header rewritten", slog.String("path", "a.py"))
	if !strings.Contains(buf.String(), "header rewritten") {
		t.Fatalf("log output %q does not contain the message", buf.String())
	}
	if !strings.Contains(buf.String(), "a.py") {
		t.Fatalf("log output %q does not contain the attribute", buf.String())
	}
}

func TestHandlerLevelControlsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := Put(context.Background(), l)

	Debug(ctx, "invisible")
	if strings.Contains(buf.String(), "invisible") {
		t.Fatal("debug message logged at info level")
	}
}
