// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type (
	stdLogger struct {
		writer io.Writer
		name   string
	}
)

var (
	stdMx    sync.Mutex
	stdLevel int32 = int32(INFO)
)

// stdNewLogger returns a Logger interface by its name. The std logger writes to
// stderr, so the program output on stdout is not mixed with the log records.
func stdNewLogger(name string) Logger {
	return &stdLogger{writer: os.Stderr, name: name}
}

func stdSetLevel(lvl Level) {
	atomic.StoreInt32(&stdLevel, int32(lvl))
}

func stdGetLevel() Level {
	return Level(atomic.LoadInt32(&stdLevel))
}

// Warnf is a function for printing Warn-level messages from the source code
func (sl *stdLogger) Warnf(format string, args ...interface{}) {
	sl.logf(WARN, format, args...)
}

// Infof is a function for printing Info-level messages from the source code
func (sl *stdLogger) Infof(format string, args ...interface{}) {
	sl.logf(INFO, format, args...)
}

// Debugf is a function for printing Debug-level messages from the source code
func (sl *stdLogger) Debugf(format string, args ...interface{}) {
	sl.logf(DEBUG, format, args...)
}

// Tracef is a function for pretty printing Trace-level messages from the source code
func (sl *stdLogger) Tracef(format string, args ...interface{}) {
	sl.logf(TRACE, format, args...)
}

// Errorf is a function for pretty printing Error-level messages from the source code
func (sl *stdLogger) Errorf(format string, args ...interface{}) {
	sl.logf(ERROR, format, args...)
}

func (sl *stdLogger) logf(lvl Level, format string, args ...interface{}) {
	if stdGetLevel() < lvl {
		return
	}
	msg := fmt.Sprintf(format, args...)
	stdMx.Lock()
	defer stdMx.Unlock()
	fmt.Fprintf(sl.writer, "[%s] %s\t%s: %s\n", time.Now().Format("15:04:05.000000"), lvl, sl.name, msg)
}
