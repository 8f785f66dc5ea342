/*
 * Copyright 2026 Guardtime, Inc.
 *
 * This file is part of the Guardtime EMV toolkit.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES, CONDITIONS, OR OTHER LICENSES OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 * "Guardtime" is a trademark or registered trademark of Guardtime, Inc.,
 * and no license to trademarks is granted; Guardtime reserves and retains
 * all trademark rights.
 */

package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
)

// Priority is the logging level applied to a WriterLogger instance.
// Only events with equal or higher priority than the configured one are logged.
type Priority int

const (
	// DEBUG priority. Events generated to aid in debugging, application flow and
	// detailed service troubleshooting.
	DEBUG Priority = iota
	// INFO priority. Events that have no effect on service, but can aid in
	// performance, status and statistics monitoring.
	INFO
	// NOTICE priority. Changes in state that do not necessarily cause service degradation.
	NOTICE
	// WARNING priority. Changes in state that affects the service degradation.
	WARNING
	// ERROR priority. Unrecoverable fatal errors only - gasp of death - code
	// cannot continue and will terminate.
	ERROR
	// NONE means no logging. Can not be used for initializing a logger instance.
	NONE
)

var priorityPrefix = map[Priority]string{
	DEBUG:   "[D]",
	INFO:    "[I]",
	NOTICE:  "[N]",
	WARNING: "[W]",
	ERROR:   "[E]",
}

// WriterLogger is a basic Logger interface implementation that generates lines
// of formatted output to an io.Writer.
type WriterLogger struct {
	priority Priority
	out      *stdlog.Logger
}

// New returns a new WriterLogger instance with the given log priority. Messages below
// the given priority are dropped. In case the writer is nil, standard output is used.
func New(priority Priority, writer io.Writer) (*WriterLogger, error) {
	if priority < DEBUG || priority > ERROR {
		return nil, fmt.Errorf("invalid log priority: %d", priority)
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &WriterLogger{
		priority: priority,
		out:      stdlog.New(writer, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lmicroseconds),
	}, nil
}

func (l *WriterLogger) write(p Priority, v ...interface{}) {
	if l == nil || l.out == nil || p < l.priority {
		return
	}
	l.out.Print(priorityPrefix[p], " ", fmt.Sprint(v...))
}

// Debug logs the event with DEBUG priority.
func (l *WriterLogger) Debug(v ...interface{}) { l.write(DEBUG, v...) }

// Info logs the event with INFO priority.
func (l *WriterLogger) Info(v ...interface{}) { l.write(INFO, v...) }

// Notice logs the event with NOTICE priority.
func (l *WriterLogger) Notice(v ...interface{}) { l.write(NOTICE, v...) }

// Warning logs the event with WARNING priority.
func (l *WriterLogger) Warning(v ...interface{}) { l.write(WARNING, v...) }

// Error logs the event with ERROR priority.
func (l *WriterLogger) Error(v ...interface{}) { l.write(ERROR, v...) }
