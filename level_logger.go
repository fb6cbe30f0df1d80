/* Copyright 2025 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package zaplog

import (
	"fmt"
	"regexp"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// callerSkip is the number of frames between write and the caller of the
// public logging methods.
const callerSkip = 2

// unknownLevel is reported when no level has been set.
const unknownLevel = "off"

// formatFailurePattern matches the markers fmt leaves behind for bad verbs,
// missing or extra operands and panics raised while formatting.
var formatFailurePattern = regexp.MustCompile(
	`%![^(]?\((?:MISSING|NOVERB|BADWIDTH|BADPREC|BADINDEX|EXTRA |<nil>|[^=]+=)`,
)

// LevelLogger represents a logger that delivers messages to a Zap core.
// Loggers are obtained from a Registry; the zero value discards everything.
type LevelLogger struct {
	handle  *handle
	core    zapcore.Core
	metrics *metrics
}

var _ Logger = (*LevelLogger)(nil)

// Category provides the category of the logger.
func (l *LevelLogger) Category() string {
	if l.handle == nil {
		return ""
	}
	return l.handle.name
}

// IsTraceEnabled indicates if 'trace' level messages are emitted.
func (l *LevelLogger) IsTraceEnabled() bool {
	return l.handle.enabled(TraceLevel)
}

// IsDebugEnabled indicates if 'debug' level messages are emitted.
func (l *LevelLogger) IsDebugEnabled() bool {
	return l.handle.enabled(DebugLevel)
}

// IsInfoEnabled indicates if 'info' level messages are emitted.
func (l *LevelLogger) IsInfoEnabled() bool {
	return l.handle.enabled(InfoLevel)
}

// IsWarnEnabled indicates if 'warn' level messages are emitted.
func (l *LevelLogger) IsWarnEnabled() bool {
	return l.handle.enabled(WarnLevel)
}

// IsErrorEnabled indicates if 'error' level messages are emitted.
func (l *LevelLogger) IsErrorEnabled() bool {
	return l.handle.enabled(ErrorLevel)
}

// IsFatalEnabled indicates if 'fatal' level messages are emitted.
func (l *LevelLogger) IsFatalEnabled() bool {
	return l.handle.enabled(FatalLevel)
}

// Trace logs the provided message as a 'trace' level message.
func (l *LevelLogger) Trace(msg string) {
	l.write(callerSkip, TraceLevel, msg)
}

// Tracef formats and logs the provided message as a 'trace' level message.
// Nothing is formatted unless 'trace' is enabled.
func (l *LevelLogger) Tracef(format string, args ...interface{}) {
	if l.IsTraceEnabled() {
		l.write(callerSkip, TraceLevel, l.format(format, args...))
	}
}

// TraceErr logs the provided message and error as a 'trace' level message.
func (l *LevelLogger) TraceErr(msg string, err error) {
	l.write(callerSkip, TraceLevel, msg, zap.Error(err))
}

// Debug logs the provided message as a 'debug' level message.
func (l *LevelLogger) Debug(msg string) {
	l.write(callerSkip, DebugLevel, msg)
}

// Debugf formats and logs the provided message as a 'debug' level message.
// Nothing is formatted unless 'debug' is enabled.
func (l *LevelLogger) Debugf(format string, args ...interface{}) {
	if l.IsDebugEnabled() {
		l.write(callerSkip, DebugLevel, l.format(format, args...))
	}
}

// DebugErr logs the provided message and error as a 'debug' level message.
func (l *LevelLogger) DebugErr(msg string, err error) {
	l.write(callerSkip, DebugLevel, msg, zap.Error(err))
}

// Info logs the provided message as an 'info' level message.
func (l *LevelLogger) Info(msg string) {
	l.write(callerSkip, InfoLevel, msg)
}

// Infof formats and logs the provided message as an 'info' level message.
// Nothing is formatted unless 'info' is enabled.
func (l *LevelLogger) Infof(format string, args ...interface{}) {
	if l.IsInfoEnabled() {
		l.write(callerSkip, InfoLevel, l.format(format, args...))
	}
}

// InfoErr logs the provided message and error as an 'info' level message.
func (l *LevelLogger) InfoErr(msg string, err error) {
	l.write(callerSkip, InfoLevel, msg, zap.Error(err))
}

// Warn logs the provided message as a 'warn' level message.
func (l *LevelLogger) Warn(msg string) {
	l.write(callerSkip, WarnLevel, msg)
}

// Warnf formats and logs the provided message as a 'warn' level message.
// Nothing is formatted unless 'warn' is enabled.
func (l *LevelLogger) Warnf(format string, args ...interface{}) {
	if l.IsWarnEnabled() {
		l.write(callerSkip, WarnLevel, l.format(format, args...))
	}
}

// WarnErr logs the provided message and error as a 'warn' level message.
func (l *LevelLogger) WarnErr(msg string, err error) {
	l.write(callerSkip, WarnLevel, msg, zap.Error(err))
}

// Error logs the provided message as an 'error' level message.
func (l *LevelLogger) Error(msg string) {
	l.write(callerSkip, ErrorLevel, msg)
}

// Errorf formats and logs the provided message as an 'error' level message.
// Nothing is formatted unless 'error' is enabled.
func (l *LevelLogger) Errorf(format string, args ...interface{}) {
	if l.IsErrorEnabled() {
		l.write(callerSkip, ErrorLevel, l.format(format, args...))
	}
}

// ErrorErr logs the provided message and error as an 'error' level message.
func (l *LevelLogger) ErrorErr(msg string, err error) {
	l.write(callerSkip, ErrorLevel, msg, zap.Error(err))
}

// Fatal logs the provided message as a 'fatal' level message. Unlike
// zap.Logger.Fatal, the process is not terminated.
func (l *LevelLogger) Fatal(msg string) {
	l.write(callerSkip, FatalLevel, msg)
}

// Fatalf formats and logs the provided message as a 'fatal' level message.
// Nothing is formatted unless 'fatal' is enabled.
func (l *LevelLogger) Fatalf(format string, args ...interface{}) {
	if l.IsFatalEnabled() {
		l.write(callerSkip, FatalLevel, l.format(format, args...))
	}
}

// FatalErr logs the provided message and error as a 'fatal' level message.
func (l *LevelLogger) FatalErr(msg string, err error) {
	l.write(callerSkip, FatalLevel, msg, zap.Error(err))
}

// Level provides the name of the level explicitly set for the logger's
// category, or "off" when no level has been set.
func (l *LevelLogger) Level() string {
	if lvl, ok := l.handle.explicit(); ok {
		return lvl.String()
	}
	return unknownLevel
}

// SetLevel sets the level of the logger's category. Names are resolved with
// ParseLevel, and unknown names are ignored.
func (l *LevelLogger) SetLevel(name string) {
	if lvl, ok := ParseLevel(name); ok {
		l.handle.setLevel(lvl)
	}
}

// format substitutes the arguments into the format string. When that fails
// an 'error' level message describing the failure is logged and the format
// string is returned unchanged.
func (l *LevelLogger) format(format string, args ...interface{}) string {
	msg, ok := sprintf(format, args)
	if ok {
		return msg
	}
	l.metrics.formatFailures.Inc(1)
	l.write(
		callerSkip+1,
		ErrorLevel,
		"illegal format string",
		zap.String("format", format),
		zap.Any("args", args),
	)
	return format
}

func (l *LevelLogger) write(skip int, lvl Level, msg string, fields ...zap.Field) {
	if !l.handle.enabled(lvl) {
		return
	}
	ent := zapcore.Entry{
		LoggerName: l.handle.name,
		Time:       time.Now(),
		Level:      lvl.zap(),
		Message:    msg,
	}
	ce := l.core.Check(ent, nil)
	if ce == nil {
		return
	}
	ce.Caller = caller(skip)
	ce.Write(fields...)
	l.metrics.entries[lvl].Inc(1)
}

func sprintf(format string, args []interface{}) (msg string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			msg, ok = "", false
		}
	}()
	msg = fmt.Sprintf(format, args...)
	return msg, !formatFailurePattern.MatchString(msg)
}

// caller provides the frame skip levels above the caller of caller.
func caller(skip int) zapcore.EntryCaller {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return zapcore.EntryCaller{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return zapcore.EntryCaller{
		Defined:  frame.PC != 0,
		PC:       frame.PC,
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
	}
}
