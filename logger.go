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

// Package zaplog delivers messages from a level based logging contract to
// a Zap core, with per category levels kept in a registry.
package zaplog

// Logger represents a type responsible for performing logging behaviors.
type Logger interface {
	// IsTraceEnabled indicates if 'trace' level messages are emitted.
	IsTraceEnabled() bool
	// IsDebugEnabled indicates if 'debug' level messages are emitted.
	IsDebugEnabled() bool
	// IsInfoEnabled indicates if 'info' level messages are emitted.
	IsInfoEnabled() bool
	// IsWarnEnabled indicates if 'warn' level messages are emitted.
	IsWarnEnabled() bool
	// IsErrorEnabled indicates if 'error' level messages are emitted.
	IsErrorEnabled() bool
	// IsFatalEnabled indicates if 'fatal' level messages are emitted.
	IsFatalEnabled() bool

	// Trace logs the provided message as a 'trace' level message.
	Trace(msg string)
	// Tracef formats and logs the provided message as a 'trace' level message.
	Tracef(format string, args ...interface{})
	// TraceErr logs the provided message and error as a 'trace' level message.
	TraceErr(msg string, err error)

	// Debug logs the provided message as a 'debug' level message.
	Debug(msg string)
	// Debugf formats and logs the provided message as a 'debug' level message.
	Debugf(format string, args ...interface{})
	// DebugErr logs the provided message and error as a 'debug' level message.
	DebugErr(msg string, err error)

	// Info logs the provided message as an 'info' level message.
	Info(msg string)
	// Infof formats and logs the provided message as an 'info' level message.
	Infof(format string, args ...interface{})
	// InfoErr logs the provided message and error as an 'info' level message.
	InfoErr(msg string, err error)

	// Warn logs the provided message as a 'warn' level message.
	Warn(msg string)
	// Warnf formats and logs the provided message as a 'warn' level message.
	Warnf(format string, args ...interface{})
	// WarnErr logs the provided message and error as a 'warn' level message.
	WarnErr(msg string, err error)

	// Error logs the provided message as an 'error' level message.
	Error(msg string)
	// Errorf formats and logs the provided message as an 'error' level message.
	Errorf(format string, args ...interface{})
	// ErrorErr logs the provided message and error as an 'error' level message.
	ErrorErr(msg string, err error)

	// Fatal logs the provided message as a 'fatal' level message.
	Fatal(msg string)
	// Fatalf formats and logs the provided message as a 'fatal' level message.
	Fatalf(format string, args ...interface{})
	// FatalErr logs the provided message and error as a 'fatal' level message.
	FatalErr(msg string, err error)

	// Level provides the name of the level explicitly set for the logger,
	// or "off" when no level has been set.
	Level() string
	// SetLevel sets the level of the logger. Unknown names are ignored.
	SetLevel(name string)
}
