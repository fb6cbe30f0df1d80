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
	"strings"

	"github.com/freerware/zaplog/internal/adapters"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity of a log message.
type Level int8

const (
	// TraceLevel represents the most fine grained messages.
	TraceLevel = Level(adapters.TraceLevel)
	// DebugLevel represents diagnostic messages.
	DebugLevel = Level(zapcore.DebugLevel)
	// InfoLevel represents informational messages.
	InfoLevel = Level(zapcore.InfoLevel)
	// WarnLevel represents messages about potentially harmful situations.
	WarnLevel = Level(zapcore.WarnLevel)
	// ErrorLevel represents error messages.
	ErrorLevel = Level(zapcore.ErrorLevel)
	// FatalLevel represents messages about severe errors.
	FatalLevel = Level(zapcore.FatalLevel)
	// OffLevel suppresses all messages when used as a threshold.
	OffLevel = Level(adapters.OffLevel)
)

var levelNames = map[Level]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	OffLevel:   "OFF",
}

var levelsByName = map[string]Level{
	"fatal":   FatalLevel,
	"error":   ErrorLevel,
	"warn":    WarnLevel,
	"warning": WarnLevel,
	"info":    InfoLevel,
	"debug":   DebugLevel,
	"trace":   TraceLevel,
}

// ParseLevel provides the level with the provided name. Names are matched
// case insensitively with surrounding whitespace ignored.
func ParseLevel(name string) (Level, bool) {
	l, ok := levelsByName[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// String provides the string representation of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int8(l))
}

// Enabled indicates if messages at the provided level pass the level when
// it is used as a threshold.
func (l Level) Enabled(lvl Level) bool {
	return lvl >= l
}

func (l Level) zap() zapcore.Level {
	return zapcore.Level(l)
}
