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

package adapters

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceLevel is the Zap level used for 'trace' messages. Zap has no trace
// level of its own, so it sits one step below debug.
const TraceLevel = zapcore.DebugLevel - 1

// OffLevel is the Zap level above which nothing is emitted.
const OffLevel = zapcore.FatalLevel + 1

// NewZapCore creates the Zap core for the provided configuration.
//
// The configured level is replaced with TraceLevel so that every entry
// reaches the core and thresholds are decided per category instead.
func NewZapCore(c zap.Config) (zapcore.Core, error) {
	c.Level = zap.NewAtomicLevelAt(TraceLevel)
	next := c.EncoderConfig.EncodeLevel
	if next == nil {
		next = zapcore.CapitalLevelEncoder
	}
	c.EncoderConfig.EncodeLevel = TraceLevelEncoder(next)
	l, err := c.Build()
	if err != nil {
		return nil, err
	}
	return l.Core(), nil
}

// NewNopCore creates a Zap core that does nothing.
func NewNopCore() zapcore.Core {
	return zapcore.NewNopCore()
}

// TraceLevelEncoder wraps the provided level encoder so that TraceLevel is
// rendered in the same style that next renders the debug level.
func TraceLevelEncoder(next zapcore.LevelEncoder) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		if l != TraceLevel {
			next(l, enc)
			return
		}
		if s, ok := probe(next, zapcore.DebugLevel); ok {
			s = strings.Replace(s, "DEBUG", "TRACE", 1)
			s = strings.Replace(s, "debug", "trace", 1)
			enc.AppendString(s)
			return
		}
		enc.AppendString("TRACE")
	}
}

// levelProbe captures the string a level encoder appends.
type levelProbe struct {
	zapcore.PrimitiveArrayEncoder
	s string
}

func (p *levelProbe) AppendString(s string) {
	p.s = s
}

// probe runs the encoder against levelProbe. Encoders appending anything
// other than a string are reported as not ok.
func probe(encode zapcore.LevelEncoder, l zapcore.Level) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()
	p := &levelProbe{}
	encode(l, p)
	return p.s, p.s != ""
}
