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
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/freerware/zaplog/internal/adapters"
	"github.com/uber-go/tally/v4"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Metric name definitions.
const (
	entries       = "entries"
	formatFailure = "format.failure"
	levelTag      = "level"
)

// categorySeparator separates the segments of hierarchical category names.
const categorySeparator = "."

var (

	// ErrUnknownLevel represents the error that is returned when a level
	// name cannot be resolved.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrInvalidRootLevel represents the error that occurs when attempting
	// to create a registry with a root level other than the defined levels.
	ErrInvalidRootLevel = errors.New("root level must be one of trace, debug, info, warn, error, fatal or off")
)

var (
	defaultMutex    sync.RWMutex
	defaultRegistry *Registry
)

// handle is the state kept for a single category.
type handle struct {
	name   string
	parent *handle
	level  zap.AtomicLevel
	set    *atomic.Bool
}

func newHandle(name string, parent *handle) *handle {
	return &handle{
		name:   name,
		parent: parent,
		level:  zap.NewAtomicLevelAt(InfoLevel.zap()),
		set:    atomic.NewBool(false),
	}
}

// threshold provides the level of the nearest handle with an explicit level,
// starting from h and moving towards the root.
func (h *handle) threshold() Level {
	for n := h; n != nil; n = n.parent {
		if n.set.Load() {
			return Level(n.level.Level())
		}
	}
	return OffLevel
}

func (h *handle) enabled(lvl Level) bool {
	return h.threshold().Enabled(lvl)
}

func (h *handle) explicit() (Level, bool) {
	if h == nil || !h.set.Load() {
		return OffLevel, false
	}
	return Level(h.level.Level()), true
}

func (h *handle) setLevel(lvl Level) {
	if h == nil {
		return
	}
	h.level.SetLevel(lvl.zap())
	h.set.Store(true)
}

type metrics struct {
	entries        map[Level]tally.Counter
	formatFailures tally.Counter
}

func newMetrics(scope tally.Scope) *metrics {
	m := &metrics{
		entries:        make(map[Level]tally.Counter),
		formatFailures: scope.Counter(formatFailure),
	}
	for _, lvl := range []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
		tags := map[string]string{levelTag: strings.ToLower(lvl.String())}
		m.entries[lvl] = scope.Tagged(tags).Counter(entries)
	}
	return m
}

// Registry represents the set of loggers sharing a single Zap core, keyed
// by category. Loggers for the same category share their level.
type Registry struct {
	core    zapcore.Core
	metrics *metrics
	root    *handle
	handles map[string]*handle
	mutex   sync.RWMutex
}

// NewRegistry creates a new registry with the provided options.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	o := options(opts)
	if _, ok := levelNames[o.rootLevel]; !ok {
		return nil, ErrInvalidRootLevel
	}
	core := o.core
	if o.config != nil {
		c, err := adapters.NewZapCore(*o.config)
		if err != nil {
			return nil, err
		}
		core = c
	}
	if core == nil {
		core = adapters.NewNopCore()
	}
	root := newHandle("", nil)
	root.setLevel(o.rootLevel)
	return &Registry{
		core:    core,
		metrics: newMetrics(o.scope),
		root:    root,
		handles: make(map[string]*handle),
	}, nil
}

// Logger provides the logger for the provided category, creating the
// category on first use. The empty category refers to the root.
func (r *Registry) Logger(category string) *LevelLogger {
	return &LevelLogger{
		handle:  r.handle(category),
		core:    r.core,
		metrics: r.metrics,
	}
}

// LoggerFor provides the logger for the category of the provided value.
func (r *Registry) LoggerFor(v interface{}) *LevelLogger {
	return r.Logger(CategoryOf(v))
}

// Configure sets the levels of the provided categories, keyed by category
// name. Entries with unknown level names are skipped and reported together
// once every other entry has been applied.
func (r *Registry) Configure(levels map[string]string) (err error) {
	categories := make([]string, 0, len(levels))
	for category := range levels {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		name := levels[category]
		lvl, ok := ParseLevel(name)
		if !ok {
			err = multierr.Append(
				err, fmt.Errorf("%w %q for category %q", ErrUnknownLevel, name, category))
			continue
		}
		r.handle(category).setLevel(lvl)
	}
	return
}

// Categories provides the sorted names of all categories known to the registry.
func (r *Registry) Categories() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	categories := make([]string, 0, len(r.handles))
	for name := range r.handles {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories
}

// Sync flushes any buffered log entries.
func (r *Registry) Sync() error {
	return r.core.Sync()
}

func (r *Registry) handle(category string) *handle {
	if category == "" {
		return r.root
	}
	r.mutex.RLock()
	h, ok := r.handles[category]
	r.mutex.RUnlock()
	if ok {
		return h
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.create(category)
}

// create provides the handle for the category, creating it and any missing
// ancestors. Callers must hold the write lock.
func (r *Registry) create(category string) *handle {
	if category == "" {
		return r.root
	}
	if h, ok := r.handles[category]; ok {
		return h
	}
	parent := r.root
	if idx := strings.LastIndex(category, categorySeparator); idx > 0 {
		parent = r.create(category[:idx])
	}
	h := newHandle(category, parent)
	r.handles[category] = h
	return h
}

// Default provides the process wide registry. Unless replaced, it writes
// JSON to standard error using Zap's production configuration with the
// root level set to InfoLevel.
func Default() *Registry {
	defaultMutex.RLock()
	r := defaultRegistry
	defaultMutex.RUnlock()
	if r != nil {
		return r
	}

	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = newDefaultRegistry()
	}
	return defaultRegistry
}

func newDefaultRegistry() *Registry {
	r, err := NewRegistry(RegistryWithZapConfig(zap.NewProductionConfig()))
	if err != nil {
		r, _ = NewRegistry()
	}
	return r
}

// ReplaceDefault replaces the process wide registry and provides a function
// that restores the previous one.
func ReplaceDefault(r *Registry) func() {
	defaultMutex.Lock()
	prev := defaultRegistry
	defaultRegistry = r
	defaultMutex.Unlock()
	return func() { ReplaceDefault(prev) }
}

// New provides the logger for the provided category from the process wide
// registry.
func New(category string) *LevelLogger {
	return Default().Logger(category)
}

// NewFor provides the logger for the category of the provided value from
// the process wide registry.
func NewFor(v interface{}) *LevelLogger {
	return Default().LoggerFor(v)
}
