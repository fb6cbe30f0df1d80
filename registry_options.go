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
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RegistryOptions represents the configuration options for the registry.
type RegistryOptions struct {
	core      zapcore.Core
	config    *zap.Config
	rootLevel Level
	scope     tally.Scope
}

// RegistryOption applies an option to the provided configuration.
type RegistryOption func(*RegistryOptions)

func options(options []RegistryOption) RegistryOptions {
	// set defaults.
	o := RegistryOptions{
		rootLevel: InfoLevel,
		scope:     tally.NoopScope,
	}
	// apply options.
	for _, opt := range options {
		opt(&o)
	}
	// prepare metrics scope.
	o.scope = o.scope.SubScope("zaplog")
	return o
}

var (
	// RegistryWithCore specifies the option to provide the Zap core that
	// loggers of the registry write to. The core's own level still applies
	// on top of category levels.
	RegistryWithCore = func(c zapcore.Core) RegistryOption {
		return func(o *RegistryOptions) {
			o.core = c
			o.config = nil
		}
	}

	// RegistryWithZapLogger specifies the option to provide a Zap logger
	// whose core the loggers of the registry write to.
	RegistryWithZapLogger = func(l *zap.Logger) RegistryOption {
		return RegistryWithCore(l.Core())
	}

	// RegistryWithZapConfig specifies the option to provide the Zap
	// configuration the registry builds its core from. The configured level
	// is ignored in favor of category levels.
	RegistryWithZapConfig = func(c zap.Config) RegistryOption {
		return func(o *RegistryOptions) {
			o.config = &c
			o.core = nil
		}
	}

	// RegistryRootLevel specifies the option to provide the level used by
	// categories without a level of their own.
	RegistryRootLevel = func(l Level) RegistryOption {
		return func(o *RegistryOptions) {
			o.rootLevel = l
		}
	}

	// RegistryTallyMetricScope specifies the option to provide a tally
	// metric scope for the registry.
	RegistryTallyMetricScope = func(s tally.Scope) RegistryOption {
		return func(o *RegistryOptions) {
			o.scope = s
		}
	}
)
