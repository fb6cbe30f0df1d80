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

package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/freerware/zaplog"
	"github.com/uber-go/tally/v4"
	tstatsd "github.com/uber-go/tally/v4/statsd"
	"go.uber.org/zap"
)

/* Setup Options */

func setupScope() (tally.Scope, func()) {
	statter, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address:       "127.0.0.1:8125",
		Prefix:        "demo",
		UseBuffered:   true,
		FlushInterval: 150 * time.Millisecond,
		FlushBytes:    512,
	})
	if err != nil {
		panic(err)
	}
	reporter := tstatsd.NewReporter(statter, tstatsd.Options{
		SampleRate: 1.0,
	})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags:     map[string]string{},
		Reporter: reporter,
	}, time.Second)
	return scope, func() { closer.Close() }
}

func o(scope tally.Scope) []zaplog.RegistryOption {
	return []zaplog.RegistryOption{
		zaplog.RegistryWithZapConfig(zap.NewDevelopmentConfig()),
		zaplog.RegistryRootLevel(zaplog.InfoLevel),
		zaplog.RegistryTallyMetricScope(scope),
	}
}

/* Demo */

const (
	messages           = 500
	maximumLatencyMs   = 10
	levelChangeEveryMs = 200
)

var categories = []string{
	"demo",
	"demo.transport",
	"demo.transport.udp",
	"demo.membership",
}

func main() {
	scope, closeScope := setupScope()
	defer closeScope()

	registry, err := zaplog.NewRegistry(o(scope)...)
	if err != nil {
		panic(err)
	}
	defer registry.Sync()

	levels := []string{"trace", "debug", "info", "warn", "error"}
	if err = registry.Configure(map[string]string{
		"demo.transport": "debug",
		"demo.unknown":   "chatty",
	}); err != nil {
		registry.Logger("demo").WarnErr("ignored level configuration", err)
	}

	changed := time.Now()
	for i := 0; i < messages; i++ {
		l := registry.Logger(categories[rand.Intn(len(categories))])
		if time.Since(changed) > levelChangeEveryMs*time.Millisecond {
			l.SetLevel(levels[rand.Intn(len(levels))])
			changed = time.Now()
		}

		switch rand.Intn(6) {
		case 0:
			l.Tracef("message %d at %s", i, l.Level())
		case 1:
			l.Debugf("message %d at %s", i, l.Level())
		case 2:
			l.Infof("message %d at %s", i, l.Level())
		case 3:
			l.Warnf("message %d with a bad verb %d", i, "oops")
		case 4:
			l.ErrorErr("simulated failure", errors.New("oops"))
		default:
			l.Fatal("simulated fatal condition, still running")
		}
		time.Sleep(time.Duration(rand.Intn(maximumLatencyMs)) * time.Millisecond)
	}
}
