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

package zaplog_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/freerware/zaplog"
	"github.com/freerware/zaplog/internal/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type server struct{}

type RegistryTestSuite struct {
	suite.Suite

	// system under test.
	sut *zaplog.Registry

	// spies.
	logs *observer.ObservedLogs
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	var core zapcore.Core
	core, s.logs = observer.New(zapcore.Level(zaplog.TraceLevel))
	var err error
	s.sut, err = zaplog.NewRegistry(zaplog.RegistryWithCore(core))
	s.Require().NoError(err)
}

func (s *RegistryTestSuite) TestNewRegistry_InvalidRootLevel() {
	// action.
	r, err := zaplog.NewRegistry(zaplog.RegistryRootLevel(zaplog.Level(42)))

	// assert.
	s.Nil(r)
	s.ErrorIs(err, zaplog.ErrInvalidRootLevel)
}

func (s *RegistryTestSuite) TestNewRegistry_UndefinedRootLevel() {
	for _, lvl := range []zaplog.Level{zaplog.Level(zapcore.DPanicLevel), zaplog.Level(zapcore.PanicLevel)} {
		s.Run(lvl.String(), func() {
			// action.
			r, err := zaplog.NewRegistry(zaplog.RegistryRootLevel(lvl))

			// assert.
			s.Nil(r)
			s.ErrorIs(err, zaplog.ErrInvalidRootLevel)
		})
	}
}

func (s *RegistryTestSuite) TestNewRegistry_InvalidZapConfig() {
	// arrange.
	c := zap.NewProductionConfig()
	c.Encoding = "oops"

	// action.
	r, err := zaplog.NewRegistry(zaplog.RegistryWithZapConfig(c))

	// assert.
	s.Nil(r)
	s.Error(err)
}

func (s *RegistryTestSuite) TestNewRegistry_ZapConfig() {
	// arrange.
	c := zap.NewDevelopmentConfig()
	c.OutputPaths = []string{}
	c.ErrorOutputPaths = []string{}

	// action.
	r, err := zaplog.NewRegistry(zaplog.RegistryWithZapConfig(c))

	// assert.
	s.Require().NoError(err)
	s.NotNil(r.Logger("configured"))
}

func (s *RegistryTestSuite) TestNewRegistry_Nop() {
	// arrange.
	r, err := zaplog.NewRegistry()
	s.Require().NoError(err)
	l := r.Logger("nop")

	// action + assert.
	s.NotPanics(func() { l.Error("nothing happens") })
	s.True(l.IsInfoEnabled())
	s.False(l.IsDebugEnabled())
}

func (s *RegistryTestSuite) TestRegistry_Logger_SharedCategory() {
	// arrange.
	first := s.sut.Logger("shared")
	second := s.sut.Logger("shared")

	// action.
	first.SetLevel("debug")

	// assert.
	s.Equal("DEBUG", second.Level())
	s.True(second.IsDebugEnabled())
	s.Equal("shared", second.Category())
}

func (s *RegistryTestSuite) TestRegistry_Logger_Root() {
	// arrange.
	root := s.sut.Logger("")

	// action + assert.
	s.Equal("INFO", root.Level())
}

func (s *RegistryTestSuite) TestRegistry_Logger_Hierarchy() {
	// arrange.
	parent := s.sut.Logger("org.jgroups")
	child := s.sut.Logger("org.jgroups.protocols.UDP")

	// action.
	parent.SetLevel("trace")

	// assert.
	s.True(child.IsTraceEnabled())
	s.Equal("off", child.Level())
	s.Equal(
		[]string{"org", "org.jgroups", "org.jgroups.protocols", "org.jgroups.protocols.UDP"},
		s.sut.Categories(),
	)

	// action.
	child.SetLevel("error")

	// assert.
	s.False(child.IsWarnEnabled())
	s.True(parent.IsTraceEnabled())
}

func (s *RegistryTestSuite) TestRegistry_Logger_InheritsRoot() {
	// arrange.
	r, err := zaplog.NewRegistry(zaplog.RegistryRootLevel(zaplog.WarnLevel))
	s.Require().NoError(err)

	// action.
	l := r.Logger("inherits")

	// assert.
	s.False(l.IsInfoEnabled())
	s.True(l.IsWarnEnabled())
	s.Equal("off", l.Level())
}

func (s *RegistryTestSuite) TestRegistry_LoggerFor() {
	// action.
	l := s.sut.LoggerFor(&server{})
	l.Info("started")

	// assert.
	s.Equal("*zaplog_test.server", l.Category())
	s.Require().Equal(1, s.logs.Len())
	s.Equal("*zaplog_test.server", s.logs.All()[0].LoggerName)
}

func (s *RegistryTestSuite) TestRegistry_Configure() {
	// arrange.
	levels := map[string]string{
		"":        "warn",
		"a":       "debug",
		"b":       "bogus",
		"a.b":     " ERROR ",
		"c.d.e.f": "loud",
	}

	// action.
	err := s.sut.Configure(levels)

	// assert.
	s.Require().Error(err)
	s.ErrorIs(err, zaplog.ErrUnknownLevel)
	s.Len(multierr.Errors(err), 2)
	s.Equal("WARN", s.sut.Logger("").Level())
	s.Equal("DEBUG", s.sut.Logger("a").Level())
	s.Equal("ERROR", s.sut.Logger("a.b").Level())
	s.Equal("off", s.sut.Logger("b").Level())
	s.False(s.sut.Logger("b").IsInfoEnabled())
}

func (s *RegistryTestSuite) TestRegistry_Configure_Valid() {
	// action.
	err := s.sut.Configure(map[string]string{"x": "trace"})

	// assert.
	s.NoError(err)
	s.True(s.sut.Logger("x.y").IsTraceEnabled())
}

func (s *RegistryTestSuite) TestRegistry_Concurrent() {
	// arrange.
	var wg sync.WaitGroup
	workers := 16

	// action.
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := s.sut.Logger("concurrent.category")
			l.SetLevel("debug")
			l.Debugf("%s", "message")
		}()
	}
	wg.Wait()

	// assert.
	s.Equal(workers, s.logs.Len())
	s.Equal([]string{"concurrent", "concurrent.category"}, s.sut.Categories())
}

func (s *RegistryTestSuite) TestRegistry_Sync() {
	// arrange.
	mc := gomock.NewController(s.T())
	defer mc.Finish()
	core := mock.NewCore(mc)
	core.EXPECT().Sync().Return(errors.New("whoa"))
	r, err := zaplog.NewRegistry(zaplog.RegistryWithCore(core))
	s.Require().NoError(err)

	// action.
	err = r.Sync()

	// assert.
	s.EqualError(err, "whoa")
}

func (s *RegistryTestSuite) TestDefault() {
	// arrange.
	restore := zaplog.ReplaceDefault(s.sut)
	defer restore()

	// action.
	l := zaplog.New("default")
	l.Info("hello")
	f := zaplog.NewFor(server{})

	// assert.
	s.Same(s.sut, zaplog.Default())
	s.Equal(1, s.logs.Len())
	s.Equal("zaplog_test.server", f.Category())
}

func (s *RegistryTestSuite) TestDefault_Restore() {
	// arrange.
	previous := zaplog.Default()
	restore := zaplog.ReplaceDefault(s.sut)

	// action.
	restore()

	// assert.
	s.Same(previous, zaplog.Default())
	s.Equal("INFO", zaplog.Default().Logger("").Level())
}
