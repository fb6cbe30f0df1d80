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
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type RegistryOptionsTestSuite struct {
	suite.Suite

	// system under test.
	sut *RegistryOptions
}

func TestRegistryOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryOptionsTestSuite))
}

func (s *RegistryOptionsTestSuite) SetupTest() {
	s.sut = &RegistryOptions{}
}

func (s *RegistryOptionsTestSuite) TestRegistryWithCore() {
	// arrange.
	c := zapcore.NewNopCore()
	s.sut.config = &zap.Config{}

	// action.
	RegistryWithCore(c)(s.sut)

	// assert.
	s.Equal(c, s.sut.core)
	s.Nil(s.sut.config)
}

func (s *RegistryOptionsTestSuite) TestRegistryWithZapLogger() {
	// arrange.
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	l, _ := c.Build()

	// action.
	RegistryWithZapLogger(l)(s.sut)

	// assert.
	s.Equal(l.Core(), s.sut.core)
}

func (s *RegistryOptionsTestSuite) TestRegistryWithZapConfig() {
	// arrange.
	c := zap.NewProductionConfig()
	s.sut.core = zapcore.NewNopCore()

	// action.
	RegistryWithZapConfig(c)(s.sut)

	// assert.
	s.Require().NotNil(s.sut.config)
	s.Equal(c.Encoding, s.sut.config.Encoding)
	s.Nil(s.sut.core)
}

func (s *RegistryOptionsTestSuite) TestRegistryRootLevel() {
	// action.
	RegistryRootLevel(DebugLevel)(s.sut)

	// assert.
	s.Equal(DebugLevel, s.sut.rootLevel)
}

func (s *RegistryOptionsTestSuite) TestRegistryTallyMetricScope() {
	// arrange.
	ts := tally.NewTestScope("test", map[string]string{})

	// action.
	RegistryTallyMetricScope(ts)(s.sut)

	// assert.
	s.Equal(ts, s.sut.scope)
}

func (s *RegistryOptionsTestSuite) TestOptions_Defaults() {
	// action.
	o := options(nil)

	// assert.
	s.Equal(InfoLevel, o.rootLevel)
	s.Nil(o.core)
	s.Nil(o.config)
	s.NotNil(o.scope)
}
