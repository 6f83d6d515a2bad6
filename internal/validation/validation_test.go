// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/multierr"
)

var errBoom = errors.New("boom")

type validationTestSuite struct {
	suite.Suite
}

func TestValidation(t *testing.T) {
	suite.Run(t, new(validationTestSuite))
}

func (s *validationTestSuite) TestChain() {
	s.Run("with no validators", func() {
		s.Assert().NoError(New().Validate())
	})
	s.Run("with FailFast", func() {
		err := New(FailFast()).
			AddValidator(NewEmptyStringValidator("name", "")).
			AddAssertion(false, "this is false").
			Validate()
		s.Assert().EqualError(err, "the [name] is required")
	})
	s.Run("with AllErrors", func() {
		chain := New(AllErrors()).
			AddValidator(NewEmptyStringValidator("name", " ")).
			AddAssertion(false, "this is false").
			AddAssertion(true, "this is true")
		err := chain.Validate()
		s.Assert().EqualError(err, "the [name] is required; this is false")
		s.Assert().Len(multierr.Errors(err), 2)

		// validating again does not accumulate
		s.Assert().Len(multierr.Errors(chain.Validate()), 2)
	})
}

func (s *validationTestSuite) TestValidators() {
	s.Run("boolean", func() {
		s.Assert().NoError(NewBooleanValidator(true, "boom").Validate())
		s.Assert().EqualError(NewBooleanValidator(false, "boom").Validate(), "boom")
	})
	s.Run("empty string", func() {
		s.Assert().NoError(NewEmptyStringValidator("name", "orders").Validate())
		s.Assert().Error(NewEmptyStringValidator("name", "").Validate())
	})
	s.Run("range", func() {
		s.Assert().NoError(NewRangeValidator("ratio", 0.5, 0.0, 1.0).Validate())
		s.Assert().NoError(NewRangeValidator("retries", 0, 0, 10).Validate())
		s.Assert().EqualError(NewRangeValidator("retries", 11, 0, 10).Validate(),
			"the [retries] must be between 0 and 10, got 11")
		s.Assert().Error(NewRangeValidator("delay", -time.Second, 0, time.Hour).Validate())
	})
	s.Run("func", func() {
		s.Assert().NoError(ValidatorFunc(func() error { return nil }).Validate())
		s.Assert().ErrorIs(ValidatorFunc(func() error { return errBoom }).Validate(), errBoom)
	})
	s.Run("name", func() {
		s.Assert().NoError(NewNameValidator("queue", "orders.eu-1", false).Validate())
		s.Assert().NoError(NewNameValidator("queue", "*", true).Validate())
		s.Assert().Error(NewNameValidator("queue", "*", false).Validate())
		s.Assert().Error(NewNameValidator("queue", "has space", false).Validate())
		s.Assert().Error(NewNameValidator("queue", "", false).Validate())
	})
}
