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
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

type booleanValidator struct {
	check   bool
	message string
}

// NewBooleanValidator fails with message when check is false
func NewBooleanValidator(check bool, message string) Validator {
	return booleanValidator{check: check, message: message}
}

func (v booleanValidator) Validate() error {
	if !v.check {
		return errors.New(v.message)
	}
	return nil
}

type emptyStringValidator struct {
	field string
	value string
}

// NewEmptyStringValidator fails when value is blank
func NewEmptyStringValidator(field, value string) Validator {
	return emptyStringValidator{field: field, value: value}
}

func (v emptyStringValidator) Validate() error {
	if strings.TrimSpace(v.value) == "" {
		return fmt.Errorf("the [%s] is required", v.field)
	}
	return nil
}

type rangeValidator[T cmp.Ordered] struct {
	field    string
	value    T
	min, max T
}

// NewRangeValidator fails when value is outside [minimum, maximum]
func NewRangeValidator[T cmp.Ordered](field string, value, minimum, maximum T) Validator {
	return rangeValidator[T]{field: field, value: value, min: minimum, max: maximum}
}

func (v rangeValidator[T]) Validate() error {
	if v.value < v.min || v.value > v.max {
		return fmt.Errorf("the [%s] must be between %v and %v, got %v", v.field, v.min, v.max, v.value)
	}
	return nil
}

// namePattern matches worker and queue names
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

type nameValidator struct {
	field string
	value string
}

// NewNameValidator fails when value is not a valid worker or queue name.
// The wildcard "*" is accepted when wildcard is true.
func NewNameValidator(field, value string, wildcard bool) Validator {
	if wildcard && value == "*" {
		return NewBooleanValidator(true, "")
	}
	return nameValidator{field: field, value: value}
}

func (v nameValidator) Validate() error {
	if !namePattern.MatchString(v.value) {
		return fmt.Errorf("the [%s] has an invalid name %q", v.field, v.value)
	}
	return nil
}

// ValidatorFunc adapts an ordinary function into a Validator
type ValidatorFunc func() error

// Validate implements Validator
func (f ValidatorFunc) Validate() error {
	return f()
}
