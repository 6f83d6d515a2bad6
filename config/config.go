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

// Package config describes a job in YAML and turns the description into job
// options, policies and a ready to start job.Job.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tochemey/goworker/internal/validation"
	"github.com/tochemey/goworker/log"
	"github.com/tochemey/goworker/outcome"
)

const maxRetries = 100

// Job describes a job
type Job struct {
	Name           string        `yaml:"name"`
	Queues         []string      `yaml:"queues"`
	Workers        []Worker      `yaml:"workers"`
	BatchSize      int           `yaml:"batchSize"`
	PollInterval   time.Duration `yaml:"pollInterval"`
	WorkerCapacity int           `yaml:"workerCapacity"`
	Init           Init          `yaml:"init"`
	Policies       Policies      `yaml:"policies"`
	Log            Log           `yaml:"log"`
}

// Worker subscribes a named worker to queues
type Worker struct {
	Name   string   `yaml:"name"`
	Queues []string `yaml:"queues"`
}

// Init sets how worker initialization is retried
type Init struct {
	Retries int           `yaml:"retries"`
	Delay   time.Duration `yaml:"delay"`
}

// Policies lists the policies wrapping every worker. Zero values disable a
// policy.
type Policies struct {
	// Period runs a worker at most once per period
	Period time.Duration `yaml:"period"`
	// Limit caps the number of processed tasks
	Limit int64 `yaml:"limit"`
	// Calls caps the number of attempted tasks
	Calls int64 `yaml:"calls"`
	// Ratio trips once a status reaches a share of the processed tasks
	Ratio *Ratio `yaml:"ratio"`
	// Retry retries failed tasks
	Retry *Retry `yaml:"retry"`
}

// Ratio configures a ratio policy
type Ratio struct {
	Limit  float64 `yaml:"limit"`
	Status string  `yaml:"status"`
}

// Retry configures a retry policy
type Retry struct {
	Retries int           `yaml:"retries"`
	Delay   time.Duration `yaml:"delay"`
}

// Log configures the job logger
type Log struct {
	Level string `yaml:"level"`
}

// Default returns a Job description carrying the default settings
func Default() *Job {
	return &Job{
		BatchSize:      10,
		WorkerCapacity: 256,
		Init:           Init{Retries: 3, Delay: 100 * time.Millisecond},
		Log:            Log{Level: "info"},
	}
}

// Validate reports every invalid setting
func (c *Job) Validate() error {
	chain := validation.New(validation.AllErrors()).
		AddValidator(validation.NewEmptyStringValidator("name", c.Name)).
		AddAssertion(len(c.Queues) > 0, "the [queues] must not be empty").
		AddAssertion(len(c.Workers) > 0, "the [workers] must not be empty").
		AddValidator(validation.NewRangeValidator("batchSize", c.BatchSize, 1, 10_000)).
		AddValidator(validation.NewRangeValidator("workerCapacity", c.WorkerCapacity, 1, 1_000_000)).
		AddAssertion(c.PollInterval >= 0, "the [pollInterval] must not be negative").
		AddValidator(validation.NewRangeValidator("init.retries", c.Init.Retries, 1, maxRetries)).
		AddAssertion(c.Init.Delay >= 0, "the [init.delay] must not be negative").
		AddAssertion(c.Policies.Period >= 0, "the [policies.period] must not be negative").
		AddAssertion(c.Policies.Limit >= 0, "the [policies.limit] must not be negative").
		AddAssertion(c.Policies.Calls >= 0, "the [policies.calls] must not be negative")

	if _, err := parseLevel(c.Log.Level); err != nil {
		chain.AddAssertion(false, err.Error())
	}

	for _, queue := range c.Queues {
		chain.AddValidator(validation.NewNameValidator("queues", queue, false))
	}
	for _, worker := range c.Workers {
		chain.AddValidator(validation.NewNameValidator("workers.name", worker.Name, false)).
			AddAssertion(len(worker.Queues) > 0, fmt.Sprintf("the [workers.queues] of %q must not be empty", worker.Name))
		for _, queue := range worker.Queues {
			chain.AddValidator(validation.NewNameValidator("workers.queues", queue, true))
		}
	}

	if ratio := c.Policies.Ratio; ratio != nil {
		chain.AddValidator(validation.NewRangeValidator("policies.ratio.limit", ratio.Limit, 0, 1))
		if _, err := parseStatus(ratio.Status); err != nil {
			chain.AddAssertion(false, err.Error())
		}
	}
	if retry := c.Policies.Retry; retry != nil {
		chain.AddValidator(validation.NewRangeValidator("policies.retry.retries", retry.Retries, 0, maxRetries)).
			AddAssertion(retry.Delay >= 0, "the [policies.retry.delay] must not be negative")
	}
	return chain.Validate()
}

// Logger returns a zap logger at the configured level, writing to stdout
// unless writers are given
func (c *Job) Logger(writers ...io.Writer) log.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewZap(level, writers...)
}

func parseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarningLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InvalidLevel, fmt.Errorf("the [log.level] %q is not supported", level)
	}
}

func parseStatus(status string) (outcome.Status, error) {
	for _, candidate := range outcome.Statuses {
		if strings.EqualFold(candidate.String(), status) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("the [policies.ratio.status] %q is not supported", status)
}
