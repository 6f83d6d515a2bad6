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

package job

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/tochemey/goworker/job"

// workerMetric defines the worker instrumentation
type workerMetric struct {
	processed metric.Int64ObservableCounter
	succeeded metric.Int64ObservableCounter
	filtered  metric.Int64ObservableCounter
	errored   metric.Int64ObservableCounter
	pending   metric.Int64ObservableGauge
}

func newWorkerMetric(meter metric.Meter) (*workerMetric, error) {
	m := new(workerMetric)
	var err error
	if m.processed, err = meter.Int64ObservableCounter(
		"worker_processed_count",
		metric.WithDescription("Total number of tasks processed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processed instrument, %w", err)
	}
	if m.succeeded, err = meter.Int64ObservableCounter(
		"worker_succeeded_count",
		metric.WithDescription("Total number of tasks processed successfully"),
	); err != nil {
		return nil, fmt.Errorf("failed to create succeeded instrument, %w", err)
	}
	if m.filtered, err = meter.Int64ObservableCounter(
		"worker_filtered_count",
		metric.WithDescription("Total number of tasks denied, ignored or invalid"),
	); err != nil {
		return nil, fmt.Errorf("failed to create filtered instrument, %w", err)
	}
	if m.errored, err = meter.Int64ObservableCounter(
		"worker_errored_count",
		metric.WithDescription("Total number of tasks that failed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create errored instrument, %w", err)
	}
	if m.pending, err = meter.Int64ObservableGauge(
		"worker_mailbox_size",
		metric.WithDescription("Number of tasks waiting in the worker mailbox"),
	); err != nil {
		return nil, fmt.Errorf("failed to create pending instrument, %w", err)
	}
	return m, nil
}

func defaultMeter() metric.Meter {
	return otel.GetMeterProvider().Meter(instrumentationName)
}

// registerMetrics observes the tallies of every runner of the job
func registerMetrics(meter metric.Meter, job string, runners []*Runner) (metric.Registration, error) {
	m, err := newWorkerMetric(meter)
	if err != nil {
		return nil, err
	}

	observeOptions := make([][]metric.ObserveOption, len(runners))
	for i, runner := range runners {
		observeOptions[i] = []metric.ObserveOption{
			metric.WithAttributes(
				attribute.String("job.name", job),
				attribute.String("worker.name", runner.Name()),
			),
		}
	}

	return meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		for i, runner := range runners {
			stats := runner.Stats()
			observer.ObserveInt64(m.processed, stats.Processed, observeOptions[i]...)
			observer.ObserveInt64(m.succeeded, stats.Succeeded, observeOptions[i]...)
			observer.ObserveInt64(m.filtered, stats.Filtered, observeOptions[i]...)
			observer.ObserveInt64(m.errored, stats.Errored, observeOptions[i]...)
			observer.ObserveInt64(m.pending, int64(runner.Len()), observeOptions[i]...)
		}
		return nil
	}, m.processed, m.succeeded, m.filtered, m.errored, m.pending)
}
