// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	defaultPollInterval = 1 * time.Second
	defaultPollTimeout  = 60 * time.Second
)

// RunFailedError is returned when a run reaches a terminal failure state.
type RunFailedError struct {
	Status RunStatus
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("agent run ended with status: %s", e.Status)
}

// RunTimeoutError is returned when a run does not reach a terminal state
// within the wall-clock budget.
type RunTimeoutError struct {
	Timeout    time.Duration
	LastStatus RunStatus
}

func (e *RunTimeoutError) Error() string {
	return fmt.Sprintf(
		"agent run did not complete within %s. Last status: %s",
		e.Timeout,
		e.LastStatus,
	)
}

// RunPoller polls a run at a fixed interval until it reaches a terminal state
// or the wall-clock budget elapses.
type RunPoller struct {
	client   AgentsClient
	clock    clock.Clock
	interval time.Duration
	timeout  time.Duration
}

type RunPollerOptions struct {
	// Interval between status checks. Defaults to one second.
	Interval time.Duration
	// Timeout is the total wall-clock budget. Defaults to one minute.
	Timeout time.Duration
	// Clock defaults to the wall clock; tests substitute a mock.
	Clock clock.Clock
}

func NewRunPoller(client AgentsClient, options *RunPollerOptions) *RunPoller {
	if options == nil {
		options = &RunPollerOptions{}
	}

	poller := &RunPoller{
		client:   client,
		clock:    options.Clock,
		interval: options.Interval,
		timeout:  options.Timeout,
	}

	if poller.clock == nil {
		poller.clock = clock.New()
	}
	if poller.interval <= 0 {
		poller.interval = defaultPollInterval
	}
	if poller.timeout <= 0 {
		poller.timeout = defaultPollTimeout
	}

	return poller
}

// PollUntilDone blocks until the run succeeds, fails or the budget elapses.
// The last observed run is returned alongside any error so callers can log
// its final status.
func (p *RunPoller) PollUntilDone(
	ctx context.Context,
	threadId string,
	runId string,
) (*ThreadRun, error) {
	deadline := p.clock.Now().Add(p.timeout)
	builder := p.client.ThreadById(threadId).Runs().RunById(runId)

	for {
		run, err := builder.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed getting run status: %w", err)
		}

		if run.Status.HasSucceeded() {
			return run, nil
		}
		if run.Status.HasFailed() {
			return run, &RunFailedError{Status: run.Status}
		}

		if p.clock.Now().Add(p.interval).After(deadline) {
			return run, &RunTimeoutError{
				Timeout:    p.timeout,
				LastStatus: run.Status,
			}
		}

		timer := p.clock.Timer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return run, ctx.Err()
		case <-timer.C:
		}
	}
}
