// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/microsoft/spcflow/pkg/agents"
	"github.com/microsoft/spcflow/pkg/storage"
)

// Runner executes the report pipeline end to end: source data is downloaded,
// charted and analyzed, and the aggregated summary is rendered and published.
type Runner struct {
	config *Config
	client agents.AgentsClient
	blobs  storage.BlobClient
}

func NewRunner(config *Config, client agents.AgentsClient, blobs storage.BlobClient) *Runner {
	return &Runner{
		config: config,
		client: client,
		blobs:  blobs,
	}
}

// RunResult carries the URLs produced by a pipeline execution.
type RunResult struct {
	ChartUrl  string
	ReportUrl string
}

// Run executes the tools in dependency order. Chart and capability metrics
// both consume the source data; behavior analysis needs both of their
// outputs; everything downstream is a straight line.
func (r *Runner) Run(ctx context.Context, definition *Definition) (*RunResult, error) {
	config := *r.config
	if definition.Model != "" {
		config.ModelDeployment = definition.Model
	}

	var behaviorPoller *agents.RunPollerOptions
	if definition.Timeouts.BehaviorSeconds > 0 {
		behaviorPoller = &agents.RunPollerOptions{
			Timeout: time.Duration(definition.Timeouts.BehaviorSeconds) * time.Second,
		}
	}

	var aggregatorPoller *agents.RunPollerOptions
	if definition.Timeouts.AggregatorSeconds > 0 {
		aggregatorPoller = &agents.RunPollerOptions{
			Timeout: time.Duration(definition.Timeouts.AggregatorSeconds) * time.Second,
		}
	}

	inputs := definition.Inputs

	log.Printf("flow: downloading data from '%s/%s'", inputs.ContainerName, inputs.BlobName)
	data, err := NewDataAccessTool(r.blobs).Run(ctx, inputs.ContainerName, inputs.BlobName)
	if err != nil {
		return nil, fmt.Errorf("data access failed: %w", err)
	}

	log.Printf("flow: requesting control chart")
	chartUrl, err := NewChartTool(r.client, &config, nil).Run(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("chart generation failed: %w", err)
	}
	if strings.HasPrefix(chartUrl, "ERROR:") {
		return nil, fmt.Errorf("chart generation failed: %s", chartUrl)
	}

	log.Printf("flow: computing capability metrics")
	capMetrics, err := NewCapMetricsTool(r.client, &config, nil).Run(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("capability metrics failed: %w", err)
	}

	log.Printf("flow: analyzing process behavior")
	behavior, err := NewProcessBehaviorTool(r.client, &config, behaviorPoller).
		Run(ctx, capMetrics, chartUrl)
	if err != nil {
		return nil, fmt.Errorf("process behavior analysis failed: %w", err)
	}

	log.Printf("flow: aggregating analyses")
	summary, err := NewAggregatorTool(r.client, &config, aggregatorPoller).
		Run(ctx, behavior, capMetrics, chartUrl)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}

	log.Printf("flow: rendering report")
	html := NewReportTool().Run(summary)

	log.Printf("flow: publishing report")
	reportUrl, err := NewReportWriterTool(r.blobs).
		Run(ctx, inputs.ContainerName, inputs.ReportName, html)
	if err != nil {
		return nil, fmt.Errorf("report upload failed: %w", err)
	}

	return &RunResult{
		ChartUrl:  chartUrl,
		ReportUrl: reportUrl,
	}, nil
}
