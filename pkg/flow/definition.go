// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the flow file describing one pipeline execution: where the
// measurement data lives and optional per-run overrides.
type Definition struct {
	Name   string           `yaml:"name,omitempty"`
	Inputs DefinitionInputs `yaml:"inputs"`

	// Model overrides the configured model deployment for this run.
	Model string `yaml:"model,omitempty"`

	Timeouts DefinitionTimeouts `yaml:"timeouts,omitempty"`
}

type DefinitionInputs struct {
	// ContainerName holds the source CSV; the report is published to the
	// sibling "<containerName>-output" container.
	ContainerName string `yaml:"containerName"`
	BlobName      string `yaml:"blobName"`

	// ReportName is the base name for the published report. Defaults to the
	// blob name without its extension plus a "-report" suffix.
	ReportName string `yaml:"reportName,omitempty"`
}

type DefinitionTimeouts struct {
	BehaviorSeconds   int `yaml:"behaviorSeconds,omitempty"`
	AggregatorSeconds int `yaml:"aggregatorSeconds,omitempty"`
}

// NewDefinition builds an in-memory definition for direct invocations that
// skip the flow file.
func NewDefinition(containerName string, blobName string, reportName string) (*Definition, error) {
	definition := &Definition{
		Inputs: DefinitionInputs{
			ContainerName: containerName,
			BlobName:      blobName,
			ReportName:    reportName,
		},
	}

	if err := definition.validate(); err != nil {
		return nil, err
	}

	return definition, nil
}

// LoadDefinition parses and validates a flow definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading flow definition '%s': %w", path, err)
	}

	return ParseDefinition(data)
}

func ParseDefinition(data []byte) (*Definition, error) {
	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("failed parsing flow definition: %w", err)
	}

	if err := definition.validate(); err != nil {
		return nil, err
	}

	return &definition, nil
}

func (d *Definition) validate() error {
	if d.Inputs.ContainerName == "" {
		return fmt.Errorf("flow definition is missing inputs.containerName")
	}
	if d.Inputs.BlobName == "" {
		return fmt.Errorf("flow definition is missing inputs.blobName")
	}

	if d.Inputs.ReportName == "" {
		base := strings.TrimSuffix(d.Inputs.BlobName, filepath.Ext(d.Inputs.BlobName))
		d.Inputs.ReportName = base + "-report"
	}

	return nil
}
