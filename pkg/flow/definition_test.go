// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseDefinition(t *testing.T) {
	data := []byte(`
name: line4-report
inputs:
  containerName: measurements
  blobName: line4.csv
  reportName: line4-spc
model: gpt-4o-mini
timeouts:
  behaviorSeconds: 120
  aggregatorSeconds: 45
`)

	definition, err := ParseDefinition(data)
	require.NoError(t, err)
	require.Equal(t, "line4-report", definition.Name)
	require.Equal(t, "measurements", definition.Inputs.ContainerName)
	require.Equal(t, "line4.csv", definition.Inputs.BlobName)
	require.Equal(t, "line4-spc", definition.Inputs.ReportName)
	require.Equal(t, "gpt-4o-mini", definition.Model)
	require.Equal(t, 120, definition.Timeouts.BehaviorSeconds)
	require.Equal(t, 45, definition.Timeouts.AggregatorSeconds)
}

func Test_ParseDefinition_DefaultReportName(t *testing.T) {
	data := []byte(`
inputs:
  containerName: measurements
  blobName: line4.csv
`)

	definition, err := ParseDefinition(data)
	require.NoError(t, err)
	require.Equal(t, "line4-report", definition.Inputs.ReportName)
}

func Test_ParseDefinition_MissingInputs(t *testing.T) {
	_, err := ParseDefinition([]byte("inputs:\n  blobName: x.csv\n"))
	require.Error(t, err)

	_, err = ParseDefinition([]byte("inputs:\n  containerName: c\n"))
	require.Error(t, err)
}

func Test_ParseDefinition_InvalidYaml(t *testing.T) {
	_, err := ParseDefinition([]byte("inputs: [unclosed"))
	require.Error(t, err)
}

func Test_NewDefinition(t *testing.T) {
	definition, err := NewDefinition("measurements", "line4.csv", "")
	require.NoError(t, err)
	require.Equal(t, "line4-report", definition.Inputs.ReportName)

	_, err = NewDefinition("", "line4.csv", "")
	require.Error(t, err)
}
