// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReportTool_RendersDocument(t *testing.T) {
	tool := NewReportTool()

	html := tool.Run("## Summary The process is stable.")

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "<h2>Summary The process is stable.</h2>")
}

func Test_ReportTool_EmptySummary(t *testing.T) {
	tool := NewReportTool()

	html := tool.Run("")

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "</html>")
}
