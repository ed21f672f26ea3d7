// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Render_SingleLineSummary(t *testing.T) {
	input := "## Summary The process is stable. - **Action:** monitor"

	output := Render(input)

	require.Contains(t, output, "<h2>Summary The process is stable.</h2>")
	require.Contains(t, output, "<ul>\n<li><strong>Action:</strong> monitor</li>\n</ul>")
}

func Test_Render_DocumentSkeleton(t *testing.T) {
	output := Render("content")

	require.True(t, strings.HasPrefix(output, "<!DOCTYPE html>"))
	require.Contains(t, output, "<html lang=\"en\">")
	require.Contains(t, output, "mathjax")
	require.Contains(t, output, "Process Capability Analysis")
	require.Contains(t, output, "Generated Report | Confidential")
	require.Contains(t, output, "<p>content</p>")
	require.True(t, strings.HasSuffix(strings.TrimSpace(output), "</html>"))
}

func Test_Render_EmptyInput(t *testing.T) {
	output := Render("")

	require.True(t, strings.HasPrefix(output, "<!DOCTYPE html>"))
	require.NotContains(t, output, "{{body}}")
	require.NotContains(t, output, "<p>")
}

func Test_Render_DisplayMathWithSigma(t *testing.T) {
	output := Render(`The variance $$\sigma^2$$ and the σ character`)

	require.Contains(t, output, `<div class="math-display">\[\sigma^2\]</div>`)
	require.Contains(t, output, "&sigma; character")
}

func Test_Render_MixedDocument(t *testing.T) {
	input := "## Capability Review ### Metrics 1. **Cp:** 1.2 2. **Cpk:** 0.9 " +
		"The chart: https://charts.example.com/spc.png > Review required"

	output := Render(input)

	require.Contains(t, output, "<h2>Capability Review</h2>")
	require.Contains(t, output, "<h3>Metrics</h3>")
	require.Contains(t, output, "<li><strong>Cp:</strong> 1.2</li>")
	require.Contains(t, output, "<li><strong>Cpk:</strong> 0.9 The chart: ")
	require.Contains(t, output,
		`<img src="https://charts.example.com/spc.png" alt="Image" class="embedded-image">`)
	require.Contains(t, output, "<blockquote>Review required</blockquote>")
}
