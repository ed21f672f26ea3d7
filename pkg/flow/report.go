// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"log"

	"github.com/microsoft/spcflow/pkg/markdown"
)

const renderFailureMessage = "An error occurred while generating the report."

// ReportTool renders the aggregator's markdown summary into a self-contained
// HTML document.
type ReportTool struct{}

func NewReportTool() *ReportTool {
	return &ReportTool{}
}

// Run always returns a renderable document. Rendering is pure string work
// and should never panic; if it does, the report degrades to a generic
// failure message instead of aborting the pipeline.
func (t *ReportTool) Run(summary string) (html string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("report rendering failed: %v", r)
			html = markdown.Render(renderFailureMessage)
		}
	}()

	return markdown.Render(summary)
}
