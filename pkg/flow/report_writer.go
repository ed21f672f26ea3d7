// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"

	"github.com/microsoft/spcflow/pkg/storage"
)

// ReportWriterTool uploads the rendered HTML report to blob storage and
// returns the URL it was published at.
type ReportWriterTool struct {
	blobs storage.BlobClient
}

func NewReportWriterTool(blobs storage.BlobClient) *ReportWriterTool {
	return &ReportWriterTool{
		blobs: blobs,
	}
}

func (t *ReportWriterTool) Run(
	ctx context.Context,
	containerName string,
	blobName string,
	htmlContent string,
) (string, error) {
	return storage.UploadReport(ctx, t.blobs, containerName, blobName, htmlContent)
}
