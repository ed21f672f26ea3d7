// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UploadReport publishes a rendered HTML report. Reports land in a sibling
// "-output" container so generated artifacts never mix with source data, and
// each upload gets a unique blob name so reruns never overwrite each other.
func UploadReport(
	ctx context.Context,
	client BlobClient,
	containerName string,
	blobName string,
	htmlContent string,
) (string, error) {
	outputContainer := containerName + "-output"

	baseName := strings.TrimSuffix(blobName, ".html")
	reportName := fmt.Sprintf("%s-%s.html", baseName, uuid.NewString())

	return client.Upload(
		ctx,
		outputContainer,
		reportName,
		"text/html",
		strings.NewReader(htmlContent),
	)
}
