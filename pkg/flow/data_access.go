// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flow

import (
	"context"
	"fmt"
	"io"

	"github.com/microsoft/spcflow/pkg/storage"
)

// DataAccessTool downloads the measurement CSV from blob storage and returns
// it as row-record JSON for the downstream tools.
type DataAccessTool struct {
	blobs storage.BlobClient
}

func NewDataAccessTool(blobs storage.BlobClient) *DataAccessTool {
	return &DataAccessTool{
		blobs: blobs,
	}
}

func (t *DataAccessTool) Run(
	ctx context.Context,
	containerName string,
	blobName string,
) (string, error) {
	body, err := t.blobs.Download(ctx, containerName, blobName)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed reading blob '%s': %w", blobName, err)
	}

	return storage.CsvToJson(data)
}
