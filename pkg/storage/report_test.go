// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBlobClient struct {
	uploadedContainer   string
	uploadedBlob        string
	uploadedContentType string
	uploadedContent     string
}

func (c *fakeBlobClient) Download(
	ctx context.Context,
	containerName string,
	blobPath string,
) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (c *fakeBlobClient) Upload(
	ctx context.Context,
	containerName string,
	blobPath string,
	contentType string,
	reader io.Reader,
) (string, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	c.uploadedContainer = containerName
	c.uploadedBlob = blobPath
	c.uploadedContentType = contentType
	c.uploadedContent = string(content)

	return fmt.Sprintf("https://account.blob.core.windows.net/%s/%s", containerName, blobPath), nil
}

var reportNamePattern = regexp.MustCompile(
	`^line4-report-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.html$`)

func Test_UploadReport(t *testing.T) {
	client := &fakeBlobClient{}

	url, err := UploadReport(context.Background(), client, "measurements", "line4-report", "<html/>")
	require.NoError(t, err)

	require.Equal(t, "measurements-output", client.uploadedContainer)
	require.Regexp(t, reportNamePattern, client.uploadedBlob)
	require.Equal(t, "text/html", client.uploadedContentType)
	require.Equal(t, "<html/>", client.uploadedContent)
	require.Contains(t, url, client.uploadedBlob)
}

func Test_UploadReport_StripsHtmlExtension(t *testing.T) {
	client := &fakeBlobClient{}

	_, err := UploadReport(context.Background(), client, "measurements", "line4-report.html", "<html/>")
	require.NoError(t, err)
	require.Regexp(t, reportNamePattern, client.uploadedBlob)
}

func Test_UploadReport_UniqueNames(t *testing.T) {
	client := &fakeBlobClient{}

	_, err := UploadReport(context.Background(), client, "c", "r", "x")
	require.NoError(t, err)
	first := client.uploadedBlob

	_, err = UploadReport(context.Background(), client, "c", "r", "x")
	require.NoError(t, err)

	require.NotEqual(t, first, client.uploadedBlob)
}
