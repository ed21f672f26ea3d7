// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package storage wraps the blob storage account the report pipeline reads
// measurement data from and writes rendered reports to.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/microsoft/spcflow/pkg/convert"
	"github.com/sethvargo/go-retry"
)

// AccountConfig contains the configuration for connecting to a storage account
type AccountConfig struct {
	AccountName string
	AccountKey  string
	Endpoint    string
}

const (
	DefaultBlobEndpoint = "blob.core.windows.net"
)

type BlobClient interface {
	// Download downloads a blob from the specified container.
	Download(ctx context.Context, containerName string, blobPath string) (io.ReadCloser, error)

	// Upload uploads a blob with the declared content type to the specified
	// container, creating the container with public blob-level read access if
	// it does not exist. Returns the URL of the uploaded blob.
	Upload(
		ctx context.Context,
		containerName string,
		blobPath string,
		contentType string,
		reader io.Reader,
	) (string, error)
}

// NewBlobClient creates a new BlobClient instance authenticated with the
// account's shared key.
func NewBlobClient(config AccountConfig, coreOptions *azcore.ClientOptions) BlobClient {
	return &blobClient{
		config:      config,
		coreOptions: coreOptions,
	}
}

type blobClient struct {
	config      AccountConfig
	coreOptions *azcore.ClientOptions
	client      *azblob.Client
}

func (bc *blobClient) Download(
	ctx context.Context,
	containerName string,
	blobPath string,
) (io.ReadCloser, error) {
	client, err := bc.createClient()
	if err != nil {
		return nil, err
	}

	resp, err := client.DownloadStream(ctx, containerName, blobPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download blob '%s', %w", blobPath, err)
	}

	return resp.Body, nil
}

func (bc *blobClient) Upload(
	ctx context.Context,
	containerName string,
	blobPath string,
	contentType string,
	reader io.Reader,
) (string, error) {
	client, err := bc.createClient()
	if err != nil {
		return "", err
	}

	if err := bc.ensureContainerExists(ctx, containerName); err != nil {
		return "", err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed reading blob content: %w", err)
	}

	uploadOptions := &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: convert.RefOf(contentType),
		},
	}

	// Storage occasionally returns transient server errors right after a
	// container is created; retry briefly before giving up.
	err = retry.Do(ctx, retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond)),
		func(ctx context.Context) error {
			_, err := client.UploadBuffer(ctx, containerName, blobPath, data, uploadOptions)
			if bloberror.HasCode(err,
				bloberror.ServerBusy,
				bloberror.InternalError,
				bloberror.OperationTimedOut,
			) {
				return retry.RetryableError(err)
			}
			return err
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob '%s', %w", blobPath, err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(client.URL(), "/"), containerName, blobPath), nil
}

// Create the container if it doesn't already exist. Blob-level public read
// access is enabled so report URLs can be shared directly.
func (bc *blobClient) ensureContainerExists(ctx context.Context, containerName string) error {
	client, err := bc.createClient()
	if err != nil {
		return err
	}

	createOptions := &azblob.CreateContainerOptions{
		Access: convert.RefOf(azblob.PublicAccessTypeBlob),
	}

	_, err = client.CreateContainer(ctx, containerName, createOptions)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return fmt.Errorf("failed to create container '%s', %w", containerName, err)
	}

	return nil
}

// createClient creates a new blob client and caches it for future use
func (bc *blobClient) createClient() (*azblob.Client, error) {
	if bc.client != nil {
		return bc.client, nil
	}

	credential, err := azblob.NewSharedKeyCredential(bc.config.AccountName, bc.config.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential, %w", err)
	}

	blobOptions := &azblob.ClientOptions{}
	if bc.coreOptions != nil {
		blobOptions.ClientOptions = *bc.coreOptions
	}

	if bc.config.Endpoint == "" {
		bc.config.Endpoint = DefaultBlobEndpoint
	}

	serviceUrl := fmt.Sprintf("https://%s.%s", bc.config.AccountName, bc.config.Endpoint)
	client, err := azblob.NewClientWithSharedKeyCredential(serviceUrl, credential, blobOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client, %w", err)
	}

	bc.client = client

	return bc.client, nil
}
