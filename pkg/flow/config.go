// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package flow contains the pipeline tools that turn a CSV of process
// measurements into a published SPC capability report, plus the runner that
// executes them in order.
package flow

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the settings shared by the pipeline tools. All values come
// from the environment, optionally seeded from a dotenv file.
type Config struct {
	// ProjectEndpoint is the AI project endpoint the agents client targets.
	ProjectEndpoint string
	// ModelDeployment is the model deployment name used for per-run agents.
	ModelDeployment string

	TenantId     string
	ClientId     string
	ClientSecret string

	// AggregatorAgentId identifies the pre-provisioned aggregator agent.
	AggregatorAgentId string

	StorageAccountName string
	StorageAccountKey  string
}

// MissingConfigError is returned when a required setting is absent. Callers
// treat this as fatal.
type MissingConfigError struct {
	Name string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required setting '%s' is not set in the environment", e.Name)
}

// LoadConfig reads configuration from the environment. When dotenvPath names
// an existing file its values are loaded first; a missing file is not an
// error so the same binary runs in environments configured either way.
func LoadConfig(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				return nil, fmt.Errorf("failed loading '%s': %w", dotenvPath, err)
			}
		}
	}

	config := &Config{
		ProjectEndpoint:    os.Getenv("PROJECT_ENDPOINT"),
		ModelDeployment:    os.Getenv("MODEL_DEPLOYMENT_NAME"),
		TenantId:           os.Getenv("AZURE_TENANT_ID"),
		ClientId:           os.Getenv("AZURE_CLIENT_ID"),
		ClientSecret:       os.Getenv("AZURE_CLIENT_SECRET"),
		AggregatorAgentId:  os.Getenv("AGGREGATOR_AGENT_ID"),
		StorageAccountName: os.Getenv("STORAGE_ACCOUNT_NAME"),
		StorageAccountKey:  os.Getenv("STORAGE_ACCOUNT_KEY"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"PROJECT_ENDPOINT", config.ProjectEndpoint},
		{"MODEL_DEPLOYMENT_NAME", config.ModelDeployment},
		{"AZURE_TENANT_ID", config.TenantId},
		{"AZURE_CLIENT_ID", config.ClientId},
		{"AZURE_CLIENT_SECRET", config.ClientSecret},
		{"AGGREGATOR_AGENT_ID", config.AggregatorAgentId},
		{"STORAGE_ACCOUNT_NAME", config.StorageAccountName},
		{"STORAGE_ACCOUNT_KEY", config.StorageAccountKey},
	}

	for _, setting := range required {
		if setting.value == "" {
			return nil, &MissingConfigError{Name: setting.name}
		}
	}

	return config, nil
}
