package main

import (
	"os"

	awsconfig "github.com/elC0mpa/costexplorer-mcp/service/aws/config"
)

// Config holds environment-based configuration for the server
type Config struct {
	AWSRegion  string
	AWSProfile string
}

// LoadConfig reads configuration from environment variables. The region
// only scopes the startup identity probe; Cost Explorer itself is always
// addressed through its canonical region.
func LoadConfig() *Config {
	return &Config{
		AWSRegion:  getEnvOrDefault("AWS_DEFAULT_REGION", awsconfig.CostExplorerRegion),
		AWSProfile: os.Getenv("AWS_PROFILE"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
