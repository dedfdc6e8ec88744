package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// CostExplorerRegion is the canonical region for the Cost Explorer API.
// The service is global but must be addressed through us-east-1.
const CostExplorerRegion = "us-east-1"

const (
	maxRetryAttempts = 10
	userAgent        = "mcp-aws-cost-explorer/1.0"
)

type service struct{}

type ConfigService interface {
	GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error)
}
