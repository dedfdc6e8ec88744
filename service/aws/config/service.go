package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go/middleware"
	"github.com/elC0mpa/costexplorer-mcp/model"
)

func NewService() *service {
	return &service{}
}

// GetAWSCfg resolves an aws.Config bound to the given region and optional
// shared-config profile. Transient faults are retried by the SDK in standard
// mode with a budget of 10 attempts, and every request carries a fixed
// user-agent tag for provider-side attribution.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithRetryMaxAttempts(maxRetryAttempts),
		config.WithAPIOptions([]func(*middleware.Stack) error{
			awsmiddleware.AddUserAgentKey(userAgent),
		}),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}

	// Probe the credential chain now so missing credentials surface as a
	// CredentialsError instead of an opaque failure on the first API call.
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, &model.CredentialsError{
			Message: "AWS credentials not found. Please configure AWS credentials or specify a profile.",
		}
	}

	return cfg, nil
}
