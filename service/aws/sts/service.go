package awssts

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/costexplorer-mcp/model"
)

func NewService(awsconfig aws.Config) *service {
	client := sts.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// NewServiceWithClient wires a caller-supplied STS client, used by tests.
func NewServiceWithClient(client STSAPI) *service {
	return &service{
		client: client,
	}
}

// GetAccountInfo resolves the caller identity. It doubles as the startup
// credential/permission probe: a failure here means the process cannot
// usefully serve any tool call.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	output, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, &model.ProviderError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
		}
		return nil, &model.InternalError{Err: err}
	}

	return &model.AccountInfo{
		AccountID: aws.ToString(output.Account),
		Arn:       aws.ToString(output.Arn),
	}, nil
}
