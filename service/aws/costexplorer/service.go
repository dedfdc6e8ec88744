package awscostexplorer

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/costexplorer-mcp/model"
	awsconfig "github.com/elC0mpa/costexplorer-mcp/service/aws/config"
	"github.com/rs/zerolog"
)

// NewService returns a Cost Explorer service bound to an optional shared
// config profile. The underlying client is created lazily on first use.
func NewService(profile string, logger zerolog.Logger) *service {
	return &service{
		profile: profile,
		logger:  logger,
	}
}

// NewServiceWithClient wires a caller-supplied API client, used by tests.
func NewServiceWithClient(client CostExplorerAPI, logger zerolog.Logger) *service {
	return &service{
		client: client,
		logger: logger,
	}
}

// GetCostAndUsage executes a resolved cost query. Callers must resolve the
// query with ResolveCostQuery first.
func (s *service) GetCostAndUsage(ctx context.Context, query model.CostQuery) (*costexplorer.GetCostAndUsageOutput, error) {
	client, err := s.api(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("operation", "GetCostAndUsage").
		Str("start", query.TimeRange.Start).
		Str("end", query.TimeRange.End).
		Str("granularity", query.Granularity).
		Strs("metrics", query.Metrics).
		Msg("calling Cost Explorer")

	output, err := client.GetCostAndUsage(ctx, buildCostInput(query))
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "GetCostAndUsage").Msg("Cost Explorer call failed")
		return nil, mapAPIError(err)
	}

	return output, nil
}

// GetDimensionValues executes a resolved dimension query. Callers must
// resolve the query with ResolveDimensionQuery first.
func (s *service) GetDimensionValues(ctx context.Context, query model.DimensionQuery) (*costexplorer.GetDimensionValuesOutput, error) {
	client, err := s.api(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("operation", "GetDimensionValues").
		Str("dimension", query.Dimension).
		Str("start", query.TimeRange.Start).
		Str("end", query.TimeRange.End).
		Msg("calling Cost Explorer")

	output, err := client.GetDimensionValues(ctx, buildDimensionInput(query))
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "GetDimensionValues").Msg("Cost Explorer call failed")
		return nil, mapAPIError(err)
	}

	return output, nil
}

// api returns the memoized Cost Explorer client, creating it on first use.
// A service instance is single-owner within one call, so no locking.
func (s *service) api(ctx context.Context) (CostExplorerAPI, error) {
	if s.client != nil {
		return s.client, nil
	}

	configSvc := awsconfig.NewService()
	cfg, err := configSvc.GetAWSCfg(ctx, awsconfig.CostExplorerRegion, s.profile)
	if err != nil {
		return nil, err
	}

	s.client = costexplorer.NewFromConfig(cfg)
	return s.client, nil
}

// mapAPIError translates SDK failures into the service error taxonomy:
// provider-reported errors keep their code and message, anything else is
// an internal fault.
func mapAPIError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &model.ProviderError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}
	return &model.InternalError{Err: err}
}
