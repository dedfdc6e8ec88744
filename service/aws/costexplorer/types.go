package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/costexplorer-mcp/model"
	"github.com/rs/zerolog"
)

// CostExplorerAPI is the subset of the Cost Explorer client the service uses.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
	GetDimensionValues(ctx context.Context, params *costexplorer.GetDimensionValuesInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetDimensionValuesOutput, error)
}

type service struct {
	profile string
	logger  zerolog.Logger
	client  CostExplorerAPI
}

type CostService interface {
	GetCostAndUsage(ctx context.Context, query model.CostQuery) (*costexplorer.GetCostAndUsageOutput, error)
	GetDimensionValues(ctx context.Context, query model.DimensionQuery) (*costexplorer.GetDimensionValuesOutput, error)
}
