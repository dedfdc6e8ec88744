package awscostexplorer

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/costexplorer-mcp/model"
)

// buildCostInput maps a resolved cost query onto the GetCostAndUsage input.
// Optional fields stay nil when the query omits them.
func buildCostInput(query model.CostQuery) *costexplorer.GetCostAndUsageInput {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(query.TimeRange.Start),
			End:   aws.String(query.TimeRange.End),
		},
		Granularity: types.Granularity(query.Granularity),
		Metrics:     query.Metrics,
	}

	if len(query.GroupBy) > 0 {
		groupBy := query.GroupBy
		if len(groupBy) > 2 {
			// the validator already bounds this; truncate anyway
			groupBy = groupBy[:2]
		}
		definitions := make([]types.GroupDefinition, 0, len(groupBy))
		for _, dimension := range groupBy {
			definitions = append(definitions, types.GroupDefinition{
				Type: types.GroupDefinitionTypeDimension,
				Key:  aws.String(dimension),
			})
		}
		input.GroupBy = definitions
	}

	if query.Filter != nil {
		values := query.Filter.Values
		if values == nil {
			values = []string{}
		}
		input.Filter = &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:          types.Dimension(query.Filter.Dimension),
				Values:       values,
				MatchOptions: []types.MatchOption{types.MatchOptionEquals},
			},
		}
	}

	if query.NextPageToken != "" {
		input.NextPageToken = aws.String(query.NextPageToken)
	}

	return input
}

// buildDimensionInput maps a resolved dimension query onto the
// GetDimensionValues input.
func buildDimensionInput(query model.DimensionQuery) *costexplorer.GetDimensionValuesInput {
	input := &costexplorer.GetDimensionValuesInput{
		Dimension: types.Dimension(query.Dimension),
		TimePeriod: &types.DateInterval{
			Start: aws.String(query.TimeRange.Start),
			End:   aws.String(query.TimeRange.End),
		},
		MaxResults: aws.Int32(query.MaxResults),
	}

	if query.SearchString != "" {
		input.SearchString = aws.String(query.SearchString)
	}

	if query.NextPageToken != "" {
		input.NextPageToken = aws.String(query.NextPageToken)
	}

	return input
}
