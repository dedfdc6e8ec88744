package response

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/costexplorer-mcp/model"
)

// ConvertCostEnvelope builds the cost result envelope from the resolved
// query and the raw API output. The result count is recomputed from the
// returned records rather than trusted from the provider.
func ConvertCostEnvelope(query model.CostQuery, output *costexplorer.GetCostAndUsageOutput) *CostEnvelope {
	groupBy := query.GroupBy
	if groupBy == nil {
		groupBy = []string{}
	}

	results := make([]ResultByTime, 0, len(output.ResultsByTime))
	for _, result := range output.ResultsByTime {
		results = append(results, convertResultByTime(result))
	}

	return &CostEnvelope{
		TimePeriod: TimePeriod{
			Start: query.TimeRange.Start,
			End:   query.TimeRange.End,
		},
		Granularity:   query.Granularity,
		Metrics:       query.Metrics,
		GroupBy:       groupBy,
		ResultsByTime: results,
		NextPageToken: output.NextPageToken,
		TotalResults:  len(results),
	}
}

// ConvertDimensionEnvelope builds the dimension result envelope from the
// resolved query and the raw API output. Sizes the provider omits default
// to zero.
func ConvertDimensionEnvelope(query model.DimensionQuery, output *costexplorer.GetDimensionValuesOutput) *DimensionEnvelope {
	values := make([]DimensionValue, 0, len(output.DimensionValues))
	for _, value := range output.DimensionValues {
		attributes := value.Attributes
		if attributes == nil {
			attributes = map[string]string{}
		}
		values = append(values, DimensionValue{
			Value:      aws.ToString(value.Value),
			Attributes: attributes,
		})
	}

	return &DimensionEnvelope{
		Dimension: query.Dimension,
		TimePeriod: TimePeriod{
			Start: query.TimeRange.Start,
			End:   query.TimeRange.End,
		},
		DimensionValues: values,
		NextPageToken:   output.NextPageToken,
		TotalSize:       aws.ToInt32(output.TotalSize),
		ReturnSize:      aws.ToInt32(output.ReturnSize),
	}
}

func convertResultByTime(result types.ResultByTime) ResultByTime {
	converted := ResultByTime{
		Total:     convertMetricValues(result.Total),
		Groups:    make([]CostGroup, 0, len(result.Groups)),
		Estimated: result.Estimated,
	}

	if result.TimePeriod != nil {
		converted.TimePeriod = TimePeriod{
			Start: aws.ToString(result.TimePeriod.Start),
			End:   aws.ToString(result.TimePeriod.End),
		}
	}

	for _, group := range result.Groups {
		keys := group.Keys
		if keys == nil {
			keys = []string{}
		}
		converted.Groups = append(converted.Groups, CostGroup{
			Keys:    keys,
			Metrics: convertMetricValues(group.Metrics),
		})
	}

	return converted
}

func convertMetricValues(metrics map[string]types.MetricValue) map[string]MetricValue {
	converted := make(map[string]MetricValue, len(metrics))
	for name, value := range metrics {
		converted[name] = MetricValue{
			Amount: aws.ToString(value.Amount),
			Unit:   aws.ToString(value.Unit),
		}
	}
	return converted
}
