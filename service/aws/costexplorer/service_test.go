package awscostexplorer

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/costexplorer-mcp/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCostExplorerAPI struct {
	costOutput      *costexplorer.GetCostAndUsageOutput
	costErr         error
	dimensionOutput *costexplorer.GetDimensionValuesOutput
	dimensionErr    error

	costInput      *costexplorer.GetCostAndUsageInput
	dimensionInput *costexplorer.GetDimensionValuesInput
	calls          int
}

func (m *mockCostExplorerAPI) GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error) {
	m.calls++
	m.costInput = params
	return m.costOutput, m.costErr
}

func (m *mockCostExplorerAPI) GetDimensionValues(ctx context.Context, params *costexplorer.GetDimensionValuesInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetDimensionValuesOutput, error) {
	m.calls++
	m.dimensionInput = params
	return m.dimensionOutput, m.dimensionErr
}

type stubAPIError struct {
	code    string
	message string
}

func (e *stubAPIError) Error() string                 { return e.code + ": " + e.message }
func (e *stubAPIError) ErrorCode() string             { return e.code }
func (e *stubAPIError) ErrorMessage() string          { return e.message }
func (e *stubAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestGetCostAndUsage(t *testing.T) {
	mock := &mockCostExplorerAPI{
		costOutput: &costexplorer.GetCostAndUsageOutput{
			ResultsByTime: []types.ResultByTime{
				{
					TimePeriod: &types.DateInterval{
						Start: aws.String("2024-01-01"),
						End:   aws.String("2024-01-02"),
					},
					Total: map[string]types.MetricValue{
						"BlendedCost": {Amount: aws.String("12.34"), Unit: aws.String("USD")},
					},
				},
			},
		},
	}
	svc := NewServiceWithClient(mock, zerolog.Nop())

	query, err := ResolveCostQuery(model.CostQuery{
		TimeRange:   model.TimeRange{Start: "2024-01-01", End: "2024-01-02"},
		Granularity: "DAILY",
		Metrics:     []string{"BlendedCost"},
	})
	require.NoError(t, err)

	output, err := svc.GetCostAndUsage(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, output.ResultsByTime, 1)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, types.GranularityDaily, mock.costInput.Granularity)
	assert.Equal(t, []string{"BlendedCost"}, mock.costInput.Metrics)
}

func TestGetCostAndUsageProviderError(t *testing.T) {
	mock := &mockCostExplorerAPI{
		costErr: &stubAPIError{code: "DataUnavailableException", message: "no data"},
	}
	svc := NewServiceWithClient(mock, zerolog.Nop())

	query, err := ResolveCostQuery(model.CostQuery{})
	require.NoError(t, err)

	_, err = svc.GetCostAndUsage(context.Background(), query)
	require.Error(t, err)

	var providerErr *model.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "DataUnavailableException", providerErr.Code)
	assert.Equal(t, "no data", providerErr.Message)
	assert.Contains(t, err.Error(), "Cost Explorer API error (DataUnavailableException): no data")
}

func TestGetCostAndUsageTransportError(t *testing.T) {
	mock := &mockCostExplorerAPI{
		costErr: errors.New("connection reset"),
	}
	svc := NewServiceWithClient(mock, zerolog.Nop())

	query, err := ResolveCostQuery(model.CostQuery{})
	require.NoError(t, err)

	_, err = svc.GetCostAndUsage(context.Background(), query)
	require.Error(t, err)

	var internalErr *model.InternalError
	require.ErrorAs(t, err, &internalErr)
}

func TestGetDimensionValues(t *testing.T) {
	mock := &mockCostExplorerAPI{
		dimensionOutput: &costexplorer.GetDimensionValuesOutput{
			DimensionValues: []types.DimensionValuesWithAttributes{
				{Value: aws.String("Amazon EC2")},
				{Value: aws.String("Amazon S3")},
			},
			TotalSize:  aws.Int32(2),
			ReturnSize: aws.Int32(2),
		},
	}
	svc := NewServiceWithClient(mock, zerolog.Nop())

	query, err := ResolveDimensionQuery(model.DimensionQuery{Dimension: "SERVICE"})
	require.NoError(t, err)

	output, err := svc.GetDimensionValues(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, output.DimensionValues, 2)
	assert.Equal(t, types.Dimension("SERVICE"), mock.dimensionInput.Dimension)
	assert.Equal(t, int32(50), aws.ToInt32(mock.dimensionInput.MaxResults))
}

func TestGetDimensionValuesProviderError(t *testing.T) {
	mock := &mockCostExplorerAPI{
		dimensionErr: &stubAPIError{code: "LimitExceededException", message: "too many requests"},
	}
	svc := NewServiceWithClient(mock, zerolog.Nop())

	query, err := ResolveDimensionQuery(model.DimensionQuery{Dimension: "REGION"})
	require.NoError(t, err)

	_, err = svc.GetDimensionValues(context.Background(), query)
	require.Error(t, err)

	var providerErr *model.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "LimitExceededException", providerErr.Code)
}
