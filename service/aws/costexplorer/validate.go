package awscostexplorer

import (
	"fmt"

	"github.com/elC0mpa/costexplorer-mcp/model"
	"github.com/elC0mpa/costexplorer-mcp/utils"
)

// ResolveCostQuery validates a cost query and fills in defaults. The
// returned query is safe to hand to the request builder unchanged.
func ResolveCostQuery(query model.CostQuery) (model.CostQuery, error) {
	if query.Granularity == "" {
		query.Granularity = model.DefaultGranularity
	}
	if len(query.Metrics) == 0 {
		query.Metrics = []string{model.DefaultMetric}
	}

	if err := validateGranularity(query.Granularity); err != nil {
		return model.CostQuery{}, err
	}
	if err := validateGroupBy(query.GroupBy); err != nil {
		return model.CostQuery{}, err
	}
	if err := validateMetrics(query.Metrics); err != nil {
		return model.CostQuery{}, err
	}
	if query.Filter != nil {
		if err := validateDimension(query.Filter.Dimension); err != nil {
			return model.CostQuery{}, err
		}
	}

	if query.TimeRange.Start == "" || query.TimeRange.End == "" {
		query.TimeRange.Start, query.TimeRange.End = utils.DefaultDateRange(query.Granularity)
	} else {
		var err error
		if query.TimeRange.Start, err = utils.ValidateDate(query.TimeRange.Start); err != nil {
			return model.CostQuery{}, err
		}
		if query.TimeRange.End, err = utils.ValidateDate(query.TimeRange.End); err != nil {
			return model.CostQuery{}, err
		}
	}

	return query, nil
}

// ResolveDimensionQuery validates a dimension-values query and fills in
// defaults.
func ResolveDimensionQuery(query model.DimensionQuery) (model.DimensionQuery, error) {
	if query.MaxResults == 0 {
		query.MaxResults = model.DefaultMaxResults
	}

	if err := validateDimension(query.Dimension); err != nil {
		return model.DimensionQuery{}, err
	}
	if err := validateMaxResults(query.MaxResults); err != nil {
		return model.DimensionQuery{}, err
	}

	if query.TimeRange.Start == "" || query.TimeRange.End == "" {
		query.TimeRange.Start, query.TimeRange.End = utils.DefaultLookbackRange(model.DefaultDaysLookback)
	} else {
		var err error
		if query.TimeRange.Start, err = utils.ValidateDate(query.TimeRange.Start); err != nil {
			return model.DimensionQuery{}, err
		}
		if query.TimeRange.End, err = utils.ValidateDate(query.TimeRange.End); err != nil {
			return model.DimensionQuery{}, err
		}
	}

	return query, nil
}

func validateGranularity(granularity string) error {
	if granularity != "DAILY" && granularity != "MONTHLY" {
		return &model.InvalidInputError{Message: "granularity must be 'DAILY' or 'MONTHLY'"}
	}
	return nil
}

func validateGroupBy(groupBy []string) error {
	if len(groupBy) == 0 {
		return nil
	}

	invalid := membersOutside(groupBy, model.AllowedDimensions)
	if len(invalid) > 0 {
		return &model.InvalidInputError{
			Message: fmt.Sprintf("Invalid group_by dimensions: %v", invalid),
		}
	}

	if len(groupBy) > 2 {
		return &model.InvalidInputError{Message: "Maximum 2 group_by dimensions allowed"}
	}
	return nil
}

func validateMetrics(metrics []string) error {
	invalid := membersOutside(metrics, model.AllowedMetrics)
	if len(invalid) > 0 {
		return &model.InvalidInputError{
			Message: fmt.Sprintf("Invalid metrics: %v", invalid),
		}
	}
	return nil
}

func validateDimension(dimension string) error {
	for _, allowed := range model.AllowedDimensions {
		if dimension == allowed {
			return nil
		}
	}
	return &model.InvalidInputError{
		Message: fmt.Sprintf("Invalid dimension: %s. Allowed: %v", dimension, model.AllowedDimensions),
	}
}

func validateMaxResults(maxResults int32) error {
	if maxResults < 1 || maxResults > 1000 {
		return &model.InvalidInputError{Message: "max_results must be between 1 and 1000"}
	}
	return nil
}

// membersOutside returns all entries of values absent from allowed,
// preserving order, so a violation can name every offender at once.
func membersOutside(values, allowed []string) []string {
	var invalid []string
	for _, v := range values {
		found := false
		for _, a := range allowed {
			if v == a {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, v)
		}
	}
	return invalid
}
