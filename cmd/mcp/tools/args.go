package tools

import (
	"fmt"

	"github.com/elC0mpa/costexplorer-mcp/model"
)

// Tool arguments arrive as untyped JSON. These helpers pull out the typed
// values and turn shape mismatches into InvalidInput errors instead of
// panics.

func parseCostArgs(args map[string]any) (model.CostQuery, string, error) {
	var query model.CostQuery

	start, err := stringArg(args, "start")
	if err != nil {
		return query, "", err
	}
	end, err := stringArg(args, "end")
	if err != nil {
		return query, "", err
	}
	query.TimeRange = model.TimeRange{Start: start, End: end}

	if query.Granularity, err = stringArg(args, "granularity"); err != nil {
		return query, "", err
	}
	if query.GroupBy, err = stringSliceArg(args, "group_by"); err != nil {
		return query, "", err
	}
	if query.Metrics, err = stringSliceArg(args, "metrics"); err != nil {
		return query, "", err
	}
	if query.NextPageToken, err = stringArg(args, "next_page_token"); err != nil {
		return query, "", err
	}
	if query.Filter, err = filterArg(args, "filter_config"); err != nil {
		return query, "", err
	}

	profile, err := stringArg(args, "profile")
	if err != nil {
		return query, "", err
	}

	return query, profile, nil
}

func parseDimensionArgs(args map[string]any) (model.DimensionQuery, string, error) {
	var query model.DimensionQuery
	var err error

	if query.Dimension, err = stringArg(args, "dimension"); err != nil {
		return query, "", err
	}

	start, err := stringArg(args, "time_period_start")
	if err != nil {
		return query, "", err
	}
	end, err := stringArg(args, "time_period_end")
	if err != nil {
		return query, "", err
	}
	query.TimeRange = model.TimeRange{Start: start, End: end}

	if query.SearchString, err = stringArg(args, "search_string"); err != nil {
		return query, "", err
	}
	maxResults, maxResultsSet, err := intArg(args, "max_results")
	if err != nil {
		return query, "", err
	}
	if maxResultsSet && maxResults == 0 {
		// zero doubles as "unspecified" downstream; reject it here so an
		// explicit 0 still fails the range check
		return query, "", &model.InvalidInputError{Message: "max_results must be between 1 and 1000"}
	}
	query.MaxResults = maxResults
	if query.NextPageToken, err = stringArg(args, "next_page_token"); err != nil {
		return query, "", err
	}

	profile, err := stringArg(args, "profile")
	if err != nil {
		return query, "", err
	}

	return query, profile, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", &model.InvalidInputError{Message: fmt.Sprintf("%s must be a string", key)}
	}
	return s, nil
}

func stringSliceArg(args map[string]any, key string) ([]string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, &model.InvalidInputError{Message: fmt.Sprintf("%s must be an array of strings", key)}
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &model.InvalidInputError{Message: fmt.Sprintf("%s must be an array of strings", key)}
		}
		result = append(result, s)
	}
	return result, nil
}

func intArg(args map[string]any, key string) (int32, bool, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return 0, false, nil
	}
	// JSON numbers decode as float64
	f, ok := value.(float64)
	if !ok || f != float64(int32(f)) {
		return 0, true, &model.InvalidInputError{Message: fmt.Sprintf("%s must be an integer", key)}
	}
	return int32(f), true, nil
}

func filterArg(args map[string]any, key string) (*model.FilterConfig, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, &model.InvalidInputError{Message: fmt.Sprintf("%s must be an object", key)}
	}

	dimension, err := stringArg(raw, "dimension")
	if err != nil {
		return nil, err
	}
	values, err := stringSliceArg(raw, "values")
	if err != nil {
		return nil, err
	}

	return &model.FilterConfig{Dimension: dimension, Values: values}, nil
}
