package response

// TimePeriod echoes the resolved date interval of a query
type TimePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MetricValue is a single metric amount with its unit
type MetricValue struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// CostGroup is one grouped cost record within a time bucket
type CostGroup struct {
	Keys    []string               `json:"keys"`
	Metrics map[string]MetricValue `json:"metrics"`
}

// ResultByTime is one time bucket of the cost response
type ResultByTime struct {
	TimePeriod TimePeriod             `json:"time_period"`
	Total      map[string]MetricValue `json:"total"`
	Groups     []CostGroup            `json:"groups"`
	Estimated  bool                   `json:"estimated"`
}

// CostEnvelope is the stable output shape of get_cost_and_usage.
// NextPageToken is serialized as an explicit null when absent.
type CostEnvelope struct {
	TimePeriod    TimePeriod     `json:"time_period"`
	Granularity   string         `json:"granularity"`
	Metrics       []string       `json:"metrics"`
	GroupBy       []string       `json:"group_by"`
	ResultsByTime []ResultByTime `json:"results_by_time"`
	NextPageToken *string        `json:"next_page_token"`
	TotalResults  int            `json:"total_results"`
}

// DimensionValue is one value of a Cost Explorer dimension
type DimensionValue struct {
	Value      string            `json:"value"`
	Attributes map[string]string `json:"attributes"`
}

// DimensionEnvelope is the stable output shape of get_dimension_values
type DimensionEnvelope struct {
	Dimension       string           `json:"dimension"`
	TimePeriod      TimePeriod       `json:"time_period"`
	DimensionValues []DimensionValue `json:"dimension_values"`
	NextPageToken   *string          `json:"next_page_token"`
	TotalSize       int32            `json:"total_size"`
	ReturnSize      int32            `json:"return_size"`
}

// Error is the uniform failure shape returned by both tools
type Error struct {
	Error string `json:"error"`
}
