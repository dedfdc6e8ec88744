package model

// AllowedDimensions lists the Cost Explorer dimensions accepted for grouping,
// filtering and dimension-value lookups.
var AllowedDimensions = []string{
	"SERVICE",
	"LINKED_ACCOUNT",
	"REGION",
	"USAGE_TYPE",
	"OPERATION",
	"INSTANCE_TYPE",
	"PURCHASE_TYPE",
	"RECORD_TYPE",
}

// AllowedMetrics lists the cost metrics accepted by get_cost_and_usage.
var AllowedMetrics = []string{
	"UnblendedCost",
	"AmortizedCost",
	"NetAmortizedCost",
	"NetUnblendedCost",
	"NormalizedUsageAmount",
	"UsageQuantity",
	"BlendedCost",
}

// Defaults applied when the caller omits the corresponding argument
const (
	DefaultGranularity  = "MONTHLY"
	DefaultMetric       = "UnblendedCost"
	DefaultMaxResults   = 50
	DefaultDaysLookback = 30
)

// TimeRange is a date interval, start inclusive, end exclusive (YYYY-MM-DD)
type TimeRange struct {
	Start string
	End   string
}

// FilterConfig restricts cost results to specific values of one dimension
type FilterConfig struct {
	Dimension string
	Values    []string
}

// CostQuery describes one get_cost_and_usage invocation
type CostQuery struct {
	TimeRange     TimeRange
	Granularity   string
	GroupBy       []string
	Metrics       []string
	Filter        *FilterConfig
	NextPageToken string
}

// DimensionQuery describes one get_dimension_values invocation
type DimensionQuery struct {
	Dimension     string
	TimeRange     TimeRange
	SearchString  string
	MaxResults    int32
	NextPageToken string
}

// AccountInfo holds the caller identity resolved at startup
type AccountInfo struct {
	AccountID string
	Arn       string
}
