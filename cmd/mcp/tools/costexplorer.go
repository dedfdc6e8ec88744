package tools

import (
	"context"
	"encoding/json"

	"github.com/elC0mpa/costexplorer-mcp/cmd/mcp/response"
	"github.com/elC0mpa/costexplorer-mcp/model"
	awscostexplorer "github.com/elC0mpa/costexplorer-mcp/service/aws/costexplorer"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// CostServiceFactory builds a cost service bound to a profile. Overridable
// so tests can run the handlers against a stubbed API.
type CostServiceFactory func(profile string) awscostexplorer.CostService

const getCostAndUsageSchema = `{
  "type": "object",
  "properties": {
    "start": {"type": "string", "description": "Start date (YYYY-MM-DD, inclusive)"},
    "end": {"type": "string", "description": "End date (YYYY-MM-DD, exclusive)"},
    "granularity": {"type": "string", "enum": ["DAILY", "MONTHLY"], "default": "MONTHLY"},
    "group_by": {
      "type": "array",
      "items": {"type": "string", "enum": ["SERVICE", "LINKED_ACCOUNT", "REGION", "USAGE_TYPE", "OPERATION", "INSTANCE_TYPE", "PURCHASE_TYPE", "RECORD_TYPE"]},
      "description": "Dimensions to group by (max 2 per CE API)."
    },
    "metrics": {
      "type": "array",
      "items": {"type": "string", "enum": ["UnblendedCost", "AmortizedCost", "NetAmortizedCost", "NetUnblendedCost", "NormalizedUsageAmount", "UsageQuantity", "BlendedCost"]},
      "default": ["UnblendedCost"]
    },
    "filter_config": {
      "type": "object",
      "properties": {
        "dimension": {"type": "string", "enum": ["SERVICE", "LINKED_ACCOUNT", "REGION", "USAGE_TYPE", "OPERATION", "INSTANCE_TYPE", "PURCHASE_TYPE", "RECORD_TYPE"]},
        "values": {"type": "array", "items": {"type": "string"}}
      },
      "required": ["dimension", "values"]
    },
    "next_page_token": {"type": "string"},
    "profile": {"type": "string", "description": "AWS profile name from ~/.aws/config"}
  }
}`

const getDimensionValuesSchema = `{
  "type": "object",
  "properties": {
    "dimension": {"type": "string", "enum": ["SERVICE", "LINKED_ACCOUNT", "REGION", "USAGE_TYPE", "OPERATION", "INSTANCE_TYPE", "PURCHASE_TYPE", "RECORD_TYPE"]},
    "time_period_start": {"type": "string", "description": "Start date (YYYY-MM-DD)"},
    "time_period_end": {"type": "string", "description": "End date (YYYY-MM-DD)"},
    "search_string": {"type": "string"},
    "max_results": {"type": "integer", "minimum": 1, "maximum": 1000, "default": 50},
    "next_page_token": {"type": "string"},
    "profile": {"type": "string", "description": "AWS profile name from ~/.aws/config"}
  },
  "required": ["dimension"]
}`

// RegisterCostExplorerTools registers both Cost Explorer tools with the MCP
// server. defaultProfile applies when a call carries no profile argument.
func RegisterCostExplorerTools(s *server.MCPServer, defaultProfile string, logger zerolog.Logger) {
	factory := func(profile string) awscostexplorer.CostService {
		return awscostexplorer.NewService(profile, logger)
	}
	RegisterCostExplorerToolsWithFactory(s, defaultProfile, factory)
}

// RegisterCostExplorerToolsWithFactory is RegisterCostExplorerTools with an
// explicit service factory.
func RegisterCostExplorerToolsWithFactory(s *server.MCPServer, defaultProfile string, factory CostServiceFactory) {
	s.AddTool(
		mcp.NewToolWithRawSchema(
			"get_cost_and_usage",
			"Get AWS costs for a time period, optionally grouped by dimensions. End date is exclusive (YYYY-MM-DD).",
			json.RawMessage(getCostAndUsageSchema),
		),
		makeGetCostAndUsageHandler(defaultProfile, factory),
	)

	s.AddTool(
		mcp.NewToolWithRawSchema(
			"get_dimension_values",
			"Get available values for a specific Cost Explorer dimension.",
			json.RawMessage(getDimensionValuesSchema),
		),
		makeGetDimensionValuesHandler(defaultProfile, factory),
	)
}

func makeGetCostAndUsageHandler(defaultProfile string, factory CostServiceFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		query, profile, err := parseCostArgs(args)
		if err != nil {
			return errorResult(err)
		}

		resolved, err := awscostexplorer.ResolveCostQuery(query)
		if err != nil {
			return errorResult(err)
		}

		svc := factory(pickProfile(profile, defaultProfile))
		output, err := svc.GetCostAndUsage(ctx, resolved)
		if err != nil {
			return errorResult(err)
		}

		return jsonResult(response.ConvertCostEnvelope(resolved, output))
	}
}

func makeGetDimensionValuesHandler(defaultProfile string, factory CostServiceFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		query, profile, err := parseDimensionArgs(args)
		if err != nil {
			return errorResult(err)
		}

		resolved, err := awscostexplorer.ResolveDimensionQuery(query)
		if err != nil {
			return errorResult(err)
		}

		svc := factory(pickProfile(profile, defaultProfile))
		output, err := svc.GetDimensionValues(ctx, resolved)
		if err != nil {
			return errorResult(err)
		}

		return jsonResult(response.ConvertDimensionEnvelope(resolved, output))
	}
}

func pickProfile(callProfile, defaultProfile string) string {
	if callProfile != "" {
		return callProfile
	}
	return defaultProfile
}

// jsonResult serializes a successful envelope as pretty-printed text content.
func jsonResult(envelope any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return errorResult(&model.InternalError{Err: err})
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult collapses every failure kind into the uniform {"error": ...}
// text shape. Errors never cross the protocol boundary as protocol errors.
func errorResult(err error) (*mcp.CallToolResult, error) {
	data, _ := json.MarshalIndent(response.Error{Error: err.Error()}, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
