package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/costexplorer-mcp/cmd/mcp/tools"
	awsconfig "github.com/elC0mpa/costexplorer-mcp/service/aws/config"
	awssts "github.com/elC0mpa/costexplorer-mcp/service/aws/sts"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()
	cfg := LoadConfig()

	// stdout carries protocol frames, so all logging goes to stderr
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("server", "aws-cost-explorer").Logger()

	// Validate credentials and permissions before accepting tool calls
	ctx := context.Background()
	configSvc := awsconfig.NewService()
	awsCfg, err := configSvc.GetAWSCfg(ctx, cfg.AWSRegion, cfg.AWSProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start AWS Cost Explorer MCP server: %v\n", err)
		os.Exit(1)
	}

	stsSvc := awssts.NewService(awsCfg)
	info, err := stsSvc.GetAccountInfo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start AWS Cost Explorer MCP server: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Str("account_id", info.AccountID).Str("arn", info.Arn).Msg("AWS credentials validated")

	s := server.NewMCPServer(
		"aws-cost-explorer",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterCostExplorerTools(s, cfg.AWSProfile, logger)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
