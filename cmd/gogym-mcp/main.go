// Command gogym-mcp runs the MCP server over stdio, proxying tool calls to
// the GoGym API with the configured service token.
package main

import (
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/gogym/internal/config"
	"github.com/claude/gogym/internal/mcp"
	"github.com/claude/gogym/internal/upstream"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	apiURL := flag.String("api", "", "override upstream API base URL")
	token := flag.String("token", "", "override MCP service token")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	baseURL := cfg.Upstream.BaseURL
	if *apiURL != "" {
		baseURL = *apiURL
	}
	serviceToken := cfg.MCP.ServiceToken
	if *token != "" {
		serviceToken = *token
	}
	if serviceToken == "" {
		log.Error("no MCP service token configured")
		os.Exit(1)
	}

	api := upstream.New(baseURL, cfg.Upstream.Timeout())
	ds := mcp.NewUpstreamSource(api, serviceToken)

	srv := mcp.New(ds, Version, log)
	log.Info("MCP server starting", "api", baseURL)
	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
