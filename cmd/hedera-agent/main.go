package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashkit/hedera-agent-kit/internal/api"
	"github.com/hashkit/hedera-agent-kit/internal/config"
	"github.com/hashkit/hedera-agent-kit/internal/llm"
	"github.com/hashkit/hedera-agent-kit/internal/mcpserver"
	"github.com/hashkit/hedera-agent-kit/internal/metrics"
	"github.com/hashkit/hedera-agent-kit/internal/runtime"
	"github.com/hashkit/hedera-agent-kit/internal/store"
	"github.com/hashkit/hedera-agent-kit/pkg/utils"
)

const version = "0.1.0"

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	mcpOnly := flag.Bool("mcp", false, "Serve MCP over stdio and nothing else")
	flag.Parse()

	// Bootstrap logger for the config-loading phase; the flag and the
	// LOG_LEVEL environment variable win over the config file for level
	level := *logLevel
	if level == "" {
		level = utils.GetEnv("LOG_LEVEL", "")
	}
	bootCfg := utils.DefaultLogConfig()
	if level != "" {
		bootCfg.Level = level
	}
	logger := utils.ConfigureLogger(bootCfg)

	// Load configuration
	logger.Infof("Loading configuration from %s", *configPath)
	appConfig, err := config.LoadConfig(*configPath, logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Reconfigure from the logging section (format, output path), keeping
	// any explicit level override
	logCfg := appConfig.Logging
	if level != "" {
		logCfg.Level = level
	}
	logger = utils.ConfigureLogger(logCfg)

	// Assemble the runtime
	rt, err := runtime.New(appConfig, logger, nil)
	if err != nil {
		logger.Fatalf("Failed to assemble runtime: %v", err)
	}
	logger.Infof("Runtime ready: ledger=%s mode=%s tools=%d",
		appConfig.Network.Ledger, appConfig.Agent.Mode, len(rt.Registry.All()))

	// MCP-only processes serve stdio and exit with it
	if *mcpOnly || (appConfig.MCP.Enabled && !appConfig.HTTP.Enabled) {
		mcpSrv, err := mcpserver.NewServer(rt, version)
		if err != nil {
			logger.Fatalf("Failed to create MCP server: %v", err)
		}
		if err := mcpSrv.ServeStdio(); err != nil {
			logger.Fatalf("MCP server terminated: %v", err)
		}
		return
	}

	// Optional Postgres audit store
	var audit *store.Postgres
	if appConfig.Store.Enabled {
		audit, err = store.NewPostgres(appConfig.Store.DSN)
		if err != nil {
			logger.Fatalf("Failed to connect audit store: %v", err)
		}
		if err := audit.EnsureSchema(context.Background()); err != nil {
			logger.Fatalf("Failed to prepare audit schema: %v", err)
		}
		defer audit.Close()
	}

	// Optional one-shot chat through the OpenAI adapter
	if appConfig.LLM.Enabled {
		if prompt := utils.GetEnv("AGENT_PROMPT", ""); prompt != "" {
			agent := llm.NewAgent(rt, appConfig.LLM.APIKey, appConfig.LLM.Model)
			reply, err := agent.Chat(context.Background(), prompt)
			if err != nil {
				logger.Fatalf("Chat failed: %v", err)
			}
			os.Stdout.WriteString(reply + "\n")
			return
		}
	}

	// REST gateway
	if appConfig.HTTP.Enabled {
		collector := metrics.NewCollector(logger, appConfig.Agent.Name, version, appConfig.Network.Ledger)
		server := api.NewServer(rt, audit, collector)
		go func() {
			logger.Infof("Serving REST gateway on :%d", appConfig.HTTP.Port)
			if err := server.Run(appConfig.HTTP.Port); err != nil {
				logger.Fatalf("REST gateway terminated: %v", err)
			}
		}()
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Infof("Received signal %s, shutting down", sig)
}
