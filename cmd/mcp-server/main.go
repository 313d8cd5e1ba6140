package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/eshaffer321/freshbooks-go/internal/config"
	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/getsentry/sentry-go"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

const (
	serverName    = "freshbooks"
	serverVersion = "1.0.0"
)

var (
	envFile  string
	httpAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "freshbooks-mcp",
		Short:        "MCP server exposing the FreshBooks API as tools",
		SilenceUsage: true,
		RunE:         runServer,
	}
	rootCmd.Flags().StringVar(&envFile, "env", "", "Path to a .env file")
	rootCmd.Flags().StringVar(&httpAddr, "http", "", "Serve streamable HTTP on this address instead of stdio")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var paths []string
	if envFile != "" {
		paths = append(paths, envFile)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout carries the protocol, so logs go to stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var sentryOpts *sentry.ClientOptions
	if cfg.Sentry.DSN != "" {
		sentryOpts = &sentry.ClientOptions{Environment: cfg.Sentry.Environment}
	}

	client, err := freshbooks.NewClient(&freshbooks.ClientOptions{
		Token:         cfg.FreshBooks.AccessToken,
		AccountID:     cfg.FreshBooks.AccountID,
		BusinessID:    cfg.FreshBooks.BusinessID,
		BaseURL:       cfg.FreshBooks.APIURL,
		Timeout:       cfg.FreshBooks.Timeout,
		Logger:        logger,
		RetryConfig:   cfg.RetryConfig(),
		RateLimiter:   freshbooks.NewIntervalLimiter(cfg.FreshBooks.RequestInterval),
		SentryDSN:     cfg.Sentry.DSN,
		SentryOptions: sentryOpts,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize FreshBooks client: %w", err)
	}
	defer client.Close()

	server := newServer(client, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := httpAddr
	if addr == "" {
		addr = cfg.HTTPAddr
	}
	if addr != "" {
		return serveHTTP(ctx, server, addr, logger)
	}

	logger.Info("serving MCP over stdio", "account_id", client.AccountID())
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func newServer(client *freshbooks.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	registerTools(server, client, logger)
	return server
}

func serveHTTP(ctx context.Context, server *mcp.Server, addr string, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	logger.Info("serving MCP over HTTP", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
