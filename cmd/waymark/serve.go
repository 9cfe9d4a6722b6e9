package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/waymark"
	httpAdapter "github.com/aretw0/waymark/internal/adapters/http"
	redisAdapter "github.com/aretw0/waymark/internal/adapters/redis"
	"github.com/aretw0/waymark/internal/cli"
	"github.com/aretw0/waymark/internal/logging"
	"github.com/aretw0/waymark/pkg/walkthrough"
)

var serveCmd = &cobra.Command{
	Use:   "serve [document]",
	Short: "Serve the assembled walkthrough over HTTP",
	Long:  `Assembles the document once and exposes the walkthrough as a JSON API over HTTP.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd, args); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().Bool("no-metrics", false, "Disable the Prometheus /metrics endpoint")
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	noMetrics, _ := cmd.Flags().GetBool("no-metrics")

	cfg, err := cli.LoadConfig(configPath)
	if err != nil {
		return err
	}

	port := cfg.Serve.Port
	if flagPort, _ := cmd.Flags().GetString("port"); flagPort != "" {
		port = flagPort
	}

	logger := logging.Default(debug)
	path := resolveDocument(args)

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	wt, err := loadThroughCache(cmd.Context(), cfg, source, debug, logger)
	if err != nil {
		return err
	}

	var metrics *httpAdapter.Metrics
	if cfg.Serve.Metrics && !noMetrics {
		metrics = httpAdapter.NewMetrics()
	}

	handler := httpAdapter.NewHandler(func() *walkthrough.Walkthrough {
		return wt
	}, metrics)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting walkthrough server", "addr", srv.Addr, "document", path)
		fmt.Printf("Serving %q on %s\n", wt.Title, srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		fmt.Println("Waymark server stopped gracefully")
	}

	return nil
}

// loadThroughCache assembles the walkthrough, going through the Redis cache
// when one is configured. Cache failures degrade to a plain assembly.
func loadThroughCache(ctx context.Context, cfg cli.Config, source []byte, debug bool, logger *slog.Logger) (*walkthrough.Walkthrough, error) {
	assembleOpts := []waymark.Option{
		waymark.WithAttributes(cfg.MergeAttributes(nil)),
	}
	if debug {
		assembleOpts = append(assembleOpts, waymark.WithLogger(logger))
	}

	if cfg.Cache.RedisURL == "" {
		return waymark.Load(source, assembleOpts...)
	}

	var cacheOpts []redisAdapter.Option
	if cfg.Cache.TTLMinutes > 0 {
		cacheOpts = append(cacheOpts, redisAdapter.WithTTL(time.Duration(cfg.Cache.TTLMinutes)*time.Minute))
	}
	cache := redisAdapter.New(cfg.Cache.RedisURL, "", 0, cacheOpts...)

	wt, err := cache.Get(ctx, source)
	if err == nil {
		return wt, nil
	}
	if !errors.Is(err, redisAdapter.ErrCacheMiss) {
		logger.Warn("walkthrough cache unavailable", "err", err)
	}

	wt, err = waymark.Load(source, assembleOpts...)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, source, wt); err != nil {
		logger.Warn("failed to cache walkthrough", "err", err)
	}
	return wt, nil
}
