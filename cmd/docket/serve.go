package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/docket-run/docket"
	httpAdapter "github.com/docket-run/docket/internal/adapters/http"
	"github.com/docket-run/docket/pkg/adapters/memory"
	redisAdapter "github.com/docket-run/docket/pkg/adapters/redis"
	sqliteAdapter "github.com/docket-run/docket/pkg/adapters/sqlite"
	"github.com/docket-run/docket/pkg/observability"
	"github.com/docket-run/docket/pkg/ports"
)

// storeConfig holds backend connection settings, read from the environment.
type storeConfig struct {
	RedisAddr     string `env:"DOCKET_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"DOCKET_REDIS_PASSWORD"`
	RedisDB       int    `env:"DOCKET_REDIS_DB" envDefault:"0"`
	SQLiteDSN     string `env:"DOCKET_SQLITE_DSN" envDefault:"docket.db"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the Docket engine in server mode, exposing a JSON API over HTTP.
Projects are kept in the selected store between requests so they can be
created once and processed repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		storeKind, _ := cmd.Flags().GetString("store")

		logger := newLogger(cmd)

		var cfg storeConfig
		if err := env.Parse(&cfg); err != nil {
			fmt.Printf("Error reading environment: %v\n", err)
			os.Exit(1)
		}

		store, err := newStore(storeKind, cfg)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		engine := docket.New(
			docket.WithLogger(logger),
			docket.WithLifecycleHooks(metrics.Hooks()),
		)

		handler := httpAdapter.NewHandler(engine, store, logger, promhttp.Handler())

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Docket Server on %s (store: %s)\n", srv.Addr, storeKind)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Docket Server stopped gracefully")
		}
	},
}

// newStore builds the ProjectStore backend selected by --store.
func newStore(kind string, cfg storeConfig) (ports.ProjectStore, error) {
	switch kind {
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		return redisAdapter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), nil
	case "sqlite":
		return sqliteAdapter.NewStore(cfg.SQLiteDSN)
	default:
		return nil, fmt.Errorf("unknown store %q (expected memory, redis or sqlite)", kind)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", "memory", "Project store backend: memory, redis or sqlite")
}
