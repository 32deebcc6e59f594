package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gobolt/internal/server"
	"github.com/alexiusacademia/gobolt/internal/store"
)

var (
	serveAddr  string
	serveRate  float64
	serveBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the connection checks over HTTP",
	Long: `Start an HTTP server for evaluating project documents.

Endpoints:
  POST /api/evaluate   project document (JSON) → JSON report
  POST /api/demand     load case → demand on the bolt group
  GET  /api/sections   section catalog and steel grades
  GET  /healthz        liveness

Each request is evaluated on its own; nothing is stored between requests.
The server stops gracefully on interrupt.

Examples:
  gobolt serve --addr :8080
  curl -X POST --data @model.json localhost:8080/api/evaluate`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, default from configuration (:8080)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 5, "Requests per second allowed per client")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 10, "Request burst allowed per client")
}

func runServe(cmd *cobra.Command, args []string) {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Addr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg.Evaluator(),
		server.WithLogger(logger),
		server.WithIDGenerator(store.GeneratorFor(cfg.IDScheme)),
		server.WithRateLimit(rate.Limit(serveRate), serveBurst),
	)

	fmt.Printf("Starting server on %s\n", addr)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Server stopped.")
}
