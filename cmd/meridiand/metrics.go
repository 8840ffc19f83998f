package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMetricsPort = 26661

// startMetricsServer exposes the process-wide Prometheus registry, which
// carries the AMM metrics the keepers register. Set MERIDIAND_METRICS_PORT to
// move it off the default port, or to 0 to disable it.
func startMetricsServer() {
	port := defaultMetricsPort
	if raw := os.Getenv("MERIDIAND_METRICS_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid MERIDIAND_METRICS_PORT %q: %v\n", raw, err)
			return
		}
		port = parsed
	}
	if port == 0 {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "metrics server error: %v\n", err)
		}
	}()
}
