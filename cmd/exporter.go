package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"accessctl/internal/client"
	"accessctl/internal/config"
	"accessctl/internal/metrics"
)

// Variables to hold flag values
var (
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	server *http.Server
	api    *client.ConsoleClient
	scrape time.Duration
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	registry.MustRegister(&metrics.Collector{
		Client:  p.api,
		Timeout: p.scrape,
		Log:     logger.WithField("component", "exporter"),
	})

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infof("Console exporter listening on %s", addr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("HTTP server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	logger.Info("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			logger.Errorf("Server forced to shutdown: %v", err)
		}
	}
	return nil
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus exporter service",
	Long: `Starts a long-running HTTP server that exposes console metrics
(unread notifications, person events, regions, deployments).
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := config.Load()
		if err := s.Validate(); err != nil {
			log.Fatalf("Error: %v", err)
		}

		// Arguments passed to the binary when run as a service
		svcArgs := []string{"exporter", "--port", expPort, "--base-url", s.BaseURL}
		if cfgFile != "" {
			svcArgs = append(svcArgs, "--config", cfgFile)
		}

		svcConfig := &service.Config{
			Name:        "accessctl-exporter",
			DisplayName: "Access Console Prometheus Exporter",
			Description: "Exposes admin console metrics to Prometheus",
			Arguments:   svcArgs,
		}

		prg := &program{
			api:    getClient(),
			scrape: s.Timeout,
		}

		svc, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			if err := service.Control(svc, serviceAction); err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Runs until the service manager or an interrupt stops it
		svcLogger, err := svc.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = svc.Run(); err != nil {
			_ = svcLogger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expPort, "port", "9100", "Port to listen on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
