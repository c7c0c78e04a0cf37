package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"accessctl/internal/client"
	"accessctl/internal/config"
	"accessctl/internal/logging"
)

var (
	cfgFile      string
	jsonOutput   bool
	outputFormat string
	logger       = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "accessctl",
	Short: "A CLI for the access-control admin console backend",
	Long: `Browse notifications, person event logs, device deployments and audit
records, and manage regions on the surveillance/access-control admin backend.`,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initApp)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.accessctl.yaml)")
	pf.BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	pf.StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")
	pf.String("base-url", "", "Backend base URL (overrides the config file)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	_ = viper.BindPFlag("base_url", pf.Lookup("base-url"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
}

func initApp() {
	if err := config.InitConfig(cfgFile); err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	s := config.Load()
	logger = logging.New(s.LogLevel, s.LogFormat)
}

// getClient builds a client from the stored configuration.
func getClient() *client.ConsoleClient {
	s := config.Load()
	if err := s.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	return client.New(client.ClientConfig{
		BaseURL:            s.BaseURL,
		Timeout:            s.Timeout,
		RateLimit:          s.RateLimit,
		InsecureSkipVerify: s.InsecureSkipVerify,
		Logger:             logger,
	})
}
