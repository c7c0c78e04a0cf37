package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"accessctl/internal/client"
	"accessctl/internal/config"
)

var (
	host      string
	skipCheck bool
)

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Point the CLI at an admin console backend",
	Long: `Checks that the backend answers and saves its URL locally for future commands.

Example:
  accessctl configure --host "https://console.example.local"`,
	Run: func(cmd *cobra.Command, args []string) {
		// Clean up input host (remove trailing slash if present)
		host = strings.TrimRight(host, "/")
		if err := config.ValidateBaseURL(host); err != nil {
			log.Fatalf("Fatal: %v", err)
		}

		if !skipCheck {
			fmt.Printf("Checking %s ...\n", host)
			api := client.New(client.ClientConfig{BaseURL: host, Logger: logger})
			ctx, cancel := context.WithTimeout(cmd.Context(), config.Load().Timeout)
			defer cancel()
			if _, err := api.GetNotifications(ctx); err != nil {
				log.Fatalf("Fatal: backend check failed: %v", err)
			}
		}

		if err := config.SaveBaseURL(host); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Println("Configuration saved. You can now run commands like 'accessctl regions list'.")
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&host, "host", "", "Backend base URL (e.g. https://192.168.1.50:8080)")
	configureCmd.Flags().BoolVar(&skipCheck, "skip-check", false, "Save without contacting the backend")

	_ = configureCmd.MarkFlagRequired("host")
}
