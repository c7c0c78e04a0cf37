package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"accessctl/internal/mockserver"
)

var mockPort int

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Serve an in-memory mock of the console backend",
	Long: `Starts a local backend with sample notifications, person events, regions,
deployments, operation logs and companion records, for trying the CLI out.`,
	Example: `  accessctl mock --port 3000 &
  accessctl configure --host http://127.0.0.1:3000`,
	Run: func(cmd *cobra.Command, args []string) {
		srv := &http.Server{
			Addr:              fmt.Sprintf("127.0.0.1:%d", mockPort),
			Handler:           mockserver.New(logger).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-cmd.Context().Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()

		fmt.Printf("Mock backend listening on http://%s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitOnError("serving mock backend", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mockCmd)
	mockCmd.Flags().IntVar(&mockPort, "port", 3000, "Port to listen on")
}
