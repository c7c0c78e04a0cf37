package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"accessctl/internal/client"
	"accessctl/internal/config"
)

var (
	notifWatch    bool
	notifInterval time.Duration
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read the message center",
	Long:  `List notifications, messages and events, or follow the unread counter.`,
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List message center entries",
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		res, err := api.GetNotifications(cmd.Context())
		exitOnError("fetching notifications", err)

		render(res, func(w *tabwriter.Writer) {
			if len(res.Records) == 0 {
				fmt.Fprintln(w, "No notifications.")
				return
			}
			header(w, "ID", "CATEGORY", "READ", "DATETIME", "TITLE")
			for _, n := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n", n.ID, n.Category, n.Read, n.Datetime, n.Title)
			}
			footer(w, res.Paging, res.Rejected)
		})
	},
}

var notificationsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of unread notifications",
	Example: `  accessctl notifications count
  accessctl notifications count --watch --interval 30s`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		if !notifWatch {
			n, err := unreadCount(cmd.Context(), api)
			exitOnError("fetching notifications", err)
			fmt.Println(n)
			return
		}

		interval := notifInterval
		if interval <= 0 {
			interval = config.Load().PollInterval
		}
		if err := watchUnread(cmd.Context(), api, interval, func(n int, err error) {
			ts := time.Now().Format("15:04:05")
			if err != nil {
				// A failed poll is reported and the next tick tries again.
				fmt.Fprintf(os.Stderr, "%s  error: %v\n", ts, err)
				return
			}
			fmt.Printf("%s  unread: %d\n", ts, n)
		}); err != nil && cmd.Context().Err() == nil {
			exitOnError("watching notifications", err)
		}
	},
}

func unreadCount(ctx context.Context, api *client.ConsoleClient) (int, error) {
	res, err := api.GetNotifications(ctx)
	if err != nil {
		return 0, err
	}
	return client.CountUnread(res.Records), nil
}

// watchUnread polls the unread counter every interval until ctx is done. Each
// poll is a single independent call.
func watchUnread(ctx context.Context, api *client.ConsoleClient, interval time.Duration, report func(int, error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := unreadCount(ctx, api)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		report(n, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsCountCmd)

	notificationsCountCmd.Flags().BoolVar(&notifWatch, "watch", false, "Keep polling the counter")
	notificationsCountCmd.Flags().DurationVar(&notifInterval, "interval", 0, "Poll interval (default poll_interval from config, 60s)")
}
