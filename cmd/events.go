package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessctl/pkg/models"
)

var (
	eventQuery models.PersonEventLogQuery
	eventID    string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Search person event logs",
	Long:  `Search recognition events captured at checkpoints, or show a single event.`,
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List person events",
	Example: `  accessctl events list --tag VIP --from 2026-10-01 --to 2026-10-07
  accessctl events list --campus c-1 --page 2 --per-page 50`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		res, err := api.ListPersonEventLogs(cmd.Context(), eventQuery)
		exitOnError("searching person events", err)

		render(res, func(w *tabwriter.Writer) {
			if len(res.Records) == 0 {
				fmt.Fprintln(w, "No events found.")
				return
			}
			header(w, "ID", "TIMESTAMP", "PERSON", "NAME", "TYPE", "TAG", "LOCATION")
			for _, e := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID,
					val(e.Timestamp),
					val(e.PersonID),
					val(e.Name),
					val(e.PersonType),
					val(e.PersonTag),
					val(e.Location),
				)
			}
			footer(w, res.Paging, res.Rejected)
		})
	},
}

var eventsGetCmd = &cobra.Command{
	Use:     "get",
	Short:   "Show one person event",
	Example: `  accessctl events get --id pe-42`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		rec, err := api.GetPersonEventLog(cmd.Context(), eventID)
		exitOnError("fetching person event", err)
		if rec == nil {
			fmt.Printf("Event %s returned no data.\n", eventID)
			return
		}

		render(rec, func(w *tabwriter.Writer) {
			rows := [][2]string{
				{"ID", rec.ID.String()},
				{"Campus", val(rec.CampusName)},
				{"Person ID", val(rec.PersonID)},
				{"Name", val(rec.Name)},
				{"Type", val(rec.PersonType)},
				{"Tag", val(rec.PersonTag)},
				{"Location", val(rec.Location)},
				{"Timestamp", val(rec.Timestamp)},
				{"Person image", val(rec.PersonImageURL)},
				{"Capture image", val(rec.CaptureImageURL)},
				{"Frame image", val(rec.FrameImageURL)},
			}
			for _, r := range rows {
				fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsGetCmd)

	f := eventsListCmd.Flags()
	f.IntVar(&eventQuery.Page, "page", 0, "Page number")
	f.IntVar(&eventQuery.PerPage, "per-page", 0, "Records per page")
	f.StringVar(&eventQuery.PersonTag, "tag", "", "Person tag (e.g. VIP)")
	f.StringVar(&eventQuery.PersonType, "type", "", "Person type")
	f.StringVar(&eventQuery.StartDate, "from", "", "Start date YYYY-MM-DD")
	f.StringVar(&eventQuery.EndDate, "to", "", "End date YYYY-MM-DD")
	f.StringVar(&eventQuery.CampusID, "campus", "", "Campus ID")
	f.StringVar(&eventQuery.Name, "name", "", "Person name")

	eventsGetCmd.Flags().StringVar(&eventID, "id", "", "Person event ID")
	_ = eventsGetCmd.MarkFlagRequired("id")
}
