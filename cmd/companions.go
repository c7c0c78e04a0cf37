package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessctl/pkg/models"
)

var companionQuery models.CompanionRecordQuery

var companionsCmd = &cobra.Command{
	Use:   "companions",
	Short: "List companion and stranger records",
	Long:  `List people captured together with a person, either known companions or strangers.`,
	Example: `  accessctl companions --person P1
  accessctl companions --person P1 --kind stranger`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		res, err := api.ListCompanionRecords(cmd.Context(), companionQuery)
		exitOnError("fetching companion records", err)

		render(res, func(w *tabwriter.Writer) {
			if len(res.Records) == 0 {
				fmt.Fprintln(w, "No companion records found.")
				return
			}
			header(w, "OCCURRED", "PERSON", "KIND", "COMPANION", "TIMES", "LOCATION")
			for _, c := range res.Records {
				companion := val(c.CompanionName)
				if c.CompanionName == nil {
					companion = val(c.CompanionID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					val(c.OccurredAt), val(c.PersonName), val(c.CompanionType), companion, intVal(c.Count), val(c.Location))
			}
			footer(w, res.Paging, res.Rejected)
		})
	},
}

func init() {
	rootCmd.AddCommand(companionsCmd)

	f := companionsCmd.Flags()
	f.IntVar(&companionQuery.Page, "page", 0, "Page number")
	f.IntVar(&companionQuery.PerPage, "per-page", 0, "Records per page")
	f.StringVar(&companionQuery.PersonID, "person", "", "Person ID")
	f.StringVar(&companionQuery.RecordType, "kind", "", "Record kind (companion, stranger)")
	f.StringVar(&companionQuery.StartDate, "from", "", "Start date YYYY-MM-DD")
	f.StringVar(&companionQuery.EndDate, "to", "", "End date YYYY-MM-DD")
}
