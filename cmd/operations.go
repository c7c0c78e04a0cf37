package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessctl/pkg/models"
)

var operationQuery models.OperationLogQuery

var operationsCmd = &cobra.Command{
	Use:     "operations",
	Aliases: []string{"audit"},
	Short:   "List administrator operation logs",
	Example: `  accessctl operations --operator admin --from 2026-05-01`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		res, err := api.ListOperationLogs(cmd.Context(), operationQuery)
		exitOnError("fetching operation logs", err)

		render(res, func(w *tabwriter.Writer) {
			if len(res.Records) == 0 {
				fmt.Fprintln(w, "No operation logs found.")
				return
			}
			header(w, "TIME", "OPERATOR", "ACTION", "TARGET", "RESULT", "IP")
			for _, l := range res.Records {
				target := val(l.TargetType)
				if l.TargetID != nil {
					target += "/" + string(*l.TargetID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					val(l.CreatedAt), val(l.Operator), val(l.Action), target, val(l.Result), val(l.IPAddress))
			}
			footer(w, res.Paging, res.Rejected)
		})
	},
}

func init() {
	rootCmd.AddCommand(operationsCmd)

	f := operationsCmd.Flags()
	f.IntVar(&operationQuery.Page, "page", 0, "Page number")
	f.IntVar(&operationQuery.PerPage, "per-page", 0, "Records per page")
	f.StringVar(&operationQuery.Operator, "operator", "", "Operator name")
	f.StringVar(&operationQuery.Action, "action", "", "Action name")
	f.StringVar(&operationQuery.StartDate, "from", "", "Start date YYYY-MM-DD")
	f.StringVar(&operationQuery.EndDate, "to", "", "End date YYYY-MM-DD")
}
