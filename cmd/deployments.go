package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessctl/pkg/models"
)

var deploymentQuery models.DeviceDeploymentQuery

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "List device deployments",
	Long:  `List cameras and access terminals with the region they are deployed in.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		res, err := api.ListDeviceDeployments(cmd.Context(), deploymentQuery)
		exitOnError("fetching deployments", err)

		render(res, func(w *tabwriter.Writer) {
			if len(res.Records) == 0 {
				fmt.Fprintln(w, "No deployments found.")
				return
			}
			header(w, "ID", "DEVICE", "NAME", "TYPE", "REGION", "IP", "STATUS")
			for _, d := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, val(d.DeviceID), val(d.DeviceName), val(d.DeviceType),
					val(d.RegionName), val(d.IPAddress), val(d.Status))
			}
			footer(w, res.Paging, res.Rejected)
		})
	},
}

func init() {
	rootCmd.AddCommand(deploymentsCmd)

	f := deploymentsCmd.Flags()
	f.IntVar(&deploymentQuery.Page, "page", 0, "Page number")
	f.IntVar(&deploymentQuery.PerPage, "per-page", 0, "Records per page")
	f.StringVar(&deploymentQuery.DeviceType, "device-type", "", "Device type (camera, terminal)")
	f.StringVar(&deploymentQuery.RegionID, "region", "", "Region ID")
	f.StringVar(&deploymentQuery.Status, "status", "", "Device status (online, offline)")
}
