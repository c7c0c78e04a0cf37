package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessctl/pkg/models"
)

// Variables to hold flag values
var (
	regionQuery models.RegionQuery
	regionID    string
	regionName  string
	regionType  string
	regionDesc  string

	// update has its own variables so create keeps its --type default
	regionNewName string
	regionNewType string
	regionNewDesc string
)

// Parent Command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Manage checkpoints and sites",
	Long:  `List, create, update and delete regions.`,
}

var regionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List regions",
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		res, err := api.ListRegions(cmd.Context(), regionQuery)
		exitOnError("fetching regions", err)

		render(res, func(w *tabwriter.Writer) {
			if len(res.Records) == 0 {
				fmt.Fprintln(w, "No regions found.")
				return
			}
			header(w, "ID", "NAME", "TYPE", "POINTS", "UPDATED")
			for _, r := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.RegionType, intVal(r.PointCount), val(r.UpdatedAt))
			}
			footer(w, res.Paging, res.Rejected)
		})
	},
}

var regionsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one region",
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		r, err := api.GetRegion(cmd.Context(), regionID)
		exitOnError("fetching region", err)
		printRegion(r)
	},
}

var regionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a region",
	Example: `  accessctl regions create --name "North gate" --type checkpoint
  accessctl regions create --name "Campus east" --type site --description "Main campus"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		payload := models.RegionPayload{Name: &regionName, RegionType: &regionType}
		if cmd.Flags().Changed("description") {
			payload.Description = &regionDesc
		}

		fmt.Printf("Creating %s region %q ...\n", regionType, regionName)
		r, err := api.CreateRegion(cmd.Context(), payload)
		exitOnError("creating region", err)
		printRegion(r)
	},
}

var regionsUpdateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update a region",
	Example: `  accessctl regions update --id r-1 --name "North gate A"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		// Only send the fields the user actually set
		var payload models.RegionPayload
		if cmd.Flags().Changed("name") {
			payload.Name = &regionNewName
		}
		if cmd.Flags().Changed("type") {
			payload.RegionType = &regionNewType
		}
		if cmd.Flags().Changed("description") {
			payload.Description = &regionNewDesc
		}
		if payload == (models.RegionPayload{}) {
			fmt.Println("Error: nothing to update, set --name, --type or --description.")
			os.Exit(1)
		}

		r, err := api.UpdateRegion(cmd.Context(), regionID, payload)
		exitOnError("updating region", err)
		printRegion(r)
	},
}

var regionsDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete a region by ID",
	Example: `  accessctl regions delete --id r-9`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		fmt.Printf("Deleting region ID: %s ...\n", regionID)
		exitOnError("deleting region", api.DeleteRegion(cmd.Context(), regionID))
		fmt.Println("Region deleted successfully.")
	},
}

func printRegion(r *models.Region) {
	if r == nil {
		fmt.Println("Backend returned no region data.")
		return
	}
	render(r, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "ID:\t%s\n", r.ID)
		fmt.Fprintf(w, "Name:\t%s\n", r.Name)
		fmt.Fprintf(w, "Type:\t%s\n", r.RegionType)
		fmt.Fprintf(w, "Description:\t%s\n", val(r.Description))
		fmt.Fprintf(w, "Points:\t%s\n", intVal(r.PointCount))
		fmt.Fprintf(w, "Created:\t%s\n", val(r.CreatedAt))
		fmt.Fprintf(w, "Updated:\t%s\n", val(r.UpdatedAt))
	})
}

func init() {
	rootCmd.AddCommand(regionsCmd)

	regionsCmd.AddCommand(regionsListCmd)
	regionsListCmd.Flags().IntVar(&regionQuery.Page, "page", 0, "Page number")
	regionsListCmd.Flags().IntVar(&regionQuery.PerPage, "per-page", 0, "Records per page")
	regionsListCmd.Flags().StringVar(&regionQuery.RegionType, "type", "", "Region type (checkpoint, site)")
	regionsListCmd.Flags().StringVar(&regionQuery.Keyword, "keyword", "", "Name keyword")

	regionsCmd.AddCommand(regionsGetCmd)
	regionsGetCmd.Flags().StringVar(&regionID, "id", "", "Region ID")
	_ = regionsGetCmd.MarkFlagRequired("id")

	regionsCmd.AddCommand(regionsCreateCmd)
	regionsCreateCmd.Flags().StringVar(&regionName, "name", "", "Region name")
	regionsCreateCmd.Flags().StringVar(&regionType, "type", models.RegionCheckpoint, "Region type (checkpoint, site)")
	regionsCreateCmd.Flags().StringVar(&regionDesc, "description", "", "Optional description")
	_ = regionsCreateCmd.MarkFlagRequired("name")

	regionsCmd.AddCommand(regionsUpdateCmd)
	regionsUpdateCmd.Flags().StringVar(&regionID, "id", "", "Region ID")
	regionsUpdateCmd.Flags().StringVar(&regionNewName, "name", "", "New name")
	regionsUpdateCmd.Flags().StringVar(&regionNewType, "type", "", "New type (checkpoint, site)")
	regionsUpdateCmd.Flags().StringVar(&regionNewDesc, "description", "", "New description")
	_ = regionsUpdateCmd.MarkFlagRequired("id")

	regionsCmd.AddCommand(regionsDeleteCmd)
	regionsDeleteCmd.Flags().StringVar(&regionID, "id", "", "ID of the region to delete")
	_ = regionsDeleteCmd.MarkFlagRequired("id")
}
