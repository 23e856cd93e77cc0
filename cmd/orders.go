package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/kitchen/core/feed"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order feed commands",
}

var ordersLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the orders of the feed",
	RunE:  runOrdersLs,
}

func init() {
	ordersCmd.AddCommand(ordersLsCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runOrdersLs(cmd *cobra.Command, args []string) error {
	orders, err := feed.Problem().FetchOrders(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTEMP\tFRESHNESS"); err != nil {
		return err
	}
	for _, o := range orders {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", o.ID, o.Name, o.Temp, o.Freshness); err != nil {
			return err
		}
	}
	return w.Flush()
}
