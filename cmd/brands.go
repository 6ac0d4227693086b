package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/beadmatch/internal/ui/report"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List the bead brands in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runBrands,
}

func init() {
	rootCmd.AddCommand(brandsCmd)
}

func runBrands(cmd *cobra.Command, _ []string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), report.RenderBrands(svc.Catalog().Brands(), reportOptions()))
	return err
}
