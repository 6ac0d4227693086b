package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/beadmatch/internal/ui/report"
)

var costBrand string

var costCmd = &cobra.Command{
	Use:   "cost <image>",
	Short: "Estimate the beads needed for a sprite",
	Long: `Count the opaque pixels of a pixel-art image and map every color to
its closest bead in the given brand.

Supported formats: PNG, JPEG, GIF, BMP, TIFF and WebP.`,
	Example: "  beadmatch cost --brand hama sprites/mario.png",
	Args:    cobra.ExactArgs(1),
	RunE:    runCost,
}

func init() {
	costCmd.Flags().StringVarP(&costBrand, "brand", "b", "", "bead brand")
	_ = costCmd.MarkFlagRequired("brand")
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	cost, err := svc.EstimateSpriteCost(args[0], costBrand)
	if err != nil {
		return fmt.Errorf("estimating sprite cost: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), report.RenderSpriteCost(cost, reportOptions()))
	return err
}
