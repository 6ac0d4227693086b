package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/beadmatch/internal/ui/report"
)

var (
	convertFrom  string
	convertColor string
	convertTo    string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bead color to another brand",
	Long: `Find the closest beads in another brand to a bead identified by its
brand and its name or code.`,
	Example: "  beadmatch convert --from hama --color h05 --to perler",
	Args:    cobra.NoArgs,
	RunE:    runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "current bead brand")
	convertCmd.Flags().StringVar(&convertColor, "color", "", "name or code of the current color")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "brand to convert to")
	for _, name := range []string{"from", "color", "to"} {
		_ = convertCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	conv, err := svc.ConvertColor(convertFrom, convertColor, convertTo)
	if err != nil {
		return fmt.Errorf("converting %s %s to %s: %w", convertFrom, convertColor, convertTo, err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), report.RenderConversion(conv, reportOptions()))
	return err
}
