// Package report renders conversion results, sprite costs and catalog
// summaries for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/beadmatch/internal/beads/application"
	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/ui/beadart"
	"github.com/zjrosen/beadmatch/internal/ui/styles"
)

const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 80

	countColumnWidth  = 11
	swatchColumnWidth = 2
)

// Options controls report rendering.
type Options struct {
	Width    int
	Swatches bool
	// MaxNameWidth caps the bead label column; 0 fits it to Width.
	MaxNameWidth int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// BeadLabel renders a bead as "Name [CODE]".
func BeadLabel(b domain.Bead) string {
	return styles.FormatBead(styles.Capitalize(b.Name), strings.ToUpper(b.Code))
}

// ConversionRow renders one candidate as
// "N.: (Brand) (Likeness: xx.xx%) Name [CODE]".
func ConversionRow(rank int, m application.ScoredMatch) string {
	return fmt.Sprintf("%d.: (%s) (Likeness: %s) %s",
		rank, styles.Capitalize(m.Bead.Brand), styles.FormatPercent(m.Likeness), BeadLabel(m.Bead))
}

// RenderConversion renders the ranked equivalents of a bead.
func RenderConversion(conv application.Conversion, opts Options) string {
	var b strings.Builder

	heading := fmt.Sprintf("%s %s → %s", styles.Capitalize(conv.Source.Brand), BeadLabel(conv.Source), styles.Capitalize(conv.TargetBrand))
	if opts.Swatches {
		heading = styles.Swatch(styles.SwatchColor(conv.Source.Hex, conv.Source.RGB.Hex())) + " " + heading
	}
	b.WriteString(styles.HeaderStyle.Render(heading))
	b.WriteString("\n")

	for i, m := range conv.Matches {
		row := ConversionRow(i+1, m)
		if opts.Swatches {
			row = styles.Swatch(styles.SwatchColor(m.Bead.Hex, m.Bead.RGB.Hex())) + " " + row
		}
		b.WriteString(styles.TextStyle.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSpriteCost renders the sprite details and the per-bead breakdown.
func RenderSpriteCost(cost application.SpriteCost, opts Options) string {
	var b strings.Builder

	details := strings.Join([]string{
		fmt.Sprintf("brand: %s", styles.Capitalize(cost.Brand)),
		fmt.Sprintf("width: %s", styles.FormatCount(cost.Width)),
		fmt.Sprintf("height: %s", styles.FormatCount(cost.Height)),
		fmt.Sprintf("total beads: %s", styles.FormatCount(cost.TotalBeads)),
	}, "\n")
	b.WriteString(styles.RenderWithTitleBorder(details, "sprite details", min(opts.width(), 40), styles.AccentColor))
	b.WriteString("\n\n")

	b.WriteString(styles.TitleStyle.Render("count by bead color:"))
	b.WriteString("\n")
	if len(cost.Usage) == 0 {
		b.WriteString(styles.MutedStyle.Render("no opaque pixels matched a bead"))
		b.WriteString("\n")
	} else {
		b.WriteString(usageTable(cost.Usage, opts))
		b.WriteString("\n")
	}

	if len(cost.Unmatched) > 0 {
		pixels := 0
		for _, cc := range cost.Unmatched {
			pixels += cc.Count
		}
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("%s colors (%s pixels) had no matching bead",
			styles.FormatCount(len(cost.Unmatched)), styles.FormatCount(pixels))))
		b.WriteString("\n")
	}
	if cost.Skipped > 0 {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%s transparent pixels skipped", styles.FormatCount(cost.Skipped))))
		b.WriteString("\n")
	}
	return b.String()
}

func usageTable(usage []application.Usage, opts Options) string {
	cols := []column{
		{Title: "bead", MinWidth: 6, MaxWidth: opts.MaxNameWidth},
		{Title: "count", Width: countColumnWidth},
	}
	if opts.Swatches {
		cols = append([]column{{Width: swatchColumnWidth}}, cols...)
	}
	// borders and padding: 2 outer borders plus one cell of padding per side
	widths := columnWidths(cols, opts.width()-2-2*len(cols))
	nameWidth := widths[len(widths)-2]

	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		label := truncate.StringWithTail(BeadLabel(u.Bead), uint(nameWidth), "…")
		row := []string{label, styles.FormatCount(u.Count)}
		if opts.Swatches {
			row = append([]string{""}, row...)
		}
		rows = append(rows, row)
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
	}
	countCol := len(cols) - 1

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(styles.AccentColor)
			}
			if opts.Swatches && col == 0 {
				bead := usage[row].Bead
				return s.Background(styles.SwatchColor(bead.Hex, bead.RGB.Hex()))
			}
			if col == countCol {
				return s.Align(lipgloss.Right)
			}
			return s.Foreground(styles.TextDescriptionColor)
		}).
		Render()
}

// RenderBrands lists the catalog's brands with their bead counts.
func RenderBrands(brands []application.BrandSummary, opts Options) string {
	rows := make([][]string, 0, len(brands))
	total := 0
	for _, br := range brands {
		rows = append(rows, []string{styles.Capitalize(br.Brand), styles.FormatCount(br.Count)})
		total += br.Count
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		Headers("brand", "beads").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(styles.AccentColor)
			}
			if col == 1 {
				return s.Align(lipgloss.Right)
			}
			return s
		})

	return t.Render() + "\n" +
		styles.MutedStyle.Render(fmt.Sprintf("%s brands, %s beads", styles.FormatCount(len(brands)), styles.FormatCount(total))) + "\n"
}

// RenderCatalogError renders the view shown when no usable catalog could be
// loaded from path.
func RenderCatalogError(path string, err error, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	messageStyle := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor).Width(width)
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Width(width)

	var b strings.Builder
	b.WriteString(beadart.BuildBroken())
	b.WriteString("\n\n")
	b.WriteString(styles.TitleStyle.Render("Oh no! The bead strand is broken!"))
	b.WriteString("\n\n")
	b.WriteString(messageStyle.Render(fmt.Sprintf("No beads could be loaded from %s: %v", path, err)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Pass --catalog /path/to/beads.csv or set catalog in .beadmatch.yaml"))
	b.WriteString("\n")
	return b.String()
}
