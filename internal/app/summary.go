package app

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"textfilter/internal/pipeline"
)

// renderSummary tabulates word counts for the sanitized input and every stage
// that ran.
func renderSummary(sanitized int, reports []pipeline.StageReport) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Stage", "Option", "Words In", "Removed", "Words Out"})
	tw.AppendRow(table.Row{"sanitize", "", "", "", strconv.Itoa(sanitized)})
	for _, r := range reports {
		tw.AppendRow(table.Row{
			r.Name,
			string(r.Option),
			strconv.Itoa(r.Before),
			strconv.Itoa(r.Removed()),
			strconv.Itoa(r.After),
		})
	}

	columnConfigs := make([]table.ColumnConfig, 0, 5)
	for i := 1; i <= 5; i++ {
		align := text.AlignLeft
		if i > 2 {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
