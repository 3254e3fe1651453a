// Package cli renders report results for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/report"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/dto"
)

// FilterKind keeps rows of the given kind. Rows without a kind are kept, as
// single-kind files usually leave the column out.
func FilterKind(raws []recurrence.RawRecord, kind entity.RecordKind) []recurrence.RawRecord {
	filtered := make([]recurrence.RawRecord, 0, len(raws))
	for _, raw := range raws {
		if raw.Kind == "" {
			filtered = append(filtered, raw)
			continue
		}
		if rowKind, ok := entity.ParseRecordKind(raw.Kind); ok && rowKind == kind {
			filtered = append(filtered, raw)
		}
	}
	return filtered
}

// ResolveWindow builds the report window from the command line dates. asOf
// wins over start/end; with no dates at all the window is cumulative to today.
func ResolveWindow(start, end, asOf string, today time.Time) (valueobject.DateWindow, error) {
	if asOf != "" {
		date, err := valueobject.ParseDate(asOf)
		if err != nil {
			return valueobject.DateWindow{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", asOf)
		}
		return valueobject.CumulativeWindow(date), nil
	}

	if start == "" && end == "" {
		return valueobject.CumulativeWindow(today), nil
	}
	if start == "" || end == "" {
		return valueobject.DateWindow{}, fmt.Errorf("--start and --end must be given together")
	}

	window, err := valueobject.ParseDateWindow(start, end)
	if err != nil {
		return valueobject.DateWindow{}, fmt.Errorf("invalid window: %w", err)
	}
	return window, nil
}

// PrintReportJSON writes the report in the same shape as the compute endpoint.
func PrintReportJSON(w io.Writer, output *report.ComputeReportOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToComputeReportResponse(output))
}

// PrintReportTable writes the category and month breakdowns as tables.
func PrintReportTable(w io.Writer, title string, output *report.ComputeReportOutput) {
	summary := output.Summary

	fmt.Fprintf(w, "%s - %s\n", title, output.Period.PeriodLabel)
	if output.Skipped > 0 {
		fmt.Fprintf(w, "%s\n", text.FgYellow.Sprintf("%d malformed rows skipped", output.Skipped))
	}
	fmt.Fprintln(w)

	if summary.InstallmentCount == 0 {
		fmt.Fprintln(w, "No installments in period.")
		return
	}

	categories := table.NewWriter()
	categories.SetOutputMirror(w)
	categories.AppendHeader(table.Row{"Category", "Amount", "%"})
	for _, item := range summary.Categories {
		categories.AppendRow(table.Row{
			item.Category,
			valueobject.FormatBRL(item.Amount),
			fmt.Sprintf("%.2f", item.Percentage),
		})
	}
	categories.AppendSeparator()
	categories.AppendFooter(table.Row{
		text.Bold.Sprint("Total"),
		text.Bold.Sprint(valueobject.FormatBRL(summary.Total)),
		"",
	})
	styleTable(categories, 2, 3)
	categories.Render()

	fmt.Fprintln(w)

	months := table.NewWriter()
	months.SetOutputMirror(w)
	months.AppendHeader(table.Row{"Month", "Amount"})
	for _, item := range summary.Months {
		months.AppendRow(table.Row{
			valueobject.MonthLabel(item.Month),
			valueobject.FormatBRL(item.Amount),
		})
	}
	months.AppendSeparator()
	months.AppendFooter(table.Row{
		text.Bold.Sprintf("%d installments", summary.InstallmentCount),
		text.Bold.Sprint(valueobject.FormatBRL(summary.Total)),
	})
	styleTable(months, 2)
	months.Render()
}

func styleTable(t table.Writer, rightAligned ...int) {
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	configs := make([]table.ColumnConfig, len(rightAligned))
	for i, n := range rightAligned {
		configs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	t.SetColumnConfigs(configs)
}
