package dto

import (
	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/report"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// ReportPeriodResponse represents the period a report covers.
type ReportPeriodResponse struct {
	StartDate   *string `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PeriodLabel string  `json:"period_label"`
	Disabled    bool    `json:"disabled"`
}

// CategoryBreakdownResponse represents one category slice of a report.
type CategoryBreakdownResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// MonthBreakdownResponse represents one month bucket of a report.
type MonthBreakdownResponse struct {
	Month  string  `json:"month"` // yyyy-MM
	Label  string  `json:"label"` // e.g. "Jan/2024"
	Amount float64 `json:"amount"`
}

// SummaryResponse represents the response for the summary API.
type SummaryResponse struct {
	Data SummaryData `json:"data"`
}

// SummaryData represents the data section of the summary response.
type SummaryData struct {
	Kind             string                      `json:"kind"`
	Period           ReportPeriodResponse        `json:"period"`
	Total            float64                     `json:"total"`
	FormattedTotal   string                      `json:"formatted_total"`
	InstallmentCount int                         `json:"installment_count"`
	ByCategory       []CategoryBreakdownResponse `json:"by_category"`
	ByMonth          []MonthBreakdownResponse    `json:"by_month"`
}

// CumulativeResponse represents the response for the cumulative total API.
type CumulativeResponse struct {
	Data CumulativeData `json:"data"`
}

// CumulativeData represents the data section of the cumulative response.
type CumulativeData struct {
	Kind             string                      `json:"kind"`
	Period           ReportPeriodResponse        `json:"period"`
	Total            float64                     `json:"total"`
	FormattedTotal   string                      `json:"formatted_total"`
	InstallmentCount int                         `json:"installment_count"`
	ByCategory       []CategoryBreakdownResponse `json:"by_category"`
}

// OverviewResponse represents the response for the overview API.
type OverviewResponse struct {
	Data OverviewData `json:"data"`
}

// OverviewData represents the data section of the overview response.
type OverviewData struct {
	Period             ReportPeriodResponse        `json:"period"`
	Revenue            float64                     `json:"revenue"`
	Expenses           float64                     `json:"expenses"`
	Balance            float64                     `json:"balance"`
	FormattedBalance   string                      `json:"formatted_balance"`
	RevenueByCategory  []CategoryBreakdownResponse `json:"revenue_by_category"`
	ExpensesByCategory []CategoryBreakdownResponse `json:"expenses_by_category"`
	Series             []OverviewPointResponse     `json:"series"`
}

// OverviewPointResponse represents one month of the overview series.
type OverviewPointResponse struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// ComparisonResponse represents the response for the comparison API.
type ComparisonResponse struct {
	Data ComparisonData `json:"data"`
}

// ComparisonData represents the data section of the comparison response.
type ComparisonData struct {
	Kind             string              `json:"kind"`
	Current          PeriodTotalResponse `json:"current"`
	Previous         PeriodTotalResponse `json:"previous"`
	Change           float64             `json:"change"`
	ChangePercentage *float64            `json:"change_percentage"`
}

// PeriodTotalResponse represents the total of one compared window.
type PeriodTotalResponse struct {
	Period ReportPeriodResponse `json:"period"`
	Total  float64              `json:"total"`
}

// ComputeReportRequest represents the request body for the compute API.
type ComputeReportRequest struct {
	Records []recurrence.RawRecord `json:"records"`
	Window  WindowRequest          `json:"window" binding:"required"`
}

// WindowRequest represents a date window in a request body.
type WindowRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ComputeReportResponse represents the response for the compute API.
type ComputeReportResponse struct {
	Data ComputeReportData `json:"data"`
}

// ComputeReportData represents the data section of the compute response.
type ComputeReportData struct {
	SummaryData
	Skipped int `json:"skipped"`
}

// ToReportPeriodResponse converts a ReportPeriod to its response DTO.
func ToReportPeriodResponse(period report.ReportPeriod) ReportPeriodResponse {
	response := ReportPeriodResponse{
		EndDate:     period.EndDate.Format(valueobject.DateLayout),
		PeriodLabel: period.PeriodLabel,
		Disabled:    period.Disabled,
	}
	if period.StartDate != nil {
		start := period.StartDate.Format(valueobject.DateLayout)
		response.StartDate = &start
	}
	return response
}

// ToCategoryBreakdownResponse converts category items, colouring them with
// a palette owned by this response.
func ToCategoryBreakdownResponse(items []report.CategoryBreakdownItem) []CategoryBreakdownResponse {
	palette := valueobject.NewPalette()
	response := make([]CategoryBreakdownResponse, len(items))
	for i, item := range items {
		response[i] = CategoryBreakdownResponse{
			Category:   item.Category,
			Amount:     toFloat(item.Amount),
			Percentage: item.Percentage,
			Color:      palette.Next(),
		}
	}
	return response
}

// ToMonthBreakdownResponse converts month items, attaching localized labels.
func ToMonthBreakdownResponse(items []report.MonthBreakdownItem) []MonthBreakdownResponse {
	response := make([]MonthBreakdownResponse, len(items))
	for i, item := range items {
		response[i] = MonthBreakdownResponse{
			Month:  item.Month.String(),
			Label:  valueobject.MonthLabel(item.Month),
			Amount: toFloat(item.Amount),
		}
	}
	return response
}

func toSummaryData(kind string, period report.ReportPeriod, summary report.Summary) SummaryData {
	return SummaryData{
		Kind:             kind,
		Period:           ToReportPeriodResponse(period),
		Total:            toFloat(summary.Total),
		FormattedTotal:   valueobject.FormatBRL(summary.Total),
		InstallmentCount: summary.InstallmentCount,
		ByCategory:       ToCategoryBreakdownResponse(summary.Categories),
		ByMonth:          ToMonthBreakdownResponse(summary.Months),
	}
}

// ToSummaryResponse converts a GetSummaryOutput to SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Data: toSummaryData(string(output.Kind), output.Period, output.Summary),
	}
}

// ToCumulativeResponse converts a GetCumulativeTotalOutput to CumulativeResponse DTO.
func ToCumulativeResponse(output *report.GetCumulativeTotalOutput) CumulativeResponse {
	return CumulativeResponse{
		Data: CumulativeData{
			Kind:             string(output.Kind),
			Period:           ToReportPeriodResponse(output.Period),
			Total:            toFloat(output.Total),
			FormattedTotal:   valueobject.FormatBRL(output.Total),
			InstallmentCount: output.InstallmentCount,
			ByCategory:       ToCategoryBreakdownResponse(output.Categories),
		},
	}
}

// ToOverviewResponse converts a GetOverviewOutput to OverviewResponse DTO.
func ToOverviewResponse(output *report.GetOverviewOutput) OverviewResponse {
	series := make([]OverviewPointResponse, len(output.Series))
	for i, point := range output.Series {
		series[i] = OverviewPointResponse{
			Month:    point.Month.String(),
			Label:    valueobject.MonthLabel(point.Month),
			Revenue:  toFloat(point.Revenue),
			Expenses: toFloat(point.Expense),
			Balance:  toFloat(point.Balance),
		}
	}

	return OverviewResponse{
		Data: OverviewData{
			Period:             ToReportPeriodResponse(output.Period),
			Revenue:            toFloat(output.Revenue.Total),
			Expenses:           toFloat(output.Expense.Total),
			Balance:            toFloat(output.Balance),
			FormattedBalance:   valueobject.FormatBRL(output.Balance),
			RevenueByCategory:  ToCategoryBreakdownResponse(output.Revenue.Categories),
			ExpensesByCategory: ToCategoryBreakdownResponse(output.Expense.Categories),
			Series:             series,
		},
	}
}

// ToComparisonResponse converts a ComparePeriodsOutput to ComparisonResponse DTO.
func ToComparisonResponse(output *report.ComparePeriodsOutput) ComparisonResponse {
	return ComparisonResponse{
		Data: ComparisonData{
			Kind: string(output.Kind),
			Current: PeriodTotalResponse{
				Period: ToReportPeriodResponse(output.Current.Period),
				Total:  toFloat(output.Current.Total),
			},
			Previous: PeriodTotalResponse{
				Period: ToReportPeriodResponse(output.Previous.Period),
				Total:  toFloat(output.Previous.Total),
			},
			Change:           toFloat(output.Change),
			ChangePercentage: output.ChangePercentage,
		},
	}
}

// ToComputeReportResponse converts a ComputeReportOutput to ComputeReportResponse DTO.
func ToComputeReportResponse(output *report.ComputeReportOutput) ComputeReportResponse {
	return ComputeReportResponse{
		Data: ComputeReportData{
			SummaryData: toSummaryData("", output.Period, output.Summary),
			Skipped:     output.Skipped,
		},
	}
}
