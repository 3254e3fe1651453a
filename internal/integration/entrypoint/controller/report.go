// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/report"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/dto"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/recordfile"
)

// maxUploadSize bounds spreadsheet uploads on the compute endpoint.
const maxUploadSize = 10 << 20

// ReportController handles report endpoints.
type ReportController struct {
	getSummaryUseCase         *report.GetSummaryUseCase
	getCumulativeTotalUseCase *report.GetCumulativeTotalUseCase
	getOverviewUseCase        *report.GetOverviewUseCase
	comparePeriodsUseCase     *report.ComparePeriodsUseCase
	computeReportUseCase      *report.ComputeReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getSummaryUseCase *report.GetSummaryUseCase,
	getCumulativeTotalUseCase *report.GetCumulativeTotalUseCase,
	getOverviewUseCase *report.GetOverviewUseCase,
	comparePeriodsUseCase *report.ComparePeriodsUseCase,
	computeReportUseCase *report.ComputeReportUseCase,
) *ReportController {
	return &ReportController{
		getSummaryUseCase:         getSummaryUseCase,
		getCumulativeTotalUseCase: getCumulativeTotalUseCase,
		getOverviewUseCase:        getOverviewUseCase,
		comparePeriodsUseCase:     comparePeriodsUseCase,
		computeReportUseCase:      computeReportUseCase,
	}
}

// GetSummary handles GET /reports/summary requests.
func (c *ReportController) GetSummary(ctx *gin.Context) {
	kind, ok := c.bindKind(ctx)
	if !ok {
		return
	}

	window, ok := c.bindWindow(ctx, ctx.Query("start_date"), ctx.Query("end_date"))
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		Kind:   kind,
		Window: window,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetCumulative handles GET /reports/cumulative requests.
// as_of defaults to today.
func (c *ReportController) GetCumulative(ctx *gin.Context) {
	kind, ok := c.bindKind(ctx)
	if !ok {
		return
	}

	var asOf time.Time
	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		parsed, err := valueobject.ParseDate(asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		asOf = parsed
	}

	output, err := c.getCumulativeTotalUseCase.Execute(ctx.Request.Context(), report.GetCumulativeTotalInput{
		Kind: kind,
		AsOf: asOf,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCumulativeResponse(output))
}

// GetOverview handles GET /reports/overview requests.
func (c *ReportController) GetOverview(ctx *gin.Context) {
	window, ok := c.bindWindow(ctx, ctx.Query("start_date"), ctx.Query("end_date"))
	if !ok {
		return
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), report.GetOverviewInput{
		Window: window,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// GetComparison handles GET /reports/comparison requests.
func (c *ReportController) GetComparison(ctx *gin.Context) {
	kind, ok := c.bindKind(ctx)
	if !ok {
		return
	}

	current, ok := c.bindWindow(ctx, ctx.Query("start_date"), ctx.Query("end_date"))
	if !ok {
		return
	}

	previous, ok := c.bindWindow(ctx, ctx.Query("previous_start_date"), ctx.Query("previous_end_date"))
	if !ok {
		return
	}

	output, err := c.comparePeriodsUseCase.Execute(ctx.Request.Context(), report.ComparePeriodsInput{
		Kind:     kind,
		Current:  current,
		Previous: previous,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}

// Compute handles POST /reports/compute requests over caller-supplied records.
func (c *ReportController) Compute(ctx *gin.Context) {
	var req dto.ComputeReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidComputeRequest),
		})
		return
	}

	window, ok := c.bindWindow(ctx, req.Window.StartDate, req.Window.EndDate)
	if !ok {
		return
	}

	output, err := c.computeReportUseCase.Execute(ctx.Request.Context(), report.ComputeReportInput{
		Records: req.Records,
		Window:  window,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComputeReportResponse(output))
}

// ComputeUpload handles POST /reports/compute/upload requests. The records
// come from an xlsx sheet in the "file" form field; the window comes from
// the start_date and end_date form fields.
func (c *ReportController) ComputeUpload(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadSize)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "file is required",
			Code:  string(domainerror.ErrCodeInvalidComputeRequest),
		})
		return
	}

	window, ok := c.bindWindow(ctx, ctx.PostForm("start_date"), ctx.PostForm("end_date"))
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unable to read uploaded file",
			Code:  string(domainerror.ErrCodeInvalidComputeRequest),
		})
		return
	}
	defer file.Close()

	records, err := recordfile.ReadSpreadsheet(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Unable to read spreadsheet",
			Code:    string(domainerror.ErrCodeInvalidComputeRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.computeReportUseCase.Execute(ctx.Request.Context(), report.ComputeReportInput{
		Records: records,
		Window:  window,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComputeReportResponse(output))
}

// bindKind reads the kind query parameter, writing a 400 when it is missing or unknown.
func (c *ReportController) bindKind(ctx *gin.Context) (entity.RecordKind, bool) {
	kindStr := ctx.Query("kind")
	if kindStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "kind is required",
			Code:  string(domainerror.ErrCodeMissingRecordKind),
		})
		return "", false
	}

	kind, ok := entity.ParseRecordKind(kindStr)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Kind must be: revenue or expense",
			Code:  string(domainerror.ErrCodeInvalidRecordKind),
		})
		return "", false
	}

	return kind, true
}

// bindWindow parses a start/end pair into a window, writing a 400 on failure.
// A start after the end is accepted and produces an empty report.
func (c *ReportController) bindWindow(ctx *gin.Context, startStr, endStr string) (valueobject.DateWindow, bool) {
	if startStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return valueobject.DateWindow{}, false
	}

	if endStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return valueobject.DateWindow{}, false
	}

	window, err := valueobject.ParseDateWindow(startStr, endStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return valueobject.DateWindow{}, false
	}

	return window, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidRecordKind,
		domainerror.ErrCodeMissingRecordKind,
		domainerror.ErrCodeInvalidComputeRequest,
		domainerror.ErrCodeWindowTooLarge:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
