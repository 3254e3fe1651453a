package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/record"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/dto"
)

// RecordController handles financial record endpoints.
type RecordController struct {
	createUseCase *record.CreateRecordUseCase
	listUseCase   *record.ListRecordsUseCase
	deleteUseCase *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	createUseCase *record.CreateRecordUseCase,
	listUseCase *record.ListRecordsUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	kind, ok := entity.ParseRecordKind(req.Kind)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Kind must be: revenue or expense",
			Code:  string(domainerror.ErrCodeRecordKindInvalid),
		})
		return
	}

	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRecordDate),
		})
		return
	}

	input := record.CreateRecordInput{
		Kind:        kind,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Frequency:   entity.ParseFrequency(req.Frequency),
		Category:    req.Category,
	}
	if req.Installments != nil {
		input.Installments = *req.Installments
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateRecordResponse{
		Data: dto.ToRecordResponse(output.Record),
	})
}

// List handles GET /records requests. Invalid filters are ignored.
func (c *RecordController) List(ctx *gin.Context) {
	var input record.ListRecordsInput

	if kindStr := ctx.Query("kind"); kindStr != "" {
		if kind, ok := entity.ParseRecordKind(kindStr); ok {
			input.Kind = &kind
		}
	}
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := valueobject.ParseDate(startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := valueobject.ParseDate(endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListRecordsResponse(output))
}

// Delete handles DELETE /records/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordID),
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		RecordID: recordID,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		statusCode := c.getStatusCodeForRecordError(recordErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func (c *RecordController) getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecordAmount,
		domainerror.ErrCodeInvalidRecordDate,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeRecordKindInvalid,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeCategoryTooLong,
		domainerror.ErrCodeMissingRecordFields,
		domainerror.ErrCodeInvalidRecordID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
