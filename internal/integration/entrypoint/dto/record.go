package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/record"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// CreateRecordRequest represents the request body for record creation.
// Amount accepts a JSON number or a numeric string.
type CreateRecordRequest struct {
	Kind         string          `json:"kind" binding:"required"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date" binding:"required"`
	Frequency    string          `json:"frequency"`
	Installments *int            `json:"installments"`
	Category     string          `json:"category"`
}

// RecordResponse represents a financial record in API responses.
type RecordResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Frequency    string  `json:"frequency"`
	Installments *int    `json:"installments"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// CreateRecordResponse represents the response for record creation.
type CreateRecordResponse struct {
	Data RecordResponse `json:"data"`
}

// ListRecordsResponse represents the response for listing records.
type ListRecordsResponse struct {
	Data []RecordResponse `json:"data"`
}

// ToRecordResponse converts a RecordOutput to RecordResponse DTO.
func ToRecordResponse(output *record.RecordOutput) RecordResponse {
	return RecordResponse{
		ID:           output.ID.String(),
		Kind:         string(output.Kind),
		Description:  output.Description,
		Amount:       toFloat(output.Amount),
		Date:         output.Date.Format(valueobject.DateLayout),
		Frequency:    output.Frequency.Label(),
		Installments: output.Installments,
		Category:     output.Category,
		CreatedAt:    output.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    output.UpdatedAt.Format(time.RFC3339),
	}
}

// ToListRecordsResponse converts a ListRecordsOutput to ListRecordsResponse DTO.
func ToListRecordsResponse(output *record.ListRecordsOutput) ListRecordsResponse {
	records := make([]RecordResponse, len(output.Records))
	for i, r := range output.Records {
		records[i] = ToRecordResponse(r)
	}
	return ListRecordsResponse{Data: records}
}
