package recurrence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	domainerror "github.com/luccavalentin/vanderleideploy-sub000/internal/domain/error"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// RawAmount holds an amount as received from the store: either a JSON
// number or a numeric string.
type RawAmount string

// UnmarshalJSON accepts numbers, strings and null.
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	*a = RawAmount(data)
	return nil
}

// RawRecord is a financial record in the store's plain shape, before
// ingestion into the domain.
type RawRecord struct {
	ID           string    `json:"id,omitempty" yaml:"id,omitempty"`
	Kind         string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Amount       RawAmount `json:"amount" yaml:"amount"`
	Date         string    `json:"date" yaml:"date"`
	Frequency    string    `json:"frequency" yaml:"frequency"`
	Installments *int      `json:"installments" yaml:"installments"`
	Category     *string   `json:"category" yaml:"category"`

	// malformed names a field whose JSON value could not be coerced.
	malformed string
}

// UnmarshalJSON decodes a record without failing on field types, so one bad
// row never rejects the whole batch. Text fields take numbers verbatim and
// installments take integers and integer strings. Optional text fields of any
// other type are dropped; a date or installments value that cannot be
// coerced marks the record malformed.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = RawRecord{}
	if bytes.Equal(data, []byte("null")) {
		r.malformed = "record"
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		r.malformed = "record"
		return nil
	}

	var fields struct {
		ID           json.RawMessage `json:"id"`
		Kind         json.RawMessage `json:"kind"`
		Description  json.RawMessage `json:"description"`
		Amount       RawAmount       `json:"amount"`
		Date         json.RawMessage `json:"date"`
		Frequency    json.RawMessage `json:"frequency"`
		Installments json.RawMessage `json:"installments"`
		Category     json.RawMessage `json:"category"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		r.malformed = "record"
		return nil
	}

	r.ID, _ = jsonText(fields.ID)
	r.Kind, _ = jsonText(fields.Kind)
	r.Description, _ = jsonText(fields.Description)
	r.Amount = fields.Amount
	r.Frequency, _ = jsonText(fields.Frequency)

	date, ok := jsonText(fields.Date)
	if !ok {
		r.malformed = "date"
	}
	r.Date = date

	if category, ok := jsonText(fields.Category); ok && len(fields.Category) > 0 && !isJSONNull(fields.Category) {
		r.Category = &category
	}

	installments, ok := jsonInt(fields.Installments)
	if !ok {
		r.malformed = "installments"
	}
	r.Installments = installments

	return nil
}

// jsonText returns a string or number value as text. Null and absent values
// are empty; other types are reported as not coercible.
func jsonText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isJSONNull(raw) {
		return "", true
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}

// jsonInt returns an integral number or numeric string. Null and absent
// values are nil.
func jsonInt(raw json.RawMessage) (*int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isJSONNull(raw) {
		return nil, true
	}
	text, ok := jsonText(raw)
	if !ok {
		return nil, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, false
	}
	return &n, true
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ParseRecord converts a raw record into a domain record. The frequency label
// is classified here, once. Unparseable dates or amounts return an error
// wrapping ErrMalformedRecord.
func ParseRecord(raw RawRecord) (entity.FinancialRecord, error) {
	if raw.malformed != "" {
		return entity.FinancialRecord{}, fmt.Errorf("%w: invalid %s", domainerror.ErrMalformedRecord, raw.malformed)
	}

	amount, err := ParseAmount(string(raw.Amount))
	if err != nil {
		return entity.FinancialRecord{}, fmt.Errorf("%w: amount %q: %v", domainerror.ErrMalformedRecord, raw.Amount, err)
	}

	anchor, err := parseAnchorDate(raw.Date)
	if err != nil {
		return entity.FinancialRecord{}, fmt.Errorf("%w: date %q: %v", domainerror.ErrMalformedRecord, raw.Date, err)
	}

	frequency := entity.ParseFrequency(raw.Frequency)

	var installments int
	if frequency.IsFixedTerm() && raw.Installments != nil {
		installments = *raw.Installments
	}

	var category string
	if raw.Category != nil {
		category = *raw.Category
	}

	kind, _ := entity.ParseRecordKind(raw.Kind)

	id, err := uuid.Parse(raw.ID)
	if err != nil {
		id = uuid.Nil
	}

	return entity.FinancialRecord{
		ID:               id,
		Kind:             kind,
		Description:      raw.Description,
		Amount:           amount,
		AnchorDate:       anchor,
		Frequency:        frequency,
		InstallmentCount: installments,
		Category:         entity.NormalizeCategory(category),
	}, nil
}

// ParseRecords ingests a batch, skipping malformed rows. It returns the
// parsed records and the number of rows skipped.
func ParseRecords(ctx context.Context, raws []RawRecord) ([]entity.FinancialRecord, int) {
	records := make([]entity.FinancialRecord, 0, len(raws))
	skipped := 0

	for _, raw := range raws {
		record, err := ParseRecord(raw)
		if err != nil {
			skipped++
			slog.DebugContext(ctx, "Skipping malformed financial record",
				"id", raw.ID,
				"error", err,
			)
			continue
		}
		records = append(records, record)
	}

	return records, skipped
}

// ParseAmount parses a decimal amount. Both "1,234.56" and the Brazilian
// "1.234,56" notations are accepted: the last separator is the decimal one
// and the other may only group the integer part in threes. A lone comma is
// decimal ("99,90").
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "R$")
	value = strings.TrimSpace(value)

	decimalSep, groupSep := ".", ","
	if strings.LastIndex(value, ",") > strings.LastIndex(value, ".") {
		decimalSep, groupSep = ",", "."
	}

	integer, fraction, hasFraction := strings.Cut(value, decimalSep)
	if strings.ContainsAny(fraction, ".,") {
		return decimal.Zero, fmt.Errorf("invalid amount %q: misplaced separator", value)
	}

	if strings.Contains(integer, groupSep) {
		groups := strings.Split(strings.TrimLeft(integer, "+-"), groupSep)
		if len(groups[0]) == 0 || len(groups[0]) > 3 {
			return decimal.Zero, fmt.Errorf("invalid amount %q: bad digit grouping", value)
		}
		for _, group := range groups[1:] {
			if len(group) != 3 {
				return decimal.Zero, fmt.Errorf("invalid amount %q: bad digit grouping", value)
			}
		}
		integer = strings.ReplaceAll(integer, groupSep, "")
	}

	normalized := integer
	if hasFraction {
		normalized += "." + fraction
	}
	return decimal.NewFromString(normalized)
}

// parseAnchorDate parses a yyyy-MM-dd date. Timestamps are accepted and
// truncated to their calendar date.
func parseAnchorDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) > len(valueobject.DateLayout) && (value[10] == 'T' || value[10] == ' ') {
		value = value[:len(valueobject.DateLayout)]
	}
	return valueobject.ParseDate(value)
}
