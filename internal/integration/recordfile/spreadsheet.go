// Package recordfile reads batches of raw financial records from files:
// spreadsheets exported from the back office, JSON and YAML.
package recordfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/valueobject"
)

// headerSearchRows bounds how far down the sheet the header row may appear.
const headerSearchRows = 10

// ErrMissingColumns is returned when a sheet has no recognizable date and amount columns.
var ErrMissingColumns = errors.New("could not find required columns (data, valor)")

type column int

const (
	columnDate column = iota
	columnAmount
	columnFrequency
	columnInstallments
	columnCategory
	columnKind
	columnDescription
)

// headerAliases maps folded header labels to columns.
var headerAliases = map[string]column{
	"data":               columnDate,
	"date":               columnDate,
	"vencimento":         columnDate,
	"valor":              columnAmount,
	"amount":             columnAmount,
	"frequencia":         columnFrequency,
	"frequency":          columnFrequency,
	"recorrencia":        columnFrequency,
	"parcelas":           columnInstallments,
	"numero de parcelas": columnInstallments,
	"installments":       columnInstallments,
	"categoria":          columnCategory,
	"category":           columnCategory,
	"tipo":               columnKind,
	"kind":               columnKind,
	"descricao":          columnDescription,
	"description":        columnDescription,
}

// ReadSpreadsheet reads raw records from the first sheet of an xlsx workbook.
// Cells are returned as stored; amounts and frequency labels are classified
// later by recurrence.ParseRecord, so malformed rows surface there.
func ReadSpreadsheet(r io.Reader) ([]recurrence.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	columns, dataStartRow := findHeader(rows)
	if columns == nil {
		return nil, ErrMissingColumns
	}

	var raws []recurrence.RawRecord
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]
		cell := func(c column) string {
			idx, ok := columns[c]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		date := cell(columnDate)
		amount := cell(columnAmount)
		if date == "" && amount == "" {
			continue
		}

		raw := recurrence.RawRecord{
			Kind:        cell(columnKind),
			Description: cell(columnDescription),
			Amount:      recurrence.RawAmount(amount),
			Date:        normalizeSheetDate(date),
			Frequency:   cell(columnFrequency),
		}
		if installments, ok := parseSheetInt(cell(columnInstallments)); ok {
			raw.Installments = &installments
		}
		if category := cell(columnCategory); category != "" {
			raw.Category = &category
		}

		raws = append(raws, raw)
	}

	return raws, nil
}

// findHeader locates the header row and maps each known column to its index.
// It returns nil when no row carries both a date and an amount header.
func findHeader(rows [][]string) (map[column]int, int) {
	for i, row := range rows {
		if i >= headerSearchRows {
			break
		}

		columns := make(map[column]int)
		for j, cell := range row {
			if c, ok := headerAliases[entity.FoldLabel(cell)]; ok {
				if _, seen := columns[c]; !seen {
					columns[c] = j
				}
			}
		}

		_, hasDate := columns[columnDate]
		_, hasAmount := columns[columnAmount]
		if hasDate && hasAmount {
			return columns, i + 1
		}
	}
	return nil, 0
}

// normalizeSheetDate converts Excel serial dates and dd/MM/yyyy text to
// yyyy-MM-dd. Anything else is returned unchanged.
func normalizeSheetDate(value string) string {
	if value == "" {
		return value
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return value
		}
		return t.Format(valueobject.DateLayout)
	}

	if t, err := time.Parse("02/01/2006", value); err == nil {
		return t.Format(valueobject.DateLayout)
	}

	return value
}

func parseSheetInt(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && f == math.Trunc(f) {
		return int(f), true
	}
	return 0, false
}
