package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/persistence/model"
)

// theFollowingFinancialRecordsExist inserts rows as stored by the back office.
// Columns: kind, description, amount, date, frequency, installments, category.
// Dates are stored verbatim, so malformed values can be seeded.
func (t *testContext) theFollowingFinancialRecordsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("records table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	now := time.Now().UTC()

	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = cell.Value
		}

		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", values["amount"], err)
		}

		record := &model.FinancialRecordModel{
			ID:          uuid.New(),
			Kind:        values["kind"],
			Description: values["description"],
			Amount:      amount,
			Date:        values["date"],
			Frequency:   values["frequency"],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if v := values["installments"]; v != "" {
			installments, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid installments %q: %w", v, err)
			}
			record.Installments = &installments
		}
		if v := values["category"]; v != "" {
			category := v
			record.Category = &category
		}

		if err := t.db.DbConn.Create(record).Error; err != nil {
			return err
		}
	}

	return nil
}

func (t *testContext) findRows(table string, criteria map[string]any) (int, error) {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}
	return entitySlicePtr.Elem().Len(), nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.findRows(table, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	count, err := t.findRows(table, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
