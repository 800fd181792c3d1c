package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mazyaa/API-ML-RFC/models"
)

// Historical exports carry the same encoded fields the predict endpoint
// accepts, plus the status column.
var requiredCSVColumns = []string{
	"date_offset_days",
	"product_code",
	"day_code",
	"unit_price",
	"quantity_sold",
	"stock_on_hand",
	"stock_status",
}

// LoadPredictionsCSV parses a historical export into prediction rows,
// decoding the date offset and categorical codes the same way the predict
// path does. stock_status accepts either a class index or a label.
func LoadPredictionsCSV(path string) ([]models.Prediction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredCSVColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", name)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv rows: %w", err)
	}

	rows := make([]models.Prediction, 0, len(records))
	for i, record := range records {
		line := i + 2 // header is line 1

		offset, err := csvInt(record, cols, "date_offset_days", line)
		if err != nil {
			return nil, err
		}
		productCode, err := csvInt(record, cols, "product_code", line)
		if err != nil {
			return nil, err
		}
		dayCode, err := csvInt(record, cols, "day_code", line)
		if err != nil {
			return nil, err
		}
		unitPrice, err := csvInt(record, cols, "unit_price", line)
		if err != nil {
			return nil, err
		}
		quantitySold, err := csvInt(record, cols, "quantity_sold", line)
		if err != nil {
			return nil, err
		}
		stockOnHand, err := csvInt(record, cols, "stock_on_hand", line)
		if err != nil {
			return nil, err
		}

		status := record[cols["stock_status"]]
		if class, err := strconv.Atoi(status); err == nil {
			status = models.StatusLabel(class)
		}

		rows = append(rows, models.Prediction{
			Date:         models.EncodeDate(offset),
			DayOfWeek:    models.DayName(dayCode),
			ProductName:  models.ProductName(productCode),
			UnitPrice:    unitPrice,
			QuantitySold: quantitySold,
			StockOnHand:  stockOnHand,
			StockStatus:  status,
		})
	}

	return rows, nil
}

func csvInt(record []string, cols map[string]int, name string, line int) (int, error) {
	idx := cols[name]
	if idx >= len(record) {
		return 0, fmt.Errorf("csv line %d: missing value for %q", line, name)
	}
	v, err := strconv.Atoi(record[idx])
	if err != nil {
		return 0, fmt.Errorf("csv line %d: column %q: %w", line, name, err)
	}
	return v, nil
}
