package models

import (
	"strconv"
	"time"
)

// Dates are stored as day offsets from the first day of the training dataset.
var epochDate = time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC)

// EncodeDate converts a day offset into a YYYY-MM-DD display date.
// Negative offsets yield dates before the epoch.
func EncodeDate(offsetDays int) string {
	return epochDate.AddDate(0, 0, offsetDays).Format("2006-01-02")
}

// Product codes match the label encoding used when the model was trained.
var productNames = map[int]string{
	0: "Bolen Banana",
	1: "Bolen Cokju (Mini)",
	2: "Bolen Coklat",
	3: "Bolen Coklat Keju",
	4: "Bolen Keju Mini",
	5: "Bolen Pisang Coklat",
	6: "Bolen Proltape",
}

var statusLabels = map[int]string{
	0: "normal",
	1: "overstock",
	2: "understock",
}

var dayNames = map[int]string{
	1: "Senin",
	2: "Selasa",
	3: "Rabu",
	4: "Kamis",
	5: "Jumat",
	6: "Sabtu",
	7: "Minggu",
}

// ProductName decodes a product code to its display name, or "Unknown"
// for codes outside the trained set.
func ProductName(code int) string {
	if name, ok := productNames[code]; ok {
		return name
	}
	return "Unknown"
}

// DayName decodes a day-of-week code (1=Senin .. 7=Minggu).
func DayName(code int) string {
	if name, ok := dayNames[code]; ok {
		return name
	}
	return "Unknown"
}

// StatusLabel decodes a predicted class index. An index outside the known
// classes falls back to its decimal form so the record is still written.
func StatusLabel(class int) string {
	if label, ok := statusLabels[class]; ok {
		return label
	}
	return strconv.Itoa(class)
}
